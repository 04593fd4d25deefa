package hir

import "testing"

func TestDump(t *testing.T) {
	strRef := Reference{Package: "tarn", Name: "String"}

	obj := &Decl{
		Ref:         Reference{Package: "app", Name: "Config"},
		Kind:        KindObject,
		Annotations: AnnotEagerInit,
	}
	obj.Fields = []*Field{
		NewField("greeting", strRef, Private, false, &Const{Value: `"hi"`, Type: strRef}),
	}
	obj.Ctors = []*Constructor{{Primary: true, AutoGenerated: true, DelegatesToAny: true}}

	file := &File{
		Name:  "demo.tarn",
		Decls: []*Decl{obj},
		Funcs: []*Func{{
			Name:       "main",
			ReturnType: Reference{Package: "tarn", Name: "Unit"},
			Body: []Stmt{
				&Return{X: &ObjectRef{Decl: obj, Span: Span{Start: 10, End: 16}}},
			},
		}},
	}

	want := `file demo.tarn
object "app".Config @eager
  field greeting: "tarn".String (private) = lit "hi"
  ctor() primary auto delegates-any
func main(): "tarn".Unit
  return objectref "app".Config
`

	if got := Dump(file); got != want {
		t.Fatalf("dump mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpIsStable(t *testing.T) {
	obj := &Decl{Ref: Reference{Package: "app", Name: "A"}, Kind: KindObject}
	file := &File{Name: "stable.tarn", Decls: []*Decl{obj}}

	first := Dump(file)
	for i := 0; i < 10; i++ {
		if got := Dump(file); got != first {
			t.Fatalf("dump is not deterministic at iteration %d", i)
		}
	}
}
