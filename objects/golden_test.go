package objects

import (
	"bytes"
	"embed"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/tarn-lang/tarn/backend/buildcfg"
	"github.com/tarn-lang/tarn/backend/hir"
	"github.com/tarn-lang/tarn/backend/runtimeabi"
)

//go:embed testdata
var goldenCases embed.FS

// goldenBuilders constructs the input tree of each archive; the archive
// itself holds the backend config and the expected dump after lowering.
var goldenBuilders = map[string]func(builtins *hir.Builtins) *hir.File{
	"scenario_a":    goldenScenarioA,
	"scenario_b":    goldenScenarioB,
	"scenario_c":    goldenScenarioC,
	"scenario_d":    goldenScenarioD,
	"strict_shared": goldenStrictShared,
}

func TestGoldenLowering(t *testing.T) {
	entries, err := goldenCases.ReadDir("testdata")
	if err != nil {
		t.Fatal(err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txtar") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".txtar")

		t.Run(name, func(t *testing.T) {
			data, err := goldenCases.ReadFile("testdata/" + entry.Name())
			if err != nil {
				t.Fatal(err)
			}

			arch := txtar.Parse(data)
			var cfgDoc, golden []byte
			for _, f := range arch.Files {
				switch f.Name {
				case "config.yaml":
					cfgDoc = f.Data
				case "lowered.golden":
					golden = f.Data
				default:
					t.Fatalf("unexpected archive member %q", f.Name)
				}
			}
			if golden == nil {
				t.Fatal("archive has no lowered.golden")
			}

			cfg, err := buildcfg.Load(bytes.NewReader(cfgDoc))
			if err != nil {
				t.Fatalf("load config: %s", err)
			}

			build, ok := goldenBuilders[name]
			if !ok {
				t.Fatalf("no tree builder registered for %q", name)
			}

			builtins := hir.NewBuiltins()
			file := build(builtins)

			e := NewEngine(cfg, runtimeabi.Default(), builtins)
			if err := e.Run(file); err != nil {
				t.Fatal(err)
			}

			if got := hir.Dump(file); got != string(golden) {
				t.Errorf("lowered tree mismatch:\n got:\n%s\nwant:\n%s", got, golden)
			}
		})
	}
}

func goldenScenarioA(*hir.Builtins) *hir.File {
	obj := constObject("Config")
	return &hir.File{
		Name:  "scenario_a.tarn",
		Decls: []*hir.Decl{obj},
		Funcs: []*hir.Func{mainReturning(obj)},
	}
}

func goldenScenarioB(*hir.Builtins) *hir.File {
	obj := &hir.Decl{
		Ref:  appRef("Telemetry"),
		Kind: hir.KindObject,
		Ctors: []*hir.Constructor{{
			Primary: true,
			Body: []hir.Stmt{
				&hir.ExprStmt{X: &hir.Call{Callee: appRef("connect")}},
			},
		}},
	}
	return &hir.File{
		Name:  "scenario_b.tarn",
		Decls: []*hir.Decl{obj},
		Funcs: []*hir.Func{mainReturning(obj)},
	}
}

func goldenScenarioC(*hir.Builtins) *hir.File {
	panel := &hir.Decl{
		Ref:         appRef("Panel"),
		Kind:        hir.KindClass,
		ForeignBase: hir.Reference{Package: "objc", Name: "NSView"},
	}
	comp := &hir.Decl{
		Ref:    hir.Reference{Package: "app", Outer: "Panel", Name: "Companion"},
		Kind:   hir.KindCompanion,
		Parent: panel,
	}
	panel.Nested = []*hir.Decl{comp}

	return &hir.File{
		Name:  "scenario_c.tarn",
		Decls: []*hir.Decl{panel},
		Funcs: []*hir.Func{mainReturning(comp)},
	}
}

func goldenScenarioD(builtins *hir.Builtins) *hir.File {
	return &hir.File{
		Name:  "scenario_d.tarn",
		Funcs: []*hir.Func{mainReturning(builtins.Unit)},
	}
}

func goldenStrictShared(*hir.Builtins) *hir.File {
	obj := &hir.Decl{
		Ref:   appRef("Flags"),
		Kind:  hir.KindObject,
		Ctors: []*hir.Constructor{autoCtor()},
	}
	return &hir.File{
		Name:  "strict_shared.tarn",
		Decls: []*hir.Decl{obj},
		Funcs: []*hir.Func{mainReturning(obj)},
	}
}

func mainReturning(d *hir.Decl) *hir.Func {
	return &hir.Func{
		Name:       "main",
		ReturnType: d.Ref,
		Body: []hir.Stmt{
			&hir.Return{X: &hir.ObjectRef{Decl: d, Span: hir.Span{Start: 100, End: 106}}},
		},
	}
}
