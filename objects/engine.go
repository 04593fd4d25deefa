package objects

import (
	"encoding"
	"fmt"

	"github.com/tarn-lang/tarn/backend/buildcfg"
	"github.com/tarn-lang/tarn/backend/hir"
	"github.com/tarn-lang/tarn/backend/runtimeabi"
)

// Strategy is the initialization strategy chosen for a singleton
// declaration. Chosen once, immutable afterwards.
type Strategy int

const (
	strategyInvalid Strategy = iota
	StrategyPrecomputed
	StrategyLazy
	StrategyBridged
)

func (s Strategy) String() string {
	v, err := s.MarshalText()
	if err != nil {
		return fmt.Sprintf("strategy-invalid(%d)", int(s))
	}

	return string(v)
}

var _ encoding.TextUnmarshaler = (*Strategy)(nil)

func (s *Strategy) UnmarshalText(b []byte) error {
	switch string(b) {
	case "precomputed-constant":
		*s = StrategyPrecomputed
		return nil
	case "lazy-double-checked":
		*s = StrategyLazy
		return nil
	case "foreign-bridged":
		*s = StrategyBridged
		return nil
	default:
		return fmt.Errorf("unknown initialization strategy %q", b)
	}
}

func (s Strategy) MarshalText() ([]byte, error) {
	switch s {
	case StrategyPrecomputed:
		return []byte("precomputed-constant"), nil
	case StrategyLazy:
		return []byte("lazy-double-checked"), nil
	case StrategyBridged:
		return []byte("foreign-bridged"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid Strategy(%d)", int(s))
	}
}

// Engine is the pass context. One engine serves a whole compilation; its
// accessor cache spans files so that exactly one accessor exists per
// declaration program-wide.
type Engine struct {
	cfg      buildcfg.Config
	abi      runtimeabi.ABI
	builtins *hir.Builtins

	accessors  map[hir.Reference]*hir.Func
	strategies map[hir.Reference]Strategy
}

// NewEngine builds a pass context. The zero memory model behaves as relaxed.
func NewEngine(cfg buildcfg.Config, abi runtimeabi.ABI, builtins *hir.Builtins) *Engine {
	return &Engine{
		cfg:        cfg,
		abi:        abi,
		builtins:   builtins,
		accessors:  make(map[hir.Reference]*hir.Func),
		strategies: make(map[hir.Reference]Strategy),
	}
}

// Accessor returns the accessor function of a singleton declaration. The
// first request creates an unattached accessor with the right name and
// return type; every later request for the same declaration returns the
// identical function. The built-in unit object resolves to its pre-existing
// global accessor and never hits the cache.
func (e *Engine) Accessor(d *hir.Decl) *hir.Func {
	if e.builtins.IsUnit(d) {
		return e.builtins.UnitAccessor
	}

	if acc, ok := e.accessors[d.Ref]; ok {
		return acc
	}

	acc := &hir.Func{
		Name:       "get_" + d.Ref.Name,
		ReturnType: d.Ref,
	}
	e.accessors[d.Ref] = acc

	return acc
}

// accessorRef is the call target of a synthesized accessor: the function is
// a member of the declaration itself for named objects and of the enclosing
// class for companions.
func (e *Engine) accessorRef(d *hir.Decl) hir.Reference {
	owner := d
	if d.Kind == hir.KindCompanion && d.Parent != nil {
		owner = d.Parent
	}

	return owner.Ref.Member(e.Accessor(d).Name)
}

// StrategyOf reports the strategy chosen for a lowered declaration.
func (e *Engine) StrategyOf(ref hir.Reference) (Strategy, bool) {
	s, ok := e.strategies[ref]
	return s, ok
}
