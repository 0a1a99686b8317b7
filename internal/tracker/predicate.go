package tracker

import (
	"fmt"
	"math"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// Measurement is one visibility report for a section. Ratio is the share of
// the section's box inside the viewport; Top and Bottom are the box edges
// relative to the top of the viewport.
type Measurement struct {
	SectionID    string  `json:"id"`
	Intersecting bool    `json:"intersecting"`
	Ratio        float64 `json:"ratio"`
	Top          float64 `json:"top"`
	Bottom       float64 `json:"bottom"`
}

// normalized returns m with Ratio clamped to [0, 1] and NaN fields zeroed.
func (m Measurement) normalized() Measurement {
	switch {
	case math.IsNaN(m.Ratio) || m.Ratio < 0:
		m.Ratio = 0
	case m.Ratio > 1:
		m.Ratio = 1
	}
	if math.IsNaN(m.Top) {
		m.Top = 0
	}
	if math.IsNaN(m.Bottom) {
		m.Bottom = 0
	}
	return m
}

// Predicate decides whether a measured section qualifies to become active.
type Predicate func(m Measurement, s Section) bool

const (
	// DefaultThreshold is the intersection ratio a section must reach.
	DefaultThreshold = 0.5
	// DefaultOffset is the probe line used by the offset policy.
	DefaultOffset = 100.0
)

// IntersectionRatio qualifies sections that intersect the viewport with at
// least threshold of their box visible.
func IntersectionRatio(threshold float64) Predicate {
	return func(m Measurement, _ Section) bool {
		return m.Intersecting && m.Ratio >= threshold
	}
}

// AnchorOffset qualifies the section whose box spans the horizontal probe
// line offset pixels below the top of the viewport.
func AnchorOffset(offset float64) Predicate {
	return func(m Measurement, _ Section) bool {
		return m.Top <= offset && m.Bottom >= offset
	}
}

// Expression compiles a boolean expr-lang expression into a predicate. The
// expression sees id, index, intersecting, ratio, top and bottom. Evaluation
// errors and non-boolean results never qualify.
func Expression(code string) (Predicate, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("tracker: expression must not be empty")
	}
	program, err := exprlang.Compile(code,
		exprlang.Env(exprEnv(Measurement{}, Section{})),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("tracker: compile expression %q: %w", code, err)
	}
	return func(m Measurement, s Section) bool {
		return runBool(program, exprEnv(m, s))
	}, nil
}

func runBool(program *exprvm.Program, env map[string]any) bool {
	out, err := exprlang.Run(program, env)
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}

func exprEnv(m Measurement, s Section) map[string]any {
	return map[string]any{
		"id":           m.SectionID,
		"index":        s.Order,
		"intersecting": m.Intersecting,
		"ratio":        m.Ratio,
		"top":          m.Top,
		"bottom":       m.Bottom,
	}
}

// Strategy names accepted by ParseStrategy.
const (
	StrategyIntersection = "intersection"
	StrategyOffset       = "offset"
	StrategyExpr         = "expr"
)

// StrategyConfig selects and parameterises a predicate by name. A nil
// Threshold or Offset selects the default.
type StrategyConfig struct {
	Name       string
	Threshold  *float64
	Offset     *float64
	Expression string
}

// ParseStrategy builds the predicate described by cfg. An empty name selects
// the intersection policy.
func ParseStrategy(cfg StrategyConfig) (Predicate, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Name)) {
	case "", StrategyIntersection:
		threshold := DefaultThreshold
		if cfg.Threshold != nil {
			threshold = *cfg.Threshold
			if math.IsNaN(threshold) || threshold <= 0 || threshold > 1 {
				return nil, fmt.Errorf("tracker: threshold %v outside (0, 1]", threshold)
			}
		}
		return IntersectionRatio(threshold), nil
	case StrategyOffset:
		offset := DefaultOffset
		if cfg.Offset != nil {
			offset = *cfg.Offset
			if math.IsNaN(offset) || offset < 0 {
				return nil, fmt.Errorf("tracker: offset %v must not be negative", offset)
			}
		}
		return AnchorOffset(offset), nil
	case StrategyExpr:
		return Expression(cfg.Expression)
	default:
		return nil, fmt.Errorf("tracker: unknown strategy %q", cfg.Name)
	}
}
