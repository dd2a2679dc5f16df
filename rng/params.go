package rng

// Params is the named-parameter map passed to the registry. Every
// field a kind understands has a documented default, so the zero map
// (or nil) always constructs.
//
// Recognized keys are kind-specific (see NewDistribution); three are
// shared: "seed" (bit-generator kinds), "rng" (a Generator used as the
// bit source of a distribution, defaulting to the shared Default
// generator) and "accuracy" (inverse-CDF tolerance for continuous
// families, default 1e-9, accepted for schema compatibility).
type Params map[string]any

// Float reads a numeric parameter, tolerating any primitive numeric
// type, falling back to def when absent or non-numeric.
func (p Params) Float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

// Int reads an integer parameter with the same tolerance as Float.
func (p Params) Int(key string, def int) int {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return def
}

// Seed reads the optional seed parameter, reporting whether it was set.
func (p Params) Seed() (int64, bool) {
	v, ok := p["seed"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	}
	return 0, false
}

// Floats reads a numeric-slice parameter ([]float64 or []int).
func (p Params) Floats(key string) []float64 {
	switch s := p[key].(type) {
	case []float64:
		return s
	case []int:
		out := make([]float64, len(s))
		for i, v := range s {
			out[i] = float64(v)
		}
		return out
	}
	return nil
}

// Generator reads an injected bit source, or nil when absent.
func (p Params) Generator(key string) Generator {
	g, _ := p[key].(Generator)
	return g
}
