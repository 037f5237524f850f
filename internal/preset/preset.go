// Package preset decodes DX7 preset records (§6.2): a loosely-typed
// map of parameters is clamped field-by-field into a strongly-typed
// Preset, mirroring the DX7's own dynamic-patch-dictionary convention
// (original_source/engine/voice.py's load_preset).
package preset

// OscMode selects an operator's frequency mode.
type OscMode int

const (
	OscModeRatio OscMode = iota
	OscModeFixed
)

// Curve mirrors operator.Curve's 0..3 keyboard-level-scaling encoding.
type Curve int

const (
	CurveNegLinear Curve = iota
	CurveNegExponential
	CurvePosExponential
	CurvePosLinear
)

// LFOParams is the preset's LFO sub-record.
type LFOParams struct {
	Waveform int // 0..5
	Speed    int // 0..99
	Delay    int // 0..99
	PMD      int // 0..99
	AMD      int // 0..99
	KeySync  bool
}

// OperatorParams is one operator's preset sub-record.
type OperatorParams struct {
	OscMode             OscMode
	Coarse              int // 0..31
	Fine                int // 0..99
	Detune              int // -7..7
	OutputLevel         int // 0..99
	Rates               [4]int
	Levels              [4]int
	VelocitySensitivity int // 0..7
	KeyRateScaling      int // 0..7
	KLSBreakpoint       int // 0..127
	KLSLeftDepth        int // 0..99
	KLSRightDepth       int // 0..99
	KLSLeftCurve        Curve
	KLSRightCurve       Curve
}

// Preset is a fully decoded, clamped DX7 patch.
type Preset struct {
	Name      string
	Algorithm int // 0..31
	Feedback  int // 0..7
	LFO       LFOParams
	Operators [6]OperatorParams
}

// Default returns the DX7 "INIT VOICE" preset: a single full-level
// sine carrier on algorithm 1, all other operators silent.
func Default() Preset {
	p := Preset{
		Name:      "INIT VOICE",
		Algorithm: 0,
		Feedback:  0,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
	}
	for i := range p.Operators {
		outputLevel := 0
		level3 := 0
		if i == 0 {
			outputLevel = 99
			level3 = 99
		}
		p.Operators[i] = OperatorParams{
			OscMode:             OscModeRatio,
			Coarse:              1,
			Fine:                0,
			Detune:              0,
			OutputLevel:         outputLevel,
			Rates:               [4]int{99, 99, 99, 99},
			Levels:              [4]int{99, 99, level3, 0},
			VelocitySensitivity: 0,
			KeyRateScaling:      0,
			KLSBreakpoint:       60,
			KLSLeftDepth:        0,
			KLSRightDepth:       0,
			KLSLeftCurve:        CurveNegLinear,
			KLSRightCurve:       CurveNegLinear,
		}
	}
	return p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func getInt(m map[string]any, key string, def int) int {
	if v, ok := m[key]; ok {
		switch t := v.(type) {
		case int:
			return t
		case float64:
			return int(t)
		}
	}
	return def
}

func getBool(m map[string]any, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func getMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

func getString(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

// Decode builds a clamped Preset from a loosely-typed record, filling
// in defaults for missing fields and clamping out-of-range values
// (§7: the engine never rejects a preset). Key names match §6.2 and
// the original's `opN` / `lfo` sub-dict convention.
func Decode(m map[string]any) Preset {
	d := Default()
	p := Preset{
		Name:      getString(m, "name", d.Name),
		Algorithm: wrapAlgorithm(getInt(m, "algorithm", d.Algorithm)),
		Feedback:  clamp(getInt(m, "feedback", d.Feedback), 0, 7),
	}

	lfoData := getMap(m, "lfo")
	p.LFO = LFOParams{
		Waveform: clamp(getInt(lfoData, "waveform", d.LFO.Waveform), 0, 5),
		Speed:    clamp(getInt(lfoData, "speed", d.LFO.Speed), 0, 99),
		Delay:    clamp(getInt(lfoData, "delay", d.LFO.Delay), 0, 99),
		PMD:      clamp(getInt(lfoData, "pmd", d.LFO.PMD), 0, 99),
		AMD:      clamp(getInt(lfoData, "amd", d.LFO.AMD), 0, 99),
		KeySync:  getBool(lfoData, "key_sync", d.LFO.KeySync),
	}

	for i := 0; i < 6; i++ {
		opData := getMap(m, opKey(i))
		defOp := d.Operators[i]
		p.Operators[i] = OperatorParams{
			OscMode:             OscMode(clamp(getInt(opData, "osc_mode", int(defOp.OscMode)), 0, 1)),
			Coarse:              clamp(getInt(opData, "coarse", defOp.Coarse), 0, 31),
			Fine:                clamp(getInt(opData, "fine", defOp.Fine), 0, 99),
			Detune:              clamp(getInt(opData, "detune", defOp.Detune), -7, 7),
			OutputLevel:         clamp(getInt(opData, "output_level", defOp.OutputLevel), 0, 99),
			Rates: [4]int{
				clamp(getInt(opData, "rate1", defOp.Rates[0]), 0, 99),
				clamp(getInt(opData, "rate2", defOp.Rates[1]), 0, 99),
				clamp(getInt(opData, "rate3", defOp.Rates[2]), 0, 99),
				clamp(getInt(opData, "rate4", defOp.Rates[3]), 0, 99),
			},
			Levels: [4]int{
				clamp(getInt(opData, "level1", defOp.Levels[0]), 0, 99),
				clamp(getInt(opData, "level2", defOp.Levels[1]), 0, 99),
				clamp(getInt(opData, "level3", defOp.Levels[2]), 0, 99),
				clamp(getInt(opData, "level4", defOp.Levels[3]), 0, 99),
			},
			VelocitySensitivity: clamp(getInt(opData, "velocity_sensitivity", defOp.VelocitySensitivity), 0, 7),
			KeyRateScaling:      clamp(getInt(opData, "key_rate_scaling", defOp.KeyRateScaling), 0, 7),
			KLSBreakpoint:       clamp(getInt(opData, "kls_breakpoint", defOp.KLSBreakpoint), 0, 127),
			KLSLeftDepth:        clamp(getInt(opData, "kls_left_depth", defOp.KLSLeftDepth), 0, 99),
			KLSRightDepth:       clamp(getInt(opData, "kls_right_depth", defOp.KLSRightDepth), 0, 99),
			KLSLeftCurve:        Curve(clamp(getInt(opData, "kls_left_curve", int(defOp.KLSLeftCurve)), 0, 3)),
			KLSRightCurve:       Curve(clamp(getInt(opData, "kls_right_curve", int(defOp.KLSRightCurve)), 0, 3)),
		}
	}
	return p
}

func opKey(i int) string {
	return "op" + string(rune('1'+i))
}

// wrapAlgorithm normalizes an algorithm index into 0..31 by wrapping
// modulo 32, per §7's "Unknown algorithm index -- wrap modulo 32."
func wrapAlgorithm(i int) int {
	i %= 32
	if i < 0 {
		i += 32
	}
	return i
}
