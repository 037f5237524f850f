package preset

// romPresets is the complete 32-voice ROM1A factory bank, transcribed
// from the DX7's original SysEx preset data (original_source/presets/factory.py).
// Keyboard-scaling breakpoints are converted from the DX7's own 0..99 byte
// encoding (0 = A-1) to MIDI note numbers via +21, and detune from the SysEx
// 0..14 (7=center) encoding to this package's signed -7..7 via -7. The SysEx
// amplitude-modulation-sensitivity field has no effect in this engine (the
// original engine never reads it either) and is dropped.
var romPresets = []Preset{
	{ // 1: BRASS   1
		Name:      "BRASS   1",
		Algorithm: 21,
		Feedback:  7,
		LFO:       LFOParams{Waveform: 4, Speed: 37, Delay: 0, PMD: 5, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{49, 99, 28, 68}, Levels: [4]int{98, 98, 91, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{49, 99, 28, 68}, Levels: [4]int{98, 98, 91, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 3, OutputLevel: 86, Rates: [4]int{49, 99, 28, 68}, Levels: [4]int{98, 98, 91, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -3, OutputLevel: 86, Rates: [4]int{84, 95, 95, 60}, Levels: [4]int{99, 95, 95, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -3, OutputLevel: 86, Rates: [4]int{84, 95, 95, 60}, Levels: [4]int{99, 95, 95, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -3, OutputLevel: 86, Rates: [4]int{84, 95, 95, 60}, Levels: [4]int{99, 95, 95, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 2: BRASS   2
		Name:      "BRASS   2",
		Algorithm: 21,
		Feedback:  7,
		LFO:       LFOParams{Waveform: 4, Speed: 35, Delay: 0, PMD: 3, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{62, 60, 28, 68}, Levels: [4]int{99, 98, 92, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{62, 60, 28, 68}, Levels: [4]int{99, 98, 92, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 3, OutputLevel: 79, Rates: [4]int{62, 60, 28, 68}, Levels: [4]int{99, 98, 92, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -2, OutputLevel: 82, Rates: [4]int{73, 80, 88, 48}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 4, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -2, OutputLevel: 82, Rates: [4]int{73, 80, 88, 48}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 4, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 2, OutputLevel: 82, Rates: [4]int{73, 80, 88, 48}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 4, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 3: BRASS   3
		Name:      "BRASS   3",
		Algorithm: 21,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 4, Speed: 30, Delay: 0, PMD: 4, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{55, 65, 28, 60}, Levels: [4]int{99, 97, 90, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{55, 65, 28, 60}, Levels: [4]int{99, 97, 90, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 3, OutputLevel: 79, Rates: [4]int{55, 65, 28, 60}, Levels: [4]int{99, 97, 90, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 85, Rates: [4]int{96, 70, 90, 50}, Levels: [4]int{99, 90, 97, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 85, Rates: [4]int{96, 70, 90, 50}, Levels: [4]int{99, 90, 97, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 85, Rates: [4]int{96, 70, 90, 50}, Levels: [4]int{99, 90, 97, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 4: STRINGS 1
		Name:      "STRINGS 1",
		Algorithm: 1,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 0, Speed: 38, Delay: 42, PMD: 7, AMD: 0, KeySync: false},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{45, 25, 20, 50}, Levels: [4]int{99, 98, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 82, Rates: [4]int{54, 50, 50, 50}, Levels: [4]int{99, 82, 82, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 14, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{45, 25, 20, 50}, Levels: [4]int{99, 98, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: -1, OutputLevel: 82, Rates: [4]int{54, 50, 50, 50}, Levels: [4]int{99, 82, 82, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 14, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 79, Rates: [4]int{45, 25, 20, 50}, Levels: [4]int{99, 98, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 70, Rates: [4]int{54, 50, 50, 50}, Levels: [4]int{99, 60, 60, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 14, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 5: STRINGS 2
		Name:      "STRINGS 2",
		Algorithm: 1,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 0, Speed: 40, Delay: 50, PMD: 6, AMD: 0, KeySync: false},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{40, 22, 18, 50}, Levels: [4]int{99, 98, 95, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 78, Rates: [4]int{52, 48, 48, 48}, Levels: [4]int{99, 80, 80, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 12, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{40, 22, 18, 50}, Levels: [4]int{99, 98, 95, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -1, OutputLevel: 78, Rates: [4]int{52, 48, 48, 48}, Levels: [4]int{99, 80, 80, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 12, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 75, Rates: [4]int{40, 22, 18, 50}, Levels: [4]int{99, 98, 95, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 66, Rates: [4]int{52, 48, 48, 48}, Levels: [4]int{99, 65, 65, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 12, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 6: STRINGS 3
		Name:      "STRINGS 3",
		Algorithm: 0,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 0, Speed: 42, Delay: 35, PMD: 8, AMD: 0, KeySync: false},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{42, 20, 20, 52}, Levels: [4]int{99, 99, 95, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 75, Rates: [4]int{50, 45, 45, 45}, Levels: [4]int{99, 78, 78, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 10, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 68, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{42, 20, 20, 52}, Levels: [4]int{99, 99, 95, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -1, OutputLevel: 75, Rates: [4]int{50, 45, 45, 45}, Levels: [4]int{99, 78, 78, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 10, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 5, Fine: 0, Detune: 0, OutputLevel: 62, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 7: ORCHSTRA
		Name:      "ORCHSTRA",
		Algorithm: 1,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 30, PMD: 5, AMD: 0, KeySync: false},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{38, 22, 20, 48}, Levels: [4]int{99, 99, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 80, Rates: [4]int{68, 52, 50, 50}, Levels: [4]int{99, 85, 85, 0}, VelocitySensitivity: 4, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 14, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{38, 22, 20, 48}, Levels: [4]int{99, 99, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: -1, OutputLevel: 80, Rates: [4]int{68, 52, 50, 50}, Levels: [4]int{99, 85, 85, 0}, VelocitySensitivity: 4, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 14, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 82, Rates: [4]int{38, 22, 20, 48}, Levels: [4]int{99, 99, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 5, Fine: 0, Detune: 0, OutputLevel: 72, Rates: [4]int{90, 52, 50, 50}, Levels: [4]int{99, 70, 70, 0}, VelocitySensitivity: 4, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 14, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 8: PIANO   1
		Name:      "PIANO   1",
		Algorithm: 4,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -4, OutputLevel: 99, Rates: [4]int{95, 29, 20, 50}, Levels: [4]int{99, 95, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 54, KLSRightDepth: 50, KLSLeftCurve: CurveNegExponential, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 14, Fine: 0, Detune: -4, OutputLevel: 58, Rates: [4]int{95, 20, 20, 50}, Levels: [4]int{99, 95, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -4, OutputLevel: 99, Rates: [4]int{95, 29, 20, 50}, Levels: [4]int{99, 95, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 54, KLSRightDepth: 50, KLSLeftCurve: CurveNegExponential, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 14, Fine: 0, Detune: -4, OutputLevel: 58, Rates: [4]int{95, 20, 20, 50}, Levels: [4]int{99, 95, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{95, 50, 35, 78}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 89, Rates: [4]int{96, 25, 25, 67}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 9: PIANO   2
		Name:      "PIANO   2",
		Algorithm: 4,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -3, OutputLevel: 99, Rates: [4]int{96, 25, 25, 67}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 50, KLSRightDepth: 50, KLSLeftCurve: CurveNegExponential, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 7, Fine: 0, Detune: -3, OutputLevel: 62, Rates: [4]int{95, 50, 30, 70}, Levels: [4]int{99, 82, 0, 0}, VelocitySensitivity: 4, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 3, OutputLevel: 99, Rates: [4]int{96, 25, 25, 67}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 50, KLSRightDepth: 50, KLSLeftCurve: CurveNegExponential, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 7, Fine: 0, Detune: 3, OutputLevel: 62, Rates: [4]int{95, 50, 30, 70}, Levels: [4]int{99, 82, 0, 0}, VelocitySensitivity: 4, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{95, 50, 35, 78}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 85, Rates: [4]int{96, 25, 25, 67}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 10: PIANO   3
		Name:      "PIANO   3",
		Algorithm: 4,
		Feedback:  5,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{94, 30, 22, 55}, Levels: [4]int{99, 90, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 45, KLSRightDepth: 45, KLSLeftCurve: CurveNegExponential, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 55, Rates: [4]int{95, 45, 30, 65}, Levels: [4]int{99, 78, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 10, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{94, 30, 22, 55}, Levels: [4]int{99, 90, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 45, KLSRightDepth: 45, KLSLeftCurve: CurveNegExponential, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: -1, OutputLevel: 55, Rates: [4]int{95, 45, 30, 65}, Levels: [4]int{99, 78, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 10, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{95, 50, 35, 78}, Levels: [4]int{99, 70, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 84, Rates: [4]int{96, 25, 25, 67}, Levels: [4]int{99, 70, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 11: E.PIANO 1
		Name:      "E.PIANO 1",
		Algorithm: 4,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{95, 29, 20, 50}, Levels: [4]int{99, 95, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 14, Fine: 0, Detune: 0, OutputLevel: 78, Rates: [4]int{95, 20, 20, 50}, Levels: [4]int{99, 95, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{95, 29, 20, 50}, Levels: [4]int{99, 95, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 14, Fine: 0, Detune: 0, OutputLevel: 78, Rates: [4]int{95, 20, 20, 50}, Levels: [4]int{99, 95, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{95, 50, 35, 78}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 58, Rates: [4]int{96, 25, 25, 67}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 12: E.PIANO 2
		Name:      "E.PIANO 2",
		Algorithm: 4,
		Feedback:  5,
		LFO:       LFOParams{Waveform: 4, Speed: 25, Delay: 0, PMD: 2, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 28, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 82, Rates: [4]int{99, 88, 95, 60}, Levels: [4]int{84, 60, 45, 0}, VelocitySensitivity: 6, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 38, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 28, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -1, OutputLevel: 82, Rates: [4]int{99, 88, 95, 60}, Levels: [4]int{84, 60, 45, 0}, VelocitySensitivity: 6, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 38, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{95, 50, 35, 78}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 70, Rates: [4]int{96, 25, 25, 67}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 13: E.PIANO 3
		Name:      "E.PIANO 3",
		Algorithm: 4,
		Feedback:  4,
		LFO:       LFOParams{Waveform: 4, Speed: 30, Delay: 0, PMD: 3, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{84, 35, 22, 52}, Levels: [4]int{99, 92, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 7, Fine: 0, Detune: 0, OutputLevel: 74, Rates: [4]int{96, 60, 40, 55}, Levels: [4]int{92, 72, 36, 0}, VelocitySensitivity: 6, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 30, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{84, 35, 22, 52}, Levels: [4]int{99, 92, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 7, Fine: 0, Detune: -1, OutputLevel: 74, Rates: [4]int{96, 60, 40, 55}, Levels: [4]int{92, 72, 36, 0}, VelocitySensitivity: 6, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 30, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{95, 50, 35, 78}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 64, Rates: [4]int{96, 25, 25, 67}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 14: HARPSICH
		Name:      "HARPSICH",
		Algorithm: 4,
		Feedback:  3,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{99, 40, 30, 60}, Levels: [4]int{99, 70, 0, 0}, VelocitySensitivity: 1, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 5, Fine: 0, Detune: 0, OutputLevel: 80, Rates: [4]int{99, 75, 60, 60}, Levels: [4]int{99, 56, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{99, 40, 30, 60}, Levels: [4]int{99, 70, 0, 0}, VelocitySensitivity: 1, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 5, Fine: 0, Detune: -1, OutputLevel: 80, Rates: [4]int{99, 75, 60, 60}, Levels: [4]int{99, 56, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{99, 70, 35, 90}, Levels: [4]int{99, 60, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 70, Rates: [4]int{99, 85, 50, 85}, Levels: [4]int{99, 50, 0, 0}, VelocitySensitivity: 4, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 15: CLAV    1
		Name:      "CLAV    1",
		Algorithm: 4,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{99, 86, 56, 76}, Levels: [4]int{99, 60, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 81, KLSLeftDepth: 0, KLSRightDepth: 24, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 41, Detune: 0, OutputLevel: 86, Rates: [4]int{99, 95, 70, 80}, Levels: [4]int{99, 52, 0, 0}, VelocitySensitivity: 7, KeyRateScaling: 4, KLSBreakpoint: 81, KLSLeftDepth: 0, KLSRightDepth: 30, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{99, 86, 56, 76}, Levels: [4]int{99, 60, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 81, KLSLeftDepth: 0, KLSRightDepth: 24, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 41, Detune: 0, OutputLevel: 86, Rates: [4]int{99, 95, 70, 80}, Levels: [4]int{99, 52, 0, 0}, VelocitySensitivity: 7, KeyRateScaling: 4, KLSBreakpoint: 81, KLSLeftDepth: 0, KLSRightDepth: 30, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{99, 86, 56, 76}, Levels: [4]int{99, 55, 0, 0}, VelocitySensitivity: 3, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 78, Rates: [4]int{99, 92, 66, 82}, Levels: [4]int{99, 50, 0, 0}, VelocitySensitivity: 7, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 16: VIBE
		Name:      "VIBE",
		Algorithm: 4,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 4, Fine: 0, Detune: 0, OutputLevel: 72, Rates: [4]int{99, 88, 70, 50}, Levels: [4]int{99, 40, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 4, Fine: 0, Detune: 0, OutputLevel: 72, Rates: [4]int{99, 88, 70, 50}, Levels: [4]int{99, 40, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 10, Fine: 0, Detune: 0, OutputLevel: 55, Rates: [4]int{99, 88, 70, 50}, Levels: [4]int{99, 40, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 17: MARIMBA
		Name:      "MARIMBA",
		Algorithm: 4,
		Feedback:  4,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{99, 85, 0, 60}, Levels: [4]int{99, 50, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 4, Fine: 0, Detune: 0, OutputLevel: 72, Rates: [4]int{99, 92, 0, 70}, Levels: [4]int{99, 36, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{99, 85, 0, 60}, Levels: [4]int{99, 50, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 4, Fine: 0, Detune: 0, OutputLevel: 72, Rates: [4]int{99, 92, 0, 70}, Levels: [4]int{99, 36, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{99, 80, 0, 60}, Levels: [4]int{99, 50, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 10, Fine: 0, Detune: 0, OutputLevel: 60, Rates: [4]int{99, 90, 0, 70}, Levels: [4]int{99, 30, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 18: KOTO
		Name:      "KOTO",
		Algorithm: 4,
		Feedback:  5,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{99, 80, 40, 72}, Levels: [4]int{99, 65, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 10, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 78, Rates: [4]int{99, 90, 55, 65}, Levels: [4]int{99, 55, 0, 0}, VelocitySensitivity: 7, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 14, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{99, 80, 40, 72}, Levels: [4]int{99, 65, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 10, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: -1, OutputLevel: 78, Rates: [4]int{99, 90, 55, 65}, Levels: [4]int{99, 55, 0, 0}, VelocitySensitivity: 7, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 14, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{99, 90, 40, 85}, Levels: [4]int{99, 55, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 5, Fine: 0, Detune: 0, OutputLevel: 70, Rates: [4]int{99, 95, 60, 75}, Levels: [4]int{99, 48, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 19: FLUTE   1
		Name:      "FLUTE   1",
		Algorithm: 4,
		Feedback:  7,
		LFO:       LFOParams{Waveform: 0, Speed: 37, Delay: 50, PMD: 5, AMD: 0, KeySync: false},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{65, 35, 22, 50}, Levels: [4]int{99, 99, 95, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 81, KLSLeftDepth: 0, KLSRightDepth: 30, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 56, Rates: [4]int{90, 68, 50, 50}, Levels: [4]int{99, 62, 50, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 81, KLSLeftDepth: 0, KLSRightDepth: 30, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{65, 35, 22, 50}, Levels: [4]int{99, 99, 95, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 81, KLSLeftDepth: 0, KLSRightDepth: 30, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 56, Rates: [4]int{90, 68, 50, 50}, Levels: [4]int{99, 62, 50, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 81, KLSLeftDepth: 0, KLSRightDepth: 30, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 78, Rates: [4]int{65, 35, 22, 50}, Levels: [4]int{99, 99, 95, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 81, KLSLeftDepth: 0, KLSRightDepth: 30, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 45, Rates: [4]int{90, 68, 50, 50}, Levels: [4]int{99, 62, 50, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 81, KLSLeftDepth: 0, KLSRightDepth: 30, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
		},
	},
	{ // 20: FLUTE   2
		Name:      "FLUTE   2",
		Algorithm: 0,
		Feedback:  7,
		LFO:       LFOParams{Waveform: 0, Speed: 40, Delay: 45, PMD: 6, AMD: 0, KeySync: false},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{60, 30, 20, 48}, Levels: [4]int{99, 99, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 24, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 60, Rates: [4]int{82, 65, 48, 48}, Levels: [4]int{99, 58, 46, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 24, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 40, Rates: [4]int{82, 65, 48, 48}, Levels: [4]int{99, 58, 46, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 24, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 82, Rates: [4]int{60, 30, 20, 48}, Levels: [4]int{99, 99, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 24, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -1, OutputLevel: 50, Rates: [4]int{82, 65, 48, 48}, Levels: [4]int{99, 58, 46, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 24, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 32, Rates: [4]int{82, 65, 48, 48}, Levels: [4]int{99, 58, 46, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 24, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
		},
	},
	{ // 21: OBOE
		Name:      "OBOE",
		Algorithm: 0,
		Feedback:  4,
		LFO:       LFOParams{Waveform: 0, Speed: 38, Delay: 40, PMD: 5, AMD: 0, KeySync: false},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{58, 28, 22, 50}, Levels: [4]int{99, 99, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 82, Rates: [4]int{70, 55, 50, 50}, Levels: [4]int{99, 82, 80, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 72, Rates: [4]int{80, 70, 60, 55}, Levels: [4]int{99, 78, 70, 0}, VelocitySensitivity: 4, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 82, Rates: [4]int{58, 28, 22, 50}, Levels: [4]int{99, 99, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 75, Rates: [4]int{70, 55, 50, 50}, Levels: [4]int{99, 82, 80, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 5, Fine: 0, Detune: 0, OutputLevel: 66, Rates: [4]int{80, 70, 60, 55}, Levels: [4]int{99, 78, 70, 0}, VelocitySensitivity: 4, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
		},
	},
	{ // 22: TRUMPET
		Name:      "TRUMPET",
		Algorithm: 21,
		Feedback:  7,
		LFO:       LFOParams{Waveform: 4, Speed: 35, Delay: 0, PMD: 3, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{80, 70, 30, 68}, Levels: [4]int{99, 98, 95, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{80, 70, 30, 68}, Levels: [4]int{99, 98, 95, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 3, OutputLevel: 82, Rates: [4]int{80, 70, 30, 68}, Levels: [4]int{99, 98, 95, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -3, OutputLevel: 88, Rates: [4]int{96, 85, 92, 55}, Levels: [4]int{99, 92, 96, 0}, VelocitySensitivity: 4, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -3, OutputLevel: 88, Rates: [4]int{96, 85, 92, 55}, Levels: [4]int{99, 92, 96, 0}, VelocitySensitivity: 4, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 88, Rates: [4]int{96, 85, 92, 55}, Levels: [4]int{99, 92, 96, 0}, VelocitySensitivity: 4, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 23: ORGAN   1
		Name:      "ORGAN   1",
		Algorithm: 21,
		Feedback:  5,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{90, 0, 0, 50}, Levels: [4]int{99, 99, 99, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 92, Rates: [4]int{90, 0, 0, 50}, Levels: [4]int{99, 99, 99, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 4, Fine: 0, Detune: 0, OutputLevel: 86, Rates: [4]int{90, 0, 0, 50}, Levels: [4]int{99, 99, 99, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 82, Rates: [4]int{82, 95, 95, 60}, Levels: [4]int{99, 95, 95, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 78, Rates: [4]int{82, 95, 95, 60}, Levels: [4]int{99, 95, 95, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 6, Fine: 0, Detune: 0, OutputLevel: 72, Rates: [4]int{82, 95, 95, 60}, Levels: [4]int{99, 95, 95, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 24: ORGAN   2
		Name:      "ORGAN   2",
		Algorithm: 21,
		Feedback:  4,
		LFO:       LFOParams{Waveform: 0, Speed: 60, Delay: 0, PMD: 3, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{90, 0, 0, 50}, Levels: [4]int{99, 99, 99, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 88, Rates: [4]int{90, 0, 0, 50}, Levels: [4]int{99, 99, 99, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 5, Fine: 0, Detune: 0, OutputLevel: 80, Rates: [4]int{90, 0, 0, 50}, Levels: [4]int{99, 99, 99, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 80, Rates: [4]int{90, 90, 90, 55}, Levels: [4]int{99, 92, 92, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 4, Fine: 0, Detune: 0, OutputLevel: 74, Rates: [4]int{90, 90, 90, 55}, Levels: [4]int{99, 92, 92, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 8, Fine: 0, Detune: 0, OutputLevel: 68, Rates: [4]int{90, 90, 90, 55}, Levels: [4]int{99, 92, 92, 0}, VelocitySensitivity: 0, KeyRateScaling: 0, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 25: PIPES
		Name:      "PIPES",
		Algorithm: 0,
		Feedback:  7,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 30, PMD: 3, AMD: 0, KeySync: false},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{55, 28, 22, 48}, Levels: [4]int{99, 99, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 70, Rates: [4]int{72, 55, 48, 48}, Levels: [4]int{99, 70, 62, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 55, Rates: [4]int{72, 55, 48, 48}, Levels: [4]int{99, 70, 62, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 85, Rates: [4]int{55, 28, 22, 48}, Levels: [4]int{99, 99, 96, 0}, VelocitySensitivity: 1, KeyRateScaling: 2, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 62, Rates: [4]int{72, 55, 48, 48}, Levels: [4]int{99, 70, 62, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 4, Fine: 0, Detune: 0, OutputLevel: 48, Rates: [4]int{72, 55, 48, 48}, Levels: [4]int{99, 70, 62, 0}, VelocitySensitivity: 3, KeyRateScaling: 3, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
		},
	},
	{ // 26: HARP    1
		Name:      "HARP    1",
		Algorithm: 4,
		Feedback:  5,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{96, 50, 25, 70}, Levels: [4]int{99, 72, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 10, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 76, Rates: [4]int{96, 70, 40, 60}, Levels: [4]int{99, 55, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 14, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{96, 50, 25, 70}, Levels: [4]int{99, 72, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 10, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: -1, OutputLevel: 76, Rates: [4]int{96, 70, 40, 60}, Levels: [4]int{99, 55, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 14, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{96, 55, 30, 75}, Levels: [4]int{99, 65, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 4, Fine: 0, Detune: 0, OutputLevel: 62, Rates: [4]int{96, 80, 50, 70}, Levels: [4]int{99, 48, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 27: GUITAR  1
		Name:      "GUITAR  1",
		Algorithm: 4,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{96, 50, 25, 65}, Levels: [4]int{99, 72, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 82, Rates: [4]int{96, 68, 48, 62}, Levels: [4]int{99, 55, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 24, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{96, 50, 25, 65}, Levels: [4]int{99, 72, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 20, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -1, OutputLevel: 82, Rates: [4]int{96, 68, 48, 62}, Levels: [4]int{99, 55, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 69, KLSLeftDepth: 0, KLSRightDepth: 24, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegExponential},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{96, 60, 30, 72}, Levels: [4]int{99, 68, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 72, Rates: [4]int{96, 80, 55, 70}, Levels: [4]int{99, 50, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 4, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 28: SYN-LEAD
		Name:      "SYN-LEAD",
		Algorithm: 21,
		Feedback:  7,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{80, 50, 28, 55}, Levels: [4]int{99, 99, 92, 0}, VelocitySensitivity: 2, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 1, OutputLevel: 99, Rates: [4]int{80, 50, 28, 55}, Levels: [4]int{99, 99, 92, 0}, VelocitySensitivity: 2, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 84, Rates: [4]int{80, 50, 28, 55}, Levels: [4]int{99, 99, 92, 0}, VelocitySensitivity: 2, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: -2, OutputLevel: 86, Rates: [4]int{90, 82, 88, 50}, Levels: [4]int{99, 90, 94, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 2, OutputLevel: 86, Rates: [4]int{90, 82, 88, 50}, Levels: [4]int{99, 90, 94, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 82, Rates: [4]int{90, 82, 88, 50}, Levels: [4]int{99, 90, 94, 0}, VelocitySensitivity: 3, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 29: BASS    1
		Name:      "BASS    1",
		Algorithm: 4,
		Feedback:  6,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{96, 50, 20, 60}, Levels: [4]int{99, 82, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 48, KLSLeftDepth: 0, KLSRightDepth: 40, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurvePosLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 86, Rates: [4]int{96, 72, 40, 55}, Levels: [4]int{99, 60, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 3, KLSBreakpoint: 48, KLSLeftDepth: 0, KLSRightDepth: 50, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurvePosLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{96, 50, 20, 60}, Levels: [4]int{99, 82, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 48, KLSLeftDepth: 0, KLSRightDepth: 40, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurvePosLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 86, Rates: [4]int{96, 72, 40, 55}, Levels: [4]int{99, 60, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 3, KLSBreakpoint: 48, KLSLeftDepth: 0, KLSRightDepth: 50, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurvePosLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{96, 60, 30, 68}, Levels: [4]int{99, 75, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 2, Fine: 0, Detune: 0, OutputLevel: 74, Rates: [4]int{96, 80, 50, 65}, Levels: [4]int{99, 55, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 30: BASS    2
		Name:      "BASS    2",
		Algorithm: 4,
		Feedback:  5,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{94, 48, 18, 58}, Levels: [4]int{99, 78, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 48, KLSLeftDepth: 0, KLSRightDepth: 44, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurvePosLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 90, Rates: [4]int{94, 70, 38, 52}, Levels: [4]int{99, 58, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 3, KLSBreakpoint: 48, KLSLeftDepth: 0, KLSRightDepth: 54, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurvePosLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{94, 48, 18, 58}, Levels: [4]int{99, 78, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 48, KLSLeftDepth: 0, KLSRightDepth: 44, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurvePosLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 0, Detune: 0, OutputLevel: 90, Rates: [4]int{94, 70, 38, 52}, Levels: [4]int{99, 58, 0, 0}, VelocitySensitivity: 6, KeyRateScaling: 3, KLSBreakpoint: 48, KLSLeftDepth: 0, KLSRightDepth: 54, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurvePosLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{94, 55, 28, 65}, Levels: [4]int{99, 72, 0, 0}, VelocitySensitivity: 2, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 72, Rates: [4]int{94, 78, 48, 62}, Levels: [4]int{99, 52, 0, 0}, VelocitySensitivity: 5, KeyRateScaling: 3, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 31: TUB BELL
		Name:      "TUB BELL",
		Algorithm: 4,
		Feedback:  4,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 2, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 50, Detune: 0, OutputLevel: 78, Rates: [4]int{99, 88, 96, 60}, Levels: [4]int{95, 60, 50, 0}, VelocitySensitivity: 5, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 2, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 3, Fine: 50, Detune: 0, OutputLevel: 78, Rates: [4]int{99, 88, 96, 60}, Levels: [4]int{95, 60, 50, 0}, VelocitySensitivity: 5, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 2, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 7, Fine: 12, Detune: 0, OutputLevel: 62, Rates: [4]int{99, 88, 96, 60}, Levels: [4]int{95, 60, 50, 0}, VelocitySensitivity: 5, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
	{ // 32: BELLS
		Name:      "BELLS",
		Algorithm: 4,
		Feedback:  5,
		LFO:       LFOParams{Waveform: 0, Speed: 35, Delay: 0, PMD: 0, AMD: 0, KeySync: true},
		Operators: [6]OperatorParams{
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 2, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 4, Fine: 23, Detune: 0, OutputLevel: 82, Rates: [4]int{99, 85, 96, 58}, Levels: [4]int{96, 56, 48, 0}, VelocitySensitivity: 5, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 2, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 5, Fine: 37, Detune: 0, OutputLevel: 82, Rates: [4]int{99, 85, 96, 58}, Levels: [4]int{96, 56, 48, 0}, VelocitySensitivity: 5, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 1, Fine: 0, Detune: 0, OutputLevel: 99, Rates: [4]int{72, 76, 99, 71}, Levels: [4]int{99, 88, 96, 0}, VelocitySensitivity: 2, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
			{OscMode: OscModeRatio, Coarse: 13, Fine: 0, Detune: 0, OutputLevel: 72, Rates: [4]int{99, 85, 96, 58}, Levels: [4]int{96, 56, 48, 0}, VelocitySensitivity: 5, KeyRateScaling: 2, KLSBreakpoint: 60, KLSLeftDepth: 0, KLSRightDepth: 0, KLSLeftCurve: CurveNegLinear, KLSRightCurve: CurveNegLinear},
		},
	},
}
