package preset

import "strings"

// Factory returns the complete ROM1A factory bank (the DX7's 32 built-in
// voices, transcribed in rom1a.go) plus the INIT VOICE default, keyed by
// trimmed preset name. ROM1A voice names keep the DX7's original internal
// spacing (e.g. "BRASS   1"); keys here have any leading or trailing
// spaces trimmed for convenient lookup, matching the names printed in
// rom1a.go's per-entry comments.
func Factory() map[string]Preset {
	bank := make(map[string]Preset, len(romPresets)+1)
	bank["INIT VOICE"] = Default()
	for _, p := range romPresets {
		bank[strings.TrimSpace(p.Name)] = p
	}
	return bank
}

// FactoryNames returns the factory bank's preset names in canonical
// ROM1A order, with "INIT VOICE" first.
func FactoryNames() []string {
	names := make([]string, 0, len(romPresets)+1)
	names = append(names, "INIT VOICE")
	for _, p := range romPresets {
		names = append(names, strings.TrimSpace(p.Name))
	}
	return names
}
