package distribution

import "agendly/config"

// DurationTable maps appointment types to slot lengths in minutes. Types not
// present fall back to Default.
type DurationTable struct {
	ByType  map[string]int
	Default int
}

// Minutes returns the slot length for the given appointment type.
func (t DurationTable) Minutes(apptType string) int {
	if d, ok := t.ByType[apptType]; ok && d > 0 {
		return d
	}
	return t.Default
}

// TableFromConfig builds the duration table from application config so product
// can adjust per-type durations without a code change.
func TableFromConfig() DurationTable {
	byType := make(map[string]int, len(config.AppConfig.DurationsByType))
	for k, v := range config.AppConfig.DurationsByType {
		byType[k] = v
	}
	def := config.AppConfig.DefaultDurationMin
	if def <= 0 {
		def = 30
	}
	return DurationTable{ByType: byType, Default: def}
}
