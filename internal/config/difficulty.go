package config

import "fmt"

// DifficultyPreset represents a named board size.
type DifficultyPreset string

const (
	DifficultyBeginner     DifficultyPreset = "beginner"
	DifficultyIntermediate DifficultyPreset = "intermediate"
	DifficultyExpert       DifficultyPreset = "expert"
	DifficultyClassic      DifficultyPreset = "classic"
)

// Presets lists every preset in menu order.
var Presets = []DifficultyPreset{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyExpert,
	DifficultyClassic,
}

var builtinPresets = map[DifficultyPreset]BoardConfig{
	DifficultyBeginner:     {Rows: 9, Cols: 9, BombPercentage: 8},
	DifficultyIntermediate: {Rows: 16, Cols: 16, BombPercentage: 6},
	DifficultyExpert:       {Rows: 16, Cols: 30, BombPercentage: 5},
	DifficultyClassic:      {Rows: 12, Cols: 12, BombPercentage: 10},
}

// ParsePreset maps a CLI value to a preset. The empty string is accepted and
// means the configured default board.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(s)
	if _, ok := builtinPresets[p]; !ok {
		return "", fmt.Errorf("config: unknown preset %q (want beginner, intermediate, expert or classic)", s)
	}
	return p, nil
}

// Title returns the display name of the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyExpert:
		return "Expert"
	case DifficultyClassic:
		return "Classic"
	default:
		return string(p)
	}
}

// ApplyOverrides replaces any non-zero field of b with the override.
// CLI flags use this on top of the loaded board.
func ApplyOverrides(b BoardConfig, rows, cols, percentage int) BoardConfig {
	if rows > 0 {
		b.Rows = rows
	}
	if cols > 0 {
		b.Cols = cols
	}
	if percentage > 0 {
		b.BombPercentage = percentage
	}
	return b
}
