// Package config provides YAML-based game configuration loading and
// difficulty presets for the blocks platform.
package config

// BlocksConfig contains all tunable parameters for the block puzzle.
type BlocksConfig struct {
	Generation GenerationConfig `yaml:"generation"`
	Animation  AnimationConfig  `yaml:"animation"`
}

// GenerationConfig controls how block generation scales with score.
// The three thresholds split the score range into four bands, each with
// its own mix of simple/medium/complex shapes.
type GenerationConfig struct {
	Fixed      bool `yaml:"fixed"`       // Ignore score; always use the opening mix
	MediumAt   int  `yaml:"medium_at"`   // Score where medium shapes start mixing in
	AdvancedAt int  `yaml:"advanced_at"` // Score where complex shapes become common
	ExpertAt   int  `yaml:"expert_at"`   // Score where complex shapes dominate
}

// AnimationConfig controls presentation-side timing.
type AnimationConfig struct {
	ClearTicks int `yaml:"clear_ticks"` // Ticks the clear flash holds before play resumes
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyBlocksPreset modifies the config based on a difficulty preset.
// Easy pushes the harder shape bands further out; hard pulls them in;
// fixed pins generation to the opening mix regardless of score.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Generation.MediumAt = cfg.Generation.MediumAt * 3 / 2
		cfg.Generation.AdvancedAt = cfg.Generation.AdvancedAt * 3 / 2
		cfg.Generation.ExpertAt = cfg.Generation.ExpertAt * 3 / 2
	case DifficultyHard:
		cfg.Generation.MediumAt = cfg.Generation.MediumAt * 3 / 5
		cfg.Generation.AdvancedAt = cfg.Generation.AdvancedAt * 3 / 5
		cfg.Generation.ExpertAt = cfg.Generation.ExpertAt * 3 / 5
	case DifficultyFixed:
		cfg.Generation.Fixed = true
	}
}
