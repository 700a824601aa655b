package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default block puzzle configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Generation: GenerationConfig{
			Fixed:      false,
			MediumAt:   500,
			AdvancedAt: 1500,
			ExpertAt:   3000,
		},
		Animation: AnimationConfig{
			ClearTicks: 45, // 0.75s at 60 FPS
		},
	}
}
