package config

import (
	_ "embed"
)

//go:embed defaults/sprite.yaml
var defaultSpriteYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:    "game tutorial",
			Width:    800,
			Height:   600,
			Centered: true,
		},
		Asset: AssetConfig{
			Path: "assets/bardo.png",
		},
		Sprite: SpriteConfig{
			X:      0,
			Y:      0,
			Width:  26,
			Height: 36,
		},
		Player: PlayerConfig{
			Facing: "right",
		},
		Loop: LoopConfig{
			Demo:    "walk",
			Backend: BackendWindow,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultSpriteYAML
}
