// Package config provides YAML-based configuration loading for the sprite
// demos. The embedded default document holds the stock window, asset and
// sprite values.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/sprite-demo/internal/core"
)

// Config contains all configuration for a run.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Asset  AssetConfig  `yaml:"asset"`
	Sprite SpriteConfig `yaml:"sprite"`
	Player PlayerConfig `yaml:"player"`
	Loop   LoopConfig   `yaml:"loop"`
}

// WindowConfig defines the presentation surface.
type WindowConfig struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Centered     bool   `yaml:"centered"`
	DebugOverlay bool   `yaml:"debug_overlay"`
}

// AssetConfig locates the texture.
type AssetConfig struct {
	Path string `yaml:"path"`
}

// SpriteConfig is the texture region drawn for the player.
type SpriteConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the entity's initial state.
type PlayerConfig struct {
	StartX int    `yaml:"start_x"`
	StartY int    `yaml:"start_y"`
	Speed  int    `yaml:"speed"` // 0 = demo default
	Facing string `yaml:"facing"`
}

// LoopConfig selects the demo, its host and its pacing.
type LoopConfig struct {
	Demo     string `yaml:"demo"`
	Backend  string `yaml:"backend"`   // "window", "tui" or "headless"
	TickRate int    `yaml:"tick_rate"` // 0 = demo default
}

// Backend names accepted in LoopConfig.Backend.
const (
	BackendWindow   = "window"
	BackendTUI      = "tui"
	BackendHeadless = "headless"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the config describes a runnable demo.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: %w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Sprite.Width <= 0 || c.Sprite.Height <= 0:
		return fmt.Errorf("config: %w: sprite size %dx%d", ErrInvalid, c.Sprite.Width, c.Sprite.Height)
	case c.Sprite.X < 0 || c.Sprite.Y < 0:
		return fmt.Errorf("config: %w: sprite origin (%d, %d)", ErrInvalid, c.Sprite.X, c.Sprite.Y)
	case c.Asset.Path == "":
		return fmt.Errorf("config: %w: empty asset path", ErrInvalid)
	case c.Player.Speed < 0:
		return fmt.Errorf("config: %w: negative speed %d", ErrInvalid, c.Player.Speed)
	case c.Loop.TickRate < 0:
		return fmt.Errorf("config: %w: negative tick rate %d", ErrInvalid, c.Loop.TickRate)
	}

	if _, err := core.ParseDirection(c.Player.Facing); err != nil {
		return fmt.Errorf("config: %w: facing: %v", ErrInvalid, err)
	}

	switch c.Loop.Backend {
	case BackendWindow, BackendTUI, BackendHeadless:
	default:
		return fmt.Errorf("config: %w: unknown backend %q", ErrInvalid, c.Loop.Backend)
	}
	return nil
}

// Runtime converts the config into the values handed to a demo.
// Call Validate first; an unparsable facing falls back to right.
func (c Config) Runtime() core.RuntimeConfig {
	facing, err := core.ParseDirection(c.Player.Facing)
	if err != nil {
		facing = core.DirRight
	}
	return core.RuntimeConfig{
		ScreenW:  c.Window.Width,
		ScreenH:  c.Window.Height,
		TickRate: c.Loop.TickRate,
		Speed:    c.Player.Speed,
		Start:    core.Pt(c.Player.StartX, c.Player.StartY),
		Sprite:   core.NewRect(c.Sprite.X, c.Sprite.Y, c.Sprite.Width, c.Sprite.Height),
		Facing:   facing,
	}
}
