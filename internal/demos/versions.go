package demos

import (
	"github.com/vovakirdan/sprite-demo/internal/player"
	"github.com/vovakirdan/sprite-demo/internal/registry"
)

// DefaultID is the demo run when none is named.
const DefaultID = "walk"

var versions = []version{
	{
		id:       "still",
		title:    "Still Sprite",
		movable:  false,
		defaults: registry.Defaults{TickRate: 60, Speed: 0},
	},
	{
		id:       "drift",
		title:    "Drifting Sprite",
		movable:  true,
		policy:   player.PerAxis,
		defaults: registry.Defaults{TickRate: 60, Speed: 5},
	},
	{
		id:       "walk",
		title:    "Walking Sprite",
		movable:  true,
		policy:   player.AxisExclusive,
		defaults: registry.Defaults{TickRate: 20, Speed: 20},
	},
}

// New creates the demo with the given id, or nil if there is none.
func New(id string) *Demo {
	for _, s := range versions {
		if s.id == id {
			return newDemo(s)
		}
	}
	return nil
}

// Register the demos with the registry
func init() {
	for _, s := range versions {
		s := s
		registry.Register(s.id, func() registry.Demo {
			return newDemo(s)
		})
	}
}
