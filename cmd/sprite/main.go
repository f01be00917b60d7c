// sprite shows a textured sprite in a window and moves it with the arrow keys.
//
// Usage:
//
//	sprite                   - Run the default demo (walk)
//	sprite play [demo]       - Run a demo
//	sprite list              - List available demos
//	sprite config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - YAML config overlaid on the built-in defaults
//	--fps <rate>       - Tick rate (0 = demo default)
//	--speed <n>        - Distance per frame (0 = demo default)
//	--asset <path>     - Texture to load
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"os"

	"github.com/charmbracelet/log"
	_ "github.com/ebitengine/hideconsole"
	"github.com/spf13/cobra"

	// Import demos to register them
	_ "github.com/vovakirdan/sprite-demo/internal/demos"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSpeed    int
	flagAsset    string
	flagLogLevel string
)

// logger is replaced in PersistentPreRunE once --log-level is known.
var logger = newLogger(log.InfoLevel)

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sprite",
		Level:           level,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sprite",
	Short: "Sprite demo - move a textured sprite with the arrow keys",
	Long: `sprite renders one character cut from a texture atlas and moves it
around the screen with the arrow keys. Three demos build on each other:

  still  - static sprite over a color-cycling background
  drift  - arrows set velocity per axis
  walk   - one axis at a time, halted on release

Examples:
  sprite
  sprite play drift
  sprite play walk --backend tui
  sprite play walk --backend headless --ticks 100
  sprite --config ./my-sprite.yaml config`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logger = newLogger(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = demo default)")
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 0, "Distance per frame (0 = demo default)")
	rootCmd.PersistentFlags().StringVar(&flagAsset, "asset", "", "Path to the texture (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Root runs play directly, so it accepts its flags too
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
