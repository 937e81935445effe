package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagConfig string
	flagWidth  int
	flagHeight int
	flagTicks  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the simulator",
	Long: `Start the Game of Life simulator.

Controls:
  Space        - Pause/resume
  N            - Step one generation (while paused)
  R            - Reseed the board
  C            - Clear the board
  Arrows/WASD  - Move the cursor
  Enter/T      - Toggle the cell under the cursor
  G            - Stamp a glider at the cursor
  P            - Stamp a pulsar at the cursor
  +/-          - Generations per frame up/down
  ]/[  }/{     - Grow/shrink grid width and height
  Q/Ctrl+C     - Quit

Examples:
  life play
  life play --width 40 --height 20
  life play --seed 42 --fps 30
  life play --config ./my-life.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width (0 = from config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height (0 = from config)")
	playCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Generations per frame (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "life"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rt := resolveRuntime(cfg)

	// Open run history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage - the simulator still works
		store = nil
	}

	runErr := tui.Run(rt, cfg.Display, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulator: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveRuntime merges config file values with command line flags.
// Flags win over config; a zero grid dimension falls back to the
// terminal size.
func resolveRuntime(cfg config.Config) core.RuntimeConfig {
	rt := core.DefaultConfig()

	rt.GridW = cfg.Grid.Width
	rt.GridH = cfg.Grid.Height
	if cfg.Grid.TicksPerUpdate > 0 {
		rt.TicksPerUpdate = cfg.Grid.TicksPerUpdate
	}
	if cfg.Simulation.FPS > 0 {
		rt.TickRate = cfg.Simulation.FPS
	}

	if flagWidth > 0 {
		rt.GridW = flagWidth
	}
	if flagHeight > 0 {
		rt.GridH = flagHeight
	}
	if flagTicks > 0 {
		rt.TicksPerUpdate = flagTicks
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed

	// Fit the terminal when a dimension is unset
	if rt.GridW <= 0 || rt.GridH <= 0 {
		termW, termH := terminalSize()
		if rt.GridW <= 0 {
			rt.GridW = termW
		}
		if rt.GridH <= 0 {
			rt.GridH = termH - 3 // Leave room for the HUD
		}
	}

	return rt
}

// terminalSize probes the terminal, with defaults for non-TTY output.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
