package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-golf/internal/audio/synth"
	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/platform/tui"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

var (
	flagPlayers int
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play [course]",
	Short: "Play a course",
	Long: `Start a match. Without an argument a menu lets you pick the course and
the number of players; with a course id ("sample", "01", ...) or name the
match starts right away.

Controls:
  Mouse       - Click the tee to place the ball, swipe through it to putt
  Enter       - Continue / tee off from the first start zone
  Double click twice during play - Leave the match
  Esc/B       - Back to the menu
  R           - Play again after the final standings
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Examples:
  golf play
  golf play sample --players 3
  golf play 01 --courses ./courses --fps 30
  golf play --sound=false`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayers, "players", 1, "Number of players (1-4)")
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, logFile := openLog()
	defer logFile.Close()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("sound") {
		cfg.Audio.Enabled = flagSound
	}

	env, err := newEnv(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var start *course.Entry
	if len(args) == 1 {
		entry, ok := env.Library.Find(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown course %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'golf courses' to see available courses.")
			os.Exit(1)
		}
		start = &entry
	}

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Timing.TickRate
	rc.Players = flagPlayers
	rc.Sound = cfg.Audio.Enabled

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	env.Sound = synth.New(cfg.Audio, synth.WithLogger(logger))

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		logger.Warn("no round history", "db", flagDBPath, "err", err)
		// Continue without storage - game still works
	} else {
		env.Store = store
	}

	runErr := tui.Run(env, rc, start)

	if env.Store != nil {
		env.Store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
