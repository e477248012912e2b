package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shield-duel/internal/audio"
	"github.com/vovakirdan/shield-duel/internal/config"
	"github.com/vovakirdan/shield-duel/internal/core"
	"github.com/vovakirdan/shield-duel/internal/games/duel"
	"github.com/vovakirdan/shield-duel/internal/platform/tui"
	"github.com/vovakirdan/shield-duel/internal/storage"
)

var (
	flagMode    string
	flagP1      string
	flagP2      string
	flagConfig  string
	flagWatch   bool
	flagMute    bool
	flagVolume  int
	flagNoMenu  bool
	flagProfile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a local match",
	Long: `Start a local duel in the terminal.

Controls:
  Player 1     W A S D move, Space fire, Q shield
  Player 2     Arrows move, Enter fire, M shield
  Enter        Start the match
  P            Pause / resume
  R            Rematch (after a match)
  Esc          Back to the setup menu
  Ctrl+C       Quit

Terminals report key presses but not releases, so a key stays held for a
short window after its last repeat (input.hold_ms in the config).

Modes:
  duo   - two players on one keyboard
  solo  - player 1 against the computer

Examples:
  duel play
  duel play --mode solo --p1 Ann --no-menu
  duel play --config ./duel.yaml --watch
  duel play --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Match mode: duo or solo (default: last used)")
	playCmd.Flags().StringVar(&flagP1, "p1", "", "Player 1 name")
	playCmd.Flags().StringVar(&flagP2, "p2", "", "Player 2 name")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().IntVar(&flagVolume, "volume", 70, "Sound volume 0-100")
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the setup menu")
	playCmd.Flags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Preferences profile")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	duelCfg, err := config.LoadDuel(flagConfig)
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}.Normalize()

	// Open preferences storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open preferences database", "error", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	prefs, err := playPreferences(cmd, store)
	if err != nil {
		return err
	}

	sessionLog, closeLog, err := openSessionLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	var watcher *config.Watcher
	if flagWatch {
		watcher, err = startWatcher()
		if err != nil {
			logger.Warn("config hot reload disabled", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	var player audio.Player = audio.Nop{}
	if !prefs.Muted {
		sm := audio.NewSoundManager(prefs.Volume)
		if initErr := sm.Initialize(); initErr != nil {
			logger.Warn("sound disabled", "error", initErr)
		} else {
			defer sm.Cleanup()
			player = sm
		}
	}

	return tui.Run(tui.SessionOptions{
		Config:   duelCfg,
		Runtime:  runtime,
		Profile:  flagProfile,
		Store:    store,
		Prefs:    &prefs,
		SkipMenu: flagNoMenu,
		Audio:    player,
		Watcher:  watcher,
		Logger:   sessionLog,
	})
}

// playPreferences loads the stored preferences and applies explicit flags.
func playPreferences(cmd *cobra.Command, store *storage.Store) (storage.Preferences, error) {
	prefs := storage.DefaultPreferences(flagProfile)
	if store != nil {
		loaded, _, err := store.LoadPreferences(flagProfile)
		if err != nil {
			logger.Warn("could not load preferences", "error", err)
		} else {
			prefs = loaded
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		mode, err := duel.ParseMode(flagMode)
		if err != nil {
			return prefs, err
		}
		prefs.Mode = mode.String()
	}
	if flags.Changed("p1") {
		prefs.P1Name = flagP1
	}
	if flags.Changed("p2") {
		prefs.P2Name = flagP2
	}
	if flags.Changed("volume") {
		prefs.Volume = core.Clamp(flagVolume, 0, 100)
	}
	if flags.Changed("mute") {
		prefs.Muted = flagMute
	}
	return prefs, nil
}

// startWatcher watches the config file a match loaded from.
func startWatcher() (*config.Watcher, error) {
	path := config.WatchPath(flagConfig)
	if path == "" {
		return nil, errors.New("no config file to watch")
	}
	return config.NewWatcher(path, config.DefaultDebounce)
}
