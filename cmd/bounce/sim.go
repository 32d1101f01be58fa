package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bounce-joy/internal/bounce"
	"github.com/vovakirdan/bounce-joy/internal/config"
	"github.com/vovakirdan/bounce-joy/internal/storage"
)

var (
	flagSimTicks   int
	flagSimEndless bool
	flagSimWidth   float64
	flagSimHeight  float64
	flagSimSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game on autopilot",
	Long: `Plays a game without a terminal: the autopilot starts each level and
steers the paddle under the next falling ball. Events are logged and the
final state is printed as YAML, including a hash that is identical for
identical seeds.

Examples:
  bounce sim --seed 7
  bounce sim --seed 7 --ticks 100000 --endless
  bounce sim --log-level debug --difficulty hard
  bounce sim --save`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 36000, "Maximum ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimEndless, "endless", false, "Play endless mode instead of the campaign")
	simCmd.Flags().Float64Var(&flagSimWidth, "width", 300, "Canvas width in pixels")
	simCmd.Flags().Float64Var(&flagSimHeight, "height", 534, "Canvas height in pixels")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
}

// SimReport is the YAML document printed by the sim command.
type SimReport struct {
	Seed     int64           `yaml:"seed"`
	Outcome  string          `yaml:"outcome"`
	Elapsed  string          `yaml:"elapsed"`
	Hash     string          `yaml:"hash"`
	Snapshot bounce.Snapshot `yaml:"snapshot"`
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("sim", false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadBounce(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, _ := config.ParseDifficulty(flagDifficulty) // Checked in PersistentPreRunE
		config.ApplyBouncePreset(&cfg, preset)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mode := bounce.ModeCampaign
	if flagSimEndless {
		mode = bounce.ModeEndless
	}

	session, err := bounce.NewSession(bounce.SessionConfig{
		Width:      flagSimWidth,
		Height:     flagSimHeight,
		Seed:       seed,
		Mode:       mode,
		StartLevel: flagStartLevel,
		Game:       cfg,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	outcome := simulate(session, bounce.DefaultAutopilot(), flagSimTicks, logger)
	report := SimReport{
		Seed:     seed,
		Outcome:  outcome,
		Elapsed:  time.Since(start).Round(time.Millisecond).String(),
		Snapshot: session.Snapshot(),
	}
	report.Hash = fmt.Sprintf("%016x", report.Snapshot.Hash())

	if flagSimSave {
		saveSimRun(session, mode, seed, outcome, logger)
	}
	return writeReport(os.Stdout, report)
}

// simulate runs the pilot until the game ends or maxTicks pass and
// returns the storage outcome of the run.
func simulate(s *bounce.Session, pilot bounce.Autopilot, maxTicks int, logger *log.Logger) string {
	for i := 0; i < maxTicks; i++ {
		if err := pilot.Drive(s); err != nil {
			logger.Error("autopilot", "tick", s.Tick(), "error", err)
			break
		}
		for _, ev := range s.Update() {
			logEvent(logger, s.Tick(), ev)
		}
		if s.State().Terminal() {
			break
		}
	}

	switch s.State() {
	case bounce.StateWin:
		return storage.OutcomeWon
	case bounce.StateGameOver:
		return storage.OutcomeLost
	default:
		return storage.OutcomeQuit
	}
}

func logEvent(logger *log.Logger, tick uint64, ev bounce.Event) {
	switch ev.(type) {
	case bounce.LevelStarted, bounce.LevelCompleted, bounce.LifeLost, bounce.GameOver, bounce.GameWon:
		logger.Info(bounce.Describe(ev), "tick", tick)
	case bounce.PowerUpCollected:
		logger.Debug(bounce.Describe(ev), "tick", tick)
	}
}

func saveSimRun(s *bounce.Session, mode bounce.Mode, seed int64, outcome string, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return
	}
	defer store.Close()

	gameID := "bounce"
	if mode == bounce.ModeEndless {
		gameID = "bounce_endless"
	}
	_, err = store.SaveRun(storage.RunRecord{
		GameID:  gameID,
		Score:   s.Score(),
		Level:   s.Level(),
		Outcome: outcome,
		Ticks:   s.Tick(),
		Seed:    seed,
	})
	if err != nil {
		logger.Warn("cannot save run", "error", err)
	}
}

func writeReport(w io.Writer, report SimReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
