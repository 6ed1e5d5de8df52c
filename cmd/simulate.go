package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/abhisek/swipemath/internal/game"
	"github.com/abhisek/swipemath/internal/store"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let a bot play one game headlessly and print the result",
	Long: `Run one game on the background runner with a bot player. The bot answers
correctly with the given accuracy after every reaction delay. Lower --tick to
fast-forward; one tick still advances the game clock by 0.07 to 0.14 seconds
depending on focus.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64("accuracy", 0.85, "Probability the bot judges a card correctly")
	simulateCmd.Flags().Duration("reaction", 700*time.Millisecond, "Real time between bot swipes")
	simulateCmd.Flags().Duration("tick", 0, "Real time between ticks (default from config)")
	simulateCmd.Flags().Uint64("seed", 0, "Seed for the bot and local questions (0 = random)")
	simulateCmd.Flags().Bool("no-save", false, "Do not record the game in history")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	accuracy, _ := cmd.Flags().GetFloat64("accuracy")
	reaction, _ := cmd.Flags().GetDuration("reaction")
	tick, _ := cmd.Flags().GetDuration("tick")
	seed, _ := cmd.Flags().GetUint64("seed")
	noSave, _ := cmd.Flags().GetBool("no-save")

	e, err := setupEnv(cmd, !noSave)
	if err != nil {
		return err
	}
	defer e.Close()

	if tick <= 0 {
		tick = e.cfg.Game.TickInterval
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	src, name := e.source(ctx, seed)
	journal := store.NewJournal(e.eventRepo())
	logger := e.logger.With("component", "simulate")

	record := func(what string, err error) {
		if err != nil {
			logger.Warn("persist event failed", "event", what, "error", err)
		}
	}

	runner := game.NewRunner(src, e.cfg.Game.Settings(),
		game.WithTickInterval(tick),
		game.WithLogger(e.logger.With("component", "runner")),
		game.WithObserver(func(ev game.Event) {
			switch ev.Kind {
			case game.EventStarted:
				record("game start", journal.Start(context.Background(), ev.SessionID, name))
			case game.EventJudgment:
				record("judgment", journal.Judgment(context.Background(), ev.SessionID, ev.Outcome))
				if lc := ev.Outcome.LevelChange; lc != nil {
					fmt.Printf("  round %d: level %d → %d (accuracy %.0f%%)\n", lc.Round, lc.From, lc.To, lc.Accuracy*100)
				}
			case game.EventGameOver:
				record("game end", journal.End(context.Background(), ev.Summary))
			}
		}),
	)
	defer runner.Stop()

	fmt.Printf("Simulating a %.0fs game (source %s, accuracy %.0f%%, reaction %s, tick %s)\n",
		e.cfg.Game.MaxGameTime, name, accuracy*100, reaction, tick)

	bot := game.NewBot(accuracy, reaction, seed)
	sum := bot.Play(ctx, runner)
	if ctx.Err() != nil {
		fmt.Println("Interrupted.")
	}

	fmt.Println()
	fmt.Printf("Score:          %d\n", sum.Score)
	fmt.Printf("Answered:       %d (%d correct, %d timeouts)\n", sum.TotalAnswered, sum.TotalCorrect, sum.Timeouts)
	fmt.Printf("Accuracy:       %.0f%%\n", sum.Accuracy()*100)
	fmt.Printf("Best streak:    %d\n", sum.BestStreak)
	fmt.Printf("Rounds:         %d\n", sum.Rounds)
	fmt.Printf("Level:          %d (highest %d)\n", sum.FinalLevel, sum.HighestLevel)
	if journal.Enabled() && sum.ID != "" {
		fmt.Printf("Saved as %s\n", sum.ID)
	}
	return nil
}
