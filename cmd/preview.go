package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/swipemath/internal/game"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a batch of questions for a level (no database)",
	Long: `Generate one batch of questions from the configured source and print it.

This is a stateless developer tool: no database, no history, no timers.
With --quiz the questions are asked one by one instead.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("level", 1, "Difficulty level (1-10)")
	previewCmd.Flags().Int("count", game.RefillBatch, "Number of questions to generate")
	previewCmd.Flags().Uint64("seed", 0, "Seed for local questions (0 = from config or random)")
	previewCmd.Flags().Bool("quiz", false, "Answer the questions interactively")
}

func runPreview(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetInt("level")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	quiz, _ := cmd.Flags().GetBool("quiz")

	if level < game.MinLevel || level > game.MaxLevel {
		return fmt.Errorf("invalid level %d: must be between %d and %d", level, game.MinLevel, game.MaxLevel)
	}
	if count <= 0 {
		return fmt.Errorf("invalid count %d: must be positive", count)
	}

	e, err := setupEnv(cmd, false)
	if err != nil {
		return err
	}
	defer e.Close()

	src, name := e.source(cmd.Context(), seed)
	fmt.Printf("Level %d (%gs per card), source %s\n", level, game.TimeLimit(level), name)
	fmt.Printf("Generating %d questions...\n\n", count)

	qs := src.Generate(cmd.Context(), count, level)
	if len(qs) == 0 {
		return fmt.Errorf("no questions generated")
	}

	if !quiz {
		fmt.Printf("%-4s  %-28s  %-5s  %s\n", "#", "Equation", "True", "ID")
		fmt.Println(strings.Repeat("─", 60))
		for i, q := range qs {
			fmt.Printf("%-4d  %-28s  %-5v  %s\n", i+1, q.Equation, q.IsCorrect, q.ID)
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct int
	for i, q := range qs {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(qs))
		fmt.Println(q.Equation)
		fmt.Print("\nTrue or false? [t/f] ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}

		var said bool
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "t", "true", "y":
			said = true
		case "f", "false", "n":
			said = false
		default:
			fmt.Print("(skipped)\n\n")
			continue
		}

		if said == q.IsCorrect {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m The equation is %v.\n", q.IsCorrect)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(qs))
	return nil
}
