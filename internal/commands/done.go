package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/asetbek/habi/internal/db"
	"github.com/asetbek/habi/internal/parser"
)

var doneCmd = &cobra.Command{
	Use:   "done [habit]",
	Short: "Mark a habit as done for a day",
	Long: `Mark a habit as done for a day (today unless --on is given). Marking
the same day twice is a no-op.

Examples:
  habi done "Read 20 pages"
  habi done 3f2a --on yesterday
  habi done 3f2a --on "2 days ago" --note "barely"`,
	Args: cobra.ExactArgs(1),
	Run: withManager(func(cmd *cobra.Command, args []string) {
		habit, err := mgr.FindHabit(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		day, err := parseOnFlag(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := mgr.SetCompleted(habit.ID, day, true); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Attach the note to whichever completion covers the day, whether
		// it was just created or already there
		if note, _ := cmd.Flags().GetString("note"); note != "" {
			completion, err := mgr.CompletionOn(habit.ID, day)
			if err == nil && completion != nil {
				if _, err := mgr.UpdateCompletion(completion.ID, db.UpdateCompletionParams{Note: &note}); err != nil {
					fmt.Printf("Error: %v\n", err)
					return
				}
			}
		}

		fmt.Printf("✅ %s: done (%s)\n", habit.Name, parser.FormatDay(day))
		if streak, err := mgr.Streak(habit.ID); err == nil && streak > 1 {
			fmt.Printf("🔥 Streak: %d days\n", streak)
		}
	}),
}

var undoneCmd = &cobra.Command{
	Use:   "undone [habit]",
	Short: "Unmark a habit for a day",
	Args:  cobra.ExactArgs(1),
	Run: withManager(func(cmd *cobra.Command, args []string) {
		habit, err := mgr.FindHabit(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		day, err := parseOnFlag(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := mgr.SetCompleted(habit.ID, day, false); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("↩️  %s: unmarked (%s)\n", habit.Name, parser.FormatDay(day))
	}),
}

// parseOnFlag reads the --on flag, defaulting to now so today's
// completions keep their time of day
func parseOnFlag(cmd *cobra.Command) (time.Time, error) {
	on, _ := cmd.Flags().GetString("on")
	if on == "" {
		return time.Now(), nil
	}
	return parser.ParseDay(on)
}

func init() {
	doneCmd.Flags().String("on", "", "Day to mark (today, yesterday, X days ago, yyyy-mm-dd)")
	doneCmd.Flags().String("note", "", "Note to attach to the completion")
	undoneCmd.Flags().String("on", "", "Day to unmark (today, yesterday, X days ago, yyyy-mm-dd)")
}
