package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asetbek/habi/internal/models"
	"github.com/asetbek/habi/internal/parser"
)

var logCmd = &cobra.Command{
	Use:   "log [habit]",
	Short: "Show completion history",
	Long: `Show completion history for one habit, or for every habit in a day
range with --from/--to.

Examples:
  habi log "Read 20 pages"
  habi log --from "7 days ago" --to today`,
	Args: cobra.MaximumNArgs(1),
	Run: withManager(func(cmd *cobra.Command, args []string) {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		if len(args) == 0 && from == "" && to == "" {
			fmt.Println("Give a habit, or a --from/--to range. See 'habi log --help'.")
			return
		}

		var completions []models.Completion
		var err error

		if len(args) == 1 {
			habit, findErr := mgr.FindHabit(args[0])
			if findErr != nil {
				fmt.Printf("Error: %v\n", findErr)
				return
			}
			completions, err = mgr.CompletionsForHabit(habit.ID)
			if err == nil {
				fmt.Printf("Completions for %s:\n", habit.Name)
			}
		} else {
			fromDay, parseErr := parser.ParseDay(from)
			if parseErr != nil {
				fmt.Printf("Error: invalid --from: %v\n", parseErr)
				return
			}
			toDay, parseErr := parser.ParseDay(to)
			if parseErr != nil {
				fmt.Printf("Error: invalid --to: %v\n", parseErr)
				return
			}
			completions, err = mgr.CompletionsBetween(fromDay, toDay)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(completions) == 0 {
			fmt.Println("No completions found.")
			return
		}

		fmt.Printf("%-22s %-30s %s\n", "DAY", "HABIT", "NOTE")
		fmt.Println(strings.Repeat("-", 70))
		for _, completion := range completions {
			habitName := completion.HabitID
			if habit, err := mgr.HabitByID(completion.HabitID); err == nil {
				habitName = habit.Name
			}
			if len(habitName) > 28 {
				habitName = habitName[:25] + "..."
			}
			fmt.Printf("%-22s %-30s %s\n", parser.FormatDay(completion.Date), habitName, completion.Note)
		}
	}),
}

func init() {
	logCmd.Flags().String("from", "", "Start day of the range")
	logCmd.Flags().String("to", "", "End day of the range")
}
