package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [habit]",
	Short: "Show streak and completion rate for a habit",
	Long: `Show the current streak and the completion rate over a trailing
window (30 days unless --days is given).

Examples:
  habi stats "Read 20 pages"
  habi stats 3f2a --days 7`,
	Args: cobra.ExactArgs(1),
	Run: withManager(func(cmd *cobra.Command, args []string) {
		habit, err := mgr.FindHabit(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		days, _ := cmd.Flags().GetInt("days")
		if days <= 0 {
			fmt.Println("Error: --days must be positive")
			return
		}

		streak, err := mgr.Streak(habit.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		rate, err := mgr.CompletionRate(habit.ID, days)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		completions, err := mgr.CompletionsForHabit(habit.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📊 %s (%s)\n", habit.Name, habit.Frequency)
		if habit.Description != "" {
			fmt.Printf("   %s\n", habit.Description)
		}
		fmt.Printf("Streak:          %d day(s)\n", streak)
		fmt.Printf("Last %d days:    %.1f%%\n", days, rate)
		fmt.Printf("Total check-ins: %d\n", len(completions))
	}),
}

func init() {
	statsCmd.Flags().IntP("days", "n", 30, "Window size in days for the completion rate")
}
