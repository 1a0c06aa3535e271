package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/asetbek/habi/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List habits",
	Long:    "List habits with today's check state, streaks, and categories. Archived habits are hidden unless --all is set.",
	Run: withManager(func(cmd *cobra.Command, args []string) {
		all, _ := cmd.Flags().GetBool("all")

		var habits []models.Habit
		var err error
		if all {
			habits, err = mgr.Habits()
		} else {
			habits, err = mgr.ActiveHabits()
		}
		if err != nil {
			fmt.Printf("Error fetching habits: %v\n", err)
			return
		}

		if len(habits) == 0 {
			fmt.Println("No habits found. Use 'habi add \"Habit name\"' to create your first habit.")
			return
		}

		// Print table header
		fmt.Printf("%-10s %-5s %-30s %-8s %-15s %-7s %s\n", "ID", "TODAY", "NAME", "FREQ", "CATEGORY", "STREAK", "STATE")
		fmt.Println(strings.Repeat("-", 84))

		now := time.Now()
		for _, habit := range habits {
			today := " "
			if done, err := mgr.IsCompleted(habit.ID, now); err == nil && done {
				today = "✓"
			}

			streakStr := "-"
			if streak, err := mgr.Streak(habit.ID); err == nil {
				streakStr = fmt.Sprintf("%d", streak)
			}

			categoryName := ""
			if habit.Category != nil {
				categoryName = habit.Category.Name
			}

			state := "active"
			if habit.Archived {
				state = "archived"
			}

			// Truncate name if too long
			name := habit.Name
			if len(name) > 28 {
				name = name[:25] + "..."
			}

			fmt.Printf("%-10s %-5s %-30s %-8s %-15s %-7s %s\n",
				habit.ShortID(),
				today,
				name,
				habit.Frequency,
				categoryName,
				streakStr,
				state)
		}
	}),
}

func init() {
	listCmd.Flags().BoolP("all", "a", false, "Include archived habits")
}
