package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm [habit]",
	Aliases: []string{"remove"},
	Short:   "Delete a habit and its completion history",
	Args:    cobra.ExactArgs(1),
	Run: withManager(func(cmd *cobra.Command, args []string) {
		habit, err := mgr.FindHabit(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		completions, err := mgr.CompletionsForHabit(habit.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := mgr.DeleteHabit(habit.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted habit %s: %s\n", habit.ShortID(), habit.Name)
		if len(completions) > 0 {
			fmt.Printf("Removed %d completion(s) with it\n", len(completions))
		}
	}),
}
