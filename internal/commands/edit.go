package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asetbek/habi/internal/db"
	"github.com/asetbek/habi/internal/models"
)

var editCmd = &cobra.Command{
	Use:   "edit [habit]",
	Short: "Edit a habit",
	Long: `Edit a habit. Only the flags you pass change; everything else is left
as it was. The habit can be referenced by ID, ID prefix, or name.

Examples:
  habi edit "Read 20 pages" --freq weekly
  habi edit 3f2a --name "Read 30 pages" --category reading
  habi edit 3f2a --no-category`,
	Args: cobra.ExactArgs(1),
	Run: withManager(func(cmd *cobra.Command, args []string) {
		habit, err := mgr.FindHabit(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		var params db.UpdateHabitParams

		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			params.Name = &name
		}
		if cmd.Flags().Changed("desc") {
			desc, _ := cmd.Flags().GetString("desc")
			params.Description = &desc
		}
		if cmd.Flags().Changed("freq") {
			freqStr, _ := cmd.Flags().GetString("freq")
			freq := models.Frequency(strings.ToLower(freqStr))
			params.Frequency = &freq
		}
		if noCategory, _ := cmd.Flags().GetBool("no-category"); noCategory {
			params.ClearCategory = true
		} else if cmd.Flags().Changed("category") {
			ref, _ := cmd.Flags().GetString("category")
			category, err := findOrCreateCategory(ref)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			params.CategoryID = &category.ID
		}

		updated, err := mgr.UpdateHabit(habit.ID, params)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated habit %s: %s (%s)\n", updated.ShortID(), updated.Name, updated.Frequency)
	}),
}

var archiveCmd = &cobra.Command{
	Use:     "archive [habit]",
	Aliases: []string{"a"},
	Short:   "Archive a habit (stop tracking it)",
	Args:    cobra.ExactArgs(1),
	Run: withManager(func(cmd *cobra.Command, args []string) {
		habit, err := mgr.FindHabit(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		archived := true
		updated, err := mgr.UpdateHabit(habit.ID, db.UpdateHabitParams{Archived: &archived})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗃️  Archived habit %s: %s\n", updated.ShortID(), updated.Name)
	}),
}

var unarchiveCmd = &cobra.Command{
	Use:     "unarchive [habit]",
	Aliases: []string{"ua"},
	Short:   "Unarchive a habit (resume tracking)",
	Args:    cobra.ExactArgs(1),
	Run: withManager(func(cmd *cobra.Command, args []string) {
		habit, err := mgr.FindHabit(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		archived := false
		updated, err := mgr.UpdateHabit(habit.ID, db.UpdateHabitParams{Archived: &archived})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📤 Unarchived habit %s: %s\n", updated.ShortID(), updated.Name)
	}),
}

func init() {
	editCmd.Flags().StringP("name", "n", "", "New habit name")
	editCmd.Flags().StringP("desc", "d", "", "New description")
	editCmd.Flags().StringP("freq", "f", "", "Frequency: daily or weekly")
	editCmd.Flags().StringP("category", "c", "", "Category name or ID")
	editCmd.Flags().Bool("no-category", false, "Remove the category link")
}
