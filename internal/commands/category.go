package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asetbek/habi/internal/db"
)

var catCmd = &cobra.Command{
	Use:     "cat",
	Aliases: []string{"category", "categories"},
	Short:   "Manage habit categories",
}

var catAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	Run: withManager(func(cmd *cobra.Command, args []string) {
		color, _ := cmd.Flags().GetString("color")

		category, err := mgr.CreateCategory(args[0], color)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Added category %s: %s\n", category.ShortID(), category.Name)
	}),
}

var catListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List categories",
	Run: withManager(func(cmd *cobra.Command, args []string) {
		categories, err := mgr.Categories()
		if err != nil {
			fmt.Printf("Error fetching categories: %v\n", err)
			return
		}

		if len(categories) == 0 {
			fmt.Println("No categories found. Use 'habi cat add <name>' to create one.")
			return
		}

		fmt.Printf("%-10s %-20s %-10s %s\n", "ID", "NAME", "COLOR", "HABITS")
		fmt.Println(strings.Repeat("-", 50))

		habits, err := mgr.Habits()
		if err != nil {
			fmt.Printf("Error fetching habits: %v\n", err)
			return
		}

		for _, category := range categories {
			count := 0
			for _, habit := range habits {
				if habit.CategoryID != nil && *habit.CategoryID == category.ID {
					count++
				}
			}
			fmt.Printf("%-10s %-20s %-10s %d\n", category.ShortID(), category.Name, category.Color, count)
		}
	}),
}

var catEditCmd = &cobra.Command{
	Use:   "edit [category]",
	Short: "Edit a category",
	Args:  cobra.ExactArgs(1),
	Run: withManager(func(cmd *cobra.Command, args []string) {
		category, err := mgr.FindCategory(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		var params db.UpdateCategoryParams
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			params.Name = &name
		}
		if cmd.Flags().Changed("color") {
			color, _ := cmd.Flags().GetString("color")
			params.Color = &color
		}

		updated, err := mgr.UpdateCategory(category.ID, params)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated category %s: %s\n", updated.ShortID(), updated.Name)
	}),
}

var catRmCmd = &cobra.Command{
	Use:     "rm [category]",
	Aliases: []string{"remove"},
	Short:   "Delete a category (habits keep running without it)",
	Args:    cobra.ExactArgs(1),
	Run: withManager(func(cmd *cobra.Command, args []string) {
		category, err := mgr.FindCategory(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := mgr.DeleteCategory(category.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted category %s: %s\n", category.ShortID(), category.Name)
	}),
}

func init() {
	catAddCmd.Flags().String("color", "", "Color name to tag the category with")
	catEditCmd.Flags().StringP("name", "n", "", "New category name")
	catEditCmd.Flags().String("color", "", "New color name")

	catCmd.AddCommand(catAddCmd)
	catCmd.AddCommand(catListCmd)
	catCmd.AddCommand(catEditCmd)
	catCmd.AddCommand(catRmCmd)
}
