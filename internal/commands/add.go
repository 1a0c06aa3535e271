package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asetbek/habi/internal/db"
	"github.com/asetbek/habi/internal/models"
	"github.com/asetbek/habi/internal/parser"
)

var addCmd = &cobra.Command{
	Use:   "add [habit name]",
	Short: "Add a new habit",
	Long: `Add a new habit with optional metadata.

Smart parsing syntax:
  #category   - Category name (created if it does not exist)
  @frequency  - daily/weekly (or d/w)

Examples:
  habi add "Read 20 pages" --freq daily
  habi add "Read 20 pages #reading @daily"
  habi add "Long run #fitness @weekly" --desc "At least 10k"`,
	Args: cobra.ArbitraryArgs,
	Run: withManager(func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("Nothing to add. Use 'habi add \"Habit name\"'.")
			return
		}

		parsed := parser.ParseHabitLine(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fmt.Printf("Error: %s\n", strings.Join(parsed.Errors, ", "))
			return
		}

		req := db.CreateHabitRequest{
			Name:      parsed.Name,
			Frequency: models.Frequency(parsed.Frequency),
		}
		req.Description, _ = cmd.Flags().GetString("desc")
		req.Archived, _ = cmd.Flags().GetBool("archived")

		// Flags win over inline syntax
		if freq, _ := cmd.Flags().GetString("freq"); freq != "" {
			req.Frequency = models.Frequency(strings.ToLower(freq))
		}

		categoryRef := parsed.Category
		if flagCategory, _ := cmd.Flags().GetString("category"); flagCategory != "" {
			categoryRef = flagCategory
		}
		if categoryRef != "" {
			category, err := findOrCreateCategory(categoryRef)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			req.CategoryID = category.ID
		}

		habit, err := mgr.CreateHabit(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Added habit %s: %s (%s)\n", habit.ShortID(), habit.Name, habit.Frequency)
		if habit.CategoryID != nil {
			if category, err := mgr.CategoryByID(*habit.CategoryID); err == nil {
				fmt.Printf("Category: %s\n", category.Name)
			}
		}
	}),
}

// findOrCreateCategory resolves a category reference, creating the
// category when nothing matches
func findOrCreateCategory(ref string) (*models.Category, error) {
	category, err := mgr.FindCategory(ref)
	if err == nil {
		return category, nil
	}
	if errors.Is(err, db.ErrNotFound) {
		return mgr.CreateCategory(ref, "")
	}
	return nil, err
}

func init() {
	addCmd.Flags().StringP("desc", "d", "", "Habit description")
	addCmd.Flags().StringP("freq", "f", "", "Frequency: daily or weekly")
	addCmd.Flags().StringP("category", "c", "", "Category name or ID")
	addCmd.Flags().Bool("archived", false, "Create the habit already archived")
}
