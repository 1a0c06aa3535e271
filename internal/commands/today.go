package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asetbek/habi/internal/tui"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Interactive checklist for today's habits",
	Run: withManager(func(cmd *cobra.Command, args []string) {
		if err := tui.RunTodayTUI(mgr); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}
