package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all habits, categories, and completions",
	Long:  "Delete every record in the database. There is no undo. Asks for confirmation unless --force is set.",
	Run: withManager(func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This deletes every habit, category, and completion. Type 'yes' to continue: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return
			}
		}

		if err := mgr.Reset(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println("🧹 All data deleted.")
	}),
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
