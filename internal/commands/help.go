package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for habi",
	Long:  `Display detailed help for all habi commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██╗  ██╗ █████╗ ██████╗ ██╗
██║  ██║██╔══██╗██╔══██╗██║
███████║███████║██████╔╝██║
██╔══██║██╔══██║██╔══██╗██║
██║  ██║██║  ██║██████╔╝██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚═╝

habi - CLI habit tracker

COMMANDS:

  add <name>              Create a new habit with smart parsing
    -d, --desc            Description
    -f, --freq            Frequency: daily|weekly
    -c, --category        Category name or ID

    Smart syntax:
      #category     Set (and auto-create) the category
      @frequency    daily/weekly (or d/w)

    Example:
      habi add "Read 20 pages #reading @daily"

  ls                      List habits (streaks, today's checks)
    -a, --all             Include archived habits

  done <habit>            Mark a habit done (today by default)
    --on                  Day: today, yesterday, "X days ago", yyyy-mm-dd
    --note                Attach a note

  undone <habit>          Unmark a day
    --on                  Same day formats as done

  today                   Interactive checklist for today

  edit <habit>            Change name/desc/freq/category
  archive <habit>         Stop tracking without deleting history
  unarchive <habit>       Resume tracking
  rm <habit>              Delete a habit and its history

  log <habit>             Completion history for one habit
  log --from --to         Completions for all habits in a day range

  stats <habit>           Streak and completion rate
    -n, --days            Window size (default 30)

  cat add|ls|edit|rm      Manage categories

  reset                   Delete everything (asks unless --force)
  version                 Show version information

Habits can be referenced by ID, unique ID prefix, or name.
`)
}
