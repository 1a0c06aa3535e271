package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/asetbek/habi/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

// mgr is the shared data manager, wired by initManager before any command
// body runs
var mgr *db.Manager

var rootCmd = &cobra.Command{
	Use:   "habi",
	Short: "A CLI habit tracker",
	Long: `habi keeps your habits in a local SQLite file. Define habits, check
them off day by day, and watch your streaks and completion rates.`,
}

// initManager opens the store at its default location and wires the data
// manager. Startup is the only place where a store failure is fatal.
func initManager() {
	gdb, err := db.OpenDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mgr = db.NewManager(gdb, newLogger())
}

// newLogger returns a development logger when --verbose is set, otherwise
// a no-op logger so normal output stays clean
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// withManager wraps a command function to wire the data manager first
func withManager(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initManager()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("habi %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log store operations")

	// Add subcommands here
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(unarchiveCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
