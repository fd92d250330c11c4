package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags that apply to all commands
	ownerID    string
	storeKind  string
	logDir     string
	jsonOutput bool
)

// newRootCmd builds the command tree. Flags are bound on every call, so each
// tree starts from the flag defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tasklist",
		Short: "Owner-scoped task lists backed by PostgreSQL",
		Long: `tasklist manages to-do lists and their items for one owner at a time.

Every command acts as the owner given by --owner. Lists and items of other
owners are invisible: they behave exactly as if they did not exist.

Examples:
  # Create tables and load demo data for a new owner
  tasklist schema
  tasklist seed

  # Browse an owner's lists
  tasklist --owner 6f1c... lists
  tasklist --owner 6f1c... show 1 --sort priority --desc --size 5

  # Try everything without a database
  tasklist --store memory dashboard`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&ownerID, "owner", "o", os.Getenv("TASKLIST_OWNER"), "Acting owner id (default $TASKLIST_OWNER)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Entity store: postgres|memory (default $STORE or postgres)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write logs to a timestamped file in this directory (default $LOG_DIR)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of tables")

	rootCmd.AddCommand(
		newSchemaCmd(),
		newSeedCmd(),
		newListsCmd(),
		newShowCmd(),
		newDashboardCmd(),
		newItemsCmd(),
		newListCmd(),
		newItemCmd(),
	)
	return rootCmd
}

func main() {
	// Load .env file (silently ignore if it doesn't exist)
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", describeError(err))
		stop()
		os.Exit(1)
	}
}
