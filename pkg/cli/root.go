// Package cli implements the sheetvault admin command-line interface. It
// operates directly on the SQLite database, so it must run on the host that
// stores the data file.
package cli

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"sheetvault/internal/config"
	internaldb "sheetvault/internal/db"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:           "sheetvault",
		Short:         "SheetVault admin CLI",
		Long:          "Administrative commands for the SheetVault character sheet server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database file (default: DB_PATH env or sheetvault.sqlite)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newUserCmd(&dbPath))
	rootCmd.AddCommand(newTokenCmd(&dbPath))
	rootCmd.AddCommand(newMigrateCmd(&dbPath))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sheetvault %s (%s)\n", version, commit)
		},
	}
}

func newMigrateCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openWriteDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			return internaldb.RunMigrations(db)
		},
	}
}

// openWriteDB opens the write pool and ensures the schema is current.
func openWriteDB(flagPath string) (*sql.DB, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	path := flagPath
	if path == "" {
		path = os.Getenv("DB_PATH")
	}
	if path == "" {
		path = "sheetvault.sqlite"
	}

	db, err := internaldb.OpenSQLite(path, "write", 1)
	if err != nil {
		return nil, err
	}
	if err := internaldb.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
