package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sheetvault/internal/config"
	"sheetvault/internal/db/repository"
	"sheetvault/internal/token"
)

func newTokenCmd(dbPath *string) *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Manage bearer tokens",
	}
	tokenCmd.AddCommand(newTokenIssueCmd(dbPath))
	return tokenCmd
}

func newTokenIssueCmd(dbPath *string) *cobra.Command {
	var (
		email    string
		lifetime time.Duration
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a bearer token for an existing user",
		Long:  "Issue a signed bearer token without a password check. Requires AUTH_TOKEN_SECRET; intended for scripting and debugging.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openWriteDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			secret, err := cfg.Auth.DecodeTokenSecret()
			if err != nil {
				return err
			}
			codec, err := token.NewCodec(secret, lifetime)
			if err != nil {
				return err
			}

			u, err := repository.NewUserRepo(db).GetByEmail(cmd.Context(), email)
			if err != nil {
				return err
			}

			signed, err := codec.Issue(u.Principal())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the user to impersonate (required)")
	cmd.Flags().DurationVar(&lifetime, "lifetime", 0, "token lifetime (default 12h)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
