package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sheetvault/internal/db/repository"
	"sheetvault/internal/domain"
	"sheetvault/internal/service"
)

func newUserCmd(dbPath *string) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	userCmd.AddCommand(newUserCreateCmd(dbPath))
	userCmd.AddCommand(newUserListCmd(dbPath))
	return userCmd
}

func newUserCreateCmd(dbPath *string) *cobra.Command {
	var (
		email    string
		name     string
		password string
		master   bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Long:  "Create a user account. This is the only way besides the bootstrap seed to provision a master account.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				pw, err := promptPassword("Password: ")
				if err != nil {
					return err
				}
				password = pw
			}

			db, err := openWriteDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			svc := service.NewAuthService(repository.NewUserRepo(db), nil, nil)
			u, err := svc.CreateUser(cmd.Context(), domain.CreateUserRequest{
				Email:       email,
				DisplayName: name,
				Password:    password,
				IsMaster:    master,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s, role %s)\n", u.ID, u.Email, u.Principal().Role())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&master, "master", false, "grant the elevated master role")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUserListCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openWriteDB(*dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			users, _, err := repository.NewUserRepo(db).List(cmd.Context(), domain.PageRequest{})
			if err != nil {
				return err
			}
			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", u.ID, u.Email, u.DisplayName, u.Principal().Role())
			}
			return nil
		},
	}
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read when it is not (piped input).
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
