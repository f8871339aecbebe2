package app

import (
	"context"
	"errors"

	"sheetvault/internal/domain"
)

// SeedBootstrapMaster creates the configured bootstrap master account when
// the user table is empty. Without it a fresh deployment would have no way
// to mint the first elevated account, since registration always creates
// players. Safe to call on every startup.
func (a *App) SeedBootstrapMaster(ctx context.Context) error {
	if a.Cfg.Auth.BootstrapEmail == "" {
		return nil
	}

	n, err := a.Users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = a.Auth.CreateUser(ctx, domain.CreateUserRequest{
		Email:       a.Cfg.Auth.BootstrapEmail,
		DisplayName: a.Cfg.Auth.BootstrapName,
		Password:    a.Cfg.Auth.BootstrapPassword,
		IsMaster:    true,
	})
	if err != nil {
		// Lost a race with a concurrent replica; the account exists.
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil
		}
		return err
	}

	a.Logger.Info("bootstrap master account created", "email", a.Cfg.Auth.BootstrapEmail)
	return nil
}
