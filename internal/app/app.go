// Package app wires configuration, storage, services, and HTTP handlers
// into a runnable application.
package app

import (
	"database/sql"
	"fmt"
	"log/slog"

	"sheetvault/internal/api"
	"sheetvault/internal/config"
	"sheetvault/internal/db/repository"
	"sheetvault/internal/middleware"
	"sheetvault/internal/service"
	"sheetvault/internal/token"
)

// Deps holds the external dependencies required to build an App.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// App is the assembled application: repositories, services, the HTTP
// handler, and the request authenticator.
type App struct {
	Cfg           *config.Config
	Logger        *slog.Logger
	Users         *repository.UserRepo
	Auth          *service.AuthService
	Handler       *api.Handler
	Authenticator *middleware.Authenticator
}

// New builds the full service graph from the given dependencies.
func New(d Deps) (*App, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	secret, err := d.Cfg.Auth.DecodeTokenSecret()
	if err != nil {
		return nil, err
	}
	codec, err := token.NewCodec(secret, d.Cfg.Auth.TokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("token codec: %w", err)
	}

	users := repository.NewUserRepo(d.WriteDB)
	characters := repository.NewCharacterRepo(d.WriteDB)
	skills := repository.NewSkillRepo(d.WriteDB)
	equipment := repository.NewEquipmentRepo(d.WriteDB)
	weapons := repository.NewWeaponRepo(d.WriteDB)
	notes := repository.NewNoteRepo(d.WriteDB)

	authSvc := service.NewAuthService(users, codec, logger.With("component", "auth"))
	charSvc := service.NewCharacterService(characters, logger.With("component", "characters"))
	skillSvc := service.NewSkillService(skills, characters, logger.With("component", "skills"))
	equipSvc := service.NewEquipmentService(equipment, characters, logger.With("component", "equipment"))
	weaponSvc := service.NewWeaponService(weapons, characters, logger.With("component", "weapons"))
	noteSvc := service.NewNoteService(notes, characters, logger.With("component", "notes"))

	handler := api.NewHandler(authSvc, charSvc, skillSvc, equipSvc, weaponSvc, noteSvc, logger.With("component", "api"))

	// Reads served by the authenticator go through the read pool.
	readUsers := repository.NewUserRepo(d.ReadDB)
	authn := middleware.NewAuthenticator(codec, readUsers, api.AuthSkipPaths("/v1"), logger.With("component", "authn"))

	return &App{
		Cfg:           d.Cfg,
		Logger:        logger,
		Users:         users,
		Auth:          authSvc,
		Handler:       handler,
		Authenticator: authn,
	}, nil
}
