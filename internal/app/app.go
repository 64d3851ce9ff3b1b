package app

import (
	"fmt"

	"github.com/anshsahu01/nudge/internal/config"
	"github.com/anshsahu01/nudge/internal/db"
	"github.com/anshsahu01/nudge/internal/feed"
	"github.com/anshsahu01/nudge/internal/repository"
	"github.com/anshsahu01/nudge/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg          *config.Config
	DB           *sqlx.DB
	Hub          *feed.Hub
	AuthService  *service.AuthService
	UserService  *service.UserService
	GroupService *service.GroupService
	GoalService  *service.GoalService
	EmailService *service.EmailService
	NudgeService *service.NudgeService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	preferenceRepository := repository.NewPreferenceRepository(database)

	// Feed hub
	hub := feed.NewHub(cfg.FeedMaxClients)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		preferenceRepository,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository)
	groupService := service.NewGroupService(preferenceRepository)
	goalService := service.NewGoalService(goalRepository, hub)
	nudgeService := service.NewNudgeService(emailService)

	return &App{
		Cfg:          cfg,
		DB:           database,
		Hub:          hub,
		AuthService:  authService,
		UserService:  userService,
		GroupService: groupService,
		GoalService:  goalService,
		EmailService: emailService,
		NudgeService: nudgeService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
