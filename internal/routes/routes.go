package routes

import (
	"net/http"

	"github.com/anshsahu01/nudge/internal/app"
	"github.com/anshsahu01/nudge/internal/handler"
	"github.com/anshsahu01/nudge/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.Cfg)
	session := handler.NewSessionHandler()
	group := handler.NewGroupHandler(app.GroupService)
	goal := handler.NewGoalHandler(app.GoalService)
	feed := handler.NewFeedHandler(app.Hub, app.GoalService, app.Cfg.FeedHeartbeat)
	nudge := handler.NewNudgeHandler(app.NudgeService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /auth/register", rateLimiter(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("POST /auth/login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// OAuth
	mux.HandleFunc("GET /auth/google", rateLimiter(middleware.RequireGuest(auth.GoogleAuth)))
	mux.HandleFunc("GET /auth/google/callback", rateLimiter(auth.GoogleCallback))
	mux.HandleFunc("GET /auth/github", rateLimiter(middleware.RequireGuest(auth.GitHubAuth)))
	mux.HandleFunc("GET /auth/github/callback", rateLimiter(auth.GitHubCallback))

	// Session state
	mux.HandleFunc("GET /session", session.Session)

	// ============================================================================
	// PROTECTED ROUTES (/app/*)
	// ============================================================================

	// Groups
	mux.HandleFunc("POST /app/group", middleware.RequireAuth(group.Create))
	mux.HandleFunc("POST /app/group/join", middleware.RequireAuth(group.Join))

	// Dashboard and live feed
	mux.HandleFunc("GET /app/dashboard", middleware.RequireGroup(goal.Dashboard))
	mux.HandleFunc("GET /app/feed", middleware.RequireGroup(feed.Stream))

	// Goals
	mux.HandleFunc("POST /app/goals", middleware.RequireGroup(goal.Create))
	mux.HandleFunc("PATCH /app/goals/{id}/toggle", middleware.RequireGroup(goal.Toggle))
	mux.HandleFunc("DELETE /app/goals/{id}", middleware.RequireGroup(goal.Delete))

	// Nudges
	mux.HandleFunc("POST /app/nudge", middleware.RequireGroup(nudge.Nudge))

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserService, app.GroupService),
	)

	return h
}
