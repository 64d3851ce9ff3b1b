package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/anshsahu01/nudge/internal/config"
	"github.com/anshsahu01/nudge/internal/ctxkeys"
	"github.com/anshsahu01/nudge/internal/model"
	"github.com/anshsahu01/nudge/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

type authHandler struct {
	authService       *service.AuthService
	googleOAuthConfig *oauth2.Config
	githubOAuthConfig *oauth2.Config
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *authHandler {
	return &authHandler{
		authService: authService,
		googleOAuthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.AppURL + "/auth/google/callback",
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		githubOAuthConfig: &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  cfg.AppURL + "/auth/github/callback",
			Scopes:       []string{"user:email"},
			Endpoint:     github.Endpoint,
		},
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a password account and signs it in immediately.
func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Register(req.Email, req.Password)
	if err != nil {
		status, message := authErrorResponse(err)
		slog.Warn("registration failed", "error", err, "email", req.Email)
		respondError(w, status, message)
		return
	}

	err = h.issueSession(w, user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "an error occurred, please try again")
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)
	respondJSON(w, http.StatusCreated, user)
}

// Login signs in with email and password.
func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		slog.Warn("password login failed", "error", err, "email", req.Email)
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	err = h.issueSession(w, user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "an error occurred, please try again")
		return
	}

	slog.Info("user logged in with password", "user_id", user.ID, "email", user.Email)
	respondJSON(w, http.StatusOK, user)
}

// Logout clears the session cookie and the cached group membership.
func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	if user == nil {
		h.authService.ClearJWTCookie(w)
		respondJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
		return
	}

	err := h.authService.SignOut(w, user.ID)
	if err != nil {
		slog.Warn("failed to clear membership on sign-out", "error", err, "user_id", user.ID)
	}

	slog.Info("user signed out", "user_id", user.ID)
	respondJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

// GoogleAuth redirects user to Google OAuth consent screen
func (h *authHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	h.redirectToProvider(w, r, h.googleOAuthConfig)
}

// GoogleCallback handles the OAuth callback from Google
func (h *authHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	token, ok := h.exchangeCallback(w, r, h.googleOAuthConfig, "google")
	if !ok {
		return
	}

	client := h.googleOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		slog.Error("failed to get google user info", "error", err)
		respondError(w, http.StatusBadGateway, "federated sign-in failed, please try again")
		return
	}
	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			slog.Error("failed to close response body", "error", closeErr)
		}
	}()

	var userInfo struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	err = json.NewDecoder(resp.Body).Decode(&userInfo)
	if err != nil {
		slog.Error("failed to decode google user info", "error", err)
		respondError(w, http.StatusBadGateway, "federated sign-in failed, please try again")
		return
	}

	h.finishFederated(w, r, userInfo.Email, userInfo.Name, userInfo.Picture, "google")
}

// GitHubAuth redirects user to GitHub OAuth consent screen
func (h *authHandler) GitHubAuth(w http.ResponseWriter, r *http.Request) {
	h.redirectToProvider(w, r, h.githubOAuthConfig)
}

// GitHubCallback handles the OAuth callback from GitHub
func (h *authHandler) GitHubCallback(w http.ResponseWriter, r *http.Request) {
	token, ok := h.exchangeCallback(w, r, h.githubOAuthConfig, "github")
	if !ok {
		return
	}

	client := h.githubOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://api.github.com/user")
	if err != nil {
		slog.Error("failed to get github user info", "error", err)
		respondError(w, http.StatusBadGateway, "federated sign-in failed, please try again")
		return
	}
	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			slog.Error("failed to close response body", "error", closeErr)
		}
	}()

	var userInfo struct {
		Email     string `json:"email"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}
	err = json.NewDecoder(resp.Body).Decode(&userInfo)
	if err != nil {
		slog.Error("failed to decode github user info", "error", err)
		respondError(w, http.StatusBadGateway, "federated sign-in failed, please try again")
		return
	}

	h.finishFederated(w, r, userInfo.Email, userInfo.Name, userInfo.AvatarURL, "github")
}

func (h *authHandler) redirectToProvider(w http.ResponseWriter, r *http.Request, oauthConfig *oauth2.Config) {
	// Generate secure state token for CSRF protection
	state := generateOAuthState()

	cfg := ctxkeys.Config(r.Context())
	isProduction := cfg != nil && cfg.IsProduction()

	// Store state in secure cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600, // 10 minutes
	})

	url := oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *authHandler) exchangeCallback(w http.ResponseWriter, r *http.Request, oauthConfig *oauth2.Config, provider string) (*oauth2.Token, bool) {
	// Validate state parameter for CSRF protection
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie("oauth_state")
	if err != nil || cookie.Value != state || state == "" {
		slog.Warn("oauth state validation failed", "error", err, "provider", provider)
		respondError(w, http.StatusBadRequest, "federated sign-in failed, please try again")
		return nil, false
	}

	// Clear state cookie
	http.SetCookie(w, &http.Cookie{
		Name:   "oauth_state",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Warn("oauth callback missing code", "provider", provider)
		respondError(w, http.StatusBadRequest, "federated sign-in failed, please try again")
		return nil, false
	}

	token, err := oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		slog.Error("oauth token exchange failed", "error", err, "provider", provider)
		respondError(w, http.StatusBadGateway, "federated sign-in failed, please try again")
		return nil, false
	}

	return token, true
}

func (h *authHandler) finishFederated(w http.ResponseWriter, r *http.Request, email, name, avatarURL, provider string) {
	if email == "" {
		slog.Warn("oauth provider returned no email", "provider", provider)
		respondError(w, http.StatusBadGateway, "federated sign-in failed, please try again")
		return
	}

	user, err := h.authService.LoginFederated(email, name, avatarURL)
	if err != nil {
		slog.Error("federated login failed", "error", err, "provider", provider)
		respondError(w, http.StatusInternalServerError, "federated sign-in failed, please try again")
		return
	}

	err = h.issueSession(w, user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "an error occurred, please try again")
		return
	}

	slog.Info("user logged in via oauth", "user_id", user.ID, "provider", provider)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *authHandler) issueSession(w http.ResponseWriter, user *model.User) error {
	jwtToken, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate JWT", "error", err, "user_id", user.ID)
		return err
	}

	h.authService.SetJWTCookie(w, jwtToken, time.Now().Add(h.authService.JWTExpiry()))
	return nil
}

func authErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		return http.StatusBadRequest, "invalid email address"
	case errors.Is(err, service.ErrWeakPassword):
		return http.StatusBadRequest, "password too weak"
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	default:
		return http.StatusInternalServerError, "an error occurred, please try again"
	}
}

// generateOAuthState creates a random state token for the OAuth flow.
func generateOAuthState() string {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(b)
}
