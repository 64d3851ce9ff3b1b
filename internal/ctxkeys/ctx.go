package ctxkeys

import (
	"context"

	"github.com/anshsahu01/nudge/internal/config"
	"github.com/anshsahu01/nudge/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	UserKey       contextKey = "user"
	PreferenceKey contextKey = "preference"
	ConfigKey     contextKey = "config"
)

func User(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey).(*model.User)
	return user
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// Preference is the signed-in user's cached group membership, nil when
// the user has not joined a group yet.
func Preference(ctx context.Context) *model.Preference {
	pref, _ := ctx.Value(PreferenceKey).(*model.Preference)
	return pref
}

func WithPreference(ctx context.Context, pref *model.Preference) context.Context {
	return context.WithValue(ctx, PreferenceKey, pref)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}
