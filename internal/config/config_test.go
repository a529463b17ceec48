package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_NAME", "FRONTEND_URL", "REDIRECT_URI"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	require.Equal(t, "5001", cfg.Port)
	require.Equal(t, "mysql", cfg.DBDriver)
	require.Equal(t, "notes_app", cfg.DBName)
	require.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	require.Equal(t, "http://localhost:5001/api/oauth/callback", cfg.OAuthRedirectURL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")
	t.Setenv("CLIENT_ID", "cid")

	cfg := LoadConfig()
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "/tmp/test.db", cfg.SQLitePath)
	require.Equal(t, "cid", cfg.GoogleClientID)
}
