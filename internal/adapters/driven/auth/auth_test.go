package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
)

func TestSaveAndLoadToken(t *testing.T) {
	dir := t.TempDir()
	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).UTC(),
	}

	require.NoError(t, SaveToken(dir, token))

	loaded, err := LoadToken(dir)
	require.NoError(t, err)
	assert.Equal(t, token.AccessToken, loaded.AccessToken)
	assert.Equal(t, token.RefreshToken, loaded.RefreshToken)
}

func TestSaveToken_OwnerOnlyPermissions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveToken(dir, &oauth2.Token{AccessToken: "x"}))

	info, err := os.Stat(TokenPath(dir))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadToken_Missing(t *testing.T) {
	_, err := LoadToken(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestLoadToken_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(TokenPath(dir), []byte("{not json"), 0600))

	_, err := LoadToken(dir)
	assert.ErrorIs(t, err, domain.ErrAuthInvalid)
}

func TestLoadOAuthConfig_Missing(t *testing.T) {
	dir := t.TempDir()

	// Run from a directory without a credentials.json fallback.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	_, err = LoadOAuthConfig(dir)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestLoadOAuthConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	creds := `{
	  "installed": {
	    "client_id": "id.apps.googleusercontent.com",
	    "client_secret": "secret",
	    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
	    "token_uri": "https://oauth2.googleapis.com/token",
	    "redirect_uris": ["http://localhost"]
	  }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.json"), []byte(creds), 0600))

	cfg, err := LoadOAuthConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "id.apps.googleusercontent.com", cfg.ClientID)
	assert.Len(t, cfg.Scopes, len(Scopes))
}
