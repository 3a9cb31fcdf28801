// Package auth handles Google OAuth credentials for the CLI: loading
// the OAuth client from credentials.json, persisting the user token as
// token.json in the config directory, and producing a self-refreshing
// oauth2.TokenSource for the API adapters. Authentication failure is
// the only fatal error in the tool; everything downstream degrades.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
	"github.com/anastluc/gdocs-participation-statistics/internal/logger"
)

// Scopes requested from Google. Drive covers files, revisions, and
// comments; the activity scopes cover the Drive Activity API.
var Scopes = []string{
	"https://www.googleapis.com/auth/drive",
	"https://www.googleapis.com/auth/documents",
	"https://www.googleapis.com/auth/drive.file",
	"https://www.googleapis.com/auth/drive.metadata",
	"https://www.googleapis.com/auth/drive.activity",
	"https://www.googleapis.com/auth/drive.activity.readonly",
}

const (
	credentialsFile = "credentials.json"
	tokenFile       = "token.json"
)

// LoadOAuthConfig reads the OAuth client definition. It looks in the
// config directory first, then the working directory (where the Google
// Cloud Console download usually lands).
func LoadOAuthConfig(configDir string) (*oauth2.Config, error) {
	paths := []string{
		filepath.Join(configDir, credentialsFile),
		credentialsFile,
	}

	var data []byte
	var err error
	for _, path := range paths {
		data, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf(
			"%w: %s not found (download it from Google Cloud Console into %s)",
			domain.ErrAuthRequired, credentialsFile, configDir)
	}

	cfg, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrAuthInvalid, credentialsFile, err)
	}
	return cfg, nil
}

// TokenPath returns the location of the persisted user token.
func TokenPath(configDir string) string {
	return filepath.Join(configDir, tokenFile)
}

// LoadToken reads the persisted token. Returns ErrAuthRequired when no
// token has been stored yet.
func LoadToken(configDir string) (*oauth2.Token, error) {
	data, err := os.ReadFile(TokenPath(configDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: run `gdocstats auth login` first", domain.ErrAuthRequired)
		}
		return nil, err
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("%w: parse stored token: %v", domain.ErrAuthInvalid, err)
	}
	return &token, nil
}

// SaveToken persists the token with owner-only permissions.
func SaveToken(configDir string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.WriteFile(TokenPath(configDir), data, 0600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// TokenSource returns a self-refreshing token source backed by the
// stored token. Refreshed tokens are persisted back to disk so the
// next run skips the refresh round trip.
func TokenSource(ctx context.Context, configDir string) (oauth2.TokenSource, error) {
	cfg, err := LoadOAuthConfig(configDir)
	if err != nil {
		return nil, err
	}

	token, err := LoadToken(configDir)
	if err != nil {
		return nil, err
	}

	return &savingTokenSource{
		configDir: configDir,
		delegate:  cfg.TokenSource(ctx, token),
		last:      token,
	}, nil
}

// savingTokenSource persists tokens whenever the delegate rotates them.
type savingTokenSource struct {
	configDir string
	delegate  oauth2.TokenSource
	last      *oauth2.Token
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.delegate.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthInvalid, err)
	}

	if s.last == nil || token.AccessToken != s.last.AccessToken {
		s.last = token
		if err := SaveToken(s.configDir, token); err != nil {
			logger.Warn("persisting refreshed token: %v", err)
		}
	}
	return token, nil
}
