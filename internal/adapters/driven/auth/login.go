package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
)

const loginTimeout = 5 * time.Minute

// Login runs the installed-app consent flow: it starts a loopback
// listener on a random port, prints the consent URL, waits for the
// redirect, exchanges the code, and persists the resulting token.
func Login(ctx context.Context, configDir string) (*oauth2.Token, error) {
	cfg, err := LoadOAuthConfig(configDir)
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("start callback listener: %w", err)
	}
	defer listener.Close()

	cfg.RedirectURL = fmt.Sprintf("http://%s/callback", listener.Addr().String())
	state, err := randomState()
	if err != nil {
		return nil, err
	}

	type callback struct {
		code string
		err  error
	}
	results := make(chan callback, 1)

	server := &http.Server{
		ReadHeaderTimeout: 10 * time.Second,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			if query.Get("state") != state {
				http.Error(w, "state mismatch", http.StatusBadRequest)
				results <- callback{err: fmt.Errorf("%w: state mismatch", domain.ErrAuthInvalid)}
				return
			}
			if errMsg := query.Get("error"); errMsg != "" {
				http.Error(w, errMsg, http.StatusBadRequest)
				results <- callback{err: fmt.Errorf("%w: %s", domain.ErrAuthInvalid, errMsg)}
				return
			}
			fmt.Fprintln(w, "Authentication complete. You can close this tab.")
			results <- callback{code: query.Get("code")}
		}),
	}
	go func() { _ = server.Serve(listener) }()
	defer server.Close()

	url := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Printf("Open this URL in your browser to authorize access:\n\n  %s\n\n", url)

	ctx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	var result callback
	select {
	case result = <-results:
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for authorization: %w", ctx.Err())
	}
	if result.err != nil {
		return nil, result.err
	}

	token, err := cfg.Exchange(ctx, result.code)
	if err != nil {
		return nil, fmt.Errorf("%w: exchange code: %v", domain.ErrAuthInvalid, err)
	}

	if err := SaveToken(configDir, token); err != nil {
		return nil, err
	}
	return token, nil
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
