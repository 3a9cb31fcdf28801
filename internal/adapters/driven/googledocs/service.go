package googledocs

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/driveactivity/v2"
	"google.golang.org/api/option"
)

// pageSize is the page size used for all paginated listing calls.
const pageSize = 100

// DefaultFetchDelay is the pause enforced between consecutive revision
// content exports.
const DefaultFetchDelay = 3 * time.Second

// Client bundles the three Google API services the analysis consumes
// and implements the driven history ports.
type Client struct {
	drive    *drive.Service
	docs     *docs.Service
	activity *driveactivity.Service

	// httpClient carries the OAuth token for raw export-link downloads,
	// which bypass the generated API surface.
	httpClient *http.Client

	// exportPacer spaces out revision content exports. One event per
	// interval, no burst: the first fetch waits too, which keeps the
	// walk uniformly paced.
	exportPacer *rate.Limiter
}

// NewClient builds the API services over the given token source.
// fetchDelay spaces consecutive revision content exports;
// DefaultFetchDelay is used when it is not positive.
func NewClient(ctx context.Context, ts oauth2.TokenSource, fetchDelay time.Duration) (*Client, error) {
	driveSvc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	docsSvc, err := docs.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create docs service: %w", err)
	}

	activitySvc, err := driveactivity.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create drive activity service: %w", err)
	}

	if fetchDelay <= 0 {
		fetchDelay = DefaultFetchDelay
	}

	return &Client{
		drive:       driveSvc,
		docs:        docsSvc,
		activity:    activitySvc,
		httpClient:  oauth2.NewClient(ctx, ts),
		exportPacer: rate.NewLimiter(rate.Every(fetchDelay), 1),
	}, nil
}

// AuthenticatedUser returns the email address of the account behind the
// token source. Used to verify authentication before a run starts.
func (c *Client) AuthenticatedUser(ctx context.Context) (string, error) {
	about, err := c.drive.About.Get().Fields("user").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("verify authentication: %w", err)
	}
	if about.User == nil {
		return "", nil
	}
	return about.User.EmailAddress, nil
}
