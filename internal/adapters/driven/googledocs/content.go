package googledocs

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/ports/driven"
)

var _ driven.RevisionContentFetcher = (*Client)(nil)

// exportMimeText is the plain-text export format for Google Docs.
const exportMimeText = "text/plain"

// maxExportSize caps the exported content read (5MB).
const maxExportSize = 5 * 1024 * 1024

// FetchRevisionText retrieves the plain-text snapshot of one revision.
// Export availability is decided here: a revision without a text/plain
// export link yields "" with a nil error. Each fetch waits on the
// export pacer before hitting the export endpoint, so a long revision
// walk is spaced out by the configured delay.
func (c *Client) FetchRevisionText(ctx context.Context, docID, revisionID string) (string, error) {
	rev, err := c.drive.Revisions.Get(docID, revisionID).
		Fields("exportLinks,modifiedTime").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("get revision %s: %w", revisionID, err)
	}

	link := rev.ExportLinks[exportMimeText]
	if link == "" {
		return "", nil
	}

	if err := c.exportPacer.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create export request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("export revision %s: %w", revisionID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("export revision %s: status %d", revisionID, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxExportSize))
	if err != nil {
		return "", fmt.Errorf("read export for revision %s: %w", revisionID, err)
	}

	return string(data), nil
}
