package googledocs

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
	"github.com/anastluc/gdocs-participation-statistics/internal/core/ports/driven"
)

var _ driven.MetadataSource = (*Client)(nil)

const untitledDocument = "Untitled"

// GetMetadata fetches the document header: the title from the Docs API
// and the file timestamps, owner, and last modifier from Drive. The
// time fields stay as raw API strings; they are display-only.
func (c *Client) GetMetadata(ctx context.Context, docID string) (domain.DocumentMetadata, error) {
	document, err := c.docs.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return domain.DocumentMetadata{}, fmt.Errorf("get document: %w", notFoundErr(err))
	}

	file, err := c.drive.Files.Get(docID).
		Fields("createdTime,modifiedTime,owners,lastModifyingUser").
		Context(ctx).
		Do()
	if err != nil {
		return domain.DocumentMetadata{}, fmt.Errorf("get file metadata: %w", notFoundErr(err))
	}

	meta := domain.DocumentMetadata{
		Title:        document.Title,
		CreatedTime:  file.CreatedTime,
		ModifiedTime: file.ModifiedTime,
		Owner:        domain.UnknownUserName,
		LastModifier: domain.UnknownUserName,
	}
	if meta.Title == "" {
		meta.Title = untitledDocument
	}
	if len(file.Owners) > 0 && file.Owners[0].DisplayName != "" {
		meta.Owner = file.Owners[0].DisplayName
	}
	if file.LastModifyingUser != nil && file.LastModifyingUser.DisplayName != "" {
		meta.LastModifier = file.LastModifyingUser.DisplayName
	}

	return meta, nil
}

// notFoundErr translates a 404 into the domain sentinel so callers can
// distinguish a bad document ID from transport failures.
func notFoundErr(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %v", domain.ErrDocumentNotFound, err)
	}
	return err
}
