package dockerhub

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// UploadLogo POSTs the logo to /api/media/repos_logo/v1/{ns%2Frepo}/media.
// Read, transport and status failures all come back as *entities.UploadError.
func (c *Client) UploadLogo(
	ctx context.Context,
	baseURL string,
	token string,
	repo entities.Repository,
	logo entities.LogoCandidate,
) error {
	url := endpoint(baseURL, "/api/media/repos_logo/v1/%s/media", repo.EscapedPath())

	data, err := os.ReadFile(logo.Path)
	if err != nil {
		return &entities.UploadError{Err: fmt.Errorf("failed to read logo %q: %w", logo.Path, err)}
	}

	form, err := newLogoForm(data, logo.ContentType)
	if err != nil {
		return &entities.UploadError{Err: err}
	}

	logger.WithFields(logger.Fields{
		"repository":   repo.String(),
		"file":         logo.FileName(),
		"content_type": logo.ContentType,
		"body_length":  len(form.Body),
	}).Info("Uploading logo to Docker Hub media service...")

	headers := bearer(token)
	headers.Set("Content-Type", form.ContentType)

	resp, err := c.do(ctx, http.MethodPost, url, headers, bytes.NewReader(form.Body))
	if err != nil {
		return &entities.UploadError{Err: err}
	}

	logger.Infof("Response: %s", resp.Status)
	if len(resp.Body) > 0 {
		logger.Debugf("Response body: %s", entities.Snippet(string(resp.Body)))
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &entities.UploadError{StatusCode: resp.StatusCode}
	}

	return nil
}
