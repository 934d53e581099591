package dockerhub

import (
	"context"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// UpdateDescription PATCHes /v2/namespaces/{ns}/repositories/{repo}.
func (c *Client) UpdateDescription(
	ctx context.Context,
	baseURL string,
	token string,
	repo entities.Repository,
	desc entities.Description,
) error {
	url := endpoint(baseURL, "/v2/namespaces/%s/repositories/%s", repo.Namespace, repo.Name)

	logger.WithField("repository", repo.String()).Info("Making API request to Docker Hub...")

	resp, err := c.doJSON(ctx, http.MethodPatch, url, bearer(token), desc)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return entities.NewPublishError(resp.StatusCode, string(resp.Body))
	}

	return nil
}
