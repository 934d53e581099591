package entities

import (
	"errors"
	"fmt"
	"net/url"
)

// Repository identifies a repository listing on Docker Hub (e.g. "ai/qwen3").
type Repository struct {
	Namespace string // e.g. "ai", "aistaging"
	Name      string // e.g. "qwen3"
}

// NewRepository builds a Repository and checks that both parts are present.
func NewRepository(namespace, name string) (Repository, error) {
	repo := Repository{Namespace: namespace, Name: name}
	if err := repo.Validate(); err != nil {
		return Repository{}, err
	}
	return repo, nil
}

// Validate only checks for empty parts; Docker Hub is the authority on naming rules.
func (r Repository) Validate() error {
	if r.Namespace == "" {
		return errors.New("namespace must not be empty")
	}
	if r.Name == "" {
		return errors.New("repository name must not be empty")
	}
	return nil
}

// String returns "namespace/name".
func (r Repository) String() string {
	return r.Namespace + "/" + r.Name
}

// EscapedPath returns "namespace%2Fname", the form used by the media service.
func (r Repository) EscapedPath() string {
	return url.PathEscape(r.String())
}

// PageURL returns the public listing page of the repository.
func (r Repository) PageURL(baseURL string) string {
	return fmt.Sprintf("%s/r/%s/%s", baseURL, r.Namespace, r.Name)
}
