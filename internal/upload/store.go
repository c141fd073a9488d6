package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Store is a remote object store.
type Store interface {
	// Put uploads body to remotePath.
	Put(ctx context.Context, remotePath string, body []byte, contentType string) error
	// PublicURL resolves the URL browsers use to load remotePath.
	PublicURL(ctx context.Context, remotePath string) (string, error)
}

// HTTPStore talks to an object store that accepts authenticated PUTs at
// <Endpoint>/<remotePath>.
type HTTPStore struct {
	Endpoint   string
	Token      string
	PublicBase string
	Client     *http.Client
}

// NewHTTPStore returns a store with a bounded request timeout.
func NewHTTPStore(endpoint, token, publicBase string) *HTTPStore {
	return &HTTPStore{
		Endpoint:   endpoint,
		Token:      token,
		PublicBase: publicBase,
		Client:     &http.Client{Timeout: 60 * time.Second},
	}
}

// Put uploads one object.
func (s *HTTPStore) Put(ctx context.Context, remotePath string, body []byte, contentType string) error {
	target, err := joinURL(s.Endpoint, remotePath)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("put %s: %w", remotePath, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("put %s: status %d: %s", remotePath, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}

// PublicURL joins remotePath onto the public base, or onto the endpoint when
// no public base is configured.
func (s *HTTPStore) PublicURL(_ context.Context, remotePath string) (string, error) {
	base := s.PublicBase
	if base == "" {
		base = s.Endpoint
	}
	return joinURL(base, remotePath)
}

// DirStore publishes into a local directory that is served under PublicBase.
type DirStore struct {
	Root       string
	PublicBase string
}

// Put writes body below Root.
func (s DirStore) Put(_ context.Context, remotePath string, body []byte, _ string) error {
	clean, err := cleanRemote(remotePath)
	if err != nil {
		return err
	}
	target := filepath.Join(s.Root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

// PublicURL joins remotePath onto PublicBase.
func (s DirStore) PublicURL(_ context.Context, remotePath string) (string, error) {
	clean, err := cleanRemote(remotePath)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s.PublicBase, "/") + "/" + clean, nil
}

func cleanRemote(remotePath string) (string, error) {
	clean := path.Clean("/" + strings.TrimSpace(remotePath))
	if clean == "/" {
		return "", fmt.Errorf("remote path %q is empty", remotePath)
	}
	return strings.TrimPrefix(clean, "/"), nil
}

func joinURL(base, remotePath string) (string, error) {
	clean, err := cleanRemote(remotePath)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", base, err)
	}
	return u.JoinPath(strings.Split(clean, "/")...).String(), nil
}
