// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Secret Panel Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mkarpenko/secretpanel/models"
)

// HTTPStoreConfig carries the settings needed to reach the secrets backend
// over HTTP.
type HTTPStoreConfig struct {
	// BaseURL is the root address of the secrets API. A missing scheme
	// defaults to http.
	BaseURL string

	// APIKey is the host-issued key attached to every request as the
	// X-Api-Key header. May be empty when the backend relies on bearer
	// tokens only.
	APIKey string

	// Timeout bounds each outbound request. Zero or negative values
	// default to 15 seconds.
	Timeout time.Duration
}

// HTTPStore is the HTTP/REST implementation of [SecretStore] and
// [DirectoryService]. It is safe for concurrent use.
type HTTPStore struct {
	client *resty.Client
	apiKey string

	mu    sync.RWMutex
	token string
}

// NewHTTPStore constructs an [HTTPStore] for the given config. It
// normalises and validates the base URL and configures the underlying
// resty client with the resolved address and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPStore(cfg HTTPStoreConfig) (*HTTPStore, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid store address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &HTTPStore{client: cli, apiKey: cfg.APIKey}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent requests.
func (h *HTTPStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the store, or an empty
// string if none has been set.
func (h *HTTPStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SessionUserID extracts the subject claim from the current bearer token
// without verifying the signature (verification is the server's job; the
// panel only needs the identity for display and for filtering itself out
// of share targets). Returns an empty string when no token is set or the
// token cannot be parsed.
func (h *HTTPStore) SessionUserID() string {
	token := h.Token()
	if token == "" {
		return ""
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// ListSecrets implements [SecretStore].
func (h *HTTPStore) ListSecrets(ctx context.Context, limit, offset int) (models.SecretPage, error) {
	resp, err := h.request(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		Get("/api/secrets")
	if err != nil {
		return models.SecretPage{}, fmt.Errorf("list secrets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecretPage{}, err
	}

	var page models.SecretPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.SecretPage{}, fmt.Errorf("decode list response: %w", err)
	}
	return page, nil
}

// SearchSecrets implements [SecretStore].
func (h *HTTPStore) SearchSecrets(ctx context.Context, query string, limit, offset int) (models.SecretPage, error) {
	resp, err := h.request(ctx).
		SetQueryParam("q", query).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("offset", strconv.Itoa(offset)).
		Get("/api/secrets/search")
	if err != nil {
		return models.SecretPage{}, fmt.Errorf("search secrets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecretPage{}, err
	}

	var page models.SecretPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.SecretPage{}, fmt.Errorf("decode search response: %w", err)
	}
	return page, nil
}

// CreateSecret implements [SecretStore].
func (h *HTTPStore) CreateSecret(ctx context.Context, req models.NewSecret) (models.Secret, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/secrets")
	if err != nil {
		return models.Secret{}, fmt.Errorf("create secret request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Secret{}, err
	}

	var created models.Secret
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Secret{}, fmt.Errorf("decode create response: %w", err)
	}
	return created, nil
}

// UpdateSecret implements [SecretStore].
func (h *HTTPStore) UpdateSecret(ctx context.Context, req models.SecretUpdate) (models.Secret, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/secrets/" + url.PathEscape(req.ID))
	if err != nil {
		return models.Secret{}, fmt.Errorf("update secret request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Secret{}, err
	}

	var updated models.Secret
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Secret{}, fmt.Errorf("decode update response: %w", err)
	}
	return updated, nil
}

// DeleteSecret implements [SecretStore].
func (h *HTTPStore) DeleteSecret(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		Delete("/api/secrets/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete secret request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListShares implements [SecretStore].
func (h *HTTPStore) ListShares(ctx context.Context, secretID string) ([]models.Share, error) {
	resp, err := h.request(ctx).
		Get("/api/secrets/" + url.PathEscape(secretID) + "/shares")
	if err != nil {
		return nil, fmt.Errorf("list shares request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var shares []models.Share
	if err = json.Unmarshal(resp.Body(), &shares); err != nil {
		return nil, fmt.Errorf("decode shares response: %w", err)
	}
	return shares, nil
}

// ShareSecret implements [SecretStore].
func (h *HTTPStore) ShareSecret(ctx context.Context, req models.ShareRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrBadRequest, err)
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/secrets/" + url.PathEscape(req.SecretID) + "/shares")
	if err != nil {
		return fmt.Errorf("share secret request: %w", err)
	}
	return mapHTTPError(resp)
}

// UnshareSecret implements [SecretStore].
func (h *HTTPStore) UnshareSecret(ctx context.Context, req models.UnshareRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrBadRequest, err)
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Delete("/api/secrets/" + url.PathEscape(req.SecretID) + "/shares")
	if err != nil {
		return fmt.Errorf("unshare secret request: %w", err)
	}
	return mapHTTPError(resp)
}

// SearchUsers implements [DirectoryService].
func (h *HTTPStore) SearchUsers(ctx context.Context, query string) ([]models.DirectoryUser, error) {
	resp, err := h.request(ctx).
		SetQueryParam("q", query).
		Get("/api/directory/users")
	if err != nil {
		return nil, fmt.Errorf("search users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.DirectoryUser
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}
	return users, nil
}

// SearchRoles implements [DirectoryService].
func (h *HTTPStore) SearchRoles(ctx context.Context, query string) ([]models.DirectoryRole, error) {
	resp, err := h.request(ctx).
		SetQueryParam("q", query).
		Get("/api/directory/roles")
	if err != nil {
		return nil, fmt.Errorf("search roles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var roles []models.DirectoryRole
	if err = json.Unmarshal(resp.Body(), &roles); err != nil {
		return nil, fmt.Errorf("decode roles response: %w", err)
	}
	return roles, nil
}

func (h *HTTPStore) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
	if h.apiKey != "" {
		req.SetHeader("X-Api-Key", h.apiKey)
	}
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		return fmt.Errorf("http %d: %s", code, body)
	}
}
