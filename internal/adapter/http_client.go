// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// EnvStoreConfig configures the HTTP env store client.
type EnvStoreConfig struct {
	// BaseURL is the store API root, e.g. "https://api.envkeeper.dev".
	BaseURL string

	// Token is the bearer token attached to every request.
	Token string

	// Timeout bounds a single request including body read.
	Timeout time.Duration
}

type httpEnvStore struct {
	client *resty.Client
	log    *logger.Logger
}

// NewHTTPEnvStore builds the REST [EnvStore] implementation. Missing
// config fields fall back to defaults suitable for a local store.
func NewHTTPEnvStore(cfg EnvStoreConfig, log *logger.Logger) EnvStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)
	if cfg.Token != "" {
		cli.SetAuthToken(cfg.Token)
	}

	return &httpEnvStore{client: cli, log: log}
}

func (h *httpEnvStore) GetEnvVar(ctx context.Context, accountID, key, siteID string) (models.EnvVar, error) {
	resp, err := h.scopedRequest(ctx, siteID).
		SetPathParam("account_id", accountID).
		SetPathParam("key", key).
		Get("/api/v1/accounts/{account_id}/env/{key}")
	if err != nil {
		return models.EnvVar{}, fmt.Errorf("get env var request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EnvVar{}, err
	}

	var item models.EnvVar
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.EnvVar{}, fmt.Errorf("decode env var response: %w", err)
	}
	return item, nil
}

func (h *httpEnvStore) GetEnvVars(ctx context.Context, accountID, siteID string) ([]models.EnvVar, error) {
	resp, err := h.scopedRequest(ctx, siteID).
		SetPathParam("account_id", accountID).
		Get("/api/v1/accounts/{account_id}/env")
	if err != nil {
		return nil, fmt.Errorf("get env vars request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.EnvVar
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode env vars response: %w", err)
	}
	return items, nil
}

// scopedRequest prepares a request addressed at the account-wide scope,
// narrowed to one site when siteID is non-empty.
func (h *httpEnvStore) scopedRequest(ctx context.Context, siteID string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if siteID != "" {
		req.SetQueryParam("site_id", siteID)
	}
	return req
}

// AccountIDFromToken derives the default account identifier from the
// subject claim of an access token. The token is parsed without signature
// verification: the claim is a convenience default, not an authorization
// decision — the store re-checks permissions on every request.
func AccountIDFromToken(token string) (string, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("parse access token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("access token has no subject")
	}
	return sub, nil
}
