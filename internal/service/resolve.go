// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/validators"
	"github.com/MKhiriev/go-env-keeper/models"
)

type envService struct {
	store     adapter.EnvStore
	validator validators.Validator
	log       *logger.Logger
}

// NewEnvService returns the production [EnvService] backed by store.
func NewEnvService(store adapter.EnvStore, log *logger.Logger) EnvService {
	if log == nil {
		log = logger.Nop()
	}
	return &envService{
		store:     store,
		validator: validators.NewEnvVarValidator(),
		log:       log,
	}
}

func (s *envService) Resolve(ctx context.Context, opts ResolveOptions) (models.ResolvedEnv, error) {
	if opts.Context == "" {
		opts.Context = string(models.ContextDev)
	}
	if opts.Scope == "" {
		opts.Scope = models.ScopeAny
	}

	accountEnv := make(models.ResolvedEnv)
	siteEnv := make(models.ResolvedEnv)

	// Account ID missing: degrade gracefully to local sources instead of
	// failing the whole resolution.
	if opts.AccountID != "" {
		var (
			wg           sync.WaitGroup
			accountItems []models.EnvVar
			siteItems    []models.EnvVar
			accountErr   error
			siteErr      error
		)

		// The only concurrency point: both remote scopes are fetched in
		// parallel and joined before any merging starts.
		wg.Add(2)
		go func() {
			defer wg.Done()
			accountItems, accountErr = s.fetchScope(ctx, opts.AccountID, opts.Key, "")
		}()
		go func() {
			defer wg.Done()
			siteItems, siteErr = s.fetchScope(ctx, opts.AccountID, opts.Key, opts.SiteID)
		}()
		wg.Wait()

		if accountErr != nil {
			return nil, fmt.Errorf("fetch account env: %w", accountErr)
		}
		if siteErr != nil {
			return nil, fmt.Errorf("fetch site env: %w", siteErr)
		}

		accountEnv = formatEnvVars(opts.Context, accountItems, opts.Scope, models.SourceAccount)
		siteEnv = formatEnvVars(opts.Context, siteItems, opts.Scope, models.SourceUI)
	}

	generalEnv := filterBySource(opts.LocalEnv, models.SourceGeneral)
	addonsEnv := filterBySource(opts.LocalEnv, models.SourceAddons)
	configFileEnv := filterBySource(opts.LocalEnv, models.SourceConfigFile)

	// Config-file variables feed the build pipeline; outside build and
	// post-processing stages they must not leak into the result.
	includeConfigEnvVars := opts.Scope == models.ScopeAny ||
		opts.Scope == models.ScopeBuilds ||
		opts.Scope == models.ScopePostProcessing

	layers := make([]models.ResolvedEnv, 0, 5)
	layers = append(layers, generalEnv, accountEnv)
	if includeConfigEnvVars {
		layers = append(layers, addonsEnv)
	}
	layers = append(layers, siteEnv)
	if includeConfigEnvVars {
		layers = append(layers, configFileEnv)
	}

	env := layerEnv(layers...)

	if opts.Key != "" {
		filtered := make(models.ResolvedEnv, 1)
		if v, ok := env[opts.Key]; ok {
			filtered[opts.Key] = v
		}
		env = filtered
	}

	s.log.Debug().
		Str("context", NormalizeContext(opts.Context)).
		Str("scope", string(opts.Scope)).
		Int("vars", len(env)).
		Msg("resolved env")

	return env, nil
}

// fetchScope loads the envelope records of one remote scope. An empty
// siteID addresses the account-wide scope. A forbidden response is
// swallowed here and comes back as an empty record set; every other error
// is returned as-is for the caller to propagate.
func (s *envService) fetchScope(ctx context.Context, accountID, key, siteID string) ([]models.EnvVar, error) {
	var (
		items []models.EnvVar
		err   error
	)
	if key != "" {
		var item models.EnvVar
		item, err = s.store.GetEnvVar(ctx, accountID, key, siteID)
		if err == nil {
			items = []models.EnvVar{item}
		}
	} else {
		items, err = s.store.GetEnvVars(ctx, accountID, siteID)
	}

	switch classifyFetch(err) {
	case fetchForbidden:
		s.log.Debug().
			Str("account_id", accountID).
			Str("site_id", siteID).
			Msg("env scope forbidden, treating as empty")
		return nil, nil
	case fetchFailed:
		return nil, err
	default:
		return s.dropMalformed(ctx, items), nil
	}
}

// dropMalformed filters out records the store should never have produced.
// A malformed record is logged and skipped rather than failing the whole
// resolution.
func (s *envService) dropMalformed(ctx context.Context, items []models.EnvVar) []models.EnvVar {
	valid := items[:0]
	for _, record := range items {
		if err := s.validator.Validate(ctx, record); err != nil {
			s.log.Debug().Err(err).Str("key", record.Key).Msg("skipping malformed env record")
			continue
		}
		valid = append(valid, record)
	}
	return valid
}
