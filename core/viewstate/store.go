// ABOUTME: View-state store persisting per-resource table preferences
// ABOUTME: Serialises preferences as JSON through the Cache interface

package viewstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"library-admin/core/domain"
	"library-admin/core/interfaces"
)

const keyPrefix = "viewstate:"

// Store implements interfaces.ViewStateStore on top of a Cache
type Store struct {
	cache  interfaces.Cache
	ttl    time.Duration
	logger interfaces.Logger
}

// NewStore creates a store. A ttl of 0 keeps preferences indefinitely.
func NewStore(cache interfaces.Cache, ttl time.Duration, logger interfaces.Logger) *Store {
	return &Store{cache: cache, ttl: ttl, logger: logger}
}

func key(resource string) string {
	return keyPrefix + resource
}

// Load returns the saved preferences, or the zero value when none exist.
// Corrupt entries are discarded and reported as missing.
func (s *Store) Load(ctx context.Context, resource string) (domain.ViewPrefs, error) {
	var prefs domain.ViewPrefs

	data, err := s.cache.Get(ctx, key(resource))
	if err != nil {
		if errors.Is(err, interfaces.ErrCacheMiss) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("load view state for %s: %w", resource, err)
	}

	if err := json.Unmarshal(data, &prefs); err != nil {
		if s.logger != nil {
			s.logger.Warn("Discarding corrupt view state", map[string]interface{}{
				"resource": resource,
				"error":    err.Error(),
			})
		}
		_ = s.cache.Delete(ctx, key(resource))
		return domain.ViewPrefs{}, nil
	}
	return prefs, nil
}

// Save stores the preferences for resource
func (s *Store) Save(ctx context.Context, resource string, prefs domain.ViewPrefs) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode view state: %w", err)
	}
	if err := s.cache.Set(ctx, key(resource), data, s.ttl); err != nil {
		return fmt.Errorf("save view state for %s: %w", resource, err)
	}
	return nil
}

var _ interfaces.ViewStateStore = (*Store)(nil)
