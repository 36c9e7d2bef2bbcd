package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/clinical-records/internal/config"
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/store"
	"github.com/MKhiriev/clinical-records/models"
)

// NewBlacklist returns the blacklist implementation selected by
// cfg.BlacklistBackend.
func NewBlacklist(cfg config.App, revokedTokens store.RevokedTokenRepository, logger *logger.Logger) (Blacklist, error) {
	switch cfg.BlacklistBackend {
	case config.BlacklistMemory, "":
		return NewMemoryBlacklist(), nil
	case config.BlacklistDB:
		return NewDBBlacklist(revokedTokens, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlacklistBackend, cfg.BlacklistBackend)
	}
}

// memoryBlacklist keeps revoked identifiers in process memory. It is lost on
// restart and is not shared between processes.
type memoryBlacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time // jti -> token expiry
}

func NewMemoryBlacklist() Blacklist {
	return &memoryBlacklist{entries: make(map[string]time.Time)}
}

func (b *memoryBlacklist) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[jti] = expiresAt
	return nil
}

func (b *memoryBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.entries[jti]
	return ok, nil
}

func (b *memoryBlacklist) Purge(_ context.Context, now time.Time) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var purged int64
	for jti, expiresAt := range b.entries {
		if expiresAt.Before(now) {
			delete(b.entries, jti)
			purged++
		}
	}
	return purged, nil
}

// dbBlacklist keeps revoked identifiers in the revoked_tokens table so every
// process working with the same database sees them.
type dbBlacklist struct {
	revokedTokens store.RevokedTokenRepository

	logger *logger.Logger
}

func NewDBBlacklist(revokedTokens store.RevokedTokenRepository, logger *logger.Logger) Blacklist {
	return &dbBlacklist{
		revokedTokens: revokedTokens,
		logger:        logger,
	}
}

func (b *dbBlacklist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if err := b.revokedTokens.RevokeToken(ctx, models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}

func (b *dbBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	revoked, err := b.revokedTokens.IsTokenRevoked(ctx, jti)
	if err != nil {
		return false, fmt.Errorf("checking token revocation: %w", err)
	}
	return revoked, nil
}

func (b *dbBlacklist) Purge(ctx context.Context, now time.Time) (int64, error) {
	purged, err := b.revokedTokens.PurgeExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("purging revoked tokens: %w", err)
	}
	return purged, nil
}
