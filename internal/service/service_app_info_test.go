package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/clinical-records/internal/config"
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_BlankVersion(t *testing.T) {
	for _, version := range []string{"", "   "} {
		svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())

		assert.Nil(t, svc)
		assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
	}
}

func TestGetAppVersion_Trimmed(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: " 3.1.4\n"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// NewServices / mapStoreError
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	cfg := config.StructuredConfig{App: testAppConfig()}

	services, err := NewServices(&store.Storages{}, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.PatientService)
	assert.NotNil(t, services.Blacklist)

	cfg.App.BlacklistBackend = "redis"
	_, err = NewServices(&store.Storages{}, cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownBlacklistBackend)
}

func TestMapStoreError(t *testing.T) {
	assert.NoError(t, mapStoreError(nil))
	assert.ErrorIs(t, mapStoreError(store.ErrAlreadyExists), ErrResourceAlreadyExists)
	assert.ErrorIs(t, mapStoreError(store.ErrNotFound), ErrResourceNotFound)
	assert.ErrorIs(t, mapStoreError(store.ErrReferenceNotFound), ErrResourceNotFound)
	assert.Equal(t, assert.AnError, mapStoreError(assert.AnError))
}
