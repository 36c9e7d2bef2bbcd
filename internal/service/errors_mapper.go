// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/clinical-records/internal/store"
)

// mapStoreError translates a repository error into a domain error kind,
// keeping the original error in the chain.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrResourceAlreadyExists, err)
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrReferenceNotFound):
		return fmt.Errorf("%w: %w", ErrResourceNotFound, err)
	}

	return err
}
