package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/clinical-records/models"
)

// tokenStore keeps the token pair between client runs.
type tokenStore interface {
	Load() (models.TokenPair, error)
	Save(tokens models.TokenPair) error
}

// tokenFile stores the pair as JSON readable by the owner only.
type tokenFile struct {
	path string
}

func newTokenFile(path string) *tokenFile {
	return &tokenFile{path: path}
}

// Load returns an empty pair when the file does not exist yet.
func (f *tokenFile) Load() (models.TokenPair, error) {
	var tokens models.TokenPair

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return tokens, nil
	}
	if err != nil {
		return tokens, fmt.Errorf("read token file: %w", err)
	}

	if err = json.Unmarshal(data, &tokens); err != nil {
		return tokens, fmt.Errorf("decode token file %s: %w", f.path, err)
	}
	return tokens, nil
}

// Save writes the pair, or removes the file for an empty pair.
func (f *tokenFile) Save(tokens models.TokenPair) error {
	if tokens == (models.TokenPair{}) {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove token file: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	if err = os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}
