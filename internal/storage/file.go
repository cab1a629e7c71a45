// Shelfmatch - Movie and Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tomtom215/shelfmatch/internal/profile"
)

// FileStore implements profile.Store with one JSON file per profile.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads <dir>/<id>.json.
func (s *FileStore) Load(ctx context.Context, profileID string) (*profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(profileID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is confined to s.dir by s.path
	if errors.Is(err, fs.ErrNotExist) {
		return nil, profile.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return decodeProfile(data)
}

// Save writes to a temp file in the same directory and renames it over the
// target, so readers never see a partial document.
func (s *FileStore) Save(ctx context.Context, profileID string, p *profile.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(profileID)
	if err != nil {
		return err
	}

	data, err := encodeProfile(p)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+profileID+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write profile: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close profile: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}

// Ping checks that the directory is still there.
func (s *FileStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("stat profile dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("profile path %s is not a directory", s.dir)
	}
	return nil
}

func (s *FileStore) path(profileID string) (string, error) {
	if profileID == "" || strings.ContainsAny(profileID, `/\`) || profileID == "." || profileID == ".." {
		return "", fmt.Errorf("invalid profile id %q", profileID)
	}
	return filepath.Join(s.dir, profileID+".json"), nil
}
