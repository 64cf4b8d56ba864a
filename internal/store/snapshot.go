package store

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Snapshotter periodically writes the database to a JSON file, mirroring
// the autosave behaviour of the original deployment.  Persistence is
// best-effort observability of state between runs, not a correctness gate:
// a failed save is logged and retried on the next tick.
type Snapshotter struct {
	Path     string
	Interval time.Duration
	Marshal  func() ([]byte, error) // typically Engine.Snapshot, which takes the read lock
}

// LoadFile reads a snapshot file into the database.  A missing file is not
// an error; the caller starts with an empty database and seeds it.
func (d *Database) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return d.RestoreSnapshot(data)
}

// Save writes one snapshot atomically: the data is written to a temporary
// file in the same directory and renamed over the target, so readers never
// observe a half-written file.
func (s *Snapshotter) Save() error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".hostel-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.Path)
}

// Run saves the database on every tick until the context is cancelled,
// then performs one final save so a clean shutdown loses nothing.
func (s *Snapshotter) Run(ctx context.Context) {
	t := time.NewTicker(s.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			if err := s.Save(); err != nil {
				log.Printf("snapshot: final save failed: %v", err)
			}
			return
		case <-t.C:
			if err := s.Save(); err != nil {
				log.Printf("snapshot: save failed: %v", err)
			}
		}
	}
}
