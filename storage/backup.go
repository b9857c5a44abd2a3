package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Snapshot copies every storage key into timestamped JSON files under dir.
// Absent keys are skipped. Returns the number of keys written.
func Snapshot(store Store, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create backup directory %s: %v", dir, err)
	}

	stamp := time.Now().Format("20060102-150405")
	written := 0
	for _, key := range AllKeys {
		data, err := store.Read(key)
		if err != nil {
			return written, fmt.Errorf("failed to snapshot key %s: %v", key, err)
		}
		if data == nil {
			continue
		}
		name := fmt.Sprintf("%s_%s.json", key, stamp)
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			return written, fmt.Errorf("failed to write snapshot %s: %v", name, err)
		}
		written++
	}
	return written, nil
}

// PruneSnapshots removes snapshot files older than maxAge. Returns the number
// of files removed.
func PruneSnapshots(dir string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read backup directory %s: %v", dir, err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
