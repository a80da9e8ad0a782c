package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Backup writes a consistent snapshot of the database into dir using
// VACUUM INTO, creating the directory if needed. It returns the snapshot
// path. VACUUM INTO refuses to overwrite, so the filename carries a
// timestamp down to the second.
func (s *SQLiteStore) Backup(ctx context.Context, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("timesheet-%s.db", time.Now().Format("20060102-150405"))
	dst := filepath.Join(dir, name)

	if _, err := s.db.ExecContext(ctx, "VACUUM INTO ?", dst); err != nil {
		return "", fmt.Errorf("writing backup to %s: %w", dst, err)
	}
	return dst, nil
}
