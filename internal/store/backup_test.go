package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rfrost-xyz/timesheet/internal/model"
	"github.com/rfrost-xyz/timesheet/internal/store"
	"github.com/rfrost-xyz/timesheet/tests/testutil"
)

func TestBackup_SnapshotContainsData(t *testing.T) {
	dir := t.TempDir()

	s, err := store.NewSQLiteStore(filepath.Join(dir, "live.db"))
	require.NoError(t, err)
	defer s.Close()

	cat := testutil.SeedCatalog(t, s)
	ctx := context.Background()
	date := day(2024, 1, 10)
	_, err = s.CreateEntry(ctx, model.LogEntry{
		StageID: cat.StageA1, Start: at(date, 9, 0), End: at(date, 10, 0),
	})
	require.NoError(t, err)

	backupDir := filepath.Join(dir, "backups")
	path, err := s.Backup(ctx, backupDir)
	require.NoError(t, err)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	snap, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer snap.Close()

	entries, err := snap.ListEntriesForDay(ctx, date)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
