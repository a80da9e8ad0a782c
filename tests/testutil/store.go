package testutil

import (
	"context"
	"testing"

	"github.com/rfrost-xyz/timesheet/internal/model"
	"github.com/rfrost-xyz/timesheet/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// Catalog holds the ids of a small seeded client/project/stage/focus tree.
type Catalog struct {
	ClientID   int64
	ProjectA   int64
	ProjectB   int64
	StageA1    int64
	StageA2    int64
	StageB1    int64
	FocusDeep  int64
	FocusAdmin int64
}

// SeedCatalog populates a store with two projects (Alpha with two stages,
// Beta with one) under a single client, plus two focuses.
func SeedCatalog(t *testing.T, s *store.SQLiteStore) Catalog {
	t.Helper()
	ctx := context.Background()

	var c Catalog
	var err error

	c.ClientID, err = s.CreateClient(ctx, "Acme")
	if err != nil {
		t.Fatalf("seeding client: %v", err)
	}

	c.ProjectA, err = s.CreateProject(ctx, model.Project{Name: "Alpha", ClientID: &c.ClientID})
	if err != nil {
		t.Fatalf("seeding project Alpha: %v", err)
	}
	c.ProjectB, err = s.CreateProject(ctx, model.Project{Name: "Beta", ClientID: &c.ClientID})
	if err != nil {
		t.Fatalf("seeding project Beta: %v", err)
	}

	c.StageA1, err = s.CreateStage(ctx, model.Stage{Name: "Design", ProjectID: c.ProjectA})
	if err != nil {
		t.Fatalf("seeding stage Design: %v", err)
	}
	c.StageA2, err = s.CreateStage(ctx, model.Stage{Name: "Build", ProjectID: c.ProjectA})
	if err != nil {
		t.Fatalf("seeding stage Build: %v", err)
	}
	c.StageB1, err = s.CreateStage(ctx, model.Stage{Name: "Review", ProjectID: c.ProjectB})
	if err != nil {
		t.Fatalf("seeding stage Review: %v", err)
	}

	c.FocusDeep, err = s.CreateFocus(ctx, "Deep Work")
	if err != nil {
		t.Fatalf("seeding focus: %v", err)
	}
	c.FocusAdmin, err = s.CreateFocus(ctx, "Admin")
	if err != nil {
		t.Fatalf("seeding focus: %v", err)
	}

	return c
}
