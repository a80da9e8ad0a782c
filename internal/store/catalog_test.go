package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfrost-xyz/timesheet/tests/testutil"
)

func TestListProjects(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedCatalog(t, s)

	projects, err := s.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, "Alpha", projects[0].Name)
	assert.Equal(t, "Beta", projects[1].Name)
	require.NotNil(t, projects[0].ClientName)
	assert.Equal(t, "Acme", *projects[0].ClientName)
}

func TestListStages_ScopedToProject(t *testing.T) {
	s := testutil.NewTestStore(t)
	cat := testutil.SeedCatalog(t, s)
	ctx := context.Background()

	all, err := s.ListStages(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := s.ListStages(ctx, &cat.ProjectA)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	for _, st := range scoped {
		assert.Equal(t, cat.ProjectA, st.ProjectID)
		assert.Equal(t, "Alpha", st.ProjectName)
	}
	// Ordered by project name then stage name.
	assert.Equal(t, "Build", scoped[0].Name)
	assert.Equal(t, "Design", scoped[1].Name)
}

func TestListFocuses_OrderedByName(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedCatalog(t, s)

	focuses, err := s.ListFocuses(context.Background())
	require.NoError(t, err)
	require.Len(t, focuses, 2)
	assert.Equal(t, "Admin", focuses[0].Name)
	assert.Equal(t, "Deep Work", focuses[1].Name)
}

func TestCreateCatalog_RejectsEmptyNames(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := s.CreateClient(ctx, "  ")
	assert.Error(t, err)
	_, err = s.CreateFocus(ctx, "")
	assert.Error(t, err)
}
