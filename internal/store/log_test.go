package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfrost-xyz/timesheet/internal/model"
	"github.com/rfrost-xyz/timesheet/tests/testutil"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func at(date time.Time, hh, mm int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hh, mm, 0, 0, time.Local)
}

func TestCreateEntry_RoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	cat := testutil.SeedCatalog(t, s)
	ctx := context.Background()
	date := day(2024, 1, 10)

	id, err := s.CreateEntry(ctx, model.LogEntry{
		StageID: cat.StageA1,
		FocusID: nil,
		Start:   at(date, 9, 0),
		End:     at(date, 9, 15),
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	entries, err := s.ListEntriesForDay(ctx, date)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, id, e.ID)
	assert.Equal(t, cat.StageA1, e.StageID)
	assert.Nil(t, e.FocusID)
	assert.Equal(t, at(date, 9, 0), e.Start)
	assert.Equal(t, at(date, 9, 15), e.End)
	assert.Equal(t, "Design", e.StageName)
	assert.Equal(t, "Alpha", e.ProjectName)
	assert.Equal(t, cat.ProjectA, e.ProjectID)
	assert.Nil(t, e.FocusName)
}

func TestCreateEntry_RejectsInvertedInterval(t *testing.T) {
	s := testutil.NewTestStore(t)
	cat := testutil.SeedCatalog(t, s)
	date := day(2024, 1, 10)

	_, err := s.CreateEntry(context.Background(), model.LogEntry{
		StageID: cat.StageA1,
		Start:   at(date, 10, 0),
		End:     at(date, 10, 0),
	})
	assert.Error(t, err)
}

func TestListEntriesForDay_ScopedAndOrdered(t *testing.T) {
	s := testutil.NewTestStore(t)
	cat := testutil.SeedCatalog(t, s)
	ctx := context.Background()
	date := day(2024, 1, 10)
	other := day(2024, 1, 11)

	// Insert out of order, plus one entry on another day.
	for _, iv := range []struct{ start, end time.Time }{
		{at(date, 13, 0), at(date, 14, 0)},
		{at(date, 9, 0), at(date, 9, 30)},
		{at(other, 9, 0), at(other, 10, 0)},
	} {
		_, err := s.CreateEntry(ctx, model.LogEntry{
			StageID: cat.StageA1, Start: iv.start, End: iv.end,
		})
		require.NoError(t, err)
	}

	entries, err := s.ListEntriesForDay(ctx, date)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, at(date, 9, 0), entries[0].Start)
	assert.Equal(t, at(date, 13, 0), entries[1].Start)
}

func TestUpdateEntry_RewritesAllFields(t *testing.T) {
	s := testutil.NewTestStore(t)
	cat := testutil.SeedCatalog(t, s)
	ctx := context.Background()
	date := day(2024, 1, 10)

	id, err := s.CreateEntry(ctx, model.LogEntry{
		StageID: cat.StageA1,
		Start:   at(date, 9, 0),
		End:     at(date, 9, 15),
	})
	require.NoError(t, err)

	err = s.UpdateEntry(ctx, model.LogEntry{
		ID:      id,
		StageID: cat.StageB1,
		FocusID: &cat.FocusDeep,
		Start:   at(date, 10, 0),
		End:     at(date, 11, 30),
	})
	require.NoError(t, err)

	entries, err := s.ListEntriesForDay(ctx, date)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, id, e.ID)
	assert.Equal(t, cat.StageB1, e.StageID)
	require.NotNil(t, e.FocusID)
	assert.Equal(t, cat.FocusDeep, *e.FocusID)
	assert.Equal(t, at(date, 10, 0), e.Start)
	assert.Equal(t, at(date, 11, 30), e.End)
	assert.Equal(t, "Review", e.StageName)
	assert.Equal(t, "Beta", e.ProjectName)
	require.NotNil(t, e.FocusName)
	assert.Equal(t, "Deep Work", *e.FocusName)
}

func TestUpdateEntry_MissingIDIsError(t *testing.T) {
	s := testutil.NewTestStore(t)
	cat := testutil.SeedCatalog(t, s)
	date := day(2024, 1, 10)

	err := s.UpdateEntry(context.Background(), model.LogEntry{
		ID:      9999,
		StageID: cat.StageA1,
		Start:   at(date, 9, 0),
		End:     at(date, 9, 15),
	})
	assert.Error(t, err)
}

func TestDeleteEntry(t *testing.T) {
	s := testutil.NewTestStore(t)
	cat := testutil.SeedCatalog(t, s)
	ctx := context.Background()
	date := day(2024, 1, 10)

	id, err := s.CreateEntry(ctx, model.LogEntry{
		StageID: cat.StageA1,
		Start:   at(date, 9, 0),
		End:     at(date, 9, 15),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEntry(ctx, id))

	entries, err := s.ListEntriesForDay(ctx, date)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.Error(t, s.DeleteEntry(ctx, id))
}

func TestLatestEntry(t *testing.T) {
	s := testutil.NewTestStore(t)
	cat := testutil.SeedCatalog(t, s)
	ctx := context.Background()

	latest, err := s.LatestEntry(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	d1 := day(2024, 1, 10)
	d2 := day(2024, 1, 11)
	_, err = s.CreateEntry(ctx, model.LogEntry{
		StageID: cat.StageA1, Start: at(d2, 9, 0), End: at(d2, 10, 0),
	})
	require.NoError(t, err)
	_, err = s.CreateEntry(ctx, model.LogEntry{
		StageID: cat.StageA1, Start: at(d1, 9, 0), End: at(d1, 17, 0),
	})
	require.NoError(t, err)

	latest, err = s.LatestEntry(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, at(d2, 10, 0), latest.End)
}
