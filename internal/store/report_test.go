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

func TestDayReport_GroupsByStage(t *testing.T) {
	s := testutil.NewTestStore(t)
	cat := testutil.SeedCatalog(t, s)
	ctx := context.Background()
	date := day(2024, 1, 10)

	// Two Design intervals and one Build interval.
	for _, iv := range []struct {
		stage      int64
		start, end time.Time
	}{
		{cat.StageA1, at(date, 9, 0), at(date, 10, 30)},
		{cat.StageA1, at(date, 13, 0), at(date, 13, 30)},
		{cat.StageA2, at(date, 14, 0), at(date, 16, 0)},
	} {
		_, err := s.CreateEntry(ctx, model.LogEntry{
			StageID: iv.stage, Start: iv.start, End: iv.end,
		})
		require.NoError(t, err)
	}

	report, err := s.DayReport(ctx, date)
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, "Build", report[0].StageName)
	assert.InDelta(t, 2.0, report[0].Hours, 0.001)
	assert.Equal(t, "Design", report[1].StageName)
	assert.InDelta(t, 2.0, report[1].Hours, 0.001)
	require.NotNil(t, report[0].ClientName)
	assert.Equal(t, "Acme", *report[0].ClientName)
}

func TestWeekReport_PivotsByWeekday(t *testing.T) {
	s := testutil.NewTestStore(t)
	cat := testutil.SeedCatalog(t, s)
	ctx := context.Background()

	// 2024 ISO week 2 runs Mon 2024-01-08 .. Sun 2024-01-14.
	mon := day(2024, 1, 8)
	wed := day(2024, 1, 10)
	outside := day(2024, 1, 15)

	for _, iv := range []struct {
		stage      int64
		start, end time.Time
	}{
		{cat.StageA1, at(mon, 9, 0), at(mon, 11, 0)},
		{cat.StageA1, at(wed, 9, 0), at(wed, 9, 45)},
		{cat.StageB1, at(wed, 10, 0), at(wed, 11, 0)},
		{cat.StageA1, at(outside, 9, 0), at(outside, 17, 0)},
	} {
		_, err := s.CreateEntry(ctx, model.LogEntry{
			StageID: iv.stage, Start: iv.start, End: iv.end,
		})
		require.NoError(t, err)
	}

	report, err := s.WeekReport(ctx, 2024, 2)
	require.NoError(t, err)
	require.Len(t, report, 2)

	design := report[0]
	assert.Equal(t, "Alpha", design.ProjectName)
	assert.Equal(t, "Design", design.StageName)
	assert.InDelta(t, 2.0, design.Mon, 0.001)
	assert.InDelta(t, 0.75, design.Wed, 0.001)
	assert.InDelta(t, 0.0, design.Tue, 0.001)
	assert.InDelta(t, 2.75, design.Total, 0.001)

	review := report[1]
	assert.Equal(t, "Beta", review.ProjectName)
	assert.InDelta(t, 1.0, review.Wed, 0.001)
	assert.InDelta(t, 1.0, review.Total, 0.001)
}

func TestWeekReport_RejectsInvalidWeek(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.WeekReport(context.Background(), 2024, 0)
	assert.Error(t, err)
	_, err = s.WeekReport(context.Background(), 2024, 54)
	assert.Error(t, err)
}

func TestWeekReport_EmptyWeek(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedCatalog(t, s)

	report, err := s.WeekReport(context.Background(), 2024, 30)
	require.NoError(t, err)
	assert.Empty(t, report)
}
