package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestDB points the store at a throwaway XDG data dir and opens it.
func initTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	require.NoError(t, Init())
	t.Cleanup(func() {
		require.NoError(t, Close())
	})
}

func TestBeginPeriod(t *testing.T) {
	initTestDB(t)

	period, err := BeginPeriod()
	require.NoError(t, err)
	require.NotNil(t, period)
	assert.NotEmpty(t, period.ID)
	assert.True(t, period.Open())

	open, err := OpenPeriod()
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, period.ID, open.ID)
}

func TestBeginPeriodAlreadyTracking(t *testing.T) {
	initTestDB(t)

	_, err := BeginPeriod()
	require.NoError(t, err)

	_, err = BeginPeriod()
	require.ErrorIs(t, err, ErrAlreadyTracking)

	// The failed begin must not have appended anything.
	periods, err := ListPeriods()
	require.NoError(t, err)
	assert.Len(t, periods, 1)
}

func TestEndPeriodNotTracking(t *testing.T) {
	initTestDB(t)

	_, err := EndPeriod()
	require.ErrorIs(t, err, ErrNotTracking)
}

func TestEndPeriodAfterClose(t *testing.T) {
	initTestDB(t)

	_, err := BeginPeriod()
	require.NoError(t, err)
	_, err = EndPeriod()
	require.NoError(t, err)

	_, err = EndPeriod()
	require.ErrorIs(t, err, ErrNotTracking)
}

func TestBeginThenEnd(t *testing.T) {
	initTestDB(t)

	began, err := BeginPeriod()
	require.NoError(t, err)

	closed, err := EndPeriod()
	require.NoError(t, err)
	require.NotNil(t, closed.EndTime)
	assert.Equal(t, began.ID, closed.ID)
	assert.True(t, closed.StartTime.Before(*closed.EndTime),
		"start %v must precede end %v", closed.StartTime, closed.EndTime)

	periods, err := ListPeriods()
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.False(t, periods[0].Open())

	open, err := OpenPeriod()
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestListPeriodsEmpty(t *testing.T) {
	initTestDB(t)

	periods, err := ListPeriods()
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestListPeriodsChronological(t *testing.T) {
	initTestDB(t)

	for i := 0; i < 3; i++ {
		_, err := BeginPeriod()
		require.NoError(t, err)
		_, err = EndPeriod()
		require.NoError(t, err)
	}
	_, err := BeginPeriod()
	require.NoError(t, err)

	periods, err := ListPeriods()
	require.NoError(t, err)
	require.Len(t, periods, 4)

	for i := 1; i < len(periods); i++ {
		assert.True(t, !periods[i].StartTime.Before(periods[i-1].StartTime),
			"periods must be in chronological order")
	}
	assert.True(t, periods[3].Open())
}

func TestLastPeriod(t *testing.T) {
	initTestDB(t)

	last, err := LastPeriod()
	require.NoError(t, err)
	assert.Nil(t, last)

	_, err = BeginPeriod()
	require.NoError(t, err)
	closed, err := EndPeriod()
	require.NoError(t, err)

	last, err = LastPeriod()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, closed.ID, last.ID)
	require.NotNil(t, last.EndTime)
	assert.True(t, last.EndTime.Equal(*closed.EndTime))
}

func TestPeriodsRoundTrip(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	require.NoError(t, Init())

	_, err := BeginPeriod()
	require.NoError(t, err)
	_, err = EndPeriod()
	require.NoError(t, err)
	_, err = BeginPeriod()
	require.NoError(t, err)

	want, err := ListPeriods()
	require.NoError(t, err)
	require.NoError(t, Close())

	// Reopen against the same data dir and compare.
	require.NoError(t, Init())
	t.Cleanup(func() {
		require.NoError(t, Close())
	})

	got, err := ListPeriods()
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.True(t, got[i].StartTime.Equal(want[i].StartTime))
		if want[i].EndTime == nil {
			assert.Nil(t, got[i].EndTime)
		} else {
			require.NotNil(t, got[i].EndTime)
			assert.True(t, got[i].EndTime.Equal(*want[i].EndTime))
		}
	}
}

func TestListPeriodsStoreUnreadable(t *testing.T) {
	initTestDB(t)

	// SQLite's dynamic typing lets a text value land in the INTEGER
	// start_time column; decoding it must fail loudly, not be swallowed.
	_, err := DB.Exec("INSERT INTO periods (id, start_time) VALUES ('bad', 'not-a-number')")
	require.NoError(t, err)

	_, err = ListPeriods()
	require.ErrorIs(t, err, ErrStoreUnreadable)
}

func TestGetDataDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	dir, err := GetDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg-data/tracc", dir)
}

func TestImportTime(t *testing.T) {
	now := time.Now()
	assert.True(t, importTime(now.UnixNano()).Equal(now))
}
