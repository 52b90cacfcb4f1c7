package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tracc-cli/tracc/internal/model"
)

var (
	// ErrAlreadyTracking is returned by [BeginPeriod] while a period is open.
	ErrAlreadyTracking = errors.New("already tracking")
	// ErrNotTracking is returned by [EndPeriod] when no period is open.
	ErrNotTracking = errors.New("not tracking")
	// ErrStoreUnreadable is returned when stored rows cannot be decoded.
	ErrStoreUnreadable = errors.New("store unreadable")
)

// Timestamps are persisted as unix nanoseconds so a begin immediately
// followed by an end still yields start < end.
func importTime(ns int64) time.Time {
	return time.Unix(0, ns)
}

// BeginPeriod opens a new work period starting now.
//
// At most one period may be open at a time. If a period is already open,
// [ErrAlreadyTracking] is returned mentioning when it started. The check and
// the insert run in a single transaction.
func BeginPeriod() (*model.Period, error) {
	tx, err := DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var start int64
	err = tx.QueryRow(`
		SELECT start_time FROM periods
		WHERE end_time IS NULL
		ORDER BY start_time DESC LIMIT 1`).Scan(&start)
	if err == nil {
		return nil, fmt.Errorf("%w: current period started at %s is still running",
			ErrAlreadyTracking, importTime(start).Format(model.TimeFormat))
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	id := model.NewULID()
	now := time.Now()
	_, err = tx.Exec("INSERT INTO periods (id, start_time) VALUES (?, ?)", id, now.UnixNano())
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Period{
		ID:        id,
		StartTime: importTime(now.UnixNano()),
	}, nil
}

// EndPeriod closes the open work period, setting its end time to now, and
// returns the closed period. Returns [ErrNotTracking] when no period is open.
func EndPeriod() (*model.Period, error) {
	tx, err := DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var (
		id    string
		start int64
	)
	err = tx.QueryRow(`
		SELECT id, start_time FROM periods
		WHERE end_time IS NULL
		ORDER BY start_time DESC LIMIT 1`).Scan(&id, &start)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: cannot end period", ErrNotTracking)
	}
	if err != nil {
		return nil, err
	}

	end := time.Now().UnixNano()
	_, err = tx.Exec("UPDATE periods SET end_time = ? WHERE id = ?", end, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	endTime := importTime(end)
	return &model.Period{
		ID:        id,
		StartTime: importTime(start),
		EndTime:   &endTime,
	}, nil
}

// OpenPeriod returns the currently open period, or nil when nothing is being
// tracked.
func OpenPeriod() (*model.Period, error) {
	var (
		p     model.Period
		start int64
	)
	err := DB.QueryRow(`
		SELECT id, start_time FROM periods
		WHERE end_time IS NULL
		ORDER BY start_time DESC LIMIT 1`).Scan(&p.ID, &start)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.StartTime = importTime(start)
	return &p, nil
}

// LastPeriod returns the most recent period, open or closed, or nil when the
// store is empty.
func LastPeriod() (*model.Period, error) {
	var (
		p     model.Period
		start int64
		end   sql.NullInt64
	)
	err := DB.QueryRow(`
		SELECT id, start_time, end_time FROM periods
		ORDER BY start_time DESC LIMIT 1`).Scan(&p.ID, &start, &end)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.StartTime = importTime(start)
	if end.Valid {
		t := importTime(end.Int64)
		p.EndTime = &t
	}
	return &p, nil
}

// ListPeriods returns all recorded periods in chronological order. Rows that
// cannot be decoded surface as [ErrStoreUnreadable].
func ListPeriods() ([]model.Period, error) {
	rows, err := DB.Query("SELECT id, start_time, end_time FROM periods ORDER BY start_time")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnreadable, err)
	}
	defer rows.Close()

	var periods []model.Period
	for rows.Next() {
		var (
			p     model.Period
			start int64
			end   sql.NullInt64
		)
		if err := rows.Scan(&p.ID, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnreadable, err)
		}
		p.StartTime = importTime(start)
		if end.Valid {
			t := importTime(end.Int64)
			p.EndTime = &t
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnreadable, err)
	}
	return periods, nil
}
