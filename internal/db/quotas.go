package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cl-victor1/divinetalk/internal/models"
)

// TryConsume attempts to claim one generation slot for the user against
// the given tier limit. It returns true when the slot was claimed.
//
// Each branch is a single conditional statement, so concurrent requests
// race on the database rather than on an in-process read-modify-write:
// the counter can never pass the limit no matter how many requests
// arrive at once. The 30-day window rolls from last_reset_date, not
// from calendar months.
func (db *DB) TryConsume(ctx context.Context, userID string, limit int) (bool, error) {
	// Common case: active window, counter below the limit.
	res, err := db.ExecContext(ctx, `
		UPDATE podcast_generation_counts
		SET count = count + 1
		WHERE user_id = $1
		  AND last_reset_date > now() - interval '30 days'
		  AND count < $2
	`, userID, limit)
	if err != nil {
		return false, fmt.Errorf("failed to increment generation count: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return true, nil
	}

	// Window lapsed: start a fresh one with this generation counted.
	res, err = db.ExecContext(ctx, `
		UPDATE podcast_generation_counts
		SET count = 1, last_reset_date = now()
		WHERE user_id = $1
		  AND last_reset_date <= now() - interval '30 days'
	`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to reset generation window: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return true, nil
	}

	// First generation for this user.
	res, err = db.ExecContext(ctx, `
		INSERT INTO podcast_generation_counts (user_id, count, last_reset_date)
		VALUES ($1, 1, now())
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to create generation count: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return true, nil
	}

	// A concurrent request inserted the row between our statements.
	res, err = db.ExecContext(ctx, `
		UPDATE podcast_generation_counts
		SET count = count + 1
		WHERE user_id = $1
		  AND last_reset_date > now() - interval '30 days'
		  AND count < $2
	`, userID, limit)
	if err != nil {
		return false, fmt.Errorf("failed to increment generation count: %w", err)
	}
	n, _ := res.RowsAffected()
	return n == 1, nil
}

// GetQuota returns the user's current counter, or nil when the user has
// never generated a podcast.
func (db *DB) GetQuota(ctx context.Context, userID string) (*models.QuotaRecord, error) {
	rec := &models.QuotaRecord{}
	err := db.QueryRowContext(ctx, `
		SELECT user_id, count, last_reset_date
		FROM podcast_generation_counts
		WHERE user_id = $1
	`, userID).Scan(&rec.UserID, &rec.Count, &rec.LastResetDate)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation count: %w", err)
	}

	return rec, nil
}
