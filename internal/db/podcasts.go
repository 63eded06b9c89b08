package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cl-victor1/divinetalk/internal/models"
)

// CreatePodcast inserts the artifact record. Records are append-only.
// A zero CreatedAt takes the database clock; the conversation path
// supplies the session's own start time instead.
func (db *DB) CreatePodcast(ctx context.Context, p *models.Podcast) error {
	query := `
		INSERT INTO user_podcasts (
			id, user_id, audio_url, subtitles_url, title, description, slug, is_public, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, now()))
		RETURNING created_at
	`

	var createdAt sql.NullTime
	if !p.CreatedAt.IsZero() {
		createdAt = sql.NullTime{Time: p.CreatedAt, Valid: true}
	}

	return db.QueryRowContext(
		ctx, query,
		p.ID, p.UserID, p.AudioURL, p.SubtitlesURL, p.Title, p.Description, p.Slug, p.IsPublic, createdAt,
	).Scan(&p.CreatedAt)
}

// ListPublicPodcasts returns the public feed, newest first. Anonymous
// generations are excluded since they carry no owner to attribute.
func (db *DB) ListPublicPodcasts(ctx context.Context) ([]models.PodcastSummary, error) {
	query := `
		SELECT slug, title, created_at
		FROM user_podcasts
		WHERE is_public = true AND user_id IS NOT NULL
		ORDER BY created_at DESC
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query public podcasts: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty feed serializes as [] rather than null.
	podcasts := []models.PodcastSummary{}
	for rows.Next() {
		var p models.PodcastSummary
		if err := rows.Scan(&p.Slug, &p.Title, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan podcast: %w", err)
		}
		podcasts = append(podcasts, p)
	}

	return podcasts, rows.Err()
}

// ListUserPodcasts returns all artifacts owned by a user, newest first.
func (db *DB) ListUserPodcasts(ctx context.Context, userID string) ([]models.Podcast, error) {
	query := `
		SELECT id, user_id, audio_url, subtitles_url, title, description, slug, is_public, created_at
		FROM user_podcasts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user podcasts: %w", err)
	}
	defer rows.Close()

	podcasts := []models.Podcast{}
	for rows.Next() {
		var p models.Podcast
		err := rows.Scan(
			&p.ID, &p.UserID, &p.AudioURL, &p.SubtitlesURL,
			&p.Title, &p.Description, &p.Slug, &p.IsPublic, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan podcast: %w", err)
		}
		podcasts = append(podcasts, p)
	}

	return podcasts, rows.Err()
}
