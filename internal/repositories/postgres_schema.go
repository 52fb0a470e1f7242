package repositories

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_parent BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS children (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		avatar TEXT NOT NULL DEFAULT 'cat',
		parent_id BIGINT NOT NULL,
		time_limit INTEGER NOT NULL DEFAULT 30,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS children_parent_id_idx ON children (parent_id);`,
	`CREATE TABLE IF NOT EXISTS activities (
		id BIGSERIAL PRIMARY KEY,
		child_id BIGINT NOT NULL,
		activity_type TEXT NOT NULL,
		duration INTEGER NOT NULL,
		date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS activities_child_date_idx ON activities (child_id, date);`,
	`CREATE TABLE IF NOT EXISTS photos (
		id BIGINT PRIMARY KEY,
		url TEXT NOT NULL,
		title TEXT NOT NULL,
		alt TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS songs (
		id BIGINT PRIMARY KEY,
		title TEXT NOT NULL,
		icon TEXT NOT NULL,
		color TEXT NOT NULL,
		audio_url TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0
	);`,
}

// Migrate creates the tables when missing and seeds the default catalog.
// Running it again is harmless.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		_, err := s.db.ExecContext(ctx, stmt)
		logQuery(stmt, nil, nil, err)
		if err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	const photoQuery = `
		INSERT INTO photos (id, url, title, alt, sort_order)
		VALUES (:id, :url, :title, :alt, :sort_order)
		ON CONFLICT (id) DO NOTHING
	`
	for _, p := range DefaultPhotos() {
		_, err := s.db.NamedExecContext(ctx, photoQuery, p)
		logQuery(photoQuery, []any{p.ID}, nil, err)
		if err != nil {
			return fmt.Errorf("seed photo %d: %w", p.ID, err)
		}
	}

	const songQuery = `
		INSERT INTO songs (id, title, icon, color, audio_url, sort_order)
		VALUES (:id, :title, :icon, :color, :audio_url, :sort_order)
		ON CONFLICT (id) DO NOTHING
	`
	for _, song := range DefaultSongs() {
		_, err := s.db.NamedExecContext(ctx, songQuery, song)
		logQuery(songQuery, []any{song.ID}, nil, err)
		if err != nil {
			return fmt.Errorf("seed song %d: %w", song.ID, err)
		}
	}

	return nil
}
