package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var tableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id BIGSERIAL PRIMARY KEY,
		company_name TEXT NOT NULL,
		industry TEXT,
		address TEXT,
		city TEXT,
		state TEXT,
		postal_code TEXT,
		contact_name TEXT,
		contact_title TEXT,
		email TEXT,
		phone TEXT,
		crm_source TEXT,
		crm_id TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS templates (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		content JSONB NOT NULL,
		is_default BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS proposals (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		client_id BIGINT NOT NULL REFERENCES clients(id),
		template_id BIGINT NOT NULL REFERENCES templates(id),
		status TEXT NOT NULL DEFAULT 'draft',
		amount TEXT,
		content JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS badges (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		icon TEXT NOT NULL,
		category TEXT NOT NULL,
		required_count BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_activities (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		activity_type TEXT NOT NULL,
		entity_id BIGINT,
		entity_type TEXT,
		data JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_achievements (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		badge_id BIGINT NOT NULL REFERENCES badges(id),
		count BIGINT NOT NULL DEFAULT 0,
		progress BIGINT NOT NULL DEFAULT 0,
		earned_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, badge_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_activities_user_type
		ON user_activities (user_id, activity_type)`,
	`CREATE INDEX IF NOT EXISTS idx_proposals_client ON proposals (client_id)`,
}

// EnsureSchema creates all tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range tableDefinitions {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
