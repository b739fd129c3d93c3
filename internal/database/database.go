package database

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

func Connect() (*sqlx.DB, error) {
	dsn := viper.GetString("DB_DSN")
	return sqlx.Connect("pgx", dsn)
}

// Schema holds the publish tables. Every row is keyed by the run that wrote it.
const Schema = `
CREATE TABLE IF NOT EXISTS publish_runs (
	run_id       TEXT PRIMARY KEY,
	published_at TIMESTAMPTZ NOT NULL,
	method       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS useful_energy (
	run_id               TEXT NOT NULL REFERENCES publish_runs(run_id) ON DELETE CASCADE,
	region               TEXT NOT NULL,
	year                 INTEGER NOT NULL,
	total_final_ej       DOUBLE PRECISION NOT NULL,
	total_useful_ej      DOUBLE PRECISION NOT NULL,
	fossil_useful_ej     DOUBLE PRECISION NOT NULL,
	clean_useful_ej      DOUBLE PRECISION NOT NULL,
	fossil_share_percent DOUBLE PRECISION NOT NULL,
	clean_share_percent  DOUBLE PRECISION NOT NULL,
	sources              JSONB NOT NULL,
	PRIMARY KEY (run_id, region, year)
);

CREATE TABLE IF NOT EXISTS projections (
	run_id               TEXT NOT NULL REFERENCES publish_runs(run_id) ON DELETE CASCADE,
	scenario             TEXT NOT NULL,
	year                 INTEGER NOT NULL,
	total_useful_ej      DOUBLE PRECISION NOT NULL,
	fossil_useful_ej     DOUBLE PRECISION NOT NULL,
	clean_useful_ej      DOUBLE PRECISION NOT NULL,
	fossil_share_percent DOUBLE PRECISION NOT NULL,
	clean_share_percent  DOUBLE PRECISION NOT NULL,
	sources              JSONB NOT NULL,
	PRIMARY KEY (run_id, scenario, year)
);
`

// EnsureSchema creates the publish tables when they are missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
