package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

// GlobalRegion labels the World series in useful_energy.
const GlobalRegion = "Global"

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

// UsefulRow is a useful_energy row.
type UsefulRow struct {
	RunID  string `db:"run_id"`
	Region string `db:"region"`
	domain.YearRecord
	Sources []byte `db:"sources"`
}

// ProjectionRow is a projections row.
type ProjectionRow struct {
	RunID string `db:"run_id"`
	domain.Projection
	Sources []byte `db:"sources"`
}

func sourcesJSON(m map[string]float64) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// UsefulRows flattens records for one region.
func UsefulRows(runID, region string, records []domain.YearRecord) ([]UsefulRow, error) {
	rows := make([]UsefulRow, 0, len(records))
	for _, rec := range records {
		src, err := sourcesJSON(rec.SourcesUsefulEJ)
		if err != nil {
			return nil, fmt.Errorf("failed to encode sources for %d: %w", rec.Year, err)
		}
		rows = append(rows, UsefulRow{RunID: runID, Region: region, YearRecord: rec, Sources: src})
	}
	return rows, nil
}

// ProjectionRows flattens every scenario year.
func ProjectionRows(runID string, scenarios []domain.Scenario) ([]ProjectionRow, error) {
	var rows []ProjectionRow
	for _, s := range scenarios {
		for _, p := range s.Data {
			src, err := sourcesJSON(p.SourcesUsefulEJ)
			if err != nil {
				return nil, fmt.Errorf("failed to encode sources for %s %d: %w", s.Name, p.Year, err)
			}
			p.Scenario = s.Name
			rows = append(rows, ProjectionRow{RunID: runID, Projection: p, Sources: src})
		}
	}
	return rows, nil
}

func (r *Repos) InsertRun(ctx context.Context, runID, method string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO publish_runs(run_id, published_at, method) VALUES ($1,$2,$3)`,
		runID, at, method)
	return err
}

const upsertUseful = `INSERT INTO useful_energy
	(run_id, region, year, total_final_ej, total_useful_ej, fossil_useful_ej, clean_useful_ej,
	 fossil_share_percent, clean_share_percent, sources)
VALUES
	(:run_id, :region, :year, :total_final_ej, :total_useful_ej, :fossil_useful_ej, :clean_useful_ej,
	 :fossil_share_percent, :clean_share_percent, :sources)
ON CONFLICT (run_id, region, year) DO UPDATE SET
	total_final_ej = EXCLUDED.total_final_ej,
	total_useful_ej = EXCLUDED.total_useful_ej,
	fossil_useful_ej = EXCLUDED.fossil_useful_ej,
	clean_useful_ej = EXCLUDED.clean_useful_ej,
	fossil_share_percent = EXCLUDED.fossil_share_percent,
	clean_share_percent = EXCLUDED.clean_share_percent,
	sources = EXCLUDED.sources`

const upsertProjection = `INSERT INTO projections
	(run_id, scenario, year, total_useful_ej, fossil_useful_ej, clean_useful_ej,
	 fossil_share_percent, clean_share_percent, sources)
VALUES
	(:run_id, :scenario, :year, :total_useful_ej, :fossil_useful_ej, :clean_useful_ej,
	 :fossil_share_percent, :clean_share_percent, :sources)
ON CONFLICT (run_id, scenario, year) DO UPDATE SET
	total_useful_ej = EXCLUDED.total_useful_ej,
	fossil_useful_ej = EXCLUDED.fossil_useful_ej,
	clean_useful_ej = EXCLUDED.clean_useful_ej,
	fossil_share_percent = EXCLUDED.fossil_share_percent,
	clean_share_percent = EXCLUDED.clean_share_percent,
	sources = EXCLUDED.sources`

// UpsertUseful writes rows in one transaction.
func (r *Repos) UpsertUseful(ctx context.Context, rows []UsefulRow) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			if _, err := tx.NamedExecContext(ctx, upsertUseful, row); err != nil {
				return fmt.Errorf("failed to upsert %s %d: %w", row.Region, row.Year, err)
			}
		}
		return nil
	})
}

func (r *Repos) UpsertProjections(ctx context.Context, rows []ProjectionRow) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			if _, err := tx.NamedExecContext(ctx, upsertProjection, row); err != nil {
				return fmt.Errorf("failed to upsert %s %d: %w", row.Scenario, row.Year, err)
			}
		}
		return nil
	})
}

func (r *Repos) inTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
