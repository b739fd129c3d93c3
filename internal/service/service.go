// Package service publishes the artifacts of a pipeline run to S3 and Postgres.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/artifact"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/repository"
)

// ArtifactStore uploads an output directory. Implemented by cloud.S3Client.
type ArtifactStore interface {
	UploadDir(ctx context.Context, dir, prefix string) ([]string, error)
}

// SeriesStore persists series rows. Implemented by repository.Repos.
type SeriesStore interface {
	InsertRun(ctx context.Context, runID, method string, at time.Time) error
	UpsertUseful(ctx context.Context, rows []repository.UsefulRow) error
	UpsertProjections(ctx context.Context, rows []repository.ProjectionRow) error
}

var ErrNothingToPublish = errors.New("no publish target configured")

// Publisher pushes one run's outputs to the configured targets. Either target may
// be nil.
type Publisher struct {
	Dir    string
	Prefix string

	store  ArtifactStore
	series SeriesStore
	now    func() time.Time
	newID  func() string
}

func NewPublisher(dir, prefix string, store ArtifactStore, series SeriesStore) *Publisher {
	return &Publisher{
		Dir:    dir,
		Prefix: prefix,
		store:  store,
		series: series,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Result summarises a publish run.
type Result struct {
	RunID          string   `json:"run_id"`
	Keys           []string `json:"keys,omitempty"`
	UsefulRows     int      `json:"useful_rows"`
	ProjectionRows int      `json:"projection_rows"`
}

func (p *Publisher) Publish(ctx context.Context) (Result, error) {
	if p.store == nil && p.series == nil {
		return Result{}, ErrNothingToPublish
	}
	res := Result{RunID: p.newID()}
	log.Info().Str("run_id", res.RunID).Str("dir", p.Dir).Msg("publishing")

	if p.store != nil {
		keys, err := p.store.UploadDir(ctx, p.Dir, path.Join(p.Prefix, res.RunID))
		if err != nil {
			return res, fmt.Errorf("failed to upload artifacts: %w", err)
		}
		res.Keys = keys
	}

	if p.series != nil {
		if err := p.publishSeries(ctx, &res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (p *Publisher) publishSeries(ctx context.Context, res *Result) error {
	var global domain.Timeseries
	if err := artifact.Read(p.path(artifact.UsefulTimeseries), &global); err != nil {
		return err
	}
	useful, err := repository.UsefulRows(res.RunID, repository.GlobalRegion, global.Data)
	if err != nil {
		return err
	}

	var regional domain.RegionalTimeseries
	if err := p.readOptional(artifact.RegionalTimeseries, &regional); err != nil {
		return err
	}
	names := make([]string, 0, len(regional.Regions))
	for name := range regional.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows, err := repository.UsefulRows(res.RunID, name, regional.Regions[name].Data)
		if err != nil {
			return err
		}
		useful = append(useful, rows...)
	}

	var proj domain.Projections
	if err := p.readOptional(artifact.Projections, &proj); err != nil {
		return err
	}
	projections, err := repository.ProjectionRows(res.RunID, proj.Scenarios)
	if err != nil {
		return err
	}

	if err := p.series.InsertRun(ctx, res.RunID, proj.Metadata.Method, p.now().UTC()); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	if err := p.series.UpsertUseful(ctx, useful); err != nil {
		return err
	}
	if err := p.series.UpsertProjections(ctx, projections); err != nil {
		return err
	}
	res.UsefulRows = len(useful)
	res.ProjectionRows = len(projections)
	log.Info().Int("useful_rows", res.UsefulRows).Int("projection_rows", res.ProjectionRows).Msg("series published")
	return nil
}

func (p *Publisher) path(name string) string {
	return filepath.Join(p.Dir, name)
}

// readOptional leaves v untouched when the artifact has not been generated.
func (p *Publisher) readOptional(name string, v any) error {
	if _, err := os.Stat(p.path(name)); errors.Is(err, os.ErrNotExist) {
		log.Warn().Str("artifact", name).Msg("artifact missing, skipped")
		return nil
	}
	return artifact.Read(p.path(name), v)
}
