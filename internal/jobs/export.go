package jobs

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/artifact"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/cloud"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/database"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/export"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/owid"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/repository"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/service"
)

// Export writes the workbook and history chart from the generated artifacts.
func Export(_ context.Context, e *Env) error {
	var ts domain.Timeseries
	if err := e.read(artifact.UsefulTimeseries, &ts); err != nil {
		return err
	}
	var proj domain.Projections
	if _, err := e.readOptional(artifact.Projections, &proj); err != nil {
		return err
	}
	var doc domain.SystemCostDocument
	found, err := e.readOptional(artifact.SystemCosts, &doc)
	if err != nil {
		return err
	}
	var costs *domain.SystemCostDocument
	if found {
		costs = &doc
	}

	book := e.Writer.Path(artifact.Workbook)
	if err := export.Workbook(book, ts, proj, costs); err != nil {
		return err
	}
	chart := e.Writer.Path(artifact.HistoryChart)
	if err := export.HistoryChart(chart, ts); err != nil {
		return err
	}
	log.Info().Str("workbook", book).Str("chart", chart).Msg("export written")

	e.printf("Workbook %s: history %d years, %d scenarios, costs %t\n", book, len(ts.Data), len(proj.Scenarios), found)
	e.printf("Chart %s\n", chart)
	return nil
}

// Fetch downloads and caches the dataset.
func Fetch(ctx context.Context, e *Env) error {
	f := owid.NewFetcher(e.DatasetURL, e.DownloadDir, e.CacheDir, e.HTTPTimeout)
	data, res, err := f.Fetch(ctx)
	if err != nil {
		return err
	}

	e.printf("Downloaded %d bytes to %s\n", res.Bytes, res.CSVPath)
	e.printf("Cached %s\n", res.LatestJSONPath)
	e.printf("Countries: %d\n", len(data))
	world, err := data.Country(WorldCountry)
	if err != nil {
		log.Warn().Msg("dataset has no World rows")
		return nil
	}
	first, last := world.YearRange()
	e.printf("World: %d fields, years %d-%d\n", len(world.Fields()), first, last)
	return nil
}

// Publish uploads the output directory to S3 when cloud services are enabled and loads
// the series into Postgres when PublishDB is set.
func Publish(ctx context.Context, e *Env) error {
	var store service.ArtifactStore
	var s3c *cloud.S3Client
	if e.UseCloud {
		var err error
		if s3c, err = cloud.NewS3Client(ctx, e.AWSRegion, e.S3Bucket); err != nil {
			return err
		}
		store = s3c
	}

	var series service.SeriesStore
	if e.PublishDB {
		db, err := database.Connect()
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		if err := database.EnsureSchema(ctx, db); err != nil {
			return err
		}
		series = repository.New(db)
	}

	start := time.Now()
	res, err := service.NewPublisher(e.Writer.Dir, e.S3Prefix, store, series).Publish(ctx)
	if err != nil {
		return err
	}
	e.printf("Run %s published in %s\n", res.RunID, time.Since(start).Round(time.Millisecond))
	if s3c != nil {
		if err := e.printUploads(ctx, s3c, res); err != nil {
			return err
		}
	}
	if series != nil {
		e.printf("  %d useful energy rows, %d projection rows\n", res.UsefulRows, res.ProjectionRows)
	}
	return nil
}

// printUploads lists what landed under the run prefix with a download link for each key.
func (e *Env) printUploads(ctx context.Context, s3c *cloud.S3Client, res service.Result) error {
	keys, err := s3c.ListArtifacts(ctx, path.Join(e.S3Prefix, res.RunID)+"/")
	if err != nil {
		return err
	}
	if len(keys) != len(res.Keys) {
		log.Warn().Int("uploaded", len(res.Keys)).Int("listed", len(keys)).Msg("bucket listing differs from upload")
	}
	for _, k := range keys {
		url, err := s3c.PresignArtifact(ctx, k)
		if err != nil {
			return err
		}
		e.printf("  s3://%s/%s\n    %s\n", e.S3Bucket, k, url)
	}
	return nil
}
