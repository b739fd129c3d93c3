// Package jobs holds the batch jobs of the pipeline. Each job loads its inputs, computes,
// writes one or more artifacts and prints a summary.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/artifact"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/cloud"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/config"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/forecast"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/owid"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/validation"
)

// Alerter sends failed validation reports somewhere a person will see them.
type Alerter interface {
	SendValidationAlert(ctx context.Context, reports []*validation.Report) error
}

// Env carries the settings shared by every job.
type Env struct {
	Out    io.Writer
	Writer *artifact.Writer

	DatasetURL  string
	HTTPTimeout time.Duration
	DownloadDir string
	CacheDir    string

	CAGRFile         string
	EfficiencyMethod string
	EfficiencyFile   string
	ScenariosFile    string
	ForecastMethod   forecast.Method

	BaseYear         int
	HistoryStartYear int
	CAGRStartYear    int
	CAGREndYear      int
	EndYear          int

	SCCScenario   string
	SmoothnessPct float64

	UseCloud  bool
	PublishDB bool
	AWSRegion string
	S3Bucket  string
	S3Prefix  string
	SNSTopic  string

	// NewAlerter is nil when alerts are disabled.
	NewAlerter func(ctx context.Context) (Alerter, error)
}

// FromConfig builds an Env from the loaded configuration, printing to stdout.
func FromConfig() *Env {
	e := &Env{
		Out:    os.Stdout,
		Writer: artifact.NewWriter(config.OutputDir()),

		DatasetURL:  config.DatasetURL(),
		HTTPTimeout: config.HTTPTimeout(),
		DownloadDir: config.DownloadDir(),
		CacheDir:    config.CacheDir(),

		CAGRFile:         config.CAGRFile(),
		EfficiencyMethod: config.EfficiencyMethod(),
		EfficiencyFile:   config.EfficiencyFactorsFile(),
		ScenariosFile:    config.ScenariosFile(),
		ForecastMethod:   forecast.Method(config.ForecastMethod()),

		BaseYear:         config.BaseYear(),
		HistoryStartYear: config.HistoryStartYear(),
		CAGRStartYear:    config.CAGRStartYear(),
		CAGREndYear:      config.CAGREndYear(),
		EndYear:          config.ProjectionEndYear(),

		SCCScenario:   config.SCCScenario(),
		SmoothnessPct: config.SmoothnessThresholdPct(),

		UseCloud:  config.UseCloudServices(),
		PublishDB: config.PublishDB(),
		AWSRegion: config.AWSRegion(),
		S3Bucket:  config.S3Bucket(),
		S3Prefix:  config.S3Prefix(),
		SNSTopic:  config.SNSTopicArn(),
	}
	if e.UseCloud && e.SNSTopic != "" {
		e.NewAlerter = func(ctx context.Context) (Alerter, error) {
			return cloud.NewSNSClient(ctx, e.AWSRegion, e.SNSTopic)
		}
	}
	return e
}

// loadDataset reads the cached JSON dataset, falling back to the latest CSV.
func (e *Env) loadDataset() (owid.Dataset, error) {
	jsonPath := filepath.Join(e.DownloadDir, owid.LatestJSON)
	if _, err := os.Stat(jsonPath); err == nil {
		log.Info().Str("path", jsonPath).Msg("loading dataset")
		return owid.LoadJSON(jsonPath)
	}
	csvPath := filepath.Join(e.DownloadDir, owid.LatestCSV)
	if _, err := os.Stat(csvPath); err != nil {
		return nil, fmt.Errorf("no dataset in %s, run fetch first: %w", e.DownloadDir, err)
	}
	log.Info().Str("path", csvPath).Msg("loading dataset")
	return owid.LoadCSV(csvPath)
}

// read decodes a required artifact from the output directory.
func (e *Env) read(name string, v any) error {
	return artifact.Read(e.Writer.Path(name), v)
}

// readOptional reports whether the artifact existed.
func (e *Env) readOptional(name string, v any) (bool, error) {
	if _, err := os.Stat(e.Writer.Path(name)); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err := e.read(name, v); err != nil {
		return false, err
	}
	return true, nil
}

func (e *Env) printf(format string, args ...any) {
	fmt.Fprintf(e.Out, format, args...)
}
