package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/artifact"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
	"github.com/ANIKETSHETTY47/global-energy-services/internal/repository"
)

type fakeStore struct {
	dir, prefix string
	err         error
}

func (f *fakeStore) UploadDir(_ context.Context, dir, prefix string) ([]string, error) {
	f.dir, f.prefix = dir, prefix
	if f.err != nil {
		return nil, f.err
	}
	return []string{prefix + "/a.json"}, nil
}

type fakeSeries struct {
	runID, method string
	useful        []repository.UsefulRow
	projections   []repository.ProjectionRow
}

func (f *fakeSeries) InsertRun(_ context.Context, runID, method string, _ time.Time) error {
	f.runID, f.method = runID, method
	return nil
}

func (f *fakeSeries) UpsertUseful(_ context.Context, rows []repository.UsefulRow) error {
	f.useful = append(f.useful, rows...)
	return nil
}

func (f *fakeSeries) UpsertProjections(_ context.Context, rows []repository.ProjectionRow) error {
	f.projections = append(f.projections, rows...)
	return nil
}

func newTestPublisher(dir string, store ArtifactStore, series SeriesStore) *Publisher {
	p := NewPublisher(dir, "artifacts", store, series)
	p.newID = func() string { return "run-1" }
	p.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return p
}

func writeArtifacts(t *testing.T, dir string) {
	t.Helper()
	w := artifact.NewWriter(dir)
	_, err := w.Write(artifact.UsefulTimeseries, domain.Timeseries{Data: []domain.YearRecord{
		{Year: 2023, TotalUsefulEJ: 230, SourcesUsefulEJ: map[string]float64{domain.Coal: 50}},
		{Year: 2024, TotalUsefulEJ: 239},
	}})
	require.NoError(t, err)
	_, err = w.Write(artifact.RegionalTimeseries, domain.RegionalTimeseries{Regions: map[string]domain.Region{
		"Japan": {Country: "Japan", Data: []domain.YearRecord{{Year: 2024}}},
		"China": {Country: "China", Data: []domain.YearRecord{{Year: 2024}}},
	}})
	require.NoError(t, err)
	_, err = w.Write(artifact.Projections, domain.Projections{
		Metadata: domain.Metadata{Method: "scurve"},
		Scenarios: []domain.Scenario{
			{Name: "Baseline", Data: []domain.Projection{{Year: 2025}, {Year: 2026}}},
			{Name: "Net Zero", Data: []domain.Projection{{Year: 2025}}},
		},
	})
	require.NoError(t, err)
}

func TestPublishBothTargets(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)
	store, series := &fakeStore{}, &fakeSeries{}

	res, err := newTestPublisher(dir, store, series).Publish(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, "artifacts/run-1", store.prefix)
	assert.Equal(t, dir, store.dir)
	assert.Equal(t, []string{"artifacts/run-1/a.json"}, res.Keys)

	assert.Equal(t, "scurve", series.method)
	require.Len(t, series.useful, 4)
	assert.Equal(t, repository.GlobalRegion, series.useful[0].Region)
	assert.JSONEq(t, `{"coal":50}`, string(series.useful[0].Sources))
	assert.Equal(t, "China", series.useful[2].Region)
	assert.Equal(t, "Japan", series.useful[3].Region)

	require.Len(t, series.projections, 3)
	assert.Equal(t, "Net Zero", series.projections[2].Scenario)
	assert.Equal(t, 4, res.UsefulRows)
	assert.Equal(t, 3, res.ProjectionRows)
}

func TestPublishOptionalArtifacts(t *testing.T) {
	dir := t.TempDir()
	_, err := artifact.NewWriter(dir).Write(artifact.UsefulTimeseries, domain.Timeseries{
		Data: []domain.YearRecord{{Year: 2024}},
	})
	require.NoError(t, err)
	series := &fakeSeries{}

	res, err := newTestPublisher(dir, nil, series).Publish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.UsefulRows)
	assert.Zero(t, res.ProjectionRows)
	assert.Empty(t, res.Keys)
}

func TestPublishErrors(t *testing.T) {
	_, err := newTestPublisher(t.TempDir(), nil, nil).Publish(context.Background())
	assert.ErrorIs(t, err, ErrNothingToPublish)

	// the global series is required for the database target
	_, err = newTestPublisher(t.TempDir(), nil, &fakeSeries{}).Publish(context.Background())
	assert.Error(t, err)

	_, err = newTestPublisher(t.TempDir(), &fakeStore{err: errors.New("denied")}, nil).Publish(context.Background())
	assert.ErrorContains(t, err, "denied")
}
