package owid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	LatestCSV  = "owid_energy_latest.csv"
	LatestJSON = "owid_energy_latest.json"
)

// Fetcher downloads the dataset and keeps timestamped and "latest" copies.
type Fetcher struct {
	URL         string
	DownloadDir string
	CacheDir    string

	client *http.Client
	now    func() time.Time
}

// FetchResult lists the files written by a fetch.
type FetchResult struct {
	CSVPath        string
	LatestCSVPath  string
	JSONPath       string
	LatestJSONPath string
	Bytes          int
}

func NewFetcher(url, downloadDir, cacheDir string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		URL:         url,
		DownloadDir: downloadDir,
		CacheDir:    cacheDir,
		client:      &http.Client{Timeout: timeout},
		now:         time.Now,
	}
}

// Fetch downloads the CSV, writes both formats and returns the parsed dataset.
func (f *Fetcher) Fetch(ctx context.Context) (Dataset, *FetchResult, error) {
	for _, dir := range []string{f.DownloadDir, f.CacheDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	log.Info().Str("url", f.URL).Msg("downloading dataset")
	raw, err := f.download(ctx)
	if err != nil {
		return nil, nil, err
	}

	stamp := f.now().Format("20060102_150405")
	res := &FetchResult{
		CSVPath:        filepath.Join(f.DownloadDir, fmt.Sprintf("owid_energy_%s.csv", stamp)),
		LatestCSVPath:  filepath.Join(f.DownloadDir, LatestCSV),
		JSONPath:       filepath.Join(f.DownloadDir, fmt.Sprintf("owid_energy_%s.json", stamp)),
		LatestJSONPath: filepath.Join(f.DownloadDir, LatestJSON),
		Bytes:          len(raw),
	}

	for _, p := range []string{res.CSVPath, res.LatestCSVPath} {
		if err := os.WriteFile(p, raw, 0o644); err != nil {
			return nil, nil, fmt.Errorf("failed to write %s: %w", p, err)
		}
	}

	data, err := ParseCSV(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, err
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode dataset: %w", err)
	}
	for _, p := range []string{res.JSONPath, res.LatestJSONPath} {
		if err := os.WriteFile(p, encoded, 0o644); err != nil {
			return nil, nil, fmt.Errorf("failed to write %s: %w", p, err)
		}
	}

	log.Info().Int("bytes", res.Bytes).Int("countries", len(data)).Msg("dataset cached")
	return data, res, nil
}

func (f *Fetcher) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to download dataset: unexpected status %s", resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset body: %w", err)
	}
	return b, nil
}
