package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/existflow/ironplan/internal/model"
)

// DatasetPath is where an ironplan server publishes its dataset
const DatasetPath = "/api/v1/dataset"

// remoteSource fetches the dataset published by another ironplan server
type remoteSource struct {
	baseURL    string
	httpClient *http.Client
}

func newRemoteSource(baseURL string) remoteSource {
	return remoteSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s remoteSource) Load(ctx context.Context) (model.Dataset, error) {
	var d model.Dataset

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+DatasetPath, nil)
	if err != nil {
		return d, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return d, fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return d, fmt.Errorf("dataset request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return d, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return d, nil
}
