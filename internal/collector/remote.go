package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"NickelSentinel/internal/model"
)

// remoteTimeout bounds every remote request. One attempt only: the gateway
// fails fast toward the synthetic fallback instead of retrying.
const remoteTimeout = 3 * time.Second

// RemoteFetcher implements Fetcher against the prediction backend REST API.
type RemoteFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRemoteFetcher creates a fetcher for the given base endpoint, with
// optional proxy support.
func NewRemoteFetcher(baseURL, apiKey, proxyURL string) *RemoteFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RemoteFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   remoteTimeout,
			Transport: transport,
		},
	}
}

func (f *RemoteFetcher) Name() string { return "remote" }

func (f *RemoteFetcher) FetchMetrics(ctx context.Context) (*model.Metrics, error) {
	var metrics model.Metrics
	if err := f.getJSON(ctx, "/metrics", &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

func (f *RemoteFetcher) FetchHistorical(ctx context.Context) (model.Series, error) {
	var series model.Series
	if err := f.getJSON(ctx, "/historical", &series); err != nil {
		return nil, err
	}
	return series, nil
}

func (f *RemoteFetcher) FetchPredictions(ctx context.Context) (model.Series, error) {
	var series model.Series
	if err := f.getJSON(ctx, "/predictions", &series); err != nil {
		return nil, err
	}
	return series, nil
}

func (f *RemoteFetcher) FetchPriceChanges(ctx context.Context) ([]model.ChangeRecord, error) {
	var changes []model.ChangeRecord
	if err := f.getJSON(ctx, "/price-changes", &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

func (f *RemoteFetcher) FetchCommodities(ctx context.Context) ([]model.CommodityRecord, error) {
	var records []model.CommodityRecord
	if err := f.getJSON(ctx, "/commodities", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (f *RemoteFetcher) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", f.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("fetch %s: status %d, body: %s", path, resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
