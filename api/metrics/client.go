// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	dto "github.com/prometheus/client_model/go"

	"github.com/ava-labs/burstcache/utils/metric"
)

var _ prometheus.Gatherer = scraped(nil)

// Client scrapes the metrics endpoint of a running burstcache instance.
type Client struct {
	uri  string
	http *http.Client
}

// NewClient returns a client for the instance served at [uri].
func NewClient(uri string) *Client {
	return &Client{
		uri:  uri + Endpoint,
		http: http.DefaultClient,
	}
}

// GetMetrics returns every metric family exposed by the instance, keyed by
// family name.
func (c *Client) GetMetrics(ctx context.Context) (map[string]*dto.MetricFamily, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	//nolint:bodyclose // body is closed via cleanlyCloseBody
	resp, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to issue request: %w", err)
	}
	defer cleanlyCloseBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received status code: %d", resp.StatusCode)
	}

	var parser expfmt.TextParser
	return parser.TextToMetricFamilies(resp.Body)
}

// Snapshot scrapes the instance and flattens the result the way
// metric.Snapshot flattens a local registry.
func (c *Client) Snapshot(ctx context.Context) (map[string]float64, error) {
	families, err := c.GetMetrics(ctx)
	if err != nil {
		return nil, err
	}

	gathered := make(scraped, 0, len(families))
	for _, family := range families {
		gathered = append(gathered, family)
	}
	sort.Slice(gathered, func(i, j int) bool {
		return gathered[i].GetName() < gathered[j].GetName()
	})
	return metric.Snapshot(gathered)
}

// scraped replays already gathered metric families.
type scraped []*dto.MetricFamily

func (s scraped) Gather() ([]*dto.MetricFamily, error) {
	return s, nil
}

func cleanlyCloseBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
