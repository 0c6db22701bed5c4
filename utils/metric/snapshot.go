// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	dto "github.com/prometheus/client_model/go"
)

// Snapshot gathers the current value of every counter and gauge in [g], and
// the sample count of every histogram under "<name>_count".
//
// Labelled series are keyed as name{label="value",...} with labels sorted by
// name.
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64)
	for _, family := range families {
		name := family.GetName()
		for _, m := range family.GetMetric() {
			key := name + formatLabels(m.GetLabel())
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				values[key] = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				values[key] = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				values[name+"_count"+formatLabels(m.GetLabel())] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return values, nil
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(labels))
	for _, label := range labels {
		pairs = append(pairs, label.GetName()+`="`+label.GetValue()+`"`)
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ",") + "}"
}
