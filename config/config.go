// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/ava-labs/burstcache/utils/logging"
)

var (
	errInvalidQueueKind = errors.New("invalid queue kind")
	errNotPositive      = errors.New("must be positive")
	errNegative         = errors.New("must not be negative")
)

type Config struct {
	Logging        logging.Config `json:"logging"`
	MetricsAddress string         `json:"metricsAddress"`

	HotCapacity      int           `json:"hotCapacity"`
	DelegateCapacity int           `json:"delegateCapacity"`
	RecentTTL        time.Duration `json:"recentTTL"`
	PayloadTTL       time.Duration `json:"payloadTTL"`
	JanitorInterval  time.Duration `json:"janitorInterval"`

	QueueKind     string        `json:"queueKind"`
	QueueCapacity int           `json:"queueCapacity"`
	DebounceDelay time.Duration `json:"debounceDelay"`
	EventDelay    time.Duration `json:"eventDelay"`

	Workload Workload `json:"workload"`
}

// Workload shapes the synthetic events generated by the demo.
type Workload struct {
	Producers         int           `json:"producers"`
	EventsPerProducer int           `json:"eventsPerProducer"`
	DistinctKeys      int           `json:"distinctKeys"`
	DistinctPayloads  int           `json:"distinctPayloads"`
	BurstSize         int           `json:"burstSize"`
	BurstPause        time.Duration `json:"burstPause"`
	IdleTimeout       time.Duration `json:"idleTimeout"`
}

// GetConfig reads and validates the config held by [v].
func GetConfig(v *viper.Viper) (Config, error) {
	level, err := logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, err
	}
	format, err := logging.ToFormat(v.GetString(LogFormatKey))
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Logging: logging.Config{
			LogLevel: level,
			Format:   format,
			Prefix:   "burstcache",
		},
		MetricsAddress: v.GetString(MetricsAddressKey),

		HotCapacity:      v.GetInt(HotCapacityKey),
		DelegateCapacity: v.GetInt(DelegateCapacityKey),
		RecentTTL:        v.GetDuration(RecentTTLKey),
		PayloadTTL:       v.GetDuration(PayloadTTLKey),
		JanitorInterval:  v.GetDuration(JanitorIntervalKey),

		QueueKind:     v.GetString(QueueKindKey),
		QueueCapacity: v.GetInt(QueueCapacityKey),
		DebounceDelay: v.GetDuration(DebounceDelayKey),
		EventDelay:    v.GetDuration(EventDelayKey),

		Workload: Workload{
			Producers:         v.GetInt(ProducersKey),
			EventsPerProducer: v.GetInt(EventsPerProducerKey),
			DistinctKeys:      v.GetInt(DistinctKeysKey),
			DistinctPayloads:  v.GetInt(DistinctPayloadsKey),
			BurstSize:         v.GetInt(BurstSizeKey),
			BurstPause:        v.GetDuration(BurstPauseKey),
			IdleTimeout:       v.GetDuration(IdleTimeoutKey),
		},
	}
	return config, config.Verify()
}

// Verify returns an error describing the first invalid field.
func (c Config) Verify() error {
	switch {
	case c.QueueKind != DelayQueue && c.QueueKind != UniqueQueue:
		return fmt.Errorf("%w: %q", errInvalidQueueKind, c.QueueKind)
	case c.HotCapacity <= 0:
		return fmt.Errorf("%s %w", HotCapacityKey, errNotPositive)
	case c.DelegateCapacity < 0:
		return fmt.Errorf("%s %w", DelegateCapacityKey, errNegative)
	case c.QueueCapacity < 0:
		return fmt.Errorf("%s %w", QueueCapacityKey, errNegative)
	case c.RecentTTL <= 0:
		return fmt.Errorf("%s %w", RecentTTLKey, errNotPositive)
	case c.PayloadTTL <= 0:
		return fmt.Errorf("%s %w", PayloadTTLKey, errNotPositive)
	case c.JanitorInterval < 0:
		return fmt.Errorf("%s %w", JanitorIntervalKey, errNegative)
	case c.DebounceDelay < 0:
		return fmt.Errorf("%s %w", DebounceDelayKey, errNegative)
	case c.EventDelay < 0:
		return fmt.Errorf("%s %w", EventDelayKey, errNegative)
	}
	return c.Workload.Verify()
}

func (w Workload) Verify() error {
	switch {
	case w.Producers <= 0:
		return fmt.Errorf("%s %w", ProducersKey, errNotPositive)
	case w.EventsPerProducer < 0:
		return fmt.Errorf("%s %w", EventsPerProducerKey, errNegative)
	case w.DistinctKeys <= 0:
		return fmt.Errorf("%s %w", DistinctKeysKey, errNotPositive)
	case w.DistinctPayloads <= 0:
		return fmt.Errorf("%s %w", DistinctPayloadsKey, errNotPositive)
	case w.BurstSize <= 0:
		return fmt.Errorf("%s %w", BurstSizeKey, errNotPositive)
	case w.BurstPause < 0:
		return fmt.Errorf("%s %w", BurstPauseKey, errNegative)
	case w.IdleTimeout <= 0:
		return fmt.Errorf("%s %w", IdleTimeoutKey, errNotPositive)
	default:
		return nil
	}
}
