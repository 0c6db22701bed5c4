// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey     = "config-file"
	LogLevelKey       = "log-level"
	LogFormatKey      = "log-format"
	MetricsAddressKey = "metrics-address"

	HotCapacityKey      = "hot-capacity"
	DelegateCapacityKey = "delegate-capacity"
	RecentTTLKey        = "recent-ttl"
	PayloadTTLKey       = "payload-ttl"
	JanitorIntervalKey  = "janitor-interval"

	QueueKindKey     = "queue-kind"
	QueueCapacityKey = "queue-capacity"
	DebounceDelayKey = "debounce-delay"
	EventDelayKey    = "event-delay"

	ProducersKey         = "producers"
	EventsPerProducerKey = "events-per-producer"
	DistinctKeysKey      = "distinct-keys"
	DistinctPayloadsKey  = "distinct-payloads"
	BurstSizeKey         = "burst-size"
	BurstPauseKey        = "burst-pause"
	IdleTimeoutKey       = "idle-timeout"
)
