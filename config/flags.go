// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "burstcache"

	DelayQueue  = "delay"
	UniqueQueue = "unique"
)

// BuildFlagSet returns the complete set of flags for burstcache.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("burstcache", pflag.ContinueOnError)

	fs.String(ConfigFileKey, "", "Specifies a config file")

	// Logging
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "plain", "The structure of log lines. Should be one of {plain, json}")

	// Metrics
	fs.String(MetricsAddressKey, "", "Address to serve prometheus metrics on. Metrics aren't served if empty")

	// Caches
	fs.Int(HotCapacityKey, 1024, "Number of entries the in-memory hot store holds before overflowing")
	fs.Int(DelegateCapacityKey, 4096, "Number of entries the overflow cache holds before evicting the least recently used. 0 means unbounded")
	fs.Duration(RecentTTLKey, 2*time.Second, "How long a flushed key is remembered as recent")
	fs.Duration(PayloadTTLKey, 10*time.Second, "How long an event keeps a reference to its interned payload")
	fs.Duration(JanitorIntervalKey, time.Second, "Frequency of the sweep removing expired recent keys. 0 disables the sweep")

	// Batching
	fs.String(QueueKindKey, DelayQueue, fmt.Sprintf("Queue buffering events. Should be one of {%s, %s}", DelayQueue, UniqueQueue))
	fs.Int(QueueCapacityKey, 512, "Maximum number of distinct events waiting to be flushed. 0 means unbounded")
	fs.Duration(DebounceDelayKey, 50*time.Millisecond, "Quiet period between accepting an event and flushing the batch containing it")
	fs.Duration(EventDelayKey, 20*time.Millisecond, "Delay before an event buffered by the delay queue becomes ready")

	// Workload
	fs.Int(ProducersKey, 4, "Number of concurrent event producers")
	fs.Int(EventsPerProducerKey, 2000, "Number of events emitted by each producer")
	fs.Int(DistinctKeysKey, 256, "Number of distinct event keys")
	fs.Int(DistinctPayloadsKey, 16, "Number of distinct event payloads")
	fs.Int(BurstSizeKey, 100, "Number of events a producer emits between pauses")
	fs.Duration(BurstPauseKey, 5*time.Millisecond, "Pause between bursts")
	fs.Duration(IdleTimeoutKey, 10*time.Second, "Maximum time to wait for buffered events to be flushed")

	return fs
}

// BuildViper returns the viper environment from parsing [args] with [fs],
// the environment and, if specified, the config file.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(envPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file: %w", err)
		}
	}
	return v, nil
}
