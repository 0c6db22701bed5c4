// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/burstcache/utils/logging"
)

func buildConfig(t *testing.T, args ...string) (Config, error) {
	v, err := BuildViper(BuildFlagSet(), args)
	require.NoError(t, err)
	return GetConfig(v)
}

func TestDefaults(t *testing.T) {
	require := require.New(t)

	config, err := buildConfig(t)
	require.NoError(err)
	require.Equal(logging.Info, config.Logging.LogLevel)
	require.Equal(logging.Plain, config.Logging.Format)
	require.Equal(DelayQueue, config.QueueKind)
	require.Equal(1024, config.HotCapacity)
	require.Equal(50*time.Millisecond, config.DebounceDelay)
	require.Empty(config.MetricsAddress)
	require.Equal(4, config.Workload.Producers)
}

func TestFlags(t *testing.T) {
	require := require.New(t)

	config, err := buildConfig(t,
		"--log-level=debug",
		"--log-format=json",
		"--queue-kind=unique",
		"--hot-capacity=10",
		"--debounce-delay=1s",
		"--producers=2",
	)
	require.NoError(err)
	require.Equal(logging.Debug, config.Logging.LogLevel)
	require.Equal(logging.JSON, config.Logging.Format)
	require.Equal(UniqueQueue, config.QueueKind)
	require.Equal(10, config.HotCapacity)
	require.Equal(time.Second, config.DebounceDelay)
	require.Equal(2, config.Workload.Producers)
}

func TestConfigFile(t *testing.T) {
	require := require.New(t)

	configFilePath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(os.WriteFile(configFilePath, []byte(`{
		"hot-capacity": 7,
		"queue-capacity": 0,
		"recent-ttl": "1m"
	}`), 0o600))

	config, err := buildConfig(t,
		"--config-file="+configFilePath,
		"--queue-kind=unique",
	)
	require.NoError(err)
	require.Equal(7, config.HotCapacity)
	require.Zero(config.QueueCapacity)
	require.Equal(time.Minute, config.RecentTTL)
	require.Equal(UniqueQueue, config.QueueKind)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := BuildViper(BuildFlagSet(), []string{
		"--config-file=" + filepath.Join(t.TempDir(), "missing.json"),
	})
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("BURSTCACHE_HOT_CAPACITY", "3")

	config, err := buildConfig(t)
	require.NoError(t, err)
	require.Equal(t, 3, config.HotCapacity)
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			name:        "queue kind",
			args:        []string{"--queue-kind=stack"},
			expectedErr: errInvalidQueueKind,
		},
		{
			name:        "hot capacity",
			args:        []string{"--hot-capacity=0"},
			expectedErr: errNotPositive,
		},
		{
			name:        "delegate capacity",
			args:        []string{"--delegate-capacity=-1"},
			expectedErr: errNegative,
		},
		{
			name:        "ttl",
			args:        []string{"--recent-ttl=0s"},
			expectedErr: errNotPositive,
		},
		{
			name:        "debounce delay",
			args:        []string{"--debounce-delay=-1s"},
			expectedErr: errNegative,
		},
		{
			name:        "producers",
			args:        []string{"--producers=0"},
			expectedErr: errNotPositive,
		},
		{
			name:        "burst pause",
			args:        []string{"--burst-pause=-1ms"},
			expectedErr: errNegative,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := buildConfig(t, test.args...)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := buildConfig(t, "--log-level=loud")
	require.Error(t, err) //nolint:forbidigo // logging returns an untyped parse error
}
