// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ava-labs/burstcache/app"
	"github.com/ava-labs/burstcache/config"
	"github.com/ava-labs/burstcache/utils/logging"
	"github.com/ava-labs/burstcache/workload"
)

func main() {
	fs := config.BuildFlagSet()
	v, err := config.BuildViper(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Printf("couldn't configure flags: %s\n", err)
		os.Exit(1)
	}

	cfg, err := config.GetConfig(v)
	if err != nil {
		fmt.Printf("couldn't load config: %s\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Logging, nil)
	runner, err := workload.New(cfg, log)
	if err != nil {
		log.Fatal("couldn't build workload",
			zap.Error(err),
		)
		log.Stop()
		os.Exit(1)
	}

	exitCode := app.Run(log, runner)
	log.Stop()
	os.Exit(exitCode)
}
