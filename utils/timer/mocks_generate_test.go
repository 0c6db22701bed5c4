// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timer

//go:generate go run github.com/golang/mock/mockgen -package=timermock -destination=timermock/scheduler.go -mock_names=Scheduler=Scheduler,Future=Future . Scheduler,Future
