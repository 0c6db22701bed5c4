// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/burstcache/utils/logging"
)

const (
	Endpoint = "/ext/metrics"

	readHeaderTimeout     = 10 * time.Second
	serverShutdownTimeout = 10 * time.Second
)

// Server serves prometheus metrics over HTTP.
type Server struct {
	log    logging.Logger
	router *mux.Router
	srv    *http.Server
}

// NewServer returns a server exposing [registry] on Endpoint.
func NewServer(log logging.Logger, registry *prometheus.Registry) *Server {
	router := mux.NewRouter()
	router.Handle(Endpoint, NewHandler(registry, registry)).Methods(http.MethodGet)
	return &Server{
		log:    log,
		router: router,
		srv: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Handler returns the router of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Dispatch listens on [address] and serves until Shutdown is called.
func (s *Server) Dispatch(address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve serves requests accepted by [listener] until Shutdown is called.
func (s *Server) Serve(listener net.Listener) error {
	s.log.Info("metrics server listening",
		zap.Stringer("address", listener.Addr()),
		zap.String("endpoint", Endpoint),
	)
	err := s.srv.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting for in-flight requests to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
