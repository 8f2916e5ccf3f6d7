// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package server exposes the résumé and a read-only command surface over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"metrix/profile"
	"metrix/terminal"
	metrixlog "metrix/utils/log"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
)

const shutdownTimeout = 5 * time.Second

// Options wires the server to the profile record and command set.
type Options struct {
	Addr    string
	Repo    *profile.Repository
	Builder terminal.Builder
	Dev     bool
	Logger  *metrixlog.Logger
}

// Server serves one profile; every request reads the current record.
type Server struct {
	addr    string
	repo    *profile.Repository
	builder terminal.Builder
	router  *gin.Engine
	handler http.Handler
	log     *metrixlog.Logger
}

func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = metrixlog.Nop()
	}
	if !opts.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		addr:    opts.Addr,
		repo:    opts.Repo,
		builder: opts.Builder,
		router:  gin.New(),
		log:     opts.Logger.With("component", "server"),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(requestLogger(s.log))
	s.router.Use(securityHeaders())

	s.router.GET("/", s.page)
	s.router.GET("/healthz", s.health)
	s.router.GET("/export/:format", s.export)
	s.router.POST("/api/command", s.command)

	s.handler = gzhttp.GzipHandler(s.router)
	return s
}

// Handler is the gzip-wrapped router.
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve on %s: %w", s.addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Infow("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
