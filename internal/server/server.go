// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

// Package server hosts built charts over HTTP: a JSON API for renderers and
// an HTML dashboard for people.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tlg-eval/chartspec/internal/output"
	"github.com/tlg-eval/chartspec/internal/pipeline"
)

// Config holds server settings.
type Config struct {
	Addr            string
	Title           string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the settings used by "chartspec serve".
func DefaultConfig() Config {
	return Config{
		Addr:            "127.0.0.1:8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Server serves a fixed set of built charts. Charts are immutable once built,
// so handlers share them without locking.
type Server struct {
	cfg     Config
	router  *mux.Router
	results []pipeline.Result
	byName  map[string]int
}

// ChartSummary is one entry of GET /api/charts.
type ChartSummary struct {
	Name      string `json:"name"`
	Indicator string `json:"indicator"`
	Title     string `json:"title"`
}

// New creates a Server for results.
func New(results []pipeline.Result, cfg Config) *Server {
	s := &Server{
		cfg:     cfg,
		router:  mux.NewRouter(),
		results: results,
		byName:  make(map[string]int, len(results)),
	}
	for i, r := range results {
		s.byName[r.Name] = i
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(requestIDMiddleware, loggingMiddleware)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/api/charts", s.handleListCharts).Methods(http.MethodGet)
	s.router.HandleFunc("/api/charts/{name}", s.handleChartJSON).Methods(http.MethodGet)
	s.router.HandleFunc("/charts/{name}", s.handleChartHTML).Methods(http.MethodGet)
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)

	// The router's fallback handlers bypass Use, so wrap them explicitly.
	s.router.NotFoundHandler = errorHandler(http.StatusNotFound, "not found")
	s.router.MethodNotAllowedHandler = errorHandler(http.StatusMethodNotAllowed, "method not allowed")
}

func errorHandler(status int, message string) http.Handler {
	return requestIDMiddleware(loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		jsonError(w, status, message)
	})))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving charts", "addr", s.cfg.Addr, "charts", len(s.results))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	slog.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"charts": len(s.results),
	})
}

func (s *Server) handleListCharts(w http.ResponseWriter, _ *http.Request) {
	out := make([]ChartSummary, 0, len(s.results))
	for _, r := range s.results {
		out = append(out, ChartSummary{Name: r.Name, Indicator: r.Indicator, Title: r.Spec.Title})
	}
	jsonResponse(w, http.StatusOK, map[string]any{"charts": out})
}

func (s *Server) handleChartJSON(w http.ResponseWriter, r *http.Request) {
	res, ok := s.lookup(w, r)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, output.JSONCharts([]pipeline.Result{res})[0])
}

func (s *Server) handleChartHTML(w http.ResponseWriter, r *http.Request) {
	res, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.writeHTML(w, r, []pipeline.Result{res}, res.Spec.Title)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeHTML(w, r, s.results, s.cfg.Title)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (pipeline.Result, bool) {
	name := mux.Vars(r)["name"]
	i, ok := s.byName[name]
	if !ok {
		jsonError(w, http.StatusNotFound, fmt.Sprintf("chart %q not found", name))
		return pipeline.Result{}, false
	}
	return s.results[i], true
}

func (s *Server) writeHTML(w http.ResponseWriter, r *http.Request, results []pipeline.Result, title string) {
	f := &output.HTMLFormatter{Title: title}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := f.Format(results, w); err != nil {
		slog.Error("render html", "error", err, "request_id", RequestID(r.Context()))
	}
}

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}
