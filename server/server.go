// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package server exposes the classification pipeline over HTTP. It is thin
// plumbing: request decoding, validation errors as structured failures, and
// a liveness probe. All classification work happens in the analyze package.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/intentify/analyze"
	"github.com/poiesic/intentify/core"
)

// ServiceName identifies this service in health responses.
const ServiceName = "intentify"

// Server wraps the HTTP endpoints around an Analyzer.
type Server struct {
	mux      *http.ServeMux
	analyzer *analyze.Analyzer
	logger   *slog.Logger
}

// New creates a Server for the given analyzer.
func New(analyzer *analyze.Analyzer, logger *slog.Logger) (*Server, error) {
	if analyzer == nil {
		return nil, ErrAnalyzerRequired
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		mux:      http.NewServeMux(),
		analyzer: analyzer,
		logger:   logger,
	}

	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/v1/intent/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/v1/intent/batch", s.handleBatch)

	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start runs the HTTP server on addr. It blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.logger.Info("starting intentify server", "addr", addr)
	return http.ListenAndServe(addr, s.mux)
}

type analyzeRequest struct {
	Query string `json:"query"`
}

type batchRequest struct {
	Queries []string `json:"queries"`
}

type batchResponse struct {
	Results []*core.AnalysisResult `json:"results"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeFailure(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET")
		return
	}
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Service:   ServiceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeFailure(w, http.StatusMethodNotAllowed, "method_not_allowed", "use POST")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeFailure(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := s.analyzer.Analyze(req.Query)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeFailure(w, http.StatusMethodNotAllowed, "method_not_allowed", "use POST")
		return
	}

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeFailure(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	results, err := s.analyzer.AnalyzeBatch(r.Context(), req.Queries)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

// writeAnalysisError maps pipeline errors to the structured failure shape.
// Validation problems are the caller's fault; anything else is reported as
// an opaque internal failure with the cause only logged.
func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	if errors.Is(err, core.ErrInvalidQuery) {
		s.writeFailure(w, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}
	s.logger.Error("analysis failed", "err", err)
	s.writeFailure(w, http.StatusInternalServerError, "internal_error", "analysis failed")
}

func (s *Server) writeFailure(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, failureResponse{
		Success: false,
		Error:   code,
		Message: message,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to write response", "err", err)
	}
}
