package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/leadscout/internal/pipeline"
)

// ResearchRequest represents the request body for /research
type ResearchRequest struct {
	Query string `json:"query"`
}

// handleResearch runs one research query to completion and returns the
// result envelope. Research failures are reported inside the envelope with
// HTTP 200; non-2xx statuses are reserved for malformed requests and
// transport problems.
func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.agent.Run(r.Context(), req.Query)
	if err != nil {
		// Only context cancellation reaches here.
		s.errorResponse(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleResearchStream runs a research query while streaming step progress
// via SSE, ending with a result event carrying the envelope.
func (s *Server) handleResearchStream(w http.ResponseWriter, r *http.Request) {
	var req ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := s.agent.RunStream(r.Context(), req.Query, func(ev pipeline.ProgressEvent) {
		if err := sse.WriteEvent("step", ev); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	})
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	sse.WriteResult(result)
}
