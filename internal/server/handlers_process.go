package server

import (
	"log"
	"net/http"

	"github.com/jonathan/resume-portfolio/internal/schemas"
	"github.com/jonathan/resume-portfolio/internal/server/middleware"
	"github.com/jonathan/resume-portfolio/internal/types"
)

// handleProcess runs the resume pipeline and streams status over SSE.
// Concurrent requests for the same job_id are deduplicated: only the
// first request executes the pipeline and observes per-step statuses,
// later ones block and receive the shared final event.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, err := parseProcessRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sse.WriteStatus(req.JobID, types.StatusUploaded)

	result, err, shared := s.processGroup.Do(req.JobID, func() (interface{}, error) {
		return s.runner.Run(r.Context(), req.Resume, func(status types.ResumeStatus) {
			sse.WriteStatus(req.JobID, status)
		})
	})
	if err != nil {
		log.Printf("[process] job %s failed: %v", req.JobID, err)
		if shared {
			// A deduplicated caller never saw the step statuses, so
			// surface the terminal one before the error.
			sse.WriteStatus(req.JobID, types.StatusFailed)
		}
		sse.WriteError("We couldn't read your resume. Please upload a valid PDF file.")
		return
	}

	// Copy before attaching the photo; deduplicated callers share the
	// result value.
	contentCopy := *result.(*types.PortfolioContent)
	content := &contentCopy
	if req.Photo != "" {
		content.ProfilePhoto = req.Photo
	}

	if err := schemas.ValidateContent(content); err != nil {
		log.Printf("[process] job %s produced invalid content: %v", req.JobID, err)
		sse.WriteError("Generated content was invalid. Please try again.")
		return
	}

	portfolioID := ""
	if req.Save {
		portfolio, err := s.store.CreatePortfolio(r.Context(), userID, req.Title, content)
		if err != nil {
			log.Printf("[process] job %s save failed: %v", req.JobID, err)
			sse.WriteError("Processing succeeded but saving the portfolio failed.")
			return
		}
		portfolioID = portfolio.ID
	}

	sse.WriteComplete(req.JobID, portfolioID, content)
}
