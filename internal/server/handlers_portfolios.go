package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-portfolio/internal/db"
	"github.com/jonathan/resume-portfolio/internal/schemas"
	"github.com/jonathan/resume-portfolio/internal/server/middleware"
	"github.com/jonathan/resume-portfolio/internal/types"
)

// CreatePortfolioRequest is the body for POST /portfolios.
type CreatePortfolioRequest struct {
	Title   string                  `json:"title"`
	Content *types.PortfolioContent `json:"content"`
}

// UpdatePortfolioRequest is the body for PUT /portfolios/{id}. Absent
// fields are left unchanged.
type UpdatePortfolioRequest struct {
	Title        *string             `json:"title,omitempty"`
	ProfilePhoto *string             `json:"profilePhoto,omitempty"`
	Hero         *types.Hero         `json:"hero,omitempty"`
	About        *types.About        `json:"about,omitempty"`
	Experience   *[]types.Experience `json:"experience,omitempty"`
	Projects     *[]types.Project    `json:"projects,omitempty"`
	Contact      *types.Contact      `json:"contact,omitempty"`
}

// PublishRequest is the body for POST /portfolios/{id}/publish. An empty
// slug asks the server to derive one from the portfolio title.
type PublishRequest struct {
	Slug string `json:"slug"`
}

// ownedPortfolio fetches a portfolio and enforces ownership. Missing and
// foreign portfolios both come back as *ErrPortfolioNotFound.
func (s *Server) ownedPortfolio(r *http.Request, id, userID string) (*db.Portfolio, error) {
	portfolio, err := s.store.GetPortfolio(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if portfolio == nil || portfolio.UserID != userID {
		return nil, &ErrPortfolioNotFound{ID: id}
	}
	return portfolio, nil
}

// handleCreatePortfolio saves a new portfolio for the authenticated user.
func (s *Server) handleCreatePortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Content == nil {
		s.errorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	req.Content.Normalize()
	if err := schemas.ValidateContent(req.Content); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	portfolio, err := s.store.CreatePortfolio(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, portfolio)
}

// handleListPortfolios lists the authenticated user's portfolios, most
// recently updated first.
func (s *Server) handleListPortfolios(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	portfolios, err := s.store.ListPortfolios(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, portfolios)
}

// handleGetPortfolio fetches one of the authenticated user's portfolios.
func (s *Server) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	portfolio, err := s.ownedPortfolio(r, r.PathValue("id"), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, portfolio)
}

// handleUpdatePortfolio applies a partial update to a portfolio. The
// merged content must still pass schema validation before anything is
// written.
func (s *Server) handleUpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	portfolio, err := s.ownedPortfolio(r, r.PathValue("id"), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req UpdatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title != nil && *req.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "title cannot be empty")
		return
	}

	merged := portfolio.Content()
	if req.ProfilePhoto != nil {
		merged.ProfilePhoto = *req.ProfilePhoto
	}
	if req.Hero != nil {
		merged.Hero = *req.Hero
	}
	if req.About != nil {
		merged.About = *req.About
	}
	if req.Experience != nil {
		merged.Experience = *req.Experience
	}
	if req.Projects != nil {
		merged.Projects = *req.Projects
	}
	if req.Contact != nil {
		merged.Contact = *req.Contact
	}
	merged.Normalize()
	if err := schemas.ValidateContent(merged); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	updated, err := s.store.UpdatePortfolio(r.Context(), portfolio.ID, db.PortfolioUpdate{
		Title:        req.Title,
		ProfilePhoto: req.ProfilePhoto,
		Hero:         req.Hero,
		About:        req.About,
		Experience:   req.Experience,
		Projects:     req.Projects,
		Contact:      req.Contact,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeletePortfolio removes a portfolio.
func (s *Server) handleDeletePortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	portfolio, err := s.ownedPortfolio(r, r.PathValue("id"), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.DeletePortfolio(r.Context(), portfolio.ID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Portfolio deleted"})
}

// handlePublishPortfolio makes a portfolio publicly visible under a slug.
func (s *Server) handlePublishPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	portfolio, err := s.ownedPortfolio(r, r.PathValue("id"), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req PublishRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	slug := req.Slug
	if slug == "" {
		if portfolio.Slug != "" {
			slug = portfolio.Slug
		} else {
			slug = db.GenerateSlug(portfolio.Title)
		}
	}

	published, err := s.store.PublishPortfolio(r.Context(), portfolio.ID, slug)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, published)
}

// handleUnpublishPortfolio takes a portfolio offline, keeping its slug.
func (s *Server) handleUnpublishPortfolio(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	portfolio, err := s.ownedPortfolio(r, r.PathValue("id"), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	unpublished, err := s.store.UnpublishPortfolio(r.Context(), portfolio.ID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, unpublished)
}

// handleGetPublishedPortfolio serves a published portfolio by slug. This
// is the only unauthenticated read.
func (s *Server) handleGetPublishedPortfolio(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	portfolio, err := s.store.GetPortfolioBySlug(r.Context(), slug)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if portfolio == nil {
		s.errorResponse(w, http.StatusNotFound, "portfolio not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, portfolio)
}
