package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wisecache/wisecache/internal/apperr"
	"github.com/wisecache/wisecache/internal/auth"
	"github.com/wisecache/wisecache/internal/domain"
	"github.com/wisecache/wisecache/internal/dto"
	"github.com/wisecache/wisecache/internal/pipeline"
	"github.com/wisecache/wisecache/internal/storage"
)

type AnalyzeRouter struct {
	g        *echo.Group
	pipeline *pipeline.Pipeline
	store    storage.Store
}

func NewAnalyzeRouter(g *echo.Group, p *pipeline.Pipeline, store storage.Store) *AnalyzeRouter {
	return &AnalyzeRouter{
		g:        g,
		pipeline: p,
		store:    store,
	}
}

func (r *AnalyzeRouter) Bind() {
	r.g.POST("/analyze", r.analyzeHandler)
}

type analyzeRequest struct {
	URL string `json:"url"`
}

func (r *AnalyzeRouter) analyzeHandler(c echo.Context) error {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated principal")
	}

	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.URL == "" {
		return apperr.NewValidation("url is required")
	}

	// The link ceiling is a caller-side concern; the pipeline itself knows
	// nothing about guests.
	if principal.IsGuest {
		count, err := r.store.CountByOwner(c.Request().Context(), principal.ID)
		if err != nil {
			return err
		}
		if count >= domain.GuestLinkLimit {
			return apperr.NewForbidden("guest link limit reached")
		}
	}

	outcome := r.pipeline.Process(c.Request().Context(), principal.ID, req.URL)

	return c.JSON(http.StatusOK, dto.NewAnalysisResult(outcome))
}
