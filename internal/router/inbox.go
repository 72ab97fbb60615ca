package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wisecache/wisecache/internal/auth"
	"github.com/wisecache/wisecache/internal/dto"
	"github.com/wisecache/wisecache/internal/mail"
	"github.com/wisecache/wisecache/internal/pipeline"
)

// InboxFetcher lists the monitored inbox's recent messages.
type InboxFetcher interface {
	ListInbox(ctx context.Context) ([]mail.Message, error)
}

type InboxRouter struct {
	g       *echo.Group
	fetcher InboxFetcher
	batch   *pipeline.BatchProcessor
}

func NewInboxRouter(g *echo.Group, fetcher InboxFetcher, batch *pipeline.BatchProcessor) *InboxRouter {
	return &InboxRouter{
		g:       g,
		fetcher: fetcher,
		batch:   batch,
	}
}

func (r *InboxRouter) Bind() {
	r.g.POST("/inbox/process", r.processHandler)
}

// processHandler runs the email batch for the caller. Per-message failures
// land inside the report; only a failure to reach the inbox at all fails
// the request, with the stage that broke.
func (r *InboxRouter) processHandler(c echo.Context) error {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated principal")
	}

	messages, err := r.fetcher.ListInbox(c.Request().Context())
	if err != nil {
		slog.Error("Inbox listing failed", "error", err)

		status := http.StatusInternalServerError
		errorMsg := "failed to read inbox"

		var stageErr *mail.StageError
		if errors.As(err, &stageErr) {
			switch stageErr.Stage {
			case mail.StageAuthentication:
				status = http.StatusUnauthorized
				errorMsg = "failed to authenticate with mail provider"
			case mail.StageListing:
				errorMsg = "failed to list inbox messages"
			}
		}

		return c.JSON(status, map[string]any{
			"success": false,
			"error":   errorMsg,
			"details": err.Error(),
		})
	}

	report := r.batch.ProcessBatch(c.Request().Context(), principal.ID, messages)

	return c.JSON(http.StatusOK, dto.NewBatchResult(report))
}
