package router

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/wisecache/wisecache/internal/apperr"
	"github.com/wisecache/wisecache/internal/auth"
	"github.com/wisecache/wisecache/internal/domain"
	"github.com/wisecache/wisecache/internal/dto"
	"github.com/wisecache/wisecache/internal/storage"
	"github.com/wisecache/wisecache/pkg/pagination"
)

type RecordsRouter struct {
	g     *echo.Group
	store storage.Store
}

func NewRecordsRouter(g *echo.Group, store storage.Store) *RecordsRouter {
	return &RecordsRouter{
		g:     g,
		store: store,
	}
}

func (r *RecordsRouter) Bind() {
	r.g.GET("/records", r.listHandler)
	r.g.DELETE("/records/:id", r.deleteHandler)
}

func (r *RecordsRouter) listHandler(c echo.Context) error {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated principal")
	}

	var page pagination.OffsetRequest
	if err := c.Bind(&page); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	page.Normalize()

	records, err := r.store.ListByOwner(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}

	if category := c.QueryParam("category"); category != "" {
		filtered := records[:0]
		for _, record := range records {
			if record.Category.Normalized() == domain.Category(category).Normalized() {
				filtered = append(filtered, record)
			}
		}
		records = filtered
	}

	return c.JSON(http.StatusOK, pagination.Page(dto.NewRecordList(records), page))
}

// deleteHandler removes one of the caller's records. Deletion is terminal;
// there is no soft delete.
func (r *RecordsRouter) deleteHandler(c echo.Context) error {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated principal")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidation("record id must be a valid uuid")
	}

	if err := r.store.DeleteByID(c.Request().Context(), id, principal.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NewNotFound("record not found")
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
