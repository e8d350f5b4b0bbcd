package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ilumastore/go-store-backend/app/apperrors"
	"github.com/ilumastore/go-store-backend/models"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

// Handler serves the read endpoints for one product line.
type Handler[T models.CatalogEntry] struct {
	svc *Service[T]
}

func NewHandler[T models.CatalogEntry](svc *Service[T]) *Handler[T] {
	return &Handler[T]{
		svc: svc,
	}
}

// Register mounts the line's routes under the given path segment.
func (h *Handler[T]) Register(rg *gin.RouterGroup, line string) {
	rg.GET("/"+line, h.HandleList)
	rg.GET("/"+line+"/:id", h.HandleGet)
}

func (h *Handler[T]) HandleList(c *gin.Context) {
	skip, limit, err := parsePagination(c)
	if err != nil {
		writeError(c, err)
		return
	}

	res, err := h.svc.GetCollection(skip, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler[T]) HandleGet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		writeError(c, apperrors.Validation("id must be a positive integer"))
		return
	}

	res, err := h.svc.GetSingle(uint(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func parsePagination(c *gin.Context) (int, int, error) {
	skip := 0
	limit := defaultLimit

	if s := c.Query("skip"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return 0, 0, apperrors.Validation("skip must be a non-negative integer")
		}
		skip = v
	}

	if l := c.Query("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 1 {
			return 0, 0, apperrors.Validation("limit must be a positive integer")
		}
		if v > maxLimit {
			v = maxLimit
		}
		limit = v
	}

	return skip, limit, nil
}

func writeError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.PublicMessage(err)})
}
