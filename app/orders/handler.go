package orders

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ilumastore/go-store-backend/app/apperrors"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

// Register mounts the order routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/orders", h.HandleCreate)
	rg.GET("/orders/:id", h.HandleGet)
}

func (h *Handler) HandleCreate(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Validation("invalid order payload"))
		return
	}

	res, err := h.svc.Create(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) HandleGet(c *gin.Context) {
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

func writeError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.PublicMessage(err)})
}
