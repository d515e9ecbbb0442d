package review

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wallmod/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/review", authMW, h.review)
}

// GET /review?wallId=N&commentId=N
func (h *Handler) review(c *gin.Context) {
	wallID, err1 := strconv.Atoi(c.Query("wallId"))
	commentID, err2 := strconv.Atoi(c.Query("commentId"))
	if err1 != nil || err2 != nil {
		response.BadRequest(c, "wallId & commentId is required")
		return
	}

	result, err := h.svc.Review(c.Request.Context(), wallID, commentID)
	if err != nil {
		if errors.Is(err, ErrWallNotFound) || errors.Is(err, ErrCommentNotFound) {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, result)
}
