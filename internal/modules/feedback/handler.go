package feedback

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/wallmod/core/internal/config"
	"github.com/wallmod/core/internal/pkg/response"
)

const invalidParametersMessage = "invalid parameters"

type Handler struct {
	svc  *Service
	mode config.FeedbackMode
}

func NewHandler(svc *Service, mode config.FeedbackMode) *Handler {
	return &Handler{svc: svc, mode: mode}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/feedback", authMW, h.submit)
}

// POST /feedback — shape depends on the deployment's feedback mode.
func (h *Handler) submit(c *gin.Context) {
	if h.mode == config.FeedbackModeReference {
		h.submitReference(c)
		return
	}
	h.submitStandalone(c)
}

func (h *Handler) submitStandalone(c *gin.Context) {
	var dto standaloneDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, invalidParametersMessage)
		return
	}

	stored, err := h.svc.Submit(c.Request.Context(), dto.toRequest())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, stored)
}

func (h *Handler) submitReference(c *gin.Context) {
	var dto referenceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, invalidParametersMessage)
		return
	}

	merged, err := h.svc.Attach(c.Request.Context(), dto.ResponseID, *dto.Vote, dto.Reason)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			response.NotFoundMsg(c, notFound.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, merged)
}
