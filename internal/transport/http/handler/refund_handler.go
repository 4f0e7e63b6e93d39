package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentease/internal/usecase/refund"
	"rentease/pkg/utils"
)

type RefundHandler struct {
	service *refund.Service
}

func NewRefundHandler(service *refund.Service) *RefundHandler {
	return &RefundHandler{service: service}
}

func (h *RefundHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/refunds", h.RequestOwn)
}

func (h *RefundHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	refunds := router.Group("/refunds")
	{
		refunds.POST("", h.Request)
		refunds.POST("/confirm", h.Confirm)
		refunds.GET("", h.List)
	}
}

// RequestOwn cancels one of the caller's own reservations with a refund.
func (h *RefundHandler) RequestOwn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req refund.RequestRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RequestOwn(c.Request.Context(), userID, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Refund processed successfully", result)
}

func (h *RefundHandler) Request(c *gin.Context) {
	var req refund.RequestRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Request(c.Request.Context(), &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Refund processed successfully", result)
}

func (h *RefundHandler) Confirm(c *gin.Context) {
	var req refund.ConfirmRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Confirm(c.Request.Context(), &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Refund confirmed", result)
}

func (h *RefundHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
