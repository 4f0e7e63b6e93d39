package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentease/internal/usecase/admin"
	"rentease/pkg/utils"
)

type AdminHandler struct {
	service *admin.Service
}

func NewAdminHandler(service *admin.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/overview", h.Overview)
	router.GET("/delivery-board", h.DeliveryBoard)
}

func (h *AdminHandler) Overview(c *gin.Context) {
	result, err := h.service.Overview(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AdminHandler) DeliveryBoard(c *gin.Context) {
	result, err := h.service.DeliveryBoard(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
