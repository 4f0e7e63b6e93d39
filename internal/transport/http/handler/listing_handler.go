package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rentease/internal/usecase/listing"
	"rentease/pkg/utils"
)

type ListingHandler struct {
	service *listing.Service
}

func NewListingHandler(service *listing.Service) *ListingHandler {
	return &ListingHandler{service: service}
}

func (h *ListingHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	listings := router.Group("/listings")
	{
		listings.GET("", h.List)
		listings.GET("/:id", h.Get)
	}
}

func (h *ListingHandler) RegisterRoutes(router *gin.RouterGroup) {
	listings := router.Group("/listings")
	{
		listings.GET("/mine", h.ListMine)
	}
}

func (h *ListingHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ListingHandler) Get(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	result, err := h.service.Get(c.Request.Context(), listingID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ListingHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
