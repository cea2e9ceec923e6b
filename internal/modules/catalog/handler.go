package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"venuehub/internal/domain"
	"venuehub/internal/pkg/response"
	"venuehub/internal/pkg/validator"
	"venuehub/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes wires the browse endpoints that need no token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/spaces", h.ListSpaces)
	rg.GET("/spaces/:id", h.GetSpace)
}

// RegisterRoutes wires the host-facing endpoints (JWT required).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/spaces", h.CreateSpace)
	rg.PATCH("/spaces/:id", h.UpdateSpace)
	rg.GET("/spaces/my", h.GetMySpaces)
}

func (h *Handler) CreateSpace(c *gin.Context) {
	var req CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	user := &domain.User{
		ID:   c.GetInt64("user_id"),
		Role: domain.UserRole(c.GetString("role")),
	}

	space, err := h.service.CreateSpace(c.Request.Context(), user, req)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only hosts can create spaces")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create space")
		return
	}

	response.Success(c, http.StatusCreated, space)
}

func (h *Handler) UpdateSpace(c *gin.Context) {
	spaceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid space ID")
		return
	}

	var req UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	space, err := h.service.UpdateSpace(c.Request.Context(), c.GetInt64("user_id"), spaceID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this space")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Space not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update space")
		}
		return
	}

	response.Success(c, http.StatusOK, space)
}

func (h *Handler) GetSpace(c *gin.Context) {
	spaceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid space ID")
		return
	}

	space, err := h.service.GetSpace(c.Request.Context(), spaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Space not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load space")
		return
	}

	response.Success(c, http.StatusOK, space)
}

func (h *Handler) ListSpaces(c *gin.Context) {
	filters := repository.SpaceFilters{
		City: c.Query("city"),
	}
	if v := c.Query("min_price"); v != "" {
		filters.MinPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("max_price"); v != "" {
		filters.MaxPrice, _ = strconv.ParseFloat(v, 64)
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	filters.Limit = limit
	filters.Offset = (page - 1) * limit

	spaces, total, err := h.service.ListSpaces(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list spaces")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": spaces,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *Handler) GetMySpaces(c *gin.Context) {
	spaces, err := h.service.GetSpacesByHost(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list spaces")
		return
	}

	response.Success(c, http.StatusOK, spaces)
}
