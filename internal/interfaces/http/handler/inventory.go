package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	inventoryapp "github.com/backoffice/server/internal/application/inventory"
	"github.com/backoffice/server/internal/infrastructure/logger"
)

// InventoryHandler handles inventory alert and movement API endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// RegisterRoutes registers inventory routes on the API group
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")
	{
		inventory.GET("/alerts", h.GetAlerts)
		inventory.GET("/alerts/thresholds", h.GetThresholdAlerts)
		inventory.GET("/products/:id/movements", h.GetProductMovements)
	}
}

// GetAlerts returns the legacy low-stock listing
func (h *InventoryHandler) GetAlerts(c *gin.Context) {
	alerts, err := h.inventoryService.GetInventoryAlerts(c.Request.Context())
	if err != nil {
		logger.GetGinLogger(c).Error("inventory alerts query failed", zap.Error(err))
		h.InternalError(c, "failed to load inventory alerts")
		return
	}
	h.Success(c, alerts)
}

// GetThresholdAlerts returns stock alerts bucketed by severity tier
func (h *InventoryHandler) GetThresholdAlerts(c *gin.Context) {
	var filter inventoryapp.AlertFilter
	if location := c.Query("location"); location != "" {
		filter.Location = &location
	}

	alerts, err := h.inventoryService.DetectLowStockWithThresholds(c.Request.Context(), filter)
	if err != nil {
		logger.GetGinLogger(c).Error("threshold alerts query failed", zap.Error(err))
		h.InternalError(c, "failed to load threshold alerts")
		return
	}
	h.Success(c, alerts)
}

// GetProductMovements returns a product's movement history grouped by
// transaction
func (h *InventoryHandler) GetProductMovements(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	groups, err := h.inventoryService.GroupProductMovements(c.Request.Context(), productID, limit)
	if err != nil {
		logger.GetGinLogger(c).Error("movement history query failed", zap.Error(err))
		h.InternalError(c, "failed to load movement history")
		return
	}
	h.Success(c, groups)
}
