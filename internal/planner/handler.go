package planner

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/finance"
	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/recipe"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type planRequest struct {
	Recipe      recipe.Recipe       `json:"recipe"`
	Assumptions finance.Assumptions `json:"assumptions"`
	Days        float64             `json:"days"`
}

// --------------------------------------------------
// Compute financial metrics
// --------------------------------------------------
func (h *Handler) ComputeMetrics(c *gin.Context) {
	var req ComputeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.ComputeMetrics(req)
	if err != nil {
		// Config errors (bad mode, zero equipment life) are the
		// caller's bug, not a business outcome.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// Shopping plan
// --------------------------------------------------
func (h *Handler) ShoppingPlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	plan := h.service.BuildShoppingPlan(req.Recipe, req.Assumptions, req.Days)
	c.JSON(http.StatusOK, plan)
}

// --------------------------------------------------
// Shopping plan export (JSON object in R2)
// --------------------------------------------------
func (h *Handler) ExportShoppingPlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	plan, url, err := h.service.ExportShoppingPlan(
		c.Request.Context(),
		req.Recipe,
		req.Assumptions,
		req.Days,
	)
	if err != nil {
		if errors.Is(err, ErrExportNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":       plan,
		"export_url": url,
	})
}

// --------------------------------------------------
// Validation only
// --------------------------------------------------
func (h *Handler) Validate(c *gin.Context) {
	var req struct {
		Ingredients []recipe.IngredientLine `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.service.Validate(req.Ingredients))
}

// --------------------------------------------------
// Snapshots
// --------------------------------------------------
func (h *Handler) SaveSnapshot(c *gin.Context) {
	var req ComputeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snap, err := h.service.SaveSnapshot(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidEquipmentLife) ||
			errors.Is(err, finance.ErrUnknownPricingMode) ||
			errors.Is(err, finance.ErrInvalidMarginTarget) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, snap)
}

func (h *Handler) GetSnapshot(c *gin.Context) {
	snap, err := h.service.GetSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "snapshot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (h *Handler) ListSnapshots(c *gin.Context) {
	snaps, err := h.service.ListSnapshots(c.Request.Context(), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if snaps == nil {
		snaps = []*Snapshot{}
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": snaps})
}
