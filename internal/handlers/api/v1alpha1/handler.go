// Package v1alpha1 exposes the orchestrators over HTTP for the chat
// frontend. Handlers translate between JSON and orchestrator inputs and
// map coded errors onto HTTP statuses.
package v1alpha1

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tavernkeep/guild-api/internal/errors"
	"github.com/tavernkeep/guild-api/internal/orchestrators/inventory"
	"github.com/tavernkeep/guild-api/internal/orchestrators/profile"
	"github.com/tavernkeep/guild-api/internal/orchestrators/reward"
)

// Config holds the dependencies for the API handler
type Config struct {
	ProfileService   profile.Service
	RewardService    reward.Service
	InventoryService inventory.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProfileService == nil {
		vb.RequiredField("ProfileService")
	}
	if c.RewardService == nil {
		vb.RequiredField("RewardService")
	}
	if c.InventoryService == nil {
		vb.RequiredField("InventoryService")
	}

	return vb.Build()
}

// Handler serves the v1alpha1 API
type Handler struct {
	profileService   profile.Service
	rewardService    reward.Service
	inventoryService inventory.Service
}

// NewHandler creates a new API handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		profileService:   cfg.ProfileService,
		rewardService:    cfg.RewardService,
		inventoryService: cfg.InventoryService,
	}, nil
}

// RegisterRoutes mounts the API under /v1alpha1
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	v1 := r.Group("/v1alpha1")

	v1.POST("/profiles", h.CreateProfile)
	v1.GET("/profiles/:user_id", h.GetProfile)
	v1.POST("/profiles/:user_id/delete", h.RequestDelete)
	v1.POST("/profiles/:user_id/delete/confirm", h.ConfirmDelete)
	v1.POST("/profiles/:user_id/delete/cancel", h.CancelDelete)
	v1.POST("/profiles/:user_id/daily", h.ClaimDaily)
	v1.GET("/profiles/:user_id/inventory", h.GetInventory)
	v1.POST("/profiles/:user_id/equipment/equip", h.Equip)
	v1.POST("/profiles/:user_id/equipment/unequip", h.Unequip)
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// respondError maps a coded error to its HTTP status. Internal errors are
// logged with full detail and surfaced with a generic message.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	message := errors.GetMessage(err)

	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error())
		message = "internal error"
	}

	c.JSON(status, gin.H{"error": errorBody{
		Code:    string(code),
		Message: message,
		Meta:    errors.GetMeta(err),
	}})
}
