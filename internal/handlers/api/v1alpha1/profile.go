package v1alpha1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tavernkeep/guild-api/internal/entities"
	"github.com/tavernkeep/guild-api/internal/orchestrators/profile"
)

type createProfileRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type profileResponse struct {
	UserID       string     `json:"user_id"`
	Gems         int        `json:"gems"`
	TraitRerolls int        `json:"trait_rerolls"`
	Level        int        `json:"level"`
	Exp          int        `json:"exp"`
	DailyStreak  int        `json:"daily_streak"`
	LastDaily    *time.Time `json:"last_daily,omitempty"`
}

func toProfileResponse(p *entities.Profile) profileResponse {
	return profileResponse{
		UserID:       p.UserID,
		Gems:         p.Gems,
		TraitRerolls: p.TraitRerolls,
		Level:        p.Level,
		Exp:          p.Exp,
		DailyStreak:  p.DailyStreak,
		LastDaily:    p.LastDaily,
	}
}

// CreateProfile handles POST /v1alpha1/profiles
func (h *Handler) CreateProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.profileService.CreateProfile(c.Request.Context(), &profile.CreateProfileInput{
		UserID: req.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"profile":       toProfileResponse(output.Profile),
		"starter_items": output.StarterItems,
	})
}

// GetProfile handles GET /v1alpha1/profiles/:user_id
func (h *Handler) GetProfile(c *gin.Context) {
	output, err := h.profileService.GetProfile(c.Request.Context(), &profile.GetProfileInput{
		UserID: c.Param("user_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	equipped := make(map[string]string, len(output.Equipped))
	for slot, name := range output.Equipped {
		equipped[string(slot)] = name
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":  toProfileResponse(output.Profile),
		"max_exp":  output.MaxExp,
		"power":    output.Power,
		"equipped": equipped,
	})
}

// RequestDelete handles POST /v1alpha1/profiles/:user_id/delete
func (h *Handler) RequestDelete(c *gin.Context) {
	output, err := h.profileService.RequestDelete(c.Request.Context(), &profile.RequestDeleteInput{
		UserID: c.Param("user_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expires_at": output.ExpiresAt})
}

// ConfirmDelete handles POST /v1alpha1/profiles/:user_id/delete/confirm
func (h *Handler) ConfirmDelete(c *gin.Context) {
	output, err := h.profileService.ConfirmDelete(c.Request.Context(), &profile.ConfirmDeleteInput{
		UserID: c.Param("user_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outcome":       string(output.Outcome),
		"items_deleted": output.ItemsDeleted,
	})
}

// CancelDelete handles POST /v1alpha1/profiles/:user_id/delete/cancel
func (h *Handler) CancelDelete(c *gin.Context) {
	output, err := h.profileService.CancelDelete(c.Request.Context(), &profile.CancelDeleteInput{
		UserID: c.Param("user_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"outcome": string(output.Outcome)})
}
