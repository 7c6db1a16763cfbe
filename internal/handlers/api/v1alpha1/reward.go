package v1alpha1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tavernkeep/guild-api/internal/orchestrators/reward"
)

// ClaimDaily handles POST /v1alpha1/profiles/:user_id/daily
func (h *Handler) ClaimDaily(c *gin.Context) {
	output, err := h.rewardService.ClaimDaily(c.Request.Context(), &reward.ClaimDailyInput{
		UserID: c.Param("user_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":         toProfileResponse(output.Profile),
		"streak":          output.Streak,
		"gems_awarded":    output.GemsAwarded,
		"rerolls_awarded": output.RerollsAwarded,
		"exp_awarded":     output.ExpAwarded,
		"leveled_up":      output.LeveledUp,
	})
}
