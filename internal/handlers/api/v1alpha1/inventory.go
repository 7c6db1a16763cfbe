package v1alpha1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tavernkeep/guild-api/internal/entities"
	"github.com/tavernkeep/guild-api/internal/orchestrators/inventory"
)

type equipRequest struct {
	Search string `json:"search" binding:"required"`
}

type itemResponse struct {
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	Slot      string         `json:"slot,omitempty"`
	StatBonus map[string]int `json:"stat_bonus,omitempty"`
	Rarity    string         `json:"rarity"`
}

func toItemResponse(item *entities.Item) itemResponse {
	return itemResponse{
		Name:      item.Name,
		Category:  string(item.Category),
		Slot:      string(item.Slot),
		StatBonus: item.StatBonus,
		Rarity:    string(item.Rarity),
	}
}

// GetInventory handles GET /v1alpha1/profiles/:user_id/inventory
func (h *Handler) GetInventory(c *gin.Context) {
	output, err := h.inventoryService.GetInventory(c.Request.Context(), &inventory.GetInventoryInput{
		UserID: c.Param("user_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]gin.H, 0, len(output.Items))
	for _, item := range output.Items {
		items = append(items, gin.H{
			"name":        item.Name,
			"is_equipped": item.IsEquipped,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items":          items,
		"equipped_count": output.EquippedCount,
	})
}

// Equip handles POST /v1alpha1/profiles/:user_id/equipment/equip
func (h *Handler) Equip(c *gin.Context) {
	var req equipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.inventoryService.Equip(c.Request.Context(), &inventory.EquipInput{
		UserID: c.Param("user_id"),
		Search: req.Search,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"item":       toItemResponse(output.Item),
		"match_tier": output.MatchTier.String(),
	}
	if output.Replaced != "" {
		resp["replaced"] = output.Replaced
	}
	c.JSON(http.StatusOK, resp)
}

// Unequip handles POST /v1alpha1/profiles/:user_id/equipment/unequip
func (h *Handler) Unequip(c *gin.Context) {
	var req equipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.inventoryService.Unequip(c.Request.Context(), &inventory.UnequipInput{
		UserID: c.Param("user_id"),
		Search: req.Search,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":       toItemResponse(output.Item),
		"match_tier": output.MatchTier.String(),
	})
}
