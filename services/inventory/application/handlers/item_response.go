package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/pantry/services/inventory/domain/models"
)

// ItemResponse is the JSON shape shared by every item-returning endpoint.
// The state flags are projected from the item's phase so clients that still
// speak the flag triad keep working.
type ItemResponse struct {
	ID           uuid.UUID `json:"id"            example:"123e4567-e89b-12d3-a456-426614174000"`
	HouseholdID  uuid.UUID `json:"household_id"  example:"550e8400-e29b-41d4-a716-446655440000"`
	Name         string    `json:"name"          example:"Dish soap"`
	RealName     string    `json:"real_name,omitempty"`
	Category     string    `json:"category,omitempty"      example:"Kitchen"`
	PrimaryLoc   string    `json:"primary_loc,omitempty"   example:"Under sink"`
	SecondaryLoc string    `json:"secondary_loc" example:"none"`
	Price        int64     `json:"price"         example:"250"`
	Quantity     int       `json:"quantity"      example:"1"`
	Subtotal     int64     `json:"subtotal"      example:"250"`
	Phase        string    `json:"phase"         example:"flagged"`
	ToBuy        bool      `json:"to_buy"`
	IsPacked     bool      `json:"is_packed"`
	IsChecking   bool      `json:"is_checking"`
	CreatedAt    time.Time `json:"created_at"    example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

func toItemResponse(i *models.Item) ItemResponse {
	toBuy, isPacked, isChecking := i.Phase.Flags()
	return ItemResponse{
		ID:           i.ID,
		HouseholdID:  i.HouseholdID,
		Name:         i.Name.String(),
		RealName:     i.RealName,
		Category:     i.Category,
		PrimaryLoc:   i.PrimaryLoc,
		SecondaryLoc: i.SecondaryLoc,
		Price:        i.Price,
		Quantity:     i.Quantity,
		Subtotal:     i.Subtotal(),
		Phase:        i.Phase.String(),
		ToBuy:        toBuy,
		IsPacked:     isPacked,
		IsChecking:   isChecking,
		CreatedAt:    i.CreatedAt,
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toItemResponse(i))
	}
	return out
}
