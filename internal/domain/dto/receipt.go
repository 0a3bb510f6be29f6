package dto

import "github.com/google/uuid"

// CreateReceiptRequest records a harvest receipt (a production row). Multiple
// crops in one season become multiple receipts, one per crop.
type CreateReceiptRequest struct {
	SeasonID  uuid.UUID `json:"season_id" validate:"required"`
	Crop      string    `json:"crop" validate:"required"`
	Variety   string    `json:"variety,omitempty"`
	Quantity  string    `json:"quantity" validate:"required"`
	Unit      string    `json:"unit,omitempty"`
	UnitPrice string    `json:"unit_price" validate:"required"`
}
