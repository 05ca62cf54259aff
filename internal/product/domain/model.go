package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Product is a catalog entry. Its dimensions and prices prefill order
// lines and quotation items; edits here never reprice documents that
// already captured a value.
type Product struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	ProductCode string       `gorm:"not null;uniqueIndex" json:"product_code"`
	Description string       `gorm:"not null" json:"description"`
	Category    string       `json:"category,omitempty"`

	HeightCM float64 `json:"height_cm"`
	DepthCM  float64 `json:"depth_cm"`
	WidthCM  float64 `json:"width_cm"`

	FOBUSD     float64 `gorm:"column:fob_usd" json:"fob_usd"`
	FOBGBP     float64 `gorm:"column:fob_gbp" json:"fob_gbp"`
	Warehouse1 float64 `gorm:"column:warehouse_700" json:"warehouse_700"`
	Warehouse2 float64 `gorm:"column:warehouse_2000" json:"warehouse_2000"`

	ImageURL string         `json:"image_url,omitempty"`
	Images   datatypes.JSON `json:"images,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
