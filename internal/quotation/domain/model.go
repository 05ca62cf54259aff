package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	sheetdomain "github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

// Quotation statuses.
const (
	StatusDraft = "draft"
	StatusSent  = "sent"
)

// Quotation is a priced offer. The basis fixes which catalog price is
// captured when an item is added; changing the basis later never
// reprices existing items.
type Quotation struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	Reference     string       `gorm:"not null;uniqueIndex" json:"reference"`
	CustomerName  string       `json:"customer_name,omitempty"`
	CustomerEmail string       `json:"customer_email,omitempty"`
	Date          string       `json:"date,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	Basis         string       `gorm:"not null;default:FOB_USD" json:"price_basis"`
	Status        string       `gorm:"not null;default:draft" json:"status"`

	TotalItems int     `json:"total_items"`
	TotalCBM   float64 `json:"total_cbm"`
	TotalValue float64 `json:"total_value"`

	Items []QuotationItem `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// QuotationItem is one priced line. UnitPrice and Total are captured
// values, not live catalog lookups.
type QuotationItem struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"-"`
	QuotationID snowflake.ID `gorm:"not null;index" json:"-"`
	ItemID      string       `gorm:"not null;index" json:"id"`

	ProductCode string `gorm:"not null" json:"product_code"`
	Description string `json:"description"`

	HeightCM float64 `json:"height_cm"`
	DepthCM  float64 `json:"depth_cm"`
	WidthCM  float64 `json:"width_cm"`
	CBM      float64 `json:"cbm"`

	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`

	ImageURL string `json:"image_url,omitempty"`

	Position int `gorm:"not null" json:"-"`
}

// RenderView maps a stored quotation into the layout engine's view.
func (q Quotation) RenderView() sheetdomain.Quotation {
	items := make([]sheetdomain.QuotationItem, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, sheetdomain.QuotationItem{
			ProductCode: item.ProductCode,
			Description: item.Description,
			HeightCM:    item.HeightCM,
			DepthCM:     item.DepthCM,
			WidthCM:     item.WidthCM,
			CBM:         item.CBM,
			Quantity:    item.Quantity,
			FOBPrice:    item.UnitPrice,
			Total:       item.Total,
			Image:       item.ImageURL,
		})
	}
	return sheetdomain.Quotation{
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		Reference:     q.Reference,
		Date:          q.Date,
		Notes:         q.Notes,
		Basis:         sheetdomain.ParseBasis(q.Basis),
		Items:         items,
		Status:        q.Status,
	}
}
