package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Order statuses. Status is advisory and never gates rendering.
const (
	StatusDraft        = "Draft"
	StatusSubmitted    = "Submitted"
	StatusInProduction = "In Production"
	StatusDone         = "Done"
)

// Order is a production order. Items are owned rows replaced wholesale
// on update, the way the editing screens submit them.
type Order struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	SalesOrderRef string       `gorm:"not null;uniqueIndex" json:"sales_order_ref"`
	BuyerPORef    string       `json:"buyer_po_ref,omitempty"`
	BuyerName     string       `json:"buyer_name,omitempty"`

	// Dates travel as entered, already formatted for display.
	EntryDate         string `json:"entry_date,omitempty"`
	FactoryInformDate string `json:"factory_inform_date,omitempty"`

	Factory string `json:"factory,omitempty"`
	Status  string `gorm:"not null;default:Draft" json:"status"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// OrderItem is one line of an order. ItemID is the stable identity the
// editing session assigns; it survives order updates so image uploads
// can target a line.
type OrderItem struct {
	ID      snowflake.ID `gorm:"primaryKey" json:"-"`
	OrderID snowflake.ID `gorm:"not null;index" json:"-"`
	ItemID  string       `gorm:"not null;index" json:"id"`

	ProductCode string `json:"product_code"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`

	HeightCM float64 `json:"height_cm"`
	DepthCM  float64 `json:"depth_cm"`
	WidthCM  float64 `json:"width_cm"`
	CBM      float64 `json:"cbm"`
	CBMAuto  bool    `gorm:"not null;default:true" json:"cbm_auto"`

	Quantity          int    `gorm:"not null;default:1" json:"quantity"`
	InHouseProduction bool   `gorm:"not null;default:true" json:"in_house_production"`
	MachineHall       string `json:"machine_hall,omitempty"`

	LeatherCode  string `json:"leather_code,omitempty"`
	LeatherImage string `json:"leather_image,omitempty"`
	FinishCode   string `json:"finish_code,omitempty"`
	FinishImage  string `json:"finish_image,omitempty"`

	ColorNotes string `json:"color_notes,omitempty"`
	LegColor   string `json:"leg_color,omitempty"`
	WoodFinish string `json:"wood_finish,omitempty"`
	Notes      string `json:"notes,omitempty"`

	ProductImage    string         `json:"product_image,omitempty"`
	Images          datatypes.JSON `json:"images,omitempty"`
	ReferenceImages datatypes.JSON `json:"reference_images,omitempty"`

	Position int `gorm:"not null" json:"-"`
}
