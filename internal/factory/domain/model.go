package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Factory is a production site an order can be assigned to.
type Factory struct {
	ID   snowflake.ID `gorm:"primaryKey" json:"id"`
	Code string       `gorm:"not null;uniqueIndex" json:"code"`
	Name string       `gorm:"not null" json:"name"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Category is an entry of the fixed product category list.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Categories is the fixed product category list used across orders and
// the catalog.
var Categories = []Category{
	{ID: "chair", Name: "Chair"},
	{ID: "sofa", Name: "Sofa"},
	{ID: "bar-chair", Name: "Bar Chair"},
	{ID: "table", Name: "Table"},
	{ID: "bed", Name: "Bed"},
	{ID: "cabinet", Name: "Cabinet"},
	{ID: "shelf", Name: "Shelf"},
	{ID: "other", Name: "Other"},
}
