package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Kind separates the two swatch libraries.
type Kind string

const (
	KindLeather Kind = "leather"
	KindFinish  Kind = "finish"
)

// Material is a leather or wood-finish swatch. Codes are unique within
// a kind; order lines reference materials by code and keep rendering
// even if the library entry is later removed.
type Material struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Kind        Kind         `gorm:"not null;uniqueIndex:idx_materials_kind_code" json:"kind"`
	Code        string       `gorm:"not null;uniqueIndex:idx_materials_kind_code" json:"code"`
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       string       `json:"color,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
