package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	KindOrder     = "order"
	KindQuotation = "quotation"
)

const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// ExportRecord is one generated document. Records are append-only
// history; the rendered bytes themselves are not stored.
type ExportRecord struct {
	ID       snowflake.ID `gorm:"primaryKey" json:"id"`
	Kind     string       `gorm:"not null;index" json:"kind"`
	RefID    snowflake.ID `gorm:"not null;index" json:"ref_id"`
	Format   string       `gorm:"not null" json:"format"`
	Filename string       `gorm:"not null" json:"filename"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}
