package domain

import (
	"context"

	exportdomain "github.com/jaipurwood/prodsheet/internal/export/domain"
)

// Stats is the landing-page summary. Counts come straight from the
// database; nothing here is cached.
type Stats struct {
	TotalOrders    int64            `json:"total_orders"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	TotalProducts  int64            `json:"total_products"`
	TotalFactories int64            `json:"total_factories"`

	RecentExports []exportdomain.ExportRecord `json:"recent_exports"`
}

type Service interface {
	Stats(context.Context) (Stats, error)
}
