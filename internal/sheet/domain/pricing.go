package domain

import "strings"

// PriceBasis selects which of the four stored unit prices applies when
// an item is added to a quotation. The basis is a point-in-time choice:
// it affects price lookup at add-time only and never reprices items
// already on the quotation.
type PriceBasis string

const (
	BasisFOBUSD PriceBasis = "FOB_USD"
	BasisFOBGBP PriceBasis = "FOB_GBP"
	BasisWH700  PriceBasis = "WH_700"
	BasisWH2000 PriceBasis = "WH_2000"
)

// ParseBasis normalizes a stored basis tag. Unknown or empty input
// defaults to FOB USD.
func ParseBasis(s string) PriceBasis {
	switch PriceBasis(strings.ToUpper(strings.TrimSpace(s))) {
	case BasisFOBUSD, BasisFOBGBP, BasisWH700, BasisWH2000:
		return PriceBasis(strings.ToUpper(strings.TrimSpace(s)))
	default:
		return BasisFOBUSD
	}
}

// ProductPrices are the four price fields of a catalog product.
type ProductPrices struct {
	FOBUSD     float64
	FOBGBP     float64
	Warehouse1 float64
	Warehouse2 float64
}

// UnitPrice returns the numeric unit price for the basis. Missing
// fields resolve to 0.
func (b PriceBasis) UnitPrice(p ProductPrices) float64 {
	switch b {
	case BasisFOBGBP:
		return p.FOBGBP
	case BasisWH700:
		return p.Warehouse1
	case BasisWH2000:
		return p.Warehouse2
	default:
		return p.FOBUSD
	}
}

// Symbol returns the display currency symbol: dollar for FOB USD,
// pound for the three GBP bases.
func (b PriceBasis) Symbol() string {
	if b == BasisFOBUSD {
		return "$"
	}
	return "£"
}

// Label is the human-readable price column header.
func (b PriceBasis) Label() string {
	switch b {
	case BasisFOBGBP:
		return "FOB GBP"
	case BasisWH700:
		return "Warehouse 700 GBP"
	case BasisWH2000:
		return "Warehouse 2000 GBP"
	default:
		return "FOB USD"
	}
}
