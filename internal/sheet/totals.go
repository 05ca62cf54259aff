package sheet

import (
	"math"

	"github.com/jaipurwood/prodsheet/internal/sheet/domain"
	"github.com/jaipurwood/prodsheet/internal/sheet/measure"
)

// ReferenceContainerCBM is the assumed capacity of the reference
// container used for the utilization figure. Display only.
const ReferenceContainerCBM = 76.0

// Totals is the summary block shown on the closing page.
type Totals struct {
	Items int
	CBM   float64
	Value float64
}

// AggregateQuotation sums quantity, quantity-weighted CBM and monetary
// value across quotation items. Non-numeric values degrade to 0.
func AggregateQuotation(items []domain.QuotationItem) Totals {
	var t Totals
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		t.Items += qty
		t.CBM += safe(it.CBM) * float64(qty)
		t.Value += safe(it.FOBPrice) * float64(qty)
	}
	return t
}

// AggregateOrder sums quantity and raw per-item CBM for production
// sheets. Order CBM totals are deliberately not quantity-weighted;
// observed usage depends on the asymmetry with quotation totals.
func AggregateOrder(items []domain.LineItem) Totals {
	var t Totals
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		t.Items += qty
		t.CBM += safe(EffectiveCBM(it))
	}
	return t
}

// EffectiveCBM returns the CBM shown for a line item: derived from the
// dimensions when auto mode is on, the stored value otherwise.
func EffectiveCBM(item domain.LineItem) float64 {
	if item.CBMAuto {
		return measure.CBM(item.HeightCM, item.DepthCM, item.WidthCM)
	}
	return safe(item.CBM)
}

// ContainerUtilization is the share of the reference container the
// total volume occupies, as a percentage.
func (t Totals) ContainerUtilization() float64 {
	return t.CBM / ReferenceContainerCBM * 100
}

// ContainerCounts estimates how many containers of the standard sizes
// the total volume fills.
func (t Totals) ContainerCounts() []domain.ContainerEstimate {
	sizes := []domain.ContainerEstimate{
		{Label: "20' Container", CapacityCBM: 28},
		{Label: "40' Container", CapacityCBM: 58},
		{Label: "40' HQ", CapacityCBM: 68},
	}
	for i := range sizes {
		if t.CBM > 0 {
			sizes[i].Count = int(math.Ceil(t.CBM / sizes[i].CapacityCBM))
		}
	}
	return sizes
}

func safe(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
