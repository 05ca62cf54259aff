package sheet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

func TestAggregateQuotation_WeightsByQuantity(t *testing.T) {
	items := []domain.QuotationItem{
		{Quantity: 2, CBM: 0.5, FOBPrice: 10},
		{Quantity: 3, CBM: 0.1, FOBPrice: 5},
	}

	totals := AggregateQuotation(items)
	assert.Equal(t, 5, totals.Items)
	assert.InDelta(t, 1.3, totals.CBM, 1e-9)
	assert.InDelta(t, 35.0, totals.Value, 1e-9)
}

func TestAggregateQuotation_ClampsZeroQuantity(t *testing.T) {
	totals := AggregateQuotation([]domain.QuotationItem{{Quantity: 0, CBM: 0.2, FOBPrice: 4}})
	assert.Equal(t, 1, totals.Items)
	assert.InDelta(t, 0.2, totals.CBM, 1e-9)
	assert.InDelta(t, 4.0, totals.Value, 1e-9)
}

func TestAggregateOrder_CBMIsNotQuantityWeighted(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: 4, CBM: 0.5},
		{Quantity: 2, CBM: 0.25},
	}

	totals := AggregateOrder(items)
	assert.Equal(t, 6, totals.Items)
	// Raw per-item sum, unlike the quotation aggregate.
	assert.InDelta(t, 0.75, totals.CBM, 1e-9)
}

func TestAggregateOrder_AutoModeRecomputesFromDimensions(t *testing.T) {
	items := []domain.LineItem{
		{Quantity: 1, CBMAuto: true, HeightCM: 100, DepthCM: 100, WidthCM: 100, CBM: 9},
	}
	totals := AggregateOrder(items)
	assert.InDelta(t, 1.0, totals.CBM, 1e-9)
}

func TestEffectiveCBM(t *testing.T) {
	stored := domain.LineItem{CBM: 0.42}
	assert.InDelta(t, 0.42, EffectiveCBM(stored), 1e-9)

	auto := domain.LineItem{CBMAuto: true, HeightCM: 20, DepthCM: 30, WidthCM: 10, CBM: 99}
	assert.InDelta(t, 0.006, EffectiveCBM(auto), 1e-9)

	bad := domain.LineItem{CBM: math.NaN()}
	assert.Zero(t, EffectiveCBM(bad))
}

func TestContainerUtilization(t *testing.T) {
	totals := Totals{CBM: 38}
	assert.InDelta(t, 50.0, totals.ContainerUtilization(), 1e-9)
}

func TestContainerCounts(t *testing.T) {
	totals := Totals{CBM: 60}
	counts := totals.ContainerCounts()
	require.Len(t, counts, 3)

	assert.Equal(t, "20' Container", counts[0].Label)
	assert.Equal(t, 3, counts[0].Count) // ceil(60/28)
	assert.Equal(t, 2, counts[1].Count) // ceil(60/58)
	assert.Equal(t, 1, counts[2].Count) // ceil(60/68)

	empty := Totals{}
	for _, c := range empty.ContainerCounts() {
		assert.Zero(t, c.Count)
	}
}
