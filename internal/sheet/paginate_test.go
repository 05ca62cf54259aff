package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

func TestProductionPageCount(t *testing.T) {
	assert.Equal(t, 0, ProductionPageCount(0))
	assert.Equal(t, 1, ProductionPageCount(1))
	assert.Equal(t, 7, ProductionPageCount(7))
	assert.Equal(t, 0, ProductionPageCount(-3))
}

func TestQuotationPageCount(t *testing.T) {
	assert.Equal(t, 0, QuotationPageCount(0))
	assert.Equal(t, 1, QuotationPageCount(1))
	assert.Equal(t, 1, QuotationPageCount(2))
	assert.Equal(t, 3, QuotationPageCount(5))
}

func TestPairQuotationItems_OddCountLeavesRightNil(t *testing.T) {
	items := []domain.QuotationItem{
		{ProductCode: "A"}, {ProductCode: "B"},
		{ProductCode: "C"}, {ProductCode: "D"},
		{ProductCode: "E"},
	}

	pairs := PairQuotationItems(items)
	require.Len(t, pairs, 3)

	assert.Equal(t, "A", pairs[0].Left.ProductCode)
	assert.Equal(t, "B", pairs[0].Right.ProductCode)
	assert.Equal(t, "C", pairs[1].Left.ProductCode)
	assert.Equal(t, "D", pairs[1].Right.ProductCode)
	assert.Equal(t, "E", pairs[2].Left.ProductCode)
	assert.Nil(t, pairs[2].Right)
}

func TestPairQuotationItems_PreservesInputOrder(t *testing.T) {
	items := []domain.QuotationItem{{ProductCode: "Z"}, {ProductCode: "A"}}
	pairs := PairQuotationItems(items)
	require.Len(t, pairs, 1)
	assert.Equal(t, "Z", pairs[0].Left.ProductCode)
	assert.Equal(t, "A", pairs[0].Right.ProductCode)
}
