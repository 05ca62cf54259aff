package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBasis_DefaultsToFOBUSD(t *testing.T) {
	assert.Equal(t, BasisFOBUSD, ParseBasis(""))
	assert.Equal(t, BasisFOBUSD, ParseBasis("something_else"))
	assert.Equal(t, BasisWH700, ParseBasis("wh_700"))
	assert.Equal(t, BasisFOBGBP, ParseBasis(" FOB_GBP "))
}

func TestUnitPrice_SelectsByBasis(t *testing.T) {
	prices := ProductPrices{
		FOBUSD:     100,
		FOBGBP:     75,
		Warehouse1: 80,
		Warehouse2: 90,
	}

	assert.Equal(t, 100.0, BasisFOBUSD.UnitPrice(prices))
	assert.Equal(t, 75.0, BasisFOBGBP.UnitPrice(prices))
	assert.Equal(t, 80.0, BasisWH700.UnitPrice(prices))
	assert.Equal(t, 90.0, BasisWH2000.UnitPrice(prices))
}

func TestUnitPrice_MissingFieldIsZero(t *testing.T) {
	assert.Zero(t, BasisWH2000.UnitPrice(ProductPrices{FOBUSD: 100}))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", BasisFOBUSD.Symbol())
	assert.Equal(t, "£", BasisFOBGBP.Symbol())
	assert.Equal(t, "£", BasisWH700.Symbol())
	assert.Equal(t, "£", BasisWH2000.Symbol())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "FOB USD", BasisFOBUSD.Label())
	assert.Equal(t, "Warehouse 2000 GBP", BasisWH2000.Label())
}
