package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

func testTemplate() domain.TemplateView {
	return domain.TemplateView{
		CompanyName:  "A fine wood furniture company",
		LogoText:     "JAIPUR",
		PrimaryColor: "#3d2c1e",
		AccentColor:  "#d4622e",
		PageMarginMM: 15,
	}
}

func TestAssembleOrder_OnePagePerItem(t *testing.T) {
	order := domain.Order{
		SalesOrderRef: "SO-1001",
		BuyerName:     "Oak & Co",
		EntryDate:     "2026-08-01",
		Items: []domain.LineItem{
			{ProductCode: "CH-01", Quantity: 2, HeightCM: 20, DepthCM: 30, WidthCM: 10, CBMAuto: true},
			{ProductCode: "TB-02", Quantity: 1, CBM: 0.5},
		},
	}

	doc := NewAssembler(nil).AssembleOrder(order, testTemplate())
	require.Len(t, doc.Pages, 2)
	assert.Equal(t, domain.KindProductionSheet, doc.Kind)
	assert.Equal(t, "SO-1001", doc.Reference)

	first := doc.Pages[0]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, first.Total)
	assert.Equal(t, "Buyer: Oak & Co | Page 1 of 2", first.Footer)
	require.Len(t, first.Panels, 1)

	row := first.Panels[0].Details.Rows[0]
	assert.Equal(t, "CH-01", row[0])
	assert.Equal(t, "0.0060", row[5])
	assert.Equal(t, "2", row[7])

	require.NotNil(t, doc.Summary)
	assert.Equal(t, 3, doc.Summary.TotalItems)
	assert.InDelta(t, 0.506, doc.Summary.TotalCBM, 1e-9)
}

func TestAssembleOrder_HeaderFallsBackToEntryDate(t *testing.T) {
	order := domain.Order{EntryDate: "2026-08-01", Items: []domain.LineItem{{}}}
	doc := NewAssembler(nil).AssembleOrder(order, testTemplate())

	info := doc.Pages[0].Header.Info
	require.Len(t, info, 5)
	assert.Equal(t, "Informed to Factory", info[1].Label)
	assert.Equal(t, "2026-08-01", info[1].Value)
}

func TestAssembleQuotation_OddCountGetsEmptySlot(t *testing.T) {
	q := domain.Quotation{
		Reference: "Q-2026-001",
		Basis:     domain.BasisWH700,
		Items: []domain.QuotationItem{
			{ProductCode: "A", Quantity: 1, FOBPrice: 80, Total: 80},
			{ProductCode: "B", Quantity: 1},
			{ProductCode: "C", Quantity: 1},
			{ProductCode: "D", Quantity: 1},
			{ProductCode: "E", Quantity: 1},
		},
	}

	doc := NewAssembler(nil).AssembleQuotation(q, testTemplate())
	require.Len(t, doc.Pages, 3)

	last := doc.Pages[2]
	require.Len(t, last.Panels, 2)
	assert.False(t, last.Panels[0].Empty)
	assert.True(t, last.Panels[1].Empty)
	assert.Equal(t, PlaceholderEmptySlot, last.Panels[1].Placeholder)

	// WH_700 is a pound basis; the price column carries its label.
	cols := doc.Pages[0].Panels[0].Details.Columns
	assert.Equal(t, "Warehouse 700 GBP", cols[6])
	assert.Equal(t, "£80.00", doc.Pages[0].Panels[0].Details.Rows[0][6])

	require.NotNil(t, doc.Summary)
	assert.Equal(t, "£", doc.Summary.CurrencySymbol)
	assert.Equal(t, 5, doc.Summary.TotalItems)
}

func TestProductionPanel_PlaceholdersNeverBlank(t *testing.T) {
	doc := NewAssembler(nil).AssembleOrder(domain.Order{Items: []domain.LineItem{{}}}, testTemplate())
	panel := doc.Pages[0].Panels[0]

	assert.True(t, panel.Images.PrimaryMissing)
	assert.Equal(t, PlaceholderNoSwatches, panel.Swatches.Placeholder)
	assert.Equal(t, PlaceholderNoNotes, panel.Notes.Placeholder)
}

func TestProductionPanel_NotesFallbackBullets(t *testing.T) {
	item := domain.LineItem{Category: "Chairs", LeatherCode: "LTH-9", MachineHall: "Hall 2"}
	doc := NewAssembler(nil).AssembleOrder(domain.Order{Items: []domain.LineItem{item}}, testTemplate())

	notes := doc.Pages[0].Panels[0].Notes
	assert.Empty(t, notes.Markup)
	assert.Equal(t, []string{"Category: Chairs", "Leather: LTH-9", "Machine Hall: Hall 2"}, notes.Bullets)
}

func TestProductionPanel_StoredNotesWin(t *testing.T) {
	item := domain.LineItem{Notes: "<p>Hand waxed</p>", Category: "Chairs"}
	doc := NewAssembler(nil).AssembleOrder(domain.Order{Items: []domain.LineItem{item}}, testTemplate())

	notes := doc.Pages[0].Panels[0].Notes
	assert.Equal(t, "<p>Hand waxed</p>", notes.Markup)
	assert.Empty(t, notes.Bullets)
}

func TestProductionPanel_ColorNotesJoinDescription(t *testing.T) {
	item := domain.LineItem{Description: "Club chair", ColorNotes: "walnut stain"}
	doc := NewAssembler(nil).AssembleOrder(domain.Order{Items: []domain.LineItem{item}}, testTemplate())

	row := doc.Pages[0].Panels[0].Details.Rows[0]
	assert.Equal(t, "Club chair (walnut stain)", row[1])
}

func TestSwatchBlock_CodeAloneMakesACell(t *testing.T) {
	item := domain.LineItem{FinishCode: "FN-3"}
	doc := NewAssembler(nil).AssembleOrder(domain.Order{Items: []domain.LineItem{item}}, testTemplate())

	sw := doc.Pages[0].Panels[0].Swatches
	require.Len(t, sw.Swatches, 1)
	assert.Equal(t, "Finish", sw.Swatches[0].Label)
	assert.Equal(t, "FN-3", sw.Swatches[0].Code)
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "Hand waxed", StripMarkup("<p>Hand <b>waxed</b></p>"))
	assert.Equal(t, "plain", StripMarkup("plain"))
}

func TestContentSizedLayout(t *testing.T) {
	policy := ContentSizedLayout{}

	bare := policy.ProductionImageLayout(ResolvedImages{}, "")
	assert.Equal(t, 75, bare.PrimaryWidthPct)

	withAux := policy.ProductionImageLayout(ResolvedImages{Additional: []string{"a", "b", "c"}}, "")
	assert.Equal(t, 65, withAux.PrimaryWidthPct)
	assert.Equal(t, 22, withAux.AuxCellWidthPct)

	longNotes := policy.ProductionImageLayout(ResolvedImages{Additional: []string{"a"}}, string(make([]byte, 300)))
	assert.Equal(t, 55, longNotes.PrimaryWidthPct)
}
