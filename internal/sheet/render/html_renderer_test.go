package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

func productionDoc() domain.Document {
	return domain.Document{
		Kind:      domain.KindProductionSheet,
		Title:     "Production Sheet",
		Reference: "SO-1001",
		Pages: []domain.Page{
			{
				Number: 1,
				Total:  2,
				Kind:   domain.KindProductionSheet,
				Header: domain.HeaderBlock{
					LogoText:    "JAIPUR",
					CompanyName: "A fine wood furniture company",
					Info:        []domain.InfoRow{{Label: "Sales Ref", Value: "SO-1001"}},
				},
				Panels: []domain.ItemPanel{{
					Images: domain.ImageBlock{PrimaryMissing: true, PrimaryWidthPct: 75},
					Notes:  domain.NotesBlock{Placeholder: "No notes"},
					Details: domain.DetailsTable{
						Columns: []string{"Item Code", "Qty"},
						Rows:    [][]string{{"CH-01", "2"}},
					},
				}},
				Footer: "Buyer: Oak & Co | Page 1 of 2",
			},
			{
				Number: 2,
				Total:  2,
				Kind:   domain.KindProductionSheet,
				Panels: []domain.ItemPanel{{
					Images: domain.ImageBlock{
						Primary:         "data:image/png;base64,AAAA",
						PrimaryWidthPct: 65,
						Additional:      []string{"https://cdn.example.com/b.png"},
						OverflowCount:   2,
					},
					Notes: domain.NotesBlock{Bullets: []string{"Category: Chairs"}},
				}},
				Footer: "Buyer: Oak & Co | Page 2 of 2",
			},
		},
		Summary: &domain.SummaryBlock{
			TotalItems:  3,
			TotalCBM:    0.51,
			Utilization: 0.7,
			Containers:  []domain.ContainerEstimate{{Label: "20' Container", CapacityCBM: 28, Count: 1}},
		},
	}
}

func TestHTMLRenderer_RendersEveryPagePlusSummary(t *testing.T) {
	artifact, err := NewHTMLRenderer(false).Render(context.Background(), productionDoc())
	require.NoError(t, err)

	html := string(artifact.Bytes)
	assert.Equal(t, "text/html; charset=utf-8", artifact.ContentType)
	assert.Equal(t, 3, strings.Count(html, `<section class="page">`))
	assert.Contains(t, html, "Buyer: Oak &amp; Co | Page 1 of 2")
	assert.Contains(t, html, "No Image Available")
	assert.Contains(t, html, "+2 more")
	assert.Contains(t, html, "Category: Chairs")
	assert.Contains(t, html, "3 Pcs")
}

func TestHTMLRenderer_AppliesBrandingDefaults(t *testing.T) {
	// An empty template view falls back to the factory branding.
	artifact, err := NewHTMLRenderer(false).Render(context.Background(), productionDoc())
	require.NoError(t, err)

	html := string(artifact.Bytes)
	assert.Contains(t, html, "#3d2c1e")
	assert.Contains(t, html, "#d4622e")
	assert.Contains(t, html, "Playfair Display")
	assert.Contains(t, html, "Manrope")
	assert.Contains(t, html, "margin: 15mm")
}

func TestHTMLRenderer_RejectsUnsafeBranding(t *testing.T) {
	doc := productionDoc()
	doc.Template.PrimaryColor = "red; } body { display:none"
	doc.Template.FontFamily = `"><script>`

	artifact, err := NewHTMLRenderer(false).Render(context.Background(), doc)
	require.NoError(t, err)

	html := string(artifact.Bytes)
	assert.NotContains(t, html, "display:none")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "#3d2c1e")
}

func TestHTMLRenderer_ImageSourceAllowlist(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/a.png", string(imageSrc("https://cdn.example.com/a.png")))
	assert.Equal(t, "data:image/png;base64,AAAA", string(imageSrc("data:image/png;base64,AAAA")))
	assert.Equal(t, "/uploads/a.png", string(imageSrc("/uploads/a.png")))
	assert.Empty(t, string(imageSrc("javascript:alert(1)")))
	assert.Empty(t, string(imageSrc("ftp://host/a.png")))
}

func TestHTMLRenderer_AutoPrintScript(t *testing.T) {
	withPrint, err := NewHTMLRenderer(true).Render(context.Background(), productionDoc())
	require.NoError(t, err)
	assert.Contains(t, string(withPrint.Bytes), "window.print()")

	withoutPrint, err := NewHTMLRenderer(false).Render(context.Background(), productionDoc())
	require.NoError(t, err)
	assert.NotContains(t, string(withoutPrint.Bytes), "window.print()")
}

func TestHTMLRenderer_QuotationPairsPanels(t *testing.T) {
	doc := domain.Document{
		Kind:      domain.KindQuotation,
		Title:     "Quotation",
		Reference: "Q-2026-001",
		Pages: []domain.Page{{
			Number: 1,
			Total:  1,
			Kind:   domain.KindQuotation,
			Panels: []domain.ItemPanel{
				{Images: domain.ImageBlock{PrimaryMissing: true, PrimaryWidthPct: 100}, Notes: domain.NotesBlock{Placeholder: "No notes"}},
				{Empty: true, Placeholder: "No further items"},
			},
		}},
		Summary: &domain.SummaryBlock{TotalItems: 1, CurrencySymbol: "£", TotalValue: 80},
	}

	artifact, err := NewHTMLRenderer(false).Render(context.Background(), doc)
	require.NoError(t, err)

	html := string(artifact.Bytes)
	assert.Contains(t, html, "panels paired")
	assert.Contains(t, html, "No further items")
	assert.Contains(t, html, "£80.00")
}

func TestHTMLRenderer_StoredNotesKeepMarkup(t *testing.T) {
	doc := productionDoc()
	doc.Pages[0].Panels[0].Notes = domain.NotesBlock{Markup: "<p>Hand <b>waxed</b></p>"}

	artifact, err := NewHTMLRenderer(false).Render(context.Background(), doc)
	require.NoError(t, err)
	assert.Contains(t, string(artifact.Bytes), "<p>Hand <b>waxed</b></p>")
}

func TestArtifactName_SlugsReference(t *testing.T) {
	doc := productionDoc()
	name := artifactName(doc, ".html")
	assert.True(t, strings.HasSuffix(name, ".html"))
	assert.Contains(t, name, "so-1001")

	doc.Reference = ""
	assert.Contains(t, artifactName(doc, ".pdf"), "untitled")
}
