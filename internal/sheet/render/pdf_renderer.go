package render

import (
	"context"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

// PDFRenderer is the server-side export backend. It serves the binary
// download endpoint; the HTML backend serves the in-browser print path.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(_ context.Context, doc domain.Document) (Artifact, error) {
	tmpl := sanitizeTemplate(doc.Template)
	margin := float64(tmpl.PageMarginMM)

	cfg := config.NewBuilder().
		WithLeftMargin(margin).
		WithRightMargin(margin).
		WithTopMargin(margin).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)
	primary := hexToColor(tmpl.PrimaryColor)

	for _, pg := range doc.Pages {
		m.AddPages(r.buildPage(pg, tmpl, primary))
	}
	if doc.Summary != nil {
		m.AddPages(r.buildSummaryPage(*doc.Summary, tmpl, primary))
	}

	rendered, err := m.Generate()
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		ContentType: "application/pdf",
		Filename:    artifactName(doc, ".pdf"),
		Bytes:       rendered.GetBytes(),
	}, nil
}

func (r *PDFRenderer) buildPage(pg domain.Page, tmpl domain.TemplateView, primary *props.Color) core.Page {
	p := page.New()
	p.Add(headerRows(pg.Header, primary)...)

	for _, panel := range pg.Panels {
		p.Add(panelRows(panel, primary)...)
	}

	p.Add(row.New(8).Add(
		text.NewCol(12, pg.Footer, props.Text{Size: 8, Align: align.Center, Color: &props.Color{Red: 120, Green: 120, Blue: 120}}),
	))
	return p
}

func headerRows(h domain.HeaderBlock, primary *props.Color) []core.Row {
	infoLines := make([]core.Component, 0, len(h.Info))
	top := 0.0
	for _, info := range h.Info {
		infoLines = append(infoLines, text.New(info.Label+": "+info.Value, props.Text{
			Size:  8,
			Top:   top,
			Align: align.Right,
		}))
		top += 4
	}

	return []core.Row{
		row.New(24).Add(
			col.New(6).Add(
				text.New(h.LogoText, props.Text{Size: 20, Style: fontstyle.Bold, Color: primary}),
				text.New(h.CompanyName, props.Text{Size: 8, Top: 10, Color: &props.Color{Red: 110, Green: 110, Blue: 110}}),
			),
			col.New(6).Add(infoLines...),
		),
	}
}

func panelRows(panel domain.ItemPanel, primary *props.Color) []core.Row {
	if panel.Empty {
		return []core.Row{
			row.New(30).Add(
				text.NewCol(12, panel.Placeholder, props.Text{
					Size:  10,
					Align: align.Center,
					Top:   12,
					Color: &props.Color{Red: 150, Green: 150, Blue: 150},
				}),
			),
		}
	}

	rows := []core.Row{imageRow(panel.Images)}
	if auxRow, ok := auxImagesRow(panel.Images); ok {
		rows = append(rows, auxRow)
	}
	rows = append(rows, notesRows(panel, primary)...)
	rows = append(rows, detailRows(panel.Details, primary)...)
	return rows
}

func imageRow(block domain.ImageBlock) core.Row {
	// Primary image spans a majority of the grid; the exact share comes
	// from the layout policy.
	span := block.PrimaryWidthPct * 12 / 100
	if span < 4 {
		span = 4
	}
	if span > 12 {
		span = 12
	}
	rest := 12 - span

	cols := make([]core.Col, 0, 2)
	if bytes, ext, ok := decodeEmbeddedImage(block.Primary); ok {
		cols = append(cols, image.NewFromBytesCol(span, bytes, ext, props.Rect{Center: true, Percent: 95}))
	} else {
		cols = append(cols, text.NewCol(span, placeholderFor(block), props.Text{
			Size:  10,
			Align: align.Center,
			Top:   25,
			Color: &props.Color{Red: 150, Green: 150, Blue: 150},
		}))
	}
	if rest > 0 {
		cols = append(cols, col.New(rest))
	}
	return row.New(60).Add(cols...)
}

func placeholderFor(block domain.ImageBlock) string {
	if block.PrimaryMissing {
		return "No Image Available"
	}
	// Reference could not be embedded (e.g. remote URL); surface it
	// rather than a blank frame.
	return block.Primary
}

func auxImagesRow(block domain.ImageBlock) (core.Row, bool) {
	if len(block.Additional) == 0 && block.OverflowCount == 0 {
		return nil, false
	}

	cols := make([]core.Col, 0, len(block.Additional)+1)
	used := 0
	for _, ref := range block.Additional {
		if bytes, ext, ok := decodeEmbeddedImage(ref); ok {
			cols = append(cols, image.NewFromBytesCol(2, bytes, ext, props.Rect{Center: true, Percent: 90}))
		} else {
			cols = append(cols, text.NewCol(2, ref, props.Text{Size: 6}))
		}
		used += 2
	}
	if block.OverflowCount > 0 {
		cols = append(cols, text.NewCol(2, "+"+strconv.Itoa(block.OverflowCount)+" more", props.Text{
			Size:  8,
			Top:   8,
			Align: align.Center,
			Color: &props.Color{Red: 120, Green: 120, Blue: 120},
		}))
		used += 2
	}
	if used < 12 {
		cols = append(cols, col.New(12-used))
	}
	return row.New(22).Add(cols...), true
}

func notesRows(panel domain.ItemPanel, primary *props.Color) []core.Row {
	rows := []core.Row{
		row.New(6).Add(text.NewCol(12, "NOTES", props.Text{Size: 8, Style: fontstyle.Bold, Color: primary})),
	}

	switch {
	case panel.Notes.Markup != "":
		rows = append(rows, row.New(18).Add(
			text.NewCol(12, StripMarkupText(panel.Notes.Markup), props.Text{Size: 8}),
		))
	case len(panel.Notes.Bullets) > 0:
		for _, bullet := range panel.Notes.Bullets {
			rows = append(rows, row.New(4).Add(text.NewCol(12, "• "+bullet, props.Text{Size: 8})))
		}
	default:
		rows = append(rows, row.New(5).Add(text.NewCol(12, panel.Notes.Placeholder, props.Text{
			Size:  8,
			Color: &props.Color{Red: 150, Green: 150, Blue: 150},
		})))
	}

	if len(panel.Swatches.Swatches) > 0 {
		cols := make([]core.Col, 0, len(panel.Swatches.Swatches))
		width := 12 / len(panel.Swatches.Swatches)
		for _, sw := range panel.Swatches.Swatches {
			label := sw.Label
			if sw.Code != "" {
				label += ": " + sw.Code
			}
			if bytes, ext, ok := decodeEmbeddedImage(sw.Image); ok {
				cols = append(cols, col.New(width).Add(
					image.NewFromBytes(bytes, ext, props.Rect{Percent: 60}),
					text.New(label, props.Text{Size: 7, Top: 14}),
				))
			} else {
				cols = append(cols, text.NewCol(width, label, props.Text{Size: 8, Style: fontstyle.Bold}))
			}
		}
		rows = append(rows, row.New(18).Add(cols...))
	} else if panel.Swatches.Placeholder != "" {
		rows = append(rows, row.New(6).Add(text.NewCol(12, panel.Swatches.Placeholder, props.Text{
			Size:  8,
			Color: &props.Color{Red: 150, Green: 150, Blue: 150},
		})))
	}

	return rows
}

func detailRows(table domain.DetailsTable, primary *props.Color) []core.Row {
	if len(table.Columns) == 0 {
		return nil
	}
	widths := columnWidths(len(table.Columns))

	headerCols := make([]core.Col, 0, len(table.Columns))
	for i, name := range table.Columns {
		headerCols = append(headerCols, text.NewCol(widths[i], name, props.Text{
			Size:  7,
			Style: fontstyle.Bold,
			Color: primary,
		}))
	}
	rows := []core.Row{row.New(7).Add(headerCols...)}

	for _, values := range table.Rows {
		cols := make([]core.Col, 0, len(values))
		for i, value := range values {
			if i >= len(widths) {
				break
			}
			cols = append(cols, text.NewCol(widths[i], value, props.Text{Size: 7}))
		}
		rows = append(rows, row.New(7).Add(cols...))
	}
	return rows
}

// columnWidths distributes the 12-column grid across a details table,
// giving the description column the spare space.
func columnWidths(n int) []int {
	widths := make([]int, n)
	for i := range widths {
		widths[i] = 1
	}
	if n >= 2 {
		widths[0] = 2
	}
	spare := 12
	for _, w := range widths {
		spare -= w
	}
	if n >= 2 {
		widths[1] += spare
	} else if n == 1 {
		widths[0] = 12
	}
	return widths
}

func (r *PDFRenderer) buildSummaryPage(summary domain.SummaryBlock, tmpl domain.TemplateView, primary *props.Color) core.Page {
	p := page.New()
	p.Add(
		row.New(14).Add(
			text.NewCol(12, "Summary", props.Text{Size: 16, Style: fontstyle.Bold, Color: primary}),
		),
		row.New(8).Add(
			text.NewCol(4, "Total Items: "+strconv.Itoa(summary.TotalItems)+" Pcs", props.Text{Size: 10}),
			text.NewCol(4, "Total CBM: "+strconv.FormatFloat(summary.TotalCBM, 'f', 2, 64)+" m3", props.Text{Size: 10}),
			text.NewCol(4, totalValueLabel(summary), props.Text{Size: 10}),
		),
		row.New(8).Add(
			text.NewCol(12, "Container Utilization: "+strconv.FormatFloat(summary.Utilization, 'f', 1, 64)+"%", props.Text{Size: 10}),
		),
	)

	for _, c := range summary.Containers {
		p.Add(row.New(6).Add(
			text.NewCol(12, c.Label+" (~"+strconv.FormatFloat(c.CapacityCBM, 'f', 0, 64)+" CBM): "+strconv.Itoa(c.Count), props.Text{Size: 9}),
		))
	}
	if summary.Notes != "" {
		p.Add(
			row.New(6).Add(text.NewCol(12, "Notes", props.Text{Size: 9, Style: fontstyle.Bold, Color: primary})),
			row.New(12).Add(text.NewCol(12, summary.Notes, props.Text{Size: 9})),
		)
	}
	p.Add(row.New(10).Add(
		text.NewCol(12, tmpl.LogoText+" - "+tmpl.CompanyName, props.Text{
			Size:  8,
			Align: align.Center,
			Top:   4,
			Color: &props.Color{Red: 120, Green: 120, Blue: 120},
		}),
	))
	return p
}

func totalValueLabel(summary domain.SummaryBlock) string {
	if summary.CurrencySymbol == "" {
		return ""
	}
	return "Total Value: " + summary.CurrencySymbol + strconv.FormatFloat(summary.TotalValue, 'f', 2, 64)
}

// decodeEmbeddedImage extracts the raw bytes of a data-URI image
// reference. Remote URLs are not fetched at render time.
func decodeEmbeddedImage(ref string) ([]byte, extension.Type, bool) {
	const prefix = "data:image/"
	if !strings.HasPrefix(ref, prefix) {
		return nil, "", false
	}
	rest := strings.TrimPrefix(ref, prefix)
	semi := strings.Index(rest, ";base64,")
	if semi < 0 {
		return nil, "", false
	}
	var ext extension.Type
	switch strings.ToLower(rest[:semi]) {
	case "png":
		ext = extension.Png
	case "jpg", "jpeg":
		ext = extension.Jpg
	default:
		return nil, "", false
	}
	raw, err := base64.StdEncoding.DecodeString(rest[semi+len(";base64,"):])
	if err != nil {
		return nil, "", false
	}
	return raw, ext, true
}

func hexToColor(hex string) *props.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return &props.Color{Red: 61, Green: 44, Blue: 30}
	}
	r, _ := strconv.ParseInt(hex[0:2], 16, 32)
	g, _ := strconv.ParseInt(hex[2:4], 16, 32)
	b, _ := strconv.ParseInt(hex[4:6], 16, 32)
	return &props.Color{Red: int(r), Green: int(g), Blue: int(b)}
}

// StripMarkupText mirrors sheet.StripMarkup without importing the
// parent package.
func StripMarkupText(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
