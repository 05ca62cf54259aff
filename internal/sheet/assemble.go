package sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jaipurwood/prodsheet/internal/sheet/domain"
	"github.com/jaipurwood/prodsheet/internal/sheet/measure"
)

// Placeholder texts for blocks that must never render blank.
const (
	PlaceholderNoImage    = "No Image Available"
	PlaceholderNoSwatches = "No material swatches"
	PlaceholderNoNotes    = "No notes"
	PlaceholderEmptySlot  = "No further items"
)

var markupTags = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes rich-text tags from stored notes for plain-text
// rendering surfaces.
func StripMarkup(s string) string {
	return strings.TrimSpace(markupTags.ReplaceAllString(s, ""))
}

// Assembler turns order and quotation views into page descriptions.
// A single assembler serves both document kinds; only the layout policy
// for production-sheet image sizing is pluggable.
type Assembler struct {
	layout LayoutPolicy
}

func NewAssembler(layout LayoutPolicy) *Assembler {
	if layout == nil {
		layout = ContentSizedLayout{}
	}
	return &Assembler{layout: layout}
}

// AssembleOrder builds one page per line item, in item order, plus the
// closing summary block.
func (a *Assembler) AssembleOrder(order domain.Order, tmpl domain.TemplateView) domain.Document {
	total := ProductionPageCount(len(order.Items))
	pages := make([]domain.Page, 0, total)
	for i, item := range order.Items {
		pages = append(pages, domain.Page{
			Number: i + 1,
			Total:  total,
			Kind:   domain.KindProductionSheet,
			Header: orderHeader(order, tmpl),
			Panels: []domain.ItemPanel{a.productionPanel(item)},
			Footer: fmt.Sprintf("Buyer: %s | Page %d of %d", orDash(order.BuyerName), i+1, total),
		})
	}

	totals := AggregateOrder(order.Items)
	return domain.Document{
		Kind:      domain.KindProductionSheet,
		Title:     "Production Sheet",
		Reference: order.SalesOrderRef,
		Template:  tmpl,
		Pages:     pages,
		Summary: &domain.SummaryBlock{
			TotalItems:  totals.Items,
			TotalCBM:    totals.CBM,
			Utilization: totals.ContainerUtilization(),
			Containers:  totals.ContainerCounts(),
		},
	}
}

// AssembleQuotation builds left/right paired pages. The final page of
// an odd-count quotation carries an explicit empty right slot instead
// of stretching the left item.
func (a *Assembler) AssembleQuotation(q domain.Quotation, tmpl domain.TemplateView) domain.Document {
	pairs := PairQuotationItems(q.Items)
	total := len(pairs)
	pages := make([]domain.Page, 0, total)
	for i, pair := range pairs {
		pages = append(pages, domain.Page{
			Number: i + 1,
			Total:  total,
			Kind:   domain.KindQuotation,
			Header: quotationHeader(q, tmpl),
			Panels: []domain.ItemPanel{
				a.quotationPanel(pair.Left, q.Basis),
				a.quotationPanel(pair.Right, q.Basis),
			},
			Footer: fmt.Sprintf("Page %d of %d | This quotation is valid for 30 days from the date of issue.", i+1, total),
		})
	}

	totals := AggregateQuotation(q.Items)
	return domain.Document{
		Kind:      domain.KindQuotation,
		Title:     "Quotation",
		Reference: q.Reference,
		Template:  tmpl,
		Pages:     pages,
		Summary: &domain.SummaryBlock{
			TotalItems:     totals.Items,
			TotalCBM:       totals.CBM,
			TotalValue:     totals.Value,
			CurrencySymbol: q.Basis.Symbol(),
			Utilization:    totals.ContainerUtilization(),
			Containers:     totals.ContainerCounts(),
			Notes:          q.Notes,
		},
	}
}

func orderHeader(order domain.Order, tmpl domain.TemplateView) domain.HeaderBlock {
	informDate := order.FactoryInformDate
	if informDate == "" {
		informDate = order.EntryDate
	}
	return domain.HeaderBlock{
		LogoText:    tmpl.LogoText,
		CompanyName: tmpl.CompanyName,
		Info: []domain.InfoRow{
			{Label: "Entry Date", Value: orDash(order.EntryDate)},
			{Label: "Informed to Factory", Value: orDash(informDate)},
			{Label: "Factory", Value: orDash(order.Factory)},
			{Label: "Sales Ref", Value: orDash(order.SalesOrderRef)},
			{Label: "Buyer PO", Value: orDash(order.BuyerPORef)},
		},
	}
}

func quotationHeader(q domain.Quotation, tmpl domain.TemplateView) domain.HeaderBlock {
	return domain.HeaderBlock{
		LogoText:    tmpl.LogoText,
		CompanyName: tmpl.CompanyName,
		Info: []domain.InfoRow{
			{Label: "Date", Value: orDash(q.Date)},
			{Label: "Reference", Value: orDash(q.Reference)},
			{Label: "Customer", Value: orDash(q.CustomerName)},
			{Label: "Email", Value: orDash(q.CustomerEmail)},
			{Label: "Price Basis", Value: q.Basis.Label()},
		},
	}
}

func (a *Assembler) productionPanel(item domain.LineItem) domain.ItemPanel {
	images := ResolveItemImages(item)
	layout := a.layout.ProductionImageLayout(images, StripMarkup(item.Notes))

	return domain.ItemPanel{
		Images: domain.ImageBlock{
			Primary:         images.Primary,
			PrimaryMissing:  images.Primary == "",
			PrimaryWidthPct: layout.PrimaryWidthPct,
			Additional:      images.Visible(),
			OverflowCount:   images.Overflow(),
		},
		Swatches: swatchBlock(item),
		Notes:    notesBlock(item),
		Details: domain.DetailsTable{
			Columns: []string{"Item Code", "Description", "H (cm)", "D (cm)", "W (cm)", "CBM", "In-House", "Qty"},
			Rows: [][]string{{
				orDash(item.ProductCode),
				describe(item.Description, item.ColorNotes),
				measure.FormatDimension(item.HeightCM),
				measure.FormatDimension(item.DepthCM),
				measure.FormatDimension(item.WidthCM),
				measure.FormatCBM(EffectiveCBM(item), measure.OrderCBMPlaces),
				yesNo(item.InHouseProduction),
				strconv.Itoa(quantity(item.Quantity)),
			}},
		},
	}
}

// quotationPanel builds one half-page slot. Quotation slots use fixed
// image sizing regardless of content.
func (a *Assembler) quotationPanel(item *domain.QuotationItem, basis domain.PriceBasis) domain.ItemPanel {
	if item == nil {
		return domain.ItemPanel{Empty: true, Placeholder: PlaceholderEmptySlot}
	}

	images := ResolveImages(item.Image, nil)
	symbol := basis.Symbol()
	return domain.ItemPanel{
		Images: domain.ImageBlock{
			Primary:         images.Primary,
			PrimaryMissing:  images.Primary == "",
			PrimaryWidthPct: 100,
		},
		Notes: domain.NotesBlock{Placeholder: PlaceholderNoNotes},
		Details: domain.DetailsTable{
			Columns: []string{"Item Code", "Description", "H (cm)", "D (cm)", "W (cm)", "CBM", basis.Label(), "Total"},
			Rows: [][]string{{
				orDash(item.ProductCode),
				orDash(item.Description),
				measure.FormatDimension(item.HeightCM),
				measure.FormatDimension(item.DepthCM),
				measure.FormatDimension(item.WidthCM),
				measure.FormatCBM(item.CBM, measure.PrintCBMPlaces),
				symbol + measure.FormatMoney(item.FOBPrice),
				symbol + measure.FormatMoney(item.Total),
			}},
		},
	}
}

// swatchBlock renders a material cell whenever its code or image is
// present; it collapses to a single placeholder when both materials are
// absent.
func swatchBlock(item domain.LineItem) domain.SwatchBlock {
	var swatches []domain.Swatch
	if item.LeatherCode != "" || item.LeatherImage != "" {
		swatches = append(swatches, domain.Swatch{Label: "Leather", Code: item.LeatherCode, Image: item.LeatherImage})
	}
	if item.FinishCode != "" || item.FinishImage != "" {
		swatches = append(swatches, domain.Swatch{Label: "Finish", Code: item.FinishCode, Image: item.FinishImage})
	}
	if len(swatches) == 0 {
		return domain.SwatchBlock{Placeholder: PlaceholderNoSwatches}
	}
	return domain.SwatchBlock{Swatches: swatches}
}

// notesBlock prefers the stored rich text, falls back to a bulleted
// summary of whichever material fields are filled, and never renders empty.
func notesBlock(item domain.LineItem) domain.NotesBlock {
	if strings.TrimSpace(item.Notes) != "" {
		return domain.NotesBlock{Markup: item.Notes}
	}

	var bullets []string
	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			bullets = append(bullets, label+": "+value)
		}
	}
	add("Category", item.Category)
	add("Leather", item.LeatherCode)
	add("Finish", item.FinishCode)
	add("Color Notes", item.ColorNotes)
	add("Leg Color", item.LegColor)
	add("Wood Finish", item.WoodFinish)
	add("Machine Hall", item.MachineHall)

	if len(bullets) == 0 {
		return domain.NotesBlock{Placeholder: PlaceholderNoNotes}
	}
	return domain.NotesBlock{Bullets: bullets}
}

func describe(description, colorNotes string) string {
	if strings.TrimSpace(description) == "" {
		description = "-"
	}
	if strings.TrimSpace(colorNotes) != "" {
		return fmt.Sprintf("%s (%s)", description, colorNotes)
	}
	return description
}

func quantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
