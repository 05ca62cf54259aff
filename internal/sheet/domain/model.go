package domain

// LineItem is the renderer-facing view of one order line. The engine
// never mutates it; callers map their persisted records into this view
// before rendering.
type LineItem struct {
	ID                string
	ProductCode       string
	Description       string
	Category          string
	Quantity          int
	HeightCM          float64
	DepthCM           float64
	WidthCM           float64
	CBM               float64
	CBMAuto           bool
	InHouseProduction bool
	MachineHall       string
	LeatherCode       string
	LeatherImage      string
	FinishCode        string
	FinishImage       string
	ColorNotes        string
	LegColor          string
	WoodFinish        string
	Notes             string
	ProductImage      string
	Images            []string
}

// Order is the read-only order view consumed by the page assembler.
type Order struct {
	SalesOrderRef     string
	BuyerPORef        string
	BuyerName         string
	EntryDate         string
	FactoryInformDate string
	Factory           string
	Status            string
	Items             []LineItem
}

type QuotationItem struct {
	ProductCode string
	Description string
	HeightCM    float64
	DepthCM     float64
	WidthCM     float64
	CBM         float64
	Quantity    int
	FOBPrice    float64
	Total       float64
	Image       string
}

type Quotation struct {
	CustomerName  string
	CustomerEmail string
	Reference     string
	Date          string
	Notes         string
	Basis         PriceBasis
	Items         []QuotationItem
	Status        string
}

// TemplateView carries branding values into the renderer. The engine
// treats these as opaque parameters; sanitization happens at render time.
type TemplateView struct {
	CompanyName    string
	LogoText       string
	PrimaryColor   string
	AccentColor    string
	FontFamily     string
	BodyFont       string
	PageMarginMM   int
	HeaderHeightMM int
	FooterHeightMM int
	ShowBorders    bool
}

type DocumentKind string

const (
	KindProductionSheet DocumentKind = "production_sheet"
	KindQuotation       DocumentKind = "quotation"
)

// InfoRow is one label/value entry of the page header table.
type InfoRow struct {
	Label string
	Value string
}

type HeaderBlock struct {
	LogoText    string
	CompanyName string
	Info        []InfoRow
}

// ImageBlock describes the image area of an item panel. PrimaryMissing
// is set when the resolution chain produced no primary image; the
// renderer must then emit the "No Image Available" placeholder.
type ImageBlock struct {
	Primary         string
	PrimaryMissing  bool
	PrimaryWidthPct int
	Additional      []string
	OverflowCount   int
}

type Swatch struct {
	Label string
	Code  string
	Image string
}

// SwatchBlock lists the material swatches for an item. When both
// materials are absent, Swatches is empty and Placeholder carries the
// explicit "no material swatches" text.
type SwatchBlock struct {
	Swatches    []Swatch
	Placeholder string
}

// NotesBlock is never rendered empty: Markup holds stored rich text,
// Bullets holds the synthesized fallback, and Placeholder the final
// "no notes" message. Exactly one of the three is populated.
type NotesBlock struct {
	Markup      string
	Bullets     []string
	Placeholder string
}

type DetailsTable struct {
	Columns []string
	Rows    [][]string
}

// ItemPanel is the per-item content of a page: production sheets carry
// one panel, quotation pages two. Empty marks the odd-count right slot.
type ItemPanel struct {
	Empty       bool
	Placeholder string
	Images      ImageBlock
	Swatches    SwatchBlock
	Notes       NotesBlock
	Details     DetailsTable
}

type Page struct {
	Number int
	Total  int
	Kind   DocumentKind
	Header HeaderBlock
	Panels []ItemPanel
	Footer string
}

// SummaryBlock is the closing totals page content.
type SummaryBlock struct {
	TotalItems     int
	TotalCBM       float64
	TotalValue     float64
	CurrencySymbol string
	Utilization    float64
	Containers     []ContainerEstimate
	Notes          string
}

type ContainerEstimate struct {
	Label       string
	CapacityCBM float64
	Count       int
}

// Document is the fully assembled artifact description handed to a
// renderer backend.
type Document struct {
	Kind      DocumentKind
	Title     string
	Reference string
	Template  TemplateView
	Pages     []Page
	Summary   *SummaryBlock
}
