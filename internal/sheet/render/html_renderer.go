package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

const documentHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Doc.Title}} {{.Doc.Reference}}</title>
  <style>
    :root {
      --primary: {{cssValue .Doc.Template.PrimaryColor}};
      --accent: {{cssValue .Doc.Template.AccentColor}};
      --heading-font: {{cssValue .Doc.Template.FontFamily}}, serif;
      --body-font: {{cssValue .Doc.Template.BodyFont}}, sans-serif;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: var(--body-font);
      color: #1f2933;
      background: #ffffff;
      -webkit-print-color-adjust: exact;
      print-color-adjust: exact;
    }
    @page { size: A4; margin: {{.Doc.Template.PageMarginMM}}mm; }
    .page {
      page-break-after: always;
      min-height: 255mm;
      display: flex;
      flex-direction: column;
      padding: 4mm 0;
    }
    .page:last-of-type { page-break-after: auto; }
    .sheet-header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid var(--primary);
      padding-bottom: 12px;
      margin-bottom: 14px;
      min-height: {{.Doc.Template.HeaderHeightMM}}mm;
    }
    .logo { font-family: var(--heading-font); font-size: 28px; font-weight: 700; color: var(--primary); }
    .logo-subtitle { font-size: 11px; color: #6b7280; font-style: italic; }
    table.info { border-collapse: collapse; font-size: 11px; }
    table.info td { border: 1px solid #d1d5db; padding: 3px 8px; }
    table.info td.label { background: #f3f1ec; font-weight: 600; }
    .panels { flex: 1; display: flex; gap: 14px; }
    .panels.paired { flex-direction: column; }
    .panel { flex: 1; display: flex; flex-direction: column; gap: 10px; }
    .panel.empty-slot {
      border: 1px dashed #d1d5db;
      color: #9ca3af;
      display: flex;
      align-items: center;
      justify-content: center;
      font-size: 13px;
    }
    .image-row { display: flex; gap: 10px; align-items: flex-start; }
    .primary-image img { max-width: 100%; max-height: 95mm; object-fit: contain; border: 1px solid #e5e7eb; }
    .no-image {
      height: 60mm;
      border: 1px solid #e5e7eb;
      background: #f3f1ec;
      color: #6b7280;
      display: flex;
      align-items: center;
      justify-content: center;
      font-size: 13px;
    }
    .aux-strip { display: flex; flex-wrap: wrap; gap: 6px; }
    .aux-strip img { object-fit: cover; border: 1px solid #e5e7eb; height: 22mm; }
    .aux-more {
      height: 22mm;
      min-width: 22mm;
      border: 1px solid #e5e7eb;
      background: #f3f1ec;
      color: #6b7280;
      display: flex;
      align-items: center;
      justify-content: center;
      font-size: 11px;
      padding: 0 6px;
    }
    .swatches { display: flex; gap: 10px; }
    .swatch { border: 1px solid #e5e7eb; padding: 6px; font-size: 10px; text-align: center; }
    .swatch img { width: 18mm; height: 18mm; object-fit: cover; display: block; margin-bottom: 4px; }
    .swatch-placeholder { font-size: 11px; color: #9ca3af; border: 1px dashed #e5e7eb; padding: 8px; }
    .notes { border: 1px solid #e5e7eb; background: #faf9f6; padding: 10px; font-size: 11px; line-height: 1.5; }
    .notes h4 {
      margin: 0 0 6px;
      font-size: 10px;
      letter-spacing: 0.08em;
      text-transform: uppercase;
      color: var(--primary);
    }
    .notes ul { margin: 0; padding-left: 16px; }
    .notes .placeholder { color: #9ca3af; }
    table.details { width: 100%; border-collapse: collapse; font-size: 10px; margin-top: auto; }
    table.details th { background: var(--primary); color: #ffffff; padding: 6px 6px; text-align: left; }
    table.details td { border: 1px solid #d1d5db; padding: 6px 6px; }
    .sheet-footer {
      margin-top: 10px;
      padding-top: 6px;
      border-top: 1px solid #e5e7eb;
      text-align: center;
      font-size: 10px;
      color: #6b7280;
      min-height: {{.Doc.Template.FooterHeightMM}}mm;
    }
    .summary { background: #f3f1ec; padding: 16px; margin-top: 14px; }
    .summary h3 { margin: 0 0 10px; color: var(--primary); font-family: var(--heading-font); }
    .summary-grid { display: flex; gap: 24px; }
    .summary-cell { text-align: center; }
    .summary-label { font-size: 11px; color: #6b7280; }
    .summary-value { font-size: 18px; font-weight: 700; color: var(--primary); }
    .containers { display: flex; gap: 12px; margin-top: 12px; font-size: 11px; }
    .container-cell { background: #ffffff; border: 1px solid #e5e7eb; padding: 8px 12px; text-align: center; }
    .print-warning {
      background: #fef3c7;
      border: 1px solid #f59e0b;
      color: #92400e;
      padding: 10px 14px;
      font-size: 13px;
      margin-bottom: 12px;
    }
    @media print { .print-warning { display: none; } }
  </style>
</head>
<body>
  <div id="print-warning" class="print-warning" hidden>
    Printing could not start automatically. Use your browser's Print menu to save this document as PDF.
  </div>

  {{range .Doc.Pages}}
  <section class="page">
    <header class="sheet-header">
      <div>
        <div class="logo">{{.Header.LogoText}}</div>
        <div class="logo-subtitle">{{.Header.CompanyName}}</div>
      </div>
      <table class="info">
        <tbody>
          {{range .Header.Info}}
          <tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
          {{end}}
        </tbody>
      </table>
    </header>

    <div class="panels{{if isQuotation .Kind}} paired{{end}}">
      {{range .Panels}}
        {{if .Empty}}
        <div class="panel empty-slot">{{.Placeholder}}</div>
        {{else}}
        <div class="panel">
          <div class="image-row">
            <div class="primary-image" style="width: {{.Images.PrimaryWidthPct}}%">
              {{if .Images.PrimaryMissing}}
              <div class="no-image">No Image Available</div>
              {{else}}
              <img src="{{imgsrc .Images.Primary}}" alt="product" />
              {{end}}
            </div>
            {{if or .Images.Additional .Images.OverflowCount}}
            <div class="aux-strip">
              {{range .Images.Additional}}<img src="{{imgsrc .}}" alt="additional" />{{end}}
              {{if .Images.OverflowCount}}<div class="aux-more">+{{.Images.OverflowCount}} more</div>{{end}}
            </div>
            {{end}}
          </div>

          {{if or .Swatches.Swatches .Swatches.Placeholder}}
          <div class="swatches">
            {{if .Swatches.Placeholder}}
            <div class="swatch-placeholder">{{.Swatches.Placeholder}}</div>
            {{else}}
            {{range .Swatches.Swatches}}
            <div class="swatch">
              {{if .Image}}<img src="{{imgsrc .Image}}" alt="{{.Label}}" />{{end}}
              <div><strong>{{.Label}}</strong>{{if .Code}} {{.Code}}{{end}}</div>
            </div>
            {{end}}
            {{end}}
          </div>
          {{end}}

          <div class="notes">
            <h4>Notes</h4>
            {{if .Notes.Markup}}{{safeHTML .Notes.Markup}}
            {{else if .Notes.Bullets}}
            <ul>{{range .Notes.Bullets}}<li>{{.}}</li>{{end}}</ul>
            {{else}}<span class="placeholder">{{.Notes.Placeholder}}</span>{{end}}
          </div>

          <table class="details">
            <thead>
              <tr>{{range .Details.Columns}}<th>{{.}}</th>{{end}}</tr>
            </thead>
            <tbody>
              {{range .Details.Rows}}
              <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
              {{end}}
            </tbody>
          </table>
        </div>
        {{end}}
      {{end}}
    </div>

    <footer class="sheet-footer">{{.Footer}}</footer>
  </section>
  {{end}}

  {{with .Doc.Summary}}
  <section class="page">
    <div class="summary">
      <h3>Summary</h3>
      <div class="summary-grid">
        <div class="summary-cell">
          <div class="summary-label">Total Items</div>
          <div class="summary-value">{{.TotalItems}} Pcs</div>
        </div>
        <div class="summary-cell">
          <div class="summary-label">Total CBM</div>
          <div class="summary-value">{{formatCBM .TotalCBM}} m&sup3;</div>
        </div>
        {{if .CurrencySymbol}}
        <div class="summary-cell">
          <div class="summary-label">Total Value</div>
          <div class="summary-value">{{.CurrencySymbol}}{{formatMoney .TotalValue}}</div>
        </div>
        {{end}}
        <div class="summary-cell">
          <div class="summary-label">Container Utilization</div>
          <div class="summary-value">{{formatPercent .Utilization}}</div>
        </div>
      </div>
      <div class="containers">
        {{range .Containers}}
        <div class="container-cell">{{.Label}} (~{{formatCBM .CapacityCBM}} CBM): {{.Count}}</div>
        {{end}}
      </div>
      {{if .Notes}}<div class="notes" style="margin-top:12px"><h4>Notes</h4>{{.Notes}}</div>{{end}}
    </div>
  </section>
  {{end}}

  {{if .AutoPrint}}
  <script>
    (function () {
      var printed = false;
      function firePrint() {
        if (printed) { return; }
        printed = true;
        setTimeout(function () {
          try {
            window.print();
          } catch (err) {
            var warning = document.getElementById('print-warning');
            if (warning) { warning.hidden = false; }
          }
        }, 150);
      }

      var images = document.images;
      if (images.length === 0) {
        setTimeout(firePrint, 300);
        return;
      }
      var remaining = images.length;
      function settle() {
        remaining -= 1;
        if (remaining === 0) { firePrint(); }
      }
      for (var i = 0; i < images.length; i++) {
        if (images[i].complete) {
          settle();
        } else {
          images[i].addEventListener('load', settle);
          images[i].addEventListener('error', settle);
        }
      }
      setTimeout(firePrint, 4000);
    })();
  </script>
  {{end}}
</body>
</html>
`

var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	fontFamilyFilter = regexp.MustCompile(`^[A-Za-z0-9 \-,]+$`)
)

// HTMLRenderer emits the printable document. With AutoPrint set, the
// page carries a bootstrap script that waits for every embedded image
// to load or error before invoking the print dialog, with a bounded
// fallback when images hang and a settle delay when there are none.
type HTMLRenderer struct {
	tpl       *template.Template
	autoPrint bool
}

type htmlData struct {
	Doc       domain.Document
	AutoPrint bool
}

func NewHTMLRenderer(autoPrint bool) *HTMLRenderer {
	funcs := template.FuncMap{
		"safeHTML":      func(s string) template.HTML { return template.HTML(s) },
		"cssValue":      func(s string) template.CSS { return template.CSS(s) },
		"imgsrc":        imageSrc,
		"formatCBM":     func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"formatMoney":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"formatPercent": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"isQuotation":   func(k domain.DocumentKind) bool { return k == domain.KindQuotation },
	}
	return &HTMLRenderer{
		tpl:       template.Must(template.New("document").Funcs(funcs).Parse(documentHTMLTemplate)),
		autoPrint: autoPrint,
	}
}

func (r *HTMLRenderer) Render(_ context.Context, doc domain.Document) (Artifact, error) {
	doc.Template = sanitizeTemplate(doc.Template)

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, htmlData{Doc: doc, AutoPrint: r.autoPrint}); err != nil {
		return Artifact{}, err
	}
	return Artifact{
		ContentType: "text/html; charset=utf-8",
		Filename:    artifactName(doc, ".html"),
		Bytes:       buf.Bytes(),
	}, nil
}

func sanitizeTemplate(t domain.TemplateView) domain.TemplateView {
	t.PrimaryColor = sanitizeColor(t.PrimaryColor, "#3d2c1e")
	t.AccentColor = sanitizeColor(t.AccentColor, "#d4622e")
	t.FontFamily = sanitizeFont(t.FontFamily, "Playfair Display")
	t.BodyFont = sanitizeFont(t.BodyFont, "Manrope")
	if t.LogoText == "" {
		t.LogoText = "JAIPUR"
	}
	if t.CompanyName == "" {
		t.CompanyName = "A fine wood furniture company"
	}
	if t.PageMarginMM <= 0 {
		t.PageMarginMM = 15
	}
	if t.HeaderHeightMM <= 0 {
		t.HeaderHeightMM = 25
	}
	if t.FooterHeightMM <= 0 {
		t.FooterHeightMM = 20
	}
	return t
}

// imageSrc admits the opaque image references the engine receives:
// http(s) URLs, embedded data images and relative paths. Anything else
// renders as an empty source, which the placeholder logic upstream has
// already accounted for.
func imageSrc(s string) template.URL {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(trimmed, "http://"),
		strings.HasPrefix(trimmed, "https://"),
		strings.HasPrefix(trimmed, "data:image/"),
		strings.HasPrefix(trimmed, "/"):
		return template.URL(trimmed)
	}
	return ""
}

func sanitizeColor(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if hexColorPattern.MatchString(trimmed) {
		return trimmed
	}
	return fallback
}

func sanitizeFont(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed != "" && fontFamilyFilter.MatchString(trimmed) {
		return trimmed
	}
	return fallback
}
