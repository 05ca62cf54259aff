package sheet

import (
	"go.uber.org/fx"

	"github.com/jaipurwood/prodsheet/internal/sheet/render"
)

var Module = fx.Module("sheet.engine",
	fx.Provide(func() LayoutPolicy { return ContentSizedLayout{} }),
	fx.Provide(NewAssembler),
	fx.Provide(render.NewPDFRenderer),
	// The HTML backend serves the browser print path, so the document
	// triggers the print dialog as soon as its images settle.
	fx.Provide(func() *render.HTMLRenderer { return render.NewHTMLRenderer(true) }),
)
