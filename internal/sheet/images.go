package sheet

import "github.com/jaipurwood/prodsheet/internal/sheet/domain"

// MaxAdditionalShown caps how many auxiliary images are individually
// rendered on a page; anything beyond it collapses into a "+N more"
// indicator.
const MaxAdditionalShown = 4

// ResolvedImages is the outcome of the primary-image resolution chain.
type ResolvedImages struct {
	Primary    string
	Additional []string
}

// ResolveImages picks the display image for a line item and the
// complement set. The chain is: explicit product image first, then the
// head of the auxiliary list, then nothing. The auxiliary list is never
// silently truncated when a product image exists.
func ResolveImages(productImage string, images []string) ResolvedImages {
	if productImage != "" {
		return ResolvedImages{Primary: productImage, Additional: images}
	}
	if len(images) > 0 {
		return ResolvedImages{Primary: images[0], Additional: images[1:]}
	}
	return ResolvedImages{}
}

// ResolveItemImages resolves against a line-item view.
func ResolveItemImages(item domain.LineItem) ResolvedImages {
	return ResolveImages(item.ProductImage, item.Images)
}

// Visible returns the auxiliary images that are individually rendered.
func (r ResolvedImages) Visible() []string {
	if len(r.Additional) > MaxAdditionalShown {
		return r.Additional[:MaxAdditionalShown]
	}
	return r.Additional
}

// Overflow returns N for the "+N more" indicator, 0 when everything fits.
func (r ResolvedImages) Overflow() int {
	if n := len(r.Additional) - MaxAdditionalShown; n > 0 {
		return n
	}
	return 0
}
