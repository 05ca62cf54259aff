package sheet

import "github.com/jaipurwood/prodsheet/internal/sheet/domain"

// Pagination is a pure function of item count and order: production
// sheets get one page per line item, quotations group items into
// consecutive left/right pairs. Items never split across pages and no
// content-based re-flow happens.

// ProductionPageCount equals the item count.
func ProductionPageCount(itemCount int) int {
	if itemCount < 0 {
		return 0
	}
	return itemCount
}

// QuotationPageCount is ceil(itemCount / 2).
func QuotationPageCount(itemCount int) int {
	if itemCount <= 0 {
		return 0
	}
	return (itemCount + 1) / 2
}

// ItemPair holds the two slots of a quotation page. Right is nil on the
// final page of an odd-count quotation; the assembler renders it as an
// explicit empty slot.
type ItemPair struct {
	Left  *domain.QuotationItem
	Right *domain.QuotationItem
}

// PairQuotationItems groups items into consecutive pairs in input order.
func PairQuotationItems(items []domain.QuotationItem) []ItemPair {
	pairs := make([]ItemPair, 0, QuotationPageCount(len(items)))
	for i := 0; i < len(items); i += 2 {
		pair := ItemPair{Left: &items[i]}
		if i+1 < len(items) {
			pair.Right = &items[i+1]
		}
		pairs = append(pairs, pair)
	}
	return pairs
}
