package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

// ShareMessage composes the prefilled hand-off text for an order:
// reference, buyer, date, item count, a one-line summary per item and
// the download link. Delivery is the host environment's responsibility.
func ShareMessage(order domain.Order, tmpl domain.TemplateView, link string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Production Sheet\n", tmpl.LogoText)
	fmt.Fprintf(&b, "Order: %s\n", valueOr(order.SalesOrderRef, "N/A"))
	fmt.Fprintf(&b, "Buyer: %s\n", valueOr(order.BuyerName, "N/A"))
	fmt.Fprintf(&b, "Date: %s\n", valueOr(order.EntryDate, "N/A"))
	fmt.Fprintf(&b, "Items: %d\n", len(order.Items))
	for _, item := range order.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		fmt.Fprintf(&b, "- %s %s x%d\n", valueOr(item.ProductCode, "?"), valueOr(item.Description, ""), qty)
	}
	fmt.Fprintf(&b, "\nDownload PDF: %s", link)
	return b.String()
}

// WhatsAppURL wraps a share message in the wa.me prefilled-link
// protocol.
func WhatsAppURL(message string) string {
	return "https://wa.me/?text=" + url.QueryEscape(message)
}

func valueOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}
