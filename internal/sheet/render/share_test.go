package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

func TestShareMessage(t *testing.T) {
	order := domain.Order{
		SalesOrderRef: "SO-1001",
		BuyerName:     "Oak & Co",
		EntryDate:     "2026-08-01",
		Items: []domain.LineItem{
			{ProductCode: "CH-01", Description: "Club chair", Quantity: 2},
			{ProductCode: "TB-02", Description: "Side table"},
		},
	}
	tmpl := domain.TemplateView{LogoText: "JAIPUR"}

	msg := ShareMessage(order, tmpl, "https://sheets.example.com/orders/1/export/pdf")

	assert.True(t, strings.HasPrefix(msg, "JAIPUR Production Sheet\n"))
	assert.Contains(t, msg, "Order: SO-1001")
	assert.Contains(t, msg, "Buyer: Oak & Co")
	assert.Contains(t, msg, "Items: 2")
	assert.Contains(t, msg, "- CH-01 Club chair x2")
	// Zero quantity is shown as one, matching the document totals.
	assert.Contains(t, msg, "- TB-02 Side table x1")
	assert.True(t, strings.HasSuffix(msg, "Download PDF: https://sheets.example.com/orders/1/export/pdf"))
}

func TestShareMessage_MissingFields(t *testing.T) {
	msg := ShareMessage(domain.Order{}, domain.TemplateView{LogoText: "JAIPUR"}, "link")
	assert.Contains(t, msg, "Order: N/A")
	assert.Contains(t, msg, "Buyer: N/A")
	assert.Contains(t, msg, "Items: 0")
}

func TestWhatsAppURL_EscapesMessage(t *testing.T) {
	url := WhatsAppURL("JAIPUR Production Sheet\nOrder: SO-1001 & more")
	assert.True(t, strings.HasPrefix(url, "https://wa.me/?text="))
	assert.Contains(t, url, "%0A")
	assert.Contains(t, url, "%26")
	assert.NotContains(t, url, " ")
}
