package domain

import (
	sheetdomain "github.com/jaipurwood/prodsheet/internal/sheet/domain"
)

// RenderView maps a stored order into the read-only view the layout
// engine consumes.
func (o Order) RenderView() sheetdomain.Order {
	items := make([]sheetdomain.LineItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, item.renderView())
	}
	return sheetdomain.Order{
		SalesOrderRef:     o.SalesOrderRef,
		BuyerPORef:        o.BuyerPORef,
		BuyerName:         o.BuyerName,
		EntryDate:         o.EntryDate,
		FactoryInformDate: o.FactoryInformDate,
		Factory:           o.Factory,
		Status:            o.Status,
		Items:             items,
	}
}

func (i OrderItem) renderView() sheetdomain.LineItem {
	return sheetdomain.LineItem{
		ID:                i.ItemID,
		ProductCode:       i.ProductCode,
		Description:       i.Description,
		Category:          i.Category,
		Quantity:          i.Quantity,
		HeightCM:          i.HeightCM,
		DepthCM:           i.DepthCM,
		WidthCM:           i.WidthCM,
		CBM:               i.CBM,
		CBMAuto:           i.CBMAuto,
		InHouseProduction: i.InHouseProduction,
		MachineHall:       i.MachineHall,
		LeatherCode:       i.LeatherCode,
		LeatherImage:      i.LeatherImage,
		FinishCode:        i.FinishCode,
		FinishImage:       i.FinishImage,
		ColorNotes:        i.ColorNotes,
		LegColor:          i.LegColor,
		WoodFinish:        i.WoodFinish,
		Notes:             i.Notes,
		ProductImage:      i.ProductImage,
		Images:            sheetdomain.DecodeImageList(i.Images),
	}
}
