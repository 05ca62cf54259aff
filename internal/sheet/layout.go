package sheet

// ImageLayout carries the sizing decisions for one item panel.
type ImageLayout struct {
	PrimaryWidthPct int
	AuxCellWidthPct int
}

// LayoutPolicy decides image sizing for a production-sheet panel. The
// sizing is a presentation heuristic, not part of the data contract, so
// it is pluggable: quotation pages always use fixed slots.
type LayoutPolicy interface {
	ProductionImageLayout(images ResolvedImages, notes string) ImageLayout
}

// FixedLayout renders every panel with the same dominant primary width.
type FixedLayout struct{}

func (FixedLayout) ProductionImageLayout(ResolvedImages, string) ImageLayout {
	return ImageLayout{PrimaryWidthPct: 75, AuxCellWidthPct: 22}
}

// ContentSizedLayout shrinks the primary image when auxiliary images
// are present or the notes text runs long, so neither block crowds the
// other on a fixed-size page.
type ContentSizedLayout struct {
	// NotesThreshold is the character count past which notes are
	// considered long. Zero means the default of 200.
	NotesThreshold int
}

func (l ContentSizedLayout) ProductionImageLayout(images ResolvedImages, notes string) ImageLayout {
	threshold := l.NotesThreshold
	if threshold <= 0 {
		threshold = 200
	}

	layout := ImageLayout{PrimaryWidthPct: 75, AuxCellWidthPct: 30}
	if len(images.Additional) > 0 {
		layout.PrimaryWidthPct = 65
		if len(images.Additional) > 2 {
			layout.AuxCellWidthPct = 22
		}
	}
	if len(notes) > threshold {
		layout.PrimaryWidthPct -= 10
	}
	if layout.PrimaryWidthPct < 50 {
		layout.PrimaryWidthPct = 50
	}
	return layout
}
