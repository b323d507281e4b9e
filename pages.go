package tailor

import (
	"fmt"

	"github.com/gogpu/tailor/tile"
)

// Pages tiles the pattern's sheet onto printable pages.
// It returns [ErrNoPattern] for a nil pattern or an empty sheet.
func (p *Pattern) Pages(cfg tile.PageConfig) (*tile.Layout, error) {
	if p == nil || p.Bounds.Empty() {
		return nil, ErrNoPattern
	}
	l, err := tile.Tile(p.Bounds, cfg)
	if err != nil {
		return nil, fmt.Errorf("tailor: tile: %w", err)
	}
	return l, nil
}
