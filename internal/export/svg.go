// Package export writes run artifacts: SVG trajectory renderings and
// per-run dumps of path histories.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/horizon/internal/sim"
)

const (
	backgroundColor = "#0a0a0a"
	particleColor   = "#00ffff"
	photonColor     = "#ffee00"
	horizonColor    = "#ff4444"
)

// SnapshotToSVG renders every particle's full path plus the body and
// its horizon circle into an SVG. The viewport is square, centered on
// the body, sized to fit all paths with padding.
func SnapshotToSVG(s sim.Snapshot, sizePx int) string {
	// Half-extent of the world viewport around the body.
	limit := s.Rs * 4
	for _, p := range s.Particles {
		for _, pt := range p.Path {
			dx := pt.X() - s.Body.X()
			dy := pt.Y() - s.Body.Y()
			if v := maxAbs(dx, dy); v > limit {
				limit = v
			}
		}
	}
	limit *= 1.1

	scale := float64(sizePx) / (2 * limit)
	toPx := func(x, y float64) (float64, float64) {
		// SVG y grows downward.
		px := (x - s.Body.X() + limit) * scale
		py := (limit - (y - s.Body.Y())) * scale
		return px, py
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, sizePx, sizePx, sizePx, sizePx, backgroundColor))

	for _, p := range s.Particles {
		if len(p.Path) < 2 {
			continue
		}
		color := particleColor
		if p.Photon {
			color = photonColor
		}

		sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1" stroke-opacity="0.7" points="`, color))
		for i, pt := range p.Path {
			if i > 0 {
				sb.WriteByte(' ')
			}
			px, py := toPx(pt.X(), pt.Y())
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		}
		sb.WriteString("\"/>\n")

		px, py := toPx(p.Pos.X(), p.Pos.Y())
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5" fill="%s"/>
`, px, py, color))
	}

	bx, by := toPx(s.Body.X(), s.Body.Y())
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#000000"/>
<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="1.5"/>
</svg>`, bx, by, s.Rs*scale, bx, by, s.Rs*scale, horizonColor))

	return sb.String()
}

func maxAbs(a, b float64) float64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
