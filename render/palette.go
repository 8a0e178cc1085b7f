package render

import (
	"image/color"

	"github.com/fogleman/fauxgl"
	"github.com/soypat/torosphere"
)

var zoneHex = [...]string{
	torosphere.ZoneInnerCrown:   "#1565C0",
	torosphere.ZoneInnerKnuckle: "#2E7D32",
	torosphere.ZoneInnerFlange:  "#C62828",
	torosphere.ZoneBottomRim:    "#6A1B9A",
	torosphere.ZoneOuterFlange:  "#E65100",
	torosphere.ZoneOuterKnuckle: "#006064",
	torosphere.ZoneOuterCrown:   "#AD1457",
	torosphere.ZoneApexFlat:     "#37474F",
}

const (
	cutFaceHex    = "#CCDDE8"
	singleHex     = "#4A90D9"
	backgroundHex = "#FFFFFF"
)

// ZoneColor returns the hex color string of zone z. It is shared by the
// cross-section figure and the 3D views.
func ZoneColor(z torosphere.Zone) string {
	if z < 0 || int(z) >= len(zoneHex) {
		return "#000000"
	}
	return zoneHex[z]
}

func zoneRGBA(z torosphere.Zone) color.NRGBA {
	c := fauxgl.HexColor(ZoneColor(z))
	return color.NRGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}
