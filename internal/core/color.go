package core

import "image/color"

// Palette colors used by the compositor chrome and reward overlays.
var (
	ColorSurface     = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	ColorPlaceholder = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	ColorBorder      = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	ColorLabel       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorOutline     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ColorDim         = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x80}

	ColorRewardBigPositive   = color.RGBA{R: 0x00, G: 0xff, B: 0x66, A: 0xff}
	ColorRewardSmallPositive = color.RGBA{R: 0xa8, G: 0xff, B: 0x60, A: 0xff}
	ColorRewardSmallNegative = color.RGBA{R: 0xff, G: 0xe0, B: 0x66, A: 0xff}
	ColorRewardMedNegative   = color.RGBA{R: 0xff, G: 0x99, B: 0x33, A: 0xff}
	ColorRewardBigNegative   = color.RGBA{R: 0xff, G: 0x33, B: 0x33, A: 0xff}

	ColorCumulativePositive = color.RGBA{R: 0x66, G: 0xdd, B: 0xff, A: 0xff}
	ColorCumulativeNegative = color.RGBA{R: 0xff, G: 0x66, B: 0x99, A: 0xff}
)
