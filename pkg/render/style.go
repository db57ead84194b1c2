package render

import "github.com/Heykelog/PenSH/pkg/model"

// RGB is an opaque 8-bit color triple shared by all backends.
type RGB struct {
	R, G, B uint8
}

// Corporate palette.
var (
	ColorPrimary   = RGB{0x00, 0x66, 0x33}
	ColorSecondary = RGB{0x00, 0xa6, 0x51}
	ColorAccent    = RGB{0xd3, 0x2f, 0x2f}
	ColorLightGray = RGB{0xf5, 0xf5, 0xf5}
	ColorDarkGray  = RGB{0x42, 0x42, 0x42}
	ColorBadgeBlue = RGB{0x1e, 0x88, 0xe5}
	ColorWhite     = RGB{0xff, 0xff, 0xff}
	ColorBlack     = RGB{0x00, 0x00, 0x00}
)

// RiskStyle is the display treatment of one risk level.
type RiskStyle struct {
	Label string
	Fill  RGB
	Text  RGB
}

var riskStyles = map[model.RiskLevel]RiskStyle{
	model.RiskCritical: {Label: "CRITICAL", Fill: RGB{0xd3, 0x2f, 0x2f}, Text: ColorWhite},
	model.RiskHigh:     {Label: "HIGH", Fill: RGB{0xdc, 0x26, 0x26}, Text: ColorWhite},
	model.RiskMedium:   {Label: "MEDIUM", Fill: RGB{0xf5, 0x7c, 0x00}, Text: ColorWhite},
	model.RiskLow:      {Label: "LOW", Fill: RGB{0x2e, 0x7d, 0x32}, Text: ColorWhite},
	model.RiskInfo:     {Label: "INFO", Fill: RGB{0x19, 0x76, 0xd2}, Text: ColorWhite},
}

// StyleFor returns the display style of a risk level. Unknown values
// degrade to the info style rather than failing a render.
func StyleFor(level model.RiskLevel) RiskStyle {
	if s, ok := riskStyles[level]; ok {
		return s
	}
	return riskStyles[model.RiskInfo]
}

// statusLabels are the Turkish severity words shown in the histogram.
var statusLabels = map[model.RiskLevel]string{
	model.RiskCritical: "Kritik",
	model.RiskHigh:     "Yüksek",
	model.RiskMedium:   "Orta",
	model.RiskLow:      "Düşük",
	model.RiskInfo:     "Bilgi",
}

// StatusLabel returns the localized severity word for a level.
func StatusLabel(level model.RiskLevel) string {
	if s, ok := statusLabels[level]; ok {
		return s
	}
	return statusLabels[model.RiskInfo]
}
