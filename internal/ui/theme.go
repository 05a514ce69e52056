package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Marker string
	CornerTL, CornerTR, CornerBL, CornerBR       string
	H, V                                         string
	SymOK, SymFail, SymCurrent                   string
	GaugeFull, GaugeEmpty                        string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Marker: "\033[93m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymOK: symCheck, SymFail: symCross, SymCurrent: "▶",
			GaugeFull: "█", GaugeEmpty: "░",
		}
	case "mono":
		disableColor = true
		current = Theme{
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymOK: "ok", SymFail: "error:", SymCurrent: ">",
			GaugeFull: "#", GaugeEmpty: ".",
		}
	default: // classic
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Marker: fgYellow,
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymOK: symCheck, SymFail: symCross, SymCurrent: "•",
			GaugeFull: "█", GaugeEmpty: "░",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
