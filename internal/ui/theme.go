package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                            string
	Title, Muted, Accent, Completed, Error, Pending string
	BoxPending, BoxCompleted                        string
	CornerTL, CornerTR, CornerBL, CornerBR          string
	H, V                                            string
	SymCompleted, SymPending                        string
}

var current Theme

func init() { SetTheme("classic") }

// ThemeNames lists the accepted --theme values.
var ThemeNames = []string{"classic", "neon", "mono"}

// SetTheme switches the palette; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Completed: fgGreen, Error: fgRed, Pending: "\033[93m",
			BoxPending: "◻", BoxCompleted: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymCompleted: "✔", SymPending: "•",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Name:       "mono",
			BoxPending: "[ ]", BoxCompleted: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymCompleted: "x", SymPending: "-",
		}
	default: // classic
		current = Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Completed: fgGreen, Error: fgRed, Pending: fgYellow,
			BoxPending: "☐", BoxCompleted: "☑",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymCompleted: "✔", SymPending: "•",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
