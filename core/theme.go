package core

// Theme names a fixed color palette. Only the PDF renderer consumes it;
// the DOCX renderer leaves styling to the format's native defaults.
type Theme int

const (
	ThemeDefault Theme = iota
	ThemeModern
	ThemeMinimal
)

// ParseTheme resolves a theme name. Unknown names fall back to the default
// theme rather than failing.
func ParseTheme(name string) Theme {
	switch name {
	case "modern":
		return ThemeModern
	case "minimal":
		return ThemeMinimal
	default:
		return ThemeDefault
	}
}

func (t Theme) String() string {
	switch t {
	case ThemeModern:
		return "modern"
	case ThemeMinimal:
		return "minimal"
	default:
		return "default"
	}
}

// Palette holds the color tokens for one theme as "#rrggbb" strings.
type Palette struct {
	Title   string
	Heading string
	Body    string
	Accent  string
}

// Colors returns the palette for the theme.
func (t Theme) Colors() Palette {
	switch t {
	case ThemeModern:
		return Palette{
			Title:   "#111827",
			Heading: "#374151",
			Body:    "#1f2937",
			Accent:  "#3b82f6",
		}
	case ThemeMinimal:
		return Palette{
			Title:   "#000000",
			Heading: "#000000",
			Body:    "#222222",
			Accent:  "#666666",
		}
	default:
		return Palette{
			Title:   "#1a1a1a",
			Heading: "#1a1a1a",
			Body:    "#333333",
			Accent:  "#3b82f6",
		}
	}
}
