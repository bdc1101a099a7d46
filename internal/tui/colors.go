package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black           = lipgloss.Color("#000000")
	Red             = lipgloss.Color("#FF5353")
	Orange          = lipgloss.Color("214")
	Yellow          = lipgloss.Color("#DBBD70")
	Green           = lipgloss.Color("34")
	LightGreen      = lipgloss.Color("86")
	Blue            = lipgloss.Color("63")
	DeepBlue        = lipgloss.Color("39")
	Cyan            = lipgloss.Color("86")
	Pink            = lipgloss.Color("205")
	Grey            = lipgloss.Color("#737373")
	LightGrey       = lipgloss.Color("245")
	EvenLighterGrey = lipgloss.Color("253")
	DarkGrey        = lipgloss.Color("#606362")
	White           = lipgloss.Color("#ffffff")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	TitleColor = lipgloss.AdaptiveColor{
		Dark:  "",
		Light: "",
	}

	// HeaderBackground is the background for the grid's column header row.
	HeaderBackground = lipgloss.AdaptiveColor{
		Dark:  string(DarkGrey),
		Light: string(EvenLighterGrey),
	}

	// HoverBorderColor highlights a column border when the pointer is within
	// its resize zone.
	HoverBorderColor = Orange
	// PreviewBorderColor marks the proposed border position during a
	// deferred-commit drag.
	PreviewBorderColor = Pink
	// ActiveBorderColor marks the border of the column being dragged.
	ActiveBorderColor = DeepBlue

	BorderColor = lipgloss.AdaptiveColor{
		Dark:  "244",
		Light: "250",
	}
)
