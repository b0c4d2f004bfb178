package design

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Design System Constants
const (
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4

	// Component dimensions
	MinPanelHeight = 3
	MinPanelWidth  = 20

	// BannerMinWidth is the narrowest the top banner renders without truncating
	// the maneuver column.
	BannerMinWidth = 32
)

// ColorMode selects how colors are resolved.
type ColorMode string

const (
	ColorModeAuto  ColorMode = "auto"
	ColorModeDark  ColorMode = "dark"
	ColorModeLight ColorMode = "light"
	ColorModeASCII ColorMode = "ascii"
)

// ParseColorMode accepts config and flag values; unknown values mean auto.
func ParseColorMode(s string) ColorMode {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case ColorModeDark:
		return ColorModeDark
	case ColorModeLight:
		return ColorModeLight
	case ColorModeASCII:
		return ColorModeASCII
	default:
		return ColorModeAuto
	}
}

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}

	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#EEF2FF",
		Dark:  "#312E81",
	}
	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}

	// Banner colors
	ColorBanner = lipgloss.AdaptiveColor{
		Light: "#1F2937",
		Dark:  "#111827",
	}
	ColorBannerPreview = lipgloss.AdaptiveColor{
		Light: "#374151",
		Dark:  "#1E293B",
	}
	ColorBannerText = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#F9FAFB",
	}
	ColorLaneInvalid = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#4B5563",
	}
	ColorMap = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#161B22",
	}
)

// Theme bundles the styles of every HUD panel. It is built once and passed to
// panels explicitly.
type Theme struct {
	Mode ColorMode
	// ASCII swaps glyph icons for plain characters.
	ASCII bool

	Banner        lipgloss.Style
	BannerPreview lipgloss.Style
	TopPadding    lipgloss.Style
	PrimaryText   lipgloss.Style
	SecondaryText lipgloss.Style
	Distance      lipgloss.Style
	ManeuverIcon  lipgloss.Style
	StepIndicator lipgloss.Style

	Lanes       lipgloss.Style
	LaneValid   lipgloss.Style
	LaneInvalid lipgloss.Style

	NextManeuver lipgloss.Style
	Status       lipgloss.Style
	Spinner      lipgloss.Style

	StepsContainer  lipgloss.Style
	StepRow         lipgloss.Style
	StepRowSelected lipgloss.Style
	StepDistance    lipgloss.Style
	LegHeader       lipgloss.Style

	Faint lipgloss.Style
	Map   lipgloss.Style
}

// NewTheme builds the HUD theme for a color mode.
func NewTheme(mode ColorMode) *Theme {
	banner := lipgloss.NewStyle().
		Background(ColorBanner).
		Foreground(ColorBannerText).
		Padding(0, SpaceSM)

	t := &Theme{
		Mode:  mode,
		ASCII: mode == ColorModeASCII,

		Banner:        banner,
		BannerPreview: banner.Background(ColorBannerPreview),
		TopPadding:    lipgloss.NewStyle().Background(ColorBanner).Height(1),
		PrimaryText:   lipgloss.NewStyle().Bold(true).Foreground(ColorBannerText),
		SecondaryText: lipgloss.NewStyle().Foreground(ColorTextSecondary),
		Distance:      lipgloss.NewStyle().Bold(true).Foreground(ColorInfo),
		ManeuverIcon:  lipgloss.NewStyle().Bold(true).Foreground(ColorBannerText).Width(4).Align(lipgloss.Center),
		StepIndicator: lipgloss.NewStyle().Foreground(ColorTextMuted),

		Lanes:       lipgloss.NewStyle().Background(ColorSurfaceAlt).Padding(0, SpaceSM),
		LaneValid:   lipgloss.NewStyle().Bold(true).Foreground(ColorText),
		LaneInvalid: lipgloss.NewStyle().Foreground(ColorLaneInvalid),

		NextManeuver: lipgloss.NewStyle().Background(ColorSurfaceAlt).Foreground(ColorText).Padding(0, SpaceSM),
		Status:       lipgloss.NewStyle().Background(ColorHighlight).Foreground(ColorText).Padding(0, SpaceSM),
		Spinner:      lipgloss.NewStyle().Foreground(ColorPrimary),

		StepsContainer:  lipgloss.NewStyle().Background(ColorSurface).Foreground(ColorText),
		StepRow:         lipgloss.NewStyle().PaddingLeft(SpaceSM),
		StepRowSelected: lipgloss.NewStyle().PaddingLeft(SpaceSM).Foreground(ColorPrimary).Bold(true),
		StepDistance:    lipgloss.NewStyle().Foreground(ColorTextSecondary),
		LegHeader:       lipgloss.NewStyle().PaddingLeft(SpaceXS).Foreground(ColorTextMuted).Italic(true),

		Faint: lipgloss.NewStyle().Faint(true),
		Map:   lipgloss.NewStyle().Background(ColorMap).Foreground(ColorTextMuted),
	}
	return t
}

// Base text styles used by the host chrome.
var (
	TextStyle          = lipgloss.NewStyle().Foreground(ColorText)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorTextSecondary)
	TextSuccessStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	TextWarningStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	TextInfoStyle      = lipgloss.NewStyle().Foreground(ColorInfo)
)

// Component Styles - Reusable component definitions
var (
	PanelStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			MarginBottom(SpaceXS)
)

// Overlay styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorBackgroundOverlay).
					Foreground(ColorText).
					Padding(1, 2)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorBackgroundOverlay).
			Foreground(ColorText).
			Padding(1, 2)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// Quit key style
var QuitKeyStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

// Layout Helpers
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

// Initialize applies the color mode to lipgloss. ASCII strips all color.
func Initialize(mode ColorMode) {
	switch mode {
	case ColorModeDark:
		lipgloss.SetHasDarkBackground(true)
	case ColorModeLight:
		lipgloss.SetHasDarkBackground(false)
	case ColorModeASCII:
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	}
}
