package gallery

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	purple    = lipgloss.Color("#7C3AED")
	cyan      = lipgloss.Color("#06B6D4")
	green     = lipgloss.Color("#10B981")
	amber     = lipgloss.Color("#F59E0B")
	red       = lipgloss.Color("#EF4444")
	gray      = lipgloss.Color("#6B7280")
	darkGray  = lipgloss.Color("#374151")
	lightGray = lipgloss.Color("#9CA3AF")
	white     = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(purple)

	taglineStyle = lipgloss.NewStyle().
			Foreground(gray).
			Italic(true)

	activityStyle = lipgloss.NewStyle().
			Foreground(cyan)

	errorStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(darkGray)

	canvasPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purple)

	paneTitleStyle = lipgloss.NewStyle().
			Foreground(white).
			Background(purple).
			Padding(0, 1).
			Bold(true)

	// Slider styles
	sliderLabelStyle = lipgloss.NewStyle().
				Foreground(lightGray).
				Width(7)

	sliderActiveLabelStyle = lipgloss.NewStyle().
				Foreground(purple).
				Bold(true).
				Width(7)

	sliderFilledStyle = lipgloss.NewStyle().
				Foreground(purple)

	sliderEmptyStyle = lipgloss.NewStyle().
				Foreground(darkGray)

	// Size chooser
	sizeStyle = lipgloss.NewStyle().
			Foreground(lightGray)

	sizeChosenStyle = lipgloss.NewStyle().
			Foreground(white).
			Background(purple).
			Padding(0, 1).
			Bold(true)

	// Thumbnail list
	thumbStyle = lipgloss.NewStyle().
			Foreground(lightGray)

	thumbSelectedStyle = lipgloss.NewStyle().
				Foreground(purple).
				Bold(true)

	thumbMetaStyle = lipgloss.NewStyle().
			Foreground(gray)

	surpriseStyle = lipgloss.NewStyle().
			Foreground(amber).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(white).
			Background(darkGray).
			Padding(0, 1)

	watchingStyle = lipgloss.NewStyle().
			Foreground(green)

	helpStyle = lipgloss.NewStyle().
			Foreground(gray)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(cyan)
)
