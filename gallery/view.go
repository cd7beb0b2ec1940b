package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logoStyle.Render("◈ PHOTO GROOVE"),
		"  ",
		taglineStyle.Render("your photos, filtered"),
	)
	b.WriteString(header)
	b.WriteString("\n\n")

	switch st := m.status.(type) {
	case Loading:
		loading := lipgloss.NewStyle().
			Width(m.width - 4).
			Align(lipgloss.Center).
			Padding(2, 0).
			Render(m.spinner.View() + "  Loading photos...")
		b.WriteString(loading)

	case Errored:
		b.WriteString(errorStyle.Render("Error: " + st.Message))

	case Loaded:
		b.WriteString(m.renderLoaded(st))
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return appStyle.Render(b.String())
}

func (m Model) renderLoaded(st Loaded) string {
	var b strings.Builder

	b.WriteString(surpriseStyle.Render("[ Surprise Me! ]"))
	b.WriteString("  ")
	b.WriteString(activityStyle.Render(m.activity))
	b.WriteString("\n\n")

	for _, f := range filters {
		b.WriteString(m.renderSlider(f))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderSizeChooser())
	b.WriteString("\n\n")

	thumbs := paneStyle.Width(m.paneWidth()).Render(m.renderThumbnails(st))
	canvas := canvasPaneStyle.Width(m.paneWidth()).Render(m.renderCanvas(st))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, thumbs, " ", canvas))

	return b.String()
}

func (m Model) paneWidth() int {
	w := (m.width - 8) / 2
	if w < 24 {
		w = 24
	}
	return w
}

// renderSlider draws one filter gauge: label, 11-step bar, value.
func (m Model) renderSlider(f Filter) string {
	label := sliderLabelStyle
	if f == m.activeFilter {
		label = sliderActiveLabelStyle
	}

	v := m.magnitudes[f]
	bar := sliderFilledStyle.Render(strings.Repeat("▰", v)) +
		sliderEmptyStyle.Render(strings.Repeat("▱", MaxMagnitude-v))

	return fmt.Sprintf("%s %s %2d", label.Render(f.String()), bar, v)
}

// renderSizeChooser draws the radio-style thumbnail size picker.
func (m Model) renderSizeChooser() string {
	parts := []string{sizeStyle.Render("Thumbnail size:")}
	for _, s := range thumbSizes {
		if s == m.chosenSize {
			parts = append(parts, sizeChosenStyle.Render(s.String()))
		} else {
			parts = append(parts, sizeStyle.Render(s.String()))
		}
	}
	return strings.Join(parts, "  ")
}

// renderThumbnails lists the photos, marking the selected one. The
// chosen size controls how much detail each row carries.
func (m Model) renderThumbnails(st Loaded) string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("Photos"))
	b.WriteString("\n")

	for _, p := range st.Photos {
		selected := p.URL == st.SelectedURL

		marker := "○"
		style := thumbStyle
		if selected {
			marker = "◉"
			style = thumbSelectedStyle
		}

		switch m.chosenSize {
		case Small:
			b.WriteString(fmt.Sprintf("%s %s", marker, style.Render(p.Title)))
		case Large:
			b.WriteString(fmt.Sprintf("%s %s %s\n    %s",
				marker,
				style.Render(p.Title),
				thumbMetaStyle.Render(fmt.Sprintf("[%d KB]", p.Size)),
				thumbMetaStyle.Render(m.urlPrefix+p.URL)))
		default:
			b.WriteString(fmt.Sprintf("%s %s %s",
				marker,
				style.Render(p.Title),
				thumbMetaStyle.Render(fmt.Sprintf("[%d KB]", p.Size))))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderCanvas draws the pane the external renderer's output logically
// occupies: the frame currently pushed to it.
func (m Model) renderCanvas(st Loaded) string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("pasta"))
	b.WriteString("\n")

	frame, ok := m.frame()
	if !ok {
		b.WriteString(thumbMetaStyle.Render("no selection"))
		return b.String()
	}

	b.WriteString(thumbMetaStyle.Render(frame.URL))
	b.WriteString("\n\n")
	for _, spec := range frame.Filters {
		b.WriteString(fmt.Sprintf("%s %.2f\n", sliderLabelStyle.Render(spec.Name), spec.Amount))
	}

	return b.String()
}

func (m Model) renderStatusBar() string {
	var parts []string

	if m.watching {
		parts = append(parts, watchingStyle.Render("◉ activity feed"))
	}

	if loaded, ok := m.status.(Loaded); ok {
		parts = append(parts, fmt.Sprintf("%d photos", len(loaded.Photos)))
		if photo, ok := loaded.selected(); ok {
			parts = append(parts, photo.Title)
		}
	}

	text := "Ready"
	if len(parts) > 0 {
		text = strings.Join(parts, "  •  ")
	}
	return statusBarStyle.Width(m.width - 4).Render(text)
}

func (m Model) renderHelp() string {
	return helpKeyStyle.Render("←/→") + helpStyle.Render(" photo  ") +
		helpKeyStyle.Render("s") + helpStyle.Render(" surprise  ") +
		helpKeyStyle.Render("1/2/3") + helpStyle.Render(" size  ") +
		helpKeyStyle.Render("Tab/H/R/N") + helpStyle.Render(" filter  ") +
		helpKeyStyle.Render("+/-") + helpStyle.Render(" adjust  ") +
		helpKeyStyle.Render("r") + helpStyle.Render(" refresh  ") +
		helpKeyStyle.Render("q") + helpStyle.Render(" quit")
}
