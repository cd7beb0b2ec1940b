// Package gallery implements the photo gallery TUI: a single
// bubbletea model owns all state, typed messages drive every
// transition, and external boundaries (photo fetch, renderer frames,
// activity feed) re-enter the loop as messages.
package gallery

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grooveapp/groove/activity"
	"github.com/grooveapp/groove/client"
	"github.com/grooveapp/groove/pick"
	"github.com/grooveapp/groove/render"
)

// Model is the gallery state.
type Model struct {
	// Dimensions
	width  int
	height int

	spinner spinner.Model

	// Gallery state
	status       Status
	activity     string
	chosenSize   ThumbSize
	magnitudes   [len(filters)]int
	activeFilter Filter

	// Boundaries
	client        *client.Client
	urlPrefix     string
	bridge        *render.Bridge
	notifications <-chan activity.Notification
	picker        *pick.Picker
	watching      bool
}

// NewModel creates the gallery model. bridge and notifications may be
// nil when the renderer or the activity feed is not wired up.
func NewModel(c *client.Client, bridge *render.Bridge, notifications <-chan activity.Notification, picker *pick.Picker, pastaVersion float64) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(purple)

	m := Model{
		spinner:       s,
		status:        Loading{},
		activity:      fmt.Sprintf("Initializing Pasta v%v", pastaVersion),
		chosenSize:    Medium,
		client:        c,
		urlPrefix:     c.URLPrefix(),
		bridge:        bridge,
		notifications: notifications,
		picker:        picker,
		watching:      notifications != nil,
	}
	for i := range m.magnitudes {
		m.magnitudes[i] = 5
	}
	return m
}

// Messages

// PhotosFetchedMsg carries the result of the photo-list fetch.
type PhotosFetchedMsg struct {
	Photos []client.Photo
	Err    error
}

// PhotoClickedMsg selects the photo with the given URL.
type PhotoClickedMsg struct {
	URL string
}

// SizeClickedMsg chooses a thumbnail size.
type SizeClickedMsg struct {
	Size ThumbSize
}

// SurpriseMeMsg requests a random photo selection.
type SurpriseMeMsg struct{}

// RandomPhotoChosenMsg resolves a surprise-me request.
type RandomPhotoChosenMsg struct {
	Photo client.Photo
}

// SlidMsg sets one filter's knob value.
type SlidMsg struct {
	Filter Filter
	Value  int
}

// ActivityMsg replaces the activity line.
type ActivityMsg struct {
	Text string
}

// slideEventMsg wraps a raw slider event from the renderer channel.
type slideEventMsg struct {
	event render.SlideEvent
}

// Init kicks off the initial fetch and the boundary listeners.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchPhotos(),
		m.listenForSlides(),
		m.listenForActivity(),
	)
}

// Commands

func (m Model) fetchPhotos() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		photos, err := c.ListPhotos()
		return PhotosFetchedMsg{Photos: photos, Err: err}
	}
}

func (m Model) choosePhoto(photos []client.Photo) tea.Cmd {
	picker := m.picker
	return func() tea.Msg {
		photo, err := picker.Random(photos)
		if err != nil {
			return nil
		}
		return RandomPhotoChosenMsg{Photo: photo}
	}
}

// pushFrame sends the current render parameters to the renderer.
// It is a no-op unless photos are loaded with a selection.
func (m Model) pushFrame() tea.Cmd {
	frame, ok := m.frame()
	if !ok || m.bridge == nil {
		return nil
	}
	bridge := m.bridge
	return func() tea.Msg {
		bridge.Push(frame)
		return nil
	}
}

// frame builds the renderer payload for the current selection.
func (m Model) frame() (render.Frame, bool) {
	loaded, ok := m.status.(Loaded)
	if !ok || loaded.SelectedURL == "" {
		return render.Frame{}, false
	}

	specs := make([]render.FilterSpec, 0, len(filters))
	for _, f := range filters {
		specs = append(specs, render.FilterSpec{
			Name:   f.String(),
			Amount: float64(m.magnitudes[f]) / MaxMagnitude,
		})
	}

	return render.Frame{
		URL:     m.urlPrefix + "large/" + loaded.SelectedURL,
		Filters: specs,
	}, true
}

// listenForSlides blocks on the renderer's slider channel and delivers
// the next event as a message. Update re-arms it after each event.
func (m Model) listenForSlides() tea.Cmd {
	if m.bridge == nil {
		return nil
	}
	slides := m.bridge.Slides()
	return func() tea.Msg {
		ev, ok := <-slides
		if !ok {
			return nil
		}
		return slideEventMsg{event: ev}
	}
}

// listenForActivity blocks on the activity feed and delivers the next
// notification as a message. Update re-arms it after each one.
func (m Model) listenForActivity() tea.Cmd {
	if m.notifications == nil {
		return nil
	}
	notifications := m.notifications
	return func() tea.Msg {
		n, ok := <-notifications
		if !ok {
			return nil
		}
		return ActivityMsg{Text: n.Text}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case PhotosFetchedMsg:
		if msg.Err != nil {
			m.status = Errored{Message: "Server error!"}
			return m, nil
		}
		if len(msg.Photos) == 0 {
			m.status = Errored{Message: "0 photos found"}
			return m, nil
		}
		m.status = Loaded{Photos: msg.Photos, SelectedURL: msg.Photos[0].URL}
		return m, m.pushFrame()

	case PhotoClickedMsg:
		loaded, ok := m.status.(Loaded)
		if !ok || !loaded.contains(msg.URL) {
			return m, nil
		}
		loaded.SelectedURL = msg.URL
		m.status = loaded
		return m, m.pushFrame()

	case SizeClickedMsg:
		m.chosenSize = msg.Size
		return m, nil

	case SurpriseMeMsg:
		loaded, ok := m.status.(Loaded)
		if !ok || len(loaded.Photos) == 0 {
			return m, nil
		}
		return m, m.choosePhoto(loaded.Photos)

	case RandomPhotoChosenMsg:
		loaded, ok := m.status.(Loaded)
		if !ok || !loaded.contains(msg.Photo.URL) {
			return m, nil
		}
		loaded.SelectedURL = msg.Photo.URL
		m.status = loaded
		return m, m.pushFrame()

	case SlidMsg:
		m.magnitudes[msg.Filter] = clampMagnitude(msg.Value)
		m.activeFilter = msg.Filter
		return m, m.pushFrame()

	case slideEventMsg:
		cmds := []tea.Cmd{m.listenForSlides()}
		if f, ok := ParseFilter(msg.event.Name); ok {
			m.magnitudes[f] = clampMagnitude(msg.event.Detail.UserSlideTo)
			m.activeFilter = f
			cmds = append(cmds, m.pushFrame())
		}
		return m, tea.Batch(cmds...)

	case ActivityMsg:
		m.activity = msg.Text
		return m, m.listenForActivity()
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "r":
		m.status = Loading{}
		return m, tea.Batch(m.spinner.Tick, m.fetchPhotos())

	case "left", "h":
		return m.selectNeighbor(-1)

	case "right", "l":
		return m.selectNeighbor(1)

	case "1":
		return m.Update(SizeClickedMsg{Size: Small})

	case "2":
		return m.Update(SizeClickedMsg{Size: Medium})

	case "3":
		return m.Update(SizeClickedMsg{Size: Large})

	case "t":
		return m.Update(SizeClickedMsg{Size: m.chosenSize.Next()})

	case "H":
		m.activeFilter = Hue
		return m, nil

	case "R":
		m.activeFilter = Ripple
		return m, nil

	case "N":
		m.activeFilter = Noise
		return m, nil

	case "s", " ":
		return m.Update(SurpriseMeMsg{})

	case "tab":
		m.activeFilter = filters[(int(m.activeFilter)+1)%len(filters)]
		return m, nil

	case "up", "+", "=":
		return m.Update(SlidMsg{Filter: m.activeFilter, Value: m.magnitudes[m.activeFilter] + 1})

	case "down", "-":
		return m.Update(SlidMsg{Filter: m.activeFilter, Value: m.magnitudes[m.activeFilter] - 1})
	}

	return m, nil
}

// selectNeighbor moves the selection left or right in the photo list.
func (m Model) selectNeighbor(delta int) (tea.Model, tea.Cmd) {
	loaded, ok := m.status.(Loaded)
	if !ok || len(loaded.Photos) == 0 {
		return m, nil
	}

	idx := loaded.selectedIndex() + delta
	if idx < 0 {
		idx = 0
	}
	if idx > len(loaded.Photos)-1 {
		idx = len(loaded.Photos) - 1
	}
	return m.Update(PhotoClickedMsg{URL: loaded.Photos[idx].URL})
}
