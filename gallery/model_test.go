package gallery

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grooveapp/groove/client"
	"github.com/grooveapp/groove/pick"
	"github.com/grooveapp/groove/render"
)

func newTestModel() Model {
	c := client.NewClient("http://gallery.example.com")
	return NewModel(c, render.NewBridge(), nil, pick.NewSeededPicker(1), 1.1)
}

// apply runs one message through Update and returns the new model.
func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	newModel, cmd := m.Update(msg)
	return newModel.(Model), cmd
}

// captureFrame runs a push command and reads the frame off the bridge.
func captureFrame(t *testing.T, m Model, cmd tea.Cmd) render.Frame {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a push command, got nil")
	}
	cmd()
	select {
	case frame := <-m.bridge.Frames():
		return frame
	default:
		t.Fatal("expected a frame on the bridge")
		return render.Frame{}
	}
}

var testPhotos = []client.Photo{
	{URL: "1.jpeg", Size: 36, Title: "Beachside"},
	{URL: "2.jpeg", Size: 38, Title: "(untitled)"},
	{URL: "3.jpeg", Size: 44, Title: "Bluffs"},
}

func TestNewModel(t *testing.T) {
	m := newTestModel()

	if _, ok := m.status.(Loading); !ok {
		t.Errorf("expected initial status Loading, got %T", m.status)
	}
	if m.activity != "Initializing Pasta v1.1" {
		t.Errorf("expected initial activity line, got %q", m.activity)
	}
	if m.chosenSize != Medium {
		t.Errorf("expected initial size Medium, got %v", m.chosenSize)
	}
	for _, f := range filters {
		if m.magnitudes[f] != 5 {
			t.Errorf("expected initial %s magnitude 5, got %d", f, m.magnitudes[f])
		}
	}
}

func TestPhotosFetched_NonEmptySelectsFirst(t *testing.T) {
	m := newTestModel()

	m, cmd := apply(t, m, PhotosFetchedMsg{Photos: testPhotos})

	loaded, ok := m.status.(Loaded)
	if !ok {
		t.Fatalf("expected Loaded status, got %T", m.status)
	}
	if len(loaded.Photos) != 3 {
		t.Errorf("expected 3 photos, got %d", len(loaded.Photos))
	}
	if loaded.SelectedURL != "1.jpeg" {
		t.Errorf("expected first photo selected, got %q", loaded.SelectedURL)
	}

	frame := captureFrame(t, m, cmd)
	if frame.URL != "http://gallery.example.com/photos/large/1.jpeg" {
		t.Errorf("unexpected frame URL %q", frame.URL)
	}
}

func TestPhotosFetched_EmptyList(t *testing.T) {
	m := newTestModel()

	// Prior status must not matter.
	m, _ = apply(t, m, PhotosFetchedMsg{Photos: testPhotos})
	m, cmd := apply(t, m, PhotosFetchedMsg{Photos: []client.Photo{}})

	errored, ok := m.status.(Errored)
	if !ok {
		t.Fatalf("expected Errored status, got %T", m.status)
	}
	if errored.Message != "0 photos found" {
		t.Errorf("expected message %q, got %q", "0 photos found", errored.Message)
	}
	if cmd != nil {
		t.Error("expected no command for an empty fetch")
	}
}

func TestPhotosFetched_Error(t *testing.T) {
	m := newTestModel()

	m, cmd := apply(t, m, PhotosFetchedMsg{Err: errors.New("connection refused")})

	errored, ok := m.status.(Errored)
	if !ok {
		t.Fatalf("expected Errored status, got %T", m.status)
	}
	if errored.Message != "Server error!" {
		t.Errorf("expected message %q, got %q", "Server error!", errored.Message)
	}
	if cmd != nil {
		t.Error("expected no command for a failed fetch")
	}
}

func TestPhotoClicked(t *testing.T) {
	m := newTestModel()
	m, _ = apply(t, m, PhotosFetchedMsg{Photos: testPhotos})

	m, cmd := apply(t, m, PhotoClickedMsg{URL: "2.jpeg"})

	loaded := m.status.(Loaded)
	if loaded.SelectedURL != "2.jpeg" {
		t.Errorf("expected selection 2.jpeg, got %q", loaded.SelectedURL)
	}

	frame := captureFrame(t, m, cmd)
	if frame.URL != "http://gallery.example.com/photos/large/2.jpeg" {
		t.Errorf("unexpected frame URL %q", frame.URL)
	}
}

func TestPhotoClicked_UnknownURLIgnored(t *testing.T) {
	m := newTestModel()
	m, _ = apply(t, m, PhotosFetchedMsg{Photos: testPhotos})

	m, cmd := apply(t, m, PhotoClickedMsg{URL: "nope.jpeg"})

	loaded := m.status.(Loaded)
	if loaded.SelectedURL != "1.jpeg" {
		t.Errorf("selection should be unchanged, got %q", loaded.SelectedURL)
	}
	if cmd != nil {
		t.Error("expected no command for an unknown URL")
	}
}

func TestPhotoClicked_WhileLoadingIgnored(t *testing.T) {
	m := newTestModel()

	m, cmd := apply(t, m, PhotoClickedMsg{URL: "1.jpeg"})

	if _, ok := m.status.(Loading); !ok {
		t.Errorf("expected status to stay Loading, got %T", m.status)
	}
	if cmd != nil {
		t.Error("expected no command while loading")
	}
}

func TestSizeClicked(t *testing.T) {
	m := newTestModel()

	for _, size := range thumbSizes {
		var cmd tea.Cmd
		m, cmd = apply(t, m, SizeClickedMsg{Size: size})
		if m.chosenSize != size {
			t.Errorf("expected chosen size %v, got %v", size, m.chosenSize)
		}
		if cmd != nil {
			t.Error("size choice should not emit a command")
		}
	}
}

func TestSizeNextCycles(t *testing.T) {
	if Small.Next() != Medium {
		t.Error("Small should cycle to Medium")
	}
	if Medium.Next() != Large {
		t.Error("Medium should cycle to Large")
	}
	if Large.Next() != Small {
		t.Error("Large should wrap to Small")
	}
}

func TestSliderLastWriteWins(t *testing.T) {
	m := newTestModel()

	events := []SlidMsg{
		{Filter: Hue, Value: 3},
		{Filter: Ripple, Value: 7},
		{Filter: Hue, Value: 9},
		{Filter: Noise, Value: 0},
		{Filter: Ripple, Value: 2},
	}
	for _, ev := range events {
		m, _ = apply(t, m, ev)
	}

	if m.magnitudes[Hue] != 9 {
		t.Errorf("expected hue 9, got %d", m.magnitudes[Hue])
	}
	if m.magnitudes[Ripple] != 2 {
		t.Errorf("expected ripple 2, got %d", m.magnitudes[Ripple])
	}
	if m.magnitudes[Noise] != 0 {
		t.Errorf("expected noise 0, got %d", m.magnitudes[Noise])
	}
}

func TestSlidClampsToRange(t *testing.T) {
	m := newTestModel()

	m, _ = apply(t, m, SlidMsg{Filter: Hue, Value: 99})
	if m.magnitudes[Hue] != MaxMagnitude {
		t.Errorf("expected hue clamped to %d, got %d", MaxMagnitude, m.magnitudes[Hue])
	}

	m, _ = apply(t, m, SlidMsg{Filter: Hue, Value: -3})
	if m.magnitudes[Hue] != 0 {
		t.Errorf("expected hue clamped to 0, got %d", m.magnitudes[Hue])
	}
}

func TestFrameAmountNormalization(t *testing.T) {
	m := newTestModel()
	m, _ = apply(t, m, PhotosFetchedMsg{Photos: testPhotos})

	m, _ = apply(t, m, SlidMsg{Filter: Hue, Value: 11})
	m, _ = apply(t, m, SlidMsg{Filter: Ripple, Value: 0})

	frame, ok := m.frame()
	if !ok {
		t.Fatal("expected a frame while loaded")
	}

	amounts := make(map[string]float64)
	for _, spec := range frame.Filters {
		amounts[spec.Name] = spec.Amount
	}
	if amounts["Hue"] != 1.0 {
		t.Errorf("expected hue amount 1.0, got %v", amounts["Hue"])
	}
	if amounts["Ripple"] != 0.0 {
		t.Errorf("expected ripple amount 0.0, got %v", amounts["Ripple"])
	}
}

func TestSurpriseMe_SingleElementIsDeterministic(t *testing.T) {
	m := newTestModel()
	m, _ = apply(t, m, PhotosFetchedMsg{Photos: testPhotos[:1]})

	_, cmd := m.Update(SurpriseMeMsg{})
	if cmd == nil {
		t.Fatal("expected a choose command")
	}

	msg := cmd()
	chosen, ok := msg.(RandomPhotoChosenMsg)
	if !ok {
		t.Fatalf("expected RandomPhotoChosenMsg, got %T", msg)
	}
	if chosen.Photo.URL != "1.jpeg" {
		t.Errorf("single-element surprise must pick the only photo, got %q", chosen.Photo.URL)
	}
}

func TestSurpriseMe_RequiresLoadedPhotos(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(SurpriseMeMsg{})
	if cmd != nil {
		t.Error("surprise-me while loading should do nothing")
	}

	m.status = Errored{Message: "Server error!"}
	_, cmd = m.Update(SurpriseMeMsg{})
	if cmd != nil {
		t.Error("surprise-me while errored should do nothing")
	}

	m.status = Loaded{}
	_, cmd = m.Update(SurpriseMeMsg{})
	if cmd != nil {
		t.Error("surprise-me with zero photos should do nothing")
	}
}

func TestRandomPhotoChosen(t *testing.T) {
	m := newTestModel()
	m, _ = apply(t, m, PhotosFetchedMsg{Photos: testPhotos})

	m, cmd := apply(t, m, RandomPhotoChosenMsg{Photo: testPhotos[2]})

	loaded := m.status.(Loaded)
	if loaded.SelectedURL != "3.jpeg" {
		t.Errorf("expected selection 3.jpeg, got %q", loaded.SelectedURL)
	}

	frame := captureFrame(t, m, cmd)
	if frame.URL != "http://gallery.example.com/photos/large/3.jpeg" {
		t.Errorf("unexpected frame URL %q", frame.URL)
	}
}

func TestActivityReceived(t *testing.T) {
	m := newTestModel()

	m, _ = apply(t, m, ActivityMsg{Text: "3 photos viewed today"})
	if m.activity != "3 photos viewed today" {
		t.Errorf("expected activity replaced, got %q", m.activity)
	}

	m, _ = apply(t, m, ActivityMsg{Text: "4 photos viewed today"})
	if m.activity != "4 photos viewed today" {
		t.Errorf("expected activity replaced again, got %q", m.activity)
	}
}

func TestSlideEventFromRenderer(t *testing.T) {
	m := newTestModel()

	m, _ = apply(t, m, slideEventMsg{event: render.SlideEvent{
		Name:   "Noise",
		Detail: render.SlideDetail{UserSlideTo: 8},
	}})
	if m.magnitudes[Noise] != 8 {
		t.Errorf("expected noise 8, got %d", m.magnitudes[Noise])
	}

	// Unknown slider names are ignored.
	before := m.magnitudes
	m, _ = apply(t, m, slideEventMsg{event: render.SlideEvent{
		Name:   "Sepia",
		Detail: render.SlideDetail{UserSlideTo: 2},
	}})
	if m.magnitudes != before {
		t.Error("unknown slider name must not change any magnitude")
	}
}

func TestNoFrameWithoutLoadedStatus(t *testing.T) {
	m := newTestModel()

	if _, ok := m.frame(); ok {
		t.Error("no frame should be produced while loading")
	}

	m.status = Errored{Message: "Server error!"}
	if _, ok := m.frame(); ok {
		t.Error("no frame should be produced after an error")
	}

	if cmd := m.pushFrame(); cmd != nil {
		t.Error("push must be a no-op without a loaded selection")
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel()

	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	if m.width != 100 {
		t.Errorf("expected width 100, got %d", m.width)
	}
	if m.height != 50 {
		t.Errorf("expected height 50, got %d", m.height)
	}
}

func TestView_States(t *testing.T) {
	m := newTestModel()

	if m.View() != "" {
		t.Error("view should be empty before the window size is known")
	}

	m, _ = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if !strings.Contains(m.View(), "Loading photos") {
		t.Error("loading view should show the loading line")
	}

	m, _ = apply(t, m, PhotosFetchedMsg{Err: errors.New("boom")})
	if !strings.Contains(m.View(), "Error: Server error!") {
		t.Error("errored view should show the error message")
	}

	m, _ = apply(t, m, PhotosFetchedMsg{Photos: testPhotos})
	view := m.View()
	for _, want := range []string{"Surprise Me!", "Beachside", "Bluffs", "Initializing Pasta v1.1"} {
		if !strings.Contains(view, want) {
			t.Errorf("loaded view missing %q", want)
		}
	}
}
