package gallery

import "github.com/grooveapp/groove/client"

// Status captures whether photos are still loading, loaded with a
// current selection, or failed. Exactly one variant is active at a
// time; the sealed interface keeps impossible combinations (a selection
// without photos, an error alongside a list) unrepresentable.
type Status interface {
	isStatus()
}

// Loading is the initial status while the photo list is in flight.
type Loading struct{}

// Loaded holds the fetched photos and the URL of the selected one.
// SelectedURL always names an element of Photos when set.
type Loaded struct {
	Photos      []client.Photo
	SelectedURL string
}

// Errored is a terminal fetch failure with a user-visible message.
type Errored struct {
	Message string
}

func (Loading) isStatus() {}
func (Loaded) isStatus()  {}
func (Errored) isStatus() {}

// selected returns the photo SelectedURL points at.
func (s Loaded) selected() (client.Photo, bool) {
	for _, p := range s.Photos {
		if p.URL == s.SelectedURL {
			return p, true
		}
	}
	return client.Photo{}, false
}

// contains reports whether a photo with the given URL is in the list.
func (s Loaded) contains(url string) bool {
	for _, p := range s.Photos {
		if p.URL == url {
			return true
		}
	}
	return false
}

// selectedIndex returns the index of the selected photo, or -1.
func (s Loaded) selectedIndex() int {
	for i, p := range s.Photos {
		if p.URL == s.SelectedURL {
			return i
		}
	}
	return -1
}
