// Package pick provides photo selection logic for the surprise-me action.
package pick

import (
	"errors"
	"math/rand"
	"time"

	"github.com/grooveapp/groove/client"
)

// ErrNoPhotos is returned when a selection is requested from an empty list.
var ErrNoPhotos = errors.New("no photos available to pick from")

// Picker chooses photos from a list. The zero value is not usable;
// construct one with NewPicker or NewSeededPicker.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a Picker seeded from the current time.
func NewPicker() *Picker {
	return NewSeededPicker(time.Now().UnixNano())
}

// NewSeededPicker creates a Picker with a fixed seed, for reproducible
// selection in tests.
func NewSeededPicker(seed int64) *Picker {
	return &Picker{rng: rand.New(rand.NewSource(seed))}
}

// Random picks one photo uniformly from the list. Every element,
// including the first, is chosen with equal probability.
func (p *Picker) Random(photos []client.Photo) (client.Photo, error) {
	if len(photos) == 0 {
		return client.Photo{}, ErrNoPhotos
	}
	return photos[p.rng.Intn(len(photos))], nil
}
