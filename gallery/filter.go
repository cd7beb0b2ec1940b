package gallery

// MaxMagnitude is the top of the filter knob range. Values are
// normalized to [0,1] before being pushed to the renderer.
const MaxMagnitude = 11

// Filter identifies one of the renderer's image filters.
type Filter int

const (
	Hue Filter = iota
	Ripple
	Noise
)

// filters in display order.
var filters = [...]Filter{Hue, Ripple, Noise}

func (f Filter) String() string {
	switch f {
	case Ripple:
		return "Ripple"
	case Noise:
		return "Noise"
	default:
		return "Hue"
	}
}

// ParseFilter maps a renderer slider name back to its Filter.
func ParseFilter(name string) (Filter, bool) {
	switch name {
	case "Hue":
		return Hue, true
	case "Ripple":
		return Ripple, true
	case "Noise":
		return Noise, true
	}
	return 0, false
}

// clampMagnitude bounds a knob value to the renderer's declared range.
func clampMagnitude(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxMagnitude {
		return MaxMagnitude
	}
	return v
}
