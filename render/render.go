// Package render is the boundary to the external Pasta canvas
// renderer. The renderer is a black box: the gallery pushes filter
// frames to it and receives slider-movement events back. Both
// directions travel over narrow typed channels so the update loop
// never shares memory with the renderer.
package render

import "log"

// FilterSpec is one filter applied to the rendered photo. Amount is
// normalized to [0,1].
type FilterSpec struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Frame is a complete set of render parameters for one photo.
type Frame struct {
	URL     string       `json:"url"`
	Filters []FilterSpec `json:"filters"`
}

// SlideDetail carries the raw knob position from the renderer's
// range input, an integer in [0,11].
type SlideDetail struct {
	UserSlideTo int `json:"userSlideTo"`
}

// SlideEvent is emitted by the renderer when the user drags one of its
// sliders. Name identifies the filter the slider controls.
type SlideEvent struct {
	Name   string      `json:"name"`
	Detail SlideDetail `json:"detail"`
}

// Bridge couples the two renderer channels. Pushes never block the
// update loop: when the renderer falls behind, frames are dropped,
// since only the latest frame matters.
type Bridge struct {
	frames chan Frame
	slides chan SlideEvent
}

// NewBridge creates a Bridge with buffered channels in both directions.
func NewBridge() *Bridge {
	return &Bridge{
		frames: make(chan Frame, 64),
		slides: make(chan SlideEvent, 64),
	}
}

// Push sends a frame toward the renderer without blocking.
func (b *Bridge) Push(f Frame) {
	select {
	case b.frames <- f:
	default:
		log.Printf("render bridge: frame channel full, dropping frame for %s", f.URL)
	}
}

// Frames returns the outbound frame channel the renderer consumes.
func (b *Bridge) Frames() <-chan Frame {
	return b.frames
}

// Slide injects a slider event from the renderer without blocking.
func (b *Bridge) Slide(ev SlideEvent) {
	select {
	case b.slides <- ev:
	default:
		log.Printf("render bridge: slide channel full, dropping %s event", ev.Name)
	}
}

// Slides returns the inbound slider-event channel.
func (b *Bridge) Slides() <-chan SlideEvent {
	return b.slides
}
