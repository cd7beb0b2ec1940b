package gallery

// ThumbSize controls how densely the thumbnail list is rendered.
type ThumbSize int

const (
	Small ThumbSize = iota
	Medium
	Large
)

// thumbSizes in chooser order.
var thumbSizes = [...]ThumbSize{Small, Medium, Large}

// Next cycles to the following size, wrapping back to Small.
func (s ThumbSize) Next() ThumbSize {
	return thumbSizes[(int(s)+1)%len(thumbSizes)]
}

func (s ThumbSize) String() string {
	switch s {
	case Medium:
		return "med"
	case Large:
		return "large"
	default:
		return "small"
	}
}
