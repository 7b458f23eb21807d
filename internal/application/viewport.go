package application

// ScrollPolicy selects how the viewport follows the selection.
type ScrollPolicy int

const (
	// PolicyCentering tries to place the selection at the middle row
	// of the window. Default.
	PolicyCentering ScrollPolicy = iota
	// PolicyMargin keeps the selection at least `margin` rows from the
	// window edges, sliding the offset minimally.
	PolicyMargin
)

// ScrollOffset maps the selection to a scroll offset. offset is the
// current offset (only PolicyMargin slides relative to it). Whatever
// the policy: never negative, never past visibleCount-height, and 0
// whenever the whole list fits in the window.
func ScrollOffset(policy ScrollPolicy, offset, selected, visibleCount, height, margin int) int {
	if height <= 0 || visibleCount <= height {
		return 0
	}
	maxOffset := visibleCount - height

	switch policy {
	case PolicyMargin:
		// Cap the margin so top and bottom constraints cannot cross.
		if m := (height - 1) / 2; margin > m {
			margin = m
		}
		if selected < offset+margin {
			offset = selected - margin
		}
		if selected > offset+height-1-margin {
			offset = selected - height + 1 + margin
		}
	default:
		offset = selected - height/2
	}

	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	return offset
}
