package statusflow

// Slot is one position of a Window. Empty slots pad the window at the
// boundaries so consumers can always render three positions.
type Slot[S comparable] struct {
	Step  S    `json:"step"`
	Index int  `json:"index"`
	Empty bool `json:"empty"`
}

// View is the previous/current/next projection around the current step.
type View[S comparable] struct {
	Previous Slot[S] `json:"previous"`
	Current  Slot[S] `json:"current"`
	Next     Slot[S] `json:"next"`
}

// Window projects (steps, current) into a three-slot view. It is read-only
// and does not require a Flow. An unknown current step yields an all-empty view.
func Window[S comparable](steps []S, current S) View[S] {
	idx := indexOf(steps, current)
	if idx < 0 {
		return View[S]{
			Previous: emptySlot[S](-1),
			Current:  emptySlot[S](-1),
			Next:     emptySlot[S](-1),
		}
	}

	return View[S]{
		Previous: slotAt(steps, idx-1),
		Current:  slotAt(steps, idx),
		Next:     slotAt(steps, idx+1),
	}
}

// View returns the window around the flow's current step.
func (f *Flow[S]) View() View[S] {
	return Window(f.steps, f.Current())
}

func slotAt[S comparable](steps []S, idx int) Slot[S] {
	if idx < 0 || idx >= len(steps) {
		return emptySlot[S](idx)
	}
	return Slot[S]{Step: steps[idx], Index: idx}
}

func emptySlot[S comparable](idx int) Slot[S] {
	var zero S
	return Slot[S]{Step: zero, Index: idx, Empty: true}
}
