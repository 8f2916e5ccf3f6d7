// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package reveal

const (
	// BottomInset shrinks the trigger area so elements must enter the
	// upper 90% of the viewport.
	BottomInset = 0.10
	// Threshold is the share of an element that must be inside.
	Threshold = 0.05
)

// Viewport is the visible window over the page, in rows.
type Viewport struct {
	Offset int
	Height int
}

// Contains reports whether an element overlaps the viewport at all. It is
// the initial sweep test and ignores the inset.
func (v Viewport) Contains(el *Element) bool {
	return el.Top < v.Offset+v.Height && el.Bottom() > v.Offset
}

// Observer watches elements and reports the ones intersecting the trigger
// area of a viewport.
type Observer struct {
	inset     float64
	threshold float64
	watched   []*Element
}

func NewObserver() *Observer {
	return &Observer{inset: BottomInset, threshold: Threshold}
}

func (o *Observer) Observe(el *Element) {
	for _, w := range o.watched {
		if w == el {
			return
		}
	}
	o.watched = append(o.watched, el)
}

func (o *Observer) Unobserve(el *Element) {
	for i, w := range o.watched {
		if w == el {
			o.watched = append(o.watched[:i], o.watched[i+1:]...)
			return
		}
	}
}

func (o *Observer) Disconnect() { o.watched = nil }

func (o *Observer) Len() int { return len(o.watched) }

// Intersecting returns watched elements, in observation order, whose visible
// share of the trigger area meets the threshold.
func (o *Observer) Intersecting(v Viewport) []*Element {
	top := v.Offset
	bottom := v.Offset + v.Height - int(float64(v.Height)*o.inset)
	var hits []*Element
	for _, el := range o.watched {
		if el.Height <= 0 {
			continue
		}
		lo, hi := max(el.Top, top), min(el.Bottom(), bottom)
		overlap := hi - lo
		if overlap <= 0 {
			continue
		}
		if float64(overlap)/float64(el.Height) >= o.threshold {
			hits = append(hits, el)
		}
	}
	return hits
}
