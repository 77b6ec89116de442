package gallery

import "fmt"

// Direction is a lightbox navigation direction.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// ParseDirection accepts "prev", "previous" and "next".
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "prev", "previous":
		return Previous, true
	case "next":
		return Next, true
	}
	return 0, false
}

// Step moves index one position in direction d over a sequence of length n,
// wrapping at both ends. n must be positive.
func Step(index, n int, d Direction) int {
	if d == Previous {
		if index > 0 {
			return index - 1
		}
		return n - 1
	}
	if index < n-1 {
		return index + 1
	}
	return 0
}

// Lightbox is the modal viewer state. The zero value is closed.
// The index is a position in the filtered view, never in the catalog.
type Lightbox struct {
	open  bool
	index int
}

func (l Lightbox) IsOpen() bool {
	return l.open
}

// Index returns the selected position, or false when closed.
func (l Lightbox) Index() (int, bool) {
	if !l.open {
		return 0, false
	}
	return l.index, true
}

func (l Lightbox) String() string {
	if !l.open {
		return "Closed"
	}
	return fmt.Sprintf("Open(%d)", l.index)
}

func (l *Lightbox) show(index int) {
	l.open = true
	l.index = index
}

func (l *Lightbox) hide() {
	l.open = false
	l.index = 0
}

// Slide is the photo on display in an open lightbox.
type Slide struct {
	Photo    Photo
	Index    int
	Position int
	Total    int
}

// Counter renders the position as "3 / 8".
func (s Slide) Counter() string {
	return fmt.Sprintf("%d / %d", s.Position, s.Total)
}
