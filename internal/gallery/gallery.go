package gallery

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Open for a position outside the
// current filtered view.
var ErrIndexOutOfRange = errors.New("index out of range")

// Gallery owns the category filter and the lightbox over one catalog.
//
// The filtered view is recomputed from (catalog, category) on every read;
// the lightbox only stores a position into it. When the filter changes
// while the lightbox is open, the selection is resolved again by photo ID:
// it follows the photo to its new position, or the lightbox closes if the
// photo is no longer in view.
//
// While the lightbox is open the gallery holds exactly one listener on its
// Keyboard; every transition out of Open releases it.
type Gallery struct {
	catalog  []Photo
	category Category
	lightbox Lightbox

	keyboard Keyboard
	release  func()
}

// New returns a gallery showing all of catalog with the lightbox closed.
// kb may be nil, in which case no key binding is installed.
func New(catalog []Photo, kb Keyboard) *Gallery {
	return &Gallery{
		catalog:  catalog,
		category: All,
		keyboard: kb,
	}
}

func (g *Gallery) Category() Category {
	return g.category
}

// Photos returns the current filtered view.
func (g *Gallery) Photos() []Photo {
	return Filter(g.catalog, g.category)
}

func (g *Gallery) Lightbox() Lightbox {
	return g.lightbox
}

// SetCategory changes the filter and re-resolves an open lightbox.
func (g *Gallery) SetCategory(c Category) {
	if c == g.category {
		return
	}
	current, open := g.Current()
	g.category = c
	if !open {
		return
	}
	if i := indexOf(g.Photos(), current.Photo.ID); i >= 0 {
		g.lightbox.show(i)
		return
	}
	g.Close()
}

// Open shows the photo at index in the filtered view.
func (g *Gallery) Open(index int) error {
	n := len(g.Photos())
	if index < 0 || index >= n {
		return fmt.Errorf("open %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	g.lightbox.show(index)
	g.bindKeys()
	return nil
}

// Close closes the lightbox. It is valid in any state.
func (g *Gallery) Close() {
	g.lightbox.hide()
	g.unbindKeys()
}

// Advance moves the open lightbox one photo in direction d with wraparound.
// It does nothing while closed, and closes the lightbox if the view is empty.
func (g *Gallery) Advance(d Direction) {
	index, open := g.lightbox.Index()
	if !open {
		return
	}
	n := len(g.Photos())
	if n == 0 {
		g.Close()
		return
	}
	if index >= n {
		index = n - 1
	}
	g.lightbox.show(Step(index, n, d))
}

// Current returns the photo on display, or false if the lightbox is closed.
func (g *Gallery) Current() (Slide, bool) {
	index, open := g.lightbox.Index()
	if !open {
		return Slide{}, false
	}
	photos := g.Photos()
	if index < 0 || index >= len(photos) {
		return Slide{}, false
	}
	return Slide{
		Photo:    photos[index],
		Index:    index,
		Position: index + 1,
		Total:    len(photos),
	}, true
}

// Teardown closes the lightbox and releases any key binding. Call it when
// the gallery is discarded.
func (g *Gallery) Teardown() {
	g.Close()
}

// HandleKey applies a key to the lightbox. Keys are ignored while closed.
func (g *Gallery) HandleKey(k Key) bool {
	if !g.lightbox.IsOpen() {
		return false
	}
	switch k {
	case KeyLeft:
		g.Advance(Previous)
	case KeyRight:
		g.Advance(Next)
	case KeyEscape:
		g.Close()
	default:
		return false
	}
	return true
}

func (g *Gallery) bindKeys() {
	if g.keyboard == nil || g.release != nil {
		return
	}
	g.release = g.keyboard.Listen(g.HandleKey)
}

func (g *Gallery) unbindKeys() {
	if g.release == nil {
		return
	}
	release := g.release
	g.release = nil
	release()
}

// KeysBound reports whether the gallery currently holds a key binding.
func (g *Gallery) KeysBound() bool {
	return g.release != nil
}
