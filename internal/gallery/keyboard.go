package gallery

import (
	"strings"
	"sync"
)

// Key is a logical key the lightbox responds to.
type Key string

const (
	KeyLeft   Key = "ArrowLeft"
	KeyRight  Key = "ArrowRight"
	KeyEscape Key = "Escape"
)

// ParseKey maps DOM key names (and the short Left/Right/Esc forms) to a Key.
func ParseKey(s string) (Key, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arrowleft", "left":
		return KeyLeft, true
	case "arrowright", "right":
		return KeyRight, true
	case "escape", "esc":
		return KeyEscape, true
	}
	return "", false
}

// KeyHandler handles a key and reports whether it consumed it.
type KeyHandler func(Key) bool

// Keyboard is a source of key events that handlers can subscribe to.
// The returned release func unsubscribes; calling it more than once is safe.
type Keyboard interface {
	Listen(h KeyHandler) (release func())
}

type listener struct {
	id int
	h  KeyHandler
}

// Dispatcher is an in-process Keyboard. Listeners are offered each key in
// registration order until one consumes it.
type Dispatcher struct {
	mu        sync.Mutex
	listeners []listener
	nextID    int
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Listen(h KeyHandler) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, listener{id: id, h: h})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(id) })
	}
}

func (d *Dispatcher) remove(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers k and reports whether any listener consumed it.
// Handlers run without the lock held so they may release themselves.
func (d *Dispatcher) Dispatch(k Key) bool {
	d.mu.Lock()
	snapshot := make([]listener, len(d.listeners))
	copy(snapshot, d.listeners)
	d.mu.Unlock()

	for _, l := range snapshot {
		if l.h(k) {
			return true
		}
	}
	return false
}

// Listeners returns the number of active listeners.
func (d *Dispatcher) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}
