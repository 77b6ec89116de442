// Package tui is the terminal front end for the photography gallery.
package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/salan223/portfolio/internal/gallery"
)

// Model is the bubbletea model for the gallery. While the lightbox is open
// the arrow and escape keys go through the gallery's key dispatcher, which
// only has a listener while the lightbox is open.
type Model struct {
	gallery *gallery.Gallery
	keys    *gallery.Dispatcher
	keymap  KeyMap

	cursor int
	width  int
	height int
}

func New(catalog []gallery.Photo) *Model {
	keys := gallery.NewDispatcher()
	return &Model{
		gallery: gallery.New(catalog, keys),
		keys:    keys,
		keymap:  DefaultKeyMap(),
	}
}

// Gallery exposes the underlying gallery state.
func (m *Model) Gallery() *gallery.Gallery {
	return m.gallery
}

// Cursor is the highlighted tile in the grid.
func (m *Model) Cursor() int {
	return m.cursor
}

// Close releases the gallery's key binding.
func (m *Model) Close() {
	m.gallery.Teardown()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Quit) {
		m.Close()
		return m, tea.Quit
	}

	if m.gallery.Lightbox().IsOpen() {
		m.handleLightboxKey(msg)
		return m, nil
	}

	n := len(m.gallery.Photos())
	switch {
	case key.Matches(msg, m.keymap.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Right):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.NextCategory):
		m.cycleCategory(1)
	case key.Matches(msg, m.keymap.PrevCategory):
		m.cycleCategory(-1)
	case key.Matches(msg, m.keymap.Open):
		if err := m.gallery.Open(m.cursor); err != nil {
			log.Debug().Err(err).Msg("nothing to open")
		}
	}
	return m, nil
}

func (m *Model) handleLightboxKey(msg tea.KeyPressMsg) {
	var k gallery.Key
	switch {
	case key.Matches(msg, m.keymap.Left):
		k = gallery.KeyLeft
	case key.Matches(msg, m.keymap.Right):
		k = gallery.KeyRight
	case key.Matches(msg, m.keymap.Close):
		k = gallery.KeyEscape
	default:
		return
	}

	last, _ := m.gallery.Current()
	m.keys.Dispatch(k)
	if !m.gallery.Lightbox().IsOpen() {
		// back on the grid, keep the last viewed photo highlighted
		m.cursor = last.Index
	}
}

func (m *Model) cycleCategory(step int) {
	cats := gallery.Categories()
	i := 0
	for j, c := range cats {
		if c == m.gallery.Category() {
			i = j
			break
		}
	}
	i = (i + step + len(cats)) % len(cats)
	m.gallery.SetCategory(cats[i])

	if n := len(m.gallery.Photos()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	log.Debug().Str("category", string(cats[i])).Msg("category selected")
}

func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}
