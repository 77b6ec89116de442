package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/salan223/portfolio/internal/gallery"
)

func (m *Model) render() string {
	sections := []string{
		TitleStyle.Render("Photography Portfolio"),
		SubtitleStyle.Render("Capturing moments and perspectives through the lens"),
		"",
		m.renderFilters(),
		"",
	}

	if slide, ok := m.gallery.Current(); ok {
		sections = append(sections, renderLightbox(slide), renderHelp(m.keymap.lightboxHelp()))
	} else {
		sections = append(sections, m.renderTiles(), renderHelp(m.keymap.gridHelp()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderFilters() string {
	var parts []string
	for _, c := range gallery.Categories() {
		style := FilterStyle
		if c == m.gallery.Category() {
			style = FilterActiveStyle
		}
		parts = append(parts, style.Render(string(c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderTiles() string {
	photos := m.gallery.Photos()
	if len(photos) == 0 {
		return MutedStyle.Render(fmt.Sprintf("No %s photos yet.", m.gallery.Category()))
	}

	var b strings.Builder
	for i, p := range photos {
		line := fmt.Sprintf("%s  %s", p.Title, MutedStyle.Render(p.Location))
		if i == m.cursor {
			b.WriteString(TileSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(TileStyle.Render(line))
		}
		if i < len(photos)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderLightbox(s gallery.Slide) string {
	p := s.Photo
	body := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(p.Title),
		"",
		"📍 "+p.Location,
		MutedStyle.Render(string(p.Category)),
		"",
		fmt.Sprintf("%s %d   👁 %d   %s",
			LikeStyle.Render("♥"), p.Likes, p.Views,
			MutedStyle.Render(s.Counter())),
		MutedStyle.Render(p.Image),
	)
	return LightboxStyle.Render(body)
}

func renderHelp(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, HelpKeyStyle.Render(h.Key)+" "+HelpDescStyle.Render(h.Desc))
	}
	return HelpBarStyle.Render(strings.Join(parts, "  "))
}
