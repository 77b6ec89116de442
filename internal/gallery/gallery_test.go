package gallery

import (
	"errors"
	"reflect"
	"testing"
)

// eight photos, three Nature and two Architecture
func testCatalog() []Photo {
	return []Photo{
		{ID: 1, Title: "Ridge", Category: Nature},
		{ID: 2, Title: "Tower", Category: City},
		{ID: 3, Title: "Pines", Category: Nature},
		{ID: 4, Title: "Atrium", Category: Architecture},
		{ID: 5, Title: "Market", Category: Street},
		{ID: 6, Title: "Lake", Category: Nature},
		{ID: 7, Title: "Facade", Category: Architecture},
		{ID: 8, Title: "Dusk", Category: Sunset},
	}
}

func TestFilter_AllIsIdentity(t *testing.T) {
	c := testCatalog()
	if got := Filter(c, All); !reflect.DeepEqual(got, c) {
		t.Errorf("Filter(All) = %v, want full catalog", got)
	}
}

func TestFilter_Category(t *testing.T) {
	c := testCatalog()
	for _, cat := range Categories() {
		if cat == All {
			continue
		}
		got := Filter(c, cat)

		var want []Photo
		for _, p := range c {
			if p.Category == cat {
				want = append(want, p)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("Filter(%s) len = %d, want %d", cat, len(got), len(want))
		}
		for i := range got {
			if got[i].Category != cat {
				t.Errorf("Filter(%s)[%d] has category %s", cat, i, got[i].Category)
			}
			if got[i].ID != want[i].ID {
				t.Errorf("Filter(%s)[%d].ID = %d, want %d", cat, i, got[i].ID, want[i].ID)
			}
		}
	}
}

func TestFilter_EmptyCategory(t *testing.T) {
	if got := Filter(testCatalog(), Travel); len(got) != 0 {
		t.Errorf("expected no Travel photos, got %d", len(got))
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"All", All, true},
		{"nature", Nature, true},
		{" ARCHITECTURE ", Architecture, true},
		{"sunset", Sunset, true},
		{"Macro", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCategory(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCatalog_IsCopy(t *testing.T) {
	a := Catalog()
	a[0].Title = "changed"
	if Catalog()[0].Title == "changed" {
		t.Error("Catalog should return a copy")
	}
	if len(a) != 8 {
		t.Errorf("expected 8 photos, got %d", len(a))
	}
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := map[int]bool{}
	for _, p := range Catalog() {
		if seen[p.ID] {
			t.Errorf("duplicate ID %d", p.ID)
		}
		seen[p.ID] = true
		if _, ok := ParseCategory(string(p.Category)); !ok || p.Category == All {
			t.Errorf("photo %d has invalid category %q", p.ID, p.Category)
		}
	}
}

func TestStep_FullCycle(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			i := start
			for k := 0; k < n; k++ {
				i = Step(i, n, Next)
			}
			if i != start {
				t.Errorf("n=%d: %d nexts from %d ended at %d", n, n, start, i)
			}
		}
	}
}

func TestStep_PreviousInvertsNext(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for i := 0; i < n; i++ {
			if got := Step(Step(i, n, Next), n, Previous); got != i {
				t.Errorf("n=%d: prev(next(%d)) = %d", n, i, got)
			}
			if got := Step(Step(i, n, Previous), n, Next); got != i {
				t.Errorf("n=%d: next(prev(%d)) = %d", n, i, got)
			}
		}
	}
}

func TestGallery_InitialState(t *testing.T) {
	g := New(testCatalog(), nil)
	if g.Category() != All {
		t.Errorf("expected All, got %s", g.Category())
	}
	if g.Lightbox().IsOpen() {
		t.Error("expected lightbox closed")
	}
	if _, ok := g.Current(); ok {
		t.Error("expected no current slide")
	}
	if len(g.Photos()) != 8 {
		t.Errorf("expected 8 photos, got %d", len(g.Photos()))
	}
}

func TestGallery_OpenShowsFilteredPhoto(t *testing.T) {
	g := New(testCatalog(), nil)
	g.SetCategory(Nature)
	for k, want := range g.Photos() {
		if err := g.Open(k); err != nil {
			t.Fatalf("Open(%d): %v", k, err)
		}
		s, ok := g.Current()
		if !ok {
			t.Fatalf("Open(%d): no current slide", k)
		}
		if s.Photo.ID != want.ID || s.Index != k || s.Position != k+1 || s.Total != 3 {
			t.Errorf("Open(%d) slide = %+v, want photo %d", k, s, want.ID)
		}
	}
}

func TestGallery_OpenOutOfRange(t *testing.T) {
	g := New(testCatalog(), nil)
	g.SetCategory(Architecture)
	for _, idx := range []int{-1, 2, 8} {
		err := g.Open(idx)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Open(%d) err = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
	if g.Lightbox().IsOpen() {
		t.Error("failed Open should leave the lightbox closed")
	}

	g.SetCategory(Travel)
	if err := g.Open(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Open on empty view err = %v", err)
	}
}

func TestGallery_NatureWraparound(t *testing.T) {
	g := New(testCatalog(), nil)
	g.SetCategory(Nature)
	if n := len(g.Photos()); n != 3 {
		t.Fatalf("expected 3 Nature photos, got %d", n)
	}
	if err := g.Open(0); err != nil {
		t.Fatal(err)
	}

	g.Advance(Previous)
	if i, _ := g.Lightbox().Index(); i != 2 {
		t.Errorf("after previous from 0, index = %d, want 2", i)
	}
	g.Advance(Next)
	if i, _ := g.Lightbox().Index(); i != 0 {
		t.Errorf("after next from 2, index = %d, want 0", i)
	}
}

func TestGallery_AdvanceWhileClosed(t *testing.T) {
	g := New(testCatalog(), nil)
	g.Advance(Next)
	g.Advance(Previous)
	if g.Lightbox().IsOpen() {
		t.Error("Advance should not open the lightbox")
	}
}

func TestGallery_CloseAndReopen(t *testing.T) {
	g := New(testCatalog(), nil)
	_ = g.Open(5)
	g.Advance(Next)
	g.Close()

	if _, ok := g.Lightbox().Index(); ok {
		t.Error("Close should discard the index")
	}
	g.Close()

	_ = g.Open(1)
	s, _ := g.Current()
	if s.Photo.ID != 2 || s.Index != 1 {
		t.Errorf("reopened at %+v, want index 1 / photo 2", s)
	}
}

func TestGallery_FilterChangeFollowsPhoto(t *testing.T) {
	g := New(testCatalog(), nil)
	_ = g.Open(6) // Facade, second Architecture photo

	g.SetCategory(Architecture)
	s, ok := g.Current()
	if !ok {
		t.Fatal("expected lightbox to stay open")
	}
	if s.Photo.ID != 7 || s.Index != 1 || s.Total != 2 {
		t.Errorf("slide = %+v, want Facade at 1 of 2", s)
	}

	g.SetCategory(All)
	s, _ = g.Current()
	if s.Photo.ID != 7 || s.Index != 6 {
		t.Errorf("back to All: slide = %+v, want Facade at 6", s)
	}
}

func TestGallery_FilterChangeClosesWhenFilteredOut(t *testing.T) {
	kb := NewDispatcher()
	g := New(testCatalog(), kb)
	g.SetCategory(Nature)
	_ = g.Open(2)

	g.SetCategory(Architecture)
	if g.Lightbox().IsOpen() {
		t.Fatal("expected lightbox to close when the photo leaves the view")
	}
	if kb.Listeners() != 0 {
		t.Errorf("expected key binding released, %d listeners left", kb.Listeners())
	}
	if _, ok := g.Current(); ok {
		t.Error("expected no current slide")
	}
}

func TestGallery_FilterChangeToEmpty(t *testing.T) {
	g := New(testCatalog(), nil)
	_ = g.Open(3)
	g.SetCategory(Portrait)
	if g.Lightbox().IsOpen() {
		t.Error("expected lightbox closed on empty view")
	}
	g.Advance(Next)
	if g.Lightbox().IsOpen() {
		t.Error("Advance must not reopen")
	}
}

func TestGallery_SameCategoryKeepsIndex(t *testing.T) {
	g := New(testCatalog(), nil)
	g.SetCategory(Nature)
	_ = g.Open(1)
	g.SetCategory(Nature)
	if i, ok := g.Lightbox().Index(); !ok || i != 1 {
		t.Errorf("index = %d, %v; want 1, true", i, ok)
	}
}

func TestGallery_AdvanceOnCatalogShorterThanIndex(t *testing.T) {
	g := New(nil, nil)
	g.lightbox.show(3)
	g.Advance(Next)
	if g.Lightbox().IsOpen() {
		t.Error("expected empty view to close the lightbox")
	}
}

func TestSlide_Counter(t *testing.T) {
	s := Slide{Position: 3, Total: 8}
	if got := s.Counter(); got != "3 / 8" {
		t.Errorf("Counter() = %q", got)
	}
}

func TestLightbox_String(t *testing.T) {
	var l Lightbox
	if l.String() != "Closed" {
		t.Errorf("got %q", l.String())
	}
	l.show(4)
	if l.String() != "Open(4)" {
		t.Errorf("got %q", l.String())
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"prev": Previous, "previous": Previous, "next": Next} {
		got, ok := ParseDirection(in)
		if !ok || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseDirection("up"); ok {
		t.Error("expected up to be rejected")
	}
}
