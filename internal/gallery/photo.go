// Package gallery implements the photography section: a category filter
// over a fixed catalog and a lightbox that steps through the filtered
// photos.
package gallery

import "strings"

// Category is a photo category. All is the sentinel that disables filtering.
type Category string

const (
	All          Category = "All"
	Nature       Category = "Nature"
	Architecture Category = "Architecture"
	City         Category = "City"
	Street       Category = "Street"
	Portrait     Category = "Portrait"
	Travel       Category = "Travel"
	Sunset       Category = "Sunset"
)

// categories in filter button order
var categories = []Category{All, Nature, Architecture, City, Street, Portrait, Travel, Sunset}

// Categories returns the selectable filter values, All first.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a filter value case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Photo is one catalog entry.
type Photo struct {
	ID       int
	Title    string
	Category Category
	Location string
	Likes    int
	Views    int
	Image    string
}

var catalog = []Photo{
	{ID: 1, Title: "Mountains", Category: Nature, Location: "Mustang, Nepal", Likes: 24, Views: 156, Image: "/images/mountain.jpg"},
	{ID: 2, Title: "Forest", Category: Nature, Location: "Caledon, ON", Likes: 18, Views: 89, Image: "/images/forest.jpg"},
	{ID: 3, Title: "CN Tower", Category: City, Location: "Downtown Toronto", Likes: 32, Views: 201, Image: "/images/cn.jpg"},
	{ID: 4, Title: "Bergeron Engineering Building", Category: Architecture, Location: "York University", Likes: 45, Views: 312, Image: "/images/berg.jpg"},
	{ID: 5, Title: "Modern Building", Category: Architecture, Location: "York University", Likes: 28, Views: 134, Image: "/images/york.jpg"},
	{ID: 6, Title: "Weekend Concert", Category: City, Location: "Toronto, ON", Likes: 52, Views: 278, Image: "/images/weekend.jpg"},
	{ID: 7, Title: "Transmission line", Category: Sunset, Location: "Vaughan, ON", Likes: 36, Views: 167, Image: "/images/line.jpg"},
	{ID: 8, Title: "City", Category: City, Location: "Humberwest Condos", Likes: 29, Views: 143, Image: "/images/city.jpg"},
}

// Catalog returns a copy of the embedded photo catalog.
func Catalog() []Photo {
	out := make([]Photo, len(catalog))
	copy(out, catalog)
	return out
}

// Filter returns the photos in category c, in catalog order. For All it
// returns the catalog itself.
func Filter(photos []Photo, c Category) []Photo {
	if c == All {
		return photos
	}
	var out []Photo
	for _, p := range photos {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func indexOf(photos []Photo, id int) int {
	for i, p := range photos {
		if p.ID == id {
			return i
		}
	}
	return -1
}
