// internal/domain/claim/category.go
package claim

import "fmt"

// Category selects which claim table and which detail-view extras apply.
// The values double as URL path segments, matching the portal's routes.
type Category string

const (
	CategoryGlass Category = "glas"
	CategoryKeys  Category = "keys"
)

// ParseCategory validates a path segment against the known categories.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryGlass, CategoryKeys:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown claim category %q", s)
}

// Table returns the backing table for the category.
func (c Category) Table() string {
	switch c {
	case CategoryGlass:
		return "glas_claims"
	case CategoryKeys:
		return "key_claims"
	}
	return ""
}

// HasPhotos reports whether claims in this category carry damage photos.
// Only glass claims do; key orders have the signature image only.
func (c Category) HasPhotos() bool {
	return c == CategoryGlass
}

// Label is the Swedish display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryGlass:
		return "Glasskador"
	case CategoryKeys:
		return "Nycklar"
	}
	return string(c)
}

// noun is the plural noun used inside user-facing messages.
func (c Category) noun() string {
	switch c {
	case CategoryGlass:
		return "glasskador"
	case CategoryKeys:
		return "nyckelbeställningar"
	}
	return "ärenden"
}

// FetchErrorMessage is the blocking error shown when the list cannot load.
func (c Category) FetchErrorMessage() string {
	switch c {
	case CategoryGlass:
		return "Kunde inte hämta glasskador"
	case CategoryKeys:
		return "Kunde inte hämta nycklar"
	}
	return "Kunde inte hämta ärenden"
}
