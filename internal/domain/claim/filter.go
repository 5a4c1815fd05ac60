// internal/domain/claim/filter.go
package claim

import (
	"strings"
	"time"
)

// Predicate is a single list-filter condition.
type Predicate func(*Claim) bool

// And combines predicates conjunctively. With no predicates every claim
// matches, so an empty criteria set leaves the collection untouched.
func And(preds ...Predicate) Predicate {
	return func(c *Claim) bool {
		for _, p := range preds {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

// Criteria is the user-entered filter state for a claim list. Zero values
// mean "unset" and are vacuously true.
type Criteria struct {
	Status             Status
	RegistrationNumber string
	Customer           string
	From               time.Time // day precision; zero = unset
	To                 time.Time // day precision, inclusive of the whole day
}

// MatchesStatus requires an exact status match.
func MatchesStatus(want Status) Predicate {
	return func(c *Claim) bool { return c.Status == want }
}

// MatchesRegistrationNumber requires case-insensitive substring containment.
func MatchesRegistrationNumber(fragment string) Predicate {
	needle := strings.ToLower(fragment)
	return func(c *Claim) bool {
		return strings.Contains(strings.ToLower(c.RegistrationNumber), needle)
	}
}

// MatchesCustomer matches case-insensitively against "first last".
func MatchesCustomer(fragment string) Predicate {
	needle := strings.ToLower(fragment)
	return func(c *Claim) bool {
		return strings.Contains(strings.ToLower(c.CustomerName()), needle)
	}
}

// CreatedOnOrAfter bounds creation at the start of the given day.
func CreatedOnOrAfter(day time.Time) Predicate {
	start := startOfDay(day)
	return func(c *Claim) bool { return !c.CreatedAt.Before(start) }
}

// CreatedOnOrBefore bounds creation at 23:59:59.999 of the given day, so the
// whole calendar day is included.
func CreatedOnOrBefore(day time.Time) Predicate {
	end := endOfDay(day)
	return func(c *Claim) bool { return !c.CreatedAt.After(end) }
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999000000, t.Location())
}

// Predicates expands the set criteria into individual predicates.
func (cr Criteria) Predicates() []Predicate {
	var preds []Predicate
	if cr.Status != "" {
		preds = append(preds, MatchesStatus(cr.Status))
	}
	if cr.RegistrationNumber != "" {
		preds = append(preds, MatchesRegistrationNumber(cr.RegistrationNumber))
	}
	if cr.Customer != "" {
		preds = append(preds, MatchesCustomer(cr.Customer))
	}
	if !cr.From.IsZero() {
		preds = append(preds, CreatedOnOrAfter(cr.From))
	}
	if !cr.To.IsZero() {
		preds = append(preds, CreatedOnOrBefore(cr.To))
	}
	return preds
}

// IsZero reports whether no criterion is set.
func (cr Criteria) IsZero() bool {
	return cr.Status == "" && cr.RegistrationNumber == "" && cr.Customer == "" &&
		cr.From.IsZero() && cr.To.IsZero()
}

// Filter derives the visible subset of claims. It is recomputed from scratch
// on every call; the input slice is never mutated.
func Filter(claims []*Claim, cr Criteria) []*Claim {
	match := And(cr.Predicates()...)
	visible := make([]*Claim, 0, len(claims))
	for _, c := range claims {
		if match(c) {
			visible = append(visible, c)
		}
	}
	return visible
}

// EmptyStateMessage distinguishes "nothing registered at all" from "filters
// matched nothing". Returns "" when the visible set is non-empty.
func EmptyStateMessage(category Category, total, visible int) string {
	if visible > 0 {
		return ""
	}
	if total == 0 {
		return "Det finns inga " + category.noun() + " registrerade för ditt företag än."
	}
	return "Inga " + category.noun() + " matchar dina sökkriterier."
}
