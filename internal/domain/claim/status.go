// internal/domain/claim/status.go
package claim

import "fmt"

// Status is stored as the Swedish display label, exactly as the intake
// database writes it. Any status is reachable from any other.
type Status string

const (
	StatusNotStarted Status = "Ej påbörjad"
	StatusInProgress Status = "Under behandling"
	StatusCompleted  Status = "Avslutad"
)

// StatusOptions lists the legal statuses in dropdown order.
func StatusOptions() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted}
}

// ParseStatus validates an incoming status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}
