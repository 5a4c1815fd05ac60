// internal/domain/claim/dto.go
package claim

// ListResult is the list endpoint payload. Total is the size of the
// unfiltered collection so a client can tell an empty tenant from filters
// that matched nothing.
type ListResult struct {
	Claims  []*Claim `json:"claims"`
	Total   int      `json:"total"`
	Message string   `json:"message,omitempty"`
}

// PhotoRef is one damage photo resolved to a short-lived download URL.
type PhotoRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Detail is everything the detail view needs, assembled from the record,
// the tenant profile and the artifact store. It renders all-or-nothing.
type Detail struct {
	Claim        *Claim     `json:"claim"`
	SignatureURL string     `json:"signature_url"`
	Logo         string     `json:"logo"`
	Photos       []PhotoRef `json:"photos,omitempty"`
}

// UpdateStatusRequest is the single-field status mutation.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
