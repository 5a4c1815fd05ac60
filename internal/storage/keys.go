// internal/storage/keys.go
package storage

import (
	"fmt"
	"strings"
)

// Artifact keys are laid out per claim: the signature bucket holds
// <claimID>/signature.png, the damage-image bucket holds <claimID>/<name>.

// SignatureKey builds the signature-image key for a claim.
func SignatureKey(claimID string) string {
	return fmt.Sprintf("%s/signature.png", claimID)
}

// PhotoPrefix is the listing prefix for a claim's damage photos.
func PhotoPrefix(claimID string) string {
	return claimID + "/"
}

// PhotoKey builds the key for one named damage photo.
func PhotoKey(claimID, name string) string {
	return fmt.Sprintf("%s/%s", claimID, name)
}

// ParsePhotoKey extracts the claim id and photo name from a key.
func ParsePhotoKey(key string) (claimID, name string, ok bool) {
	parts := strings.SplitN(key, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
