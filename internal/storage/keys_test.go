// internal/storage/keys_test.go
package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureKeyLayout(t *testing.T) {
	assert.Equal(t, "abc/signature.png", SignatureKey("abc"))
}

func TestPhotoKeysShareTheClaimPrefix(t *testing.T) {
	assert.Equal(t, "abc/", PhotoPrefix("abc"))
	assert.Equal(t, "abc/front.jpg", PhotoKey("abc", "front.jpg"))
}

func TestParsePhotoKey(t *testing.T) {
	id, name, ok := ParsePhotoKey("abc/front.jpg")
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
	assert.Equal(t, "front.jpg", name)

	// Nested names keep everything after the first separator.
	id, name, ok = ParsePhotoKey("abc/sub/photo.jpg")
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
	assert.Equal(t, "sub/photo.jpg", name)

	for _, bad := range []string{"", "abc", "abc/", "/front.jpg"} {
		_, _, ok := ParsePhotoKey(bad)
		assert.False(t, ok, "key %q should not parse", bad)
	}
}
