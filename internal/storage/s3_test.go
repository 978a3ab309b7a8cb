package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostImageNameFreshPerUpload(t *testing.T) {
	first := PostImageName(".jpg")
	second := PostImageName(".jpg")

	// Deux uploads de même extension reçoivent des noms distincts :
	// remplacer l'image d'un post ne peut ni écraser l'objet existant
	// ni faire supprimer celui qui vient d'être envoyé.
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "post_"))
	assert.True(t, strings.HasSuffix(first, ".jpg"))
}

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "URL publique S3",
			url:      "https://plume.s3.eu-west-3.amazonaws.com/posts/post_abc.jpg",
			expected: "posts/post_abc.jpg",
		},
		{
			name:     "URL étrangère",
			url:      "https://example.com/posts/post_abc.jpg",
			expected: "",
		},
		{
			name:     "Vide",
			url:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KeyFromURL(tt.url))
		})
	}
}
