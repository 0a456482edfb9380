package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	assert.Equal(t, "http://example.com/catalogue/page-2.html",
		ResolveURL("http://example.com/catalogue/page-1.html", "page-2.html"))
	assert.Equal(t, "http://example.com/media/cover.jpg",
		ResolveURL("http://example.com/", "media/cover.jpg"))
	assert.Equal(t, "https://other.com/x",
		ResolveURL("http://example.com/", "https://other.com/x"))
}

func TestStripRelativePrefix(t *testing.T) {
	assert.Equal(t, "media/cache/cover.jpg", StripRelativePrefix("../../media/cache/cover.jpg"))
	assert.Equal(t, "media/cover.jpg", StripRelativePrefix("./media/cover.jpg"))
	assert.Equal(t, "media/cover.jpg", StripRelativePrefix("media/cover.jpg"))
}
