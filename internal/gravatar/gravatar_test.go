package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	want := "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?s=200&r=pg&d=mm"

	assert.Equal(t, want, URL("test@example.com"))

	// Case and surrounding whitespace must not change the derived URL.
	assert.Equal(t, want, URL("  Test@Example.COM "))
}
