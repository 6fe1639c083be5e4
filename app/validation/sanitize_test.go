package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	assert.Equal(t, "hello", StripTags("hello"))
	assert.Equal(t, "hello", StripTags("<b>hello</b>"))
	assert.Equal(t, "alert(1)", StripTags("<script>alert(1)</script>"))
	assert.Equal(t, "hello", StripTags("  <i>hello</i>  "))
	assert.Equal(t, "", StripTags("<br/>"))
	assert.Equal(t, "a  b", StripTags("a <img src=x> b"))
}

func TestHasMarkup(t *testing.T) {
	assert.False(t, HasMarkup("a plain sentence"))
	assert.False(t, HasMarkup("question about marks (unit 2)?"))
	assert.True(t, HasMarkup("<b>bold</b>"))
	assert.True(t, HasMarkup("a < b"))
	assert.True(t, HasMarkup("template {{.Name}}"))
	assert.True(t, HasMarkup("}"))
}
