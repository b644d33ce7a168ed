package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfDocReplacesInPlace(t *testing.T) {
	doc := parseConfDoc("font=monospace 10\nbackground-color=#000000\nwidth=300\n")
	doc.Set("background-color", "#1a1b26")

	assert.Equal(t, "font=monospace 10\nbackground-color=#1a1b26\nwidth=300\n", doc.String())
}

func TestConfDocAppendsMissingKey(t *testing.T) {
	doc := parseConfDoc("font=monospace 10\n")
	doc.Set("text-color", "#c0caf5")

	assert.Equal(t, "font=monospace 10\ntext-color=#c0caf5\n", doc.String())
}

func TestConfDocEmpty(t *testing.T) {
	doc := parseConfDoc("")
	doc.Set("background-color", "#101010")
	assert.Equal(t, "background-color=#101010\n", doc.String())
}

func TestConfDocIdempotent(t *testing.T) {
	doc := parseConfDoc("font=monospace 10\n")
	doc.Set("text-color", "#c0caf5")
	once := doc.String()

	doc = parseConfDoc(once)
	doc.Set("text-color", "#c0caf5")
	assert.Equal(t, once, doc.String(), "re-applying must not duplicate the assignment")
}

func TestConfDocOnlyTouchesGlobalSection(t *testing.T) {
	content := "background-color=#000000\n[urgency=high]\nbackground-color=#ff0000\n"
	doc := parseConfDoc(content)
	doc.Set("background-color", "#1a1b26")

	assert.Equal(t, "background-color=#1a1b26\n[urgency=high]\nbackground-color=#ff0000\n", doc.String(),
		"per-urgency overrides stay untouched")
}

func TestConfDocInsertsBeforeFirstSection(t *testing.T) {
	content := "[urgency=high]\nborder-color=#ff0000\n"
	doc := parseConfDoc(content)
	doc.Set("text-color", "#c0caf5")

	assert.Equal(t, "text-color=#c0caf5\n[urgency=high]\nborder-color=#ff0000\n", doc.String())
}

func TestConfDocIgnoresComments(t *testing.T) {
	content := "# background-color=#remark\nbackground-color=#000000\n"
	doc := parseConfDoc(content)
	doc.Set("background-color", "#123456")

	assert.Equal(t, "# background-color=#remark\nbackground-color=#123456\n", doc.String())
}
