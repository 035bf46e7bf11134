package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/zeebo/assert"
)

var abc = []byte{
	0xba, 0x78, 0x16, 0xbf, 0x8f, 0x01, 0xcf, 0xea, 0x41, 0x41, 0x40, 0xde, 0x5d, 0xae, 0x22, 0x23,
	0xb0, 0x03, 0x61, 0xa3, 0x96, 0x17, 0x7a, 0x9c, 0xb4, 0x10, 0xff, 0x61, 0xf2, 0x00, 0x15, 0xad,
}

func TestGroups(t *testing.T) {
	groups := Groups(abc)
	assert.Equal(t, len(groups), 8)
	assert.Equal(t, strings.Join(groups, " "),
		"ba7816bf 8f01cfea 414140de 5dae2223 b00361a3 96177a9c b410ff61 f20015ad")

	for _, group := range groups {
		assert.Equal(t, len(group), GroupLen)
	}
}

func TestGroupsShort(t *testing.T) {
	assert.Equal(t, strings.Join(Groups([]byte{1, 2, 3, 4, 5}), " "), "01020304 05")
	assert.Equal(t, len(Groups(nil)), 0)
}

func TestDigestAscii(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, termenv.Ascii, false)

	assert.NoError(t, p.Digest(abc))
	assert.Equal(t, buf.String(),
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n")
}

func TestDigestPlain(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, termenv.ANSI, true)

	assert.NoError(t, p.Digest(abc))
	assert.Equal(t, buf.String(),
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n")
}

func TestDigestColor(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, termenv.ANSI, false)

	assert.NoError(t, p.Digest(abc))
	out := buf.String()

	assert.That(t, strings.Contains(out, "\x1b["))
	assert.That(t, strings.HasSuffix(out, "\n"))
	for _, group := range Groups(abc) {
		assert.That(t, strings.Contains(out, group))
	}

	// bold groups and regular groups must not render the same way.
	assert.That(t, p.strong.Render("x") != p.weak.Render("x"))
}

func TestPrompt(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, termenv.Ascii, false)

	assert.NoError(t, p.Prompt())
	assert.Equal(t, buf.String(), Prompt)
	assert.Equal(t, Prompt, "SHA256:$ ")
}

func TestDone(t *testing.T) {
	assert.That(t, Done(""))
	assert.That(t, Done("   "))
	assert.That(t, Done("\t\r"))
	assert.That(t, !Done("abc"))
	assert.That(t, !Done(" a "))
}
