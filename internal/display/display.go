// Package display renders digests for a terminal: lowercase hex split into
// 8 character groups, alternating between bold and regular blue.
package display

import (
	"encoding/hex"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// GroupLen is the number of hex characters per group.
const GroupLen = 8

const (
	promptLabel = "SHA256"
	promptSigil = ":$"

	// Prompt is the text shown before each line of input.
	Prompt = promptLabel + promptSigil + " "
)

// Printer writes prompts and digests to a single writer.
type Printer struct {
	out    io.Writer
	plain  bool
	strong lipgloss.Style
	weak   lipgloss.Style
	label  lipgloss.Style
	sigil  lipgloss.Style
}

// New returns a Printer for out. The profile decides which escape sequences
// are emitted; termenv.Ascii emits none. When plain is set, digests are
// printed as one unbroken hex string with no styling.
func New(out io.Writer, profile termenv.Profile, plain bool) *Printer {
	renderer := lipgloss.NewRenderer(out, termenv.WithProfile(profile))
	// the renderer re-detects the profile from out unless told otherwise.
	renderer.SetColorProfile(profile)

	blue := lipgloss.Color("4")
	return &Printer{
		out:    out,
		plain:  plain,
		strong: renderer.NewStyle().Bold(true).Foreground(blue),
		weak:   renderer.NewStyle().Foreground(blue),
		label:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		sigil:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}

// Groups splits the hex form of digest into GroupLen character pieces.
func Groups(digest []byte) []string {
	encoded := hex.EncodeToString(digest)
	groups := make([]string, 0, (len(encoded)+GroupLen-1)/GroupLen)
	for len(encoded) > GroupLen {
		groups = append(groups, encoded[:GroupLen])
		encoded = encoded[GroupLen:]
	}
	if len(encoded) > 0 {
		groups = append(groups, encoded)
	}
	return groups
}

// Render returns the styled digest without a trailing newline.
func (p *Printer) Render(digest []byte) string {
	if p.plain {
		return hex.EncodeToString(digest)
	}

	var b strings.Builder
	for i, group := range Groups(digest) {
		if i%2 == 0 {
			b.WriteString(p.strong.Render(group))
		} else {
			b.WriteString(p.weak.Render(group))
		}
	}
	return b.String()
}

// Digest writes the rendered digest followed by a newline.
func (p *Printer) Digest(digest []byte) error {
	_, err := io.WriteString(p.out, p.Render(digest)+"\n")
	return err
}

// Prompt writes the input prompt.
func (p *Printer) Prompt() error {
	_, err := io.WriteString(p.out, p.label.Render(promptLabel)+p.sigil.Render(promptSigil)+" ")
	return err
}

// Done reports whether line ends an interactive session: it is empty or
// holds only whitespace.
func Done(line string) bool {
	return strings.TrimSpace(line) == ""
}
