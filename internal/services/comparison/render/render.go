// Package render turns resolved comparison labels into display text
package render

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultHeader is the line shown above the label list
const DefaultHeader = "Time comparison:"

// Block is the renderable form of a label batch: a header plus one entry
// per distinct label, in resolution order.
type Block struct {
	Header  string
	Entries []string
}

// Empty reports whether the block has nothing to show
func (b Block) Empty() bool { return len(b.Entries) == 0 }

// Text renders the block as plain lines. An empty block renders to "".
func (b Block) Text() string {
	if b.Empty() {
		return ""
	}
	return b.Header + "\n" + strings.Join(b.Entries, "\n")
}

// Build assembles a Block from raw labels. Labels are keyed by content, so
// duplicates (empty labels included) collapse to their first occurrence;
// the header shows whenever any label was supplied, even an empty one.
// Labels are NFC-normalized before keying so visually identical text cannot
// repeat.
func Build(labels []string) Block {
	b := Block{Header: DefaultHeader}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		key := norm.NFC.String(l)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		b.Entries = append(b.Entries, l)
	}
	return b
}
