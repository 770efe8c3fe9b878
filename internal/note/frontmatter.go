package note

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// Meta holds the optional YAML frontmatter fields of a note's preamble.
// The preamble is only ever inspected, never rewritten.
type Meta struct {
	Title   string   `yaml:"title"`
	Tags    []string `yaml:"tags"`
	Created string   `yaml:"created"`
}

// ParseMeta reads YAML frontmatter from the preamble text. Notes without
// frontmatter, or with malformed frontmatter, yield a zero Meta.
func ParseMeta(preamble string) Meta {
	var meta Meta
	if _, err := frontmatter.Parse(strings.NewReader(preamble), &meta); err != nil {
		return Meta{}
	}
	return meta
}
