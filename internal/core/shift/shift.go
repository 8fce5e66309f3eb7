// Package shift models time-comparison shift tags and their resolution rules
package shift

// A shift tag names the offset between a chart's primary time range and a
// comparison range. Most tags are literal expressions the resolution service
// understands directly ("1 week ago", "52 weeks ago"). Two reserved tags are
// resolved against the current range instead of being passed through.
const (
	// Custom derives the offset from an explicitly provided start date
	Custom = "custom"

	// Inherit reuses the span of the current range as the offset
	Inherit = "inherit"
)

// legacyTags maps single-character codes from the old chart-form encoding to
// their modern tag equivalents. The old form stored one code, not a list.
var legacyTags = map[string]string{
	"c": Custom,
	"r": Inherit,
	"y": "1 year ago",
	"m": "1 month ago",
	"w": "1 week ago",
}

// Config is the tagged shift configuration resolved once at the input
// boundary: either a modern tag list or a single legacy code. The zero value
// means "no shifts configured".
type Config struct {
	tags   []string
	legacy string
	modern bool
}

// Modern builds a Config from current-style shift tags
func Modern(tags ...string) Config {
	return Config{tags: tags, modern: true}
}

// Legacy builds a Config from an old single-character code
func Legacy(code string) Config {
	return Config{legacy: code}
}

// Tags returns the effective tag list. Legacy codes translate through the
// fixed mapping; unknown codes translate to nothing.
func (c Config) Tags() []string {
	if c.modern {
		return c.tags
	}
	if c.legacy == "" {
		return nil
	}
	if tag, ok := legacyTags[c.legacy]; ok {
		return []string{tag}
	}
	return nil
}

// IsZero reports whether no shift configuration is present
func (c Config) IsZero() bool { return !c.modern && c.legacy == "" }

// IsRelative reports whether tag must be resolved against the current range
func IsRelative(tag string) bool { return tag == Custom || tag == Inherit }

// Partition splits tags into literal tags (passed to the resolution service
// as-is) and relative tags (custom/inherit), preserving order
func Partition(tags []string) (literal, relative []string) {
	for _, t := range tags {
		if IsRelative(t) {
			relative = append(relative, t)
		} else {
			literal = append(literal, t)
		}
	}
	return literal, relative
}

// Contains reports whether tags includes tag
func Contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
