package render

import (
	"fmt"
	"os"

	"github.com/tinyrange/freqs/pkg/freq"
	"gopkg.in/yaml.v3"
)

// Line is one row of a rendered frequency table.
type Line struct {
	Value byte
	Count uint64
	Label string
}

// Hex returns the line's byte value as two lowercase hex digits.
func (l Line) Hex() string {
	return fmt.Sprintf("%02x", l.Value)
}

func (l Line) String() string {
	return fmt.Sprintf("  %-3s: %d: %s", l.Hex(), l.Count, l.Label)
}

// Renderer turns a completed count table into display lines. Labels for all
// 256 byte values are resolved once at construction so rendering itself
// never consults the override map again.
type Renderer struct {
	labels [256]string
}

// New returns a Renderer using the builtin label table.
func New() *Renderer {
	r := &Renderer{}

	for i := range r.labels {
		r.labels[i] = fallbackLabel(byte(i))
	}
	for b, name := range labelNames {
		r.labels[b] = name
	}

	return r
}

// NewWithLabels returns a Renderer with per-byte overrides applied on top of
// the builtin label table.
func NewWithLabels(overrides map[byte]string) *Renderer {
	r := New()

	for b, name := range overrides {
		r.labels[b] = name
	}

	return r
}

// fallbackLabel names a byte that has no symbolic entry. Printable ASCII
// shows as itself, everything else as a \xNN escape.
func fallbackLabel(b byte) string {
	if b > 0x20 && b < 0x7f {
		return string(rune(b))
	}

	return fmt.Sprintf(`\x%02x`, b)
}

// Label returns the resolved label for a single byte value.
func (r *Renderer) Label(b byte) string { return r.labels[b] }

// Render emits one line per nonzero count, in ascending byte value order.
// The table is taken by value and never mutated, so rendering the same table
// twice yields identical lines.
func (r *Renderer) Render(t freq.Table) []Line {
	var lines []Line

	for v, count := range t {
		if count == 0 {
			continue
		}

		lines = append(lines, Line{Value: byte(v), Count: count, Label: r.labels[v]})
	}

	return lines
}

// LoadLabelFile reads a YAML mapping of byte values (decimal or 0x-prefixed
// hex) to label names, for use with NewWithLabels.
func LoadLabelFile(path string) (map[byte]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read label file: %w", err)
	}

	var raw map[int]string
	if err := yaml.Unmarshal(contents, &raw); err != nil {
		return nil, fmt.Errorf("could not parse label file %s: %w", path, err)
	}

	labels := make(map[byte]string, len(raw))
	for value, name := range raw {
		if value < 0 || value > 255 {
			return nil, fmt.Errorf("label file %s: byte value %d out of range", path, value)
		}
		if name == "" {
			return nil, fmt.Errorf("label file %s: empty label for byte value %d", path, value)
		}

		labels[byte(value)] = name
	}

	return labels, nil
}
