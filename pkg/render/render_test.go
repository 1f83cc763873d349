package render

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tinyrange/freqs/pkg/freq"
)

func TestRenderFixture(t *testing.T) {
	table, _, err := freq.Count(bytes.NewReader([]byte{0x00, 'A', 'A', '\n'}))
	if err != nil {
		t.Fatal(err)
	}

	lines := New().Render(table)

	want := []string{
		`  00 : 1: <NULL>`,
		`  0a : 1: \n`,
		`  41 : 2: A`,
	}

	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}

	for i, line := range lines {
		if line.String() != want[i] {
			t.Errorf("line %d = %q, want %q", i, line.String(), want[i])
		}
	}
}

func TestRenderSkipsZeroCounts(t *testing.T) {
	var table freq.Table
	table[0x00] = 1
	table[0x41] = 7
	table[0xff] = 2

	lines := New().Render(table)

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	for i := 1; i < len(lines); i++ {
		if lines[i].Value <= lines[i-1].Value {
			t.Error("lines are not in ascending byte value order")
		}
	}

	for _, line := range lines {
		if line.Count == 0 {
			t.Errorf("zero count emitted for value %s", line.Hex())
		}
	}
}

func TestRenderEmptyTable(t *testing.T) {
	if lines := New().Render(freq.Table{}); len(lines) != 0 {
		t.Errorf("got %d lines for an empty table, want 0", len(lines))
	}
}

func TestRenderPurity(t *testing.T) {
	var table freq.Table
	table['x'] = 10
	table[0x02] = 4

	r := New()

	first := r.Render(table)
	second := r.Render(table)

	if !reflect.DeepEqual(first, second) {
		t.Error("rendering the same table twice gave different lines")
	}

	if table['x'] != 10 || table[0x02] != 4 {
		t.Error("rendering mutated the table")
	}
}

func TestLabelPolicy(t *testing.T) {
	r := New()

	cases := []struct {
		value byte
		want  string
	}{
		{0x00, "<NULL>"},
		{0x07, "<BEL>"},
		{0x09, "<TAB>"},
		{0x0a, `\n`},
		{0x0d, `\r`},
		{0x18, "<CAN>"},
		{0x19, "<EM>"},
		{0x1a, "<SUB>"},
		{0x20, "<space>"},
		{0x41, "A"},
		{0x61, "a"},
		{0x7e, "~"},
		{0x7f, "<DEL>"},
		{0x80, `\x80`},
		{0xa0, "<non break space>"},
		{0xad, "<soft hyphen>"},
		{0xff, `\xff`},
	}

	for _, c := range cases {
		if got := r.Label(c.value); got != c.want {
			t.Errorf("Label(0x%02x) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestEveryByteHasALabel(t *testing.T) {
	r := New()

	for i := 0; i < 256; i++ {
		if r.Label(byte(i)) == "" {
			t.Errorf("byte 0x%02x has an empty label", i)
		}
	}
}

func TestHexPadding(t *testing.T) {
	if got := (Line{Value: 0x05}).Hex(); got != "05" {
		t.Errorf("Hex() = %q, want %q", got, "05")
	}

	if got := (Line{Value: 0xff}).Hex(); got != "ff" {
		t.Errorf("Hex() = %q, want %q", got, "ff")
	}
}

func TestLineString(t *testing.T) {
	line := Line{Value: 0x61, Count: 300000, Label: "a"}

	if got := line.String(); got != `  61 : 300000: a` {
		t.Errorf("String() = %q", got)
	}
}

func TestNewWithLabels(t *testing.T) {
	r := NewWithLabels(map[byte]string{0x00: "zero", 0x41: "capital a"})

	if got := r.Label(0x00); got != "zero" {
		t.Errorf("Label(0x00) = %q, want %q", got, "zero")
	}

	if got := r.Label(0x41); got != "capital a" {
		t.Errorf("Label(0x41) = %q, want %q", got, "capital a")
	}

	// Everything else keeps the builtin labels.
	if got := r.Label(0x42); got != "B" {
		t.Errorf("Label(0x42) = %q, want %q", got, "B")
	}
}

func writeLabelFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "labels.yaml")
	if err := os.WriteFile(path, []byte(contents), os.FileMode(0644)); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadLabelFile(t *testing.T) {
	path := writeLabelFile(t, "0x00: zero byte\n10: line feed\n")

	labels, err := LoadLabelFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := map[byte]string{0x00: "zero byte", 0x0a: "line feed"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestLoadLabelFileRejectsOutOfRange(t *testing.T) {
	path := writeLabelFile(t, "300: too big\n")

	if _, err := LoadLabelFile(path); err == nil {
		t.Error("expected an error for a value above 255")
	}
}

func TestLoadLabelFileRejectsEmptyNames(t *testing.T) {
	path := writeLabelFile(t, "7: \"\"\n")

	if _, err := LoadLabelFile(path); err == nil {
		t.Error("expected an error for an empty label")
	}
}

func TestLoadLabelFileMissing(t *testing.T) {
	if _, err := LoadLabelFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
