package pretty

import (
	"bytes"
	"testing"

	"github.com/vdf-format/go-vdf/ir"
)

const sample = "\"Test\"\n{\n\t\"int\"\t\"1\"\n\t\"inner\"\n\t{\n\t\t\"foo\"\t\"baz\"\n\t\t\"bar\"\t\"0\"\n\t}\n}"

func TestFprintNoColorsIsCanonical(t *testing.T) {
	doc, err := ir.Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, NoColors(), doc); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != sample+"\n" {
		t.Errorf("output:\n%q\nwant:\n%q", got, sample+"\n")
	}
}

func TestFprintColorsPreserveText(t *testing.T) {
	doc, err := ir.Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, NewColors(), doc); err != nil {
		t.Fatal(err)
	}
	// Stripping ANSI escapes must give back the canonical text.
	if got := stripANSI(buf.Bytes()); string(got) != sample+"\n" {
		t.Errorf("stripped output:\n%q\nwant:\n%q", got, sample+"\n")
	}
}

func stripANSI(b []byte) []byte {
	var out []byte
	for i := 0; i < len(b); i++ {
		if b[i] == 0x1b && i+1 < len(b) && b[i+1] == '[' {
			for i < len(b) && b[i] != 'm' {
				i++
			}
			continue
		}
		out = append(out, b[i])
	}
	return out
}
