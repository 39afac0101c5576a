package ir

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Items
		`""`,
		`"hello"`,
		`hello`,
		`"with\nnewline"`,
		`"with\ttab"`,
		`"with \"quotes\""`,
		`"back\\slash"`,

		// Groups
		"{\n}",
		"\"name\"\n{\n}",
		"{\n\t\"k\"\t\"v\"\n}",
		"\"Test\"\n{\n\t\"int\"\t\"1\"\n\t\"inner\"\n\t{\n\t\t\"foo\"\t\"baz\"\n\t\t\"bar\"\t\"0\"\n\t}\n}",

		// Bareword keys and values
		"{\nk v\n}",
		"\"mix\"\n{\n\tbare \"quoted\"\n}",

		// Edge cases
		`{`,
		`}`,
		`"unterminated`,
		`"bad\escape"`,
		"\"a\"\t\"b\"",
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic.
		doc, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// If parse succeeds, the canonical encoding must parse back
		// to an equal document.
		out, err := doc.Encode()
		if err != nil {
			t.Fatalf("parsed %q but encode failed: %v", data, err)
		}
		back, err := Parse(out)
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", out, err)
		}
		if !back.Equal(doc) {
			t.Fatalf("round trip of %q changed the document: %q", data, out)
		}
	})
}
