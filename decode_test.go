package vdf

import (
	"errors"
	"strings"
	"testing"
)

type decInner struct {
	Foo string `vdf:"foo"`
	Bar bool   `vdf:"bar"`
}

type decTest struct {
	Int   uint32   `vdf:"int"`
	Inner decInner `vdf:"inner"`
}

const decTestDoc = "\"decTest\"\n{\n\t\"int\"\t\"1\"\n\t\"inner\"\n\t{\n\t\t\"foo\"\t\"baz\"\n\t\t\"bar\"\t\"0\"\n\t}\n}"

func TestUnmarshalStruct(t *testing.T) {
	var got decTest
	if err := Unmarshal([]byte(decTestDoc), &got); err != nil {
		t.Fatal(err)
	}
	want := decTest{Int: 1, Inner: decInner{Foo: "baz", Bar: false}}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestUnmarshalTopLevelNameMismatch(t *testing.T) {
	doc := strings.Replace(decTestDoc, "decTest", "Other", 1)
	var got decTest
	err := Unmarshal([]byte(doc), &got)
	var eerr *ExpectedError
	if !errors.As(err, &eerr) {
		t.Fatalf("got %v, want *ExpectedError", err)
	}
	if eerr.Want != `"decTest"` {
		t.Errorf("Want = %q", eerr.Want)
	}
}

func TestUnmarshalTrailingContent(t *testing.T) {
	var got decTest
	if err := Unmarshal([]byte(decTestDoc+" \n\t "), &got); err != nil {
		t.Errorf("trailing whitespace: %v", err)
	}
	err := Unmarshal([]byte(decTestDoc+"\n\"extra\""), &got)
	if !errors.Is(err, ErrLateEOF) {
		t.Errorf("trailing token: got %v, want ErrLateEOF", err)
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	for _, doc := range []string{
		"",
		`"decTest"`,
		"\"decTest\"\n{\n\t\"int\"",
		"\"decTest\"\n{\n\t\"int\"\t\"1\"\n",
	} {
		var got decTest
		if err := Unmarshal([]byte(doc), &got); !errors.Is(err, ErrEarlyEOF) {
			t.Errorf("Unmarshal(%q): got %v, want ErrEarlyEOF", doc, err)
		}
	}
}

func TestUnmarshalBoolStrict(t *testing.T) {
	for _, text := range []string{"true", "false", "2", "", "yes"} {
		var b bool
		err := Unmarshal([]byte(`"`+text+`"`), &b)
		var eerr *ExpectedError
		if !errors.As(err, &eerr) {
			t.Errorf("bool %q: got %v, want *ExpectedError", text, err)
		}
	}
	var b bool
	if err := Unmarshal([]byte(`"1"`), &b); err != nil || !b {
		t.Errorf("bool 1: %v %v", b, err)
	}
	if err := Unmarshal([]byte(`"0"`), &b); err != nil || b {
		t.Errorf("bool 0: %v %v", b, err)
	}
}

func TestUnmarshalScalars(t *testing.T) {
	var i8 int8
	if err := Unmarshal([]byte(`"-12"`), &i8); err != nil || i8 != -12 {
		t.Errorf("int8: %v %v", i8, err)
	}
	var u16 uint16
	if err := Unmarshal([]byte(`"345"`), &u16); err != nil || u16 != 345 {
		t.Errorf("uint16: %v %v", u16, err)
	}
	var f float64
	if err := Unmarshal([]byte(`"420.1337"`), &f); err != nil || f != 420.1337 {
		t.Errorf("float64: %v %v", f, err)
	}
	var s string
	if err := Unmarshal([]byte(`"he\"llo"`), &s); err != nil || s != `he"llo` {
		t.Errorf("string: %q %v", s, err)
	}
}

func TestUnmarshalParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		into func() any
	}{
		{"int overflow", `"300"`, func() any { return new(int8) }},
		{"uint negative", `"-1"`, func() any { return new(uint32) }},
		{"not a number", `"abc"`, func() any { return new(int64) }},
		{"not a float", `"x.y"`, func() any { return new(float64) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Unmarshal([]byte(tc.doc), tc.into())
			var perr *ParseValueError
			if !errors.As(err, &perr) {
				t.Errorf("got %v, want *ParseValueError", err)
			}
		})
	}
}

func TestUnmarshalScalarAtDelimiter(t *testing.T) {
	var s string
	err := Unmarshal([]byte("{"), &s)
	var eerr *ExpectedError
	if !errors.As(err, &eerr) {
		t.Fatalf("got %v, want *ExpectedError", err)
	}
}

func TestUnmarshalUnknownField(t *testing.T) {
	doc := "\"decTest\"\n{\n\t\"bogus\"\t\"1\"\n}"
	var got decTest
	err := Unmarshal([]byte(doc), &got)
	var uerr *UnsupportedTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("got %v, want *UnsupportedTypeError", err)
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestUnmarshalAnonymousMap(t *testing.T) {
	// No defined type name, so no leading document name either.
	doc := "{\n\t\"a\"\t\"1\"\n\t\"b\"\t\"2\"\n}"
	var got map[string]string
	if err := Unmarshal([]byte(doc), &got); err != nil {
		t.Fatal(err)
	}
	if got["a"] != "1" || got["b"] != "2" || len(got) != 2 {
		t.Errorf("got %v", got)
	}
}

type libraryFolders map[string]string

func TestUnmarshalNamedMapChecksName(t *testing.T) {
	doc := "\"libraryFolders\"\n{\n\t\"1\"\t\"D:\\\\SteamLibrary\"\n}"
	var got libraryFolders
	if err := Unmarshal([]byte(doc), &got); err != nil {
		t.Fatal(err)
	}
	if got["1"] != `D:\SteamLibrary` {
		t.Errorf("got %v", got)
	}

	var bad libraryFolders
	err := Unmarshal([]byte(strings.Replace(doc, "libraryFolders", "Nope", 1)), &bad)
	var eerr *ExpectedError
	if !errors.As(err, &eerr) {
		t.Errorf("wrong wrapper name: got %v, want *ExpectedError", err)
	}
}

func TestUnmarshalEnum(t *testing.T) {
	var d weekday
	if err := Unmarshal([]byte(`"Monday"`), &d); err != nil || d != monday {
		t.Errorf("got %v %v", d, err)
	}
	if err := Unmarshal([]byte(`"Noday"`), &d); err == nil {
		t.Error("unknown variant should fail")
	}
}

func TestUnmarshalUnsupportedTargets(t *testing.T) {
	tests := []struct {
		name string
		into any
		kind string
	}{
		{"slice", new([]int), "seq"},
		{"array", new([3]int), "tuple"},
		{"byte slice", new([]byte), "byte array"},
		{"any", new(any), "any"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Unmarshal([]byte(`"x"`), tc.into)
			var uerr *UnsupportedTypeError
			if !errors.As(err, &uerr) {
				t.Fatalf("got %v, want *UnsupportedTypeError", err)
			}
			if uerr.Kind != tc.kind {
				t.Errorf("kind = %q, want %q", uerr.Kind, tc.kind)
			}
		})
	}
}

func TestUnmarshalTokenizeError(t *testing.T) {
	var s string
	err := Unmarshal([]byte(`"bad \q escape"`), &s)
	var terr *TokenizeError
	if !errors.As(err, &terr) {
		t.Errorf("got %v, want *TokenizeError", err)
	}
}

func TestUnmarshalNonPointer(t *testing.T) {
	var s string
	if err := Unmarshal([]byte(`"x"`), s); err == nil {
		t.Error("non-pointer target should fail")
	}
}

func TestUnmarshalPointerField(t *testing.T) {
	type opt struct {
		Some *string `vdf:"some"`
	}
	doc := "\"opt\"\n{\n\t\"some\"\t\"hello\"\n}"
	var got opt
	if err := Unmarshal([]byte(doc), &got); err != nil {
		t.Fatal(err)
	}
	if got.Some == nil || *got.Some != "hello" {
		t.Errorf("got %v", got.Some)
	}
}

func TestDecoderPeekKind(t *testing.T) {
	d := NewDecoder([]byte(`"a" { }`))
	k, err := d.PeekKind()
	if err != nil {
		t.Fatal(err)
	}
	if k.String() != "item" {
		t.Errorf("got %s", k)
	}
	// Peek does not consume.
	s, err := d.String()
	if err != nil || s != "a" {
		t.Fatalf("got %q %v", s, err)
	}
}
