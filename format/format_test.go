package format

import (
	"strings"
	"testing"
)

const sample = "\"App\"\n{\n\t\"id\"\t\"220\"\n\t\"cfg\"\n\t{\n\t\t\"lang\"\t\"english\"\n\t}\n}"

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"v": VDFFormat, "vdf": VDFFormat,
		"j": JSONFormat, "json": JSONFormat,
		"y": YAMLFormat, "yaml": YAMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a/b.json":      JSONFormat,
		"a.yaml":        YAMLFormat,
		"a.yml":         YAMLFormat,
		"gameinfo.vdf":  VDFFormat,
		"appmanifest_1": VDFFormat,
	} {
		if got := FromPath(path); got != want {
			t.Errorf("FromPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestConvert(t *testing.T) {
	doc, err := Decode([]byte(sample), VDFFormat)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		out, err := Encode(doc, f)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		back, err := Decode(out, f)
		if err != nil {
			t.Fatalf("%s: decode of\n%s\nfailed: %v", f, out, err)
		}
		// Name does not survive JSON/YAML, but the tree must.
		if !back.Root.Equal(doc.Root) {
			t.Errorf("%s round trip changed the tree:\n%s", f, out)
		}
		if back.Name != "" {
			t.Errorf("%s carried a name: %q", f, back.Name)
		}
	}
	vdfOut, err := Encode(doc, VDFFormat)
	if err != nil {
		t.Fatal(err)
	}
	if string(vdfOut) != sample {
		t.Errorf("vdf encode = %q", vdfOut)
	}
}

func TestJSONOutputIsOrdered(t *testing.T) {
	doc, err := Decode([]byte(sample), VDFFormat)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Encode(doc, JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if idIdx, cfgIdx := strings.Index(string(out), `"id"`), strings.Index(string(out), `"cfg"`); idIdx < 0 || cfgIdx < idIdx {
		t.Errorf("json = %s", out)
	}
}
