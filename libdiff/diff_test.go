package libdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vdf-format/go-vdf/ir"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	doc, err := ir.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return doc.Root
}

func TestDiffEqual(t *testing.T) {
	a := mustParse(t, "{\n\t\"k\"\t\"v\"\n\t\"o\"\n\t{\n\t\t\"x\"\t\"y\"\n\t}\n}")
	b := mustParse(t, "{\n\t\"k\"\t\"v\"\n\t\"o\"\n\t{\n\t\t\"x\"\t\"y\"\n\t}\n}")
	if changes := Diff(a, b); changes != nil {
		t.Errorf("equal trees produced changes: %v", changes)
	}
}

func TestDiffChanges(t *testing.T) {
	from := ir.Object().
		Set("keep", ir.FromString("same")).
		Set("gone", ir.FromString("old")).
		Set("val", ir.FromString("before")).
		Set("sub", ir.Object().Set("deep", ir.FromString("a")))
	to := ir.Object().
		Set("keep", ir.FromString("same")).
		Set("val", ir.FromString("after")).
		Set("sub", ir.Object().Set("deep", ir.FromString("b"))).
		Set("new", ir.FromString("fresh"))

	got := map[string]Kind{}
	for _, c := range Diff(from, to) {
		got[c.Key()] = c.Kind
	}
	want := map[string]Kind{
		"gone":     Delete,
		"val":      Modify,
		"sub.deep": Modify,
		"new":      Add,
	}
	if len(got) != len(want) {
		t.Fatalf("changes = %v, want %v", got, want)
	}
	for k, kind := range want {
		if got[k] != kind {
			t.Errorf("%s = %v, want %v", k, got[k], kind)
		}
	}
}

func TestDiffTypeChange(t *testing.T) {
	from := ir.Object().Set("k", ir.FromString("v"))
	to := ir.Object().Set("k", ir.Object().Set("x", ir.FromString("y")))
	changes := Diff(from, to)
	if len(changes) != 1 || changes[0].Kind != Modify || changes[0].Key() != "k" {
		t.Fatalf("changes = %v", changes)
	}
	if changes[0].From.Type != ir.StringType || changes[0].To.Type != ir.ObjectType {
		t.Error("modify should carry both subtrees")
	}
}

func TestDiffAlignsReorderedKeys(t *testing.T) {
	// A key that moves but keeps its value should not be reported as
	// both deleted and re-added with a modification.
	from := ir.Object().
		Set("a", ir.FromString("1")).
		Set("b", ir.FromString("2")).
		Set("c", ir.FromString("3"))
	to := ir.Object().
		Set("a", ir.FromString("1")).
		Set("c", ir.FromString("3")).
		Set("b", ir.FromString("2"))
	for _, c := range Diff(from, to) {
		if c.Kind == Modify {
			t.Errorf("reorder produced a modify at %s", c.Key())
		}
	}
}

func TestInlineDiff(t *testing.T) {
	got := InlineDiff("Half-Life 2", "Half-Life 3")
	if !strings.Contains(got, "[-2]") || !strings.Contains(got, "[+3]") {
		t.Errorf("InlineDiff = %q", got)
	}
	if InlineDiff("same", "same") != "same" {
		t.Error("equal strings should render verbatim")
	}
}

func TestRender(t *testing.T) {
	from := ir.Object().Set("gone", ir.FromString("x")).Set("val", ir.FromString("a"))
	to := ir.Object().Set("val", ir.FromString("b")).Set("new", ir.FromString("y"))
	var buf bytes.Buffer
	if err := Render(&buf, Diff(from, to)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"- gone", "~ val", "+ new", "[-a][+b]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
