package core

import (
	"errors"
	"slices"
	"testing"
)

func TestCompileReplacesWidgetsWithRefs(t *testing.T) {
	a := newProbe("a", nil)
	b := newProbe("b", nil)
	c, err := Compile(VBox(a, Frame("f", HBox(b))))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := c.IDs(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("ids mismatch: %v", got)
	}
	refs := 0
	c.Content.Walk(func(n Term) bool {
		if n.Name == RefName {
			refs++
		}
		return true
	})
	if refs != 2 {
		t.Fatalf("expected 2 refs, got %d", refs)
	}
}

func TestCompileRejectsDuplicateIDs(t *testing.T) {
	_, err := Compile(VBox(newProbe("a", nil), newProbe("a", nil)))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	w := newProbe("same", nil)
	if _, err := Compile(HBox(w, w)); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("embedding one widget twice should fail, got %v", err)
	}
}

func TestDefaultIDCollision(t *testing.T) {
	_, err := Compile(VBox(&nameless{probe: *newProbe("", nil)}, &nameless{probe: *newProbe("", nil)}))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("two widgets defaulting to one id should fail, got %v", err)
	}
}

func TestExpandLeavesUnknownRefs(t *testing.T) {
	out := Expand(VBox(Ref("ghost")), nil)
	if _, ok := out.Find("ghost"); ok {
		t.Fatalf("Find skips refs")
	}
	if kids := out.Children(); len(kids) != 1 || kids[0].Name != RefName {
		t.Fatalf("unknown ref should stay: %v", out)
	}
}
