package fixture

import (
	"fmt"
	"testing"

	"github.com/livefir/vdombench/internal/vdom"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		factory vdom.ElementFactory
		tag     vdom.Tag
	}{
		{"empty", 0, vdom.Span, vdom.TagSpan},
		{"negative", -4, vdom.Span, vdom.TagSpan},
		{"single span", 1, vdom.Span, vdom.TagSpan},
		{"three divs", 3, vdom.Div, vdom.TagDiv},
		{"default size", DefaultNodes, vdom.Span, vdom.TagSpan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := Build(tt.n, tt.factory)

			want := tt.n
			if want < 0 {
				want = 0
			}
			if len(elements) != want {
				t.Fatalf("Expected %d elements, got %d", want, len(elements))
			}

			for i, el := range elements {
				if !el.HasKey || el.Key != i {
					t.Fatalf("Element %d: expected key %d, got %d", i, i, el.Key)
				}
				if wantText := fmt.Sprintf("element %d", i); el.Text != wantText {
					t.Fatalf("Element %d: expected text %q, got %q", i, wantText, el.Text)
				}
				if el.Tag != tt.tag {
					t.Fatalf("Element %d: expected tag %q, got %q", i, tt.tag, el.Tag)
				}
			}
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := Build(50, vdom.Div)
	b := Build(50, vdom.Div)

	for i := range a {
		if a[i] == b[i] {
			t.Fatalf("Element %d: expected a fresh element per build", i)
		}
		if a[i].Key != b[i].Key || a[i].Text != b[i].Text || a[i].Tag != b[i].Tag {
			t.Fatalf("Element %d: builds differ: %+v vs %+v", i, a[i], b[i])
		}
	}
}
