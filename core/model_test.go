package core

import (
	"reflect"
	"testing"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name string
		span InlineSpan
		want []Segment
	}{
		{
			name: "plain text",
			span: InlineSpan{Text: "hello"},
			want: []Segment{{Text: "hello"}},
		},
		{
			name: "empty span",
			span: InlineSpan{},
			want: nil,
		},
		{
			name: "fully bold",
			span: InlineSpan{Text: "all bold", Bold: []BoldRange{{Start: 0, End: 8}}},
			want: []Segment{{Text: "all bold", Bold: true}},
		},
		{
			name: "bold in the middle",
			span: InlineSpan{Text: "a bold b", Bold: []BoldRange{{Start: 2, End: 6}}},
			want: []Segment{{Text: "a "}, {Text: "bold", Bold: true}, {Text: " b"}},
		},
		{
			name: "two ranges",
			span: InlineSpan{Text: "x y z", Bold: []BoldRange{{Start: 0, End: 1}, {Start: 4, End: 5}}},
			want: []Segment{{Text: "x", Bold: true}, {Text: " y "}, {Text: "z", Bold: true}},
		},
		{
			name: "rune offsets with multibyte text",
			span: InlineSpan{Text: "café bold", Bold: []BoldRange{{Start: 5, End: 9}}},
			want: []Segment{{Text: "café "}, {Text: "bold", Bold: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.span.Segments()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segments() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
	}{
		{"default", ThemeDefault},
		{"modern", ThemeModern},
		{"minimal", ThemeMinimal},
		{"", ThemeDefault},
		{"bogus-theme", ThemeDefault},
		{"MODERN", ThemeDefault}, // names are case-sensitive
	}
	for _, tt := range tests {
		if got := ParseTheme(tt.in); got != tt.want {
			t.Errorf("ParseTheme(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestThemeColors(t *testing.T) {
	if got := ThemeModern.Colors().Title; got != "#111827" {
		t.Errorf("modern title color = %q, want #111827", got)
	}
	if got := ThemeMinimal.Colors().Body; got != "#222222" {
		t.Errorf("minimal body color = %q, want #222222", got)
	}
	if got := ThemeDefault.Colors().Accent; got != "#3b82f6" {
		t.Errorf("default accent color = %q, want #3b82f6", got)
	}
}
