package rfdata

import (
	"reflect"
	"testing"
)

func TestPalette(t *testing.T) {
	palette := Palette()

	if len(palette) != PaletteSize {
		t.Fatal("Expected", PaletteSize, "colors, got", len(palette))
	}

	want := []string{
		"#ff00ff", // magenta
		"#8040c0",
		"#008080", // teal
		"#809340",
		"#ffa500", // orange
		"#ff5380",
		"#ff00ff", // wraps back to magenta
	}
	if !reflect.DeepEqual(palette, want) {
		t.Errorf("Palette mismatch:\ngot  %v\nwant %v", palette, want)
	}
}

func TestPaletteDeterministic(t *testing.T) {
	if !reflect.DeepEqual(Palette(), Palette()) {
		t.Error("Palette should be identical across calls")
	}
}
