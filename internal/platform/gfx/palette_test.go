package gfx

import (
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    color.Color
		wantErr bool
	}{
		{"firebrick", colornames.Firebrick, false},
		{" DimGray ", colornames.Dimgray, false},
		{"notacolor", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	p, err := Palette([]string{"slategray", "darkorange"})
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if len(p) != 2 {
		t.Fatalf("len = %d, want 2", len(p))
	}
	if paletteColor(p, 3) != colornames.Darkorange {
		t.Error("index 3 should wrap to the second color")
	}
	if paletteColor(p, -2) != colornames.Slategray {
		t.Error("negative indices should wrap")
	}

	if _, err := Palette([]string{"slategray", "bogus"}); err == nil {
		t.Error("unknown names should fail")
	}

	def, err := Palette(nil)
	if err != nil || len(def) != len(defaultGround) {
		t.Errorf("empty palette should use the defaults, got %v, %v", def, err)
	}
}

func TestBackground(t *testing.T) {
	bg, err := Background("")
	if err != nil || bg != defaultBackground {
		t.Errorf("Background(\"\") = %v, %v", bg, err)
	}
	bg, err = Background("black")
	if err != nil || bg != colornames.Black {
		t.Errorf("Background(black) = %v, %v", bg, err)
	}
}
