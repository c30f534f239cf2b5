package main

import (
	"image/color"
	"testing"
)

func TestColorTableJsonRoundTrip(t *testing.T) {
	table := defaultColorTable
	table[ColorBg] = color.NRGBA{1, 2, 3, 255}
	table[ColorConfetti4] = color.NRGBA{200, 100, 50, 128}

	jsonBytes, err := ColorTableToJson(table)
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	got, err := ColorTableFromJson(jsonBytes)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}

	if got != table {
		t.Errorf("round trip changed the table:\n%v\nwant\n%v", got, table)
	}
}

func TestColorTableFromJsonPartial(t *testing.T) {
	jsonBytes := []byte(`{
		"Bg": "rebeccapurple",
		"NotAColorName": "#FFFFFF"
	}`)

	got, err := ColorTableFromJson(jsonBytes)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}

	if want := (color.NRGBA{102, 51, 153, 255}); got[ColorBg] != want {
		t.Errorf("Bg = %v, want %v", got[ColorBg], want)
	}
	if got[ColorDigit] != defaultColorTable[ColorDigit] {
		t.Errorf("unnamed entry lost its default: %v", got[ColorDigit])
	}
}

func TestColorTableFromJsonBadColor(t *testing.T) {
	if _, err := ColorTableFromJson([]byte(`{"Bg": "not a color"}`)); err == nil {
		t.Error("bad color string did not error")
	}
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		name string
		str  string
		want color.NRGBA
	}{
		{"hex rgb", "#FF0000", color.NRGBA{255, 0, 0, 255}},
		{"hex rgba", "#11223344", color.NRGBA{17, 34, 51, 68}},
		{"named", "white", color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColorString(tt.str)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.str, err)
			}
			if got != tt.want {
				t.Errorf("parse %q = %v, want %v", tt.str, got, tt.want)
			}
		})
	}
}

func TestLerpColorRGB(t *testing.T) {
	a := color.NRGBA{0, 100, 200, 255}
	b := color.NRGBA{100, 200, 0, 255}

	if got := LerpColorRGB(a, b, 0); got != a {
		t.Errorf("t=0: %v, want %v", got, a)
	}
	if got := LerpColorRGB(a, b, 1); got != b {
		t.Errorf("t=1: %v, want %v", got, b)
	}
	if got, want := LerpColorRGB(a, b, 0.5), (color.NRGBA{50, 150, 100, 255}); got != want {
		t.Errorf("t=0.5: %v, want %v", got, want)
	}
}
