package colour

import (
	"errors"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		want    string
		wantErr error
	}{
		{name: "six digits", input: Hex("009cff"), want: "009cff"},
		{name: "six digits with marker", input: Hex("#009CFF"), want: "009cff"},
		{name: "three digits", input: Hex("abc"), want: "aabbcc"},
		{name: "three digits with marker", input: Hex("#ABC"), want: "aabbcc"},
		{name: "rgb record", input: RGB{R: 0, G: 156, B: 255}, want: "009cff"},
		{name: "rgb black", input: RGB{}, want: "000000"},
		{name: "five digits", input: Hex("#12345"), wantErr: ErrInvalidFormat},
		{name: "four digits", input: Hex("1234"), wantErr: ErrInvalidFormat},
		{name: "seven digits", input: Hex("1234567"), wantErr: ErrInvalidFormat},
		{name: "non hex characters", input: Hex("ggg"), wantErr: ErrInvalidFormat},
		{name: "double marker", input: Hex("##abc"), wantErr: ErrInvalidFormat},
		{name: "empty string", input: Hex(""), wantErr: ErrUndefinedInput},
		{name: "nil input", input: nil, wantErr: ErrUndefinedInput},
		{name: "red too large", input: RGB{R: 300}, wantErr: ErrInvalidRange},
		{name: "green negative", input: RGB{G: -1}, wantErr: ErrInvalidRange},
		{name: "blue too large", input: RGB{B: 256}, wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Normalize() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThreeDigitExpansionMatchesSixDigit(t *testing.T) {
	for _, short := range []string{"abc", "000", "fff", "09c", "F0a"} {
		long := string([]byte{short[0], short[0], short[1], short[1], short[2], short[2]})

		a, err := Normalize(Hex(short))
		if err != nil {
			t.Fatalf("Normalize(%q): %v", short, err)
		}
		b, err := Normalize(Hex(long))
		if err != nil {
			t.Fatalf("Normalize(%q): %v", long, err)
		}
		if a != b {
			t.Errorf("Normalize(%q) = %q, Normalize(%q) = %q", short, a, long, b)
		}
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Input
		wantErr error
	}{
		{name: "hex", input: "#abc", want: Hex("#abc")},
		{name: "bare hex", input: " 009cff ", want: Hex("009cff")},
		{name: "css rgb", input: "rgb(0, 156, 255)", want: RGB{R: 0, G: 156, B: 255}},
		{name: "upper css rgb", input: "RGB(1,2,3)", want: RGB{R: 1, G: 2, B: 3}},
		{name: "triple", input: "0,156,255", want: RGB{R: 0, G: 156, B: 255}},
		{name: "out of range parses", input: "300,0,0", want: RGB{R: 300}},
		{name: "two channels", input: "rgb(1,2)", wantErr: ErrInvalidFormat},
		{name: "non numeric channel", input: "1,x,3", wantErr: ErrInvalidFormat},
		{name: "empty", input: "  ", wantErr: ErrUndefinedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseInput() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInput() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseInput() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestHexToRGB(t *testing.T) {
	got, err := HexToRGB("009cff")
	if err != nil {
		t.Fatalf("HexToRGB() error: %v", err)
	}
	want := RGB{R: 0, G: 156, B: 255}
	if got != want {
		t.Errorf("HexToRGB(\"009cff\") = %+v, want %+v", got, want)
	}

	for _, bad := range []string{"abc", "00zz00", "12345"} {
		if _, err := HexToRGB(bad); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("HexToRGB(%q) error = %v, want ErrInvalidFormat", bad, err)
		}
	}
	if _, err := HexToRGB(""); !errors.Is(err, ErrUndefinedInput) {
		t.Errorf("HexToRGB(\"\") error = %v, want ErrUndefinedInput", err)
	}
}

func TestRGBToHexRejectsOutOfRange(t *testing.T) {
	if _, err := RGBToHex(RGB{R: 300}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("RGBToHex() error = %v, want ErrInvalidRange", err)
	}
}

// sampleRGB walks the RGB cube in coarse steps, always including both ends.
func sampleRGB(step int) []RGB {
	var levels []int
	for v := 0; v < 255; v += step {
		levels = append(levels, v)
	}
	levels = append(levels, 255)

	var out []RGB
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				out = append(out, RGB{R: r, G: g, B: b})
			}
		}
	}
	return out
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range sampleRGB(17) {
		hex, err := RGBToHex(c)
		if err != nil {
			t.Fatalf("RGBToHex(%v): %v", c, err)
		}
		back, err := HexToRGB(hex)
		if err != nil {
			t.Fatalf("HexToRGB(%q): %v", hex, err)
		}
		if back != c {
			t.Errorf("HexToRGB(RGBToHex(%v)) = %v", c, back)
		}
		again, _ := RGBToHex(back)
		if again != hex {
			t.Errorf("RGBToHex(HexToRGB(%q)) = %q", hex, again)
		}
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{name: "red", rgb: RGB{R: 255}, want: HSL{H: 0, S: 1, L: 0.5}},
		{name: "green", rgb: RGB{G: 255}, want: HSL{H: 120, S: 1, L: 0.5}},
		{name: "blue", rgb: RGB{B: 255}, want: HSL{H: 240, S: 1, L: 0.5}},
		{name: "magenta", rgb: RGB{R: 255, B: 255}, want: HSL{H: 300, S: 1, L: 0.5}},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: HSL{H: 0, S: 0, L: 1}},
		{name: "black", rgb: RGB{}, want: HSL{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.rgb)
			if !approxHSL(got, tt.want, 1e-9) {
				t.Errorf("RGBToHSL(%v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestRGBToHSLHueAlwaysNormalised(t *testing.T) {
	for _, c := range sampleRGB(15) {
		h := RGBToHSL(c).H
		if h < 0 || h >= 360 {
			t.Errorf("RGBToHSL(%v).H = %v, want [0,360)", c, h)
		}
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name string
		hsl  HSL
		want RGB
	}{
		{name: "red", hsl: HSL{H: 0, S: 1, L: 0.5}, want: RGB{R: 255}},
		{name: "wrapped red", hsl: HSL{H: 720, S: 1, L: 0.5}, want: RGB{R: 255}},
		{name: "negative hue", hsl: HSL{H: -240, S: 1, L: 0.5}, want: RGB{G: 255}},
		{name: "grey", hsl: HSL{H: 42, S: 0, L: 0.5}, want: RGB{R: 128, G: 128, B: 128}},
		{name: "spring green", hsl: HSL{H: 150, S: 1, L: 0.5}, want: RGB{G: 255, B: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSLToRGB(tt.hsl); got != tt.want {
				t.Errorf("HSLToRGB(%+v) = %v, want %v", tt.hsl, got, tt.want)
			}
		})
	}
}

func TestCMYK(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want CMYK
	}{
		{name: "red", rgb: RGB{R: 255}, want: CMYK{C: 0, M: 1, Y: 1, K: 0}},
		{name: "black", rgb: RGB{}, want: CMYK{K: 1}},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: CMYK{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToCMYK(tt.rgb); got != tt.want {
				t.Errorf("RGBToCMYK(%v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}

	for _, c := range sampleRGB(17) {
		if back := CMYKToRGB(RGBToCMYK(c)); back != c {
			t.Errorf("CMYKToRGB(RGBToCMYK(%v)) = %v", c, back)
		}
	}
}

func TestDecimalConversions(t *testing.T) {
	dec, err := HexToDec("#fff")
	if err != nil {
		t.Fatalf("HexToDec() error: %v", err)
	}
	if dec != MaxDecimal {
		t.Errorf("HexToDec(\"#fff\") = %d, want %d", dec, MaxDecimal)
	}

	hex, err := DecToHex(255)
	if err != nil {
		t.Fatalf("DecToHex() error: %v", err)
	}
	if hex != "0000ff" {
		t.Errorf("DecToHex(255) = %q, want \"0000ff\"", hex)
	}

	for _, v := range []int{-1, MaxDecimal + 1} {
		if _, err := DecToHex(v); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("DecToHex(%d) error = %v, want ErrInvalidRange", v, err)
		}
	}
}

func TestRotateHex(t *testing.T) {
	tests := []struct {
		hex   string
		angle float64
		want  string
	}{
		{hex: "000000", angle: 0, want: "000000"},
		{hex: "000000", angle: 180, want: "800000"},
		{hex: "000000", angle: -180, want: "800000"},
		{hex: "#fff", angle: 360, want: "000000"},
	}

	for _, tt := range tests {
		got, err := RotateHex(tt.hex, tt.angle)
		if err != nil {
			t.Fatalf("RotateHex(%q, %v) error: %v", tt.hex, tt.angle, err)
		}
		if got != tt.want {
			t.Errorf("RotateHex(%q, %v) = %q, want %q", tt.hex, tt.angle, got, tt.want)
		}
	}

	if _, err := RotateHex("12345", 10); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("RotateHex() error = %v, want ErrInvalidFormat", err)
	}
}

func TestGrayscale(t *testing.T) {
	got := Grayscale(RGB{R: 255})
	want := RGB{R: 128, G: 128, B: 128}
	if got != want {
		t.Errorf("Grayscale(red) = %v, want %v", got, want)
	}
}

func TestSortByHue(t *testing.T) {
	sorted := SortByHue([]RGB{{B: 255}, {R: 255}, {G: 255}})
	want := []float64{0, 120, 240}
	for i, hsl := range sorted {
		if math.Abs(hsl.H-want[i]) > 1e-9 {
			t.Errorf("SortByHue()[%d].H = %v, want %v", i, hsl.H, want[i])
		}
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := map[float64]float64{0: 0, 360: 0, 370: 10, -10: 350, -720: 0, 359.5: 359.5}
	for in, want := range tests {
		if got := NormalizeHue(in); got != want {
			t.Errorf("NormalizeHue(%v) = %v, want %v", in, got, want)
		}
	}
}

func approxHSL(a, b HSL, tol float64) bool {
	return math.Abs(a.H-b.H) <= tol && math.Abs(a.S-b.S) <= tol && math.Abs(a.L-b.L) <= tol
}
