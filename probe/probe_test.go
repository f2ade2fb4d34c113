package probe

import (
	"bytes"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"colorfilter/matrix"
)

func TestMatrixWrite(t *testing.T) {
	m := matrix.NewBuilder().AdjustBrightness(25.5).Matrix()

	tests := []struct {
		name string
		cmd  MatrixCmd
		want string
	}{
		{
			name: "rows",
			cmd:  MatrixCmd{},
			want: "1\t0\t0\t0\t0.1\n0\t1\t0\t0\t0.1\n0\t0\t1\t0\t0.1\n0\t0\t0\t1\t0\n",
		},
		{
			name: "flat",
			cmd:  MatrixCmd{Flat: true},
			want: "1,0,0,0,0.1,0,1,0,0,0.1,0,0,1,0,0.1,0,0,0,1,0\n",
		},
		{
			name: "float32",
			cmd:  MatrixCmd{Flat: true, Float32: true},
			want: "1,0,0,0,0.1,0,1,0,0,0.1,0,0,1,0,0.1,0,0,0,1,0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.cmd.write(&buf, m); err != nil {
				t.Fatalf("write: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("write() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatrixWriteFloat32MatchesUniforms(t *testing.T) {
	tests := []struct {
		name string
		m    matrix.Matrix
	}{
		{"hue", matrix.NewBuilder().RotateHue(33).Matrix()},
		{"colorize", matrix.NewBuilder().Colorize(0x3366cc, 0.7).Matrix()},
		{"deficiency", matrix.NewBuilder().ApplyColorDeficiency(matrix.Tritanomaly).Matrix()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := MatrixCmd{Flat: true, Float32: true}
			var buf bytes.Buffer
			if err := cmd.write(&buf, tt.m); err != nil {
				t.Fatalf("write: %v", err)
			}

			fields := strings.Split(strings.TrimSuffix(buf.String(), "\n"), ",")
			want := tt.m.Float32s()
			if len(fields) != len(want) {
				t.Fatalf("got %d values, want %d", len(fields), len(want))
			}
			for i, field := range fields {
				v, err := strconv.ParseFloat(field, 32)
				if err != nil {
					t.Fatalf("value %d %q: %v", i, field, err)
				}
				if float32(v) != want[i] {
					t.Errorf("value %d = %s, want %v", i, field, want[i])
				}
			}
		})
	}
}

func TestListPresets(t *testing.T) {
	var buf bytes.Buffer
	if err := listPresets(&buf); err != nil {
		t.Fatalf("listPresets: %v", err)
	}

	out := buf.String()
	for _, d := range matrix.Deficiencies() {
		if !strings.Contains(out, d.String()+"\n") {
			t.Errorf("output misses %s", d)
		}
	}
	if !strings.Contains(out, "0.567\t0.433\t0\t0\t0") {
		t.Error("output misses the Protanopia red row")
	}
}

func TestLightMeasure(t *testing.T) {
	dir := t.TempDir()
	white := filepath.Join(dir, "white.png")

	img := image.NewGray(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	f, err := os.Create(white)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	broken := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(broken, []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cmd := LightCmd{Files: []string{white}}
	if err := cmd.measure(&buf, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("measure: %v", err)
	}
	if want := white + "\t1.000000\n"; buf.String() != want {
		t.Errorf("measure() = %q, want %q", buf.String(), want)
	}

	cmd.Files = []string{broken}
	if err := cmd.measure(&buf, slog.New(slog.DiscardHandler)); err == nil {
		t.Error("measure of a broken file succeeded")
	}
}
