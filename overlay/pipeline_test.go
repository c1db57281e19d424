package overlay

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func writeSource(t *testing.T, dir string, w, h int) string {
	t.Helper()
	src := imaging.New(w, h, color.NRGBA{R: 0x20, G: 0x40, B: 0x80, A: 0xff})
	path := filepath.Join(dir, "logo.png")
	if err := WritePNG(path, src); err != nil {
		t.Fatalf("WritePNG error: %v", err)
	}
	return path
}

func testOptions(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		SourcePath: writeSource(t, dir, 120, 60),
		Text:       "Joe Bloggs",
		Font:       FontSpec{Family: "goregular", Size: 20},
		Color:      Color{R: 250, G: 20, B: 20, A: 250},
		Modes:      AllModes,
		OutputDir:  dir,
	}
}

func TestRunWritesEveryMode(t *testing.T) {
	opts := testOptions(t)

	results, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got, want := len(results), 3; got != want {
		t.Fatalf("len(results) = %d, want %d", got, want)
	}

	text, err := RenderText(opts.TextSpec())
	if err != nil {
		t.Fatalf("RenderText error: %v", err)
	}
	textH := text.Bounds().Dy()

	want := map[string]image.Point{
		"beneath.png":  image.Pt(120, 60+textH+StackGap),
		"above.png":    image.Pt(120, 60+textH+StackGap),
		"combined.png": image.Pt(120, 60),
	}
	for name, size := range want {
		img, err := imaging.Open(filepath.Join(opts.OutputDir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		if got := img.Bounds().Size(); got != size {
			t.Fatalf("%s size = %v, want %v", name, got, size)
		}
	}
	for _, r := range results {
		if got, want := filepath.Base(r.Path), r.Mode.OutputName(); got != want {
			t.Fatalf("result path %s, want %s", r.Path, want)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	opts := testOptions(t)

	read := func() map[string][]byte {
		out := make(map[string][]byte)
		for _, mode := range opts.Modes {
			data, err := os.ReadFile(filepath.Join(opts.OutputDir, mode.OutputName()))
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			out[mode.OutputName()] = data
		}
		return out
	}

	if _, err := Run(context.Background(), opts); err != nil {
		t.Fatalf("first Run error: %v", err)
	}
	first := read()
	if _, err := Run(context.Background(), opts); err != nil {
		t.Fatalf("second Run error: %v", err)
	}
	second := read()

	for name, data := range first {
		if !bytes.Equal(data, second[name]) {
			t.Fatalf("%s differs between runs", name)
		}
	}
}

func TestRunMissingSource(t *testing.T) {
	opts := testOptions(t)
	opts.SourcePath = filepath.Join(opts.OutputDir, "missing.png")

	_, err := Run(context.Background(), opts)
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("Run error = %v, want ErrResourceNotFound", err)
	}
	if !strings.Contains(err.Error(), "missing.png") {
		t.Fatalf("error %q does not name the missing file", err)
	}
	assertNoOutputs(t, opts)
}

func TestRunMissingFontWritesNothing(t *testing.T) {
	opts := testOptions(t)
	opts.Font.Family = filepath.Join(opts.OutputDir, "archivo.ttf")

	_, err := Run(context.Background(), opts)
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("Run error = %v, want ErrResourceNotFound", err)
	}
	assertNoOutputs(t, opts)
}

func TestRunRejectsBlankText(t *testing.T) {
	opts := testOptions(t)
	opts.Text = " \t"

	_, err := Run(context.Background(), opts)
	if !errors.Is(err, ErrDegenerateText) {
		t.Fatalf("Run error = %v, want ErrDegenerateText", err)
	}
	assertNoOutputs(t, opts)
}

func TestRunCancelledContext(t *testing.T) {
	opts := testOptions(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, opts)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Fatalf("len(results) = %d, want 0", len(results))
	}
	assertNoOutputs(t, opts)
}

func TestOptionsValidate(t *testing.T) {
	base := Options{SourcePath: "logo.png", Text: "x", Font: FontSpec{Size: 10}, Modes: []Mode{ModeAbove}}
	if err := base.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"no source", func(o *Options) { o.SourcePath = " " }},
		{"no text", func(o *Options) { o.Text = "" }},
		{"zero size", func(o *Options) { o.Font.Size = 0 }},
		{"no modes", func(o *Options) { o.Modes = nil }},
		{"bad mode", func(o *Options) { o.Modes = []Mode{Mode(9)} }},
	}
	for _, tt := range tests {
		opts := base
		tt.mutate(&opts)
		if err := opts.Validate(); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}

func TestComposeUnknownMode(t *testing.T) {
	if _, err := Compose(imaging.New(4, 4, color.White), overlaySpec(), Mode(9), Anchor{}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestWritePNGReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beneath.png")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("write stale file: %v", err)
	}

	if err := WritePNG(path, imaging.New(3, 2, color.Black)); err != nil {
		t.Fatalf("WritePNG error: %v", err)
	}
	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage error: %v", err)
	}
	if got, want := img.Bounds().Size(), image.Pt(3, 2); got != want {
		t.Fatalf("size = %v, want %v", got, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory has %d entries, want only the output", len(entries))
	}
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "absent.png"))
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("LoadImage error = %v, want ErrResourceNotFound", err)
	}
}

func assertNoOutputs(t *testing.T, opts Options) {
	t.Helper()
	for _, mode := range AllModes {
		path := filepath.Join(opts.OutputDir, mode.OutputName())
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("%s exists after failed run (stat err %v)", path, err)
		}
	}
}
