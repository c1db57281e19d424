package main

import (
	"io"
	"reflect"
	"testing"
)

func TestParseFlagsTracksExplicitZero(t *testing.T) {
	args, err := parseFlags([]string{"-x", "0", "-text", "Hi"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags error: %v", err)
	}
	if args.x.value == nil || *args.x.value != 0 {
		t.Fatalf("x = %v, want explicit 0", args.x.value)
	}
	if args.y.value != nil {
		t.Fatalf("y = %v, want unset", *args.y.value)
	}

	cfg := args.apply(defaultConfig())
	if cfg.X == nil || *cfg.X != 0 {
		t.Fatalf("cfg.X = %v, want 0", cfg.X)
	}
	if cfg.Y != nil {
		t.Fatalf("cfg.Y = %v, want unset", *cfg.Y)
	}
	if got, want := cfg.Text, "Hi"; got != want {
		t.Fatalf("Text = %q, want %q", got, want)
	}
}

func TestApplyKeepsConfigForUnsetFlags(t *testing.T) {
	y := 7
	base := defaultConfig()
	base.Y = &y
	base.Size = 48

	args, err := parseFlags([]string{"-mode", "above,overlay", "-out", "dist"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags error: %v", err)
	}
	cfg := args.apply(base)

	if got, want := cfg.Modes, []string{"above", "overlay"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Modes = %v, want %v", got, want)
	}
	if got, want := cfg.OutputDir, "dist"; got != want {
		t.Fatalf("OutputDir = %q, want %q", got, want)
	}
	if cfg.Y == nil || *cfg.Y != 7 {
		t.Fatalf("Y = %v, want 7 from config", cfg.Y)
	}
	if got, want := cfg.Size, 48.0; got != want {
		t.Fatalf("Size = %v, want %v", got, want)
	}
}

func TestParseFlagsRejectsBadCoordinate(t *testing.T) {
	if _, err := parseFlags([]string{"-y", "middle"}, io.Discard); err == nil {
		t.Fatal("expected error for non-numeric -y")
	}
}
