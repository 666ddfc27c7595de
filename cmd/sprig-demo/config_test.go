package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/sprig"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "form.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFormConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadFormConfig("")
	if err != nil {
		t.Fatalf("LoadFormConfig: %v", err)
	}
	if diff := cmp.Diff(DefaultFormConfig(), cfg); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestLoadFormConfig_FillsDefaults(t *testing.T) {
	path := writeFile(t, `
title = "Release"

[[fields]]
label = "Tag"
width = 20

[cursor]
shape = "line"
blink = true
`)

	cfg, err := LoadFormConfig(path)
	if err != nil {
		t.Fatalf("LoadFormConfig: %v", err)
	}
	def := DefaultFormConfig()

	if cfg.Title != "Release" {
		t.Fatalf("title: got %q, want %q", cfg.Title, "Release")
	}
	if diff := cmp.Diff([]FieldConfig{{Label: "Tag", Width: 20}}, cfg.Fields); diff != "" {
		t.Fatalf("fields (-want +got):\n%s", diff)
	}
	if cfg.Cursor.Shape != "line" || !cfg.Cursor.Blink {
		t.Fatalf("cursor: got %+v", cfg.Cursor)
	}
	if got := cfg.Cursor.blinkInterval(); got != 600*time.Millisecond {
		t.Fatalf("blink interval: got %v, want 600ms", got)
	}
	if diff := cmp.Diff(def.List, cfg.List); diff != "" {
		t.Fatalf("list (-want +got):\n%s", diff)
	}
	if cfg.Log.Height != def.Log.Height {
		t.Fatalf("log height: got %d, want %d", cfg.Log.Height, def.Log.Height)
	}
}

func TestLoadFormConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "syntax", body: "title = ", want: "failed to parse"},
		{name: "shape", body: "[cursor]\nshape = \"zigzag\"\n", want: "unknown cursor shape"},
		{name: "label", body: "[[fields]]\nwidth = 3\n", want: "missing label"},
		{name: "blink", body: "[cursor]\nblink_ms = -1\n", want: "negative blink_ms"},
		{name: "version", body: "version = \"9999.0.0\"\n", want: "not compatible"},
		{name: "version syntax", body: "version = \"latest\"\n", want: "not compatible"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFormConfig(writeFile(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error: got %v, want containing %q", err, tt.want)
			}
		})
	}

	if _, err := LoadFormConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("missing file: want error")
	}
}

func TestSaveFormConfig_RoundTrip(t *testing.T) {
	want := DefaultFormConfig()
	want.Title = "Saved"
	want.Cursor.Shape = "block"
	want.Log.Debug = true

	path := filepath.Join(t.TempDir(), "out.toml")
	if err := SaveFormConfig(path, want); err != nil {
		t.Fatalf("SaveFormConfig: %v", err)
	}
	got, err := LoadFormConfig(path)
	if err != nil {
		t.Fatalf("LoadFormConfig: %v", err)
	}
	want.Version = sprig.Version()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}
