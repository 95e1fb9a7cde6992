package sprites

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adventure-squad/neon-runner/internal/core"
)

func TestDefaultSheetHasRoster(t *testing.T) {
	sheet, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	for _, name := range []string{"jack", "peter", "charlie", "ghost", "ghost2", "dino", "dino2"} {
		sp, err := sheet.Get(name)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", name, err)
			continue
		}
		if sp.Width() == 0 || sp.Height() == 0 {
			t.Errorf("sprite %q is empty", name)
		}
	}
}

func TestGetMissing(t *testing.T) {
	sheet, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := sheet.Get("robot"); !errors.Is(err, ErrNoSprite) {
		t.Errorf("expected ErrNoSprite, got %v", err)
	}

	var nilSheet *Sheet
	if _, err := nilSheet.Get("jack"); !errors.Is(err, ErrNoSprite) {
		t.Errorf("nil sheet should report ErrNoSprite, got %v", err)
	}
}

func TestSpriteAt(t *testing.T) {
	sheet, err := Parse([]byte("sprites:\n  box:\n    rows:\n      - \"ab\"\n      - \"c\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	sp, err := sheet.Get("box")
	if err != nil {
		t.Fatal(err)
	}

	if sp.Width() != 2 || sp.Height() != 2 {
		t.Errorf("size = %dx%d, expected 2x2", sp.Width(), sp.Height())
	}
	if sp.At(1, 0) != 'b' || sp.At(0, 1) != 'c' {
		t.Errorf("At() returned wrong runes")
	}
	if sp.At(1, 1) != ' ' || sp.At(-1, 0) != ' ' || sp.At(0, 5) != ' ' {
		t.Error("out-of-grid positions should be transparent")
	}
}

func TestSpriteTint(t *testing.T) {
	sheet, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	ghost, _ := sheet.Get("ghost")
	if c, ok := ghost.Tint(); !ok || c != core.ColorWhite {
		t.Errorf("ghost tint = (%v, %v), expected white", c, ok)
	}

	jack, _ := sheet.Get("jack")
	if _, ok := jack.Tint(); ok {
		t.Error("character sprites should take the character color")
	}
}

func TestParseRejectsUnknownColor(t *testing.T) {
	_, err := Parse([]byte("sprites:\n  x:\n    color: chartreuse\n    rows: [\"#\"]\n"))
	if err == nil {
		t.Error("unknown color should fail")
	}
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	if err := os.WriteFile(path, []byte("sprites:\n  jack:\n    rows: [\"J\"]\n  empty:\n    rows: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	sheet, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, err := sheet.Get("jack"); err != nil {
		t.Errorf("jack should load: %v", err)
	}
	if _, err := sheet.Get("empty"); !errors.Is(err, ErrNoSprite) {
		t.Error("sprites without rows should be dropped")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
