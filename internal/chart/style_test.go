package chart

import (
	"image/color"
	"testing"

	"tradelog/internal/config"
)

func TestStyleFromConfigDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	style, err := StyleFromConfig(cfg.Chart)
	if err != nil {
		t.Fatalf("StyleFromConfig failed: %v", err)
	}
	if style.Up != (color.RGBA{R: 0xD9, G: 0x48, B: 0x48, A: 0xFF}) {
		t.Errorf("up color = %v", style.Up)
	}
	if style.Down != (color.RGBA{R: 0x49, G: 0x85, B: 0xD9, A: 0xFF}) {
		t.Errorf("down color = %v", style.Down)
	}
	if !style.GridDashed {
		t.Error("grid should default to dashed")
	}
}

func TestStyleFromConfigRejectsBadColor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Chart.UpColor = "red"

	if _, err := StyleFromConfig(cfg.Chart); err == nil {
		t.Fatal("expected error for non-hex color")
	}
}
