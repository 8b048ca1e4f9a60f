package ui

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/tonylturner/lsaddr/internal/xgt"
)

func parseFor(t *testing.T, text string) xgt.Address {
	t.Helper()
	p, err := xgt.NewParser(xgt.DefaultMemorySize)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	addr, err := p.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return addr
}

func TestUseStyle(t *testing.T) {
	if UseStyle("plain", os.Stdout) {
		t.Error("plain should never style")
	}
	if !UseStyle("styled", nil) {
		t.Error("styled should always style")
	}
	if UseStyle("auto", nil) {
		t.Error("auto with no file should not style")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	if UseStyle("auto", f) {
		t.Error("auto should not style a regular file")
	}
}

func TestRenderAddressPlain(t *testing.T) {
	out := RenderAddress(parseFor(t, "MB5,8"), NewStyles(false))
	for _, want := range []string{"%MB5", "Continuous", "40 - 64", "5 - 8", "14 00", "03 00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderAddressStyledKeepsContent(t *testing.T) {
	out := RenderAddress(parseFor(t, "W100"), NewStyles(true))
	for _, want := range []string{"%MW100", "Word", "1600 - 1616", "02 00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderValidation(t *testing.T) {
	s := NewStyles(false)
	ok := RenderValidation("x10", "%MX10", nil, s)
	if ok != "OK x10 -> %MX10" {
		t.Errorf("ok line = %q", ok)
	}
	bad := RenderValidation("Z10", "", errors.New("bad prefix"), s)
	if !strings.HasPrefix(bad, "INVALID Z10") || !strings.Contains(bad, "bad prefix") {
		t.Errorf("bad line = %q", bad)
	}
}

func TestRenderModels(t *testing.T) {
	out := RenderModels(xgt.Models(), "xgk-cpuu", NewStyles(false))
	if !strings.Contains(out, "*XGK-CPUU") {
		t.Errorf("current model should be marked:\n%s", out)
	}
	if !strings.Contains(out, " XGB-XBC") {
		t.Errorf("other models should be listed unmarked:\n%s", out)
	}
}

func TestValidateOptionalAddress(t *testing.T) {
	if err := validateOptionalAddress(""); err != nil {
		t.Errorf("empty should be allowed: %v", err)
	}
	if err := validateOptionalAddress("mw1"); err != nil {
		t.Errorf("mw1 should be valid: %v", err)
	}
	if err := validateOptionalAddress("Z1"); err == nil {
		t.Error("Z1 should be rejected")
	}
}

func TestBuildExploreForm(t *testing.T) {
	choice := &ExploreChoice{Model: xgt.DefaultModel}
	if form := BuildExploreForm(xgt.Models(), choice); form == nil {
		t.Fatal("BuildExploreForm returned nil")
	}
}
