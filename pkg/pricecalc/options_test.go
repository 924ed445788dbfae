package pricecalc

import (
	"path/filepath"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		suffix   string
		expected string
	}{
		{"报价.xlsx", "_已计算", "报价_已计算.xlsx"},
		{filepath.Join("data", "in.xlsm"), "_已计算", filepath.Join("data", "in_已计算.xlsm")},
		{filepath.Join("data", "a.b.xlsx"), "_out", filepath.Join("data", "a.b_out.xlsx")},
		{"noext", "_已计算", "noext_已计算"},
	}

	for _, tt := range tests {
		if got := DefaultOutputPath(tt.input, tt.suffix); got != tt.expected {
			t.Errorf("DefaultOutputPath(%q, %q) = %q, expected %q", tt.input, tt.suffix, got, tt.expected)
		}
	}
}

func TestOptionsSuffix(t *testing.T) {
	if got := (Options{}).suffix(); got != DefaultOutputSuffix {
		t.Errorf("empty suffix = %q, expected %q", got, DefaultOutputSuffix)
	}
	if got := (Options{OutputSuffix: "_x"}).suffix(); got != "_x" {
		t.Errorf("suffix = %q, expected %q", got, "_x")
	}
}
