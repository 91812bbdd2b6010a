package main

import (
	"testing"
)

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		wantErr bool
	}{
		{"normalize", options{mode: modeNormalize}, false},
		{"chunk", options{mode: modeChunk}, false},
		{"trace normalize", options{mode: modeNormalize, trace: true}, false},
		{"batch", options{mode: modeChunk, batch: true}, false},
		{"unknown mode", options{mode: "tag"}, true},
		{"empty mode", options{}, true},
		{"trace chunk", options{mode: modeChunk, trace: true}, true},
		{"batch with query", options{mode: modeNormalize, batch: true, query: "x"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOptions(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateOptions(%+v) error = %v, wantErr %v", tt.opts, err, tt.wantErr)
			}
		})
	}
}

func TestEnvBool(t *testing.T) {
	tests := map[string]bool{
		"true":  true,
		"1":     true,
		"TRUE":  true,
		"false": false,
		"0":     false,
		"yes":   false,
		"":      false,
	}
	for value, want := range tests {
		t.Setenv("CANON_TEST_BOOL", value)
		if got := envBool("CANON_TEST_BOOL"); got != want {
			t.Errorf("envBool(%q) = %v, want %v", value, got, want)
		}
	}
}
