package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		json      bool
		verbose   bool
		wantDebug bool
	}{
		{name: "console", json: false, verbose: false, wantDebug: false},
		{name: "console verbose", json: false, verbose: true, wantDebug: true},
		{name: "json", json: true, verbose: false, wantDebug: false},
		{name: "json verbose", json: true, verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.json, tt.verbose)
			if err != nil {
				t.Fatalf("new logger: %v", err)
			}
			if got := logger.Core().Enabled(zap.DebugLevel); got != tt.wantDebug {
				t.Fatalf("debug enabled = %t, want %t", got, tt.wantDebug)
			}
			if !logger.Core().Enabled(zap.InfoLevel) {
				t.Fatalf("expected info level enabled")
			}
		})
	}
}
