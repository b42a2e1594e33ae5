package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestProgressLogger(t *testing.T) {
	var buf bytes.Buffer
	p := newProgressLogger(slog.New(slog.NewTextHandler(&buf, nil)), 25)

	for step := 1; step <= 100; step++ {
		p.OnStep(step, 100, float64(step))
	}

	if got := strings.Count(buf.String(), "progress"); got != 4 {
		t.Errorf("expected 4 progress lines, got %d:\n%s", got, buf.String())
	}
}
