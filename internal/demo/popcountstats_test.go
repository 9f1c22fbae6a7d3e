package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nikhiloz/generic/internal/analysis"
	"github.com/nikhiloz/generic/pkg/utils"
)

func TestPopcountStatsOutput(t *testing.T) {
	var out bytes.Buffer
	cfg := quickConfig()
	cfg.Demo.SampleSize = 2048
	ctx := NewContext(&out, cfg, nil)

	if err := Run(ctx, []string{"popcount-stats"}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Sample: 2048 random words (seed 42)") {
		t.Errorf("sample header missing; output:\n%s", text)
	}
	if !strings.Contains(text, "expected 16.000") {
		t.Error("mean reference missing")
	}
	if !strings.Contains(text, "expected 2.828") {
		t.Error("stddev reference missing")
	}
	if !strings.Contains(text, "Distribution (set bits -> words):") {
		t.Error("histogram missing")
	}
}

func TestPopcountStatsDeterministic(t *testing.T) {
	render := func() string {
		var out bytes.Buffer
		ctx := NewContext(&out, quickConfig(), nil)
		if err := Run(ctx, []string{"popcount-stats"}); err != nil {
			t.Fatalf("Run: %v", err)
		}
		return out.String()
	}

	if render() != render() {
		t.Error("same seed produced different output")
	}
}

func TestPopcountStatsSendsSummary(t *testing.T) {
	mock := &utils.MockTransport{}
	ctx := NewContext(nil, quickConfig(), mock)

	if err := Run(ctx, []string{"popcount-stats"}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// The analysis summary goes through the same transport as the
	// trace events.
	var summary *analysis.Summary
	for _, raw := range mock.Events {
		if s, ok := raw.(analysis.Summary); ok {
			summary = &s
			break
		}
	}
	if summary == nil {
		t.Fatal("no analysis.Summary on the transport")
	}
	if summary.SampleSize != 512 {
		t.Errorf("summary sample size = %d, expected 512", summary.SampleSize)
	}
	if summary.Mean < 14 || summary.Mean > 18 {
		t.Errorf("summary mean = %.3f, expected near 16", summary.Mean)
	}
}
