package format

import (
	"strings"
	"testing"
	"time"
)

// TestProgressState verifies aggregation across calculators.
func TestProgressState(t *testing.T) {
	t.Parallel()

	t.Run("average of updates", func(t *testing.T) {
		t.Parallel()
		ps := NewProgressState(2)
		ps.Update(0, 0.5)
		ps.Update(1, 1.0)
		if avg := ps.CalculateAverage(); avg != 0.75 {
			t.Errorf("average = %f, want 0.75", avg)
		}
	})

	t.Run("zero calculators", func(t *testing.T) {
		t.Parallel()
		ps := NewProgressState(0)
		if avg := ps.CalculateAverage(); avg != 0 {
			t.Errorf("average = %f, want 0", avg)
		}
	})

	t.Run("clamps out-of-range values", func(t *testing.T) {
		t.Parallel()
		ps := NewProgressState(1)
		ps.Update(0, 1.5)
		if avg := ps.CalculateAverage(); avg != 1.0 {
			t.Errorf("average = %f, want clamped 1.0", avg)
		}
		ps.Update(0, -0.5)
		if avg := ps.CalculateAverage(); avg != 0 {
			t.Errorf("average = %f, want clamped 0", avg)
		}
	})

	t.Run("ignores invalid indices", func(t *testing.T) {
		t.Parallel()
		ps := NewProgressState(2)
		ps.Update(5, 0.5)
		ps.Update(-1, 0.5)
		if avg := ps.CalculateAverage(); avg != 0 {
			t.Errorf("average = %f, want 0", avg)
		}
	})
}

// TestProgressWithETA verifies progress updates and ETA estimation.
func TestProgressWithETA(t *testing.T) {
	t.Parallel()

	t.Run("initialization", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithETA(3)
		if p.ProgressState == nil {
			t.Fatal("ProgressState should not be nil")
		}
		if p.GetETA() != 0 {
			t.Errorf("initial ETA = %v, want 0", p.GetETA())
		}
		if p.startTime.IsZero() {
			t.Error("startTime should not be zero")
		}
	})

	t.Run("averaged progress", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithETA(2)
		progress, eta := p.UpdateWithETA(0, 0.25)
		if progress != 0.125 {
			t.Errorf("progress = %f, want 0.125", progress)
		}
		if eta < 0 {
			t.Errorf("ETA should not be negative, got %v", eta)
		}
		progress, _ = p.UpdateWithETA(1, 0.5)
		if progress != 0.375 {
			t.Errorf("progress = %f, want 0.375", progress)
		}
	})

	t.Run("ETA from known rate", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithETA(1)
		p.Update(0, 0.5)
		p.progressRate = 0.1 // 10% per second
		eta := p.GetETA()
		if eta < 4*time.Second || eta > 6*time.Second {
			t.Errorf("ETA = %v, want approximately 5s", eta)
		}
	})

	t.Run("ETA capped", func(t *testing.T) {
		t.Parallel()
		p := NewProgressWithETA(1)
		p.Update(0, 0.001)
		p.progressRate = 0.0000001
		if eta := p.GetETA(); eta > MaxETA {
			t.Errorf("ETA = %v, should be capped at %v", eta, MaxETA)
		}
	})
}

// TestFormatETA verifies ETA formatting across magnitudes.
func TestFormatETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		eta      time.Duration
		expected string
	}{
		{0, "calculating..."},
		{-time.Second, "calculating..."},
		{500 * time.Millisecond, "< 1s"},
		{time.Second, "1s"},
		{45 * time.Second, "45s"},
		{time.Minute, "1m"},
		{2*time.Minute + 30*time.Second, "2m30s"},
		{time.Hour, "1h"},
		{time.Hour + 15*time.Minute, "1h15m"},
		{2 * time.Hour, "2h"},
	}
	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.expected {
			t.Errorf("FormatETA(%v) = %q, want %q", tt.eta, got, tt.expected)
		}
	}
}

// TestProgressBar verifies bar rendering and clamping.
func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		length   int
		expected string
	}{
		{0.0, 10, "░░░░░░░░░░"},
		{0.5, 10, "█████░░░░░"},
		{1.0, 10, "██████████"},
		{1.2, 10, "██████████"},
		{-0.1, 10, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.progress, tt.length); got != tt.expected {
			t.Errorf("ProgressBar(%f, %d) = %s; want %s", tt.progress, tt.length, got, tt.expected)
		}
	}
}

// TestFormatProgressBarWithETA verifies the combined display line.
func TestFormatProgressBarWithETA(t *testing.T) {
	t.Parallel()
	result := FormatProgressBarWithETA(0.5, 30*time.Second, 20)
	for _, want := range []string{"[", "]", "%", "ETA:"} {
		if !strings.Contains(result, want) {
			t.Errorf("result %q should contain %q", result, want)
		}
	}
}

// TestFormatExecutionDuration verifies duration formatting.
func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Nanosecond, "0µs"},
		{10 * time.Microsecond, "10µs"},
		{10 * time.Millisecond, "10ms"},
		{2 * time.Second, "2s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.expected {
			t.Errorf("FormatExecutionDuration(%v) = %s; want %s", tt.d, got, tt.expected)
		}
	}
}

// TestFormatNumberString verifies thousand separator formatting.
func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"-1234", "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumberString(tt.input); got != tt.expected {
			t.Errorf("FormatNumberString(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

// TestFormatBytes verifies binary unit rendering.
func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    uint64
		expected string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.input); got != tt.expected {
			t.Errorf("FormatBytes(%d) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}
