package commands

import (
	"strings"
	"testing"
	"time"
)

func TestStatsCommand(t *testing.T) {
	s, _ := setupTestSession(t)

	output := captureCommandOutput(t, s, "/stats")
	if !strings.Contains(output, "Total: 0  Completed: 0  Pending: 0  (0.0% done)") {
		t.Errorf("Expected zero counters, got: %s", output)
	}

	captureCommandOutput(t, s, "/add -p high buy milk")
	captureCommandOutput(t, s, "/add walk dog")
	captureCommandOutput(t, s, "/add feed cat")
	captureCommandOutput(t, s, "/toggle 1")

	output = captureCommandOutput(t, s, "/stats")
	if !strings.Contains(output, "Total: 3  Completed: 1  Pending: 2  (33.3% done)") {
		t.Errorf("Expected counters, got: %s", output)
	}
	if !strings.Contains(output, "HIGH: 1 total, 1 completed") || !strings.Contains(output, "LOW: 2 total, 0 completed") {
		t.Errorf("Expected priority breakdown, got: %s", output)
	}
	if strings.Contains(output, "All tasks complete!") {
		t.Errorf("Did not expect celebration, got: %s", output)
	}

	captureCommandOutput(t, s, "/toggleall")
	output = captureCommandOutput(t, s, "/stats")
	if !strings.Contains(output, "All tasks complete!") {
		t.Errorf("Expected celebration, got: %s", output)
	}
}

func TestReportCommand(t *testing.T) {
	s, clk := setupTestSession(t)
	captureCommandOutput(t, s, "/add buy milk")
	clk.Advance(50 * time.Hour)

	output := captureCommandOutput(t, s, "/report")
	for _, want := range []string{
		"COMPREHENSIVE TASK REPORT",
		"Task: Buy milk.",
		"Days ago: 2",
		"Completed: 0 (0.0%)",
		"Report Generated: 2026-03-04 11:30:00",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in report, got: %s", want, output)
		}
	}
}

func TestProductivityCommand(t *testing.T) {
	s, _ := setupTestSession(t)

	output := captureCommandOutput(t, s, "/productivity")
	if !strings.Contains(output, "No tasks to analyze yet!") {
		t.Errorf("Expected empty message, got: %s", output)
	}

	captureCommandOutput(t, s, "/add buy milk")
	captureCommandOutput(t, s, "/add walk dog")
	captureCommandOutput(t, s, "/toggle 1")

	var asked int
	s.Pick = func(n int) int {
		asked = n
		return 3
	}

	output = captureCommandOutput(t, s, "/productivity")
	if !strings.Contains(output, "Success Rate: 50.0%") {
		t.Errorf("Expected success rate, got: %s", output)
	}
	if !strings.Contains(output, "MAKING PROGRESS!") {
		t.Errorf("Expected advice tier for 50%%, got: %s", output)
	}
	if !strings.Contains(output, `"Focus on being productive instead of busy."`) {
		t.Errorf("Expected picked quote, got: %s", output)
	}
	if asked != 5 {
		t.Errorf("Expected picker to be asked for 5 quotes, got %d", asked)
	}
}
