package commands

import (
	"errors"
	"strings"
	"testing"

	"taskdeck/llm"
)

func TestCoachWithoutProvider(t *testing.T) {
	s, _ := setupTestSession(t)

	output := captureCommandOutput(t, s, "/coach")
	if !strings.Contains(output, "No tasks to analyze yet!") {
		t.Errorf("Expected empty list refusal, got: %s", output)
	}

	captureCommandOutput(t, s, "/add buy milk")
	output = captureCommandOutput(t, s, "/coach")
	if !strings.Contains(output, "No LLM provider configured") || !strings.Contains(output, "FRESH START!") {
		t.Errorf("Expected offline advice, got: %s", output)
	}
}

func TestCoachWithProvider(t *testing.T) {
	s, _ := setupTestSession(t)
	fake := &fakeLLM{resp: &llm.Response{
		Text:         "Start with the milk.",
		TokensUsed:   30,
		InputTokens:  20,
		OutputTokens: 10,
		Cost:         0.0002,
	}}
	s.LLM = fake

	captureCommandOutput(t, s, "/add -p high buy milk")
	output := captureCommandOutput(t, s, "/coach")
	if !strings.Contains(output, "Start with the milk.") {
		t.Errorf("Expected coach reply, got: %s", output)
	}
	if !strings.Contains(output, "[Tokens: 20 in / 10 out | Cost: $0.000200]") {
		t.Errorf("Expected usage line, got: %s", output)
	}

	if !strings.Contains(fake.prompt, "PRODUCTIVITY ANALYSIS REPORT") || !strings.Contains(fake.prompt, "Task: Buy milk.") {
		t.Errorf("Expected reports in prompt, got: %s", fake.prompt)
	}
	if fake.config == nil || !strings.Contains(fake.config.System, "TODAY'S DATE: 2026-03-02") {
		t.Errorf("Expected coach config with today's date, got: %+v", fake.config)
	}

	output = captureCommandOutput(t, s, "/usage")
	for _, want := range []string{"Requests:      1", "Total tokens:  30", "Total cost:    $0.000200"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in usage, got: %s", want, output)
		}
	}
}

func TestCoachFallsBackOnError(t *testing.T) {
	s, _ := setupTestSession(t)
	s.LLM = &fakeLLM{err: errors.New("quota exceeded")}

	captureCommandOutput(t, s, "/add buy milk")
	captureCommandOutput(t, s, "/toggle 1")

	output := captureCommandOutput(t, s, "/coach")
	if !strings.Contains(output, "Error: quota exceeded") {
		t.Errorf("Expected provider error, got: %s", output)
	}
	if !strings.Contains(output, "OUTSTANDING!") {
		t.Errorf("Expected offline advice for 100%%, got: %s", output)
	}

	output = captureCommandOutput(t, s, "/usage")
	if !strings.Contains(output, "No coach requests this session.") {
		t.Errorf("Expected failed requests not to count, got: %s", output)
	}
}
