package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"taskdeck/clock"
	"taskdeck/llm"
	"taskdeck/tasks"
)

var testStart = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

// setupTestSession creates a session over an empty store with a fake clock
func setupTestSession(t *testing.T) (*Session, *clock.FakeClock) {
	t.Helper()

	clk := clock.Fake(testStart)
	s := NewSession(tasks.NewStore(clk), &bytes.Buffer{})
	return s, clk
}

// captureCommandOutput runs a command and returns what it printed
func captureCommandOutput(t *testing.T, s *Session, input string) string {
	t.Helper()

	buf, ok := s.Out.(*bytes.Buffer)
	if !ok {
		t.Fatalf("session output is %T, want *bytes.Buffer", s.Out)
	}
	buf.Reset()

	if _, err := Execute(s, input); err != nil {
		t.Fatalf("Execute(%q) failed: %v", input, err)
	}
	return strings.TrimSpace(buf.String())
}

// answer makes every confirmation prompt reply yes or no and records the prompts
func answer(s *Session, yes bool) *[]string {
	var prompts []string
	s.Confirm = func(prompt string) bool {
		prompts = append(prompts, prompt)
		return yes
	}
	return &prompts
}

type fakeLLM struct {
	resp   *llm.Response
	err    error
	prompt string
	config *llm.Config
}

func (f *fakeLLM) Chat(ctx context.Context, prompt string) (*llm.Response, error) {
	return f.ChatWithConfig(ctx, prompt, llm.DefaultConfig())
}

func (f *fakeLLM) ChatWithConfig(ctx context.Context, prompt string, config *llm.Config) (*llm.Response, error) {
	f.prompt = prompt
	f.config = config
	return f.resp, f.err
}

func (f *fakeLLM) Close() error { return nil }

func TestRegisteredCommands(t *testing.T) {
	expected := []string{
		"/add", "/list", "/toggle", "/done", "/delete", "/toggleall", "/clear",
		"/stats", "/report", "/productivity", "/coach", "/usage", "/export",
		"/samples", "/debug", "/help", "/quit", "/exit",
	}

	for _, name := range expected {
		cmd := GetByName(name)
		if cmd == nil {
			t.Errorf("Expected command %q to be registered", name)
			continue
		}
		if cmd.Handler == nil {
			t.Errorf("Command %q has no handler", name)
		}
		if cmd.Usage == "" || cmd.Description == "" {
			t.Errorf("Command %q is missing usage or description", name)
		}
	}

	if len(List()) != len(expected) {
		t.Errorf("Expected %d commands, got %d", len(expected), len(List()))
	}
}

func TestListIsSorted(t *testing.T) {
	cmds := List()
	for i := 1; i < len(cmds); i++ {
		if cmds[i-1].Name > cmds[i].Name {
			t.Errorf("List not sorted: %q before %q", cmds[i-1].Name, cmds[i].Name)
		}
	}
}

func TestGetByName(t *testing.T) {
	if GetByName("add") == nil {
		t.Error("Expected lookup without leading slash to work")
	}
	if GetByName("/ADD") == nil {
		t.Error("Expected lookup to ignore case")
	}
	if GetByName("/nope") != nil {
		t.Error("Expected nil for unknown command")
	}
}

func TestExecuteErrors(t *testing.T) {
	s, _ := setupTestSession(t)

	if _, err := Execute(s, "   "); err == nil {
		t.Error("Expected error for empty input")
	}

	_, err := Execute(s, "/frobnicate now")
	if err == nil || !strings.Contains(err.Error(), "unknown command: /frobnicate") {
		t.Errorf("Expected unknown command error, got: %v", err)
	}
}

func TestIsYes(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"Y", true},
		{" yes ", true},
		{"YES", true},
		{"", false},
		{"n", false},
		{"no", false},
		{"yeah", false},
	}

	for _, tc := range testCases {
		if got := IsYes(tc.input); got != tc.want {
			t.Errorf("IsYes(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestHelpCommand(t *testing.T) {
	s, _ := setupTestSession(t)

	output := captureCommandOutput(t, s, "/help")
	if !strings.Contains(output, "Available commands:") {
		t.Errorf("Expected help header, got: %s", output)
	}
	if strings.Index(output, "/add") > strings.Index(output, "/toggle") {
		t.Errorf("Expected commands in sorted order, got: %s", output)
	}

	output = captureCommandOutput(t, s, "/help add")
	if !strings.Contains(output, "/add [-p high|medium|low] <task text>") {
		t.Errorf("Expected usage for /add, got: %s", output)
	}

	output = captureCommandOutput(t, s, "/help bogus")
	if !strings.Contains(output, "Unknown command: bogus") {
		t.Errorf("Expected unknown command message, got: %s", output)
	}
}

func TestQuitCommands(t *testing.T) {
	s, _ := setupTestSession(t)

	exited, _ := Execute(s, "/quit")
	if !exited {
		t.Error("Expected /quit on an empty list to exit")
	}

	captureCommandOutput(t, s, "/add buy milk")

	prompts := answer(s, false)
	output := captureCommandOutput(t, s, "/exit")
	if !strings.Contains(output, "Staying.") {
		t.Errorf("Expected declined quit to stay, got: %s", output)
	}
	if len(*prompts) != 1 || !strings.Contains((*prompts)[0], "1 pending task.") {
		t.Errorf("Expected pending warning, got prompts: %v", *prompts)
	}

	answer(s, true)
	exited, _ = Execute(s, "/exit")
	if !exited {
		t.Error("Expected confirmed /exit to quit")
	}
}

func TestQuitWithoutConfirmStays(t *testing.T) {
	s, _ := setupTestSession(t)
	captureCommandOutput(t, s, "/add buy milk")

	exited, _ := Execute(s, "/quit")
	if exited {
		t.Error("Expected a session without a confirm prompt to keep pending tasks")
	}
}
