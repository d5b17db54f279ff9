package commands

import (
	"context"
	"time"

	"taskdeck/llm"
	"taskdeck/tasks"
)

const coachTimeout = 60 * time.Second

func init() {
	Register(&Command{
		Name:        "/coach",
		Usage:       "/coach",
		Description: "Ask the LLM coach for advice on the current tasks",
		Handler: func(s *Session, args []string) bool {
			if s.Store.Len() == 0 {
				s.Println("No tasks to analyze yet! Add some tasks first.")
				return false
			}

			rate := s.Store.Stats().RoundedRate()
			if s.LLM == nil {
				s.Println("No LLM provider configured. Offline advice:")
				s.Println(tasks.ProductivityAdvice(rate))
				return false
			}

			ctx, cancel := context.WithTimeout(s.Context(), coachTimeout)
			defer cancel()

			prompt := s.Store.ProductivityReport(nil) + "\n" + s.Store.FormatReport()
			s.Logger.Debug("asking coach", "prompt_bytes", len(prompt))

			resp, err := s.LLM.ChatWithConfig(ctx, prompt, llm.CoachConfig(s.Store.Now()))
			if err != nil {
				s.printError(err)
				s.Println("Offline advice:")
				s.Println(tasks.ProductivityAdvice(rate))
				return false
			}

			s.Println(resp.Text)
			s.usage.add(resp)
			printUsageStats(s, resp)
			return false
		},
	})

	Register(&Command{
		Name:        "/usage",
		Usage:       "/usage",
		Description: "Show coach token usage for this session",
		Handler: func(s *Session, args []string) bool {
			u := s.usage
			if u.requests == 0 {
				s.Println("No coach requests this session.")
				return false
			}

			s.Println("Session usage:")
			s.Printf("  Requests:      %d\n", u.requests)
			s.Printf("  Input tokens:  %d\n", u.inputTokens)
			s.Printf("  Output tokens: %d\n", u.outputTokens)
			s.Printf("  Total tokens:  %d\n", u.inputTokens+u.outputTokens)
			if u.cost > 0 {
				if u.cost < 0.01 {
					s.Printf("  Total cost:    $%.6f\n", u.cost)
				} else {
					s.Printf("  Total cost:    $%.4f\n", u.cost)
				}
			}
			return false
		},
	})
}

// usageTotals accumulates coach usage across a session
type usageTotals struct {
	requests     int
	inputTokens  int64
	outputTokens int64
	cost         float64
}

func (u *usageTotals) add(resp *llm.Response) {
	u.requests++
	u.inputTokens += resp.InputTokens
	u.outputTokens += resp.OutputTokens
	u.cost += resp.Cost
}

// printUsageStats prints token usage and cost after a coach reply
func printUsageStats(s *Session, resp *llm.Response) {
	if resp.TokensUsed == 0 {
		return
	}
	if resp.Cost > 0 {
		s.Printf("[Tokens: %d in / %d out | Cost: $%.6f]\n", resp.InputTokens, resp.OutputTokens, resp.Cost)
	} else {
		s.Printf("[Tokens: %d in / %d out]\n", resp.InputTokens, resp.OutputTokens)
	}
}
