package tasks

var quotes = []string{
	"Success is the sum of small efforts repeated day in and day out.",
	"The way to get started is to quit talking and begin doing.",
	"Productivity is never an accident. It is always the result of commitment.",
	"Focus on being productive instead of busy.",
	"You don't have to be great to get started, but you have to get started to be great.",
}

// Quotes returns the fixed list MotivationalQuote chooses from
func Quotes() []string {
	out := make([]string, len(quotes))
	copy(out, quotes)
	return out
}

// ProductivityAdvice maps a 0-100 completion rate to one of six fixed
// messages.
func ProductivityAdvice(rate float64) string {
	switch {
	case rate >= 90:
		return "OUTSTANDING! You're a productivity superstar! Keep up the excellent work!"
	case rate >= 75:
		return "EXCELLENT! You're doing fantastic! You're in the top tier of productivity!"
	case rate >= 60:
		return "GOOD JOB! You're making solid progress! Keep up the momentum!"
	case rate >= 40:
		return "MAKING PROGRESS! You're on the right track! Stay focused and push forward!"
	case rate >= 20:
		return "ROOM FOR IMPROVEMENT! You've got potential! Let's boost that productivity!"
	default:
		return "FRESH START! Everyone starts somewhere! You've got this - let's build momentum!"
	}
}

// MotivationalQuote returns the first quote for rates of 75 and above.
// Below that, pick is called with the number of quotes and its result
// selects one; out-of-range results are wrapped into range. A nil pick
// selects the first quote.
func MotivationalQuote(rate float64, pick func(n int) int) string {
	if rate >= 75 || pick == nil {
		return quotes[0]
	}
	i := pick(len(quotes)) % len(quotes)
	if i < 0 {
		i += len(quotes)
	}
	return quotes[i]
}
