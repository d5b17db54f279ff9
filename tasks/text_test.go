package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"buy milk", "Buy milk."},
		{"  buy milk  ", "Buy milk."},
		{"Call mom!", "Call mom!"},
		{"is it done?", "Is it done?"},
		{"already done.", "Already done."},
		{"élan vital", "Élan vital."},
		{"x", "X."},
		{"42 things", "42 things."},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizeText(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeTextEmpty(t *testing.T) {
	for _, in := range []string{"", " ", "\t\n "} {
		_, err := NormalizeText(in)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority(" HIGH ")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("critical")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPriorityIcon(t *testing.T) {
	assert.Equal(t, "🔴", PriorityIcon("high"))
	assert.Equal(t, "🟡", PriorityIcon("medium"))
	assert.Equal(t, "🟢", PriorityIcon("low"))
	assert.Equal(t, "⚪", PriorityIcon("bogus"))
}
