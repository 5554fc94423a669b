package grading

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGibberishGateTripsOnNoise(t *testing.T) {
	cases := []string{
		"aaaaaaaaaa",
		"ok no",
		"!!! ??? ... !!!",
		"word word word word",
		"asdfgh qwerty zxcvbnm!!!!!",
	}
	for _, in := range cases {
		p := Analyze(in)
		require.True(t, isGibberish(strings.TrimSpace(in), p), "input %q", in)
	}
}

func TestGibberishGatePassesRealProse(t *testing.T) {
	cases := []string{
		"One short thing happened here.",
		summarizeTask.IdealAnswer,
		rewriteTask.IdealAnswer,
		explainTask.IdealAnswer,
		// Length alone must never trip the gate.
		strings.Repeat("The panels charge the batteries during the day. ", 20),
	}
	for _, in := range cases {
		p := Analyze(in)
		require.False(t, isGibberish(strings.TrimSpace(in), p), "input %q variety=%f", in, p.CharVariety)
	}
}

func TestCharVarietyStableOverLength(t *testing.T) {
	short := Analyze("Solar panels turn sunlight into power.")
	long := Analyze(strings.Repeat("Solar panels turn sunlight into power. ", 30))
	require.GreaterOrEqual(t, short.CharVariety, gibberishCharVariety)
	require.GreaterOrEqual(t, long.CharVariety, gibberishCharVariety)
}

func TestHasCharRun(t *testing.T) {
	require.True(t, hasCharRun("heyyyyy", 5))
	require.True(t, hasCharRun("a aa aa a", 5)) // whitespace ignored
	require.False(t, hasCharRun("banana", 5))
	require.False(t, hasCharRun("", 5))
}
