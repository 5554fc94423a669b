package grading

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var allTasks = []TaskType{TaskSummarize, TaskRewrite, TaskProofread, TaskExplainCode}

func TestRubricMaxesSumTo100(t *testing.T) {
	for _, task := range allTasks {
		sum := 0
		seen := map[string]struct{}{}
		for _, d := range rubricFor(task) {
			sum += d.Max
			_, dup := seen[d.Name]
			require.False(t, dup, "%s: duplicate parameter %q", task, d.Name)
			seen[d.Name] = struct{}{}
			require.Positive(t, d.Max, "%s: %s", task, d.Name)
			require.NotEmpty(t, d.Hint, "%s: %s", task, d.Name)
		}
		require.Equal(t, 100, sum, "task %s", task)
	}
}

func TestRubricSize(t *testing.T) {
	for _, task := range allTasks {
		n := len(rubricFor(task))
		require.GreaterOrEqual(t, n, 16, "task %s", task)
		require.LessOrEqual(t, n, 20, "task %s", task)
	}
}

func TestParseTaskType(t *testing.T) {
	require.Equal(t, TaskSummarize, ParseTaskType("summarize"))
	require.Equal(t, TaskRewrite, ParseTaskType("  Rewrite "))
	require.Equal(t, TaskProofread, ParseTaskType("PROOFREAD"))
	require.Equal(t, TaskExplainCode, ParseTaskType("Explain Code"))
	require.Equal(t, TaskExplainCode, ParseTaskType("explain-code"))
	// unrecognized values default to summarize
	require.Equal(t, TaskSummarize, ParseTaskType("translate"))
	require.Equal(t, TaskSummarize, ParseTaskType(""))
}

func TestBandMapping(t *testing.T) {
	cases := map[int]GradeBand{
		95: GradeExcellent,
		90: GradeExcellent,
		80: GradeStrong,
		75: GradeStrong,
		65: GradeFair,
		60: GradeFair,
		45: GradeWeak,
		40: GradeWeak,
		20: GradePoor,
		0:  GradePoor,
	}
	for score, want := range cases {
		require.Equal(t, want, bandFor(score), "score %d", score)
	}
}

func TestSoftRange(t *testing.T) {
	require.InDelta(t, 1.0, softRange(0.5, 0.3, 0.8), 1e-9)
	require.InDelta(t, 1.0, softRange(0.3, 0.3, 0.8), 1e-9)
	require.InDelta(t, 1.0, softRange(0.8, 0.3, 0.8), 1e-9)
	// below min: proportional, capped at 0.8
	require.InDelta(t, 0.5, softRange(0.15, 0.3, 0.8), 1e-9)
	require.InDelta(t, 0.8, softRange(0.29, 0.3, 0.8), 1e-9)
	// above max: proportional, capped at 0.8
	require.InDelta(t, 0.4, softRange(2.0, 0.3, 0.8), 1e-9)
	require.Zero(t, softRange(0, 0.3, 0.8))
}

func TestPointsRounding(t *testing.T) {
	require.Equal(t, 5, points(0.5, 10))
	require.Equal(t, 10, points(1.2, 10)) // clamped
	require.Equal(t, 0, points(-0.5, 10))
	require.Equal(t, 7, points(0.651, 10))
}
