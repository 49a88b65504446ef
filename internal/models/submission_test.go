package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSubmissionStatus_Aliases(t *testing.T) {
	t.Parallel()

	cases := map[string]SubmissionStatus{
		"new":         StatusNew,
		"New":         StatusNew,
		"  new  ":     StatusNew,
		"in_progress": StatusInProgress,
		"inprogress":  StatusInProgress,
		"in-progress": StatusInProgress,
		"progress":    StatusInProgress,
		"IN-PROGRESS": StatusInProgress,
		"completed":   StatusCompleted,
		"complete":    StatusCompleted,
		"done":        StatusCompleted,
		"DONE":        StatusCompleted,
	}

	for input, want := range cases {
		got, ok := ParseSubmissionStatus(input)
		require.True(t, ok, "input %q", input)
		require.Equal(t, want, got, "input %q", input)
	}
}

func TestParseSubmissionStatus_Unknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "cancelled", "finished", "NEW!", "in progress"} {
		_, ok := ParseSubmissionStatus(input)
		require.False(t, ok, "input %q should be rejected", input)
	}
}
