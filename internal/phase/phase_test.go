package phase

import (
	"testing"

	model "competition-hub/internal/models"

	"github.com/stretchr/testify/require"
)

const base int64 = 1_700_000_000

// Tests Derive
func TestDerive(t *testing.T) {
	t.Parallel()

	subDeadline := base + 100
	voteDeadline := base + 200

	tests := []struct {
		name string
		now  int64
		want Phase
	}{
		{name: "well_before_submission_deadline", now: base, want: SubmissionOpen},
		{name: "one_second_before_submission_deadline", now: subDeadline - 1, want: SubmissionOpen},
		{name: "at_submission_deadline", now: subDeadline, want: VotingOpen},
		{name: "mid_voting", now: base + 150, want: VotingOpen},
		{name: "one_second_before_voting_deadline", now: voteDeadline - 1, want: VotingOpen},
		{name: "at_voting_deadline", now: voteDeadline, want: Completed},
		{name: "after_voting_deadline", now: base + 250, want: Completed},
		{name: "zero_now", now: 0, want: SubmissionOpen},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Derive(subDeadline, voteDeadline, tc.now))
		})
	}
}

// Every instant in a window around both deadlines maps to exactly one phase and the
// sequence only moves forward
func TestDerive_TotalPartition(t *testing.T) {
	t.Parallel()

	subDeadline := base + 10
	voteDeadline := base + 20

	order := map[Phase]int{SubmissionOpen: 0, VotingOpen: 1, Completed: 2}
	last := -1
	for now := base - 5; now <= base+30; now++ {
		p := Derive(subDeadline, voteDeadline, now)

		holds := 0
		if now < subDeadline {
			holds++
			require.Equal(t, SubmissionOpen, p)
		}
		if subDeadline <= now && now < voteDeadline {
			holds++
			require.Equal(t, VotingOpen, p)
		}
		if now >= voteDeadline {
			holds++
			require.Equal(t, Completed, p)
		}
		require.Equal(t, 1, holds, "now=%d", now)
		require.GreaterOrEqual(t, order[p], last)
		last = order[p]
	}
}

// Inverted deadlines are a caller error but must still yield a single phase
func TestDerive_InvertedDeadlinesStillTotal(t *testing.T) {
	t.Parallel()

	for now := base - 5; now <= base+5; now++ {
		p := Derive(base, base-1, now)
		require.Contains(t, []Phase{SubmissionOpen, VotingOpen, Completed}, p)
	}
}

// Tests VisibleSubmissions
func TestVisibleSubmissions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		submissions []string
		winner      string
		phase       Phase
		want        []string
	}{
		{name: "completed_winner_removed", submissions: []string{"6", "7", "8", "9"}, winner: "7", phase: Completed, want: []string{"6", "8", "9"}},
		{name: "completed_winner_not_in_list", submissions: []string{"6", "7", "8", "9"}, winner: "99", phase: Completed, want: []string{"6", "7", "8", "9"}},
		{name: "completed_no_winner", submissions: []string{"1", "2", "3"}, winner: "", phase: Completed, want: []string{"1", "2", "3"}},
		{name: "voting_with_winner_kept", submissions: []string{"6", "7", "8"}, winner: "7", phase: VotingOpen, want: []string{"6", "7", "8"}},
		{name: "submission_with_winner_kept", submissions: []string{"6", "7"}, winner: "7", phase: SubmissionOpen, want: []string{"6", "7"}},
		{name: "winner_first", submissions: []string{"7", "8"}, winner: "7", phase: Completed, want: []string{"8"}},
		{name: "winner_last", submissions: []string{"6", "7"}, winner: "7", phase: Completed, want: []string{"6"}},
		{name: "only_winner", submissions: []string{"7"}, winner: "7", phase: Completed, want: []string{}},
		{name: "empty_list", submissions: []string{}, winner: "7", phase: Completed, want: []string{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, VisibleSubmissions(tc.submissions, tc.winner, tc.phase))
		})
	}
}

// The input slice must not be modified by filtering
func TestVisibleSubmissions_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	submissions := []string{"6", "7", "8", "9"}
	_ = VisibleSubmissions(submissions, "7", Completed)
	require.Equal(t, []string{"6", "7", "8", "9"}, submissions)
}

// Tests CanSubmit and CanVote
func TestGates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phase      Phase
		inFlight   bool
		wantSubmit bool
		wantVote   bool
	}{
		{phase: SubmissionOpen, inFlight: false, wantSubmit: true, wantVote: false},
		{phase: SubmissionOpen, inFlight: true, wantSubmit: true, wantVote: false},
		{phase: VotingOpen, inFlight: false, wantSubmit: false, wantVote: true},
		{phase: VotingOpen, inFlight: true, wantSubmit: false, wantVote: false},
		{phase: Completed, inFlight: false, wantSubmit: false, wantVote: false},
		{phase: Completed, inFlight: true, wantSubmit: false, wantVote: false},
	}

	for _, tc := range tests {
		require.Equal(t, tc.wantSubmit, CanSubmit(tc.phase), "CanSubmit(%s)", tc.phase)
		require.Equal(t, tc.wantVote, CanVote(tc.phase, tc.inFlight), "CanVote(%s, %v)", tc.phase, tc.inFlight)
	}
}

// Tests Evaluate against the documented scenarios
func TestEvaluate(t *testing.T) {
	t.Parallel()

	open := model.Competition{
		ID:                 "1",
		SubmissionDeadline: base + 100,
		VotingDeadline:     base + 200,
		Submissions:        []string{"1", "2", "3"},
	}

	t.Run("submission_open", func(t *testing.T) {
		v := Evaluate(open, base, false)
		require.Equal(t, SubmissionOpen, v.Phase)
		require.Equal(t, "Submission Open", v.Label)
		require.True(t, v.CanSubmit)
		require.False(t, v.CanVote)
		require.False(t, v.ShowWinner)
		require.Equal(t, base, v.EvaluatedAt)
	})

	t.Run("voting_open", func(t *testing.T) {
		v := Evaluate(open, base+150, false)
		require.Equal(t, VotingOpen, v.Phase)
		require.False(t, v.CanSubmit)
		require.True(t, v.CanVote)
	})

	t.Run("voting_open_in_flight", func(t *testing.T) {
		v := Evaluate(open, base+150, true)
		require.Equal(t, VotingOpen, v.Phase)
		require.False(t, v.CanVote)
	})

	t.Run("completed_with_winner", func(t *testing.T) {
		done := model.Competition{
			ID:                 "3",
			SubmissionDeadline: base + 100,
			VotingDeadline:     base + 200,
			Submissions:        []string{"6", "7", "8", "9"},
			WinningPostID:      "7",
		}
		v := Evaluate(done, base+250, false)
		require.Equal(t, Completed, v.Phase)
		require.True(t, v.ShowWinner)
		require.False(t, v.CanSubmit)
		require.False(t, v.CanVote)
		require.Equal(t, []string{"6", "8", "9"}, v.VisibleSubmissions)
	})

	t.Run("nil_submissions_become_empty", func(t *testing.T) {
		v := Evaluate(model.Competition{SubmissionDeadline: base + 1, VotingDeadline: base + 2}, base, false)
		require.NotNil(t, v.VisibleSubmissions)
		require.Empty(t, v.VisibleSubmissions)
	})
}
