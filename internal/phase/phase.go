// Package phase derives the lifecycle state of a competition from its two deadlines.
//
// Everything here is pure. Callers sample the current time once and pass it to every
// function used while building a single view, so the derived facts cannot disagree.
package phase

import model "competition-hub/internal/models"

// Phase is one of the three mutually exclusive lifecycle states of a competition
type Phase string

const (
	SubmissionOpen Phase = "SubmissionOpen"
	VotingOpen     Phase = "VotingOpen"
	Completed      Phase = "Completed"
)

// String returns the wire form of the phase
func (p Phase) String() string {
	return string(p)
}

// Label returns the human readable badge text
func (p Phase) Label() string {
	switch p {
	case SubmissionOpen:
		return "Submission Open"
	case VotingOpen:
		return "Voting Open"
	default:
		return "Completed"
	}
}

// Derive classifies now against the deadlines (all unix seconds).
// Voting opens at the same instant submissions close.
func Derive(submissionDeadline, votingDeadline, now int64) Phase {
	switch {
	case now < submissionDeadline:
		return SubmissionOpen
	case now < votingDeadline:
		return VotingOpen
	default:
		return Completed
	}
}

// VisibleSubmissions returns the submissions to list alongside the winner.
// Once completed, the winner is shown on its own and left out of the list.
// A winner that is not among the submissions leaves the list unchanged.
func VisibleSubmissions(submissions []string, winningPostID string, p Phase) []string {
	if p != Completed || winningPostID == "" {
		return submissions
	}

	visible := make([]string, 0, len(submissions))
	for _, id := range submissions {
		if id != winningPostID {
			visible = append(visible, id)
		}
	}
	return visible
}

// CanSubmit reports whether new posts are accepted
func CanSubmit(p Phase) bool {
	return p == SubmissionOpen
}

// CanVote reports whether a vote may be cast. inFlight is owned by the caller and is true
// while a previous vote for the same action is still pending.
func CanVote(p Phase, inFlight bool) bool {
	return p == VotingOpen && !inFlight
}

// View holds everything derived for one competition in a single pass
type View struct {
	Phase              Phase    `json:"phase"`
	Label              string   `json:"label"`
	CanSubmit          bool     `json:"can_submit"`
	CanVote            bool     `json:"can_vote"`
	ShowWinner         bool     `json:"show_winner"`
	VisibleSubmissions []string `json:"visible_submissions"`
	EvaluatedAt        int64    `json:"evaluated_at"`
}

// Evaluate derives the full view of c at now
func Evaluate(c model.Competition, now int64, inFlight bool) View {
	p := Derive(c.SubmissionDeadline, c.VotingDeadline, now)

	visible := VisibleSubmissions(c.Submissions, c.WinningPostID, p)
	if visible == nil {
		visible = []string{}
	}

	return View{
		Phase:              p,
		Label:              p.Label(),
		CanSubmit:          CanSubmit(p),
		CanVote:            CanVote(p, inFlight),
		ShowWinner:         p == Completed && c.HasWinner(),
		VisibleSubmissions: visible,
		EvaluatedAt:        now,
	}
}
