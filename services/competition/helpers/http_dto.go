package helpers

import (
	competition "competition-hub/internal/competitionService"
	"competition-hub/utils"
)

// Request/Response DTOs
type CreateCompetitionRequest struct {
	Creator            string `json:"creator" binding:"required"`
	Theme              string `json:"theme" binding:"required"`
	PrizePool          string `json:"prize_pool" binding:"required"`
	SubmissionDeadline int64  `json:"submission_deadline" binding:"required,gt=0"`
	VotingDeadline     int64  `json:"voting_deadline" binding:"required,gt=0"`
}

type SubmitPostRequest struct {
	PostID string `json:"post_id" binding:"required"`
	Author string `json:"author" binding:"required"`
}

type VoteRequest struct {
	PostID string `json:"post_id" binding:"required"`
	Voter  string `json:"voter" binding:"required"`
}

type CompetitionResponse struct {
	ID                 string   `json:"id"`
	Creator            string   `json:"creator,omitempty"`
	Theme              string   `json:"theme"`
	PrizePool          string   `json:"prize_pool"`
	PrizeDistributed   bool     `json:"prize_distributed"`
	SubmissionDeadline string   `json:"submission_deadline"`
	VotingDeadline     string   `json:"voting_deadline"`
	Phase              string   `json:"phase"`
	PhaseLabel         string   `json:"phase_label"`
	CanSubmit          bool     `json:"can_submit"`
	CanVote            bool     `json:"can_vote"`
	ShowWinner         bool     `json:"show_winner"`
	Submissions        []string `json:"submissions"`
	WinningPostID      string   `json:"winning_post_id,omitempty"`
	WinningAuthor      string   `json:"winning_author,omitempty"`
	EvaluatedAt        string   `json:"evaluated_at"`
}

type PostResponse struct {
	ID         string `json:"id"`
	Author     string `json:"author"`
	ContentURI string `json:"content_uri"`
	Content    string `json:"content,omitempty"`
	Image      string `json:"image,omitempty"`
	CreatedAt  string `json:"created_at"`
	Votes      uint64 `json:"votes"`
	IsWinner   bool   `json:"is_winner"`
	CanVote    bool   `json:"can_vote"`
	Phase      string `json:"phase"`
}

// NewCompetitionResponse flattens a view. Only visible submissions are listed and the winner is
// reported only once it may be shown.
func NewCompetitionResponse(v competition.CompetitionView) CompetitionResponse {
	resp := CompetitionResponse{
		ID:                 v.Competition.ID,
		Creator:            v.Competition.Creator,
		Theme:              v.Competition.Theme,
		PrizePool:          v.Competition.PrizePool,
		PrizeDistributed:   v.Competition.PrizeDistributed,
		SubmissionDeadline: utils.FormatUnix(v.Competition.SubmissionDeadline),
		VotingDeadline:     utils.FormatUnix(v.Competition.VotingDeadline),
		Phase:              v.View.Phase.String(),
		PhaseLabel:         v.View.Label,
		CanSubmit:          v.View.CanSubmit,
		CanVote:            v.View.CanVote,
		ShowWinner:         v.View.ShowWinner,
		Submissions:        v.View.VisibleSubmissions,
		EvaluatedAt:        utils.FormatUnix(v.View.EvaluatedAt),
	}
	if resp.Submissions == nil {
		resp.Submissions = []string{}
	}
	if v.View.ShowWinner {
		resp.WinningPostID = v.Competition.WinningPostID
		resp.WinningAuthor = v.Competition.WinningAuthor
	}
	return resp
}

// NewCompetitionResponses converts a list of views
func NewCompetitionResponses(views []competition.CompetitionView) []CompetitionResponse {
	out := make([]CompetitionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewCompetitionResponse(v))
	}
	return out
}

func NewPostResponse(pv competition.PostView) PostResponse {
	return PostResponse{
		ID:         pv.Post.ID,
		Author:     pv.Post.Author,
		ContentURI: pv.Post.ContentURI,
		Content:    pv.Post.Content,
		Image:      pv.Post.Image,
		CreatedAt:  utils.FormatUnix(pv.Post.CreationTimestamp),
		Votes:      pv.Votes,
		IsWinner:   pv.IsWinner,
		CanVote:    pv.CanVote,
		Phase:      pv.Phase.String(),
	}
}
