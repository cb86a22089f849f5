package models

// Competition is a themed contest with a prize pool, a submission window and a voting window.
// Deadlines are unix seconds.
type Competition struct {
	ID                 string   `json:"id"`
	Creator            string   `json:"creator,omitempty"`
	Theme              string   `json:"theme"`
	PrizePool          string   `json:"prize_pool"`
	PrizeDistributed   bool     `json:"prize_distributed"`
	SubmissionDeadline int64    `json:"submission_deadline"`
	VotingDeadline     int64    `json:"voting_deadline"`
	Submissions        []string `json:"submissions"`
	WinningPostID      string   `json:"winning_post_id,omitempty"`
	WinningAuthor      string   `json:"winning_author,omitempty"`
}

// HasWinner reports whether a winning post has been recorded
func (c Competition) HasWinner() bool {
	return c.WinningPostID != ""
}

// HasSubmission reports whether postID was entered into the competition
func (c Competition) HasSubmission(postID string) bool {
	for _, id := range c.Submissions {
		if id == postID {
			return true
		}
	}
	return false
}

// NewCompetition carries the fields needed to create a competition
type NewCompetition struct {
	Creator            string
	Theme              string
	PrizePool          string
	SubmissionDeadline int64
	VotingDeadline     int64
}

// Post is an entry of the feed contract
type Post struct {
	ID                string `json:"id"`
	Author            string `json:"author"`
	ContentURI        string `json:"content_uri"`
	CreationTimestamp int64  `json:"creation_timestamp"`
	IsDeleted         bool   `json:"is_deleted"`
	Content           string `json:"content,omitempty"`
	Image             string `json:"image,omitempty"`
}
