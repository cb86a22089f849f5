package competition

import (
	"context"
	"fmt"
	"strings"
	"time"

	"competition-hub/internal/competitionerrors"
	"competition-hub/internal/inflight"
	"competition-hub/internal/metrics"
	"competition-hub/internal/models"
	"competition-hub/internal/phase"
	"competition-hub/internal/source"
	"competition-hub/utils"
)

// Clock returns the current time; it is read once per view
type Clock func() time.Time

// CompetitionView is a competition together with the facts derived from it at one instant
type CompetitionView struct {
	Competition models.Competition `json:"competition"`
	View        phase.View         `json:"view"`
}

// PostView is a submission as shown inside a competition
type PostView struct {
	Post     models.Post `json:"post"`
	Votes    uint64      `json:"votes"`
	IsWinner bool        `json:"is_winner"`
	CanVote  bool        `json:"can_vote"`
	Phase    phase.Phase `json:"phase"`
}

// SourceStatus describes the competition source in use
type SourceStatus struct {
	Source   string `json:"source"`
	Deployed bool   `json:"deployed"`
	Demo     bool   `json:"demo"`
}

// CompetitionService orchestrates source reads and writes around the phase rules
type CompetitionService struct {
	source source.CompetitionSource
	guard  inflight.Guard
	clock  Clock
}

// NewCompetitionService creates a new CompetitionService instance. A nil clock means time.Now.
func NewCompetitionService(src source.CompetitionSource, guard inflight.Guard, clock Clock) *CompetitionService {
	if clock == nil {
		clock = time.Now
	}
	return &CompetitionService{
		source: src,
		guard:  guard,
		clock:  clock,
	}
}

func (s *CompetitionService) now() int64 {
	return s.clock().Unix()
}

// Status reports which source serves reads
func (s *CompetitionService) Status(ctx context.Context) SourceStatus {
	deployed, err := s.source.Deployed(ctx)
	if err != nil {
		utils.Warn("service: deployment check failed", map[string]any{"source": s.source.Name(), "error": err.Error()})
	}
	return SourceStatus{
		Source:   s.source.Name(),
		Deployed: deployed,
		Demo:     s.source.Name() == "mock",
	}
}

// fetchCompetition reads one competition and records the read duration
func (s *CompetitionService) fetchCompetition(ctx context.Context, id string) (models.Competition, error) {
	defer metrics.RecordSourceRead(s.source.Name(), "get_competition", time.Now())
	return s.source.GetCompetition(ctx, id)
}

// voteInFlight reports whether viewer has a vote pending in the competition
func (s *CompetitionService) voteInFlight(ctx context.Context, competitionID, viewer string) bool {
	if viewer == "" {
		return false
	}
	busy, err := s.guard.InFlight(ctx, inflight.Key(inflight.ActionVote, competitionID, viewer))
	if err != nil {
		utils.Warn("service: in-flight check failed", map[string]any{"competition_id": competitionID, "error": err.Error()})
		return false
	}
	return busy
}

// evaluate derives the view of c at now and fills in the winning author when it is shown
func (s *CompetitionService) evaluate(ctx context.Context, c models.Competition, now int64, inFlight bool) CompetitionView {
	view := phase.Evaluate(c, now, inFlight)
	metrics.PhaseEvaluations.WithLabelValues(view.Phase.String()).Inc()

	if view.ShowWinner && c.WinningAuthor == "" {
		author, err := s.source.GetWinningAuthor(ctx, c.ID)
		if err != nil {
			utils.Warn("service: failed to fetch winning author", map[string]any{"competition_id": c.ID, "error": err.Error()})
		} else {
			c.WinningAuthor = author
		}
	}

	return CompetitionView{Competition: c, View: view}
}

// GetCompetitionView returns one competition with its derived view. viewer is optional and
// only affects CanVote.
func (s *CompetitionService) GetCompetitionView(ctx context.Context, id, viewer string) (CompetitionView, error) {
	if id == "" {
		return CompetitionView{}, fmt.Errorf("service: %w - empty competition ID", competitionerrors.ErrInvalidRequest)
	}

	c, err := s.fetchCompetition(ctx, id)
	if err != nil {
		return CompetitionView{}, fmt.Errorf("service: failed to get competition %s: %w", id, err)
	}

	now := s.now()
	return s.evaluate(ctx, c, now, s.voteInFlight(ctx, id, viewer)), nil
}

// ListCompetitionViews returns every competition evaluated at the same instant
func (s *CompetitionService) ListCompetitionViews(ctx context.Context) ([]CompetitionView, error) {
	start := time.Now()
	list, err := s.source.ListCompetitions(ctx)
	metrics.RecordSourceRead(s.source.Name(), "list_competitions", start)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list competitions: %w", err)
	}

	now := s.now()
	views := make([]CompetitionView, 0, len(list))
	for _, c := range list {
		views = append(views, s.evaluate(ctx, c, now, false))
	}
	return views, nil
}

func (s *CompetitionService) listWhere(ctx context.Context, keep func(phase.View) bool) ([]CompetitionView, error) {
	all, err := s.ListCompetitionViews(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CompetitionView, 0, len(all))
	for _, v := range all {
		if keep(v.View) {
			views = append(views, v)
		}
	}
	return views, nil
}

// ListOpenForSubmission returns competitions still accepting posts
func (s *CompetitionService) ListOpenForSubmission(ctx context.Context) ([]CompetitionView, error) {
	return s.listWhere(ctx, func(v phase.View) bool { return v.CanSubmit })
}

// ListOpenForVoting returns competitions in their voting window
func (s *CompetitionService) ListOpenForVoting(ctx context.Context) ([]CompetitionView, error) {
	return s.listWhere(ctx, func(v phase.View) bool { return v.Phase == phase.VotingOpen })
}

// CreateCompetition validates and stores a new competition
func (s *CompetitionService) CreateCompetition(ctx context.Context, nc models.NewCompetition) (CompetitionView, error) {
	now := s.now()
	if err := validateNewCompetition(nc, now); err != nil {
		return CompetitionView{}, err
	}

	nc.Theme = strings.TrimSpace(nc.Theme)
	created, err := s.source.CreateCompetition(ctx, nc)
	if err != nil {
		return CompetitionView{}, fmt.Errorf("service: failed to create competition: %w", err)
	}

	return s.evaluate(ctx, created, now, false), nil
}

// validateNewCompetition checks the creation rules; the deadline order is only enforced here
func validateNewCompetition(nc models.NewCompetition, now int64) error {
	if strings.TrimSpace(nc.Theme) == "" {
		return fmt.Errorf("service: %w - empty theme", competitionerrors.ErrInvalidCompetition)
	}

	wei, err := utils.ParseEther(nc.PrizePool)
	if err != nil {
		return fmt.Errorf("service: %w - prize pool %q is not a decimal", competitionerrors.ErrInvalidCompetition, nc.PrizePool)
	}
	if wei.Sign() <= 0 {
		return fmt.Errorf("service: %w - prize pool must be at least one wei", competitionerrors.ErrInvalidCompetition)
	}

	if nc.SubmissionDeadline <= now {
		return fmt.Errorf("service: %w - submission deadline must be in the future", competitionerrors.ErrInvalidCompetition)
	}
	if nc.VotingDeadline <= nc.SubmissionDeadline {
		return fmt.Errorf("service: %w - voting deadline must be after submission deadline", competitionerrors.ErrInvalidCompetition)
	}
	return nil
}

// SubmitPost enters postID into a competition whose submission window is open
func (s *CompetitionService) SubmitPost(ctx context.Context, competitionID, postID, author string) (CompetitionView, error) {
	if competitionID == "" || postID == "" || author == "" {
		return CompetitionView{}, fmt.Errorf("service: %w - missing competition ID, post ID or author", competitionerrors.ErrInvalidRequest)
	}

	release, acquired, err := s.guard.Acquire(ctx, inflight.Key(inflight.ActionSubmit, competitionID, author))
	if err != nil {
		return CompetitionView{}, fmt.Errorf("service: failed to claim submission: %w", err)
	}
	if !acquired {
		metrics.ActionRejections.WithLabelValues(inflight.ActionSubmit, "in_flight").Inc()
		return CompetitionView{}, fmt.Errorf("service: %w - submission by %s", competitionerrors.ErrActionInFlight, author)
	}
	defer release()

	c, err := s.fetchCompetition(ctx, competitionID)
	if err != nil {
		return CompetitionView{}, fmt.Errorf("service: failed to get competition %s: %w", competitionID, err)
	}

	if !phase.CanSubmit(phase.Derive(c.SubmissionDeadline, c.VotingDeadline, s.now())) {
		metrics.ActionRejections.WithLabelValues(inflight.ActionSubmit, "closed").Inc()
		return CompetitionView{}, fmt.Errorf("service: %w - competition %s", competitionerrors.ErrSubmissionClosed, competitionID)
	}

	submitted, err := s.source.IsSubmitted(ctx, competitionID, postID)
	if err != nil {
		return CompetitionView{}, fmt.Errorf("service: failed to check submission of post %s: %w", postID, err)
	}
	if submitted || c.HasSubmission(postID) {
		metrics.ActionRejections.WithLabelValues(inflight.ActionSubmit, "duplicate").Inc()
		return CompetitionView{}, fmt.Errorf("service: %w - post %s", competitionerrors.ErrAlreadySubmitted, postID)
	}

	if err := s.source.SubmitPost(ctx, competitionID, postID, author); err != nil {
		return CompetitionView{}, fmt.Errorf("service: failed to submit post %s to competition %s: %w", postID, competitionID, err)
	}

	return s.GetCompetitionView(ctx, competitionID, "")
}

// Vote casts voter's vote for postID. A second vote from the same voter while the first is
// still pending is refused.
func (s *CompetitionService) Vote(ctx context.Context, competitionID, postID, voter string) (CompetitionView, error) {
	if competitionID == "" || postID == "" || voter == "" {
		return CompetitionView{}, fmt.Errorf("service: %w - missing competition ID, post ID or voter", competitionerrors.ErrInvalidRequest)
	}

	release, acquired, err := s.guard.Acquire(ctx, inflight.Key(inflight.ActionVote, competitionID, voter))
	if err != nil {
		return CompetitionView{}, fmt.Errorf("service: failed to claim vote: %w", err)
	}
	if acquired {
		defer release()
	}

	c, err := s.fetchCompetition(ctx, competitionID)
	if err != nil {
		return CompetitionView{}, fmt.Errorf("service: failed to get competition %s: %w", competitionID, err)
	}

	p := phase.Derive(c.SubmissionDeadline, c.VotingDeadline, s.now())
	if !phase.CanVote(p, !acquired) {
		if p != phase.VotingOpen {
			metrics.ActionRejections.WithLabelValues(inflight.ActionVote, "closed").Inc()
			return CompetitionView{}, fmt.Errorf("service: %w - competition %s is %s", competitionerrors.ErrVotingClosed, competitionID, p)
		}
		metrics.ActionRejections.WithLabelValues(inflight.ActionVote, "in_flight").Inc()
		return CompetitionView{}, fmt.Errorf("service: %w - vote by %s", competitionerrors.ErrActionInFlight, voter)
	}

	if !c.HasSubmission(postID) {
		return CompetitionView{}, fmt.Errorf("service: %w - post %s", competitionerrors.ErrPostNotInCompetition, postID)
	}

	voted, err := s.source.HasVoted(ctx, competitionID, voter)
	if err != nil {
		return CompetitionView{}, fmt.Errorf("service: failed to check vote of %s: %w", voter, err)
	}
	if voted {
		metrics.ActionRejections.WithLabelValues(inflight.ActionVote, "duplicate").Inc()
		return CompetitionView{}, fmt.Errorf("service: %w - voter %s", competitionerrors.ErrAlreadyVoted, voter)
	}

	if err := s.source.Vote(ctx, competitionID, postID, voter); err != nil {
		return CompetitionView{}, fmt.Errorf("service: failed to vote for post %s in competition %s: %w", postID, competitionID, err)
	}

	return s.GetCompetitionView(ctx, competitionID, "")
}

// GetPostView returns a submission with its votes and whether viewer may vote for it
func (s *CompetitionService) GetPostView(ctx context.Context, competitionID, postID, viewer string) (PostView, error) {
	if competitionID == "" || postID == "" {
		return PostView{}, fmt.Errorf("service: %w - missing competition ID or post ID", competitionerrors.ErrInvalidRequest)
	}

	c, err := s.fetchCompetition(ctx, competitionID)
	if err != nil {
		return PostView{}, fmt.Errorf("service: failed to get competition %s: %w", competitionID, err)
	}
	if !c.HasSubmission(postID) {
		return PostView{}, fmt.Errorf("service: %w - post %s", competitionerrors.ErrPostNotInCompetition, postID)
	}

	view := phase.Evaluate(c, s.now(), s.voteInFlight(ctx, competitionID, viewer))

	post, err := s.source.GetPost(ctx, postID)
	if err != nil {
		return PostView{}, fmt.Errorf("service: failed to get post %s: %w", postID, err)
	}

	votes, err := s.source.GetPostVotes(ctx, competitionID, postID)
	if err != nil {
		utils.Warn("service: failed to fetch post votes", map[string]any{"competition_id": competitionID, "post_id": postID, "error": err.Error()})
		votes = 0
	}

	isWinner := view.ShowWinner && c.WinningPostID == postID
	return PostView{
		Post:     post,
		Votes:    votes,
		IsWinner: isWinner,
		CanVote:  view.CanVote && !isWinner,
		Phase:    view.Phase,
	}, nil
}
