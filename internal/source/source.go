package source

import (
	"context"

	model "competition-hub/internal/models"
	"competition-hub/utils"
)

//go:generate mockgen -destination=mock_source.go -package=source competition-hub/internal/source CompetitionSource

// CompetitionSource is where competition and post records come from. Records are
// returned by value and callers fetch again after any write.
type CompetitionSource interface {
	Name() string
	Deployed(ctx context.Context) (bool, error)

	GetCompetition(ctx context.Context, id string) (model.Competition, error)
	ListCompetitions(ctx context.Context) ([]model.Competition, error)
	GetWinningAuthor(ctx context.Context, competitionID string) (string, error)
	GetPost(ctx context.Context, postID string) (model.Post, error)
	GetPostVotes(ctx context.Context, competitionID, postID string) (uint64, error)
	HasVoted(ctx context.Context, competitionID, voter string) (bool, error)
	IsSubmitted(ctx context.Context, competitionID, postID string) (bool, error)

	CreateCompetition(ctx context.Context, nc model.NewCompetition) (model.Competition, error)
	SubmitPost(ctx context.Context, competitionID, postID, author string) error
	Vote(ctx context.Context, competitionID, postID, voter string) error
}

// Select returns primary when its contracts are deployed, fallback otherwise.
// The decision is made once; callers keep the returned source for their lifetime.
func Select(ctx context.Context, primary, fallback CompetitionSource) CompetitionSource {
	deployed, err := primary.Deployed(ctx)
	if err != nil {
		utils.Warn("source: deployment check failed, using fallback", map[string]any{
			"primary":  primary.Name(),
			"fallback": fallback.Name(),
			"error":    err.Error(),
		})
		return fallback
	}
	if !deployed {
		utils.Warn("source: contracts not deployed, using fallback", map[string]any{
			"primary":  primary.Name(),
			"fallback": fallback.Name(),
		})
		return fallback
	}

	utils.Info("source: using primary", map[string]any{"source": primary.Name()})
	return primary
}
