package perftests

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	competition "competition-hub/internal/competitionService"
	"competition-hub/internal/inflight"
	model "competition-hub/internal/models"
	"competition-hub/internal/phase"
	"competition-hub/internal/source"
)

var benchNow = time.Unix(1_700_000_000, 0)

func benchClock() time.Time { return benchNow }

// setupService creates a mock source with numCompetitions voting competitions of postsEach posts
func setupService(numCompetitions, postsEach int) (*source.MockSource, *competition.CompetitionService) {
	src := source.NewMockSource(benchClock)
	now := benchNow.Unix()

	for i := 0; i < numCompetitions; i++ {
		subs := make([]string, postsEach)
		for j := range subs {
			subs[j] = fmt.Sprintf("%d", i*postsEach+j+1)
			src.AddPost(model.Post{ID: subs[j], Author: fmt.Sprintf("author_%d", j), CreationTimestamp: now - 1000})
		}
		src.AddCompetition(model.Competition{
			ID:                 fmt.Sprintf("%d", i+1),
			Theme:              fmt.Sprintf("theme_%d", i),
			PrizePool:          "1",
			SubmissionDeadline: now - 100,
			VotingDeadline:     now + 100_000,
			Submissions:        subs,
			WinningPostID:      subs[0],
		})
	}

	return src, competition.NewCompetitionService(src, inflight.NewMemoryGuard(), benchClock)
}

// Benchmark 1: Evaluate - pure phase derivation over a large completed competition
func Benchmark_Evaluate_Completed(b *testing.B) {
	subs := make([]string, 500)
	for i := range subs {
		subs[i] = fmt.Sprintf("%d", i+1)
	}
	c := model.Competition{
		ID:                 "1",
		SubmissionDeadline: 100,
		VotingDeadline:     200,
		Submissions:        subs,
		WinningPostID:      "250",
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = phase.Evaluate(c, 300, false)
	}
}

// Benchmark 2: ListCompetitionViews - one evaluation pass over many competitions
func Benchmark_ListCompetitionViews(b *testing.B) {
	_, svc := setupService(100, 10)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.ListCompetitionViews(ctx); err != nil {
			b.Fatalf("failed to list competitions: %v", err)
		}
	}
}

// Benchmark 3: Vote - distinct voters (Low Contention)
func Benchmark_Vote_Isolated(b *testing.B) {
	_, svc := setupService(1, 5)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		voter := fmt.Sprintf("voter_%d", i)
		if _, err := svc.Vote(ctx, "1", "1", voter); err != nil {
			b.Fatalf("failed to vote: %v", err)
		}
	}
}

// Benchmark 4: Vote - one voter hammering the same competition (High Contention).
// Exactly one vote may succeed; the rest are refused as in flight or duplicate.
func Benchmark_Vote_ConcurrentSameVoter(b *testing.B) {
	src, svc := setupService(1, 5)
	ctx := context.Background()

	var accepted int64

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.Vote(ctx, "1", "2", "shared_voter"); err == nil {
				atomic.AddInt64(&accepted, 1)
			}
		}
	})

	b.StopTimer()
	votes, _ := src.GetPostVotes(ctx, "1", "2")
	if accepted != 1 || votes != 1 {
		b.Fatalf("expected exactly one accepted vote, got accepted=%d recorded=%d", accepted, votes)
	}
}
