package source

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"competition-hub/internal/competitionerrors"
	model "competition-hub/internal/models"
)

const (
	hour = int64(60 * 60)
	day  = 24 * hour

	demoCreator = "0x1234567890123456789012345678901234567890"
)

type demoPost struct {
	author  string
	content string
	image   string
}

var demoPosts = map[string]demoPost{
	"1": {
		author:  "0x1234567890123456789012345678901234567890",
		content: "I've built a decentralized identity solution that helps users control their personal data while interacting with web3 applications. #Web3Innovation",
		image:   "https://images.unsplash.com/photo-1639762681057-408e52192e55?q=80&w=2832&auto=format&fit=crop",
	},
	"2": {
		author:  "0x2345678901234567890123456789012345678901",
		content: "Introducing BlockVote: A transparent voting system built on blockchain that ensures election integrity and increases voter participation. #Web3Innovation",
		image:   "https://images.unsplash.com/photo-1614064641938-3bbee52942c7?q=80&w=2940&auto=format&fit=crop",
	},
	"3": {
		author:  "0x3456789012345678901234567890123456789012",
		content: "My project focuses on decentralized healthcare records, giving patients control over their medical data while ensuring privacy and security. #Web3Innovation",
		image:   "https://images.unsplash.com/photo-1576091160550-2173dba999ef?q=80&w=2940&auto=format&fit=crop",
	},
	"4": {
		author:  "0x4567890123456789012345678901234567890123",
		content: "Introducing DeFi Inclusion: A simplified DeFi platform designed for users in developing countries with limited banking access. #DeFiApplications",
		image:   "https://images.unsplash.com/photo-1620321023374-d1a68fbc720d?q=80&w=2797&auto=format&fit=crop",
	},
	"5": {
		author:  "0x5678901234567890123456789012345678901234",
		content: "MicroLend: A peer-to-peer lending protocol that enables microloans without collateral, using reputation systems instead. #DeFiApplications",
		image:   "https://images.unsplash.com/photo-1607944024060-0450380ddd33?q=80&w=2787&auto=format&fit=crop",
	},
	"6": {
		author:  "0x6789012345678901234567890123456789012345",
		content: "My NFT collection represents carbon credits, allowing companies to offset their emissions while supporting reforestation projects. #NFTShowcase",
		image:   "https://images.unsplash.com/photo-1544027993-37dbfe43562a?q=80&w=2940&auto=format&fit=crop",
	},
	"7": {
		author:  "0x7890123456789012345678901234567890123456",
		content: "Introducing Virtual Land NFTs that connect to real-world conservation efforts. Each purchase protects actual rainforest land. #NFTShowcase",
		image:   "https://images.unsplash.com/photo-1619551734325-81aaf323686c?q=80&w=2864&auto=format&fit=crop",
	},
	"8": {
		author:  "0x8901234567890123456789012345678901234567",
		content: "My music NFTs give fans ownership stakes in songs, allowing them to earn royalties alongside their favorite artists. #NFTShowcase",
		image:   "https://images.unsplash.com/photo-1511379938547-c1f69419868d?q=80&w=2940&auto=format&fit=crop",
	},
	"9": {
		author:  "0x9012345678901234567890123456789012345678",
		content: "Educational NFTs that grant access to exclusive courses and mentorship programs, creating a new model for online learning. #NFTShowcase",
		image:   "https://images.unsplash.com/photo-1501504905252-473c47e087f8?q=80&w=2874&auto=format&fit=crop",
	},
}

// MockSource is a concurrency-safe in-memory CompetitionSource holding the demo data set
type MockSource struct {
	mu           sync.RWMutex
	clock        func() time.Time
	order        []string                       // competition ids in creation order
	competitions map[string]model.Competition   // key: competitionID
	posts        map[string]model.Post          // key: postID
	votes        map[string]map[string]uint64   // key: competitionID -> postID -> count
	voters       map[string]map[string]struct{} // key: competitionID -> voter set
	nextID       int
}

// NewMockSource creates an empty mock source. A nil clock means time.Now.
func NewMockSource(clock func() time.Time) *MockSource {
	if clock == nil {
		clock = time.Now
	}
	return &MockSource{
		clock:        clock,
		competitions: make(map[string]model.Competition),
		posts:        make(map[string]model.Post),
		votes:        make(map[string]map[string]uint64),
		voters:       make(map[string]map[string]struct{}),
		nextID:       1,
	}
}

// NewDemoSource creates a mock source seeded with three competitions, one per phase,
// with deadlines relative to the clock
func NewDemoSource(clock func() time.Time) *MockSource {
	m := NewMockSource(clock)
	now := m.clock().Unix()

	m.AddCompetition(model.Competition{
		ID:                 "1",
		Creator:            demoCreator,
		Theme:              "Web3 Innovation - Create a dApp that solves a real-world problem using blockchain technology",
		PrizePool:          "0.5",
		SubmissionDeadline: now + 2*day,
		VotingDeadline:     now + 4*day,
		Submissions:        []string{"1", "2", "3"},
	})
	m.AddCompetition(model.Competition{
		ID:                 "2",
		Creator:            demoCreator,
		Theme:              "DeFi Applications - Showcase a decentralized finance application that improves financial inclusion",
		PrizePool:          "1.0",
		SubmissionDeadline: now - 12*hour,
		VotingDeadline:     now + 36*hour,
		Submissions:        []string{"4", "5"},
	})
	m.AddCompetition(model.Competition{
		ID:                 "3",
		Creator:            demoCreator,
		Theme:              "NFT Showcase - Create an innovative NFT project with real utility beyond digital art",
		PrizePool:          "0.3",
		PrizeDistributed:   true,
		SubmissionDeadline: now - 3*day,
		VotingDeadline:     now - day,
		Submissions:        []string{"6", "7", "8", "9"},
		WinningPostID:      "7",
		WinningAuthor:      demoPosts["7"].author,
	})

	for id, p := range demoPosts {
		m.AddPost(model.Post{
			ID:                id,
			Author:            p.author,
			ContentURI:        "ipfs://mock-content-uri-" + id,
			CreationTimestamp: demoCreationTimestamp(id, now),
			Content:           p.content,
			Image:             p.image,
		})
	}

	for cid, c := range m.competitions {
		for _, pid := range c.Submissions {
			m.votes[cid][pid] = demoVoteCount(cid, pid)
		}
	}

	return m
}

// demoCreationTimestamp places each demo post inside its competition's submission window
func demoCreationTimestamp(postID string, now int64) int64 {
	n, _ := strconv.ParseInt(postID, 10, 64)
	switch {
	case n >= 1 && n <= 3:
		return now - n*12*hour
	case n >= 4 && n <= 5:
		return now - 3*day - n*hour
	case n >= 6 && n <= 9:
		return now - 5*day - n*hour
	default:
		return now - day*(n%5)
	}
}

// demoVoteCount returns the seeded vote count; post 7 wins competition 3
func demoVoteCount(competitionID, postID string) uint64 {
	if _, ok := demoPosts[postID]; !ok {
		return 0
	}
	cid, _ := strconv.ParseUint(competitionID, 10, 64)
	pid, _ := strconv.ParseUint(postID, 10, 64)

	if competitionID == "3" {
		if postID == "7" {
			return 42
		}
		return (pid*7)%20 + 10
	}
	return ((cid*10+pid)*7)%30 + 5
}

// AddCompetition stores c, replacing any competition with the same id
func (m *MockSource) AddCompetition(c model.Competition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCompetitionLocked(c)
}

func (m *MockSource) addCompetitionLocked(c model.Competition) {
	if _, exists := m.competitions[c.ID]; !exists {
		m.order = append(m.order, c.ID)
	}
	c.Submissions = append([]string(nil), c.Submissions...)
	m.competitions[c.ID] = c
	if m.votes[c.ID] == nil {
		m.votes[c.ID] = make(map[string]uint64)
	}
	if m.voters[c.ID] == nil {
		m.voters[c.ID] = make(map[string]struct{})
	}
	if n, err := strconv.Atoi(c.ID); err == nil && n >= m.nextID {
		m.nextID = n + 1
	}
}

// AddPost stores p, replacing any post with the same id
func (m *MockSource) AddPost(p model.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[p.ID] = p
}

// Name identifies the source in logs and responses
func (m *MockSource) Name() string {
	return "mock"
}

// Deployed is always true for the in-memory source
func (m *MockSource) Deployed(ctx context.Context) (bool, error) {
	return true, nil
}

// GetCompetition returns a copy of the competition with the given id
func (m *MockSource) GetCompetition(ctx context.Context, id string) (model.Competition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.competitions[id]
	if !ok {
		return model.Competition{}, fmt.Errorf("get competition %s: %w", id, competitionerrors.ErrCompetitionNotFound)
	}
	return copyCompetition(c), nil
}

// ListCompetitions returns every competition in creation order
func (m *MockSource) ListCompetitions(ctx context.Context) ([]model.Competition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]model.Competition, 0, len(m.order))
	for _, id := range m.order {
		list = append(list, copyCompetition(m.competitions[id]))
	}
	return list, nil
}

// GetWinningAuthor returns the author of the winning post, or "" when there is none
func (m *MockSource) GetWinningAuthor(ctx context.Context, competitionID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.competitions[competitionID]
	if !ok {
		return "", fmt.Errorf("get winning author for competition %s: %w", competitionID, competitionerrors.ErrCompetitionNotFound)
	}
	if c.WinningAuthor != "" {
		return c.WinningAuthor, nil
	}
	if p, ok := m.posts[c.WinningPostID]; ok {
		return p.Author, nil
	}
	return "", nil
}

// GetPost returns the post with the given id
func (m *MockSource) GetPost(ctx context.Context, postID string) (model.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.posts[postID]
	if !ok {
		return model.Post{}, fmt.Errorf("get post %s: %w", postID, competitionerrors.ErrPostNotFound)
	}
	return p, nil
}

// GetPostVotes returns the vote count of a post; unknown pairs have zero votes
func (m *MockSource) GetPostVotes(ctx context.Context, competitionID, postID string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.votes[competitionID][postID], nil
}

// HasVoted reports whether voter already voted in the competition
func (m *MockSource) HasVoted(ctx context.Context, competitionID, voter string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.voters[competitionID][voter]
	return ok, nil
}

// IsSubmitted reports whether postID is a submission of the competition
func (m *MockSource) IsSubmitted(ctx context.Context, competitionID, postID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.competitions[competitionID]
	if !ok {
		return false, nil
	}
	return c.HasSubmission(postID), nil
}

// CreateCompetition stores a new competition under the next sequential id
func (m *MockSource) CreateCompetition(ctx context.Context, nc model.NewCompetition) (model.Competition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := model.Competition{
		ID:                 strconv.Itoa(m.nextID),
		Creator:            nc.Creator,
		Theme:              nc.Theme,
		PrizePool:          nc.PrizePool,
		SubmissionDeadline: nc.SubmissionDeadline,
		VotingDeadline:     nc.VotingDeadline,
		Submissions:        []string{},
	}
	m.addCompetitionLocked(c)
	return copyCompetition(c), nil
}

// SubmitPost appends postID to the competition, creating a post record for unknown ids
func (m *MockSource) SubmitPost(ctx context.Context, competitionID, postID, author string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.competitions[competitionID]
	if !ok {
		return fmt.Errorf("submit post %s to competition %s: %w", postID, competitionID, competitionerrors.ErrCompetitionNotFound)
	}
	if c.HasSubmission(postID) {
		return fmt.Errorf("submit post %s to competition %s: %w", postID, competitionID, competitionerrors.ErrAlreadySubmitted)
	}

	c.Submissions = append(c.Submissions, postID)
	m.competitions[competitionID] = c

	if _, exists := m.posts[postID]; !exists {
		m.posts[postID] = model.Post{
			ID:                postID,
			Author:            author,
			ContentURI:        "ipfs://mock-content-uri-" + postID,
			CreationTimestamp: m.clock().Unix(),
		}
	}
	return nil
}

// Vote records one vote of voter for postID
func (m *MockSource) Vote(ctx context.Context, competitionID, postID, voter string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.competitions[competitionID]
	if !ok {
		return fmt.Errorf("vote in competition %s: %w", competitionID, competitionerrors.ErrCompetitionNotFound)
	}
	if !c.HasSubmission(postID) {
		return fmt.Errorf("vote for post %s in competition %s: %w", postID, competitionID, competitionerrors.ErrPostNotInCompetition)
	}
	if _, voted := m.voters[competitionID][voter]; voted {
		return fmt.Errorf("vote in competition %s by %s: %w", competitionID, voter, competitionerrors.ErrAlreadyVoted)
	}

	m.voters[competitionID][voter] = struct{}{}
	m.votes[competitionID][postID]++
	return nil
}

func copyCompetition(c model.Competition) model.Competition {
	c.Submissions = append([]string{}, c.Submissions...)
	return c
}
