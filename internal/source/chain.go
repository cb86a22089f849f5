package source

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"competition-hub/internal/competitionerrors"
	model "competition-hub/internal/models"
	"competition-hub/utils"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ContractCaller is the read-only subset of an Ethereum client used by ChainSource
type ContractCaller interface {
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// competitionTuple mirrors the getCompetition return tuple
type competitionTuple struct {
	Creator            common.Address
	PrizeDistributed   bool
	Theme              string
	SubmissionDeadline *big.Int
	VotingDeadline     *big.Int
	PrizePool          *big.Int
	Submissions        []*big.Int
	WinningPostId      *big.Int
}

// postTuple mirrors the feed getPost return tuple
type postTuple struct {
	Author                 common.Address
	AuthorPostSequentialId *big.Int
	PostSequentialId       *big.Int
	ContentURI             string
	RootPostId             *big.Int
	RepostedPostId         *big.Int
	QuotedPostId           *big.Int
	RepliedPostId          *big.Int
	CreationTimestamp      *big.Int
	CreationSource         common.Address
	LastUpdatedTimestamp   *big.Int
	LastUpdateSource       common.Address
	IsDeleted              bool
}

// ChainSource reads competitions from the Competitions and Feed contracts.
// Writes require a wallet signature and are not performed here.
type ChainSource struct {
	caller         ContractCaller
	competitions   common.Address
	feed           common.Address
	competitionABI abi.ABI
	feedABI        abi.ABI
	scanCount      int
}

// NewChainSource creates a ChainSource over an existing caller
func NewChainSource(caller ContractCaller, competitionsAddr, feedAddr string, scanCount int) (*ChainSource, error) {
	if !common.IsHexAddress(competitionsAddr) || !common.IsHexAddress(feedAddr) {
		return nil, fmt.Errorf("chain source: invalid contract address %q / %q", competitionsAddr, feedAddr)
	}

	compABI, err := abi.JSON(strings.NewReader(competitionsABI))
	if err != nil {
		return nil, fmt.Errorf("chain source: parse competitions abi: %w", err)
	}
	fABI, err := abi.JSON(strings.NewReader(feedABI))
	if err != nil {
		return nil, fmt.Errorf("chain source: parse feed abi: %w", err)
	}

	if scanCount <= 0 {
		scanCount = 5
	}

	return &ChainSource{
		caller:         caller,
		competitions:   common.HexToAddress(competitionsAddr),
		feed:           common.HexToAddress(feedAddr),
		competitionABI: compABI,
		feedABI:        fABI,
		scanCount:      scanCount,
	}, nil
}

// DialChainSource connects to rpcURL and returns a ChainSource using that connection
func DialChainSource(ctx context.Context, rpcURL, competitionsAddr, feedAddr string, scanCount int) (*ChainSource, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("chain source: dial %s: %w", rpcURL, err)
	}
	return NewChainSource(client, competitionsAddr, feedAddr, scanCount)
}

// Name identifies the source in logs and responses
func (s *ChainSource) Name() string {
	return "chain"
}

// Deployed reports whether both contract addresses hold code
func (s *ChainSource) Deployed(ctx context.Context) (bool, error) {
	for _, addr := range []common.Address{s.competitions, s.feed} {
		code, err := s.caller.CodeAt(ctx, addr, nil)
		if err != nil {
			return false, fmt.Errorf("chain source: code at %s: %w", addr.Hex(), err)
		}
		if len(code) == 0 {
			return false, nil
		}
	}
	return true, nil
}

// call packs method with args, executes it against contract and unpacks the result
func (s *ChainSource) call(ctx context.Context, contract common.Address, contractABI abi.ABI, method string, args ...any) ([]any, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	raw, err := s.caller.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errEmptyReturn
	}

	out, err := contractABI.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return out, nil
}

var errEmptyReturn = errors.New("empty return data")

// isMissing reports whether a call failed because the requested record does not exist
func isMissing(err error) bool {
	if errors.Is(err, errEmptyReturn) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "revert") || strings.Contains(msg, "call exception")
}

// fitsUnix reports whether a uint256 timestamp is representable as unix seconds
func fitsUnix(ts *big.Int) bool {
	return ts != nil && ts.IsInt64()
}

func parseID(id string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(id, 10)
	if !ok || n.Sign() < 0 {
		return nil, false
	}
	return n, true
}

// GetCompetition reads one competition. A zero creator means the id was never used.
func (s *ChainSource) GetCompetition(ctx context.Context, id string) (model.Competition, error) {
	n, ok := parseID(id)
	if !ok {
		return model.Competition{}, fmt.Errorf("get competition %q: %w", id, competitionerrors.ErrCompetitionNotFound)
	}

	out, err := s.call(ctx, s.competitions, s.competitionABI, "getCompetition", n)
	if err != nil {
		if isMissing(err) {
			return model.Competition{}, fmt.Errorf("get competition %s: %w", id, competitionerrors.ErrCompetitionNotFound)
		}
		return model.Competition{}, fmt.Errorf("get competition %s: %w", id, err)
	}

	t := *abi.ConvertType(out[0], new(competitionTuple)).(*competitionTuple)
	if t.Creator == (common.Address{}) {
		return model.Competition{}, fmt.Errorf("get competition %s: %w", id, competitionerrors.ErrCompetitionNotFound)
	}

	if !fitsUnix(t.SubmissionDeadline) || !fitsUnix(t.VotingDeadline) {
		return model.Competition{}, fmt.Errorf("get competition %s: %w - deadline out of range", id, competitionerrors.ErrMalformedRecord)
	}

	submissions := make([]string, 0, len(t.Submissions))
	for _, p := range t.Submissions {
		submissions = append(submissions, p.String())
	}

	c := model.Competition{
		ID:                 id,
		Creator:            t.Creator.Hex(),
		Theme:              t.Theme,
		PrizePool:          utils.FormatEther(t.PrizePool),
		PrizeDistributed:   t.PrizeDistributed,
		SubmissionDeadline: t.SubmissionDeadline.Int64(),
		VotingDeadline:     t.VotingDeadline.Int64(),
		Submissions:        submissions,
	}
	if t.WinningPostId != nil && t.WinningPostId.Sign() != 0 {
		c.WinningPostID = t.WinningPostId.String()
	}
	return c, nil
}

// ListCompetitions scans ids 1..scanCount and keeps the ones that exist
func (s *ChainSource) ListCompetitions(ctx context.Context) ([]model.Competition, error) {
	list := make([]model.Competition, 0, s.scanCount)
	for i := 1; i <= s.scanCount; i++ {
		id := strconv.Itoa(i)
		c, err := s.GetCompetition(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if !errors.Is(err, competitionerrors.ErrCompetitionNotFound) {
				utils.Warn("chain source: skipping competition", map[string]any{"competition_id": id, "error": err.Error()})
			}
			continue
		}
		list = append(list, c)
	}
	return list, nil
}

// GetWinningAuthor reads the winning author address; the zero address maps to ""
func (s *ChainSource) GetWinningAuthor(ctx context.Context, competitionID string) (string, error) {
	n, ok := parseID(competitionID)
	if !ok {
		return "", fmt.Errorf("get winning author %q: %w", competitionID, competitionerrors.ErrCompetitionNotFound)
	}

	out, err := s.call(ctx, s.competitions, s.competitionABI, "getWinningAuthor", n)
	if err != nil {
		return "", fmt.Errorf("get winning author for competition %s: %w", competitionID, err)
	}

	author := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
	if author == (common.Address{}) {
		return "", nil
	}
	return author.Hex(), nil
}

// GetPost reads a post from the feed contract
func (s *ChainSource) GetPost(ctx context.Context, postID string) (model.Post, error) {
	n, ok := parseID(postID)
	if !ok {
		return model.Post{}, fmt.Errorf("get post %q: %w", postID, competitionerrors.ErrPostNotFound)
	}

	out, err := s.call(ctx, s.feed, s.feedABI, "getPost", n)
	if err != nil {
		if isMissing(err) {
			return model.Post{}, fmt.Errorf("get post %s: %w", postID, competitionerrors.ErrPostNotFound)
		}
		return model.Post{}, fmt.Errorf("get post %s: %w", postID, err)
	}

	t := *abi.ConvertType(out[0], new(postTuple)).(*postTuple)
	var created int64
	if t.CreationTimestamp != nil {
		if !fitsUnix(t.CreationTimestamp) {
			return model.Post{}, fmt.Errorf("get post %s: %w - creation timestamp out of range", postID, competitionerrors.ErrMalformedRecord)
		}
		created = t.CreationTimestamp.Int64()
	}

	return model.Post{
		ID:                postID,
		Author:            t.Author.Hex(),
		ContentURI:        t.ContentURI,
		CreationTimestamp: created,
		IsDeleted:         t.IsDeleted,
	}, nil
}

// GetPostVotes reads the vote count of a post in a competition
func (s *ChainSource) GetPostVotes(ctx context.Context, competitionID, postID string) (uint64, error) {
	cid, ok1 := parseID(competitionID)
	pid, ok2 := parseID(postID)
	if !ok1 || !ok2 {
		return 0, fmt.Errorf("get votes %q/%q: %w", competitionID, postID, competitionerrors.ErrInvalidRequest)
	}

	out, err := s.call(ctx, s.competitions, s.competitionABI, "getVotes", cid, pid)
	if err != nil {
		return 0, fmt.Errorf("get votes for post %s in competition %s: %w", postID, competitionID, err)
	}

	votes := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	if votes == nil || !votes.IsUint64() {
		return 0, nil
	}
	return votes.Uint64(), nil
}

// HasVoted reads whether voter already voted in the competition
func (s *ChainSource) HasVoted(ctx context.Context, competitionID, voter string) (bool, error) {
	cid, ok := parseID(competitionID)
	if !ok || !common.IsHexAddress(voter) {
		return false, fmt.Errorf("has voted %q/%q: %w", competitionID, voter, competitionerrors.ErrInvalidRequest)
	}

	out, err := s.call(ctx, s.competitions, s.competitionABI, "getVoted", cid, common.HexToAddress(voter))
	if err != nil {
		return false, fmt.Errorf("has voted in competition %s: %w", competitionID, err)
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// IsSubmitted reads whether postID was submitted to the competition
func (s *ChainSource) IsSubmitted(ctx context.Context, competitionID, postID string) (bool, error) {
	cid, ok1 := parseID(competitionID)
	pid, ok2 := parseID(postID)
	if !ok1 || !ok2 {
		return false, fmt.Errorf("is submitted %q/%q: %w", competitionID, postID, competitionerrors.ErrInvalidRequest)
	}

	out, err := s.call(ctx, s.competitions, s.competitionABI, "getSubmitted", cid, pid)
	if err != nil {
		return false, fmt.Errorf("is submitted post %s in competition %s: %w", postID, competitionID, err)
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// CreateCompetition is signed by the creator's wallet, not by this service
func (s *ChainSource) CreateCompetition(ctx context.Context, nc model.NewCompetition) (model.Competition, error) {
	return model.Competition{}, fmt.Errorf("create competition: %w", competitionerrors.ErrReadOnlySource)
}

// SubmitPost is signed by the author's wallet, not by this service
func (s *ChainSource) SubmitPost(ctx context.Context, competitionID, postID, author string) error {
	return fmt.Errorf("submit post %s: %w", postID, competitionerrors.ErrReadOnlySource)
}

// Vote is signed by the voter's wallet, not by this service
func (s *ChainSource) Vote(ctx context.Context, competitionID, postID, voter string) error {
	return fmt.Errorf("vote for post %s: %w", postID, competitionerrors.ErrReadOnlySource)
}
