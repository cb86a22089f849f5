package competitionerrors

import "errors"

// Source-level errors
var (
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrMalformedRecord     = errors.New("malformed source record")
	ErrReadOnlySource      = errors.New("source does not accept writes")
)

// business logic errors
var (
	ErrInvalidCompetition   = errors.New("invalid competition")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrSubmissionClosed     = errors.New("submissions are closed")
	ErrVotingClosed         = errors.New("voting is not open")
	ErrAlreadySubmitted     = errors.New("post already submitted")
	ErrAlreadyVoted         = errors.New("user has already voted")
	ErrPostNotInCompetition = errors.New("post is not a submission of this competition")
	ErrActionInFlight       = errors.New("action already in progress")
)
