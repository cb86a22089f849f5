package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	competition "competition-hub/internal/competitionService"
	"competition-hub/internal/competitionerrors"
	model "competition-hub/internal/models"
	"competition-hub/internal/phase"
	"competition-hub/services/competition/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const now = int64(1_700_000_000)

func newTestRouter(t *testing.T) (*gin.Engine, *MockCompetitionServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := NewMockCompetitionServiceInterface(ctrl)
	h := NewCompetitionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/competitions", h.ListCompetitionsHandler)
	router.GET("/competitions/open/submission", h.ListOpenForSubmissionHandler)
	router.GET("/competitions/open/voting", h.ListOpenForVotingHandler)
	router.GET("/competitions/:competition_id", h.GetCompetitionHandler)
	router.POST("/competitions", h.CreateCompetitionHandler)
	router.POST("/competitions/:competition_id/submissions", h.SubmitPostHandler)
	router.POST("/competitions/:competition_id/votes", h.VoteHandler)
	router.GET("/competitions/:competition_id/posts/:post_id", h.GetPostHandler)
	router.GET("/status", h.StatusHandler)
	return router, mockService
}

func completedView() competition.CompetitionView {
	c := model.Competition{
		ID:                 "3",
		Theme:              "NFT Showcase",
		PrizePool:          "0.3",
		SubmissionDeadline: now - 200,
		VotingDeadline:     now - 100,
		Submissions:        []string{"6", "7", "8", "9"},
		WinningPostID:      "7",
		WinningAuthor:      "0x7890123456789012345678901234567890123456",
	}
	return competition.CompetitionView{Competition: c, View: phase.Evaluate(c, now, false)}
}

func votingView() competition.CompetitionView {
	c := model.Competition{
		ID:                 "2",
		Theme:              "DeFi Applications",
		PrizePool:          "1",
		SubmissionDeadline: now - 100,
		VotingDeadline:     now + 100,
		Submissions:        []string{"4", "5"},
		WinningPostID:      "5",
	}
	return competition.CompetitionView{Competition: c, View: phase.Evaluate(c, now, false)}
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

// Test GetCompetitionHandler
func TestGetCompetitionHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		path           string
		mockSetup      func(m *MockCompetitionServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "completed_shows_winner",
			path: "/competitions/3",
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().GetCompetitionView(gomock.Any(), "3", "").Return(completedView(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "competition retrieved successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "Completed", data["phase"])
				require.Equal(t, true, data["show_winner"])
				require.Equal(t, "7", data["winning_post_id"])
				require.Equal(t, []any{"6", "8", "9"}, data["submissions"])
				require.Equal(t, "2023-11-14T22:13:20Z", data["evaluated_at"])
			},
		},
		{
			name: "voting_hides_winner",
			path: "/competitions/2?viewer=alice",
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().GetCompetitionView(gomock.Any(), "2", "alice").Return(votingView(), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "competition retrieved successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "VotingOpen", data["phase"])
				require.Equal(t, true, data["can_vote"])
				require.NotContains(t, data, "winning_post_id")
				require.Equal(t, []any{"4", "5"}, data["submissions"])
			},
		},
		{
			name: "not_found",
			path: "/competitions/404",
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().GetCompetitionView(gomock.Any(), "404", "").
					Return(competition.CompetitionView{}, fmt.Errorf("service: %w", competitionerrors.ErrCompetitionNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "competition not found",
		},
		{
			name: "malformed_record",
			path: "/competitions/6",
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().GetCompetitionView(gomock.Any(), "6", "").
					Return(competition.CompetitionView{}, fmt.Errorf("service: %w", competitionerrors.ErrMalformedRecord))
			},
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "malformed record from source",
		},
		{
			name: "service_generic_error",
			path: "/competitions/5",
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().GetCompetitionView(gomock.Any(), "5", "").
					Return(competition.CompetitionView{}, errors.New("rpc failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService := newTestRouter(t)
			tc.mockSetup(mockService)

			w, resp := doRequest(t, router, http.MethodGet, tc.path, nil)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test the three listing handlers
func TestListCompetitionsHandlers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		path           string
		mockSetup      func(m *MockCompetitionServiceInterface)
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "all",
			path: "/competitions",
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().ListCompetitionViews(gomock.Any()).Return([]competition.CompetitionView{votingView(), completedView()}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name: "open_for_voting",
			path: "/competitions/open/voting",
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().ListOpenForVoting(gomock.Any()).Return([]competition.CompetitionView{votingView()}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name: "open_for_submission_empty",
			path: "/competitions/open/submission",
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().ListOpenForSubmission(gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name: "service_error",
			path: "/competitions",
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().ListCompetitionViews(gomock.Any()).Return(nil, errors.New("rpc failure"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService := newTestRouter(t)
			tc.mockSetup(mockService)

			w, resp := doRequest(t, router, http.MethodGet, tc.path, nil)
			require.Equal(t, tc.expectedStatus, w.Code)
			if w.Code == http.StatusOK {
				require.Len(t, resp["data"].([]any), tc.expectedLen)
			}
		})
	}
}

// Test CreateCompetitionHandler
func TestCreateCompetitionHandler(t *testing.T) {
	t.Parallel()

	valid := helpers.CreateCompetitionRequest{
		Creator:            "0x1234567890123456789012345678901234567890",
		Theme:              "Zero Knowledge",
		PrizePool:          "0.25",
		SubmissionDeadline: now + 3600,
		VotingDeadline:     now + 7200,
	}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockCompetitionServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: valid,
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().CreateCompetition(gomock.Any(), model.NewCompetition{
					Creator:            valid.Creator,
					Theme:              valid.Theme,
					PrizePool:          valid.PrizePool,
					SubmissionDeadline: valid.SubmissionDeadline,
					VotingDeadline:     valid.VotingDeadline,
				}).Return(competition.CompetitionView{
					Competition: model.Competition{ID: "4", Theme: valid.Theme},
					View:        phase.View{Phase: phase.SubmissionOpen, CanSubmit: true, VisibleSubmissions: []string{}},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "competition created successfully",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockCompetitionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_theme",
			requestBody: helpers.CreateCompetitionRequest{
				Creator:            valid.Creator,
				PrizePool:          "1",
				SubmissionDeadline: now + 1,
				VotingDeadline:     now + 2,
			},
			mockSetup:      func(m *MockCompetitionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_invalid_competition",
			requestBody: valid,
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().CreateCompetition(gomock.Any(), gomock.Any()).
					Return(competition.CompetitionView{}, competitionerrors.ErrInvalidCompetition)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid competition details",
		},
		{
			name:        "read_only_source",
			requestBody: valid,
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().CreateCompetition(gomock.Any(), gomock.Any()).
					Return(competition.CompetitionView{}, competitionerrors.ErrReadOnlySource)
			},
			expectedStatus: http.StatusNotImplemented,
			expectedMsg:    "source does not accept writes",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService := newTestRouter(t)
			tc.mockSetup(mockService)

			w, resp := doRequest(t, router, http.MethodPost, "/competitions", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, "4", data["id"])
				require.Equal(t, true, data["can_submit"])
			}
		})
	}
}

// Test VoteHandler
func TestVoteHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockCompetitionServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: helpers.VoteRequest{PostID: "4", Voter: "alice"},
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().Vote(gomock.Any(), "2", "4", "alice").Return(votingView(), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "vote recorded successfully",
		},
		{
			name:           "missing_voter",
			requestBody:    helpers.VoteRequest{PostID: "4"},
			mockSetup:      func(m *MockCompetitionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "in_flight",
			requestBody: helpers.VoteRequest{PostID: "4", Voter: "alice"},
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().Vote(gomock.Any(), "2", "4", "alice").
					Return(competition.CompetitionView{}, fmt.Errorf("service: %w - vote by alice", competitionerrors.ErrActionInFlight))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "action already in progress",
		},
		{
			name:        "voting_closed",
			requestBody: helpers.VoteRequest{PostID: "4", Voter: "alice"},
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().Vote(gomock.Any(), "2", "4", "alice").
					Return(competition.CompetitionView{}, competitionerrors.ErrVotingClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "voting is not open",
		},
		{
			name:        "already_voted",
			requestBody: helpers.VoteRequest{PostID: "4", Voter: "alice"},
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().Vote(gomock.Any(), "2", "4", "alice").
					Return(competition.CompetitionView{}, competitionerrors.ErrAlreadyVoted)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "already voted in this competition",
		},
		{
			name:        "post_not_in_competition",
			requestBody: helpers.VoteRequest{PostID: "99", Voter: "alice"},
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().Vote(gomock.Any(), "2", "99", "alice").
					Return(competition.CompetitionView{}, competitionerrors.ErrPostNotInCompetition)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "post is not a submission of this competition",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService := newTestRouter(t)
			tc.mockSetup(mockService)

			w, resp := doRequest(t, router, http.MethodPost, "/competitions/2/votes", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test SubmitPostHandler
func TestSubmitPostHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockCompetitionServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: helpers.SubmitPostRequest{PostID: "10", Author: "bob"},
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().SubmitPost(gomock.Any(), "1", "10", "bob").Return(competition.CompetitionView{
					Competition: model.Competition{ID: "1", Submissions: []string{"10"}},
					View:        phase.View{Phase: phase.SubmissionOpen, CanSubmit: true, VisibleSubmissions: []string{"10"}},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "post submitted successfully",
		},
		{
			name:           "missing_post_id",
			requestBody:    helpers.SubmitPostRequest{Author: "bob"},
			mockSetup:      func(m *MockCompetitionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "submission_closed",
			requestBody: helpers.SubmitPostRequest{PostID: "10", Author: "bob"},
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().SubmitPost(gomock.Any(), "1", "10", "bob").
					Return(competition.CompetitionView{}, competitionerrors.ErrSubmissionClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "submission window is closed",
		},
		{
			name:        "already_submitted",
			requestBody: helpers.SubmitPostRequest{PostID: "10", Author: "bob"},
			mockSetup: func(m *MockCompetitionServiceInterface) {
				m.EXPECT().SubmitPost(gomock.Any(), "1", "10", "bob").
					Return(competition.CompetitionView{}, competitionerrors.ErrAlreadySubmitted)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "post already submitted",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService := newTestRouter(t)
			tc.mockSetup(mockService)

			w, resp := doRequest(t, router, http.MethodPost, "/competitions/1/submissions", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test GetPostHandler
func TestGetPostHandler(t *testing.T) {
	t.Parallel()

	t.Run("winner", func(t *testing.T) {
		router, mockService := newTestRouter(t)
		mockService.EXPECT().GetPostView(gomock.Any(), "3", "7", "").Return(competition.PostView{
			Post:     model.Post{ID: "7", Author: "0x7890", ContentURI: "ipfs://7", CreationTimestamp: now - 500},
			Votes:    42,
			IsWinner: true,
			Phase:    phase.Completed,
		}, nil)

		w, resp := doRequest(t, router, http.MethodGet, "/competitions/3/posts/7", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, 42.0, data["votes"])
		require.Equal(t, true, data["is_winner"])
		require.Equal(t, false, data["can_vote"])
		require.Equal(t, "Completed", data["phase"])
	})

	t.Run("post_missing", func(t *testing.T) {
		router, mockService := newTestRouter(t)
		mockService.EXPECT().GetPostView(gomock.Any(), "3", "99", "bob").
			Return(competition.PostView{}, competitionerrors.ErrPostNotInCompetition)

		w, _ := doRequest(t, router, http.MethodGet, "/competitions/3/posts/99?viewer=bob", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStatusHandler(t *testing.T) {
	t.Parallel()

	router, mockService := newTestRouter(t)
	mockService.EXPECT().Status(gomock.Any()).Return(competition.SourceStatus{Source: "mock", Deployed: true, Demo: true})

	w, resp := doRequest(t, router, http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]any)
	require.Equal(t, "mock", data["source"])
	require.Equal(t, true, data["demo"])
}
