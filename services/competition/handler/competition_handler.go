package handler

import (
	"context"
	"net/http"

	competition "competition-hub/internal/competitionService"
	model "competition-hub/internal/models"
	"competition-hub/services/competition/helpers"
	"competition-hub/utils"

	"github.com/gin-gonic/gin"
)

type CompetitionServiceInterface interface {
	Status(ctx context.Context) competition.SourceStatus
	GetCompetitionView(ctx context.Context, id, viewer string) (competition.CompetitionView, error)
	ListCompetitionViews(ctx context.Context) ([]competition.CompetitionView, error)
	ListOpenForSubmission(ctx context.Context) ([]competition.CompetitionView, error)
	ListOpenForVoting(ctx context.Context) ([]competition.CompetitionView, error)
	CreateCompetition(ctx context.Context, nc model.NewCompetition) (competition.CompetitionView, error)
	SubmitPost(ctx context.Context, competitionID, postID, author string) (competition.CompetitionView, error)
	Vote(ctx context.Context, competitionID, postID, voter string) (competition.CompetitionView, error)
	GetPostView(ctx context.Context, competitionID, postID, viewer string) (competition.PostView, error)
}

type CompetitionHandler struct {
	service CompetitionServiceInterface
}

func NewCompetitionHandler(service CompetitionServiceInterface) *CompetitionHandler {
	return &CompetitionHandler{service: service}
}

// ListCompetitionsHandler handles GET /competitions
func (h *CompetitionHandler) ListCompetitionsHandler(c *gin.Context) {
	h.list(c, "ListCompetitionsHandler", h.service.ListCompetitionViews)
}

// ListOpenForSubmissionHandler handles GET /competitions/open/submission
func (h *CompetitionHandler) ListOpenForSubmissionHandler(c *gin.Context) {
	h.list(c, "ListOpenForSubmissionHandler", h.service.ListOpenForSubmission)
}

// ListOpenForVotingHandler handles GET /competitions/open/voting
func (h *CompetitionHandler) ListOpenForVotingHandler(c *gin.Context) {
	h.list(c, "ListOpenForVotingHandler", h.service.ListOpenForVoting)
}

func (h *CompetitionHandler) list(c *gin.Context, handlerName string, fetch func(context.Context) ([]competition.CompetitionView, error)) {
	views, err := fetch(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, handlerName, err, nil)
		return
	}

	resp := helpers.NewCompetitionResponses(views)
	utils.JSONResponse(c, http.StatusOK, resp, "competitions retrieved successfully")
	helpers.LogSuccess(handlerName, "competitions retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// GetCompetitionHandler handles GET /competitions/:competition_id
func (h *CompetitionHandler) GetCompetitionHandler(c *gin.Context) {
	competitionID := c.Param("competition_id")
	viewer := c.Query("viewer")

	view, err := h.service.GetCompetitionView(c.Request.Context(), competitionID, viewer)
	if err != nil {
		helpers.RespondError(c, "GetCompetitionHandler", err, map[string]any{"competition_id": competitionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewCompetitionResponse(view), "competition retrieved successfully")
	helpers.LogSuccess("GetCompetitionHandler", "competition retrieved successfully", map[string]any{
		"competition_id": competitionID,
		"phase":          view.View.Phase.String(),
	})
}

// CreateCompetitionHandler handles POST /competitions
func (h *CompetitionHandler) CreateCompetitionHandler(c *gin.Context) {
	var req helpers.CreateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCompetitionHandler", err)
		return
	}

	view, err := h.service.CreateCompetition(c.Request.Context(), model.NewCompetition{
		Creator:            req.Creator,
		Theme:              req.Theme,
		PrizePool:          req.PrizePool,
		SubmissionDeadline: req.SubmissionDeadline,
		VotingDeadline:     req.VotingDeadline,
	})
	if err != nil {
		helpers.RespondError(c, "CreateCompetitionHandler", err, map[string]any{"creator": req.Creator})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewCompetitionResponse(view), "competition created successfully")
	helpers.LogSuccess("CreateCompetitionHandler", "competition created successfully", map[string]any{
		"competition_id": view.Competition.ID,
		"creator":        utils.TruncateAddress(req.Creator),
		"prize_pool":     req.PrizePool,
	})
}

// SubmitPostHandler handles POST /competitions/:competition_id/submissions
func (h *CompetitionHandler) SubmitPostHandler(c *gin.Context) {
	competitionID := c.Param("competition_id")

	var req helpers.SubmitPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitPostHandler", err)
		return
	}

	view, err := h.service.SubmitPost(c.Request.Context(), competitionID, req.PostID, req.Author)
	if err != nil {
		helpers.RespondError(c, "SubmitPostHandler", err, map[string]any{
			"competition_id": competitionID,
			"post_id":        req.PostID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewCompetitionResponse(view), "post submitted successfully")
	helpers.LogSuccess("SubmitPostHandler", "post submitted successfully", map[string]any{
		"competition_id": competitionID,
		"post_id":        req.PostID,
		"author":         utils.TruncateAddress(req.Author),
	})
}

// VoteHandler handles POST /competitions/:competition_id/votes
func (h *CompetitionHandler) VoteHandler(c *gin.Context) {
	competitionID := c.Param("competition_id")

	var req helpers.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VoteHandler", err)
		return
	}

	view, err := h.service.Vote(c.Request.Context(), competitionID, req.PostID, req.Voter)
	if err != nil {
		helpers.RespondError(c, "VoteHandler", err, map[string]any{
			"competition_id": competitionID,
			"post_id":        req.PostID,
			"voter":          utils.TruncateAddress(req.Voter),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewCompetitionResponse(view), "vote recorded successfully")
	helpers.LogSuccess("VoteHandler", "vote recorded successfully", map[string]any{
		"competition_id": competitionID,
		"post_id":        req.PostID,
		"voter":          utils.TruncateAddress(req.Voter),
	})
}

// GetPostHandler handles GET /competitions/:competition_id/posts/:post_id
func (h *CompetitionHandler) GetPostHandler(c *gin.Context) {
	competitionID := c.Param("competition_id")
	postID := c.Param("post_id")

	pv, err := h.service.GetPostView(c.Request.Context(), competitionID, postID, c.Query("viewer"))
	if err != nil {
		helpers.RespondError(c, "GetPostHandler", err, map[string]any{
			"competition_id": competitionID,
			"post_id":        postID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewPostResponse(pv), "post retrieved successfully")
	helpers.LogSuccess("GetPostHandler", "post retrieved successfully", map[string]any{
		"competition_id": competitionID,
		"post_id":        postID,
		"votes":          pv.Votes,
	})
}

// StatusHandler handles GET /status
func (h *CompetitionHandler) StatusHandler(c *gin.Context) {
	status := h.service.Status(c.Request.Context())
	utils.JSONResponse(c, http.StatusOK, status, "status retrieved successfully")
}
