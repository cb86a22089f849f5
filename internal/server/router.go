package server

import (
	handler "competition-hub/services/competition/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(competitionService handler.CompetitionServiceInterface) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware)
	router.Use(MetricsMiddleware)

	competitionHandler := handler.NewCompetitionHandler(competitionService)

	router.GET("/status", competitionHandler.StatusHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	competitions := router.Group("/competitions")
	{
		competitions.GET("", competitionHandler.ListCompetitionsHandler)
		competitions.POST("", competitionHandler.CreateCompetitionHandler)
		competitions.GET("/open/submission", competitionHandler.ListOpenForSubmissionHandler)
		competitions.GET("/open/voting", competitionHandler.ListOpenForVotingHandler)
		competitions.GET("/:competition_id", competitionHandler.GetCompetitionHandler)
		competitions.POST("/:competition_id/submissions", competitionHandler.SubmitPostHandler)
		competitions.POST("/:competition_id/votes", competitionHandler.VoteHandler)
		competitions.GET("/:competition_id/posts/:post_id", competitionHandler.GetPostHandler)
	}

	return router
}
