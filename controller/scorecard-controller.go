package controller

import (
	"errors"

	"golfclub/app_error"
	"golfclub/client"
	"golfclub/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScorecardController struct {
	scorecardService *service.ScorecardService
}

func NewScorecardController(db *gorm.DB) *ScorecardController {
	return &ScorecardController{
		scorecardService: service.NewScorecardService(db),
	}
}

func setupScorecardController(db *gorm.DB) []RouteInfo {
	e := NewScorecardController(db)
	return []RouteInfo{
		{Method: "POST", Path: "/rounds/analyze", HandlerFunc: e.analyzeHandler(), Authenticated: true},
	}
}

type AnalyzeRequest struct {
	Image string `json:"image" binding:"required"`
}

// @id AnalyzeScorecard
// @Description Extracts date, course and per-player scores from a scorecard photo. Extracted names are matched against known members; unmatched names stay placeholders until the round is saved.
// @Tags round
// @Accept json
// @Produce json
// @Param image body AnalyzeRequest true "Base64 image or data URL"
// @Success 200 {object} service.ScorecardData
// @Security BearerAuth
// @Router /rounds/analyze [post]
func (e *ScorecardController) analyzeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var analyzeRequest AnalyzeRequest
		if err := c.BindJSON(&analyzeRequest); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		data, err := e.scorecardService.AnalyzeScoreImage(c.Request.Context(), analyzeRequest.Image)
		if err != nil {
			app_error.WithHTTPStatus(c, err, analysisErrorStatus(err))
			return
		}
		c.JSON(200, data)
	}
}

// analysisErrorStatus keeps the error taxonomy visible to the client:
// configuration and parse problems are 4xx the admin can act on, quota maps
// to 429 so the caller knows a later retry may succeed.
func analysisErrorStatus(err error) int {
	if errors.Is(err, client.ErrMissingApiKey) {
		return 400
	}
	var parseError *service.ParseError
	if errors.As(err, &parseError) {
		return 400
	}
	var serviceError *client.ServiceError
	if errors.As(err, &serviceError) {
		switch serviceError.Kind {
		case client.ServiceErrorModelNotFound:
			return 404
		case client.ServiceErrorQuotaExceeded:
			return 429
		}
	}
	return app_error.HTTPStatus(err, 502)
}
