package controller

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"golfclub/repository"
	"golfclub/service"
	"golfclub/utils"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RoundController struct {
	roundService *service.RoundService
	cacheStore   persistence.CacheStore
}

func NewRoundController(db *gorm.DB, cacheStore persistence.CacheStore) *RoundController {
	return &RoundController{
		roundService: service.NewRoundService(db),
		cacheStore:   cacheStore,
	}
}

func setupRoundController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewRoundController(db, cacheStore)
	basePath := "/rounds"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getRoundsHandler(), Cached: true},
		{Method: "POST", Path: "", HandlerFunc: e.createRoundHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:round_id", HandlerFunc: e.updateRoundHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:round_id", HandlerFunc: e.deleteRoundHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type ScoreCreate struct {
	MemberId   *int   `json:"memberId"`
	Name       string `json:"name"`
	Score      int    `json:"score" binding:"required"`
	FrontScore *int   `json:"frontScore"`
	BackScore  *int   `json:"backScore"`
}

type RoundCreate struct {
	Date   string        `json:"date" binding:"required"`
	Course string        `json:"course" binding:"required"`
	Scores []ScoreCreate `json:"scores"`
}

type ScoreUpdate struct {
	Id         int  `json:"id" binding:"required"`
	Score      int  `json:"score" binding:"required"`
	FrontScore *int `json:"frontScore"`
	BackScore  *int `json:"backScore"`
}

type RoundUpdate struct {
	Date   string        `json:"date" binding:"required"`
	Course string        `json:"course" binding:"required"`
	Scores []ScoreUpdate `json:"scores"`
}

type ScoreResponse struct {
	Id         int             `json:"id"`
	MemberId   int             `json:"memberId"`
	Score      int             `json:"score"`
	FrontScore *int            `json:"frontScore,omitempty"`
	BackScore  *int            `json:"backScore,omitempty"`
	Member     *MemberResponse `json:"member,omitempty"`
}

type RoundResponse struct {
	Id          int              `json:"id"`
	Date        string           `json:"date"`
	Course      string           `json:"course"`
	RoundNumber int              `json:"roundNumber"`
	Scores      []*ScoreResponse `json:"scores"`
}

func toScoreResponse(score *repository.Score) *ScoreResponse {
	response := &ScoreResponse{
		Id:         score.Id,
		MemberId:   score.MemberId,
		Score:      score.Score,
		FrontScore: score.FrontScore,
		BackScore:  score.BackScore,
	}
	if score.Member != nil {
		response.Member = toMemberResponse(score.Member)
	}
	return response
}

func toRoundResponse(round *repository.Round) *RoundResponse {
	return &RoundResponse{
		Id:          round.Id,
		Date:        round.Date.UTC().Format("2006-01-02"),
		Course:      round.Course,
		RoundNumber: round.RoundNumber,
		Scores:      utils.Map(round.Scores, toScoreResponse),
	}
}

func parseDate(value string) (time.Time, error) {
	if date, err := time.Parse("2006-01-02", value); err == nil {
		return date, nil
	}
	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}

// @id GetRounds
// @Description Fetches all rounds with their scores and members, newest first
// @Tags round
// @Produce json
// @Success 200 {array} RoundResponse
// @Router /rounds [get]
func (e *RoundController) getRoundsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rounds, err := e.roundService.GetRounds()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(rounds, toRoundResponse))
	}
}

// @id CreateRound
// @Description Creates a round with its scores, renumbers all rounds and recalculates handicaps
// @Tags round
// @Accept json
// @Produce json
// @Param round body RoundCreate true "Round"
// @Success 201 {object} RoundResponse
// @Security BearerAuth
// @Router /rounds [post]
func (e *RoundController) createRoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var roundCreate RoundCreate
		if err := c.BindJSON(&roundCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		date, err := parseDate(roundCreate.Date)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		entries := utils.Map(roundCreate.Scores, func(s ScoreCreate) service.ScoreEntry {
			return service.ScoreEntry{
				MemberId:   s.MemberId,
				Name:       s.Name,
				Score:      s.Score,
				FrontScore: s.FrontScore,
				BackScore:  s.BackScore,
			}
		})
		round, err := e.roundService.CreateRound(date, roundCreate.Course, entries)
		if err != nil {
			var validationError *service.ValidationError
			if errors.As(err, &validationError) {
				c.JSON(400, gin.H{"error": err.Error()})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		e.cacheStore.Flush()
		c.JSON(201, toRoundResponse(round))
	}
}

// @id UpdateRound
// @Description Updates a round's date, course and scores, then renumbers and recalculates handicaps
// @Tags round
// @Accept json
// @Produce json
// @Param round_id path int true "Round Id"
// @Param round body RoundUpdate true "Round"
// @Success 200 {object} RoundResponse
// @Security BearerAuth
// @Router /rounds/{round_id} [patch]
func (e *RoundController) updateRoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		roundId, err := strconv.Atoi(c.Param("round_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var roundUpdate RoundUpdate
		if err := c.BindJSON(&roundUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		date, err := parseDate(roundUpdate.Date)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		edits := utils.Map(roundUpdate.Scores, func(s ScoreUpdate) service.ScoreEdit {
			return service.ScoreEdit{
				Id:         s.Id,
				Score:      s.Score,
				FrontScore: s.FrontScore,
				BackScore:  s.BackScore,
			}
		})
		round, err := e.roundService.UpdateRoundInfo(roundId, date, roundUpdate.Course, edits)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(404, gin.H{"error": "Round not found"})
			} else {
				c.JSON(500, gin.H{"error": err.Error()})
			}
			return
		}
		e.cacheStore.Flush()
		c.JSON(200, toRoundResponse(round))
	}
}

// @id DeleteRound
// @Description Deletes a round and its scores, then renumbers and recalculates handicaps
// @Tags round
// @Param round_id path int true "Round Id"
// @Success 204
// @Security BearerAuth
// @Router /rounds/{round_id} [delete]
func (e *RoundController) deleteRoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		roundId, err := strconv.Atoi(c.Param("round_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.roundService.DeleteRound(roundId); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		e.cacheStore.Flush()
		c.Status(204)
	}
}
