package controller

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"golfclub/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

type StatsController struct {
	statsService *service.StatsService
	mu           sync.Mutex
	connections  map[*websocket.Conn]bool
	lastStats    []byte
}

func NewStatsController(db *gorm.DB) *StatsController {
	controller := &StatsController{
		statsService: service.NewStatsService(db),
		connections:  make(map[*websocket.Conn]bool),
	}
	controller.StartStatsUpdater()
	return controller
}

func setupStatsController(db *gorm.DB) []RouteInfo {
	e := NewStatsController(db)
	basePath := "/stats"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getStatsHandler(), Cached: true},
		{Method: "GET", Path: "/ws", HandlerFunc: e.WebSocketHandler},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow any host origin to connect to the websocket
		return true
	},
}

type StatsResponse struct {
	TotalRounds  int64       `json:"totalRounds"`
	AverageScore string      `json:"averageScore"`
	BestScore    interface{} `json:"bestScore"`
}

func toStatsResponse(stats *service.DashboardStats) *StatsResponse {
	response := &StatsResponse{
		TotalRounds:  stats.TotalRounds,
		AverageScore: stats.AverageScore,
		BestScore:    "-",
	}
	if stats.BestScore != nil {
		response.BestScore = *stats.BestScore
	}
	return response
}

// @id GetDashboardStats
// @Description Fetches aggregate statistics for the public dashboard
// @Tags stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /stats [get]
func (e *StatsController) getStatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := e.statsService.GetDashboardStats()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, toStatsResponse(stats))
	}
}

// @id StatsWebSocket
// @Description Websocket for dashboard statistics. Once connected, the client receives the stats whenever they change.
// @Tags stats
// @Router /stats/ws [get]
// @Success 200 {object} StatsResponse
func (e *StatsController) WebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.NotFound(c.Writer, c.Request)
		return
	}
	defer conn.Close()

	stats, err := e.statsService.GetDashboardStats()
	if err != nil {
		return
	}
	serialized, err := json.Marshal(toStatsResponse(stats))
	if err != nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
		return
	}

	e.mu.Lock()
	e.connections[conn] = true
	e.mu.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			e.mu.Lock()
			delete(e.connections, conn)
			e.mu.Unlock()
			return
		}
	}
}

func (e *StatsController) StartStatsUpdater() {
	go func() {
		for {
			e.mu.Lock()
			active := len(e.connections) > 0
			e.mu.Unlock()
			if active {
				stats, err := e.statsService.GetDashboardStats()
				if err == nil {
					serialized, err := json.Marshal(toStatsResponse(stats))
					if err == nil {
						e.mu.Lock()
						if string(serialized) != string(e.lastStats) {
							e.lastStats = serialized
							for conn := range e.connections {
								if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
									conn.Close()
									delete(e.connections, conn)
								}
							}
						}
						e.mu.Unlock()
					}
				}
			}
			time.Sleep(5 * time.Second)
		}
	}()
}
