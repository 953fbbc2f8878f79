package controller

import (
	"time"

	"golfclub/auth"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	Cached        bool
}

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupAuthController()...)
	routes = append(routes, setupMemberController(db, cacheStore)...)
	routes = append(routes, setupRoundController(db, cacheStore)...)
	routes = append(routes, setupStatsController(db)...)
	routes = append(routes, setupScorecardController(db)...)
	api := r.Group("/api")
	for _, route := range routes {
		handler := route.HandlerFunc
		if route.Cached {
			handler = cache.CachePage(cacheStore, time.Minute, handler)
		}
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware())
		}
		handlerfuncs = append(handlerfuncs, handler)
		api.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		token, err := auth.ParseToken(authHeader[7:])
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		claims := &auth.Claims{}
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			c.JSON(401, gin.H{"error": "Unauthenticated"})
			c.Abort()
			return
		}
		if claims.Role != "ADMIN" {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
