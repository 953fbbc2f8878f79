package controller

import (
	"golfclub/auth"
	"golfclub/config"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

func setupAuthController() []RouteInfo {
	e := NewAuthController()
	return []RouteInfo{
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
	}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// @id Login
// @Description Exchanges the admin password for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Login"
// @Success 200 {object} LoginResponse
// @Router /login [post]
func (e *AuthController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var login LoginRequest
		if err := c.BindJSON(&login); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		adminPassword := config.Env().AdminPassword
		if adminPassword == "" {
			c.JSON(503, gin.H{"error": "ADMIN_PASSWORD is not configured"})
			return
		}
		if login.Password != adminPassword {
			c.JSON(401, gin.H{"error": "Wrong password"})
			return
		}
		token, err := auth.CreateAdminToken()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, LoginResponse{Token: token})
	}
}
