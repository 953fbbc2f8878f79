package controller

import (
	"strconv"

	"golfclub/repository"
	"golfclub/service"
	"golfclub/utils"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberController struct {
	memberService *service.MemberService
	cacheStore    persistence.CacheStore
}

func NewMemberController(db *gorm.DB, cacheStore persistence.CacheStore) *MemberController {
	return &MemberController{
		memberService: service.NewMemberService(db),
		cacheStore:    cacheStore,
	}
}

func setupMemberController(db *gorm.DB, cacheStore persistence.CacheStore) []RouteInfo {
	e := NewMemberController(db, cacheStore)
	basePath := "/members"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getMembersHandler(), Cached: true},
		{Method: "POST", Path: "", HandlerFunc: e.createMemberHandler(), Authenticated: true},
		{Method: "PATCH", Path: "/:member_id", HandlerFunc: e.updateMemberHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:member_id", HandlerFunc: e.deleteMemberHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

type MemberCreate struct {
	Name     string  `json:"name" binding:"required"`
	Role     string  `json:"role"`
	Handicap float64 `json:"handicap"`
}

type MemberUpdate struct {
	Name string `json:"name" binding:"required"`
}

type MemberResponse struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Handicap float64 `json:"handicap"`
}

func toMemberResponse(member *repository.Member) *MemberResponse {
	return &MemberResponse{
		Id:       member.Id,
		Name:     member.Name,
		Role:     string(member.Role),
		Handicap: member.Handicap,
	}
}

// @id GetMembers
// @Description Fetches all members ordered by name
// @Tags member
// @Produce json
// @Success 200 {array} MemberResponse
// @Router /members [get]
func (e *MemberController) getMembersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := e.memberService.GetAllMembers()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(members, toMemberResponse))
	}
}

// @id CreateMember
// @Description Creates a member
// @Tags member
// @Accept json
// @Produce json
// @Param member body MemberCreate true "Member"
// @Success 201 {object} MemberResponse
// @Security BearerAuth
// @Router /members [post]
func (e *MemberController) createMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var memberCreate MemberCreate
		if err := c.BindJSON(&memberCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		member, err := e.memberService.CreateMember(memberCreate.Name, repository.MemberRole(memberCreate.Role), memberCreate.Handicap)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		e.cacheStore.Flush()
		c.JSON(201, toMemberResponse(member))
	}
}

// @id UpdateMember
// @Description Renames a member and recomputes their handicap
// @Tags member
// @Accept json
// @Produce json
// @Param member_id path int true "Member Id"
// @Param member body MemberUpdate true "Member"
// @Success 200 {object} MemberResponse
// @Security BearerAuth
// @Router /members/{member_id} [patch]
func (e *MemberController) updateMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		memberId, err := strconv.Atoi(c.Param("member_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var memberUpdate MemberUpdate
		if err := c.BindJSON(&memberUpdate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		member, err := e.memberService.UpdateMemberName(memberId, memberUpdate.Name)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		e.cacheStore.Flush()
		c.JSON(200, toMemberResponse(member))
	}
}

// @id DeleteMember
// @Description Deletes a member and all of their scores
// @Tags member
// @Param member_id path int true "Member Id"
// @Success 204
// @Security BearerAuth
// @Router /members/{member_id} [delete]
func (e *MemberController) deleteMemberHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		memberId, err := strconv.Atoi(c.Param("member_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.memberService.DeleteMember(memberId); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		e.cacheStore.Flush()
		c.Status(204)
	}
}
