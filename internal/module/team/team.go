package team

import (
	"strconv"
	"team-retro-system/internal/global/authz"
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/jwt"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"omitempty"`
}

// CreateTeam 创建团队，创建者自动成为 lead
func CreateTeam(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定建队请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	team := model.Team{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     payload.UserID,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		return tx.Create(&model.TeamMember{
			TeamID: team.ID,
			UserID: payload.UserID,
			Role:   model.TeamRoleLead,
		}).Error
	})
	if err != nil {
		log.Error("创建团队失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, team)
}

// MyTeams 列出当前用户所在的团队
func MyTeams(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var teams []model.Team
	err := database.DB.
		Joins("JOIN team_member ON team_member.team_id = team.id AND team_member.user_id = ?", payload.UserID).
		Find(&teams).Error
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, teams)
}

// ListMembers 列出团队成员，仅限本团队成员查看
func ListMembers(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	teamID, err := parseTeamID(c.Param("team_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	if member, err := authz.IsTeamMember(teamID, payload.UserID); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	} else if !member {
		response.Fail(c, response.ErrForbidden)
		return
	}

	var members []model.TeamMember
	if err := database.DB.Preload("User").Where("team_id = ?", teamID).Find(&members).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, members)
}

type MemberRequest struct {
	TeamID uint `json:"team_id" binding:"required"`
	UserID uint `json:"user_id" binding:"required"`
}

// AddMember 添加团队成员，仅限 lead
func AddMember(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if lead, err := authz.IsTeamLead(req.TeamID, payload.UserID); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	} else if !lead {
		response.Fail(c, response.ErrForbidden)
		return
	}

	var user model.User
	if err := database.DB.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
		} else {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
		}
		return
	}

	member := model.TeamMember{
		TeamID: req.TeamID,
		UserID: req.UserID,
		Role:   model.TeamRoleMember,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		// (team_id, user_id) 唯一索引兜底
		response.Fail(c, response.ErrAlreadyExists.WithTips("已是团队成员"))
		return
	}
	response.Success(c, member)
}

// RemoveMember 移除团队成员，仅限 lead；不允许移除团队创建者
func RemoveMember(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if lead, err := authz.IsTeamLead(req.TeamID, payload.UserID); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	} else if !lead {
		response.Fail(c, response.ErrForbidden)
		return
	}

	var team model.Team
	if err := database.DB.First(&team, req.TeamID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("团队不存在"))
		return
	}
	if team.OwnerID == req.UserID {
		response.Fail(c, response.ErrForbidden.WithTips("不能移除团队创建者"))
		return
	}

	result := database.DB.Where("team_id = ? AND user_id = ?", req.TeamID, req.UserID).Delete(&model.TeamMember{})
	if result.Error != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound.WithTips("该用户不在团队中"))
		return
	}
	response.Success(c)
}

type SetLeadRequest struct {
	TeamID uint `json:"team_id" binding:"required"`
	UserID uint `json:"user_id" binding:"required"`
	Lead   bool `json:"lead"`
}

// SetLead 提升或取消成员的 lead 角色，仅限 lead
func SetLead(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	var req SetLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if lead, err := authz.IsTeamLead(req.TeamID, payload.UserID); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	} else if !lead {
		response.Fail(c, response.ErrForbidden)
		return
	}

	role := model.TeamRoleMember
	if req.Lead {
		role = model.TeamRoleLead
	}
	result := database.DB.Model(&model.TeamMember{}).
		Where("team_id = ? AND user_id = ?", req.TeamID, req.UserID).
		Update("role", role)
	if result.Error != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound.WithTips("该用户不在团队中"))
		return
	}
	response.Success(c)
}

func parseTeamID(raw string) (uint, error) {
	if raw == "" {
		return 0, response.ErrInvalidRequest
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, response.ErrInvalidRequest
	}
	return uint(id), nil
}
