// Package authz 集中回答成员关系问题：是否团队成员、是否团队 lead。
// 回顾会引擎只消费这些判断，不修改成员数据。
package authz

import (
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/model"
)

func IsTeamMember(teamID, userID uint) (bool, error) {
	var exist bool
	err := database.DB.
		Raw("SELECT EXISTS(SELECT 1 FROM team_member WHERE team_id = ? AND user_id = ?)",
			teamID, userID).
		Scan(&exist).Error
	return exist, err
}

func IsTeamLead(teamID, userID uint) (bool, error) {
	var exist bool
	err := database.DB.
		Raw("SELECT EXISTS(SELECT 1 FROM team_member WHERE team_id = ? AND user_id = ? AND role = ?)",
			teamID, userID, model.TeamRoleLead).
		Scan(&exist).Error
	return exist, err
}

// CanControlRetro 创建者或团队 lead 可以推进阶段、导出结果
func CanControlRetro(retro *model.Retro, userID uint) (bool, error) {
	if retro.CreatorID == userID {
		return true, nil
	}
	return IsTeamLead(retro.TeamID, userID)
}
