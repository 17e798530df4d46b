package team

import (
	"strconv"
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"
	"team-retro-system/test"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	(&ModuleTeam{}).Init()
	m.Run()
}

func TestCreateTeamOwnerBecomesLead(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")

	resp := test.Do(t, CreateTeam, test.Request{
		Body: CreateTeamRequest{Name: "平台组"},
		User: test.Claims(u),
	})
	test.NoError(t, resp)

	var created model.Team
	test.DecodeData(t, resp, &created)
	require.Equal(t, u.ID, created.OwnerID)

	var member model.TeamMember
	require.NoError(t, database.DB.
		Where("team_id = ? AND user_id = ?", created.ID, u.ID).
		First(&member).Error)
	require.Equal(t, model.TeamRoleLead, member.Role)
}

func TestMyTeams(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")
	v := test.NewUser(t, "v")
	test.NewTeam(t, u)
	test.NewTeam(t, v, u)
	test.NewTeam(t, v)

	resp := test.Do(t, MyTeams, test.Request{User: test.Claims(u)})
	test.NoError(t, resp)

	var teams []model.Team
	test.DecodeData(t, resp, &teams)
	require.Len(t, teams, 2)
}

func TestMemberManagement(t *testing.T) {
	test.SetupDB(t)
	owner := test.NewUser(t, "owner")
	member := test.NewUser(t, "member")
	team := test.NewTeam(t, owner)

	// 普通成员不能拉人
	resp := test.Do(t, AddMember, test.Request{
		Body: MemberRequest{TeamID: team.ID, UserID: member.ID},
		User: test.Claims(member),
	})
	test.ErrorEqual(t, response.ErrForbidden, resp)

	test.NoError(t, test.Do(t, AddMember, test.Request{
		Body: MemberRequest{TeamID: team.ID, UserID: member.ID},
		User: test.Claims(owner),
	}))

	// 重复添加
	resp = test.Do(t, AddMember, test.Request{
		Body: MemberRequest{TeamID: team.ID, UserID: member.ID},
		User: test.Claims(owner),
	})
	test.ErrorEqual(t, response.ErrAlreadyExists, resp)

	// 创建者不可被移除
	resp = test.Do(t, RemoveMember, test.Request{
		Body: MemberRequest{TeamID: team.ID, UserID: owner.ID},
		User: test.Claims(owner),
	})
	test.ErrorEqual(t, response.ErrForbidden, resp)

	test.NoError(t, test.Do(t, RemoveMember, test.Request{
		Body: MemberRequest{TeamID: team.ID, UserID: member.ID},
		User: test.Claims(owner),
	}))
	var count int64
	require.NoError(t, database.DB.Model(&model.TeamMember{}).
		Where("team_id = ? AND user_id = ?", team.ID, member.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestSetLead(t *testing.T) {
	test.SetupDB(t)
	owner := test.NewUser(t, "owner")
	member := test.NewUser(t, "member")
	team := test.NewTeam(t, owner, member)

	test.NoError(t, test.Do(t, SetLead, test.Request{
		Body: SetLeadRequest{TeamID: team.ID, UserID: member.ID, Lead: true},
		User: test.Claims(owner),
	}))

	var m model.TeamMember
	require.NoError(t, database.DB.
		Where("team_id = ? AND user_id = ?", team.ID, member.ID).
		First(&m).Error)
	require.Equal(t, model.TeamRoleLead, m.Role)

	// 不在团队里的用户
	outsider := test.NewUser(t, "outsider")
	resp := test.Do(t, SetLead, test.Request{
		Body: SetLeadRequest{TeamID: team.ID, UserID: outsider.ID, Lead: true},
		User: test.Claims(owner),
	})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestListMembersGate(t *testing.T) {
	test.SetupDB(t)
	owner := test.NewUser(t, "owner")
	member := test.NewUser(t, "member")
	team := test.NewTeam(t, owner, member)

	resp := test.Do(t, ListMembers, test.Request{
		Params: gin.Params{{Key: "team_id", Value: strconv.FormatUint(uint64(team.ID), 10)}},
		User:   test.Claims(member),
	})
	test.NoError(t, resp)
	var members []model.TeamMember
	test.DecodeData(t, resp, &members)
	require.Len(t, members, 2)

	outsider := test.NewUser(t, "outsider")
	resp = test.Do(t, ListMembers, test.Request{
		Params: gin.Params{{Key: "team_id", Value: strconv.FormatUint(uint64(team.ID), 10)}},
		User:   test.Claims(outsider),
	})
	test.ErrorEqual(t, response.ErrForbidden, resp)
}
