package retro

import (
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"
	"team-retro-system/test"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateRetro(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")
	team := test.NewTeam(t, u)
	template := test.NewTemplate(t)

	resp := test.Do(t, CreateRetro, test.Request{
		Body: CreateRetroRequest{
			Name:            "Sprint 42",
			TeamID:          team.ID,
			TemplateID:      template.ID,
			VoteType:        model.VoteTypeMulti,
			MaxVotesPerUser: 5,
		},
		User: test.Claims(u),
	})
	test.NoError(t, resp)

	var created model.Retro
	test.DecodeData(t, resp, &created)
	require.NotZero(t, created.ID)
	require.Equal(t, 5, created.MaxVotesPerUser)

	// 创建者自动入会
	var count int64
	require.NoError(t, database.DB.Model(&model.Participant{}).
		Where("retro_id = ? AND user_id = ?", created.ID, u.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
	require.Equal(t, model.StatusDraft, reload(t, created.ID).Status)
}

func TestCreateRetroSingleForcesQuotaOne(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")
	team := test.NewTeam(t, u)
	template := test.NewTemplate(t)

	resp := test.Do(t, CreateRetro, test.Request{
		Body: CreateRetroRequest{
			Name:            "r",
			TeamID:          team.ID,
			TemplateID:      template.ID,
			VoteType:        model.VoteTypeSingle,
			MaxVotesPerUser: 9,
		},
		User: test.Claims(u),
	})
	test.NoError(t, resp)

	var created model.Retro
	test.DecodeData(t, resp, &created)
	require.Equal(t, 1, created.MaxVotesPerUser)
}

func TestCreateRetroValidation(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")
	team := test.NewTeam(t, u)
	template := test.NewTemplate(t)

	cases := []struct {
		name string
		req  CreateRetroRequest
		want *response.Error
	}{
		{"非法投票类型", CreateRetroRequest{Name: "r", TeamID: team.ID, TemplateID: template.ID, VoteType: "ranked"}, response.ErrInvalidRequest},
		{"multi 额度为 0", CreateRetroRequest{Name: "r", TeamID: team.ID, TemplateID: template.ID, VoteType: model.VoteTypeMulti}, response.ErrInvalidRequest},
		{"负计时", CreateRetroRequest{Name: "r", TeamID: team.ID, TemplateID: template.ID, VoteType: model.VoteTypeSingle, TimerDuration: -1}, response.ErrInvalidRequest},
		{"模板不存在", CreateRetroRequest{Name: "r", TeamID: team.ID, TemplateID: 99999, VoteType: model.VoteTypeSingle}, response.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := test.Do(t, CreateRetro, test.Request{Body: tc.req, User: test.Claims(u)})
			test.ErrorEqual(t, tc.want, resp)
		})
	}

	outsider := test.NewUser(t, "outsider")
	resp := test.Do(t, CreateRetro, test.Request{
		Body: CreateRetroRequest{Name: "r", TeamID: team.ID, TemplateID: template.ID, VoteType: model.VoteTypeSingle},
		User: test.Claims(outsider),
	})
	test.ErrorEqual(t, response.ErrForbidden, resp)
}

func TestJoinRetroIdempotent(t *testing.T) {
	test.SetupDB(t)
	owner := test.NewUser(t, "owner")
	member := test.NewUser(t, "member")
	team := test.NewTeam(t, owner, member)
	template := test.NewTemplate(t)
	retro := test.NewRetro(t, team, template, owner, test.RetroConfig{})

	test.NoError(t, test.Do(t, JoinRetro, retroReq(retro.ID, &member)))
	test.NoError(t, test.Do(t, JoinRetro, retroReq(retro.ID, &member)))

	var count int64
	require.NoError(t, database.DB.Model(&model.Participant{}).
		Where("retro_id = ? AND user_id = ?", retro.ID, member.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestJoinRetroOutsiderForbidden(t *testing.T) {
	test.SetupDB(t)
	owner := test.NewUser(t, "owner")
	team := test.NewTeam(t, owner)
	template := test.NewTemplate(t)
	retro := test.NewRetro(t, team, template, owner, test.RetroConfig{})

	outsider := test.NewUser(t, "outsider")
	resp := test.Do(t, JoinRetro, retroReq(retro.ID, &outsider))
	test.ErrorEqual(t, response.ErrForbidden, resp)
}

func TestLoadNotFound(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")

	resp := test.Do(t, JoinRetro, retroReq(99999, &u))
	test.ErrorEqual(t, response.ErrNotFound, resp)
}
