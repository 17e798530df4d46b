package retro

import (
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"
	"team-retro-system/test"
	"testing"
)

func TestExportRequiresCompleted(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")
	team := test.NewTeam(t, u)
	template := test.NewTemplate(t)
	retro := test.NewRetro(t, team, template, u, test.RetroConfig{})
	test.SetStatus(t, &retro, model.StatusDiscussing)

	resp := test.Do(t, ExportRetro, retroReq(retro.ID, &u))
	test.ErrorEqual(t, response.ErrInvalidPhase, resp)
}

func TestExportRequiresControl(t *testing.T) {
	test.SetupDB(t)
	owner := test.NewUser(t, "owner")
	member := test.NewUser(t, "member")
	team := test.NewTeam(t, owner, member)
	template := test.NewTemplate(t)
	retro := test.NewRetro(t, team, template, owner, test.RetroConfig{})
	test.SetStatus(t, &retro, model.StatusCompleted)

	resp := test.Do(t, ExportRetro, retroReq(retro.ID, &member))
	test.ErrorEqual(t, response.ErrForbidden, resp)
}
