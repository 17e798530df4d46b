package vote

import (
	"net/url"
	"strconv"
	"sync"
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
	(&ModuleVote{}).Init()
	m.Run()
}

func voteReq(cardID uint, user *model.User) test.Request {
	return test.Request{
		Query: url.Values{"card_id": {strconv.FormatUint(uint64(cardID), 10)}},
		User:  test.Claims(*user),
	}
}

func TestVoteQuotaScenario(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")
	v := test.NewUser(t, "v")
	team := test.NewTeam(t, u, v)
	template := test.NewTemplate(t)
	retro := test.NewRetro(t, team, template, u, test.RetroConfig{
		VoteType: model.VoteTypeMulti, MaxVotesPerUser: 2,
	})
	col := template.Columns[0].ID
	c1 := test.NewCard(t, retro, col, u, "c1")
	c2 := test.NewCard(t, retro, col, u, "c2")
	c3 := test.NewCard(t, retro, col, u, "c3")
	test.SetStatus(t, &retro, model.StatusVoting)

	resp := test.Do(t, AddVote, voteReq(c1.ID, &u))
	test.NoError(t, resp)
	resp = test.Do(t, AddVote, voteReq(c2.ID, &u))
	test.NoError(t, resp)

	// 重复投同一张卡
	resp = test.Do(t, AddVote, voteReq(c1.ID, &u))
	test.ErrorEqual(t, response.ErrAlreadyVoted, resp)

	// 额度用完
	resp = test.Do(t, AddVote, voteReq(c3.ID, &u))
	test.ErrorEqual(t, response.ErrQuotaExceeded, resp)

	// 其他用户的额度独立
	resp = test.Do(t, AddVote, voteReq(c1.ID, &v))
	test.NoError(t, resp)

	var c1Count int64
	require.NoError(t, database.DB.Model(&model.Vote{}).Where("card_id = ?", c1.ID).Count(&c1Count).Error)
	require.EqualValues(t, 2, c1Count)
}

func TestSingleVoteExclusivity(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")
	team := test.NewTeam(t, u)
	template := test.NewTemplate(t)
	retro := test.NewRetro(t, team, template, u, test.RetroConfig{
		VoteType: model.VoteTypeSingle, MaxVotesPerUser: 1,
	})
	col := template.Columns[0].ID
	c1 := test.NewCard(t, retro, col, u, "c1")
	c2 := test.NewCard(t, retro, col, u, "c2")
	test.SetStatus(t, &retro, model.StatusVoting)

	test.NoError(t, test.Do(t, AddVote, voteReq(c1.ID, &u)))

	// single 模式下整场只有一票，投别的卡也不行
	resp := test.Do(t, AddVote, voteReq(c2.ID, &u))
	test.ErrorEqual(t, response.ErrQuotaExceeded, resp)

	// 撤回后可以改投
	test.NoError(t, test.Do(t, RemoveVote, voteReq(c1.ID, &u)))
	test.NoError(t, test.Do(t, AddVote, voteReq(c2.ID, &u)))
}

func TestRemoveVoteNotVoted(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")
	team := test.NewTeam(t, u)
	template := test.NewTemplate(t)
	retro := test.NewRetro(t, team, template, u, test.RetroConfig{})
	c1 := test.NewCard(t, retro, template.Columns[0].ID, u, "c1")
	test.SetStatus(t, &retro, model.StatusVoting)

	resp := test.Do(t, RemoveVote, voteReq(c1.ID, &u))
	test.ErrorEqual(t, response.ErrNotVoted, resp)
}

func TestVotePhaseGate(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")
	team := test.NewTeam(t, u)
	template := test.NewTemplate(t)
	retro := test.NewRetro(t, team, template, u, test.RetroConfig{})
	c1 := test.NewCard(t, retro, template.Columns[0].ID, u, "c1")

	for _, status := range []model.RetroStatus{
		model.StatusDraft, model.StatusActive, model.StatusDiscussing, model.StatusCompleted,
	} {
		test.SetStatus(t, &retro, status)
		resp := test.Do(t, AddVote, voteReq(c1.ID, &u))
		test.ErrorEqual(t, response.ErrInvalidPhase, resp)
	}
}

// 额度只剩最后一格时，两个并发请求只能成功一个
func TestConcurrentQuotaBoundary(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")
	team := test.NewTeam(t, u)
	template := test.NewTemplate(t)
	retro := test.NewRetro(t, team, template, u, test.RetroConfig{
		VoteType: model.VoteTypeMulti, MaxVotesPerUser: 2,
	})
	col := template.Columns[0].ID
	c1 := test.NewCard(t, retro, col, u, "c1")
	c2 := test.NewCard(t, retro, col, u, "c2")
	c3 := test.NewCard(t, retro, col, u, "c3")
	test.SetStatus(t, &retro, model.StatusVoting)

	test.NoError(t, test.Do(t, AddVote, voteReq(c1.ID, &u)))

	codes := make(chan int32, 2)
	var wg sync.WaitGroup
	for _, cardID := range []uint{c2.ID, c3.ID} {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			resp := test.Do(t, AddVote, voteReq(id, &u))
			codes <- resp.Code
		}(cardID)
	}
	wg.Wait()
	close(codes)

	success := 0
	for code := range codes {
		if code == 200 {
			success++
		} else {
			require.Equal(t, response.ErrQuotaExceeded.Code, code)
		}
	}
	require.Equal(t, 1, success)

	var total int64
	require.NoError(t, database.DB.Model(&model.Vote{}).
		Where("retro_id = ? AND user_id = ?", retro.ID, u.ID).Count(&total).Error)
	require.EqualValues(t, 2, total)
}

func TestVoteCountIsLiveAggregate(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "u")
	v := test.NewUser(t, "v")
	team := test.NewTeam(t, u, v)
	template := test.NewTemplate(t)
	retro := test.NewRetro(t, team, template, u, test.RetroConfig{})
	c1 := test.NewCard(t, retro, template.Columns[0].ID, u, "c1")
	test.SetStatus(t, &retro, model.StatusVoting)

	test.NoError(t, test.Do(t, AddVote, voteReq(c1.ID, &u)))
	resp := test.Do(t, AddVote, voteReq(c1.ID, &v))
	test.NoError(t, resp)

	var data struct {
		VoteCount      int64 `json:"vote_count"`
		VotesRemaining int64 `json:"votes_remaining"`
	}
	test.DecodeData(t, resp, &data)
	require.EqualValues(t, 2, data.VoteCount)
	require.EqualValues(t, 2, data.VotesRemaining)

	resp = test.Do(t, RemoveVote, voteReq(c1.ID, &v))
	test.NoError(t, resp)
	test.DecodeData(t, resp, &data)
	require.EqualValues(t, 1, data.VoteCount)
	require.EqualValues(t, 3, data.VotesRemaining)
}
