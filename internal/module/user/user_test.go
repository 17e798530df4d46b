package user

import (
	"team-retro-system/internal/global/jwt"
	"team-retro-system/internal/global/response"
	"team-retro-system/test"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	(&ModuleUser{}).Init()
	m.Run()
}

type authData struct {
	Token string `json:"token"`
	User  struct {
		ID       uint   `json:"id"`
		Email    string `json:"email"`
		NickName string `json:"nick_name"`
	} `json:"user"`
}

func TestRegisterAndLogin(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, Register, RegisterRequest{
		Email:    "Dev@Example.com",
		Password: "secret-pass",
		NickName: "dev",
	})
	test.NoError(t, resp)

	var data authData
	test.DecodeData(t, resp, &data)
	require.NotEmpty(t, data.Token)
	// 邮箱统一转小写
	require.Equal(t, "dev@example.com", data.User.Email)

	// 令牌要能被中间件解析回同一个用户
	claims, valid := jwt.ParseToken(data.Token)
	require.True(t, valid)
	require.Equal(t, data.User.ID, claims.UserID)

	resp = test.DoRequest(t, Login, LoginRequest{Email: "dev@example.com", Password: "secret-pass"})
	test.NoError(t, resp)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	test.SetupDB(t)

	req := RegisterRequest{Email: "dup@example.com", Password: "secret-pass", NickName: "a"}
	test.NoError(t, test.DoRequest(t, Register, req))

	resp := test.DoRequest(t, Register, req)
	test.ErrorEqual(t, response.ErrAlreadyExists, resp)
}

func TestRegisterShortPassword(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, Register, RegisterRequest{
		Email: "short@example.com", Password: "1234567", NickName: "a",
	})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestLoginFailures(t *testing.T) {
	test.SetupDB(t)
	test.NoError(t, test.DoRequest(t, Register, RegisterRequest{
		Email: "who@example.com", Password: "secret-pass", NickName: "who",
	}))

	resp := test.DoRequest(t, Login, LoginRequest{Email: "nobody@example.com", Password: "secret-pass"})
	test.ErrorEqual(t, response.ErrNotFound, resp)

	resp = test.DoRequest(t, Login, LoginRequest{Email: "who@example.com", Password: "wrong-pass"})
	test.ErrorEqual(t, response.ErrInvalidPassword, resp)
}

func TestMe(t *testing.T) {
	test.SetupDB(t)
	u := test.NewUser(t, "me")

	resp := test.Do(t, Me, test.Request{User: test.Claims(u)})
	test.NoError(t, resp)

	var data struct {
		ID uint `json:"id"`
	}
	test.DecodeData(t, resp, &data)
	require.Equal(t, u.ID, data.ID)
}
