package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"team-retro-system/internal/global/jwt"
	"team-retro-system/internal/global/response"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Request 组装一次 handler 调用需要的全部输入
type Request struct {
	Body   any
	Query  url.Values
	Params gin.Params
	User   *jwt.Claims // 非空时模拟已通过 Auth 中间件
}

func Do(t *testing.T, handlerFunc gin.HandlerFunc, req Request) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var body *bytes.Reader
	if req.Body != nil {
		requestBytes, err := json.Marshal(req.Body)
		require.NoError(t, err)
		body = bytes.NewReader(requestBytes)
	} else {
		body = bytes.NewReader(nil)
	}

	target := "/test"
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}
	c.Request = httptest.NewRequest(http.MethodPost, target, body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = req.Params
	if req.User != nil {
		c.Set("payload", req.User)
	}

	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DoRequest 兼容旧用法：带 body 直接调 handler
func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any) response.ResponseBody {
	return Do(t, handlerFunc, Request{Body: request})
}
