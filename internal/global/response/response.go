package response

import (
	"fmt"
	"net/http"
	"team-retro-system/config"

	"github.com/gin-gonic/gin"
)

// ErrorContextKey 是用于在 gin.Context 中存储错误对象的键
const ErrorContextKey = "error"

var (
	ErrInvalidRequest = newError(40001, "请求参数错误")
	ErrTokenInvalid   = newError(40101, "令牌无效或已过期")
	ErrUnauthorized   = newError(40102, "未登录或登录状态失效")
	ErrForbidden      = newError(40301, "没有执行该操作的权限")
	ErrNotFound       = newError(40401, "资源不存在")
	ErrAlreadyExists  = newError(40901, "记录已存在")
	ErrInvalidPassword = newError(40002, "密码错误")

	// 回顾会领域错误
	ErrInvalidPhase      = newError(42201, "当前阶段不允许该操作")
	ErrInvalidTransition = newError(42202, "非法的阶段切换")
	ErrAlreadyVoted      = newError(42203, "已对该卡片投过票")
	ErrNotVoted          = newError(42204, "尚未对该卡片投票")
	ErrQuotaExceeded     = newError(42205, "投票额度已用完")

	ErrDatabase = newError(50001, "数据库操作失败")
	ErrInternal = newError(50000, "服务器内部错误")
)

// RequirePhase 生成带目标阶段提示的 ErrInvalidPhase
func RequirePhase(phase fmt.Stringer) *Error {
	return ErrInvalidPhase.WithTips("需要处于 " + phase.String() + " 阶段")
}

type ResponseBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

func Fail(c *gin.Context, err error) {
	e, ok := err.(*Error)
	if !ok {
		e = ErrInternal.WithOrigin(err)
	}
	c.Set(ErrorContextKey, e)

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	// origin 仅在 debug 模式下暴露给前端
	if config.Get().Mode == config.ModeDebug && e.Origin != "" {
		body.Data = gin.H{"origin": e.Origin}
	}
	c.JSON(http.StatusOK, body)
}

// Recovery 捕获 handler panic，返回统一的 500 响应
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		Fail(c, ErrInternal.WithOrigin(err))
		c.Abort()
	}
}
