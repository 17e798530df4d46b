package avatar

import (
	"fmt"
	"net/url"
	"team-retro-system/config"
	"team-retro-system/internal/global/httpclient"
)

// URLFor 根据昵称拼接外部头像服务的地址，未配置服务时返回空串
func URLFor(nickName string) string {
	base := config.Get().Avatar.BaseURL
	if base == "" {
		return ""
	}
	return fmt.Sprintf("%s?seed=%s", base, url.QueryEscape(nickName))
}

// Probe 探测头像地址是否可达，失败不阻塞注册流程，由调用方决定是否降级
func Probe(avatarURL string) bool {
	if avatarURL == "" || httpclient.Client == nil {
		return false
	}
	resp, err := httpclient.Client.R().Head(avatarURL)
	if err != nil {
		return false
	}
	return resp.IsSuccess()
}
