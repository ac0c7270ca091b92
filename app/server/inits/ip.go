package inits

import (
	"github.com/labstack/echo/v4"
	"net"
)

// IPExtractor 决定限流使用的客户端 IP
// 没有可信代理时只认连接对端，X-Forwarded-For 由客户端随意填写
func IPExtractor(trustedProxies []*net.IPNet) echo.IPExtractor {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect()
	}

	// 只信任显式配置的地址段，关掉 echo 默认信任的内网和回环
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, ipNet := range trustedProxies {
		opts = append(opts, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(opts...)
}
