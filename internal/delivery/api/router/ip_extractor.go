package router

import (
	"net"
	"strings"

	"virtualcheck/config"
	"virtualcheck/internal/errors"

	"github.com/labstack/echo/v4"
)

// NewIPExtractor returns the client address resolver used by echo's RealIP.
// Without trusted proxies the peer address is used and X-Forwarded-For is ignored.
func NewIPExtractor(cfg *config.Config) (echo.IPExtractor, error) {
	if cfg == nil || len(cfg.HTTP.TrustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range cfg.HTTP.TrustedProxies {
		_, ipNet, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid trusted proxy %q", cidr)
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(options...), nil
}
