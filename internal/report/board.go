package report

import (
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/testboard/webapi-backend/config"
)

// Hosting pattern: webapi{boardId}.up.railway.app (no hyphen).
var boardIDPattern = regexp.MustCompile(`(?i)webapi([a-f0-9]{24})`)

// ResolveBoardID locates the board id for an in-flight request.
// Ordered fallback, first non-empty match wins: route param, query param,
// X-Board-Id header, BOARD_ID env (trimmed at config load), 24-hex pattern in
// the Host header, same pattern in the error endpoint URL. Empty string when
// nothing matches.
func ResolveBoardID(c *gin.Context, cfg config.ReportingConfig) string {
	if v := c.Param("boardId"); v != "" {
		return v
	}
	if v := c.Query("boardId"); v != "" {
		return v
	}
	if v := c.GetHeader("X-Board-Id"); v != "" {
		return v
	}
	if cfg.BoardID != "" {
		return cfg.BoardID
	}
	if m := boardIDPattern.FindStringSubmatch(c.Request.Host); m != nil {
		return m[1]
	}
	if m := boardIDPattern.FindStringSubmatch(cfg.EndpointURL); m != nil {
		return m[1]
	}
	return ""
}
