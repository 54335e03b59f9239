// Package web holds the small view helpers shared by the handler
// packages: the flash-notice round-trip and the display clock format.
package web

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

const flashParam = "flash"

// DisplayTime is the format show start times are rendered with.
const DisplayTime = "Mon Jan 2, 2006 3:04PM"

// Flash returns the notice carried over from the previous redirect, if any.
func Flash(c *gin.Context) string {
	return c.Query(flashParam)
}

// RedirectWithFlash sends the browser to path with a one-shot notice.
func RedirectWithFlash(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusSeeOther, path+"?"+flashParam+"="+url.QueryEscape(msg))
}

// FormatTime renders a start time for display.
func FormatTime(t time.Time) string {
	return t.Format(DisplayTime)
}
