package main

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	themeCookie = "theme"
	themeLight  = "light"
	themeDark   = "dark"

	themeMaxAge = 365 * 24 * 60 * 60
)

// themeFrom reads the visitor's theme preference. Anything other than
// "dark" is light.
func themeFrom(c *gin.Context) string {
	if v, err := c.Cookie(themeCookie); err == nil && v == themeDark {
		return themeDark
	}
	return themeLight
}

// handleTheme stores the posted theme, or flips the current one when none
// is posted.
func (s *server) handleTheme(c *gin.Context) {
	next := c.PostForm("theme")
	if next != themeLight && next != themeDark {
		next = themeDark
		if themeFrom(c) == themeDark {
			next = themeLight
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookie, next, themeMaxAge, "/", "", false, false)

	if isHTMX(c) {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, backPath(c.Request.Referer()))
}

// backPath returns the local path of referer, or "/" for anything that
// would leave the site.
func backPath(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
