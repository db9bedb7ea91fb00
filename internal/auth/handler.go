package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"zenith-planner/pkg/response"
)

const stateCookie = "zp_oauth_state"

// session lifetime in seconds
const sessionMaxAge = 30 * 24 * 3600

// Login godoc
// @Summary     Start Google login
// @Description Redirects the browser to Google's consent screen.
// @Tags        Auth
// @Success     307
// @Router      /api/v1/auth/google/login [GET]
func (h *handler) Login(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.google.AuthURL(state))
}

// Callback godoc
// @Summary     Google login callback
// @Description Exchanges the authorization code, provisions the user, and issues a session cookie.
// @Tags        Auth
// @Produce     json
// @Param       state query string true "OAuth state"
// @Param       code  query string true "Authorization code"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	wantState, err := c.Cookie(stateCookie)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		h.l.Warnf(ctx, "auth.Callback: state mismatch")
		response.Unauthorized(c)
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	token, err := h.google.Exchange(ctx, c.Query("code"))
	if err != nil {
		h.l.Errorf(ctx, "auth.Callback: exchange failed: %v", err)
		response.Unauthorized(c)
		return
	}

	info, err := h.google.Userinfo(ctx, token)
	if err != nil {
		h.l.Errorf(ctx, "auth.Callback: userinfo failed: %v", err)
		response.Unauthorized(c)
		return
	}

	user, err := h.users.GetOrCreateUser(ctx, info.Email, info.Name)
	if err != nil {
		h.l.Errorf(ctx, "auth.Callback: provisioning failed: %v", err)
		response.InternalError(c)
		return
	}

	c.SetCookie(SessionCookie, SignSession(h.secret, user.Email), sessionMaxAge, "/", "", false, true)
	h.l.Infof(ctx, "auth.Callback: user=%d logged in", user.ID)

	response.OK(c, loginResp{Email: user.Email, Name: user.Name})
}

// Logout godoc
// @Summary     Log out
// @Description Clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	response.OK(c, gin.H{})
}

type loginResp struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
