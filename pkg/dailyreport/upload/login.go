package upload

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/session"
)

var (
	mobilePattern = regexp.MustCompile(`^1\d{10}$`)
	phonePattern  = regexp.MustCompile(`^\+?\d{10,15}$`)
	phoneNoise    = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// IsPhoneNumber reports whether a login name should be sent as a phone
// number rather than a username.
func IsPhoneNumber(s string) bool {
	cleaned := phoneNoise.Replace(strings.TrimSpace(s))
	return mobilePattern.MatchString(cleaned) || phonePattern.MatchString(cleaned)
}

// loginBody builds the login request, keyed by phone or username.
func loginBody(username, password string) map[string]string {
	key := "username"
	if IsPhoneNumber(username) {
		key = "phone"
	}
	return map[string]string{key: username, "password": password}
}

type loginUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type loginData struct {
	Token        string     `json:"token"`
	RefreshToken string     `json:"refresh_token"`
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	User         *loginUser `json:"user"`
}

// Login authenticates against server and returns a new session.
func (c *Client) Login(ctx context.Context, server, username, password string) (*session.Session, error) {
	logger := zerolog.Ctx(ctx)

	var data loginData
	err := c.do(ctx, call{
		method:      http.MethodPost,
		baseURL:     server,
		path:        loginPath,
		body:        loginBody(username, password),
		okCodes:     []int{codeOK, http.StatusOK},
		failMessage: "login failed",
	}, &data)
	if err != nil {
		return nil, err
	}
	if data.Token == "" {
		return nil, ErrNoToken
	}

	sess := &session.Session{
		ServerURL:    strings.TrimRight(server, "/"),
		Token:        data.Token,
		RefreshToken: data.RefreshToken,
		Username:     username,
		UserID:       data.ID,
	}
	if data.User != nil {
		sess.UserID = data.User.ID
		if data.User.Username != "" {
			sess.Username = data.User.Username
		}
	} else if data.Username != "" {
		sess.Username = data.Username
	}

	logger.Info().
		Str("server", sess.ServerURL).
		Str("username", sess.Username).
		Int("user_id", sess.UserID).
		Str("token", sess.MaskedToken()).
		Msg("logged in")
	return sess, nil
}
