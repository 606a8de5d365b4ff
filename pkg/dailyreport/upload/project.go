package upload

import (
	"context"
	"net/http"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/session"
)

// ProjectInfo is the project bound to the logged-in user.
type ProjectInfo struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	TypeDisplayName     string   `json:"typeDisplayName"`
	StatusDisplayName   string   `json:"statusDisplayName"`
	Manager             string   `json:"manager"`
	CompletionProgress  *float64 `json:"completionProgress,omitempty"`
	EstimatedSaltAmount *float64 `json:"estimatedSaltAmount,omitempty"`
	ActualSaltAmount    *float64 `json:"actualSaltAmount,omitempty"`
}

// MyProject fetches the project of the session user.
func (c *Client) MyProject(ctx context.Context, sess *session.Session) (*ProjectInfo, error) {
	if !sess.Valid(c.now()) {
		return nil, ErrNotLoggedIn
	}

	var info ProjectInfo
	err := c.do(ctx, call{
		method:      http.MethodGet,
		baseURL:     sess.ServerURL,
		path:        myProjectPath,
		token:       sess.Token,
		failMessage: "failed to get project info",
	}, &info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
