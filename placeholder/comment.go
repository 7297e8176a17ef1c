package placeholder

import (
	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/rest"
)

const (
	commentsPath    = rest.Template("/comments")
	commentItemPath = rest.Template("/comments/{commentID}")
)

// Comment mirrors the comment resource wire representation.
type Comment struct {
	PostID int    `json:"postId,omitempty"`
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Body   string `json:"body" validate:"required"`
}

// NewCommentEndpoint binds the comment resource to the given client.
func NewCommentEndpoint(client *httpclient.Client) *rest.Endpoint[Comment] {
	return rest.NewEndpoint[Comment](client, commentsPath, commentItemPath)
}
