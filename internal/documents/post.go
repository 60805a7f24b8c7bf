// SPDX-License-Identifier: AGPL-3.0-only
package documents

import (
	"context"
	"time"

	"github.com/frogstagram/frogstagram/internal/blobstore"
	"github.com/google/uuid"
)

// Likes pairs the counter with the set of users behind it. Mutations go
// through Post/Comment methods so the two stay in sync.
type Likes struct {
	Count int      `json:"count"`
	Users []string `json:"users"`
}

func (l *Likes) has(username string) bool {
	for _, u := range l.Users {
		if u == username {
			return true
		}
	}
	return false
}

type Comment struct {
	ID        string `json:"id"`
	Owner     string `json:"owner"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	Likes     Likes  `json:"likes"`
}

type Post struct {
	PostID    string    `json:"postId,omitempty"`
	Owner     string    `json:"owner"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Timestamp string    `json:"timestamp"`
	Comments  []Comment `json:"comments"`
	Likes     Likes     `json:"likes"`
}

func PostKey(postID string) string {
	return "metadata/" + postID + "/post.json"
}

// LoadPost returns the stored post, or an empty post when the document
// is absent.
func LoadPost(ctx context.Context, store blobstore.Store, postID string) (*Post, error) {
	post := &Post{}
	if err := load(ctx, store, PostKey(postID), post); err != nil {
		return nil, err
	}
	return post, nil
}

func SavePost(ctx context.Context, store blobstore.Store, postID string, post *Post) error {
	return save(ctx, store, PostKey(postID), post)
}

// Like records username's like. Returns false when the user already
// liked the post, in which case nothing changed and no write is needed.
func (p *Post) Like(username string) bool {
	if p.Likes.has(username) {
		return false
	}
	p.Likes.Users = append(p.Likes.Users, username)
	p.Likes.Count++
	return true
}

// Unlike removes username's like. Returns false when there was none.
func (p *Post) Unlike(username string) bool {
	for i, u := range p.Likes.Users {
		if u == username {
			p.Likes.Users = append(p.Likes.Users[:i], p.Likes.Users[i+1:]...)
			p.Likes.Count--
			return true
		}
	}
	return false
}

// AddComment appends a freshly minted comment with a server-assigned
// timestamp and a zeroed likes aggregate, and returns it.
func (p *Post) AddComment(owner, text string) Comment {
	comment := Comment{
		ID:        uuid.NewString(),
		Owner:     owner,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Likes:     Likes{Count: 0, Users: []string{}},
	}
	p.Comments = append(p.Comments, comment)
	return comment
}
