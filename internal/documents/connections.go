// SPDX-License-Identifier: AGPL-3.0-only
package documents

import (
	"context"

	"github.com/frogstagram/frogstagram/internal/blobstore"
)

// Connections is one user's side of the follow graph. Follow and
// unfollow touch the two users' documents independently; a failure
// between the writes leaves the graph asymmetric.
type Connections struct {
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}

func ConnectionsKey(username string) string {
	return "connections/" + username + "/data.json"
}

// LoadConnections returns the stored connection data, or empty lists
// when the document is absent.
func LoadConnections(ctx context.Context, store blobstore.Store, username string) (*Connections, error) {
	conns := &Connections{Followers: []string{}, Following: []string{}}
	if err := load(ctx, store, ConnectionsKey(username), conns); err != nil {
		return nil, err
	}
	return conns, nil
}

func SaveConnections(ctx context.Context, store blobstore.Store, username string, conns *Connections) error {
	return save(ctx, store, ConnectionsKey(username), conns)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func remove(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

// AddFollowing records that this user follows target. Returns false
// when already present.
func (c *Connections) AddFollowing(target string) bool {
	if contains(c.Following, target) {
		return false
	}
	c.Following = append(c.Following, target)
	return true
}

// AddFollower records that target follows this user. Returns false
// when already present.
func (c *Connections) AddFollower(target string) bool {
	if contains(c.Followers, target) {
		return false
	}
	c.Followers = append(c.Followers, target)
	return true
}

func (c *Connections) RemoveFollowing(target string) {
	c.Following = remove(c.Following, target)
}

func (c *Connections) RemoveFollower(target string) {
	c.Followers = remove(c.Followers, target)
}
