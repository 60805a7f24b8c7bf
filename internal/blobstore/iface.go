package blobstore

import (
	"context"
	"time"
)

// Object is a stored payload together with the content type recorded
// at write time.
type Object struct {
	Data        []byte
	ContentType string
}

// Listing is one page of keys under a prefix. Truncated reports whether
// the underlying store had more keys past the page boundary.
type Listing struct {
	Keys      []string
	Truncated bool
}

// Store is a key-addressed blob store. Get returns ErrObjectNotFound for
// a missing key; all other failures are storage errors and are not
// retried here.
type Store interface {
	Get(ctx context.Context, key string) (*Object, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix, startAfter string, maxKeys int32) (*Listing, error)
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
}
