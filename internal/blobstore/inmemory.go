package blobstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// InMemoryStore keeps objects in a map. It backs the tests and local
// development; listing is lexicographic over the sorted key set, with
// the same StartAfter/truncation semantics the S3 listing has.
type InMemoryStore struct {
	mu      sync.RWMutex
	objects map[string]Object
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{objects: make(map[string]Object)}
}

func (im *InMemoryStore) Get(_ context.Context, key string) (*Object, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	obj, ok := im.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	data := make([]byte, len(obj.Data))
	copy(data, obj.Data)
	return &Object{Data: data, ContentType: obj.ContentType}, nil
}

func (im *InMemoryStore) Put(_ context.Context, key string, data []byte, contentType string) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	im.objects[key] = Object{Data: stored, ContentType: contentType}
	return nil
}

func (im *InMemoryStore) Delete(_ context.Context, key string) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.objects, key)
	return nil
}

func (im *InMemoryStore) List(_ context.Context, prefix, startAfter string, maxKeys int32) (*Listing, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	keys := make([]string, 0, len(im.objects))
	for k := range im.objects {
		if strings.HasPrefix(k, prefix) && k > startAfter {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	listing := &Listing{}
	if int32(len(keys)) > maxKeys {
		listing.Truncated = true
		keys = keys[:maxKeys]
	}
	listing.Keys = keys
	return listing, nil
}

func (im *InMemoryStore) PresignPut(_ context.Context, key, contentType string, expires time.Duration) (string, error) {
	return "", fmt.Errorf("presign put for %v: %w", key, ErrPresignUnsupported)
}
