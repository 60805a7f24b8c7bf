// Package documents implements the JSON read-modify-write cycle over the
// blob store. Mutations are unsynchronized: two requests touching the
// same document race and the last write wins, matching the store's
// plain get/put contract. There is no conditional-write path.
package documents

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/frogstagram/frogstagram/internal/blobstore"
)

const jsonContentType = "application/json"

// load reads key into v. A missing object or a body that does not parse
// leaves v at the caller-provided default; only storage failures
// propagate. Every call site defines "not found" by what it passes in.
func load(ctx context.Context, store blobstore.Store, key string, v any) error {
	obj, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, blobstore.ErrObjectNotFound) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(obj.Data, v); err != nil {
		return nil
	}
	return nil
}

func save(ctx context.Context, store blobstore.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Put(ctx, key, data, jsonContentType)
}
