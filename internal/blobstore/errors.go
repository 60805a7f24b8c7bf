package blobstore

import "errors"

var ErrObjectNotFound = errors.New("object not found")
var ErrPresignUnsupported = errors.New("presigning not supported by this store")
