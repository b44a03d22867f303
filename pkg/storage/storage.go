package storage

import (
	"context"
	"io"
)

// Store persists an uploaded blob and returns a URL reference. The domain
// only stores and serves the reference; content is opaque.
type Store interface {
	Save(ctx context.Context, folder, filename string, r io.Reader) (url string, err error)
}
