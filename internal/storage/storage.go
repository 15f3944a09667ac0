// Package storage stores product images. The default driver proxies the
// remote API's upload endpoint (the dashboard's original behavior); local
// disk and S3 drivers exist for deployments that keep images out of the
// API's hands.
package storage

import (
	"context"
	"io"
)

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
