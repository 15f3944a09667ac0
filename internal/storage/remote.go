package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/neekunjchaturvedi/kisanfront/internal/api"
)

// Remote uploads through the Kisan Saathi API, which stores the file and
// returns its public URL. The URL doubles as the key; Delete is not part of
// the API surface.
type Remote struct {
	client *api.Client
}

func NewRemote(client *api.Client) *Remote {
	return &Remote{client: client}
}

func (r *Remote) Put(ctx context.Context, rd io.Reader, in PutInput) (PutResult, error) {
	url, err := r.client.UploadImage(ctx, in.Filename, in.ContentType, rd)
	if err != nil {
		return PutResult{}, err
	}
	return PutResult{Key: url, URL: url}, nil
}

func (r *Remote) Delete(ctx context.Context, key string) error {
	return fmt.Errorf("remote storage does not support delete")
}

func (r *Remote) String() string { return "remote(api)" }
