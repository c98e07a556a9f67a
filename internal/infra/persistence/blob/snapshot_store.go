// Package blob persists store snapshots in a blob bucket, one object per
// store namespace. Production config uses a fileblob directory; tests use
// memblob.
package blob

import (
	"context"

	"squareone/config"
	"squareone/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

type snapshotStore struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the snapshot store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the fileblob bucket configured under cache.path and closes it on
// shutdown.
func New(params Params) (repository.SnapshotStore, error) {
	bucket, err := fileblob.OpenBucket(params.Config.Cache.Path, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrap(err, "open snapshot bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewWithBucket(bucket), nil
}

// NewWithBucket wraps an already-open bucket. Callers keep ownership of the
// bucket's lifetime.
func NewWithBucket(bucket *blob.Bucket) repository.SnapshotStore {
	return &snapshotStore{bucket: bucket}
}

func (s *snapshotStore) Save(ctx context.Context, namespace string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, namespace+".json", data, nil); err != nil {
		return errors.Wrapf(err, "write snapshot %s", namespace)
	}

	return nil
}

func (s *snapshotStore) Load(ctx context.Context, namespace string) ([]byte, bool, error) {
	data, err := s.bucket.ReadAll(ctx, namespace+".json")
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "read snapshot %s", namespace)
	}

	return data, true, nil
}
