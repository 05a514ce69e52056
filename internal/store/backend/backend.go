// Package backend opens the storage adapter named by the configuration.
package backend

import (
	"context"
	"fmt"
	"io"

	"github.com/idilsaglam/notepad/internal/config"
	"github.com/idilsaglam/notepad/internal/store"
	"github.com/idilsaglam/notepad/internal/store/jsonstore"
	"github.com/idilsaglam/notepad/internal/store/memkv"
	"github.com/idilsaglam/notepad/internal/store/s3store"
	"github.com/idilsaglam/notepad/internal/store/sqlitestore"
)

// KV is a store that holds resources until closed.
type KV interface {
	store.KV
	io.Closer
}

// Open returns the adapter for cfg.Backend.
func Open(ctx context.Context, cfg config.Config) (KV, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return jsonstore.New(cfg.DataDir), nil
	case config.BackendSQLite:
		s, err := sqlitestore.Open(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	case config.BackendS3:
		s, err := s3store.New(ctx, s3store.Config{
			Endpoint:        cfg.S3.Endpoint,
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			Prefix:          cfg.S3.Prefix,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			UsePathStyle:    cfg.S3.UsePathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("open s3 store: %w", err)
		}
		return s, nil
	case config.BackendMemory:
		return memkv.New(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}
