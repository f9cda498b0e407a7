package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/ytget/project-manager/internal/model"
)

// Connection defaults
const (
	DefaultURL            = nats.DefaultURL
	DefaultBucket         = "projects"
	DefaultConnectTimeout = 5 * time.Second
	ClientName            = "project-manager"
	BucketDescription     = "Project records keyed by id"
)

var (
	ErrEmptyID     = errors.New("record id is empty")
	ErrEmptyBucket = errors.New("bucket name is empty")
)

// Options configures the connection to the table
type Options struct {
	URL            string
	Bucket         string
	ConnectTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.URL == "" {
		o.URL = DefaultURL
	}
	if o.Bucket == "" {
		o.Bucket = DefaultBucket
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = DefaultConnectTimeout
	}
	return o
}

// KV is a Store backed by a JetStream key-value bucket
type KV struct {
	nc     *nats.Conn
	kv     jetstream.KeyValue
	bucket string
	logger *zap.Logger
}

// Connect dials the NATS server and opens (creating if needed) the bucket
func Connect(ctx context.Context, opts Options, logger *zap.Logger) (*KV, error) {
	opts = opts.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	nc, err := nats.Connect(opts.URL,
		nats.Name(ClientName),
		nats.Timeout(opts.ConnectTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", opts.URL, err)
	}

	kv, err := Open(ctx, nc, opts.Bucket, logger)
	if err != nil {
		nc.Close()
		return nil, err
	}

	logger.Info("Connected to project table",
		zap.String("url", opts.URL),
		zap.String("bucket", opts.Bucket))
	return kv, nil
}

// Open binds to the bucket over an existing connection. The returned KV owns nc.
func Open(ctx context.Context, nc *nats.Conn, bucket string, logger *zap.Logger) (*KV, error) {
	if bucket == "" {
		return nil, ErrEmptyBucket
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: BucketDescription,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucket, err)
	}

	return &KV{
		nc:     nc,
		kv:     kv,
		bucket: bucket,
		logger: logger,
	}, nil
}

// ScanAll reads the current value of every key in the bucket
func (s *KV) ScanAll(ctx context.Context) ([]model.Project, error) {
	w, err := s.kv.WatchAll(ctx, jetstream.IgnoreDeletes())
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.bucket, err)
	}
	defer w.Stop()

	projects := make([]model.Project, 0)
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("scan %s: %w", s.bucket, ctx.Err())
		case entry, ok := <-w.Updates():
			if !ok {
				return nil, fmt.Errorf("scan %s: watcher closed", s.bucket)
			}
			// nil marks the end of the initial values
			if entry == nil {
				s.logger.Debug("Scanned project table",
					zap.String("bucket", s.bucket),
					zap.Int("count", len(projects)))
				return projects, nil
			}
			p, err := decode(entry.Key(), entry.Value())
			if err != nil {
				return nil, fmt.Errorf("scan %s: key %s: %w", s.bucket, entry.Key(), err)
			}
			projects = append(projects, p)
		}
	}
}

// Upsert writes all fields of p under p.ID
func (s *KV) Upsert(ctx context.Context, p model.Project) error {
	if p.ID == "" {
		return ErrEmptyID
	}
	data, err := encode(p)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", p.ID, err)
	}
	rev, err := s.kv.Put(ctx, p.ID, data)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", p.ID, err)
	}
	s.logger.Debug("Upserted project",
		zap.String("id", p.ID),
		zap.Uint64("revision", rev))
	return nil
}

// Delete removes the key. Deleting a missing key succeeds.
func (s *KV) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if err := s.kv.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	s.logger.Debug("Deleted project", zap.String("id", id))
	return nil
}

// Close drains and closes the underlying connection
func (s *KV) Close() error {
	if s.nc == nil {
		return nil
	}
	return s.nc.Drain()
}
