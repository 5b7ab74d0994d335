package output

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"

	"data-exporter/core/storage"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// Sink stores exported documents.
type Sink interface {
	// WriteJSON encodes v as indented JSON and stores it under name.
	WriteJSON(ctx context.Context, name string, v any) error
	// WriteFile stores raw bytes under name.
	WriteFile(ctx context.Context, name string, data []byte) error
}

// Backends carries the clients the enabled targets write through.
type Backends struct {
	Fs      afero.Fs
	Storage storage.Client
	Bucket  string
	Region  string
	DB      *gorm.DB
}

// New builds the sink for the configured targets.
func New(ctx context.Context, cfg Config, backends Backends) (Sink, error) {
	if len(cfg.Targets) == 0 {
		return nil, errors.New("no output targets configured")
	}

	var sinks []Sink
	for _, target := range cfg.Targets {
		switch target {
		case TargetFile:
			fs := backends.Fs
			if fs == nil {
				fs = afero.NewOsFs()
			}
			sinks = append(sinks, NewFileSink(fs, cfg.Directory))
		case TargetBucket:
			if backends.Storage == nil {
				return nil, errors.New("bucket target requires a storage client")
			}
			if err := storage.EnsureBucket(ctx, backends.Storage, backends.Bucket, backends.Region); err != nil {
				return nil, err
			}
			sinks = append(sinks, NewBucketSink(backends.Storage, backends.Bucket, cfg.Prefix))
		case TargetDatabase:
			if backends.DB == nil {
				return nil, errors.New("database target requires a database connection")
			}
			sink, err := NewDatabaseSink(backends.DB)
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, sink)
		default:
			return nil, fmt.Errorf("unknown output target %q", target)
		}
	}

	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return Multi(sinks...), nil
}

// EncodeJSON encodes v the way every sink stores JSON documents.
func EncodeJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return data, nil
}

// ContentType guesses the media type of a document from its name.
func ContentType(name string) string {
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

type multiSink []Sink

// Multi writes every document to each sink in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) WriteJSON(ctx context.Context, name string, v any) error {
	data, err := EncodeJSON(v)
	if err != nil {
		return err
	}
	return m.WriteFile(ctx, name, data)
}

func (m multiSink) WriteFile(ctx context.Context, name string, data []byte) error {
	var errs []error
	for _, sink := range m {
		if err := sink.WriteFile(ctx, name, data); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
