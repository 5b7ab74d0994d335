package unreal

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sync/atomic"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultExtension is the extension of extracted object files.
const DefaultExtension = "json"

var objectPathPattern = regexp.MustCompile(`/Game/([^.]*)\.([\w_]+)`)

// ObjectGetter loads objects by identifier.
type ObjectGetter interface {
	Get(ctx context.Context, identifier ObjectIdentifier) (*Object, error)
}

// Stats reports cache activity of an ObjectStore.
type Stats struct {
	// FilesRead is the number of files read from disk.
	FilesRead int64
	// CacheHits is the number of lookups served from the cache.
	CacheHits int64
}

// ObjectStore loads extracted JSON files and caches their parsed contents.
// Files are treated as immutable for the lifetime of the store, so entries are never evicted.
type ObjectStore struct {
	fs       afero.Fs
	basePath string
	logger   *zap.Logger

	files *cache.Cache
	sf    singleflight.Group

	filesRead atomic.Int64
	cacheHits atomic.Int64
}

// NewObjectStore creates a store reading files below basePath.
func NewObjectStore(fs afero.Fs, basePath string, logger *zap.Logger) *ObjectStore {
	return &ObjectStore{
		fs:       fs,
		basePath: basePath,
		logger:   logger,
		// No expiration and no janitor: the cache lives exactly as long as the store.
		files: cache.New(cache.NoExpiration, 0),
	}
}

// ParseObjectPath maps an object path of the form "/Game/<relative>.<key>" to the file
// holding it and the key of the entry inside that file.
func (s *ObjectStore) ParseObjectPath(objectPath, extension string) (filename, key string, err error) {
	match := objectPathPattern.FindStringSubmatch(objectPath)
	if match == nil {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedPath, objectPath)
	}
	if extension == "" {
		extension = DefaultExtension
	}

	filename = filepath.Join(s.basePath, match[1]+"."+extension)
	return filename, match[2], nil
}

// Get returns the entry addressed by the identifier's object path.
func (s *ObjectStore) Get(ctx context.Context, identifier ObjectIdentifier) (*Object, error) {
	filename, key, err := s.ParseObjectPath(identifier.ObjectPath, DefaultExtension)
	if err != nil {
		return nil, err
	}

	file, err := s.loadFile(ctx, filename)
	if err != nil {
		return nil, err
	}

	object, ok := file.Child(key)
	if !ok || object.IsNull() {
		return nil, fmt.Errorf("%w: %q in %s", ErrObjectNotFound, key, filename)
	}
	return object, nil
}

// GetBinary reads the raw bytes of the asset addressed by objectPath, using extension in
// place of the JSON extension. Binary assets are not cached.
func (s *ObjectStore) GetBinary(ctx context.Context, objectPath, extension string) ([]byte, error) {
	filename, _, err := s.ParseObjectPath(objectPath, extension)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return data, nil
}

// Stats returns the current cache counters.
func (s *ObjectStore) Stats() Stats {
	return Stats{
		FilesRead: s.filesRead.Load(),
		CacheHits: s.cacheHits.Load(),
	}
}

// loadFile returns the parsed file, reading it at most once even under concurrent access.
func (s *ObjectStore) loadFile(ctx context.Context, filename string) (*Object, error) {
	// Fast path
	if cached, ok := s.files.Get(filename); ok {
		s.cacheHits.Add(1)
		return cached.(*Object), nil
	}

	result, err, _ := s.sf.Do(filename, func() (interface{}, error) {
		// Double-check after joining the flight
		if cached, ok := s.files.Get(filename); ok {
			return cached, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := afero.ReadFile(s.fs, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filename, err)
		}
		s.filesRead.Add(1)

		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("failed to parse %s: invalid JSON", filename)
		}

		file := NewObject(gjson.ParseBytes(data))
		s.files.Set(filename, file, cache.NoExpiration)

		s.logger.Debug("Loaded object file",
			zap.String("file", filename),
			zap.Int("bytes", len(data)),
		)
		return file, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Object), nil
}
