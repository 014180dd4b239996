package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Storer is the read side of an asset store.
type Storer[T ValidatingSpec] interface {
	Get(string) T
	GetAll() map[string]T
}

// FileStore loads every asset below a directory into memory. Assets may be
// written as JSON or YAML; both decode through the JSON field tags of T.
type FileStore[T ValidatingSpec] struct {
	path    string
	schema  *jsonschema.Schema
	records map[string]T

	mu sync.RWMutex
}

type FileStoreOpt[T ValidatingSpec] func(*FileStore[T])

// WithSchema validates the spec section of every asset against s before it
// is decoded.
func WithSchema[T ValidatingSpec](s *jsonschema.Schema) FileStoreOpt[T] {
	return func(fs *FileStore[T]) {
		fs.schema = s
	}
}

func NewFileStore[T ValidatingSpec](path string, opts ...FileStoreOpt[T]) (*FileStore[T], error) {
	s := &FileStore[T]{
		path:    path,
		records: map[string]T{},
	}

	for _, opt := range opts {
		opt(s)
	}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = map[string]T{}

	return filepath.Walk(s.path, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if info.IsDir() || !isAssetFile(path) {
			return nil
		}

		asset, err := s.loadAsset(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", filepath.Base(path), err)
		}

		err = asset.Validate()
		if err != nil {
			return fmt.Errorf("validating %s: %w", filepath.Base(path), err)
		}

		if _, ok := s.records[asset.Id().String()]; ok {
			return fmt.Errorf("duplicate key detected: %s", asset.Id())
		}

		s.records[asset.Id().String()] = asset.Spec
		return nil
	})
}

func isAssetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func (s *FileStore[T]) Get(id string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.records[id]
	if !ok {
		var nilVal T
		return nilVal
	}

	return val
}

func (s *FileStore[T]) GetAll() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := make(map[string]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}

	return vals
}

func (s *FileStore[T]) loadAsset(path string) (*Asset[T], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	jsonData, err := toJSON(path, raw)
	if err != nil {
		return nil, err
	}

	if s.schema != nil {
		var doc map[string]any
		if err := json.Unmarshal(jsonData, &doc); err != nil {
			return nil, fmt.Errorf("unmarshalling asset: %w", err)
		}
		if err := s.schema.Validate(doc["spec"]); err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
	}

	asset := &Asset[T]{}
	err = json.Unmarshal(jsonData, asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return asset, nil
}

// toJSON normalizes YAML documents into JSON so a single set of struct tags
// and a single schema dialect serve both formats.
func toJSON(path string, raw []byte) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return raw, nil
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting yaml: %w", err)
	}
	return out, nil
}
