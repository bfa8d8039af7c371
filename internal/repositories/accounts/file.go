package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/mykeychain/internal/common"
	"github.com/dmitrijs2005/mykeychain/internal/filex"
	"github.com/dmitrijs2005/mykeychain/internal/models"
)

// FileRepository keeps the store in one human-readable JSON document.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads the full store. An absent file is the documented empty case
// and yields an empty store; a file that exists but cannot be parsed
// surfaces common.ErrSerialization instead of being swallowed.
func (r *FileRepository) Load(ctx context.Context) (models.Store, error) {
	if !filex.Exists(r.path) {
		return models.Store{}, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	var store models.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse store %s: %v: %w", r.path, err, common.ErrSerialization)
	}
	if store == nil {
		store = models.Store{}
	}
	return store, nil
}

// Save replaces the persisted document with the given store. The document
// is indented UTF-8 JSON with HTML escaping off, so non-ASCII resource
// names and categories stay readable. The write is atomic.
func (r *FileRepository) Save(ctx context.Context, store models.Store) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(store); err != nil {
		return fmt.Errorf("failed to encode store: %v: %w", err, common.ErrSerialization)
	}

	if err := filex.WriteFileAtomic(r.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}
