package charset

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/mykeychain/internal/cipher"
	"github.com/dmitrijs2005/mykeychain/internal/filex"
)

// FileRepository stores the character set as a single text file.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load returns the persisted character set, trimmed of surrounding
// whitespace. If the file does not exist yet, the default charset is
// written first and then read back, so every later run sees the same
// alphabet this one used.
func (r *FileRepository) Load(ctx context.Context) (string, error) {
	if !filex.Exists(r.path) {
		if err := filex.WriteFileAtomic(r.path, []byte(cipher.DefaultCharset), 0o600); err != nil {
			return "", fmt.Errorf("failed to write default charset: %w", err)
		}
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("failed to read charset: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
