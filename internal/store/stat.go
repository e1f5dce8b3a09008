package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pankajredekar/pos/internal/model"
)

// Stat describes a table file on disk
type Stat struct {
	Path       string
	Exists     bool
	Bytes      int64
	Rows       int
	RecordSize int
	// Trailing is the number of bytes past the last whole row; non-zero
	// means the file is corrupt.
	Trailing int64
}

// Corrupt reports whether the file size is not a multiple of the record size
func (s Stat) Corrupt() bool {
	return s.Trailing != 0
}

// Stat inspects the table file without decoding it
func (t *Table[T]) Stat() (Stat, error) {
	st := Stat{Path: t.path, RecordSize: t.codec.Size()}
	info, err := os.Stat(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, nil
		}
		return st, fmt.Errorf("%w: failed to stat %s: %v", model.ErrIO, t.path, err)
	}
	size := int64(st.RecordSize)
	st.Exists = true
	st.Bytes = info.Size()
	st.Rows = int(info.Size() / size)
	st.Trailing = info.Size() % size
	return st, nil
}
