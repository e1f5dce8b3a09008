// Package store keeps one table of fixed-size records per file.
//
// A table file is a back-to-back sequence of codec blocks with no header.
// The row count is the file size divided by the record size. The only
// mutation primitive is a full rewrite: the new row set is encoded in memory,
// written to a temporary file next to the table and renamed over it.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"
	"github.com/pankajredekar/pos/internal/codec"
	"github.com/pankajredekar/pos/internal/model"
	"github.com/pankajredekar/pos/internal/utils"
)

// Table is a flat file of T records
type Table[T any] struct {
	path  string
	codec codec.Codec[T]
	opts  options
}

type options struct {
	lock  bool
	warnf func(msg string, args ...interface{})
}

// Option configures a Table
type Option func(*options)

// WithLocking toggles the advisory lock taken around each rewrite
func WithLocking(enabled bool) Option {
	return func(o *options) { o.lock = enabled }
}

// WithWarnf sets the sink for non-fatal table warnings
func WithWarnf(fn func(msg string, args ...interface{})) Option {
	return func(o *options) { o.warnf = fn }
}

// NewTable creates a table backed by path
func NewTable[T any](path string, c codec.Codec[T], opts ...Option) *Table[T] {
	o := options{lock: true, warnf: utils.PrintWarning}
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[T]{path: path, codec: c, opts: o}
}

// Path returns the table file path
func (t *Table[T]) Path() string {
	return t.path
}

// RecordSize returns the size in bytes of one row
func (t *Table[T]) RecordSize() int {
	return t.codec.Size()
}

// Ensure creates the table's directory and an empty table file if absent
func (t *Table[T]) Ensure() error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create data directory: %v", model.ErrIO, err)
	}
	f, err := os.OpenFile(t.path, os.O_CREATE|os.O_RDONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", model.ErrIO, t.path, err)
	}
	return f.Close()
}

// Count returns the number of rows. A missing or unreadable file counts as
// zero rows. A size that is not a multiple of the record size is reported
// and the trailing partial row is ignored.
func (t *Table[T]) Count() int {
	info, err := os.Stat(t.path)
	if err != nil {
		return 0
	}
	size := int64(t.codec.Size())
	if rem := info.Size() % size; rem != 0 {
		t.opts.warnf("%s is %d bytes, not a multiple of %d (%d trailing bytes)", t.path, info.Size(), size, rem)
	}
	return int(info.Size() / size)
}

// ReadAll decodes every row in file order. A missing file yields no rows.
// A file whose size is not a multiple of the record size is corrupt and
// yields an ErrIO error so that no rewrite can silently drop its tail.
func (t *Table[T]) ReadAll() ([]T, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to read %s: %v", model.ErrIO, t.path, err)
	}

	size := t.codec.Size()
	if len(data)%size != 0 {
		t.opts.warnf("%s is %d bytes, not a multiple of %d", t.path, len(data), size)
		return nil, fmt.Errorf("%w: %s is corrupt (%d bytes, record size %d)", model.ErrIO, t.path, len(data), size)
	}

	records := make([]T, 0, len(data)/size)
	for off := 0; off < len(data); off += size {
		r, err := t.codec.Decode(data[off : off+size])
		if err != nil {
			return nil, fmt.Errorf("failed to decode row %d of %s: %w", off/size, t.path, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// ReplaceAll rewrites the whole table with records, in the given order
func (t *Table[T]) ReplaceAll(records []T) error {
	unlock, err := t.acquire()
	if err != nil {
		return err
	}
	defer unlock()
	return t.replaceAll(records)
}

// Append adds records after the existing rows
func (t *Table[T]) Append(records ...T) error {
	return t.Update(func(current []T) ([]T, error) {
		return append(current, records...), nil
	})
}

// Update reads all rows, passes them to fn and rewrites the table with the
// rows fn returns. Nothing is written if fn returns an error. The table lock
// is held for the whole read-modify-write.
func (t *Table[T]) Update(fn func(current []T) ([]T, error)) error {
	unlock, err := t.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	current, err := t.ReadAll()
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return t.replaceAll(next)
}

func (t *Table[T]) replaceAll(records []T) error {
	var buf bytes.Buffer
	buf.Grow(len(records) * t.codec.Size())
	for i, r := range records {
		b, err := t.codec.Encode(r)
		if err != nil {
			return fmt.Errorf("failed to encode row %d: %w", i, err)
		}
		buf.Write(b)
	}

	if err := renameio.WriteFile(t.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", model.ErrIO, t.path, err)
	}
	return nil
}

func (t *Table[T]) acquire() (func(), error) {
	if !t.opts.lock {
		return func() {}, nil
	}
	fl := flock.New(t.path + ".lock")
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("%w: failed to lock %s: %v", model.ErrIO, t.path, err)
	}
	return func() { _ = fl.Unlock() }, nil
}
