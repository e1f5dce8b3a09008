package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pankajredekar/pos/internal/model"
)

// Codec encodes values of T into blocks of exactly Size bytes
type Codec[T any] interface {
	Size() int
	Encode(v T) ([]byte, error)
	Decode(b []byte) (T, error)
}

var le = binary.LittleEndian

// putString copies s into a zero-filled field at buf[off:off+model.MaxField]
func putString(buf []byte, off int, name, s string) error {
	if len(s) >= model.MaxField {
		return model.Invalid(model.RuleFieldLength, "%s is %d bytes, limit is %d", name, len(s), model.MaxField-1)
	}
	field := buf[off : off+model.MaxField]
	n := copy(field, s)
	clear(field[n:])
	return nil
}

// getString reads a field up to its first zero byte
func getString(buf []byte, off int) string {
	field := buf[off : off+model.MaxField]
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}

func putInt32(buf []byte, off int, v int32) {
	le.PutUint32(buf[off:], uint32(v))
}

func getInt32(buf []byte, off int) int32 {
	return int32(le.Uint32(buf[off:]))
}

func putFloat32(buf []byte, off int, v float32) {
	le.PutUint32(buf[off:], math.Float32bits(v))
}

func getFloat32(buf []byte, off int) float32 {
	return math.Float32frombits(le.Uint32(buf[off:]))
}

func checkSize(b []byte, want int, kind string) error {
	if len(b) != want {
		return fmt.Errorf("%w: %s block is %d bytes, want %d", model.ErrIO, kind, len(b), want)
	}
	return nil
}
