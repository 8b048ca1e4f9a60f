package xgt

import (
	"fmt"
	"sync/atomic"
)

// MemorySpace is the controller's circular M-area bit space.
type MemorySpace struct {
	size int64
}

// MaxMemorySize is the largest M area in bits. Any span inside it fits the
// two-byte value-size field of a continuous address.
const MaxMemorySize int64 = 65536 * 8

// NewMemorySpace returns a memory space of size bits.
func NewMemorySpace(size int64) (MemorySpace, error) {
	if err := checkMemorySize(size); err != nil {
		return MemorySpace{}, err
	}
	return MemorySpace{size: size}, nil
}

func checkMemorySize(size int64) error {
	if size <= 0 {
		return fmt.Errorf("memory size must be positive, got %d", size)
	}
	if size > MaxMemorySize {
		return fmt.Errorf("memory size %d exceeds the maximum of %d bits", size, MaxMemorySize)
	}
	return nil
}

// Size returns the modulus in bits.
func (m MemorySpace) Size() int64 {
	return m.size
}

// Resolve scales offset by the data type's bit width and wraps the result
// into [0, Size). Out-of-range offsets alias into valid memory rather than
// failing.
func (m MemorySpace) Resolve(offset int64, dt DataType) int64 {
	// Reduce before scaling so large offsets cannot overflow.
	bit := (offset % m.size) * dt.BitWidth() % m.size
	if bit < 0 {
		bit += m.size
	}
	return bit
}

// DefaultMemorySize is the M-area size of the default controller model, in bits.
const DefaultMemorySize int64 = 32768 * 16

var baseMemorySize atomic.Int64

func init() {
	baseMemorySize.Store(DefaultMemorySize)
}

// SetBaseMemorySize sets the process-wide memory size used by Parse and TryParse.
// Addresses parsed earlier keep the size they were resolved against.
func SetBaseMemorySize(size int64) error {
	if err := checkMemorySize(size); err != nil {
		return err
	}
	baseMemorySize.Store(size)
	return nil
}

// BaseMemorySize returns the process-wide memory size in bits.
func BaseMemorySize() int64 {
	return baseMemorySize.Load()
}
