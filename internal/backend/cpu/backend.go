// Package cpu implements the pure Go CPU backend for tensor reductions.
package cpu

// CPUBackend implements tensor reductions on the CPU.
// It holds no mutable state and is safe for concurrent use.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}
