package tensor

// Backend defines the reductions a compute backend supplies to tensors.
//
// Implementations:
//   - CPU: pure Go (internal/backend/cpu)
type Backend interface {
	// Name returns a short backend identifier.
	Name() string

	// Sum adds every element of x, accumulating in float64.
	Sum(x *RawTensor) float64

	// Mean returns Sum(x) divided by the element count of x.
	// The result for an empty tensor is NaN; callers that need an error
	// must check NumElements first.
	Mean(x *RawTensor) float64
}
