// Package results carries the success/failure split used by every service
// operation. Infrastructure errors travel on the error return; domain
// rejections (permission, capacity, window state) travel in Failure so
// handlers can publish them without treating them as faults.
package results

// OperationResult holds either a success payload or a domain failure.
// Both nil means the operation produced nothing (e.g. after a panic).
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// SuccessResult builds a successful OperationResult.
func SuccessResult[S any, F any](s S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &s}
}

// FailureResult builds a failed OperationResult.
func FailureResult[S any, F any](f F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &f}
}

// IsSuccess reports whether the result carries a success payload.
func (r OperationResult[S, F]) IsSuccess() bool {
	return r.Success != nil
}

// IsFailure reports whether the result carries a domain failure.
func (r OperationResult[S, F]) IsFailure() bool {
	return r.Failure != nil
}
