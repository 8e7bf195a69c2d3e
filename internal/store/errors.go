package store

import "fmt"

// OperationError возвращается вызывающему коду, когда операция завершилась отказом.
// Текст совпадает с тем, что записано в State.Error.
type OperationError struct {
	Resource string
	Op       Operation
	Message  string
	Err      error
}

func (e *OperationError) Error() string { return e.Message }

func (e *OperationError) Unwrap() error { return e.Err }

func (e *OperationError) Detail() string {
	return fmt.Sprintf("%s.%s: %v", e.Resource, e.Op, e.Err)
}
