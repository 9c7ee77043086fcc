package service

// OrderNumberGenerator hands out order numbers. Numbers are monotonic per
// node and never reused.
type OrderNumberGenerator interface {
	Next() int64
}
