package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies stock-engine failures so handlers can map them to HTTP
// statuses without string matching.
type ErrorKind string

const (
	KindDuplicateIdentity    ErrorKind = "duplicate_identity"
	KindStockNotFound        ErrorKind = "stock_not_found"
	KindMissingTarget        ErrorKind = "missing_target"
	KindInsufficientStock    ErrorKind = "insufficient_stock"
	KindCoilCountRequired    ErrorKind = "coil_count_required"
	KindInsufficientCoils    ErrorKind = "insufficient_coils"
	KindCoilQuantityMismatch ErrorKind = "coil_quantity_mismatch"
	KindPartialTransfer      ErrorKind = "partial_transfer_unsupported"
	// KindNegativeBalance is an internal invariant violation. It should be
	// unreachable given the sufficiency checks; if it surfaces, the movement
	// was rolled back and the condition needs operator attention.
	KindNegativeBalance ErrorKind = "negative_balance"
)

// StockError carries a machine-readable kind and a human-readable detail that
// is safe to surface verbatim to the end user.
type StockError struct {
	Kind   ErrorKind
	Detail string
}

func (e *StockError) Error() string { return e.Detail }

func stockErrf(kind ErrorKind, format string, args ...interface{}) *StockError {
	return &StockError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// KindOf returns the ErrorKind of err, or "" when err is not a StockError.
func KindOf(err error) ErrorKind {
	var se *StockError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// IsFatal reports whether err is an invariant violation rather than a
// correctable caller error.
func IsFatal(err error) bool {
	return KindOf(err) == KindNegativeBalance
}
