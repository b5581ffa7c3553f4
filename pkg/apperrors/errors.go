package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrCurrencyMismatch indicates an operation between Money values of different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrDivisionByZero indicates a scalar division by zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrInvalidArgument indicates an argument outside an operation's contract,
// such as splitting into zero parts or allocating over an empty ratio list.
var ErrInvalidArgument = errors.New("invalid argument")
