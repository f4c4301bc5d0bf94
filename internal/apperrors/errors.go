package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates the resource exists but is not in a state that
// allows the requested operation (inactive employee, uncompleted project,
// already-paid salary log).
var ErrInvalidState = errors.New("resource in invalid state")

// ErrInsufficientFunds indicates a commission transfer amount exceeds the
// source balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrNoFunds indicates a commission transfer resolved to a zero amount.
var ErrNoFunds = errors.New("no funds to transfer")

// ErrNoUnpaidSalary indicates there is no unpaid salary log to finalize.
var ErrNoUnpaidSalary = errors.New("no unpaid salary found")

// ErrNoOp indicates the requested mutation would not change anything.
var ErrNoOp = errors.New("operation is a no-op")

// ErrForbidden indicates the acting user is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

