// Package domain models orders, their customers and the products they reference.
package domain

import "errors"

var ErrOrderNotFound = errors.New("order not found")

// DomainError reports a broken invariant of a value object or aggregate.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func domainErr(msg string) error {
	return &DomainError{Message: msg}
}
