package avl

import (
	"errors"
)

// error classes, so callers can test the kind of failure without
// matching on message text
type InvalidError string
type NotFoundError string

func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrInvalid(e error) bool {
	var target InvalidError
	return errors.As(e, &target)
}

func IsErrNotFound(e error) bool {
	var target NotFoundError
	return errors.As(e, &target)
}
