package io

import (
	"errors"

	"github.com/ezrec/bf/translate"
)

var f = translate.From

var (
	// Console errors
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrNoInput        = errors.New(f("no input connected"))
	ErrNoOutput       = errors.New(f("no output connected"))
)
