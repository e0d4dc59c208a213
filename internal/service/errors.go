package service

import "errors"

var (
	ErrOverridesUnavailable = errors.New("climate overrides are not loaded")
)
