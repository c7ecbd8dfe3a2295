package server

import "errors"

var (
	ErrAddressInUse     = errors.New("address already in use")
	ErrListen           = errors.New("failed to listen")
	ErrInvalidConfig    = errors.New("invalid server config")
	ErrCreateSupervisor = errors.New("failed to create supervisor")
)
