package consts

import (
	"errors"
)

var (
	ErrNotImplemented       = errors.New(`not implemented`)
	ErrNilReceiver          = errors.New(`nil receiver`)
	ErrNilParam             = errors.New(`nil parameter`)
	ErrNilImage             = errors.New(`nil image`)
	ErrPlatformNotSupported = errors.New(`platform not supported`)
	ErrTerminated           = errors.New(`application already terminated`)
)

const (
	LibraryName = `dghost`

	DisplayNullName      = `null`
	DisplayHalfblockName = `halfblock`

	// environment overrides for the cli defaults
	EnvDisplay = `DGHOST_DISPLAY`
	EnvAssets  = `DGHOST_ASSETS`
	EnvTTY     = `DGHOST_TTY`
)
