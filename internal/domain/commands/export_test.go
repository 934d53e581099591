package commands

import "time"

// SetRetryObserver exposes the retry hook for testing.
func (it *TokenCommand) SetRetryObserver(fn func(err error, delay time.Duration)) {
	it.onRetry = fn
}

// ReadDescriptionFiles exports readDescriptionFiles for testing.
var ReadDescriptionFiles = readDescriptionFiles //nolint:gochecknoglobals // test export

// MaxDelay exports maxDelay for testing.
var MaxDelay = maxDelay //nolint:gochecknoglobals // test export
