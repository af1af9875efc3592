package gm1356

import "errors"

var (
	// ErrNotFound means no device matched the identity during discovery.
	ErrNotFound = errors.New("no matching device found")

	// ErrAmbiguousDevice means more than one device matched; the driver
	// refuses to guess which physical meter to open.
	ErrAmbiguousDevice = errors.New("multiple matching devices found")

	// ErrOpenFailed means the open call on the single candidate failed.
	// Permission denied on the hidraw node is the common underlying cause.
	ErrOpenFailed = errors.New("failed to open device")

	// ErrWriteFailed means a report was not written in full. Reports are
	// delivered atomically or not at all, so short writes are not retried.
	ErrWriteFailed = errors.New("report write failed")

	// ErrReadFailed means the underlying read call itself errored. Fatal
	// to the session, unlike ErrTimeout.
	ErrReadFailed = errors.New("report read failed")

	// ErrTimeout means the response deadline elapsed before a full report
	// arrived. Recoverable; the partial bytes are discarded.
	ErrTimeout = errors.New("timed out waiting for report")

	// ErrConfigurationFailed means the CONFIGURE acknowledgement never
	// arrived. Without it the device's active configuration is unknown,
	// so the session cannot proceed.
	ErrConfigurationFailed = errors.New("device configuration not acknowledged")

	// ErrInvalidArgument reports a precondition violation by the caller.
	ErrInvalidArgument = errors.New("invalid argument")
)
