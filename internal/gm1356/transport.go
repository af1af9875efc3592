package gm1356

import (
	"fmt"
	"time"

	"github.com/seagrayinc/gospl/internal/hid"
)

// Transport exchanges fixed 8-byte reports with an opened device.
type Transport struct {
	Device hid.Device
}

// Send writes one report. A short write fails with ErrWriteFailed; the
// underlying transport delivers reports atomically or not at all, so
// partial writes are neither retried nor padded.
func (t Transport) Send(r Report) error {
	n, err := t.Device.Write(r[:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if n != ReportLen {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrWriteFailed, n, ReportLen)
	}
	return nil
}

// Receive reads until a full report has accumulated or the timeout elapses.
// The deadline is checked against the monotonic clock before every read, so
// a read that itself blocks past the deadline is still bounded on the next
// pass. On timeout the partial bytes are discarded, never exposed.
func (t Transport) Receive(timeout time.Duration) (Report, error) {
	var r Report
	deadline := time.Now().Add(timeout)

	read := 0
	for read < ReportLen {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return Report{}, ErrTimeout
		}
		n, err := t.Device.ReadWithTimeout(r[read:], remaining)
		if err != nil {
			return Report{}, fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
		read += n
	}
	return r, nil
}
