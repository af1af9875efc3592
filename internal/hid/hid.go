package hid

import "time"

// Device represents an opened HID device capable of report I/O.
type Device interface {
	Write([]byte) (int, error) // send output report
	// ReadWithTimeout reads one input report, waiting at most the given
	// duration. A return of (0, nil) means the wait elapsed with no report.
	ReadWithTimeout([]byte, time.Duration) (int, error)
	Close() error
}

// Info represents a HID device descriptor.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	SerialNumber string
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	Open(info Info) (Device, error)
}

// NewManager returns the backend selected at build time.
func NewManager() (Manager, error) {
	return newManager()
}
