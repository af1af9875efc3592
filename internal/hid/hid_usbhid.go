//go:build purego

package hid

import (
	"sync"
	"time"

	usbhid "rafaelmartins.com/p/usbhid"
)

// Pure-Go backend. usbhid's GetInputReport blocks with no deadline, so a
// single reader goroutine feeds a channel and ReadWithTimeout races it
// against a timer. Reports that arrive after a timed-out call are delivered
// to the next call rather than dropped.

type usbManager struct{}

func newManager() (Manager, error) { return &usbManager{}, nil }

func (m *usbManager) List() ([]Info, error) {
	devs, err := usbhid.Enumerate(nil)
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			SerialNumber: d.SerialNumber(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
		})
	}
	return out, nil
}

func (m *usbManager) Open(info Info) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.Path() == info.Path
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &usbDevice{d: d}, nil
}

type readResult struct {
	data []byte
	err  error
}

type usbDevice struct {
	d *usbhid.Device

	readerOnce sync.Once
	reports    chan readResult
}

func (d *usbDevice) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// The meter uses unnumbered reports; the full buffer is payload.
	if err := d.d.SetOutputReport(0, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *usbDevice) startReader() {
	d.reports = make(chan readResult, 1)
	go func() {
		for {
			_, buf, err := d.d.GetInputReport()
			d.reports <- readResult{data: buf, err: err}
			if err != nil {
				return
			}
		}
	}()
}

func (d *usbDevice) ReadWithTimeout(p []byte, timeout time.Duration) (int, error) {
	d.readerOnce.Do(d.startReader)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-d.reports:
		if r.err != nil {
			return 0, r.err
		}
		return copy(p, r.data), nil
	case <-timer.C:
		return 0, nil
	}
}

func (d *usbDevice) Close() error { return d.d.Close() }
