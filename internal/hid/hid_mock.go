package hid

import (
	"sync"
	"time"
)

// MockRead is one scripted result for MockDevice.ReadWithTimeout.
type MockRead struct {
	Data []byte
	Err  error
}

// MockDevice is a scriptable Device for tests. Writes are recorded and
// reads are served from a queue. An exhausted queue behaves like a quiet
// device: ReadWithTimeout sleeps out its budget and returns (0, nil).
type MockDevice struct {
	mu sync.Mutex

	WriteErr   error
	ShortWrite int // if > 0, Write reports this count instead of len(p)

	Writes    [][]byte
	ReadQueue []MockRead
	ReadCalls int
	Closed    int
}

func (m *MockDevice) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(p))
	copy(buf, p)
	m.Writes = append(m.Writes, buf)

	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	if m.ShortWrite > 0 {
		return m.ShortWrite, nil
	}
	return len(p), nil
}

func (m *MockDevice) ReadWithTimeout(p []byte, timeout time.Duration) (int, error) {
	m.mu.Lock()
	m.ReadCalls++
	if len(m.ReadQueue) == 0 {
		m.mu.Unlock()
		time.Sleep(timeout)
		return 0, nil
	}
	r := m.ReadQueue[0]
	m.ReadQueue = m.ReadQueue[1:]
	m.mu.Unlock()

	if r.Err != nil {
		return 0, r.Err
	}
	return copy(p, r.Data), nil
}

func (m *MockDevice) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed++
	return nil
}

// MockManager is a scriptable Manager for tests.
type MockManager struct {
	Devices []Info
	ListErr error
	OpenErr error
	Handle  Device

	Opened []Info
}

func (m *MockManager) List() ([]Info, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Devices, nil
}

func (m *MockManager) Open(info Info) (Device, error) {
	m.Opened = append(m.Opened, info)
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	if m.Handle != nil {
		return m.Handle, nil
	}
	return &MockDevice{}, nil
}
