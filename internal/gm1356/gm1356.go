// Package gm1356 implements the vendor HID protocol of the GM1356
// sound-level meter: a two-message request/response exchange carried in
// fixed 8-byte reports.
package gm1356

// Device selection key for the meter. Fixed; the vendor ships every unit
// with the same identifiers.
const (
	VendorID  uint16 = 0x64bd
	ProductID uint16 = 0x74e3
)

const (
	cmdCapture   = 0xb3
	cmdConfigure = 0x56

	flagFastMode = 0x40
	flagHoldMax  = 0x20
	flagDBC      = 0x10
	rangeMask    = 0x0f
)

// ReportLen is the size of every report in both directions.
const ReportLen = 8
