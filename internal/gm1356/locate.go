package gm1356

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/seagrayinc/gospl/internal/hid"
)

// Identity selects which physical meter to open during discovery.
type Identity struct {
	VendorID  uint16
	ProductID uint16
	Serial    string // optional; exact match when set
}

// DefaultIdentity matches any GM1356 regardless of serial number.
func DefaultIdentity() Identity {
	return Identity{VendorID: VendorID, ProductID: ProductID}
}

// Locate enumerates HID devices matching id and opens the single candidate.
// Zero candidates fail with ErrNotFound, more than one with
// ErrAmbiguousDevice, and a failing open with ErrOpenFailed. Enumeration
// details are debug-logged to the supplied logger.
func Locate(mgr hid.Manager, id Identity, log zerolog.Logger) (hid.Device, error) {
	infos, err := mgr.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var candidates []hid.Info
	for _, d := range infos {
		if d.VendorID != id.VendorID || d.ProductID != id.ProductID {
			continue
		}
		log.Debug().
			Str("path", d.Path).
			Str("serial", d.SerialNumber).
			Str("product", d.Product).
			Msg("device found")
		if id.Serial != "" && d.SerialNumber != id.Serial {
			continue
		}
		candidates = append(candidates, d)
	}

	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w: %04x:%04x", ErrNotFound, id.VendorID, id.ProductID)
	case 1:
	default:
		return nil, fmt.Errorf("%w: found %d", ErrAmbiguousDevice, len(candidates))
	}

	dev, err := mgr.Open(candidates[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	return dev, nil
}
