// internal/register/descriptor.go
package register

import "fmt"

// WordBits is the size of one Modbus register.
const WordBits = 16

// Descriptor is the static metadata of one measurable quantity.
type Descriptor struct {
	Name    string // unique within a table; drives the publish topic
	Unit    string // engineering unit, e.g. "kWh", "°C"
	Address uint16 // input register offset of the first word
	Width   uint8  // 16 or 32
	Scale   uint8  // implied decimal digits; raw / 10^Scale
}

// Words is the number of consecutive registers read for d.
func (d Descriptor) Words() uint16 {
	return uint16(d.Width) / WordBits
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s@%d/u%d/%d", d.Name, d.Address, d.Width, d.Scale)
}

// validate checks one descriptor in isolation.
func (d Descriptor) validate() error {
	if d.Name == "" {
		return &ConfigError{Name: d.Name, Field: "name", Reason: "must not be empty"}
	}
	switch d.Width {
	case 16, 32:
	default:
		return &ConfigError{
			Name:   d.Name,
			Field:  "width",
			Reason: fmt.Sprintf("unsupported width %d (want 16 or 32)", d.Width),
		}
	}
	if d.Scale > maxScale {
		return &ConfigError{
			Name:   d.Name,
			Field:  "scale",
			Reason: fmt.Sprintf("scale %d exceeds %d", d.Scale, maxScale),
		}
	}
	if uint32(d.Address)+uint32(d.Words()) > 0x10000 {
		return &ConfigError{
			Name:   d.Name,
			Field:  "address",
			Reason: fmt.Sprintf("read of %d words at %d runs past the address space", d.Words(), d.Address),
		}
	}
	return nil
}
