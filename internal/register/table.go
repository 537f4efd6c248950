// internal/register/table.go
package register

import "fmt"

// Table is an ordered, immutable list of descriptors.
// Order is poll and publish order.
type Table struct {
	ds []Descriptor
}

// NewTable validates ds and freezes it. Any violation fails the whole table.
func NewTable(ds ...Descriptor) (*Table, error) {
	if len(ds) == 0 {
		return nil, &ConfigError{Field: "table", Reason: "at least one descriptor required"}
	}

	names := make(map[string]struct{}, len(ds))
	addrs := make(map[uint16]string, len(ds))

	for _, d := range ds {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := names[d.Name]; dup {
			return nil, &ConfigError{Name: d.Name, Field: "name", Reason: "duplicate name"}
		}
		names[d.Name] = struct{}{}

		if prev, dup := addrs[d.Address]; dup {
			return nil, &ConfigError{
				Name:   d.Name,
				Field:  "address",
				Reason: fmt.Sprintf("address %d already used by %q", d.Address, prev),
			}
		}
		addrs[d.Address] = d.Name
	}

	out := make([]Descriptor, len(ds))
	copy(out, ds)
	return &Table{ds: out}, nil
}

// Descriptors returns a copy in table order.
func (t *Table) Descriptors() []Descriptor {
	out := make([]Descriptor, len(t.ds))
	copy(out, t.ds)
	return out
}

func (t *Table) Len() int { return len(t.ds) }
