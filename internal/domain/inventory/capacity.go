package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	ErrConfigurationMissing = errors.New("capacity table configuration missing")
	ErrInvalidCapacity      = errors.New("capacity limits must be non-negative")
)

// CapacityTable maps a canonical item name to the maximum quantity that may
// be held simultaneously. It is loaded once at process start and the same
// instance is shared by every consumer.
type CapacityTable map[string]int

// LoadCapacityTable reads the table from a JSON file of name→limit pairs.
// An absent or malformed file is fatal at startup, never a per-request error.
func LoadCapacityTable(path string) (CapacityTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigurationMissing, err)
	}

	var table CapacityTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigurationMissing, err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: empty table in %s", ErrConfigurationMissing, path)
	}

	for name, limit := range table {
		if limit < 0 {
			return nil, fmt.Errorf("%w: %q has limit %d", ErrInvalidCapacity, name, limit)
		}
	}

	return table, nil
}

// UnknownItemPolicy decides the fate of an item name absent from the
// capacity table. The legacy endpoints disagreed on this; here it is one
// deployment-wide flag.
type UnknownItemPolicy int

const (
	// UnknownItemReject treats an absent item as capacity 0.
	UnknownItemReject UnknownItemPolicy = iota
	// UnknownItemUnlimited never rejects an absent item.
	UnknownItemUnlimited
)

func ParseUnknownItemPolicy(s string) (UnknownItemPolicy, error) {
	switch s {
	case "reject":
		return UnknownItemReject, nil
	case "unlimited":
		return UnknownItemUnlimited, nil
	default:
		return UnknownItemReject, fmt.Errorf("%w: unknown item policy %q", ErrConfigurationMissing, s)
	}
}

func (p UnknownItemPolicy) String() string {
	if p == UnknownItemUnlimited {
		return "unlimited"
	}
	return "reject"
}

// LimitFor resolves the capacity limit for a canonical item name. The second
// return is true when the item is effectively unlimited under the policy.
func (t CapacityTable) LimitFor(name string, policy UnknownItemPolicy) (int, bool) {
	if limit, ok := t[name]; ok {
		return limit, false
	}
	if policy == UnknownItemUnlimited {
		return 0, true
	}
	return 0, false
}
