package wallet

import (
	"fmt"
	"strconv"
	"strings"
)

// HardenedKeyStart is the first hardened child index (2^31).
const HardenedKeyStart uint32 = 0x80000000

// BIP-44 derivation path constants.
// Full path: m/44'/coin_type'/account'/change/index
const (
	// PurposeBIP44 is the BIP-44 purpose field (hardened).
	PurposeBIP44 = 44

	// ChangeExternal is for receiving addresses.
	ChangeExternal = 0

	// ChangeInternal is for change addresses.
	ChangeInternal = 1
)

// DefaultPath is the BIP-44 path of the first receiving address of the
// first testnet account.
const DefaultPath = "m/44'/1'/0'/0/0"

// PathStep is one segment of a derivation path.
type PathStep struct {
	Index    uint32
	Hardened bool
}

// ChildNumber returns the BIP-32 serialized index, with the hardened bit set
// for hardened steps.
func (s PathStep) ChildNumber() uint32 {
	if s.Hardened {
		return s.Index | HardenedKeyStart
	}
	return s.Index
}

func (s PathStep) String() string {
	if s.Hardened {
		return strconv.FormatUint(uint64(s.Index), 10) + "'"
	}
	return strconv.FormatUint(uint64(s.Index), 10)
}

// Path is an ordered sequence of derivation steps from the master key.
type Path []PathStep

// ParsePath parses a path such as "m/44'/1'/0'/0/0". Hardened segments may
// be marked with ', h or H. "m" alone is the empty path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if parts[0] != "m" && parts[0] != "M" {
		return nil, fmt.Errorf("%w: %q must start with \"m\"", ErrInvalidPath, s)
	}

	path := make(Path, 0, len(parts)-1)
	for i, part := range parts[1:] {
		step := PathStep{}
		if n := len(part); n > 0 && (part[n-1] == '\'' || part[n-1] == 'h' || part[n-1] == 'H') {
			step.Hardened = true
			part = part[:n-1]
		}
		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d %q: not a number", ErrInvalidPath, i+1, parts[i+1])
		}
		if uint32(idx) >= HardenedKeyStart {
			return nil, fmt.Errorf("%w: segment %d %q: %w", ErrInvalidPath, i+1, parts[i+1], ErrInvalidIndex)
		}
		step.Index = uint32(idx)
		path = append(path, step)
	}
	return path, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// BIP44Path builds m/44'/coinType'/account'/change/index.
func BIP44Path(coinType, account, change, index uint32) Path {
	return Path{
		{Index: PurposeBIP44, Hardened: true},
		{Index: coinType, Hardened: true},
		{Index: account, Hardened: true},
		{Index: change},
		{Index: index},
	}
}

// String renders the path with ' as the hardened marker.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, step := range p {
		sb.WriteByte('/')
		sb.WriteString(step.String())
	}
	return sb.String()
}
