package entity

// Kind identifies one of the directory collections managed by the console.
type Kind string

const (
	KindCommunity Kind = "community"
	KindAgent     Kind = "agent"
	KindDriver    Kind = "driver"
	KindFacility  Kind = "facility"
)

// Kinds lists every managed kind.
func Kinds() []Kind {
	return []Kind{KindCommunity, KindAgent, KindDriver, KindFacility}
}

// Valid reports whether k is a managed kind.
func (k Kind) Valid() bool {
	switch k {
	case KindCommunity, KindAgent, KindDriver, KindFacility:
		return true
	default:
		return false
	}
}

// Label is the human name used in messages, e.g. "Failed to save CHIPS agent".
func (k Kind) Label() string {
	switch k {
	case KindCommunity:
		return "community"
	case KindAgent:
		return "CHIPS agent"
	case KindDriver:
		return "ETS driver"
	case KindFacility:
		return "facility"
	default:
		return string(k)
	}
}

// HasLinkedCommunities reports whether forms of this kind carry a community picker.
func (k Kind) HasLinkedCommunities() bool {
	return k == KindAgent || k == KindDriver
}
