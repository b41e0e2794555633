package person

import "github.com/dmitrymomot/lorem/pkg/random"

// AgeGroup is a named inclusive age range.
type AgeGroup int

const (
	Child AgeGroup = iota
	Teen
	Adult
	Elderly
)

// Range returns the inclusive age range of the group.
// Unknown groups fall back to Adult.
func (g AgeGroup) Range() random.Range {
	switch g {
	case Child:
		return random.Between(1, 12)
	case Teen:
		return random.Between(13, 17)
	case Elderly:
		return random.Between(65, 100)
	default:
		return random.Between(18, 65)
	}
}

func (g AgeGroup) String() string {
	switch g {
	case Child:
		return "child"
	case Teen:
		return "teen"
	case Elderly:
		return "elderly"
	default:
		return "adult"
	}
}

// ParseAgeGroup maps a group name to an AgeGroup.
func ParseAgeGroup(s string) (AgeGroup, bool) {
	for _, g := range []AgeGroup{Child, Teen, Adult, Elderly} {
		if g.String() == s {
			return g, true
		}
	}
	return Adult, false
}
