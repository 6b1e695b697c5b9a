package market

import "fmt"

// Rarity is an ordered stocking tier. Higher tiers are pricier and scarcer.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	VeryRare
)

// RarityCount is the number of configured tiers.
const RarityCount = 4

var rarityNames = [RarityCount]string{
	Common:   "Common",
	Uncommon: "Uncommon",
	Rare:     "Rare",
	VeryRare: "VeryRare",
}

// Rarities lists every tier in ascending order.
func Rarities() []Rarity {
	return []Rarity{Common, Uncommon, Rare, VeryRare}
}

// Valid reports whether r is one of the four known tiers.
func (r Rarity) Valid() bool {
	return r >= Common && r <= VeryRare
}

// Next returns the tier one step above r. The second result is false for
// VeryRare, which has no successor.
func (r Rarity) Next() (Rarity, bool) {
	if !r.Valid() || r == VeryRare {
		return r, false
	}
	return r + 1, true
}

func (r Rarity) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// ParseRarity maps a tag such as "VeryRare" to its Rarity.
func ParseRarity(tag string) (Rarity, error) {
	for i, name := range rarityNames {
		if name == tag {
			return Rarity(i), nil
		}
	}
	return 0, &UnknownTagError{Kind: "rarity", Tag: tag, Valid: rarityNames[:]}
}
