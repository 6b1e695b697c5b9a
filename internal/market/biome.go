package market

import "fmt"

// Biome tags the terrain an herb grows in.
type Biome int

const (
	MostTerrain Biome = iota
	Coastal
	Underdark
	Desert
	Mountain
	Swamp
	Forest
	Arctic
	Hills
	Grasslands
)

const biomeCount = 10

var biomeNames = [biomeCount]string{
	MostTerrain: "MostTerrain",
	Coastal:     "Coastal",
	Underdark:   "Underdark",
	Desert:      "Desert",
	Mountain:    "Mountain",
	Swamp:       "Swamp",
	Forest:      "Forest",
	Arctic:      "Arctic",
	Hills:       "Hills",
	Grasslands:  "Grasslands",
}

// Valid reports whether b is a known biome.
func (b Biome) Valid() bool {
	return b >= MostTerrain && b < biomeCount
}

func (b Biome) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Biome(%d)", int(b))
	}
	return biomeNames[b]
}

// ParseBiome maps a tag such as "Underdark" to its Biome.
func ParseBiome(tag string) (Biome, error) {
	for i, name := range biomeNames {
		if name == tag {
			return Biome(i), nil
		}
	}
	return 0, &UnknownTagError{Kind: "biome", Tag: tag, Valid: biomeNames[:]}
}

// BiomeSet is a membership set over the closed biome enumeration.
type BiomeSet uint16

// NewBiomeSet builds a set from the given biomes. Duplicates collapse.
func NewBiomeSet(biomes ...Biome) BiomeSet {
	var s BiomeSet
	for _, b := range biomes {
		s = s.With(b)
	}
	return s
}

// With returns s with b added.
func (s BiomeSet) With(b Biome) BiomeSet {
	if !b.Valid() {
		return s
	}
	return s | 1<<uint(b)
}

// Contains reports whether b is in the set.
func (s BiomeSet) Contains(b Biome) bool {
	return b.Valid() && s&(1<<uint(b)) != 0
}

// ContainsAny reports whether any of biomes is in the set.
func (s BiomeSet) ContainsAny(biomes []Biome) bool {
	for _, b := range biomes {
		if s.Contains(b) {
			return true
		}
	}
	return false
}

// Biomes lists the members in declaration order.
func (s BiomeSet) Biomes() []Biome {
	var out []Biome
	for b := MostTerrain; b < biomeCount; b++ {
		if s.Contains(b) {
			out = append(out, b)
		}
	}
	return out
}
