package market

// Herb is one catalog entry.
type Herb struct {
	Name   string
	Rarity Rarity
	Biomes []Biome
}

// RarityConfig holds the price bounds and stocking likelihood of one tier.
type RarityConfig struct {
	PriceLower int
	PriceUpper int
	// Likelihood is the chance, in [0,1), that each further unit is stocked.
	Likelihood float64
}

// RarityTable holds exactly one RarityConfig per tier.
type RarityTable [RarityCount]RarityConfig

// For returns the config of tier r.
func (t RarityTable) For(r Rarity) RarityConfig {
	return t[r]
}

// Config is the market definition. It is read-only once loaded.
type Config struct {
	LocalBiomes BiomeSet
	Rarities    RarityTable
	Herbs       []Herb
}

// IsLocal reports whether h grows in any local biome.
func (c Config) IsLocal(h Herb) bool {
	return c.LocalBiomes.ContainsAny(h.Biomes)
}

// EffectiveRarity resolves the tier used to stock h. Non-local herbs are one
// tier scarcer; the second result is false when a non-local herb is already
// VeryRare and therefore unavailable.
func (c Config) EffectiveRarity(h Herb) (Rarity, bool) {
	if c.IsLocal(h) {
		return h.Rarity, true
	}
	return h.Rarity.Next()
}
