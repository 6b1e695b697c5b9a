// Package config loads the herb market definition from a TOML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/louisbranch/herb-market/internal/market"
)

// DefaultPath is where the market definition is read from when no path is given.
const DefaultPath = "herb-market.config.toml"

// MaxPrice bounds tier prices so the inclusive span upper-lower+1 fits in an
// int32.
const MaxPrice = math.MaxInt32 - 1

var (
	// ErrRead indicates the file is missing or unreadable.
	ErrRead = errors.New("read market config")
	// ErrInvalid indicates malformed TOML or a schema violation.
	ErrInvalid = errors.New("invalid market config")
)

// Document is a decoded market definition.
type Document struct {
	Config market.Config
	// Ignored lists keys present in the file that the schema does not use.
	Ignored []string
}

type rawDocument struct {
	LocalBiomes *[]string  `toml:"local_biomes"`
	Rarities    *rawTiers  `toml:"rarities"`
	Herbs       *[]rawHerb `toml:"herbs"`
}

type rawTiers struct {
	Common   *rawTier `toml:"common"`
	Uncommon *rawTier `toml:"uncommon"`
	Rare     *rawTier `toml:"rare"`
	VeryRare *rawTier `toml:"very_rare"`
}

type rawTier struct {
	PriceLower *int64   `toml:"price_lower"`
	PriceUpper *int64   `toml:"price_upper"`
	Likelihood *float64 `toml:"likelihood"`
}

type rawHerb struct {
	Name   *string   `toml:"name"`
	Rarity *string   `toml:"rarity"`
	Biomes *[]string `toml:"biomes"`
}

// Load reads and decodes the market definition at path.
func Load(path string) (Document, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses TOML text into a validated market definition.
func Decode(data []byte) (Document, error) {
	var raw rawDocument
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	cfg, err := raw.toConfig()
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var ignored []string
	for _, key := range md.Undecoded() {
		ignored = append(ignored, key.String())
	}
	return Document{Config: cfg, Ignored: ignored}, nil
}

func (raw rawDocument) toConfig() (market.Config, error) {
	var cfg market.Config

	if raw.LocalBiomes == nil {
		return cfg, missing("local_biomes")
	}
	local, err := parseBiomes("local_biomes", *raw.LocalBiomes)
	if err != nil {
		return cfg, err
	}
	cfg.LocalBiomes = market.NewBiomeSet(local...)

	if raw.Rarities == nil {
		return cfg, missing("rarities")
	}
	tiers := [market.RarityCount]struct {
		key  string
		tier *rawTier
	}{
		market.Common:   {"common", raw.Rarities.Common},
		market.Uncommon: {"uncommon", raw.Rarities.Uncommon},
		market.Rare:     {"rare", raw.Rarities.Rare},
		market.VeryRare: {"very_rare", raw.Rarities.VeryRare},
	}
	for i, entry := range tiers {
		tier, err := entry.tier.toRarityConfig("rarities." + entry.key)
		if err != nil {
			return cfg, err
		}
		cfg.Rarities[i] = tier
	}

	if raw.Herbs == nil {
		return cfg, missing("herbs")
	}
	cfg.Herbs = make([]market.Herb, 0, len(*raw.Herbs))
	for i, h := range *raw.Herbs {
		herb, err := h.toHerb(fmt.Sprintf("herbs[%d]", i))
		if err != nil {
			return cfg, err
		}
		cfg.Herbs = append(cfg.Herbs, herb)
	}
	return cfg, nil
}

func (t *rawTier) toRarityConfig(path string) (market.RarityConfig, error) {
	if t == nil {
		return market.RarityConfig{}, missing(path)
	}
	if t.PriceLower == nil {
		return market.RarityConfig{}, missing(path + ".price_lower")
	}
	if t.PriceUpper == nil {
		return market.RarityConfig{}, missing(path + ".price_upper")
	}
	if t.Likelihood == nil {
		return market.RarityConfig{}, missing(path + ".likelihood")
	}

	lower, upper, likelihood := *t.PriceLower, *t.PriceUpper, *t.Likelihood
	if lower < 0 || lower > MaxPrice {
		return market.RarityConfig{}, fmt.Errorf("%s.price_lower: %d is out of range", path, lower)
	}
	if upper < 0 || upper > MaxPrice {
		return market.RarityConfig{}, fmt.Errorf("%s.price_upper: %d is out of range", path, upper)
	}
	if lower > upper {
		return market.RarityConfig{}, fmt.Errorf("%s: price_lower %d exceeds price_upper %d", path, lower, upper)
	}
	// A likelihood of 1 would never end the quantity draw.
	if math.IsNaN(likelihood) || likelihood < 0 || likelihood >= 1 {
		return market.RarityConfig{}, fmt.Errorf("%s.likelihood: %v must be in [0, 1)", path, likelihood)
	}

	return market.RarityConfig{
		PriceLower: int(lower),
		PriceUpper: int(upper),
		Likelihood: likelihood,
	}, nil
}

func (h rawHerb) toHerb(path string) (market.Herb, error) {
	if h.Name == nil {
		return market.Herb{}, missing(path + ".name")
	}
	name := *h.Name
	if strings.TrimSpace(name) == "" {
		return market.Herb{}, fmt.Errorf("%s.name: must not be empty", path)
	}
	path = fmt.Sprintf("%s (%s)", path, name)

	if h.Rarity == nil {
		return market.Herb{}, missing(path + ".rarity")
	}
	rarity, err := market.ParseRarity(*h.Rarity)
	if err != nil {
		return market.Herb{}, fmt.Errorf("%s.rarity: %w", path, err)
	}

	if h.Biomes == nil {
		return market.Herb{}, missing(path + ".biomes")
	}
	biomes, err := parseBiomes(path+".biomes", *h.Biomes)
	if err != nil {
		return market.Herb{}, err
	}

	return market.Herb{Name: name, Rarity: rarity, Biomes: biomes}, nil
}

func parseBiomes(path string, tags []string) ([]market.Biome, error) {
	biomes := make([]market.Biome, 0, len(tags))
	for i, tag := range tags {
		b, err := market.ParseBiome(tag)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", path, i, err)
		}
		biomes = append(biomes, b)
	}
	return biomes, nil
}

func missing(key string) error {
	return fmt.Errorf("missing required field %s", key)
}
