package market

import "sort"

// RNG abstracts the random source so stock generation can be replayed.
// *math/rand.Rand satisfies it.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// StockEntry is one stocked herb.
type StockEntry struct {
	Herb Herb
	// Rarity is the effective tier the draws were made with.
	Rarity   Rarity
	Quantity int
	Price    int
}

// GenerateStock rolls the shop inventory for cfg.
//
// Herbs are visited in catalog order and entries come out in that order.
// For each herb the quantity draws happen first and the price draw last, so
// the same seeded RNG over the same Config always yields the same stock.
// Herbs that are unavailable (non-local VeryRare) or roll a quantity of zero
// produce no entry and consume no price draw.
func GenerateStock(cfg Config, rng RNG) []StockEntry {
	stock := make([]StockEntry, 0, len(cfg.Herbs))
	for _, herb := range cfg.Herbs {
		rarity, ok := cfg.EffectiveRarity(herb)
		if !ok {
			continue
		}
		tier := cfg.Rarities.For(rarity)

		quantity := DrawQuantity(rng, tier.Likelihood)
		if quantity == 0 {
			continue
		}

		stock = append(stock, StockEntry{
			Herb:     herb,
			Rarity:   rarity,
			Quantity: quantity,
			Price:    DrawPrice(rng, tier.PriceLower, tier.PriceUpper),
		})
	}
	return stock
}

// DrawQuantity counts successes before the first failure, where each trial
// succeeds when a uniform draw is below likelihood.
func DrawQuantity(rng RNG, likelihood float64) int {
	quantity := 0
	for rng.Float64() < likelihood {
		quantity++
	}
	return quantity
}

// DrawPrice returns a uniform integer in [lower, upper].
func DrawPrice(rng RNG, lower, upper int) int {
	if upper <= lower {
		return lower
	}
	return lower + rng.Intn(upper-lower+1)
}

// SortByName orders entries by herb name, byte-wise ascending.
func SortByName(entries []StockEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Herb.Name < entries[j].Herb.Name
	})
}
