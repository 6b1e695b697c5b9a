// Package market models the herb catalog and rolls a shop's stock from it.
//
// # Effective rarity
//
// A herb growing in any of the shop's local biomes is stocked at its declared
// rarity. Imported herbs are stocked one tier higher, and imported VeryRare
// herbs are never stocked at all.
//
// # Draws
//
// Quantity is a run of Bernoulli trials against the tier's likelihood: every
// draw below the likelihood adds one unit and the first draw at or above it
// ends the run. Price is uniform over the tier's inclusive range.
package market
