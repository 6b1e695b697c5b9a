// Package storage defines the persistence interfaces for the stock ledger.
//
// The ledger keeps every generated stock so a shop's inventory can be shown
// again later without rolling a new one. The SQLite implementation lives in
// the sqlite subpackage.
//
// # Error Types
//
//   - ErrNotFound: no run matches the request, or the ledger is empty.
package storage
