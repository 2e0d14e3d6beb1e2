// Package backend provides rendering targets for the grid engine.
//
//   - Terminal draws to a tcell screen.
//   - Canvas materialises cells in memory for tests and snapshots.
//   - Recorder logs every call for exact-sequence assertions.
//
// All of them implement grid.Backend.
package backend
