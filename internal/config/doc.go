// Package config loads neocrystal's settings.
//
// Settings come from three layers, higher layers overriding lower:
//
//	┌──────────────────────────────┐
//	│  3. Environment (NEOCRYSTAL_) │  ← Highest priority
//	├──────────────────────────────┤
//	│  2. config.toml               │  ← ~/.config/neocrystal/config.toml
//	├──────────────────────────────┤
//	│  1. Built-in defaults         │  ← Lowest priority
//	└──────────────────────────────┘
//
// A missing file is not an error. Unknown keys are, so typos surface as a
// *ParseError with the offending position.
package config
