package data

import (
	_ "embed"
)

// DefaultSeed is the seed file imported by cmd/seed when none is given.
//
//go:embed seed/default.json
var DefaultSeed []byte
