package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"termlife/engine"
)

// SeedFile is the on-disk seed document: a single object holding the
// list of [row, col] pairs to start alive. Coordinates are unsigned
// 16-bit; whether they fit the board is decided at engine construction.
type SeedFile struct {
	Cells [][2]uint16 `json:"cells"`
}

// LoadSeed reads and parses a seed document into engine cells.
func LoadSeed(filename string) ([]engine.Cell, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadSeed] failed to read file: %+v", filename)
	}

	var seed SeedFile
	if err = json.Unmarshal(data, &seed); err != nil {
		return nil, errors.Wrapf(err, "[LoadSeed] failed to unmarshal data from file: %+v", filename)
	}

	cells := make([]engine.Cell, 0, len(seed.Cells))
	for _, pair := range seed.Cells {
		cells = append(cells, engine.Cell{Row: int(pair[0]), Col: int(pair[1])})
	}

	return cells, nil
}
