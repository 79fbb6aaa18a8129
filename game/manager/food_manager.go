package manager

import (
	"snake-classic/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// DefaultMaxPlacementAttempts bounds the rejection sampling in PlaceRandom.
const DefaultMaxPlacementAttempts = 1_000_000

// ErrPlacementExhausted means no free interior cell was found for the food.
var ErrPlacementExhausted = errors.New("could not find snack position")

// Food is the single snack on the board. It is replaced, never moved.
type Food struct {
	Pos   types.Point
	Color types.Color
}

// Occupier is anything food must not be placed on.
type Occupier interface {
	Occupies(p types.Point) bool
}

type FoodManager struct {
	grid        types.Grid
	rng         *rand.Rand
	maxAttempts int
	color       types.Color
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, maxAttempts int, color types.Color) *FoodManager {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxPlacementAttempts
	}
	return &FoodManager{
		grid:        grid,
		rng:         rng,
		maxAttempts: maxAttempts,
		color:       color,
	}
}

// PlaceRandom draws uniform interior cells until one is free of avoid.
func (fm *FoodManager) PlaceRandom(avoid Occupier) (Food, error) {
	side := fm.grid.Rows - 2
	if side <= 0 {
		return Food{}, errors.Wrapf(ErrPlacementExhausted, "grid of %d rows has no interior", fm.grid.Rows)
	}

	for attempt := 0; attempt < fm.maxAttempts; attempt++ {
		pos := types.Point{
			X: fm.rng.Intn(side) + 1,
			Y: fm.rng.Intn(side) + 1,
		}
		if !avoid.Occupies(pos) {
			return Food{Pos: pos, Color: fm.color}, nil
		}
	}

	return Food{}, errors.Wrapf(ErrPlacementExhausted, "gave up after %d attempts", fm.maxAttempts)
}
