package manager

import (
	"testing"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var (
	headColor  = types.Color{R: 0, G: 255, B: 0}
	bodyColor  = types.Color{R: 0, G: 150, B: 0}
	snackColor = types.Color{R: 255, G: 0, B: 0}
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// cellSet is an Occupier over an explicit set of cells.
type cellSet map[types.Point]bool

func (c cellSet) Occupies(p types.Point) bool { return c[p] }

func TestPlaceRandomStaysInsideAndAvoidsSnake(t *testing.T) {
	grid := types.Grid{Rows: 6}
	fm := NewFoodManager(grid, newRand(42), 0, snackColor)

	snake, err := entity.NewSnakeFromBody(
		[]types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}},
		types.Left, headColor, bodyColor)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 500; i++ {
		food, err := fm.PlaceRandom(snake)
		if err != nil {
			t.Fatalf("PlaceRandom: %v", err)
		}
		if food.Pos.X < 1 || food.Pos.X > grid.Rows-2 || food.Pos.Y < 1 || food.Pos.Y > grid.Rows-2 {
			t.Fatalf("food at %v outside interior", food.Pos)
		}
		if snake.Occupies(food.Pos) {
			t.Fatalf("food at %v overlaps snake", food.Pos)
		}
		if food.Color != snackColor {
			t.Fatalf("food color = %v, want snack color", food.Color)
		}
	}
}

func TestPlaceRandomFindsLastFreeCell(t *testing.T) {
	grid := types.Grid{Rows: 5}
	occupied := cellSet{}
	for x := 1; x <= 3; x++ {
		for y := 1; y <= 3; y++ {
			occupied[types.Point{X: x, Y: y}] = true
		}
	}
	free := types.Point{X: 3, Y: 2}
	delete(occupied, free)

	fm := NewFoodManager(grid, newRand(7), 0, snackColor)
	food, err := fm.PlaceRandom(occupied)
	if err != nil {
		t.Fatalf("PlaceRandom: %v", err)
	}
	if food.Pos != free {
		t.Errorf("food at %v, want %v", food.Pos, free)
	}
}

func TestPlaceRandomExhausted(t *testing.T) {
	grid := types.Grid{Rows: 4}
	full := cellSet{{X: 1, Y: 1}: true, {X: 1, Y: 2}: true, {X: 2, Y: 1}: true, {X: 2, Y: 2}: true}

	fm := NewFoodManager(grid, newRand(1), 100, snackColor)
	_, err := fm.PlaceRandom(full)
	if !errors.Is(err, ErrPlacementExhausted) {
		t.Fatalf("err = %v, want ErrPlacementExhausted", err)
	}
}

func TestPlaceRandomNoInterior(t *testing.T) {
	fm := NewFoodManager(types.Grid{Rows: 2}, newRand(1), 10, snackColor)
	_, err := fm.PlaceRandom(cellSet{})
	if !errors.Is(err, ErrPlacementExhausted) {
		t.Fatalf("err = %v, want ErrPlacementExhausted", err)
	}
}

func TestPlaceRandomDeterministicForSeed(t *testing.T) {
	grid := types.Grid{Rows: 20}
	a := NewFoodManager(grid, newRand(99), 0, snackColor)
	b := NewFoodManager(grid, newRand(99), 0, snackColor)
	for i := 0; i < 20; i++ {
		fa, _ := a.PlaceRandom(cellSet{})
		fb, _ := b.PlaceRandom(cellSet{})
		if fa != fb {
			t.Fatalf("draw %d differs: %v vs %v", i, fa.Pos, fb.Pos)
		}
	}
}

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Rows: 5})

	tests := []struct {
		name string
		body []types.Point
		want CollisionType
	}{
		{"interior", []types.Point{{X: 2, Y: 2}}, NoCollision},
		{"left wall", []types.Point{{X: 0, Y: 2}}, WallCollision},
		{"right wall", []types.Point{{X: 4, Y: 2}}, WallCollision},
		{"outside", []types.Point{{X: -1, Y: 2}}, WallCollision},
		{"self", []types.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 2}}, SelfCollision},
		{"wall wins over self", []types.Point{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}, WallCollision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := entity.NewSnakeFromBody(tt.body, types.Up, headColor, bodyColor)
			if err != nil {
				t.Fatal(err)
			}
			if got := cm.CheckCollision(s); got != tt.want {
				t.Errorf("CheckCollision = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsBoardFull(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Rows: 4})

	body := []types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	s, _ := entity.NewSnakeFromBody(body, types.Up, headColor, bodyColor)
	if cm.IsBoardFull(s) {
		t.Error("3 of 4 cells reported full")
	}

	s, _ = entity.NewSnakeFromBody(append(body, types.Point{X: 1, Y: 2}), types.Up, headColor, bodyColor)
	if !cm.IsBoardFull(s) {
		t.Error("4 of 4 cells not reported full")
	}
}

func TestStateManagerTerminalStatesAbsorb(t *testing.T) {
	sm := NewStateManager()
	if sm.Status() != Playing {
		t.Fatalf("initial status = %v", sm.Status())
	}

	if !sm.Lose(SelfCollision) {
		t.Fatal("Lose from Playing rejected")
	}
	if sm.Win() {
		t.Error("Win accepted after Lost")
	}
	if sm.Lose(WallCollision) {
		t.Error("second Lose accepted")
	}
	if sm.Status() != Lost || sm.Cause() != SelfCollision {
		t.Errorf("status = %v cause = %v", sm.Status(), sm.Cause())
	}

	sm = NewStateManager()
	sm.Win()
	if sm.Lose(WallCollision) || sm.Status() != Won {
		t.Errorf("Won was not absorbing: %v", sm.Status())
	}
}
