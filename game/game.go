package game

import (
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Settings are the parts of the configuration the game logic needs.
type Settings struct {
	Rows                 int
	HeadColor            types.Color
	BodyColor            types.Color
	SnackColor           types.Color
	MaxPlacementAttempts int
}

// TickResult describes what a single Tick did.
type TickResult struct {
	Ate    bool
	Status manager.Status
	Cause  manager.CollisionType
	Score  int
}

type Game struct {
	UUID      string
	Grid      types.Grid
	Steps     int
	StartTime time.Time

	settings     Settings
	snake        *entity.Snake
	food         manager.Food
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame places a length-one snake in the middle of the grid heading right
// and drops the first snack.
func NewGame(settings Settings, rng *rand.Rand) (*Game, error) {
	grid := types.Grid{Rows: settings.Rows}
	if grid.InteriorCells() == 0 {
		return nil, errors.Errorf("grid of %d rows has no playable cells", settings.Rows)
	}

	g := &Game{
		Grid:         grid,
		settings:     settings,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, rng, settings.MaxPlacementAttempts, settings.SnackColor),
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewGameWithSnake starts a game from an arbitrary snake and food position.
func NewGameWithSnake(settings Settings, rng *rand.Rand, snake *entity.Snake, food types.Point) *Game {
	grid := types.Grid{Rows: settings.Rows}
	return &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		StartTime:    time.Now(),
		settings:     settings,
		snake:        snake,
		food:         manager.Food{Pos: food, Color: settings.SnackColor},
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, rng, settings.MaxPlacementAttempts, settings.SnackColor),
		stateMgr:     manager.NewStateManager(),
	}
}

// Reset replaces the snake and food and starts a new session.
func (g *Game) Reset() error {
	snake := entity.NewSnake(g.Grid.Center(), types.Right, g.settings.HeadColor, g.settings.BodyColor)
	food, err := g.foodMgr.PlaceRandom(snake)
	if err != nil {
		return errors.Wrap(err, "placing first snack")
	}

	g.UUID = uuid.New().String()
	g.StartTime = time.Now()
	g.Steps = 0
	g.snake = snake
	g.food = food
	g.stateMgr = manager.NewStateManager()
	return nil
}

// Tick applies the queued direction events in order, moves the snake, feeds
// it if it reached the snack and then resolves loss and win in that order.
// A finished game is not advanced.
func (g *Game) Tick(events []types.Direction) (TickResult, error) {
	if g.stateMgr.Status().Terminal() {
		return g.result(false), nil
	}

	for _, d := range events {
		g.snake.SetHeading(d)
	}

	g.Steps++
	g.snake.Advance()

	ate := false
	if g.collisionMgr.IsFoodCollision(g.snake, g.food) {
		ate = true
		g.snake.Grow()
	}
	// A full board has no free cell to respawn into, so the respawn is skipped
	// there and the win check below ends the game. Any other failed respawn is fatal.
	if ate && !g.collisionMgr.IsBoardFull(g.snake) {
		food, err := g.foodMgr.PlaceRandom(g.snake)
		if err != nil {
			return g.result(ate), errors.Wrapf(err, "respawning snack at step %d", g.Steps)
		}
		g.food = food
	}

	if cause := g.collisionMgr.CheckCollision(g.snake); cause != manager.NoCollision {
		g.stateMgr.Lose(cause)
	} else if g.collisionMgr.IsBoardFull(g.snake) {
		g.stateMgr.Win()
	}

	return g.result(ate), nil
}

func (g *Game) result(ate bool) TickResult {
	return TickResult{
		Ate:    ate,
		Status: g.stateMgr.Status(),
		Cause:  g.stateMgr.Cause(),
		Score:  g.snake.Len(),
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() manager.Food {
	return g.food
}

func (g *Game) Status() manager.Status {
	return g.stateMgr.Status()
}

func (g *Game) Cause() manager.CollisionType {
	return g.stateMgr.Cause()
}

// Score is the snake's length.
func (g *Game) Score() int {
	return g.snake.Len()
}

// ElapsedTime returns how long the current session has been running.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}
