package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// CollisionType represents what ended a game.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks the snake's head against the wall ring first, then
// against the rest of its body.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.IsWallCollision(snake.Head()) {
		return WallCollision
	}
	if snake.HasSelfCollision() {
		return SelfCollision
	}
	return NoCollision
}

// IsWallCollision reports whether pos is on the border ring or off the grid.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return cm.grid.IsBorder(pos)
}

// IsBoardFull reports whether the snake covers every interior cell.
func (cm *CollisionManager) IsBoardFull(snake *entity.Snake) bool {
	return snake.Len() >= cm.grid.InteriorCells()
}

// IsFoodCollision checks if the head landed on the food.
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food Food) bool {
	return snake.Head() == food.Pos
}
