package manager

// Status is the game's position in the Playing -> Won | Lost state machine.
type Status int

const (
	Playing Status = iota
	Lost
	Won
)

func (s Status) String() string {
	switch s {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "playing"
	}
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == Lost || s == Won
}

// StateManager owns the status of one game. Won and Lost are absorbing.
type StateManager struct {
	status Status
	cause  CollisionType
}

func NewStateManager() *StateManager {
	return &StateManager{status: Playing, cause: NoCollision}
}

func (sm *StateManager) Status() Status {
	return sm.status
}

// Cause is the collision that lost the game, NoCollision otherwise.
func (sm *StateManager) Cause() CollisionType {
	return sm.cause
}

// Lose moves a playing game to Lost. It returns false if the game was already over.
func (sm *StateManager) Lose(cause CollisionType) bool {
	if sm.status.Terminal() {
		return false
	}
	sm.status = Lost
	sm.cause = cause
	return true
}

// Win moves a playing game to Won. It returns false if the game was already over.
func (sm *StateManager) Win() bool {
	if sm.status.Terminal() {
		return false
	}
	sm.status = Won
	return true
}
