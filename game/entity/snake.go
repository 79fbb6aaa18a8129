package entity

import (
	"snake-classic/game/types"

	"github.com/pkg/errors"
)

// Segment is one occupied cell of the snake. Segment 0 is the head.
type Segment struct {
	Pos   types.Point
	Color types.Color
}

type Snake struct {
	segments  []Segment
	heading   types.Direction
	headColor types.Color
	bodyColor types.Color

	// lastVacated is the cell the tail held before the latest Advance.
	// Grow appends there, so it is only meaningful right after Advance.
	lastVacated types.Point
}

func NewSnake(start types.Point, heading types.Direction, headColor, bodyColor types.Color) *Snake {
	return &Snake{
		segments:    []Segment{{Pos: start, Color: headColor}},
		heading:     heading,
		headColor:   headColor,
		bodyColor:   bodyColor,
		lastVacated: start,
	}
}

// NewSnakeFromBody lays out a snake on explicit cells, head first.
func NewSnakeFromBody(body []types.Point, heading types.Direction, headColor, bodyColor types.Color) (*Snake, error) {
	if len(body) == 0 {
		return nil, errors.New("snake body must have at least one segment")
	}
	if !heading.Valid() {
		return nil, errors.Errorf("invalid heading %v", heading)
	}

	segments := make([]Segment, len(body))
	for i, p := range body {
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		segments[i] = Segment{Pos: p, Color: color}
	}

	return &Snake{
		segments:    segments,
		heading:     heading,
		headColor:   headColor,
		bodyColor:   bodyColor,
		lastVacated: body[len(body)-1],
	}, nil
}

// Advance moves the snake one cell along its heading. Each segment takes the
// position of its predecessor, copying from the tail forwards so no position
// is overwritten before it has been read.
func (s *Snake) Advance() {
	s.lastVacated = s.segments[len(s.segments)-1].Pos

	for i := len(s.segments) - 1; i > 0; i-- {
		s.segments[i].Pos = s.segments[i-1].Pos
	}
	s.segments[0].Pos = s.segments[0].Pos.Add(s.heading.ToPoint())
}

// Grow appends a body segment on the cell the tail just left.
func (s *Snake) Grow() {
	s.segments = append(s.segments, Segment{Pos: s.lastVacated, Color: s.bodyColor})
}

// SetHeading changes direction unless d would reverse the snake onto its own
// neck. Rejected changes are silently ignored; the result reports acceptance.
func (s *Snake) SetHeading(d types.Direction) bool {
	if !d.Valid() || d == s.heading.Opposite() {
		return false
	}
	s.heading = d
	return true
}

// HasSelfCollision reports whether any non-head segment shares the head's cell.
func (s *Snake) HasSelfCollision() bool {
	head := s.segments[0].Pos
	for _, seg := range s.segments[1:] {
		if seg.Pos == head {
			return true
		}
	}
	return false
}

func (s *Snake) Occupies(p types.Point) bool {
	for _, seg := range s.segments {
		if seg.Pos == p {
			return true
		}
	}
	return false
}

func (s *Snake) Head() types.Point {
	return s.segments[0].Pos
}

func (s *Snake) Heading() types.Direction {
	return s.heading
}

func (s *Snake) LastVacated() types.Point {
	return s.lastVacated
}

// Len is the number of segments, which is also the score.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Body returns the occupied cells, head first.
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, len(s.segments))
	for i, seg := range s.segments {
		out[i] = seg.Pos
	}
	return out
}
