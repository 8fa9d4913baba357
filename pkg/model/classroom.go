package model

type RoomID string

type Classroom struct {
	ID          RoomID `csv:"classroom_id"`
	Capacity    int    `csv:"capacity"`
	IsAvailable bool   `csv:"is_available"`
	IsSpecial   bool   `csv:"is_special"`
	SpecialType string `csv:"special_type"`
}

// Matches reports whether the classroom satisfies a special room requirement,
// either by exact name or by special type tag.
func (c *Classroom) Matches(requirement string) bool {
	return string(c.ID) == requirement || (c.SpecialType != "" && c.SpecialType == requirement)
}

// Proximity is one undirected edge of the room proximity graph. Distance and
// adjacency only rank cluster candidates, they are never hard constraints.
type Proximity struct {
	PrimaryRoom RoomID  `csv:"primary_classroom"`
	NearbyRoom  RoomID  `csv:"nearby_classroom"`
	Distance    float64 `csv:"distance"`
	IsAdjacent  bool    `csv:"is_adjacent"`
}
