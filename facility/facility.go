// Package facility describes the academy floor and tracks manual room
// availability overrides.
package facility

// RoomType categorises an item on the floor plan.
type RoomType string

const (
	RoomClassroom RoomType = "classroom"
	RoomLab       RoomType = "lab"
	RoomStatic    RoomType = "static" // offices and other non-teaching spaces
)

// FloorPlanItem is one cell of the floor-plan grid.
type FloorPlanItem struct {
	Name       string   `json:"name"`
	Type       RoomType `json:"type"`
	GridColumn string   `json:"gridColumn"`
	GridRow    string   `json:"gridRow"`
}

// Teachable returns true for rooms that can host a class.
func (i FloorPlanItem) Teachable() bool {
	return i.Type == RoomClassroom || i.Type == RoomLab
}
