package academy

import "github.com/SOJH07/NAVA-Dashboard/facility"

// floorPlanFixture lays out the second floor as a two-column grid of
// classrooms, labs and offices.
var floorPlanFixture = []facility.FloorPlanItem{
	{Name: "C-218", Type: facility.RoomClassroom, GridColumn: "1", GridRow: "1"},
	{Name: "C-217", Type: facility.RoomClassroom, GridColumn: "1", GridRow: "2"},
	{Name: "C-216", Type: facility.RoomClassroom, GridColumn: "1", GridRow: "3"},
	{Name: "C-215", Type: facility.RoomClassroom, GridColumn: "1", GridRow: "4"},
	{Name: "C-213", Type: facility.RoomClassroom, GridColumn: "1", GridRow: "5"},
	{Name: "C-212", Type: facility.RoomClassroom, GridColumn: "1", GridRow: "6"},
	{Name: "C-211", Type: facility.RoomClassroom, GridColumn: "1", GridRow: "7"},
	{Name: "C-210", Type: facility.RoomClassroom, GridColumn: "1", GridRow: "8"},
	{Name: "C-209", Type: facility.RoomClassroom, GridColumn: "1", GridRow: "9"},

	{Name: "Technical Trainers", Type: facility.RoomStatic, GridColumn: "1 / span 2", GridRow: "10"},
	{Name: "Dean Office", Type: facility.RoomStatic, GridColumn: "1", GridRow: "11"},
	{Name: "TUV Office", Type: facility.RoomStatic, GridColumn: "2", GridRow: "11"},

	{Name: "C-208", Type: facility.RoomClassroom, GridColumn: "2", GridRow: "1"},
	{Name: "C-207", Type: facility.RoomClassroom, GridColumn: "2", GridRow: "2"},
	{Name: "C-206", Type: facility.RoomClassroom, GridColumn: "2", GridRow: "3"},
	{Name: "C-205", Type: facility.RoomClassroom, GridColumn: "2", GridRow: "4"},
	{Name: "C-204", Type: facility.RoomClassroom, GridColumn: "2", GridRow: "5"},
	{Name: "C-202", Type: facility.RoomClassroom, GridColumn: "2", GridRow: "6"},
	{Name: "C-201", Type: facility.RoomClassroom, GridColumn: "2", GridRow: "7"},
	{Name: "WS-11", Type: facility.RoomLab, GridColumn: "2", GridRow: "8"},
	{Name: "WS-06", Type: facility.RoomLab, GridColumn: "2", GridRow: "9"},
}
