package api

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/SOJH07/NAVA-Dashboard/academy"
	"github.com/SOJH07/NAVA-Dashboard/facility"
	"github.com/SOJH07/NAVA-Dashboard/liveops"
	"github.com/SOJH07/NAVA-Dashboard/roster"
	"github.com/SOJH07/NAVA-Dashboard/schedule"
)

type handlers struct {
	states    StateSource
	data      *academy.Data
	students  []roster.EnhancedStudent
	overrides *facility.Store
}

func (h *handlers) register(g *echo.Group) {
	g.GET("/state", h.getState)
	g.GET("/live-status", h.getLiveStatus)
	g.GET("/students", h.getStudents)
	g.GET("/kpis", h.getKPIs)
	g.GET("/schedule", h.getSchedule)
	g.GET("/periods", h.getPeriods)
	g.GET("/floor-plan", h.getFloorPlan)
	g.GET("/classrooms", h.getClassrooms)
	g.PUT("/classrooms/:room/out-of-service", h.putOutOfService)
	g.DELETE("/classrooms/:room/out-of-service", h.deleteOutOfService)
}

// getState returns the engine's full derived view. 503 until the first tick
// has completed.
func (h *handlers) getState(c echo.Context) error {
	state, ok := h.states.Current()
	if !ok {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "no derived state yet")
	}
	return c.JSON(http.StatusOK, state)
}

// getLiveStatus serves the live portion of the state in the wire shape that
// remote pollers consume, so one dashboard instance can act as the
// live-status source for another.
func (h *handlers) getLiveStatus(c echo.Context) error {
	state, ok := h.states.Current()
	if !ok {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "no derived state yet")
	}
	return c.JSON(http.StatusOK, liveops.RemotePayload{
		Occupancy:    state.Occupancy,
		LiveStudents: state.LiveStudents,
		LiveClasses:  state.LiveClasses,
	})
}

func (h *handlers) getStudents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.students)
}

// kpiView bundles the headline numbers with per-group sizes.
type kpiView struct {
	roster.KPIs
	TechGroupCounts    map[string]int `json:"techGroupCounts"`
	EnglishGroupCounts map[string]int `json:"englishGroupCounts"`
}

func (h *handlers) getKPIs(c echo.Context) error {
	tech, english := roster.GroupCounts(h.data.Students)
	return c.JSON(http.StatusOK, kpiView{
		KPIs:               roster.ComputeKPIs(h.students),
		TechGroupCounts:    tech,
		EnglishGroupCounts: english,
	})
}

// getSchedule returns the expanded assignment table, optionally filtered by
// ?week=odd|even.
func (h *handlers) getSchedule(c echo.Context) error {
	switch week := c.QueryParam("week"); week {
	case "":
		return c.JSON(http.StatusOK, h.data.Table.All())
	case string(schedule.WeekOdd), string(schedule.WeekEven):
		return c.JSON(http.StatusOK, h.data.Table.ForWeek(schedule.WeekType(week)))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "week must be odd or even")
	}
}

func (h *handlers) getPeriods(c echo.Context) error {
	return c.JSON(http.StatusOK, h.data.DailyPeriods)
}

func (h *handlers) getFloorPlan(c echo.Context) error {
	return c.JSON(http.StatusOK, h.data.FloorPlan)
}

// classroomView is one room with its live availability. An out-of-service
// override always wins over derived occupancy.
type classroomView struct {
	Name     string            `json:"name"`
	Type     facility.RoomType `json:"type"`
	Status   string            `json:"status"`
	Occupant *liveops.Occupant `json:"occupant,omitempty"`
	Reason   string            `json:"reason,omitempty"`
}

func (h *handlers) getClassrooms(c echo.Context) error {
	var occupancy liveops.OccupancyData
	if state, ok := h.states.Current(); ok {
		occupancy = state.Occupancy
	}

	// Occupancy is keyed by timetable room id, the floor plan by display name.
	byDisplay := make(map[string]liveops.Occupant, len(occupancy))
	for classroom, occupant := range occupancy {
		byDisplay[displayRoomName(classroom)] = occupant
	}

	views := make([]classroomView, 0, len(h.data.FloorPlan))
	for _, item := range h.data.FloorPlan {
		if !item.Teachable() {
			continue
		}
		view := classroomView{Name: item.Name, Type: item.Type, Status: "vacant"}
		if override, ok := h.overrides.Override(item.Name); ok {
			view.Status = override.Status
			view.Reason = override.Reason
		} else if occupant, ok := byDisplay[item.Name]; ok {
			view.Status = "occupied"
			view.Occupant = &occupant
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })

	return c.JSON(http.StatusOK, views)
}

type outOfServiceRequest struct {
	Reason string `json:"reason"`
}

func (h *handlers) putOutOfService(c echo.Context) error {
	room := c.Param("room")
	if !h.roomExists(room) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown room")
	}

	var req outOfServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	h.overrides.SetOutOfService(room, req.Reason)
	return c.JSON(http.StatusOK, facility.RoomStatus{Status: facility.StatusOutOfService, Reason: req.Reason})
}

func (h *handlers) deleteOutOfService(c echo.Context) error {
	room := c.Param("room")
	if !h.roomExists(room) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown room")
	}

	h.overrides.SetAvailable(room)
	return c.NoContent(http.StatusNoContent)
}

func (h *handlers) roomExists(room string) bool {
	for _, item := range h.data.FloorPlan {
		if item.Teachable() && item.Name == room {
			return true
		}
	}
	return false
}
