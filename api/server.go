// Package api exposes the dashboard's HTTP surface: the static academy
// datasets, the live derived state, and the classroom override controls.
package api

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/SOJH07/NAVA-Dashboard/academy"
	"github.com/SOJH07/NAVA-Dashboard/facility"
	"github.com/SOJH07/NAVA-Dashboard/liveops"
	"github.com/SOJH07/NAVA-Dashboard/roster"
)

// StateSource supplies the most recent derived state. ok is false until the
// engine has ticked at least once.
type StateSource interface {
	Current() (liveops.State, bool)
}

type Server struct {
	addr   string
	router *echo.Echo
}

func NewServer(addr string, states StateSource, data *academy.Data, students []roster.EnhancedStudent, overrides *facility.Store) *Server {
	s := &Server{
		addr:   addr,
		router: echo.New(),
	}
	s.router.HideBanner = true
	s.router.Use(middleware.Recover())

	h := &handlers{
		states:    states,
		data:      data,
		students:  students,
		overrides: overrides,
	}
	h.register(s.router.Group("/api"))

	return s
}

func (s *Server) Start() error {
	return s.router.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.router.Shutdown(ctx)
}

// displayRoomName maps a timetable room id onto its floor-plan name:
// "2.08" -> "C-208", workshop ids like "WS-06" are already floor-plan names.
func displayRoomName(classroom string) string {
	if strings.Contains(classroom, ".") {
		return "C-" + strings.ReplaceAll(classroom, ".", "")
	}
	return classroom
}
