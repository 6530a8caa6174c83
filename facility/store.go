package facility

import "sync"

const StatusOutOfService = "out-of-service"

// RoomStatus is a manual availability override for one room.
type RoomStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Store holds the operator-managed room overrides. Overrides are written only
// by explicit operator action and read by the presentation layer as an overlay
// on top of the derived occupancy: an out-of-service room is never reported as
// occupied or vacant.
type Store struct {
	lock  sync.RWMutex
	rooms map[string]RoomStatus
}

func NewStore() *Store {
	return &Store{
		rooms: make(map[string]RoomStatus),
	}
}

// SetOutOfService marks the room unavailable with the given reason.
func (s *Store) SetOutOfService(room, reason string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.rooms[room] = RoomStatus{Status: StatusOutOfService, Reason: reason}
}

// SetAvailable clears an out-of-service override. A room that carries no
// override is left untouched.
func (s *Store) SetAvailable(room string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if status, ok := s.rooms[room]; ok && status.Status == StatusOutOfService {
		delete(s.rooms, room)
	}
}

// Override returns the room's override, if any.
func (s *Store) Override(room string) (RoomStatus, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	status, ok := s.rooms[room]
	return status, ok
}

// Overrides returns a copy of all current overrides keyed by room name.
func (s *Store) Overrides() map[string]RoomStatus {
	s.lock.RLock()
	defer s.lock.RUnlock()

	copied := make(map[string]RoomStatus, len(s.rooms))
	for room, status := range s.rooms {
		copied[room] = status
	}
	return copied
}
