package room

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusReserved    Status = "reserved"
	StatusCleaning    Status = "cleaning"
	StatusMaintenance Status = "maintenance"
	StatusBlocked     Status = "blocked"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved,
		StatusCleaning, StatusMaintenance, StatusBlocked:
		return true
	default:
		return false
	}
}

// Sellable reports whether the room can take new bookings. Occupied and
// reserved rooms stay sellable for non-overlapping date ranges; the conflict
// test runs against bookings, not room status.
func (s Status) Sellable() bool {
	switch s {
	case StatusMaintenance, StatusBlocked:
		return false
	default:
		return true
	}
}

// RequiresBooking reports whether the status implies a current booking
// reference on the room.
func (s Status) RequiresBooking() bool {
	return s == StatusOccupied || s == StatusReserved
}
