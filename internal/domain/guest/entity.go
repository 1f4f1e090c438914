package guest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName  = errors.New("guest name is required")
	ErrInvalidPhone = errors.New("guest phone is required")
)

// Guest identity is shared across tenants by phone match; stay history is
// tenant-scoped and maintained by the booking lifecycle (see TenantStats).
type Guest struct {
	id        uuid.UUID
	fullName  string
	phone     string
	email     string
	idNumber  string
	createdAt time.Time
	updatedAt time.Time
}

func NewGuest(fullName, phone, email, idNumber string) (*Guest, error) {
	fullName = strings.TrimSpace(fullName)
	phone = strings.TrimSpace(phone)
	if fullName == "" {
		return nil, ErrInvalidName
	}
	if phone == "" {
		return nil, ErrInvalidPhone
	}

	return &Guest{
		id:       uuid.New(),
		fullName: fullName,
		phone:    phone,
		email:    strings.TrimSpace(email),
		idNumber: strings.TrimSpace(idNumber),
	}, nil
}

func ReconstructGuest(
	id uuid.UUID,
	fullName, phone, email, idNumber string,
	createdAt, updatedAt time.Time,
) *Guest {
	return &Guest{
		id:        id,
		fullName:  fullName,
		phone:     phone,
		email:     email,
		idNumber:  idNumber,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) FullName() string     { return g.fullName }
func (g *Guest) Phone() string        { return g.phone }
func (g *Guest) Email() string        { return g.email }
func (g *Guest) IDNumber() string     { return g.idNumber }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time { return g.updatedAt }

// TenantStats is the per-tenant stay history aggregate, updated
// transactionally alongside booking mutations.
type TenantStats struct {
	TenantID      uuid.UUID
	GuestID       uuid.UUID
	TotalStays    int
	Cancellations int
	SpentCents    int64
	FirstStay     *time.Time
	LastStay      *time.Time
}
