package repository

import (
	"context"
	"time"

	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"

	"github.com/google/uuid"
)

type RoomTypeRepository struct {
	db db.DBTX
}

func NewRoomTypeRepository(dbtx db.DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{db: dbtx}
}

const roomTypeColumns = `
	id, tenant_id, name, code,
	max_adults, max_children, max_occupancy, base_occupancy,
	base_rate_cents, weekend_rate_cents, extra_adult_cents, extra_child_cents,
	active, created_at, updated_at`

func (r *RoomTypeRepository) Create(ctx context.Context, rt *room.RoomType) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO room_types (`+roomTypeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())`,
		rt.ID(), rt.TenantID(), rt.Name(), rt.Code(),
		rt.MaxAdults(), rt.MaxChildren(), rt.MaxOccupancy(), rt.BaseOccupancy(),
		rt.BaseRateCents(), rt.WeekendRateCents(), rt.ExtraAdultCents(), rt.ExtraChildCents(),
		rt.Active(),
	)
	if err != nil {
		return classify("failed to create room type", err)
	}
	return nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *room.RoomType) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE room_types
		SET name = $3,
		    base_rate_cents = $4, weekend_rate_cents = $5,
		    extra_adult_cents = $6, extra_child_cents = $7,
		    active = $8, updated_at = now()
		WHERE id = $1 AND tenant_id = $2`,
		rt.ID(), rt.TenantID(),
		rt.Name(),
		rt.BaseRateCents(), rt.WeekendRateCents(),
		rt.ExtraAdultCents(), rt.ExtraChildCents(),
		rt.Active(),
	)
	if err != nil {
		return classify("failed to update room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*room.RoomType, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+roomTypeColumns+`
		FROM room_types
		WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	)
	rt, err := scanRoomType(row)
	if err != nil {
		return nil, classify("failed to find room type", err)
	}
	return rt, nil
}

func scanRoomType(row rowScanner) (*room.RoomType, error) {
	var (
		id, tenantID                                  uuid.UUID
		name, code                                    string
		maxAdults, maxChildren, maxOccupancy, baseOcc int
		baseRate, weekendRate, extraAdult, extraChild int64
		active                                        bool
		createdAt, updatedAt                          time.Time
	)
	err := row.Scan(
		&id, &tenantID, &name, &code,
		&maxAdults, &maxChildren, &maxOccupancy, &baseOcc,
		&baseRate, &weekendRate, &extraAdult, &extraChild,
		&active, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	return room.ReconstructRoomType(
		id, tenantID, name, code,
		maxAdults, maxChildren, maxOccupancy, baseOcc,
		baseRate, weekendRate, extraAdult, extraChild,
		active, createdAt, updatedAt,
	), nil
}
