package booking

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
)

// StayPeriod is a half-open [checkIn, checkOut) range of whole days.
// Boundary dates are normalized to midnight UTC; one stay's checkout equaling
// another's check-in is not a conflict.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut, today time.Time) (StayPeriod, error) {
	checkIn = TruncateToDay(checkIn)
	checkOut = TruncateToDay(checkOut)
	today = TruncateToDay(today)

	if !checkIn.Before(checkOut) {
		return StayPeriod{}, ErrInvalidDateRange
	}
	if checkIn.Before(today) {
		return StayPeriod{}, ErrInvalidDateRange
	}

	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStayPeriod rehydrates a stored period without the not-in-the-past
// check; bookings legitimately outlive their check-in date.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: TruncateToDay(checkIn), checkOut: TruncateToDay(checkOut)}
}

func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// Overlaps is the canonical conflict test: existingCheckIn < requestedCheckOut
// AND existingCheckOut > requestedCheckIn.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && p.checkOut.After(other.checkIn)
}

func (p StayPeriod) Contains(day time.Time) bool {
	day = TruncateToDay(day)
	return !day.Before(p.checkIn) && day.Before(p.checkOut)
}

// WeekendCheckIn reports whether the check-in weekday falls on a weekend.
// The nightly rate for the whole stay follows the check-in day alone, even
// across a weekend boundary.
func (p StayPeriod) WeekendCheckIn() bool {
	wd := p.checkIn.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (p StayPeriod) HoursUntilCheckIn(now time.Time) float64 {
	return p.checkIn.Sub(now).Hours()
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format("2006-01-02"), p.checkOut.Format("2006-01-02"))
}

// Money is an integer amount of cents in the tenant's currency. No
// cross-currency arithmetic happens in this core.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegativeMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Units() float64 { return float64(m.cents) / 100.0 }

func (m Money) IsZero() bool     { return m.cents == 0 }
func (m Money) IsPositive() bool { return m.cents > 0 }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// FloorZero clamps a negative amount to zero.
func (m Money) FloorZero() Money {
	if m.cents < 0 {
		return Money{}
	}
	return m
}

func (m Money) MulInt(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// MulRate multiplies by a fractional rate, rounding half-up to the cent.
func (m Money) MulRate(rate float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * rate))}
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// Money serializes as a bare integer of cents.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(m.cents, 10)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	cents, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	m.cents = cents
	return nil
}
