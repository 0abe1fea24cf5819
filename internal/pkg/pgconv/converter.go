package pgconv

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidNumericValue = errors.New("invalid numeric value in pgtype.Numeric")
	ErrInvalidTimeValue    = errors.New("invalid time value in pgtype.Time")
)

func DecimalFromNumeric(pn pgtype.Numeric) (decimal.Decimal, error) {
	if !pn.Valid || pn.NaN || pn.InfinityModifier != pgtype.Finite || pn.Int == nil {
		return decimal.Decimal{}, ErrInvalidNumericValue
	}
	return decimal.NewFromBigInt(pn.Int, pn.Exp), nil
}

func NullDecimalFromNumeric(pn pgtype.Numeric) (decimal.NullDecimal, error) {
	if !pn.Valid {
		return decimal.NullDecimal{}, nil
	}
	d, err := DecimalFromNumeric(pn)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func NullDecimalToNumeric(d decimal.NullDecimal) pgtype.Numeric {
	if !d.Valid {
		return pgtype.Numeric{Valid: false}
	}
	return DecimalToNumeric(d.Decimal)
}

// CivilTimeFromPgtype converts a Postgres time (microseconds since midnight) to a time of day.
func CivilTimeFromPgtype(pt pgtype.Time) (civil.Time, error) {
	if !pt.Valid || pt.Microseconds < 0 || pt.Microseconds >= int64(24*time.Hour/time.Microsecond) {
		return civil.Time{}, ErrInvalidTimeValue
	}
	d := time.Duration(pt.Microseconds) * time.Microsecond
	return civil.Time{
		Hour:       int(d / time.Hour),
		Minute:     int(d % time.Hour / time.Minute),
		Second:     int(d % time.Minute / time.Second),
		Nanosecond: int(d % time.Second),
	}, nil
}

func CivilTimeToPgtype(t civil.Time) pgtype.Time {
	d := time.Duration(t.Hour)*time.Hour +
		time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second +
		time.Duration(t.Nanosecond)
	return pgtype.Time{Microseconds: int64(d / time.Microsecond), Valid: true}
}
