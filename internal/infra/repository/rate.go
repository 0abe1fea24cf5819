package repository

import (
	"context"
	"log/slog"

	"interpreting-payments/internal/domain/rate"
	"interpreting-payments/internal/infra"
	"interpreting-payments/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/mock_$GOFILE -package=repositorymock

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

const findActiveRatesSQL = `
SELECT interpreter_type, scheduling_type, communication_type, interpreting_type, topic,
       qualifier, details_sequence, normal_hours_start, normal_hours_end, details_time,
       paid_by_client_with_gst, paid_by_client_without_gst,
       commission_with_gst, commission_without_gst,
       paid_to_interpreter_with_gst, paid_to_interpreter_without_gst,
       paid_by_client_special, paid_to_interpreter_special
FROM rates
WHERE version = (SELECT MAX(version) FROM rates)
ORDER BY id`

var rateColumns = []string{
	"version",
	"interpreter_type", "scheduling_type", "communication_type", "interpreting_type", "topic",
	"qualifier", "details_sequence", "normal_hours_start", "normal_hours_end", "details_time",
	"paid_by_client_with_gst", "paid_by_client_without_gst",
	"commission_with_gst", "commission_without_gst",
	"paid_to_interpreter_with_gst", "paid_to_interpreter_without_gst",
	"paid_by_client_special", "paid_to_interpreter_special",
}

type rateRow struct {
	InterpreterType             string         `db:"interpreter_type"`
	SchedulingType              string         `db:"scheduling_type"`
	CommunicationType           string         `db:"communication_type"`
	InterpretingType            string         `db:"interpreting_type"`
	Topic                       string         `db:"topic"`
	Qualifier                   string         `db:"qualifier"`
	DetailsSequence             string         `db:"details_sequence"`
	NormalHoursStart            pgtype.Time    `db:"normal_hours_start"`
	NormalHoursEnd              pgtype.Time    `db:"normal_hours_end"`
	DetailsTime                 int32          `db:"details_time"`
	PaidByClientWithGST         pgtype.Numeric `db:"paid_by_client_with_gst"`
	PaidByClientWithoutGST      pgtype.Numeric `db:"paid_by_client_without_gst"`
	CommissionWithGST           pgtype.Numeric `db:"commission_with_gst"`
	CommissionWithoutGST        pgtype.Numeric `db:"commission_without_gst"`
	PaidToInterpreterWithGST    pgtype.Numeric `db:"paid_to_interpreter_with_gst"`
	PaidToInterpreterWithoutGST pgtype.Numeric `db:"paid_to_interpreter_without_gst"`
	PaidByClientSpecial         pgtype.Numeric `db:"paid_by_client_special"`
	PaidToInterpreterSpecial    pgtype.Numeric `db:"paid_to_interpreter_special"`
}

type RateRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewRateRepository(db DBTX, logger *slog.Logger) *RateRepository {
	return &RateRepository{
		db:     db,
		logger: logger,
	}
}

// FindActive loads every row of the latest rate card version.
func (r *RateRepository) FindActive(ctx context.Context) ([]rate.Rate, error) {
	rows, err := r.db.Query(ctx, findActiveRatesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query rates", err)
	}
	dbRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[rateRow])
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan rates", err)
	}
	if len(dbRows) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "no active rate card", nil)
	}

	rates := make([]rate.Rate, 0, len(dbRows))
	for _, row := range dbRows {
		rt, err := toDomainRate(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindInvalidData, "invalid rate row", err)
		}
		rates = append(rates, rt)
	}
	return rates, nil
}

// InsertVersion bulk-loads a rate card version.
func (r *RateRepository) InsertVersion(ctx context.Context, version int, rates []rate.Rate) error {
	src := pgx.CopyFromSlice(len(rates), func(i int) ([]any, error) {
		rt := rates[i]
		return []any{
			int32(version),
			rt.InterpreterType.String(), rt.SchedulingType.String(), rt.CommunicationType.String(),
			rt.InterpretingType.String(), rt.Topic.String(), rt.Qualifier.String(), rt.DetailsSequence.String(),
			pgconv.CivilTimeToPgtype(rt.NormalHoursStart), pgconv.CivilTimeToPgtype(rt.NormalHoursEnd),
			int32(rt.DetailsTime),
			pgconv.DecimalToNumeric(rt.PaidByClientWithGST), pgconv.DecimalToNumeric(rt.PaidByClientWithoutGST),
			pgconv.DecimalToNumeric(rt.CommissionWithGST), pgconv.DecimalToNumeric(rt.CommissionWithoutGST),
			pgconv.DecimalToNumeric(rt.PaidToInterpreterWithGST), pgconv.DecimalToNumeric(rt.PaidToInterpreterWithoutGST),
			pgconv.NullDecimalToNumeric(rt.PaidByClientSpecial), pgconv.NullDecimalToNumeric(rt.PaidToInterpreterSpecial),
		}, nil
	})

	if _, err := r.db.CopyFrom(ctx, pgx.Identifier{"rates"}, rateColumns, src); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert rate card version", err)
	}
	return nil
}

func toDomainRate(row rateRow) (rate.Rate, error) {
	rt := rate.Rate{
		Key: rate.Key{
			InterpreterType:   rate.InterpreterType(row.InterpreterType),
			SchedulingType:    rate.SchedulingType(row.SchedulingType),
			CommunicationType: rate.CommunicationType(row.CommunicationType),
			InterpretingType:  rate.InterpretingType(row.InterpretingType),
			Topic:             rate.Topic(row.Topic),
			Qualifier:         rate.Qualifier(row.Qualifier),
			DetailsSequence:   rate.DetailsSequence(row.DetailsSequence),
		},
		DetailsTime: int(row.DetailsTime),
	}

	var err error
	if rt.NormalHoursStart, err = pgconv.CivilTimeFromPgtype(row.NormalHoursStart); err != nil {
		return rate.Rate{}, err
	}
	if rt.NormalHoursEnd, err = pgconv.CivilTimeFromPgtype(row.NormalHoursEnd); err != nil {
		return rate.Rate{}, err
	}

	amounts := []struct {
		dst *decimal.Decimal
		src pgtype.Numeric
	}{
		{&rt.PaidByClientWithGST, row.PaidByClientWithGST},
		{&rt.PaidByClientWithoutGST, row.PaidByClientWithoutGST},
		{&rt.CommissionWithGST, row.CommissionWithGST},
		{&rt.CommissionWithoutGST, row.CommissionWithoutGST},
		{&rt.PaidToInterpreterWithGST, row.PaidToInterpreterWithGST},
		{&rt.PaidToInterpreterWithoutGST, row.PaidToInterpreterWithoutGST},
	}
	for _, a := range amounts {
		if *a.dst, err = pgconv.DecimalFromNumeric(a.src); err != nil {
			return rate.Rate{}, err
		}
	}

	if rt.PaidByClientSpecial, err = pgconv.NullDecimalFromNumeric(row.PaidByClientSpecial); err != nil {
		return rate.Rate{}, err
	}
	if rt.PaidToInterpreterSpecial, err = pgconv.NullDecimalFromNumeric(row.PaidToInterpreterSpecial); err != nil {
		return rate.Rate{}, err
	}
	return rt, nil
}
