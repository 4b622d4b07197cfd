package postgres

import (
	"context"
	"fmt"

	"bedflow/domain/hospital"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// RecordRepository reads weekly service records from Postgres
type RecordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// recordRow mirrors the service_weeks table. Events are stored as a
// text[] column, so scanning goes through pq.StringArray.
type recordRow struct {
	Service      string         `db:"service"`
	Week         int            `db:"week"`
	Requests     int            `db:"requests"`
	Admitted     int            `db:"admitted"`
	Refused      int            `db:"refused"`
	Beds         int            `db:"beds"`
	Staff        int            `db:"staff"`
	Utilization  float64        `db:"utilization"`
	Morale       float64        `db:"morale"`
	Satisfaction float64        `db:"satisfaction"`
	Events       pq.StringArray `db:"events"`
}

// LoadAll retrieves every service-week row ordered by service and week
func (r *RecordRepository) LoadAll(ctx context.Context) ([]hospital.Record, error) {
	query := `SELECT
		service, week, requests, admitted, refused, beds, staff,
		utilization, morale, satisfaction, COALESCE(events, '{}') AS events
	FROM service_weeks
	ORDER BY service, week`

	var rows []recordRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load service weeks: %w", err)
	}

	records := make([]hospital.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

func (row recordRow) toRecord() hospital.Record {
	var events []hospital.EventType
	for _, ev := range row.Events {
		events = append(events, hospital.EventType(ev))
	}
	return hospital.Record{
		Service:      row.Service,
		Week:         row.Week,
		Requests:     row.Requests,
		Admitted:     row.Admitted,
		Refused:      row.Refused,
		Beds:         row.Beds,
		Staff:        row.Staff,
		Utilization:  row.Utilization,
		Morale:       row.Morale,
		Satisfaction: row.Satisfaction,
		Events:       events,
	}
}
