package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rgoodwin/finewarden/internal/citation"
)

const pgUniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectCitationColumns = `
	c.id, c.number, c.driver_id, c.vehicle_id, c.officer_id, c.violation_code,
	c.violation_at, c.issued_at, c.location, c.fine_amount, c.notes, c.status,
	c.created_at, c.updated_at
`

// scanCitation reads a citation row in selectCitationColumns order.
func scanCitation(s scanner, extra ...any) (*citation.Citation, error) {
	var c citation.Citation

	var statusStr string

	var notes sql.NullString

	dest := []any{
		&c.ID, &c.Number, &c.DriverID, &c.VehicleID, &c.OfficerID, &c.ViolationCode,
		&c.ViolationAt, &c.IssuedAt, &c.Location, &c.FineAmount, &notes, &statusStr,
		&c.CreatedAt, &c.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	c.Status = citation.Status(statusStr)
	c.Notes = notes.String

	return &c, nil
}

func (s *Store) GetDetail(ctx context.Context, number string) (*citation.Detail, error) {
	query := `SELECT ` + selectCitationColumns + `,
		COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.citation_id = c.id), 0)
		FROM citations c
		WHERE c.number = $1`

	var totalPaid int64

	c, err := scanCitation(s.db.QueryRowContext(ctx, query, number), &totalPaid)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, citation.ErrCitationNotFound
		}

		return nil, fmt.Errorf("getting citation: %w", err)
	}

	detail := &citation.Detail{Citation: *c, TotalPaid: totalPaid}

	if err := s.loadPayments(ctx, detail); err != nil {
		return nil, err
	}

	if err := s.loadPoints(ctx, detail); err != nil {
		return nil, err
	}

	if err := s.loadWarrants(ctx, detail); err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *Store) loadPayments(ctx context.Context, detail *citation.Detail) error {
	query := `
		SELECT id, citation_id, amount, method, reference, paid_at, created_at
		FROM payments
		WHERE citation_id = $1
		ORDER BY paid_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, detail.Citation.ID)
	if err != nil {
		return fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p citation.Payment

		var methodStr string

		var ref sql.NullString

		if err := rows.Scan(&p.ID, &p.CitationID, &p.Amount, &methodStr, &ref, &p.PaidAt, &p.CreatedAt); err != nil {
			return fmt.Errorf("scanning payment: %w", err)
		}

		p.Method = citation.Method(methodStr)
		p.Reference = ref.String

		detail.Payments = append(detail.Payments, p)
	}

	return rows.Err()
}

func (s *Store) loadPoints(ctx context.Context, detail *citation.Detail) error {
	query := `
		SELECT id, driver_id, citation_id, points, effective_at, expires_at
		FROM point_grants
		WHERE citation_id = $1
	`

	rows, err := s.db.QueryContext(ctx, query, detail.Citation.ID)
	if err != nil {
		return fmt.Errorf("listing point grants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g citation.PointGrant

		if err := rows.Scan(&g.ID, &g.DriverID, &g.CitationID, &g.Points, &g.EffectiveAt, &g.ExpiresAt); err != nil {
			return fmt.Errorf("scanning point grant: %w", err)
		}

		detail.Points = append(detail.Points, g)
	}

	return rows.Err()
}

func (s *Store) loadWarrants(ctx context.Context, detail *citation.Detail) error {
	query := `
		SELECT id, citation_id, issued_at, amount_due, status, created_at
		FROM warrants
		WHERE citation_id = $1
		ORDER BY issued_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, detail.Citation.ID)
	if err != nil {
		return fmt.Errorf("listing warrants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w citation.Warrant

		var statusStr string

		if err := rows.Scan(&w.ID, &w.CitationID, &w.IssuedAt, &w.AmountDue, &statusStr, &w.CreatedAt); err != nil {
			return fmt.Errorf("scanning warrant: %w", err)
		}

		w.Status = citation.WarrantStatus(statusStr)

		detail.Warrants = append(detail.Warrants, w)
	}

	return rows.Err()
}

type issueTx struct {
	tx *sql.Tx
}

func (s *Store) BeginIssue(ctx context.Context) (citation.IssueTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning issue tx: %w", err)
	}

	return &issueTx{tx: tx}, nil
}

func (itx *issueTx) Commit() error   { return itx.tx.Commit() }
func (itx *issueTx) Rollback() error { return itx.tx.Rollback() }

func (itx *issueTx) CreateCitation(ctx context.Context, c *citation.Citation) error {
	query := `
		INSERT INTO citations (number, driver_id, vehicle_id, officer_id, violation_code,
			violation_at, issued_at, location, fine_amount, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := itx.tx.QueryRowContext(ctx, query,
		c.Number,
		c.DriverID,
		c.VehicleID,
		c.OfficerID,
		c.ViolationCode,
		c.ViolationAt,
		c.IssuedAt,
		c.Location,
		c.FineAmount,
		c.Notes,
		c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return citation.ErrDuplicateCitationNumber
		}

		return fmt.Errorf("creating citation: %w", err)
	}

	return nil
}

func (itx *issueTx) CreatePointGrant(ctx context.Context, g *citation.PointGrant) error {
	query := `
		INSERT INTO point_grants (driver_id, citation_id, points, effective_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := itx.tx.QueryRowContext(ctx, query,
		g.DriverID,
		g.CitationID,
		g.Points,
		g.EffectiveAt,
		g.ExpiresAt,
	).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("creating point grant: %w", err)
	}

	return nil
}

// citationLockKey derives an advisory-lock key from the citation number so
// payments and escalations against the same citation are serialized.
func citationLockKey(number string) int64 {
	h := fnv.New64a()
	h.Write([]byte("citation"))
	h.Write([]byte{0})
	h.Write([]byte(number))

	return int64(h.Sum64())
}

type citationTx struct {
	tx     *sql.Tx
	number string
}

func (s *Store) Begin(ctx context.Context, citationNumber string) (citation.CitationTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning citation tx: %w", err)
	}

	lockKey := citationLockKey(citationNumber)
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("acquiring citation lock: %w", err)
	}

	return &citationTx{tx: tx, number: citationNumber}, nil
}

func (ptx *citationTx) Commit() error   { return ptx.tx.Commit() }
func (ptx *citationTx) Rollback() error { return ptx.tx.Rollback() }

func (ptx *citationTx) Get(ctx context.Context) (*citation.Citation, int64, error) {
	query := `SELECT ` + selectCitationColumns + `,
		COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.citation_id = c.id), 0)
		FROM citations c
		WHERE c.number = $1`

	var totalPaid int64

	c, err := scanCitation(ptx.tx.QueryRowContext(ctx, query, ptx.number), &totalPaid)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, 0, citation.ErrCitationNotFound
		}

		return nil, 0, fmt.Errorf("getting citation for update: %w", err)
	}

	return c, totalPaid, nil
}

func (ptx *citationTx) CreatePayment(ctx context.Context, p *citation.Payment) error {
	query := `
		INSERT INTO payments (citation_id, amount, method, reference, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := ptx.tx.QueryRowContext(ctx, query,
		p.CitationID,
		p.Amount,
		p.Method,
		p.Reference,
		p.PaidAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func (ptx *citationTx) UpdateStatus(ctx context.Context, citationID uuid.UUID, status citation.Status) error {
	query := `
		UPDATE citations
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	if _, err := ptx.tx.ExecContext(ctx, query, status, citationID); err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	return nil
}

func (ptx *citationTx) CreateWarrant(ctx context.Context, w *citation.Warrant) error {
	query := `
		INSERT INTO warrants (citation_id, issued_at, amount_due, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := ptx.tx.QueryRowContext(ctx, query,
		w.CitationID,
		w.IssuedAt,
		w.AmountDue,
		w.Status,
	).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating warrant: %w", err)
	}

	return nil
}

func (ptx *citationTx) RecallActiveWarrants(ctx context.Context, citationID uuid.UUID) error {
	query := `
		UPDATE warrants
		SET status = $1
		WHERE citation_id = $2 AND status = $3
	`

	if _, err := ptx.tx.ExecContext(ctx, query, citation.WarrantRecalled, citationID, citation.WarrantActive); err != nil {
		return fmt.Errorf("recalling warrants: %w", err)
	}

	return nil
}

func (s *Store) ListIssuedBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `
		SELECT number
		FROM citations
		WHERE status = $1 AND issued_at <= $2
		ORDER BY issued_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, citation.StatusIssued, cutoff)
	if err != nil {
		return nil, fmt.Errorf("listing overdue citations: %w", err)
	}
	defer rows.Close()

	var numbers []string

	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("scanning citation number: %w", err)
		}

		numbers = append(numbers, number)
	}

	return numbers, rows.Err()
}

func (s *Store) ListOverdue(ctx context.Context, params citation.ReportParams) ([]citation.OverdueRow, error) {
	// Days overdue are computed in Go against the caller's reference time;
	// the query never reads the database clock.
	cutoff := params.AsOf.AddDate(0, 0, -params.MinDaysOverdue)

	query := `
		SELECT c.number, d.first_name, d.last_name, d.license_number,
			c.violation_code, vt.description, c.status, c.issued_at,
			c.fine_amount - COALESCE(SUM(p.amount), 0) AS outstanding
		FROM citations c
		JOIN drivers d ON d.id = c.driver_id
		JOIN violation_types vt ON vt.code = c.violation_code
		LEFT JOIN payments p ON p.citation_id = c.id
		WHERE c.issued_at <= $1`

	args := []any{cutoff, citation.StatusIssued}

	if params.IncludeWarrants {
		query += " AND c.status IN ($2, $3)"

		args = append(args, citation.StatusWarrant)
	} else {
		query += " AND c.status = $2"
	}

	query += `
		GROUP BY c.id, d.id, vt.code
		ORDER BY c.issued_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing overdue report: %w", err)
	}
	defer rows.Close()

	var report []citation.OverdueRow

	for rows.Next() {
		var (
			row                 citation.OverdueRow
			firstName, lastName string
			statusStr           string
			issuedAt            time.Time
		)

		if err := rows.Scan(
			&row.CitationNumber, &firstName, &lastName, &row.LicenseNumber,
			&row.ViolationCode, &row.ViolationDescription, &statusStr, &issuedAt,
			&row.OutstandingAmount,
		); err != nil {
			return nil, fmt.Errorf("scanning overdue row: %w", err)
		}

		row.DriverName = firstName + " " + lastName
		row.DaysOverdue = int(params.AsOf.Sub(issuedAt).Hours() / 24)
		row.WarrantFlag = citation.Status(statusStr) == citation.StatusWarrant

		report = append(report, row)
	}

	return report, rows.Err()
}

func (s *Store) ActivePoints(ctx context.Context, driverID uuid.UUID, asOf time.Time) (int, error) {
	query := `
		SELECT COALESCE(SUM(points), 0)
		FROM point_grants
		WHERE driver_id = $1 AND expires_at > $2
	`

	var points int

	if err := s.db.QueryRowContext(ctx, query, driverID, asOf).Scan(&points); err != nil {
		return 0, fmt.Errorf("summing active points: %w", err)
	}

	return points, nil
}
