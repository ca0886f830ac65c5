package citation

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/finewarden/internal/registry"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=citation
type Repository interface {
	GetDetail(ctx context.Context, number string) (*Detail, error)
	BeginIssue(ctx context.Context) (IssueTx, error)
	Begin(ctx context.Context, citationNumber string) (CitationTx, error)

	ListOverdue(ctx context.Context, params ReportParams) ([]OverdueRow, error)
	ListIssuedBefore(ctx context.Context, cutoff time.Time) ([]string, error)
	ActivePoints(ctx context.Context, driverID uuid.UUID, asOf time.Time) (int, error)
}

// IssueTx is an atomic issuance unit: either the citation and its point grant
// both commit, or neither does.
type IssueTx interface {
	CreateCitation(ctx context.Context, c *Citation) error
	CreatePointGrant(ctx context.Context, g *PointGrant) error
	Commit() error
	Rollback() error
}

// CitationTx is a transaction serialized per citation. Payments and
// escalations against the same citation never interleave, so balance and
// status checks inside the transaction cannot go stale.
type CitationTx interface {
	Get(ctx context.Context) (*Citation, int64, error)
	CreatePayment(ctx context.Context, p *Payment) error
	UpdateStatus(ctx context.Context, citationID uuid.UUID, status Status) error
	CreateWarrant(ctx context.Context, w *Warrant) error
	RecallActiveWarrants(ctx context.Context, citationID uuid.UUID) error
	Commit() error
	Rollback() error
}

// ReferenceRegistry is the read-only reference collaborator.
type ReferenceRegistry interface {
	DriverByLicense(ctx context.Context, licenseNumber string) (*registry.Driver, error)
	VehicleByPlate(ctx context.Context, plateNumber string) (*registry.Vehicle, error)
	ViolationType(ctx context.Context, code string) (*registry.ViolationType, error)
	EnsureOfficerActive(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo      Repository
	refs      ReferenceRegistry
	graceDays int
	randInt   func(n int) int
}

func NewService(repo Repository, refs ReferenceRegistry, gracePeriodDays int) *Service {
	if gracePeriodDays <= 0 {
		gracePeriodDays = 90
	}

	return &Service{
		repo:      repo,
		refs:      refs,
		graceDays: gracePeriodDays,
		randInt:   rand.IntN,
	}
}

type IssueParams struct {
	DriverLicense string
	PlateNumber   string // optional; empty means no vehicle reference
	OfficerID     uuid.UUID
	ViolationCode string
	ViolationAt   time.Time
	IssuedAt      time.Time
	Location      string
	Notes         string
}

// Issue creates a citation in the issued state, snapshotting the catalog's
// base fine, and grants license points when the catalog assigns any. Checks
// run in order and each failure aborts the whole operation.
func (s *Service) Issue(ctx context.Context, params IssueParams) (*Citation, error) {
	if params.ViolationAt.After(params.IssuedAt) {
		return nil, fmt.Errorf("%w: violation time after issuance time", ErrConstraintViolation)
	}

	driver, err := s.refs.DriverByLicense(ctx, params.DriverLicense)
	if err != nil {
		return nil, err
	}

	var vehicleID *uuid.UUID

	if params.PlateNumber != "" {
		vehicle, err := s.refs.VehicleByPlate(ctx, params.PlateNumber)
		if err != nil {
			return nil, err
		}

		vehicleID = &vehicle.ID
	}

	vt, err := s.refs.ViolationType(ctx, params.ViolationCode)
	if err != nil {
		return nil, err
	}

	if vt.BaseFine <= 0 || vt.Points < 0 {
		return nil, fmt.Errorf("%w: violation type %s has invalid fine or points", ErrConstraintViolation, vt.Code)
	}

	if err := s.refs.EnsureOfficerActive(ctx, params.OfficerID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < numberAttempts; attempt++ {
		c, err := s.tryIssue(ctx, params, driver.ID, vehicleID, vt)
		if err != nil {
			if errors.Is(err, ErrDuplicateCitationNumber) {
				continue
			}

			return nil, err
		}

		return c, nil
	}

	return nil, ErrDuplicateCitationNumber
}

func (s *Service) tryIssue(ctx context.Context, params IssueParams, driverID uuid.UUID, vehicleID *uuid.UUID, vt *registry.ViolationType) (*Citation, error) {
	itx, err := s.repo.BeginIssue(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin issue: %w", err)
	}
	defer itx.Rollback()

	c := &Citation{
		Number:        NewNumber(params.IssuedAt, s.randInt(suffixRange)),
		DriverID:      driverID,
		VehicleID:     vehicleID,
		OfficerID:     params.OfficerID,
		ViolationCode: vt.Code,
		ViolationAt:   params.ViolationAt,
		IssuedAt:      params.IssuedAt,
		Location:      params.Location,
		FineAmount:    vt.BaseFine,
		Notes:         params.Notes,
		Status:        StatusIssued,
	}

	if err := itx.CreateCitation(ctx, c); err != nil {
		return nil, err
	}

	if vt.Points > 0 {
		g := &PointGrant{
			DriverID:    driverID,
			CitationID:  c.ID,
			Points:      vt.Points,
			EffectiveAt: params.IssuedAt,
			ExpiresAt:   params.IssuedAt.AddDate(2, 0, 0),
		}

		if err := itx.CreatePointGrant(ctx, g); err != nil {
			return nil, fmt.Errorf("create point grant: %w", err)
		}
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit issue: %w", err)
	}

	return c, nil
}

type PaymentParams struct {
	CitationNumber string
	Amount         int64
	Method         Method
	Reference      string
	PaidAt         time.Time
}

// Pay applies a payment against a citation's outstanding balance. When the
// payment settles the fine exactly, the citation moves to paid and any active
// warrant is recalled in the same transaction. A payment exceeding the
// outstanding balance is rejected; full satisfaction is detected by equality,
// so an overpayment would otherwise leave the citation open forever.
func (s *Service) Pay(ctx context.Context, params PaymentParams) (*Payment, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrConstraintViolation)
	}

	tx, err := s.repo.Begin(ctx, params.CitationNumber)
	if err != nil {
		return nil, fmt.Errorf("begin payment: %w", err)
	}
	defer tx.Rollback()

	c, totalPaid, err := tx.Get(ctx)
	if err != nil {
		return nil, err
	}

	if !c.Status.Payable() {
		return nil, fmt.Errorf("%w: status is %s", ErrInvalidCitationState, c.Status)
	}

	outstanding := c.FineAmount - totalPaid
	if params.Amount > outstanding {
		return nil, fmt.Errorf("%w: amount %d exceeds outstanding %d", ErrOverpaymentRejected, params.Amount, outstanding)
	}

	p := &Payment{
		CitationID: c.ID,
		Amount:     params.Amount,
		Method:     params.Method,
		Reference:  params.Reference,
		PaidAt:     params.PaidAt,
	}

	if err := tx.CreatePayment(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if totalPaid+params.Amount == c.FineAmount {
		if err := tx.UpdateStatus(ctx, c.ID, StatusPaid); err != nil {
			return nil, fmt.Errorf("mark paid: %w", err)
		}

		if err := tx.RecallActiveWarrants(ctx, c.ID); err != nil {
			return nil, fmt.Errorf("recall warrants: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit payment: %w", err)
	}

	return p, nil
}

// SettleWarrant pays off a warranted citation. Unlike Pay, it requires the
// warrant state and a payment covering the outstanding balance exactly; the
// payment, the paid transition and the warrant recall commit as one unit.
func (s *Service) SettleWarrant(ctx context.Context, params PaymentParams) (*Payment, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrConstraintViolation)
	}

	tx, err := s.repo.Begin(ctx, params.CitationNumber)
	if err != nil {
		return nil, fmt.Errorf("begin settlement: %w", err)
	}
	defer tx.Rollback()

	c, totalPaid, err := tx.Get(ctx)
	if err != nil {
		return nil, err
	}

	if c.Status != StatusWarrant {
		return nil, fmt.Errorf("%w: status is %s, settlement requires a warrant", ErrInvalidCitationState, c.Status)
	}

	outstanding := c.FineAmount - totalPaid
	if params.Amount > outstanding {
		return nil, fmt.Errorf("%w: amount %d exceeds outstanding %d", ErrOverpaymentRejected, params.Amount, outstanding)
	}

	if params.Amount < outstanding {
		return nil, fmt.Errorf("%w: warrant settlement must cover the outstanding balance of %d", ErrConstraintViolation, outstanding)
	}

	p := &Payment{
		CitationID: c.ID,
		Amount:     params.Amount,
		Method:     params.Method,
		Reference:  params.Reference,
		PaidAt:     params.PaidAt,
	}

	if err := tx.CreatePayment(ctx, p); err != nil {
		return nil, fmt.Errorf("create settlement payment: %w", err)
	}

	if err := tx.UpdateStatus(ctx, c.ID, StatusPaid); err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	if err := tx.RecallActiveWarrants(ctx, c.ID); err != nil {
		return nil, fmt.Errorf("recall warrants: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit settlement: %w", err)
	}

	return p, nil
}

// Escalate moves a citation past the grace period with an outstanding balance
// into a warrant, snapshotting the amount due. It is idempotent: once the
// citation has left the issued state it does nothing and reports no warrant.
func (s *Service) Escalate(ctx context.Context, citationNumber string, asOf time.Time) (*Warrant, error) {
	tx, err := s.repo.Begin(ctx, citationNumber)
	if err != nil {
		return nil, fmt.Errorf("begin escalation: %w", err)
	}
	defer tx.Rollback()

	c, totalPaid, err := tx.Get(ctx)
	if err != nil {
		return nil, err
	}

	if c.Status != StatusIssued {
		return nil, nil
	}

	if daysBetween(c.IssuedAt, asOf) < s.graceDays {
		return nil, nil
	}

	outstanding := c.FineAmount - totalPaid
	if outstanding <= 0 {
		return nil, nil
	}

	w := &Warrant{
		CitationID: c.ID,
		IssuedAt:   asOf,
		AmountDue:  outstanding,
		Status:     WarrantActive,
	}

	if err := tx.CreateWarrant(ctx, w); err != nil {
		return nil, fmt.Errorf("create warrant: %w", err)
	}

	if err := tx.UpdateStatus(ctx, c.ID, StatusWarrant); err != nil {
		return nil, fmt.Errorf("mark warrant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit escalation: %w", err)
	}

	return w, nil
}

// Sweep escalates every citation still issued past the grace period. A
// failure on one citation does not stop the sweep; failures are joined and
// returned for the caller to log and retry.
func (s *Service) Sweep(ctx context.Context, asOf time.Time) (int, error) {
	cutoff := asOf.AddDate(0, 0, -s.graceDays)

	numbers, err := s.repo.ListIssuedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list overdue citations: %w", err)
	}

	var (
		escalated int
		errs      []error
	)

	for _, number := range numbers {
		w, err := s.Escalate(ctx, number, asOf)
		if err != nil {
			errs = append(errs, fmt.Errorf("citation %s: %w", number, err))
			continue
		}

		if w != nil {
			escalated++
		}
	}

	return escalated, errors.Join(errs...)
}

type ReportParams struct {
	AsOf            time.Time
	MinDaysOverdue  int
	IncludeWarrants bool
}

// OverdueReport projects unpaid citations ordered by days overdue, most
// overdue first. Read-only.
func (s *Service) OverdueReport(ctx context.Context, params ReportParams) ([]OverdueRow, error) {
	return s.repo.ListOverdue(ctx, params)
}

// Detail returns a citation with its payments, point grants and warrants.
func (s *Service) Detail(ctx context.Context, number string) (*Detail, error) {
	return s.repo.GetDetail(ctx, number)
}

// DriverPoints sums the driver's unexpired license points as of the reference
// time. Expired grants fall off by date comparison; nothing is deleted.
func (s *Service) DriverPoints(ctx context.Context, licenseNumber string, asOf time.Time) (int, error) {
	driver, err := s.refs.DriverByLicense(ctx, licenseNumber)
	if err != nil {
		return 0, err
	}

	return s.repo.ActivePoints(ctx, driver.ID, asOf)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
