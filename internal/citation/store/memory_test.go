package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodwin/finewarden/internal/citation"
	"github.com/rgoodwin/finewarden/internal/citation/store"
	"github.com/rgoodwin/finewarden/internal/registry"
	regstore "github.com/rgoodwin/finewarden/internal/registry/store"
)

type fixture struct {
	svc     *citation.Service
	repo    *store.Memory
	driver  registry.Driver
	officer registry.Officer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	refs := regstore.NewMemory()

	driver := registry.Driver{
		ID:            uuid.New(),
		LicenseNumber: "D1234567",
		FirstName:     "Maria",
		LastName:      "Santos",
	}
	officer := registry.Officer{ID: uuid.New(), BadgeNumber: "B-1041", Active: true}

	refs.AddDriver(driver)
	refs.AddOfficer(officer)
	refs.AddVehicle(registry.Vehicle{ID: uuid.New(), PlateNumber: "AB-12-CD", OwnerID: driver.ID})
	refs.AddViolationType(registry.ViolationType{
		Code: "SPD10", Description: "Speeding 10-20 over limit", BaseFine: 125000, Moving: true, Points: 2,
	})
	refs.AddViolationType(registry.ViolationType{
		Code: "PRK01", Description: "Expired meter", BaseFine: 7500, Points: 0,
	})
	refs.AddViolationType(registry.ViolationType{
		Code: "RDL01", Description: "Running a red light", BaseFine: 200000, Moving: true, Points: 4,
	})

	repo := store.NewMemory(refs)

	return &fixture{
		svc:     citation.NewService(repo, registry.NewService(refs), 90),
		repo:    repo,
		driver:  driver,
		officer: officer,
	}
}

func (f *fixture) issue(t *testing.T, code string, issuedAt time.Time) *citation.Citation {
	t.Helper()

	c, err := f.svc.Issue(context.Background(), citation.IssueParams{
		DriverLicense: f.driver.LicenseNumber,
		PlateNumber:   "AB-12-CD",
		OfficerID:     f.officer.ID,
		ViolationCode: code,
		ViolationAt:   issuedAt.Add(-20 * time.Minute),
		IssuedAt:      issuedAt,
		Location:      "Main St & 4th Ave",
	})
	require.NoError(t, err)

	return c
}

func TestLifecycle_IssueThenPayInFull(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	issuedAt := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)

	c := f.issue(t, "SPD10", issuedAt)
	assert.Equal(t, citation.StatusIssued, c.Status)
	assert.Equal(t, int64(125000), c.FineAmount)

	detail, err := f.svc.Detail(ctx, c.Number)
	require.NoError(t, err)
	require.Len(t, detail.Points, 1)
	assert.Equal(t, 2, detail.Points[0].Points)
	assert.Equal(t, issuedAt.AddDate(2, 0, 0), detail.Points[0].ExpiresAt)
	assert.Equal(t, int64(125000), detail.Outstanding())

	_, err = f.svc.Pay(ctx, citation.PaymentParams{
		CitationNumber: c.Number,
		Amount:         125000,
		Method:         citation.MethodCard,
		PaidAt:         issuedAt.AddDate(0, 0, 10),
	})
	require.NoError(t, err)

	detail, err = f.svc.Detail(ctx, c.Number)
	require.NoError(t, err)
	assert.Equal(t, citation.StatusPaid, detail.Citation.Status)
	assert.Equal(t, detail.Citation.FineAmount, detail.TotalPaid)
	assert.Zero(t, detail.Outstanding())

	// A paid citation accepts no further payments.
	_, err = f.svc.Pay(ctx, citation.PaymentParams{
		CitationNumber: c.Number,
		Amount:         100,
		Method:         citation.MethodCash,
		PaidAt:         issuedAt.AddDate(0, 0, 11),
	})
	assert.ErrorIs(t, err, citation.ErrInvalidCitationState)
}

func TestLifecycle_PartialPaymentsSettleOnExactBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	issuedAt := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)

	c := f.issue(t, "SPD10", issuedAt)

	for i, amount := range []int64{50000, 50000} {
		_, err := f.svc.Pay(ctx, citation.PaymentParams{
			CitationNumber: c.Number,
			Amount:         amount,
			Method:         citation.MethodCash,
			PaidAt:         issuedAt.AddDate(0, 0, i+1),
		})
		require.NoError(t, err)
	}

	detail, err := f.svc.Detail(ctx, c.Number)
	require.NoError(t, err)
	assert.Equal(t, citation.StatusIssued, detail.Citation.Status)
	assert.Equal(t, int64(25000), detail.Outstanding())

	_, err = f.svc.Pay(ctx, citation.PaymentParams{
		CitationNumber: c.Number,
		Amount:         25000,
		Method:         citation.MethodOnline,
		PaidAt:         issuedAt.AddDate(0, 0, 3),
	})
	require.NoError(t, err)

	detail, err = f.svc.Detail(ctx, c.Number)
	require.NoError(t, err)
	assert.Equal(t, citation.StatusPaid, detail.Citation.Status)
	assert.Len(t, detail.Payments, 3)
}

func TestLifecycle_OverpaymentLeavesBalanceUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	issuedAt := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)

	c := f.issue(t, "PRK01", issuedAt)

	_, err := f.svc.Pay(ctx, citation.PaymentParams{
		CitationNumber: c.Number,
		Amount:         7501,
		Method:         citation.MethodCard,
		PaidAt:         issuedAt.AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, citation.ErrOverpaymentRejected)

	detail, err := f.svc.Detail(ctx, c.Number)
	require.NoError(t, err)
	assert.Empty(t, detail.Payments)
	assert.Equal(t, int64(7500), detail.Outstanding())
	assert.Equal(t, citation.StatusIssued, detail.Citation.Status)
}

func TestLifecycle_ZeroPointViolationGrantsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	issuedAt := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)

	c := f.issue(t, "PRK01", issuedAt)

	detail, err := f.svc.Detail(ctx, c.Number)
	require.NoError(t, err)
	assert.Empty(t, detail.Points)

	points, err := f.svc.DriverPoints(ctx, f.driver.LicenseNumber, issuedAt)
	require.NoError(t, err)
	assert.Zero(t, points)
}

func TestLifecycle_PointsExpireByDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	issuedAt := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)

	f.issue(t, "SPD10", issuedAt)
	f.issue(t, "RDL01", issuedAt.AddDate(0, 6, 0))

	points, err := f.svc.DriverPoints(ctx, f.driver.LicenseNumber, issuedAt.AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, points)

	// Two years on, the first grant has fallen off.
	points, err = f.svc.DriverPoints(ctx, f.driver.LicenseNumber, issuedAt.AddDate(2, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, points)

	points, err = f.svc.DriverPoints(ctx, f.driver.LicenseNumber, issuedAt.AddDate(3, 0, 0))
	require.NoError(t, err)
	assert.Zero(t, points)
}

func TestLifecycle_EscalationIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	issuedAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	asOf := issuedAt.AddDate(0, 0, 95)

	c := f.issue(t, "RDL01", issuedAt)

	w, err := f.svc.Escalate(ctx, c.Number, asOf)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, int64(200000), w.AmountDue)

	w2, err := f.svc.Escalate(ctx, c.Number, asOf)
	require.NoError(t, err)
	assert.Nil(t, w2)

	detail, err := f.svc.Detail(ctx, c.Number)
	require.NoError(t, err)
	assert.Equal(t, citation.StatusWarrant, detail.Citation.Status)
	assert.Len(t, detail.Warrants, 1)
}

func TestLifecycle_SweepEscalatesOnlyOverdueUnpaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	issuedAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	asOf := issuedAt.AddDate(0, 0, 95)

	overdue := f.issue(t, "RDL01", issuedAt)
	recent := f.issue(t, "SPD10", asOf.AddDate(0, 0, -10))

	settled := f.issue(t, "PRK01", issuedAt)
	_, err := f.svc.Pay(ctx, citation.PaymentParams{
		CitationNumber: settled.Number,
		Amount:         7500,
		Method:         citation.MethodCash,
		PaidAt:         issuedAt.AddDate(0, 0, 5),
	})
	require.NoError(t, err)

	escalated, err := f.svc.Sweep(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, escalated)

	detail, err := f.svc.Detail(ctx, overdue.Number)
	require.NoError(t, err)
	assert.Equal(t, citation.StatusWarrant, detail.Citation.Status)

	detail, err = f.svc.Detail(ctx, recent.Number)
	require.NoError(t, err)
	assert.Equal(t, citation.StatusIssued, detail.Citation.Status)

	detail, err = f.svc.Detail(ctx, settled.Number)
	require.NoError(t, err)
	assert.Equal(t, citation.StatusPaid, detail.Citation.Status)
}

func TestLifecycle_WarrantSettlementRecallsAndPays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	issuedAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	asOf := issuedAt.AddDate(0, 0, 95)

	c := f.issue(t, "RDL01", issuedAt)

	w, err := f.svc.Escalate(ctx, c.Number, asOf)
	require.NoError(t, err)
	require.NotNil(t, w)

	// Regular payment path refuses a warranted citation.
	_, err = f.svc.Pay(ctx, citation.PaymentParams{
		CitationNumber: c.Number,
		Amount:         200000,
		Method:         citation.MethodCard,
		PaidAt:         asOf.AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, citation.ErrInvalidCitationState)

	_, err = f.svc.SettleWarrant(ctx, citation.PaymentParams{
		CitationNumber: c.Number,
		Amount:         200000,
		Method:         citation.MethodCard,
		PaidAt:         asOf.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	detail, err := f.svc.Detail(ctx, c.Number)
	require.NoError(t, err)
	assert.Equal(t, citation.StatusPaid, detail.Citation.Status)
	require.Len(t, detail.Warrants, 1)
	assert.Equal(t, citation.WarrantRecalled, detail.Warrants[0].Status)
	assert.Equal(t, detail.Citation.FineAmount, detail.TotalPaid)
}

func TestLifecycle_ServedWarrantIsNeverAutoRecalled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	issuedAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	c := citation.Citation{
		ID:         uuid.New(),
		Number:     "24010109999",
		DriverID:   f.driver.ID,
		OfficerID:  f.officer.ID,
		FineAmount: 200000,
		IssuedAt:   issuedAt,
		Status:     citation.StatusWarrant,
	}
	f.repo.Seed(c)

	tx, err := f.repo.Begin(ctx, c.Number)
	require.NoError(t, err)
	require.NoError(t, tx.CreateWarrant(ctx, &citation.Warrant{
		CitationID: c.ID,
		IssuedAt:   issuedAt.AddDate(0, 0, 90),
		AmountDue:  200000,
		Status:     citation.WarrantServed,
	}))
	require.NoError(t, tx.Commit())

	_, err = f.svc.SettleWarrant(ctx, citation.PaymentParams{
		CitationNumber: c.Number,
		Amount:         200000,
		Method:         citation.MethodCash,
		PaidAt:         issuedAt.AddDate(0, 0, 100),
	})
	require.NoError(t, err)

	detail, err := f.svc.Detail(ctx, c.Number)
	require.NoError(t, err)
	require.Len(t, detail.Warrants, 1)
	assert.Equal(t, citation.WarrantServed, detail.Warrants[0].Status)
}

func TestLifecycle_InactiveOfficerLeavesNoTrace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	issuedAt := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)

	inactive := registry.Officer{ID: uuid.New(), BadgeNumber: "B-0007", Active: false}

	refs := regstore.NewMemory()
	refs.AddDriver(f.driver)
	refs.AddOfficer(inactive)
	refs.AddViolationType(registry.ViolationType{Code: "SPD10", BaseFine: 125000, Points: 2})

	repo := store.NewMemory(refs)
	svc := citation.NewService(repo, registry.NewService(refs), 90)

	_, err := svc.Issue(ctx, citation.IssueParams{
		DriverLicense: f.driver.LicenseNumber,
		OfficerID:     inactive.ID,
		ViolationCode: "SPD10",
		ViolationAt:   issuedAt,
		IssuedAt:      issuedAt,
	})
	assert.ErrorIs(t, err, registry.ErrInactiveOfficer)

	numbers, err := repo.ListIssuedBefore(ctx, issuedAt.AddDate(10, 0, 0))
	require.NoError(t, err)
	assert.Empty(t, numbers)

	points, err := svc.DriverPoints(ctx, f.driver.LicenseNumber, issuedAt)
	require.NoError(t, err)
	assert.Zero(t, points)
}

func TestOverdueReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	asOf := base.AddDate(0, 0, 120)

	oldest := f.issue(t, "RDL01", base)               // 120 days overdue
	middle := f.issue(t, "SPD10", base.AddDate(0, 0, 60)) // 60 days overdue
	f.issue(t, "PRK01", asOf.AddDate(0, 0, -5))       // too recent

	_, err := f.svc.Pay(ctx, citation.PaymentParams{
		CitationNumber: middle.Number,
		Amount:         25000,
		Method:         citation.MethodCash,
		PaidAt:         base.AddDate(0, 0, 70),
	})
	require.NoError(t, err)

	_, err = f.svc.Escalate(ctx, oldest.Number, asOf)
	require.NoError(t, err)

	rows, err := f.svc.OverdueReport(ctx, citation.ReportParams{
		AsOf:           asOf,
		MinDaysOverdue: 30,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, middle.Number, rows[0].CitationNumber)
	assert.Equal(t, int64(100000), rows[0].OutstandingAmount)
	assert.Equal(t, 60, rows[0].DaysOverdue)
	assert.False(t, rows[0].WarrantFlag)
	assert.Equal(t, "Maria Santos", rows[0].DriverName)

	rows, err = f.svc.OverdueReport(ctx, citation.ReportParams{
		AsOf:            asOf,
		MinDaysOverdue:  30,
		IncludeWarrants: true,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, oldest.Number, rows[0].CitationNumber)
	assert.True(t, rows[0].WarrantFlag)
	assert.Equal(t, 120, rows[0].DaysOverdue)
	assert.Equal(t, "Running a red light", rows[0].ViolationDescription)
	assert.GreaterOrEqual(t, rows[0].DaysOverdue, rows[1].DaysOverdue)
}

func TestMemory_DuplicateNumberRetried(t *testing.T) {
	f := newFixture(t)
	issuedAt := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)

	// Issue repeatedly on the same date; each must land on a fresh number.
	seen := make(map[string]struct{})

	for i := 0; i < 25; i++ {
		c := f.issue(t, "PRK01", issuedAt)

		_, dup := seen[c.Number]
		require.False(t, dup, "citation number %s issued twice", c.Number)
		seen[c.Number] = struct{}{}
	}
}
