package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/finewarden/internal/citation"
	regstore "github.com/rgoodwin/finewarden/internal/registry/store"
)

// Memory is an in-memory Repository with the same transactional guarantees as
// the postgres store: staged writes apply on Commit or not at all, and the
// store mutex is held for the lifetime of a transaction, which serializes
// payments and escalations per citation.
type Memory struct {
	mu       sync.Mutex
	refs     *regstore.Memory
	byNumber map[string]*citation.Citation
	payments map[uuid.UUID][]citation.Payment
	grants   []citation.PointGrant
	warrants map[uuid.UUID][]citation.Warrant
}

func NewMemory(refs *regstore.Memory) *Memory {
	return &Memory{
		refs:     refs,
		byNumber: make(map[string]*citation.Citation),
		payments: make(map[uuid.UUID][]citation.Payment),
		warrants: make(map[uuid.UUID][]citation.Warrant),
	}
}

// Seed inserts a citation directly, bypassing issuance. Tests use it to set
// up disputed or historical citations.
func (m *Memory) Seed(c citation.Citation) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	m.byNumber[c.Number] = &c
}

func (m *Memory) totalPaidLocked(citationID uuid.UUID) int64 {
	var total int64
	for _, p := range m.payments[citationID] {
		total += p.Amount
	}

	return total
}

func (m *Memory) GetDetail(_ context.Context, number string) (*citation.Detail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.byNumber[number]
	if !ok {
		return nil, citation.ErrCitationNotFound
	}

	detail := &citation.Detail{
		Citation:  *c,
		Payments:  append([]citation.Payment(nil), m.payments[c.ID]...),
		Warrants:  append([]citation.Warrant(nil), m.warrants[c.ID]...),
		TotalPaid: m.totalPaidLocked(c.ID),
	}

	for _, g := range m.grants {
		if g.CitationID == c.ID {
			detail.Points = append(detail.Points, g)
		}
	}

	return detail, nil
}

type memIssueTx struct {
	m      *Memory
	done   bool
	staged *citation.Citation
	grant  *citation.PointGrant
}

func (m *Memory) BeginIssue(_ context.Context) (citation.IssueTx, error) {
	m.mu.Lock()
	return &memIssueTx{m: m}, nil
}

func (itx *memIssueTx) CreateCitation(_ context.Context, c *citation.Citation) error {
	if _, exists := itx.m.byNumber[c.Number]; exists {
		return citation.ErrDuplicateCitationNumber
	}

	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	itx.staged = c

	return nil
}

func (itx *memIssueTx) CreatePointGrant(_ context.Context, g *citation.PointGrant) error {
	g.ID = uuid.New()
	itx.grant = g

	return nil
}

func (itx *memIssueTx) Commit() error {
	if itx.done {
		return nil
	}
	itx.done = true

	if itx.staged != nil {
		c := *itx.staged
		itx.m.byNumber[c.Number] = &c
	}

	if itx.grant != nil {
		itx.m.grants = append(itx.m.grants, *itx.grant)
	}

	itx.m.mu.Unlock()

	return nil
}

func (itx *memIssueTx) Rollback() error {
	if itx.done {
		return nil
	}
	itx.done = true

	itx.m.mu.Unlock()

	return nil
}

type memCitationTx struct {
	m      *Memory
	number string
	done   bool

	stagedPayment *citation.Payment
	stagedStatus  *citation.Status
	stagedWarrant *citation.Warrant
	recall        bool
}

func (m *Memory) Begin(_ context.Context, citationNumber string) (citation.CitationTx, error) {
	m.mu.Lock()
	return &memCitationTx{m: m, number: citationNumber}, nil
}

func (ptx *memCitationTx) Get(_ context.Context) (*citation.Citation, int64, error) {
	c, ok := ptx.m.byNumber[ptx.number]
	if !ok {
		return nil, 0, citation.ErrCitationNotFound
	}

	copied := *c

	return &copied, ptx.m.totalPaidLocked(c.ID), nil
}

func (ptx *memCitationTx) CreatePayment(_ context.Context, p *citation.Payment) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	ptx.stagedPayment = p

	return nil
}

func (ptx *memCitationTx) UpdateStatus(_ context.Context, _ uuid.UUID, status citation.Status) error {
	ptx.stagedStatus = &status

	return nil
}

func (ptx *memCitationTx) CreateWarrant(_ context.Context, w *citation.Warrant) error {
	w.ID = uuid.New()
	w.CreatedAt = time.Now()
	ptx.stagedWarrant = w

	return nil
}

func (ptx *memCitationTx) RecallActiveWarrants(_ context.Context, _ uuid.UUID) error {
	ptx.recall = true

	return nil
}

func (ptx *memCitationTx) Commit() error {
	if ptx.done {
		return nil
	}
	ptx.done = true
	defer ptx.m.mu.Unlock()

	c, ok := ptx.m.byNumber[ptx.number]
	if !ok {
		return citation.ErrCitationNotFound
	}

	if ptx.stagedPayment != nil {
		ptx.m.payments[c.ID] = append(ptx.m.payments[c.ID], *ptx.stagedPayment)
	}

	if ptx.stagedWarrant != nil {
		ptx.m.warrants[c.ID] = append(ptx.m.warrants[c.ID], *ptx.stagedWarrant)
	}

	if ptx.recall {
		warrants := ptx.m.warrants[c.ID]
		for i := range warrants {
			if warrants[i].Status == citation.WarrantActive {
				warrants[i].Status = citation.WarrantRecalled
			}
		}
	}

	if ptx.stagedStatus != nil {
		now := time.Now()
		c.Status = *ptx.stagedStatus
		c.UpdatedAt = &now
	}

	return nil
}

func (ptx *memCitationTx) Rollback() error {
	if ptx.done {
		return nil
	}
	ptx.done = true

	ptx.m.mu.Unlock()

	return nil
}

func (m *Memory) ListIssuedBefore(_ context.Context, cutoff time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var numbers []string

	for number, c := range m.byNumber {
		if c.Status == citation.StatusIssued && !c.IssuedAt.After(cutoff) {
			numbers = append(numbers, number)
		}
	}

	sort.Strings(numbers)

	return numbers, nil
}

func (m *Memory) ListOverdue(ctx context.Context, params citation.ReportParams) ([]citation.OverdueRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := params.AsOf.AddDate(0, 0, -params.MinDaysOverdue)

	var report []citation.OverdueRow

	for _, c := range m.byNumber {
		if c.Status != citation.StatusIssued && !(params.IncludeWarrants && c.Status == citation.StatusWarrant) {
			continue
		}

		if c.IssuedAt.After(cutoff) {
			continue
		}

		row := citation.OverdueRow{
			CitationNumber:    c.Number,
			ViolationCode:     c.ViolationCode,
			OutstandingAmount: c.FineAmount - m.totalPaidLocked(c.ID),
			DaysOverdue:       int(params.AsOf.Sub(c.IssuedAt).Hours() / 24),
			WarrantFlag:       c.Status == citation.StatusWarrant,
		}

		if driver, err := m.refs.DriverByID(ctx, c.DriverID); err == nil {
			row.DriverName = driver.FullName()
			row.LicenseNumber = driver.LicenseNumber
		}

		if vt, err := m.refs.FindViolationType(ctx, c.ViolationCode); err == nil {
			row.ViolationDescription = vt.Description
		}

		report = append(report, row)
	}

	sort.Slice(report, func(i, j int) bool {
		return report[i].DaysOverdue > report[j].DaysOverdue
	})

	return report, nil
}

func (m *Memory) ActivePoints(_ context.Context, driverID uuid.UUID, asOf time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var points int

	for _, g := range m.grants {
		if g.DriverID == driverID && g.ExpiresAt.After(asOf) {
			points += g.Points
		}
	}

	return points, nil
}
