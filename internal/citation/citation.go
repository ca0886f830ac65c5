package citation

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a citation.
type Status string

const (
	StatusIssued    Status = "issued"
	StatusPaid      Status = "paid"
	StatusDisputed  Status = "disputed"
	StatusDismissed Status = "dismissed"
	StatusWarrant   Status = "warrant"
)

// Payable reports whether a citation in this state may accept a payment.
// A warranted citation must have its warrant addressed first.
func (s Status) Payable() bool {
	return s == StatusIssued || s == StatusDisputed
}

// Method represents how a payment was made.
type Method string

const (
	MethodCash   Method = "cash"
	MethodCard   Method = "card"
	MethodCheck  Method = "check"
	MethodOnline Method = "online"
)

// WarrantStatus represents the lifecycle state of a warrant.
type WarrantStatus string

const (
	WarrantActive   WarrantStatus = "active"
	WarrantServed   WarrantStatus = "served"
	WarrantRecalled WarrantStatus = "recalled"
)

// Citation is a recorded traffic violation. FineAmount is in cents and is
// snapshotted from the violation catalog at issuance; later catalog edits do
// not change issued citations.
type Citation struct {
	ID            uuid.UUID
	Number        string
	DriverID      uuid.UUID
	VehicleID     *uuid.UUID
	OfficerID     uuid.UUID
	ViolationCode string
	ViolationAt   time.Time
	IssuedAt      time.Time
	Location      string
	FineAmount    int64
	Notes         string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Payment is a single payment applied against a citation. Payments are
// immutable; corrections are new payments.
type Payment struct {
	ID         uuid.UUID
	CitationID uuid.UUID
	Amount     int64 // cents
	Method     Method
	Reference  string
	PaidAt     time.Time
	CreatedAt  time.Time
}

// PointGrant is a write-once license-point accrual tied to one citation.
// Grants expire by date comparison at query time; nothing deletes them.
type PointGrant struct {
	ID          uuid.UUID
	DriverID    uuid.UUID
	CitationID  uuid.UUID
	Points      int
	EffectiveAt time.Time
	ExpiresAt   time.Time
}

// Warrant is an enforcement escalation of an unpaid citation. AmountDue is a
// snapshot of the outstanding balance at escalation time.
type Warrant struct {
	ID         uuid.UUID
	CitationID uuid.UUID
	IssuedAt   time.Time
	AmountDue  int64 // cents
	Status     WarrantStatus
	CreatedAt  time.Time
}

// Detail is a citation joined with its dependent records.
type Detail struct {
	Citation  Citation
	Payments  []Payment
	Points    []PointGrant
	Warrants  []Warrant
	TotalPaid int64
}

// Outstanding returns the unpaid remainder of the fine.
func (d *Detail) Outstanding() int64 {
	return d.Citation.FineAmount - d.TotalPaid
}

// OverdueRow is one line of the overdue report.
type OverdueRow struct {
	CitationNumber       string
	DriverName           string
	LicenseNumber        string
	ViolationCode        string
	ViolationDescription string
	OutstandingAmount    int64
	DaysOverdue          int
	WarrantFlag          bool
}
