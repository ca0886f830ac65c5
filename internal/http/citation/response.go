package citation

import (
	"time"

	"github.com/google/uuid"

	"github.com/rgoodwin/finewarden/internal/citation"
)

type citationResponse struct {
	Number        string          `json:"number"`
	DriverID      uuid.UUID       `json:"driver_id"`
	VehicleID     *uuid.UUID      `json:"vehicle_id,omitempty"`
	OfficerID     uuid.UUID       `json:"officer_id"`
	ViolationCode string          `json:"violation_code"`
	ViolationAt   time.Time       `json:"violation_at"`
	IssuedAt      time.Time       `json:"issued_at"`
	Location      string          `json:"location"`
	FineAmount    int64           `json:"fine_amount"`
	Notes         string          `json:"notes,omitempty"`
	Status        citation.Status `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type paymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Amount    int64           `json:"amount"`
	Method    citation.Method `json:"method"`
	Reference string          `json:"reference,omitempty"`
	PaidAt    time.Time       `json:"paid_at"`
}

type pointGrantResponse struct {
	Points      int       `json:"points"`
	EffectiveAt time.Time `json:"effective_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type warrantResponse struct {
	ID        uuid.UUID              `json:"id"`
	IssuedAt  time.Time              `json:"issued_at"`
	AmountDue int64                  `json:"amount_due"`
	Status    citation.WarrantStatus `json:"status"`
}

type detailResponse struct {
	citationResponse
	TotalPaid   int64                `json:"total_paid"`
	Outstanding int64                `json:"outstanding"`
	Payments    []paymentResponse    `json:"payments"`
	Points      []pointGrantResponse `json:"points"`
	Warrants    []warrantResponse    `json:"warrants"`
}

type overdueRowResponse struct {
	CitationNumber       string `json:"citation_number"`
	DriverName           string `json:"driver_name"`
	LicenseNumber        string `json:"license_number"`
	ViolationCode        string `json:"violation_code"`
	ViolationDescription string `json:"violation_description"`
	OutstandingAmount    int64  `json:"outstanding_amount"`
	DaysOverdue          int    `json:"days_overdue"`
	Warrant              bool   `json:"warrant"`
}

func toCitationResponse(c *citation.Citation) citationResponse {
	return citationResponse{
		Number:        c.Number,
		DriverID:      c.DriverID,
		VehicleID:     c.VehicleID,
		OfficerID:     c.OfficerID,
		ViolationCode: c.ViolationCode,
		ViolationAt:   c.ViolationAt,
		IssuedAt:      c.IssuedAt,
		Location:      c.Location,
		FineAmount:    c.FineAmount,
		Notes:         c.Notes,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
	}
}

func toDetailResponse(d *citation.Detail) detailResponse {
	resp := detailResponse{
		citationResponse: toCitationResponse(&d.Citation),
		TotalPaid:        d.TotalPaid,
		Outstanding:      d.Outstanding(),
		Payments:         make([]paymentResponse, 0, len(d.Payments)),
		Points:           make([]pointGrantResponse, 0, len(d.Points)),
		Warrants:         make([]warrantResponse, 0, len(d.Warrants)),
	}

	for _, p := range d.Payments {
		resp.Payments = append(resp.Payments, paymentResponse{
			ID:        p.ID,
			Amount:    p.Amount,
			Method:    p.Method,
			Reference: p.Reference,
			PaidAt:    p.PaidAt,
		})
	}

	for _, g := range d.Points {
		resp.Points = append(resp.Points, pointGrantResponse{
			Points:      g.Points,
			EffectiveAt: g.EffectiveAt,
			ExpiresAt:   g.ExpiresAt,
		})
	}

	for _, w := range d.Warrants {
		resp.Warrants = append(resp.Warrants, warrantResponse{
			ID:        w.ID,
			IssuedAt:  w.IssuedAt,
			AmountDue: w.AmountDue,
			Status:    w.Status,
		})
	}

	return resp
}

func toReportResponse(rows []citation.OverdueRow) []overdueRowResponse {
	resp := make([]overdueRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = overdueRowResponse{
			CitationNumber:       row.CitationNumber,
			DriverName:           row.DriverName,
			LicenseNumber:        row.LicenseNumber,
			ViolationCode:        row.ViolationCode,
			ViolationDescription: row.ViolationDescription,
			OutstandingAmount:    row.OutstandingAmount,
			DaysOverdue:          row.DaysOverdue,
			Warrant:              row.WarrantFlag,
		}
	}

	return resp
}
