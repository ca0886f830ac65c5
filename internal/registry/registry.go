package registry

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDriverNotFound        = errors.New("driver not found")
	ErrVehicleNotFound       = errors.New("vehicle not found")
	ErrOfficerNotFound       = errors.New("officer not found")
	ErrViolationTypeNotFound = errors.New("violation type not found")

	// ErrInactiveOfficer covers both a missing and a deactivated officer:
	// neither may be attributed a citation.
	ErrInactiveOfficer = errors.New("officer is not active")
)

// Driver is a licensed driver record.
type Driver struct {
	ID            uuid.UUID
	LicenseNumber string
	FirstName     string
	LastName      string
	DateOfBirth   time.Time
}

// FullName returns the driver's display name as used in reports.
func (d *Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}

// Vehicle is a registered vehicle record.
type Vehicle struct {
	ID          uuid.UUID
	PlateNumber string
	Make        string
	Model       string
	Year        int
	OwnerID     uuid.UUID
}

// Officer is a citing officer record.
type Officer struct {
	ID          uuid.UUID
	BadgeNumber string
	FirstName   string
	LastName    string
	Active      bool
}

// ViolationType is a violation-catalog entry. BaseFine is in cents.
type ViolationType struct {
	Code        string
	Description string
	BaseFine    int64
	Moving      bool
	Points      int
}

//go:generate mockgen -source=registry.go -destination=registry_mock.go -package=registry
type Repository interface {
	FindDriverByLicense(ctx context.Context, licenseNumber string) (*Driver, error)
	FindVehicleByPlate(ctx context.Context, plateNumber string) (*Vehicle, error)
	FindOfficer(ctx context.Context, id uuid.UUID) (*Officer, error)
	FindViolationType(ctx context.Context, code string) (*ViolationType, error)
}

// Service provides read-only reference lookups. The core never mutates
// reference data.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) DriverByLicense(ctx context.Context, licenseNumber string) (*Driver, error) {
	return s.repo.FindDriverByLicense(ctx, licenseNumber)
}

func (s *Service) VehicleByPlate(ctx context.Context, plateNumber string) (*Vehicle, error) {
	return s.repo.FindVehicleByPlate(ctx, plateNumber)
}

func (s *Service) ViolationType(ctx context.Context, code string) (*ViolationType, error) {
	return s.repo.FindViolationType(ctx, code)
}

// EnsureOfficerActive checks that a citation may be attributed to the officer.
// Pure check, no side effects.
func (s *Service) EnsureOfficerActive(ctx context.Context, id uuid.UUID) error {
	officer, err := s.repo.FindOfficer(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOfficerNotFound) {
			return ErrInactiveOfficer
		}

		return err
	}

	if !officer.Active {
		return ErrInactiveOfficer
	}

	return nil
}
