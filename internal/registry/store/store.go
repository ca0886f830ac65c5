package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/rgoodwin/finewarden/internal/registry"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindDriverByLicense(ctx context.Context, licenseNumber string) (*registry.Driver, error) {
	query := `
		SELECT id, license_number, first_name, last_name, date_of_birth
		FROM drivers
		WHERE license_number = $1
	`

	var d registry.Driver

	err := s.db.QueryRowContext(ctx, query, licenseNumber).Scan(
		&d.ID, &d.LicenseNumber, &d.FirstName, &d.LastName, &d.DateOfBirth,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, registry.ErrDriverNotFound
		}

		return nil, fmt.Errorf("finding driver: %w", err)
	}

	return &d, nil
}

func (s *Store) FindVehicleByPlate(ctx context.Context, plateNumber string) (*registry.Vehicle, error) {
	query := `
		SELECT id, plate_number, make, model, year, owner_id
		FROM vehicles
		WHERE plate_number = $1
	`

	var v registry.Vehicle

	err := s.db.QueryRowContext(ctx, query, plateNumber).Scan(
		&v.ID, &v.PlateNumber, &v.Make, &v.Model, &v.Year, &v.OwnerID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, registry.ErrVehicleNotFound
		}

		return nil, fmt.Errorf("finding vehicle: %w", err)
	}

	return &v, nil
}

func (s *Store) FindOfficer(ctx context.Context, id uuid.UUID) (*registry.Officer, error) {
	query := `
		SELECT id, badge_number, first_name, last_name, active
		FROM officers
		WHERE id = $1
	`

	var o registry.Officer

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.BadgeNumber, &o.FirstName, &o.LastName, &o.Active,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, registry.ErrOfficerNotFound
		}

		return nil, fmt.Errorf("finding officer: %w", err)
	}

	return &o, nil
}

func (s *Store) FindViolationType(ctx context.Context, code string) (*registry.ViolationType, error) {
	query := `
		SELECT code, description, base_fine, moving, points
		FROM violation_types
		WHERE code = $1
	`

	var vt registry.ViolationType

	err := s.db.QueryRowContext(ctx, query, code).Scan(
		&vt.Code, &vt.Description, &vt.BaseFine, &vt.Moving, &vt.Points,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, registry.ErrViolationTypeNotFound
		}

		return nil, fmt.Errorf("finding violation type: %w", err)
	}

	return &vt, nil
}
