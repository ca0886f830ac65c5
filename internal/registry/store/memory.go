package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rgoodwin/finewarden/internal/registry"
)

// Memory is an in-memory Repository used by tests and local tooling.
type Memory struct {
	mu             sync.RWMutex
	drivers        map[string]registry.Driver
	vehicles       map[string]registry.Vehicle
	officers       map[uuid.UUID]registry.Officer
	violationTypes map[string]registry.ViolationType
}

func NewMemory() *Memory {
	return &Memory{
		drivers:        make(map[string]registry.Driver),
		vehicles:       make(map[string]registry.Vehicle),
		officers:       make(map[uuid.UUID]registry.Officer),
		violationTypes: make(map[string]registry.ViolationType),
	}
}

func (m *Memory) AddDriver(d registry.Driver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[strings.ToUpper(d.LicenseNumber)] = d
}

func (m *Memory) AddVehicle(v registry.Vehicle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[strings.ToUpper(v.PlateNumber)] = v
}

func (m *Memory) AddOfficer(o registry.Officer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.officers[o.ID] = o
}

func (m *Memory) AddViolationType(vt registry.ViolationType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.violationTypes[vt.Code] = vt
}

func (m *Memory) FindDriverByLicense(_ context.Context, licenseNumber string) (*registry.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.drivers[strings.ToUpper(licenseNumber)]
	if !ok {
		return nil, registry.ErrDriverNotFound
	}

	return &d, nil
}

// DriverByID looks a driver up by primary key. Used by read-side projections
// that already hold a driver reference.
func (m *Memory) DriverByID(_ context.Context, id uuid.UUID) (*registry.Driver, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, d := range m.drivers {
		if d.ID == id {
			return &d, nil
		}
	}

	return nil, registry.ErrDriverNotFound
}

func (m *Memory) FindVehicleByPlate(_ context.Context, plateNumber string) (*registry.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.vehicles[strings.ToUpper(plateNumber)]
	if !ok {
		return nil, registry.ErrVehicleNotFound
	}

	return &v, nil
}

func (m *Memory) FindOfficer(_ context.Context, id uuid.UUID) (*registry.Officer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.officers[id]
	if !ok {
		return nil, registry.ErrOfficerNotFound
	}

	return &o, nil
}

func (m *Memory) FindViolationType(_ context.Context, code string) (*registry.ViolationType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	vt, ok := m.violationTypes[code]
	if !ok {
		return nil, registry.ErrViolationTypeNotFound
	}

	return &vt, nil
}
