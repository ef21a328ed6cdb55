package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go-roster/internal/storage"

	"github.com/google/uuid"
)

// StorageKey is the backend key holding the serialized roster.
const StorageKey = "employees"

// Repository is the record store. A missing id on Update or Delete is
// reported through the bool result, never as an error; errors are backend
// or decode failures only.
//
//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Initialize(ctx context.Context) (seeded bool, err error)
	List(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (Employee, bool, error)
	Create(ctx context.Context, fields EmployeeFields) (Employee, error)
	Update(ctx context.Context, id string, patch EmployeePatch) (Employee, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RepositoryOption func(*repository)

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *repository) { r.now = now }
}

// WithIDGenerator overrides how new record ids are drawn.
func WithIDGenerator(gen func() string) RepositoryOption {
	return func(r *repository) { r.newID = gen }
}

type repository struct {
	kv      storage.KV
	fixture []Employee
	now     func() time.Time
	newID   func() string

	// serializes read-modify-write cycles on the collection
	mu sync.Mutex
}

func NewRepository(kv storage.KV, fixture []Employee, opts ...RepositoryOption) Repository {
	r := &repository{
		kv:      kv,
		fixture: fixture,
		now:     time.Now,
		newID:   newEmployeeID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func newEmployeeID() string {
	return "EMP-" + uuid.NewString()
}

func (r *repository) Initialize(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	seed := r.fixture
	if seed == nil {
		seed = []Employee{}
	}
	if err := r.save(ctx, seed); err != nil {
		return false, err
	}
	return true, nil
}

func (r *repository) List(ctx context.Context) ([]Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, _, err := r.load(ctx)
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (Employee, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, _, err := r.load(ctx)
	if err != nil {
		return Employee{}, false, err
	}
	if i := indexOf(records, id); i >= 0 {
		return records[i], true, nil
	}
	return Employee{}, false, nil
}

func (r *repository) Create(ctx context.Context, fields EmployeeFields) (Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, _, err := r.load(ctx)
	if err != nil {
		return Employee{}, err
	}

	id := r.newID()
	for indexOf(records, id) >= 0 {
		id = r.newID()
	}

	empl := newEmployee(id, fields, r.now())
	records = append(records, empl)
	if err := r.save(ctx, records); err != nil {
		return Employee{}, err
	}
	return empl, nil
}

func (r *repository) Update(ctx context.Context, id string, patch EmployeePatch) (Employee, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, _, err := r.load(ctx)
	if err != nil {
		return Employee{}, false, err
	}

	i := indexOf(records, id)
	if i < 0 {
		return Employee{}, false, nil
	}

	records[i] = patch.apply(records[i])
	if err := r.save(ctx, records); err != nil {
		return Employee{}, false, err
	}
	return records[i], true, nil
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, _, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]Employee, 0, len(records))
	for _, e := range records {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}

	if err := r.save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// load treats an empty stored value the same as a missing key.
func (r *repository) load(ctx context.Context) ([]Employee, bool, error) {
	raw, ok, err := r.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, false, fmt.Errorf("load employees: %w", err)
	}
	if !ok || len(raw) == 0 {
		return []Employee{}, false, nil
	}

	var records []Employee
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false, fmt.Errorf("decode employees: %w", err)
	}
	if records == nil {
		records = []Employee{}
	}
	return records, true, nil
}

func (r *repository) save(ctx context.Context, records []Employee) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode employees: %w", err)
	}
	if err := r.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save employees: %w", err)
	}
	return nil
}

func indexOf(records []Employee, id string) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}
