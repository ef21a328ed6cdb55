package employee

import (
	"context"
	"time"

	employeeerrors "go-roster/internal/employee/errors"
	"go-roster/internal/events"
	"go-roster/internal/report"
	"go-roster/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	Initialize(ctx context.Context) error
	List(ctx context.Context, f Filter) (ListResult, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, req EmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req EmployeeRequest) (Employee, error)
	SetActive(ctx context.Context, id string, active bool) (Employee, error)
	Delete(ctx context.Context, id string) error
	Report(ctx context.Context, f Filter) (report.Report, error)
}

type service struct {
	repo      Repository
	validator *Validator
	publisher EventPublisher
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{
		repo:      repo,
		validator: NewValidator(),
		publisher: publisher,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) Initialize(ctx context.Context) error {
	seeded, err := s.repo.Initialize(ctx)
	if err != nil {
		s.log(ctx).Error("initialize roster failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if seeded {
		s.log(ctx).Info("roster seeded from fixture")
	}
	return nil
}

func (s *service) List(ctx context.Context, f Filter) (ListResult, error) {
	s.log(ctx).Debug("list employees requested",
		zap.String("search", f.Search),
		zap.String("gender", string(f.Gender)),
		zap.String("status", string(f.Status)),
		zap.String("sort_by", string(f.SortBy)),
	)
	all, err := s.repo.List(ctx)
	if err != nil {
		s.log(ctx).Error("list employees failed", zap.Error(err))
		return ListResult{}, mapRepositoryError(err)
	}

	return ListResult{
		Employees: Query(all, f),
		Summary:   Summarize(all),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Employee, error) {
	empl, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log(ctx).Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return Employee{}, mapRepositoryError(err)
	}
	if !found {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}
	return empl, nil
}

func (s *service) Create(ctx context.Context, req EmployeeRequest) (Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	fields := req.Fields()

	if res := s.validator.Validate(fields); !res.Valid {
		s.log(ctx).Warn("create employee validation failed",
			zap.String("request_id", rid),
			zap.Any("field_errors", res.FieldErrors),
		)
		return Employee{}, employeeerrors.NewValidationError(res.FieldErrors)
	}

	empl, err := s.repo.Create(ctx, fields)
	if err != nil {
		s.log(ctx).Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return Employee{}, mapRepositoryError(err)
	}

	s.publish(ctx, events.EmployeeCreated, empl)
	s.log(ctx).Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID),
	)
	return empl, nil
}

func (s *service) Update(ctx context.Context, id string, req EmployeeRequest) (Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	fields := req.Fields()

	if res := s.validator.Validate(fields); !res.Valid {
		s.log(ctx).Warn("update employee validation failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Any("field_errors", res.FieldErrors),
		)
		return Employee{}, employeeerrors.NewValidationError(res.FieldErrors)
	}

	return s.applyPatch(ctx, id, req.Patch(fields))
}

// SetActive flips the active flag without running the form validator.
func (s *service) SetActive(ctx context.Context, id string, active bool) (Employee, error) {
	return s.applyPatch(ctx, id, EmployeePatch{Active: &active})
}

func (s *service) applyPatch(ctx context.Context, id string, patch EmployeePatch) (Employee, error) {
	rid := contextutil.GetRequestID(ctx)

	empl, found, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.log(ctx).Error("update employee persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return Employee{}, mapRepositoryError(err)
	}
	if !found {
		s.log(ctx).Warn("update employee not found", zap.String("employee_id", id))
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}

	s.publish(ctx, events.EmployeeUpdated, empl)
	s.log(ctx).Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return empl, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log(ctx).Error("delete employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	if !deleted {
		s.log(ctx).Warn("delete employee not found", zap.String("employee_id", id))
		return employeeerrors.ErrEmployeeNotFound
	}

	s.publish(ctx, events.EmployeeDeleted, Employee{ID: id})
	s.log(ctx).Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return nil
}

func (s *service) Report(ctx context.Context, f Filter) (report.Report, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		s.log(ctx).Error("report list employees failed", zap.Error(err))
		return report.Report{}, mapRepositoryError(err)
	}

	view := Query(all, f)
	counts := Summarize(view)

	rows := make([]report.Row, len(view))
	for i, e := range view {
		rows[i] = report.Row{
			ID:          e.ID,
			Name:        e.Name,
			Gender:      string(e.Gender),
			DateOfBirth: e.DateOfBirth,
			State:       e.State,
			Active:      e.Active,
		}
	}

	return report.Report{
		Title:       report.DefaultTitle,
		GeneratedAt: s.now(),
		Summary: report.Summary{
			Total:    counts.Total,
			Active:   counts.Active,
			Inactive: counts.Inactive,
		},
		Rows: rows,
	}, nil
}

// publish never fails the caller: the write has already been persisted.
func (s *service) publish(ctx context.Context, eventType string, empl Employee) {
	event := events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: empl.ID,
		Name:       empl.Name,
		OccurredAt: s.now().UTC(),
	}
	if eventType != events.EmployeeDeleted {
		active := empl.Active
		event.Active = &active
	}

	if err := s.publisher.PublishLifecycle(ctx, event); err != nil {
		s.log(ctx).Warn("publish employee lifecycle event failed",
			zap.String("event_type", eventType),
			zap.String("employee_id", empl.ID),
			zap.Error(err),
		)
	}
}
