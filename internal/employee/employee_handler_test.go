package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-roster/internal/employee"
	employeeerrors "go-roster/internal/employee/errors"
	"go-roster/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	InitializeFn func(ctx context.Context) error
	ListFn       func(ctx context.Context, f employee.Filter) (employee.ListResult, error)
	GetByIDFn    func(ctx context.Context, id string) (employee.Employee, error)
	CreateFn     func(ctx context.Context, req employee.EmployeeRequest) (employee.Employee, error)
	UpdateFn     func(ctx context.Context, id string, req employee.EmployeeRequest) (employee.Employee, error)
	SetActiveFn  func(ctx context.Context, id string, active bool) (employee.Employee, error)
	DeleteFn     func(ctx context.Context, id string) error
	ReportFn     func(ctx context.Context, f employee.Filter) (report.Report, error)
}

func (f *fakeEmployeeService) Initialize(ctx context.Context) error {
	return f.InitializeFn(ctx)
}
func (f *fakeEmployeeService) List(ctx context.Context, filter employee.Filter) (employee.ListResult, error) {
	return f.ListFn(ctx, filter)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Create(ctx context.Context, req employee.EmployeeRequest) (employee.Employee, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.EmployeeRequest) (employee.Employee, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) SetActive(ctx context.Context, id string, active bool) (employee.Employee, error) {
	return f.SetActiveFn(ctx, id, active)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeEmployeeService) Report(ctx context.Context, filter employee.Filter) (report.Report, error) {
	return f.ReportFn(ctx, filter)
}

type staticGate struct {
	userID string
}

func (g staticGate) CurrentUserID() (string, bool) {
	return g.userID, g.userID != ""
}

func setupRouter(svc employee.Service, gate staticGate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	employee.RegisterRoutes(router.Group("/api/v1"), employee.NewHandler(svc), gate, nil)
	return router
}

func loggedIn() staticGate { return staticGate{userID: "user_1"} }

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEmployeeHandler_RequiresSession(t *testing.T) {
	router := setupRouter(&fakeEmployeeService{}, staticGate{})

	w := doRequest(router, http.MethodGet, "/api/v1/employees", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, w).Error.Code)
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("binds filter and returns meta", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(_ context.Context, f employee.Filter) (employee.ListResult, error) {
				assert.Equal(t, employee.Filter{
					Search: "am",
					Gender: employee.GenderFemale,
					Status: employee.StatusActive,
					SortBy: employee.SortByState,
				}, f)
				return employee.ListResult{
					Employees: []employee.Employee{{ID: "EMP008", Name: "Amanda Davis", Active: true}},
					Summary:   employee.Counts{Total: 10, Active: 7, Inactive: 3},
				}, nil
			},
		}
		router := setupRouter(svc, loggedIn())

		w := doRequest(router, http.MethodGet, "/api/v1/employees?q=am&gender=Female&status=active&sort_by=state", "")

		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		assert.True(t, env.Ok)
		var meta employee.ListMeta
		require.NoError(t, json.Unmarshal(env.Meta, &meta))
		assert.Equal(t, employee.ListMeta{Total: 10, Active: 7, Inactive: 3, Matched: 1}, meta)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		router := setupRouter(&fakeEmployeeService{}, loggedIn())

		w := doRequest(router, http.MethodGet, "/api/v1/employees?status=retired", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(_ context.Context, id string) (employee.Employee, error) {
				return employee.Employee{ID: id, Name: "Sarah Johnson"}, nil
			},
		}
		router := setupRouter(svc, loggedIn())

		w := doRequest(router, http.MethodGet, "/api/v1/employees/EMP001", "")

		require.Equal(t, http.StatusOK, w.Code)
		var got employee.Employee
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
		assert.Equal(t, "EMP001", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(context.Context, string) (employee.Employee, error) {
				return employee.Employee{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		router := setupRouter(svc, loggedIn())

		w := doRequest(router, http.MethodGet, "/api/v1/employees/nope", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Employee not found", decode(t, w).Error.Message)
	})
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(_ context.Context, req employee.EmployeeRequest) (employee.Employee, error) {
				assert.Equal(t, "Amy", req.Name)
				assert.Nil(t, req.Active)
				return employee.Employee{ID: "EMP-1", Name: req.Name, Active: true}, nil
			},
		}
		router := setupRouter(svc, loggedIn())

		w := doRequest(router, http.MethodPost, "/api/v1/employees",
			`{"name":"Amy","dateOfBirth":"1990-01-01","state":"Texas"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation errors carry field messages", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, employee.EmployeeRequest) (employee.Employee, error) {
				return employee.Employee{}, employeeerrors.NewValidationError(map[string]string{
					"name": employee.MsgNameRequired,
				})
			},
		}
		router := setupRouter(svc, loggedIn())

		w := doRequest(router, http.MethodPost, "/api/v1/employees",
			`{"name":"  ","dateOfBirth":"1990-01-01","state":"Texas"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		var details map[string]string
		require.NoError(t, json.Unmarshal(env.Error.Details, &details))
		assert.Equal(t, "Name is required", details["name"])
	})

	t.Run("malformed body", func(t *testing.T) {
		router := setupRouter(&fakeEmployeeService{}, loggedIn())

		w := doRequest(router, http.MethodPost, "/api/v1/employees", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, w).Error.Code)
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, employee.EmployeeRequest) (employee.Employee, error) {
				return employee.Employee{}, errors.New("disk full")
			},
		}
		router := setupRouter(svc, loggedIn())

		w := doRequest(router, http.MethodPost, "/api/v1/employees", `{"name":"A"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "disk full")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	svc := &fakeEmployeeService{
		UpdateFn: func(_ context.Context, id string, req employee.EmployeeRequest) (employee.Employee, error) {
			if id != "EMP001" {
				return employee.Employee{}, employeeerrors.ErrEmployeeNotFound
			}
			return employee.Employee{ID: id, Name: req.Name}, nil
		},
	}
	router := setupRouter(svc, loggedIn())
	body := `{"name":"Sarah","dateOfBirth":"1990-03-15","state":"California","gender":"Female"}`

	w := doRequest(router, http.MethodPut, "/api/v1/employees/EMP001", body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPut, "/api/v1/employees/nope", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeHandler_UpdateStatus(t *testing.T) {
	t.Run("toggles", func(t *testing.T) {
		svc := &fakeEmployeeService{
			SetActiveFn: func(_ context.Context, id string, active bool) (employee.Employee, error) {
				assert.False(t, active)
				return employee.Employee{ID: id, Active: active}, nil
			},
		}
		router := setupRouter(svc, loggedIn())

		w := doRequest(router, http.MethodPatch, "/api/v1/employees/EMP001/status", `{"active":false}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("requires the flag", func(t *testing.T) {
		router := setupRouter(&fakeEmployeeService{}, loggedIn())

		w := doRequest(router, http.MethodPatch, "/api/v1/employees/EMP001/status", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	svc := &fakeEmployeeService{
		DeleteFn: func(_ context.Context, id string) error {
			if id == "EMP001" {
				return nil
			}
			return employeeerrors.ErrEmployeeNotFound
		},
	}
	router := setupRouter(svc, loggedIn())

	w := doRequest(router, http.MethodDelete, "/api/v1/employees/EMP001", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/employees/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeHandler_Report(t *testing.T) {
	svc := &fakeEmployeeService{
		ReportFn: func(_ context.Context, f employee.Filter) (report.Report, error) {
			assert.Equal(t, employee.StatusInactive, f.Status)
			return report.Report{
				Title:       report.DefaultTitle,
				GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
				Summary:     report.Summary{Total: 1, Inactive: 1},
				Rows:        []report.Row{{ID: "EMP003", Name: "Emily Rodriguez", State: "Texas"}},
			}, nil
		},
	}

	t.Run("html", func(t *testing.T) {
		router := setupRouter(svc, loggedIn())

		w := doRequest(router, http.MethodGet, "/api/v1/employees/report?status=inactive", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "Emily Rodriguez")
	})

	t.Run("pdf", func(t *testing.T) {
		router := setupRouter(svc, loggedIn())

		w := doRequest(router, http.MethodGet, "/api/v1/employees/report?status=inactive&format=pdf", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
	})

	t.Run("unknown format", func(t *testing.T) {
		router := setupRouter(svc, loggedIn())

		w := doRequest(router, http.MethodGet, "/api/v1/employees/report?format=docx", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
