package employee_test

import (
	"testing"

	"go-roster/internal/employee"

	"github.com/stretchr/testify/assert"
)

func ids(records []employee.Employee) []string {
	out := make([]string, len(records))
	for i, e := range records {
		out[i] = e.ID
	}
	return out
}

func TestQuery_SearchAndStatus(t *testing.T) {
	records := []employee.Employee{
		{ID: "1", Name: "Amy", State: "Texas", Active: true},
		{ID: "2", Name: "Bob", State: "Ohio", Active: false},
	}

	got := employee.Query(records, employee.Filter{
		Search: "a",
		Status: employee.StatusActive,
		SortBy: employee.SortByName,
	})

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestQuery_SearchIsCaseInsensitive(t *testing.T) {
	records := []employee.Employee{
		{ID: "1", Name: "Sarah Johnson"},
		{ID: "2", Name: "Michael Chen"},
	}

	assert.Equal(t, []string{"1"}, ids(employee.Query(records, employee.Filter{Search: "JOHN"})))
	assert.Equal(t, []string{"2", "1"}, ids(employee.Query(records, employee.Filter{Search: ""})))
}

func TestQuery_FilterOrderIndependence(t *testing.T) {
	fixture, err := employee.DefaultFixture()
	assert.NoError(t, err)

	genderFirst := employee.Query(
		employee.Query(fixture, employee.Filter{Gender: employee.GenderFemale}),
		employee.Filter{Status: employee.StatusActive},
	)
	statusFirst := employee.Query(
		employee.Query(fixture, employee.Filter{Status: employee.StatusActive}),
		employee.Filter{Gender: employee.GenderFemale},
	)
	combined := employee.Query(fixture, employee.Filter{
		Gender: employee.GenderFemale,
		Status: employee.StatusActive,
	})

	assert.ElementsMatch(t, ids(genderFirst), ids(statusFirst))
	assert.Equal(t, ids(genderFirst), ids(combined))
	assert.Equal(t, []string{"EMP008", "EMP010", "EMP001"}, ids(combined))
}

func TestQuery_Sorting(t *testing.T) {
	records := []employee.Employee{
		{ID: "1", Name: "charlie", State: "Texas", Active: true},
		{ID: "2", Name: "Alice", State: "Ohio", Active: false},
		{ID: "3", Name: "bob", State: "Alabama", Active: true},
		{ID: "4", Name: "Dana", State: "Ohio", Active: false},
	}

	tests := []struct {
		name string
		key  employee.SortKey
		want []string
	}{
		{"default is name", "", []string{"2", "3", "1", "4"}},
		{"name ignores case", employee.SortByName, []string{"2", "3", "1", "4"}},
		{"state keeps input order on ties", employee.SortByState, []string{"3", "2", "4", "1"}},
		{"status puts inactive first", employee.SortByStatus, []string{"2", "4", "1", "3"}},
		{"active alias", employee.SortByActive, []string{"2", "4", "1", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := employee.Query(records, employee.Filter{SortBy: tt.key})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	records := []employee.Employee{
		{ID: "1", Name: "Zed"},
		{ID: "2", Name: "Amy"},
	}

	_ = employee.Query(records, employee.Filter{SortBy: employee.SortByName})

	assert.Equal(t, []string{"1", "2"}, ids(records))
}

func TestQuery_EmptyInput(t *testing.T) {
	got := employee.Query(nil, employee.Filter{Search: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummarize(t *testing.T) {
	fixture, _ := employee.DefaultFixture()

	assert.Equal(t, employee.Counts{Total: 10, Active: 7, Inactive: 3}, employee.Summarize(fixture))
	assert.Equal(t, employee.Counts{}, employee.Summarize(nil))
}
