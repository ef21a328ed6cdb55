package employee

import "time"

// DateLayout is the persisted form of dateOfBirth and createdAt.
const DateLayout = "2006-01-02"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Employee is the single persisted record. The JSON shape is the storage
// format of the "employees" key and must stay stable.
type Employee struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Gender       Gender  `json:"gender"`
	DateOfBirth  string  `json:"dateOfBirth"`
	State        string  `json:"state"`
	ProfileImage *string `json:"profileImage,omitempty"`
	Active       bool    `json:"active"`
	CreatedAt    string  `json:"createdAt"`
}

// EmployeeFields is everything a caller may supply when creating a record.
// id and createdAt are owned by the repository.
type EmployeeFields struct {
	Name         string  `json:"name" validate:"notblank"`
	Gender       Gender  `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth  string  `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	State        string  `json:"state" validate:"usstate"`
	ProfileImage *string `json:"profileImage,omitempty"`
	Active       bool    `json:"active"`
}

// EmployeePatch is a partial update. Nil members are left untouched. A
// non-nil ProfileImage pointing at "" removes the image.
type EmployeePatch struct {
	Name         *string
	Gender       *Gender
	DateOfBirth  *string
	State        *string
	ProfileImage *string
	Active       *bool
}

func (p EmployeePatch) apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Gender != nil {
		e.Gender = *p.Gender
	}
	if p.DateOfBirth != nil {
		e.DateOfBirth = *p.DateOfBirth
	}
	if p.State != nil {
		e.State = *p.State
	}
	if p.ProfileImage != nil {
		e.ProfileImage = normalizeImage(p.ProfileImage)
	}
	if p.Active != nil {
		e.Active = *p.Active
	}
	return e
}

func newEmployee(id string, f EmployeeFields, now time.Time) Employee {
	return Employee{
		ID:           id,
		Name:         f.Name,
		Gender:       f.Gender,
		DateOfBirth:  f.DateOfBirth,
		State:        f.State,
		ProfileImage: normalizeImage(f.ProfileImage),
		Active:       f.Active,
		CreatedAt:    now.Format(DateLayout),
	}
}

func normalizeImage(img *string) *string {
	if img == nil || *img == "" {
		return nil
	}
	v := *img
	return &v
}

// States is the fixed set of jurisdictions a record may belong to.
var States = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California",
	"Colorado", "Connecticut", "Delaware", "Florida", "Georgia",
	"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland",
	"Massachusetts", "Michigan", "Minnesota", "Mississippi", "Missouri",
	"Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

var stateSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(States))
	for _, s := range States {
		m[s] = struct{}{}
	}
	return m
}()

func IsValidState(s string) bool {
	_, ok := stateSet[s]
	return ok
}
