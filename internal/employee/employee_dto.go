package employee

// EmployeeRequest is the body of create and full-update calls. Active is a
// pointer so an omitted flag can default to true on create and stay
// unchanged on update.
type EmployeeRequest struct {
	Name         string  `json:"name"`
	Gender       Gender  `json:"gender"`
	DateOfBirth  string  `json:"dateOfBirth"`
	State        string  `json:"state"`
	ProfileImage *string `json:"profileImage"`
	Active       *bool   `json:"active"`
}

// Fields resolves the request into candidate fields, applying the form
// defaults (gender Male, active true).
func (r EmployeeRequest) Fields() EmployeeFields {
	f := EmployeeFields{
		Name:         r.Name,
		Gender:       r.Gender,
		DateOfBirth:  r.DateOfBirth,
		State:        r.State,
		ProfileImage: r.ProfileImage,
		Active:       true,
	}
	if f.Gender == "" {
		f.Gender = GenderMale
	}
	if r.Active != nil {
		f.Active = *r.Active
	}
	return f
}

// Patch turns validated fields into a full-replacement patch. A nil
// ProfileImage clears the stored image. Omitted gender and active keep
// their stored values; the Male default applies on create only.
func (r EmployeeRequest) Patch(f EmployeeFields) EmployeePatch {
	image := ""
	if f.ProfileImage != nil {
		image = *f.ProfileImage
	}
	p := EmployeePatch{
		Name:         &f.Name,
		DateOfBirth:  &f.DateOfBirth,
		State:        &f.State,
		ProfileImage: &image,
	}
	if r.Gender != "" {
		gender := f.Gender
		p.Gender = &gender
	}
	if r.Active != nil {
		active := *r.Active
		p.Active = &active
	}
	return p
}

type StatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ListQuery binds the view parameters of list and report calls.
type ListQuery struct {
	Q      string `form:"q"`
	Gender string `form:"gender" binding:"omitempty,oneof=Male Female Other"`
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
	SortBy string `form:"sort_by" binding:"omitempty,oneof=name state status active"`
	Format string `form:"format" binding:"omitempty,oneof=html pdf"`
}

func (q ListQuery) Filter() Filter {
	return Filter{
		Search: q.Q,
		Gender: Gender(q.Gender),
		Status: Status(q.Status),
		SortBy: SortKey(q.SortBy),
	}
}

// ListResult is a view plus the counts of the whole roster, which the
// dashboard header shows regardless of filters.
type ListResult struct {
	Employees []Employee
	Summary   Counts
}

type ListMeta struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Matched  int `json:"matched"`
}
