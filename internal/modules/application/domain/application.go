package domain

import (
	"strings"
	"time"

	"hunttrack/internal/platform/clock"
	apperrors "hunttrack/internal/platform/errors"
)

// StatusSet is the closed, ordered set of lifecycle stages an application
// may be in. Matching is case-insensitive; stored values use the configured
// spelling.
type StatusSet struct {
	ordered []string
	index   map[string]int
}

func NewStatusSet(options []string) (StatusSet, error) {
	if len(options) == 0 {
		return StatusSet{}, apperrors.Invalid("status_options", "at least one status is required")
	}
	set := StatusSet{ordered: make([]string, 0, len(options)), index: make(map[string]int, len(options))}
	for _, option := range options {
		option = strings.TrimSpace(option)
		if option == "" {
			return StatusSet{}, apperrors.Invalid("status_options", "blank status")
		}
		key := strings.ToLower(option)
		if _, dup := set.index[key]; dup {
			return StatusSet{}, apperrors.Invalid("status_options", "duplicate status %q", option)
		}
		set.index[key] = len(set.ordered)
		set.ordered = append(set.ordered, option)
	}
	return set, nil
}

// Canonical returns the configured spelling of status or a validation error.
func (s StatusSet) Canonical(status string) (string, error) {
	idx, ok := s.index[strings.ToLower(strings.TrimSpace(status))]
	if !ok {
		return "", apperrors.Invalid("status", "%q is not one of %s", status, strings.Join(s.ordered, ", "))
	}
	return s.ordered[idx], nil
}

func (s StatusSet) Contains(status string) bool {
	_, ok := s.index[strings.ToLower(strings.TrimSpace(status))]
	return ok
}

func (s StatusSet) Values() []string {
	return append([]string(nil), s.ordered...)
}

// Initial is the status a new application gets when none is given.
func (s StatusSet) Initial() string {
	if len(s.ordered) == 0 {
		return ""
	}
	return s.ordered[0]
}

type Application struct {
	ID             string
	Company        string
	Role           string
	Status         string
	AppliedDate    time.Time
	ResumeRef      string
	CoverLetterRef string
	Notes          string
	LastUpdated    time.Time
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Company        *string
	Role           *string
	Status         *string
	AppliedDate    *time.Time
	ResumeRef      *string
	CoverLetterRef *string
	Notes          *string
}

func (p Patch) Empty() bool {
	return p.Company == nil && p.Role == nil && p.Status == nil && p.AppliedDate == nil &&
		p.ResumeRef == nil && p.CoverLetterRef == nil && p.Notes == nil
}

func (a Application) Apply(p Patch) Application {
	if p.Company != nil {
		a.Company = *p.Company
	}
	if p.Role != nil {
		a.Role = *p.Role
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.AppliedDate != nil {
		a.AppliedDate = clock.Day(*p.AppliedDate)
	}
	if p.ResumeRef != nil {
		a.ResumeRef = *p.ResumeRef
	}
	if p.CoverLetterRef != nil {
		a.CoverLetterRef = *p.CoverLetterRef
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	return a
}

// Normalize trims free text, truncates the applied date to a calendar day
// and rewrites the status to its configured spelling.
func (a Application) Normalize(statuses StatusSet) (Application, error) {
	a.Company = strings.TrimSpace(a.Company)
	a.Role = strings.TrimSpace(a.Role)
	a.Notes = strings.TrimSpace(a.Notes)
	a.ResumeRef = strings.TrimSpace(a.ResumeRef)
	a.CoverLetterRef = strings.TrimSpace(a.CoverLetterRef)
	if !a.AppliedDate.IsZero() {
		a.AppliedDate = clock.Day(a.AppliedDate)
	}
	status, err := statuses.Canonical(a.Status)
	if err != nil {
		return Application{}, err
	}
	a.Status = status
	return a, nil
}

func (a Application) Validate(statuses StatusSet) error {
	if strings.TrimSpace(a.ID) == "" {
		return apperrors.Invalid("id", "required")
	}
	if strings.TrimSpace(a.Company) == "" {
		return apperrors.Invalid("company", "required")
	}
	if strings.TrimSpace(a.Role) == "" {
		return apperrors.Invalid("role", "required")
	}
	if !statuses.Contains(a.Status) {
		return apperrors.Invalid("status", "%q is not a configured status", a.Status)
	}
	if a.AppliedDate.IsZero() {
		return apperrors.Invalid("applied_date", "required")
	}
	if a.LastUpdated.IsZero() {
		return apperrors.Invalid("last_updated", "required")
	}
	if a.AppliedDate.After(clock.Day(a.LastUpdated)) {
		return apperrors.Invalid("applied_date", "%s is in the future", a.AppliedDate.Format(clock.DateLayout))
	}
	return nil
}

// Filter narrows a listing. Empty Statuses matches every status; From and To
// are inclusive calendar days.
type Filter struct {
	Statuses []string
	From     *time.Time
	To       *time.Time
}

func (f Filter) Validate() error {
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return apperrors.Invalid("date range", "from %s is after to %s", f.From.Format(clock.DateLayout), f.To.Format(clock.DateLayout))
	}
	return nil
}
