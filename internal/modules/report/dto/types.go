package dto

const (
	ExportApplications = "applications"
	ExportStudy        = "study"
)

type ExportOutput struct {
	Kind string `json:"kind"`
	Rows int    `json:"rows"`
}

// WeeklyInput selects the week containing Date (today when empty). An empty
// Path writes to the reports directory under the week label.
type WeeklyInput struct {
	Date string
	Path string
}

type WeeklyOutput struct {
	Path         string `json:"path"`
	Week         string `json:"week"`
	Created      bool   `json:"created"`
	Applications int    `json:"applications"`
	StudyMinutes int    `json:"study_minutes"`
}
