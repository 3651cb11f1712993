package dto

// LogInput records a session. Duration accepts the forms minutes.Parse
// understands; Minutes is used when Duration is empty. An empty Date is today.
type LogInput struct {
	Date       string `json:"date"`
	Minutes    int    `json:"minutes_studied"`
	Duration   string `json:"duration"`
	TopicNotes string `json:"topic_notes"`
}

type UpdateInput struct {
	ID         string  `json:"-"`
	Date       *string `json:"date"`
	Minutes    *int    `json:"minutes_studied"`
	Duration   *string `json:"duration"`
	TopicNotes *string `json:"topic_notes"`
}

type ListInput struct {
	From string
	To   string
}

type StudyLogOutput struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Minutes     int    `json:"minutes_studied"`
	TopicNotes  string `json:"topic_notes,omitempty"`
	LastUpdated string `json:"last_updated"`
}

type ResetOutput struct {
	Deleted int `json:"deleted"`
}
