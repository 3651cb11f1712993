package dto

type AchievementOutput struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Threshold   int     `json:"threshold"`
	Unlocked    bool    `json:"unlocked"`
	UnlockedAt  string  `json:"unlocked_at,omitempty"`
	Progress    float64 `json:"progress"`
}
