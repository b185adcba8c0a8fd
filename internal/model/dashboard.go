package model

// Dashboard joins everything the overview page shows for a user.
type Dashboard struct {
	Topics          []Topic              `json:"topics"`
	Progress        []Progress           `json:"progress"`
	Recommendations []RecommendationItem `json:"recommendations"`
}
