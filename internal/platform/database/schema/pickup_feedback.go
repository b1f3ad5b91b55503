package schema

// PickupFeedbackTable represents the 'pickup.feedback' table
type PickupFeedbackTable struct {
	Table      string
	ID         string
	FeedbackID string
	UserID     string
	FacilityID string
	Rating     string
	Review     string
	CreatedAt  string
}

// PickupFeedback is the schema definition for pickup.feedback
var PickupFeedback = PickupFeedbackTable{
	Table:      "pickup.feedback",
	ID:         "id",
	FeedbackID: "feedbackid",
	UserID:     "userid",
	FacilityID: "facilityid",
	Rating:     "rating",
	Review:     "review",
	CreatedAt:  "createdat",
}

func (t PickupFeedbackTable) Columns() []string {
	return []string{t.ID, t.FeedbackID, t.UserID, t.FacilityID, t.Rating, t.Review, t.CreatedAt}
}
