package subscriptions

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a subscription request as reviewed by the kitchen team. Start
// and end dates are YYYY-MM-DD keys; empty means not set.
type Request struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Status    Status `json:"status"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// HasActiveForDate reports whether the user holds an approved subscription
// covering the delivery date. Both boundaries are inclusive; the comparison
// is lexicographic, which matches calendar order for YYYY-MM-DD keys.
func HasActiveForDate(reqs []Request, userID, dateKey string) bool {
	for _, r := range reqs {
		if r.UserID != userID || r.Status != StatusApproved {
			continue
		}
		if r.StartDate == "" || r.EndDate == "" {
			continue
		}
		if dateKey >= r.StartDate && dateKey <= r.EndDate {
			return true
		}
	}
	return false
}
