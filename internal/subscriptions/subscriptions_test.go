package subscriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasActiveForDate(t *testing.T) {
	approved := Request{
		ID:        "req-1",
		UserID:    "user-1",
		Status:    StatusApproved,
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}

	tests := []struct {
		name    string
		reqs    []Request
		userID  string
		dateKey string
		want    bool
	}{
		{"covered date", []Request{approved}, "user-1", "2024-01-15", true},
		{"start boundary inclusive", []Request{approved}, "user-1", "2024-01-01", true},
		{"end boundary inclusive", []Request{approved}, "user-1", "2024-01-31", true},
		{"after end", []Request{approved}, "user-1", "2024-02-01", false},
		{"before start", []Request{approved}, "user-1", "2023-12-31", false},
		{"wrong user", []Request{approved}, "user-2", "2024-01-15", false},
		{"empty records", nil, "user-1", "2024-01-15", false},
		{
			"pending status ignored",
			[]Request{{UserID: "user-1", Status: StatusPending, StartDate: "2024-01-01", EndDate: "2024-01-31"}},
			"user-1", "2024-01-15", false,
		},
		{
			"missing end date ignored",
			[]Request{{UserID: "user-1", Status: StatusApproved, StartDate: "2024-01-01"}},
			"user-1", "2024-01-15", false,
		},
		{
			"second record matches",
			[]Request{
				{UserID: "user-1", Status: StatusRejected, StartDate: "2024-01-01", EndDate: "2024-01-31"},
				approved,
			},
			"user-1", "2024-01-15", true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasActiveForDate(tt.reqs, tt.userID, tt.dateKey))
		})
	}
}
