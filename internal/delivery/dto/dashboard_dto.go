package dto

type VeterinarianDashboardResponse struct {
	TodayAppointments  int64 `json:"today_appointments"`
	PendingCount       int64 `json:"pending_count"`
	CompletedThisMonth int64 `json:"completed_this_month"`
	UpcomingFollowUps  int   `json:"upcoming_follow_ups"`
}

type FollowUpListResponse struct {
	FollowUps []FollowUpReminder `json:"follow_ups"`
	Total     int                `json:"total"`
}
