package dto

// AppointmentReminder is one upcoming appointment in a reminder scan.
type AppointmentReminder struct {
	AppointmentID int    `json:"appointment_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Reason        string `json:"reason"`
	PetID         int    `json:"pet_id"`
	ClientID      int    `json:"client_id"`
	Status        string `json:"status"`
}

type VaccinationReminder struct {
	VaccinationID int    `json:"vaccination_id"`
	PetID         int    `json:"pet_id"`
	VaccineName   string `json:"vaccine_name"`
	NextDoseDate  string `json:"next_dose_date"`
}

type DewormingReminder struct {
	DewormingID  int    `json:"deworming_id"`
	PetID        int    `json:"pet_id"`
	Product      string `json:"product"`
	NextDoseDate string `json:"next_dose_date"`
}

type FollowUpReminder struct {
	RecordID         int    `json:"record_id"`
	AppointmentID    int    `json:"appointment_id"`
	PetID            int    `json:"pet_id"`
	ClientID         int    `json:"client_id"`
	NextConsultation string `json:"next_consultation"`
	Diagnosis        string `json:"diagnosis,omitempty"`
}

type RemindersResponse struct {
	Appointments []AppointmentReminder `json:"appointments"`
	Vaccinations []VaccinationReminder `json:"vaccinations"`
	Dewormings   []DewormingReminder   `json:"dewormings"`
	FollowUps    []FollowUpReminder    `json:"follow_ups"`
}

type SendRemindersResponse struct {
	Published int `json:"published"`
	Failed    int `json:"failed"`
}
