package models

// BookingRecord is one course enquiry persisted to data/bookings.json.
// The id is the submission time in unix milliseconds, matching the moment
// the record was appended.
type BookingRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CourseTitle string `json:"courseTitle"`
	CoursePrice string `json:"coursePrice"`
	Timestamp   string `json:"timestamp"`
	Status      string `json:"status"`
}
