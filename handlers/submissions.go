package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"revive_physio_go/models"
	"revive_physio_go/services"
)

// minPhoneLength is a deliberate naive length check, not a phone-format
// validator; the site has always accepted anything 10 characters or longer.
const minPhoneLength = 10

// kolkata is the fixed timezone for submission timestamps shown in
// notification emails.
var kolkata = mustLoadLocation("Asia/Kolkata")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Failed to load timezone %s, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// bindSubmission decodes the free-form JSON body into a string map. Non-string
// scalars are stringified so extra fields still reach the template context.
func bindSubmission(c echo.Context) (map[string]string, error) {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return nil, err
	}

	payload := make(map[string]string, len(body))
	for key, value := range body {
		switch v := value.(type) {
		case string:
			payload[key] = v
		case float64:
			payload[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			payload[key] = strconv.FormatBool(v)
		case nil:
			payload[key] = ""
		default:
			payload[key] = fmt.Sprintf("%v", v)
		}
	}
	return payload, nil
}

// submissionContext merges the payload with the derived fields every
// template can reference.
func submissionContext(payload map[string]string, pageLabel string) map[string]string {
	context := make(map[string]string, len(payload)+2)
	for k, v := range payload {
		context[k] = v
	}
	context["page"] = pageLabel
	context["timestamp"] = time.Now().In(kolkata).Format("Monday, 2 January 2006, 3:04 PM IST")
	return context
}

func validationError(c echo.Context, errMsg, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]any{
		"error":   errMsg,
		"message": message,
	})
}

func requireFields(payload map[string]string, fields ...string) []string {
	var missing []string
	for _, f := range fields {
		if payload[f] == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// sendSubmissionEmail renders the template and dispatches it to the clinic
// inbox. The response only confirms the transport accepted the message, not
// delivery.
func (h *Handlers) sendSubmissionEmail(templateName string, context map[string]string) error {
	rendered, err := h.Templates.Render(templateName, context)
	if err != nil {
		return err
	}
	return services.SendEmail(h.Cfg, services.NewSubmissionEmail(h.Cfg, rendered))
}

// BookHandler handles POST /api/book - the homepage appointment form.
func (h *Handlers) BookHandler(c echo.Context) error {
	payload, err := bindSubmission(c)
	if err != nil {
		return validationError(c, "Invalid request body", "Could not parse the submitted form")
	}

	if missing := requireFields(payload, "fullName", "phone"); len(missing) > 0 {
		return validationError(c, "Missing required fields", "Full name and phone number are required")
	}
	if len(payload["phone"]) < minPhoneLength {
		return validationError(c, "Invalid phone number", "Please provide a valid phone number with at least 10 digits")
	}

	context := submissionContext(payload, "Homepage Booking Form")
	if err := h.sendSubmissionEmail("homepage", context); err != nil {
		log.Printf("Booking email failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process booking. Please try again later.")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Booking request received! We will contact you shortly.",
	})
}

// SendEmailHandler handles POST /api/send-email - the general contact and
// enquiry forms. The template is chosen by the caller-supplied type.
func (h *Handlers) SendEmailHandler(c echo.Context) error {
	payload, err := bindSubmission(c)
	if err != nil {
		return validationError(c, "Invalid request body", "Could not parse the submitted form")
	}

	if missing := requireFields(payload, "name", "phone"); len(missing) > 0 {
		return validationError(c, "Missing required fields", "Name and phone number are required")
	}
	if len(payload["phone"]) < minPhoneLength {
		return validationError(c, "Invalid phone number", "Please provide a valid phone number with at least 10 digits")
	}

	templateName := payload["type"]
	if templateName == "" {
		templateName = "general"
	}

	context := submissionContext(payload, "Website Contact Form")
	if err := h.sendSubmissionEmail(templateName, context); err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			// The caller picked the template, so a miss is their error.
			return validationError(c, "Unknown enquiry type", "The enquiry type is not recognized")
		}
		log.Printf("Contact email failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send message. Please try again later.")
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

// BookCourseHandler handles POST /api/book-course - course enquiries, which
// are also persisted to the bookings file.
func (h *Handlers) BookCourseHandler(c echo.Context) error {
	payload, err := bindSubmission(c)
	if err != nil {
		return validationError(c, "Invalid request body", "Could not parse the submitted form")
	}

	if missing := requireFields(payload, "name", "email", "phone", "courseTitle"); len(missing) > 0 {
		return validationError(c, "Missing required fields", "Name, email, phone, and course title are required")
	}
	if len(payload["phone"]) < minPhoneLength {
		return validationError(c, "Invalid phone number", "Please provide a valid phone number with at least 10 digits")
	}

	now := time.Now()
	booking := models.BookingRecord{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Name:        payload["name"],
		Email:       payload["email"],
		Phone:       payload["phone"],
		CourseTitle: payload["courseTitle"],
		CoursePrice: payload["coursePrice"],
		Timestamp:   now.Format(time.RFC3339),
		Status:      "pending",
	}

	if err := h.Bookings.Append(booking); err != nil {
		log.Printf("Booking persistence failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save booking. Please try again later.")
	}

	context := submissionContext(payload, "Course Booking Form")
	if err := h.sendSubmissionEmail("course", context); err != nil {
		log.Printf("Course booking email failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process booking. Please try again later.")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"booking": booking,
	})
}
