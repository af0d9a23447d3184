package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookHandler(t *testing.T) {
	h := setupHandlers(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "ValidBooking",
			body:       `{"fullName": "Priya Sharma", "phone": "9876543210", "email": "priya@example.com"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "PhoneTooShort",
			body:       `{"fullName": "Priya Sharma", "phone": "987654321"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid phone number",
		},
		{
			name:       "MissingFullName",
			body:       `{"phone": "9876543210"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing required fields",
		},
		{
			name:       "MissingPhone",
			body:       `{"fullName": "Priya Sharma"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing required fields",
		},
		{
			name:       "MalformedBody",
			body:       `{"fullName": `,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho(http.MethodPost, "/api/book", strings.NewReader(tt.body))

			require.NoError(t, h.BookHandler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp["error"])
			} else {
				assert.Equal(t, true, resp["success"])
				assert.Equal(t, "Booking request received! We will contact you shortly.", resp["message"])
			}
		})
	}
}

func TestBookHandlerNonStringFields(t *testing.T) {
	h := setupHandlers(t)

	// Numeric phone still passes the length check after stringification.
	body := `{"fullName": "Ravi", "phone": 9876543210}`
	_, c, rec := setupEcho(http.MethodPost, "/api/book", strings.NewReader(body))

	require.NoError(t, h.BookHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSendEmailHandler(t *testing.T) {
	h := setupHandlers(t)

	t.Run("DefaultsToGeneralTemplate", func(t *testing.T) {
		body := `{"name": "Anil Mehta", "phone": "9123456780", "message": "Do you take weekend appointments?"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/send-email", strings.NewReader(body))

		require.NoError(t, h.SendEmailHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success": true}`, rec.Body.String())
	})

	t.Run("ExplicitType", func(t *testing.T) {
		body := `{"name": "Anil Mehta", "phone": "9123456780", "type": "homepage", "fullName": "Anil Mehta"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/send-email", strings.NewReader(body))

		require.NoError(t, h.SendEmailHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("UnknownType", func(t *testing.T) {
		body := `{"name": "Anil Mehta", "phone": "9123456780", "type": "no-such-template"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/send-email", strings.NewReader(body))

		require.NoError(t, h.SendEmailHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Unknown enquiry type", resp["error"])
	})

	t.Run("MissingName", func(t *testing.T) {
		body := `{"phone": "9123456780"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/send-email", strings.NewReader(body))

		require.NoError(t, h.SendEmailHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookCourseHandler(t *testing.T) {
	h := setupHandlers(t)

	t.Run("PersistsBookingAndResponds", func(t *testing.T) {
		body := `{"name": "Sneha Patil", "email": "sneha@example.com", "phone": "9012345678", "courseTitle": "Course One", "coursePrice": "₹10,000"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/book-course", strings.NewReader(body))

		require.NoError(t, h.BookCourseHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool `json:"success"`
			Booking struct {
				ID          string `json:"id"`
				Name        string `json:"name"`
				CourseTitle string `json:"courseTitle"`
				Status      string `json:"status"`
			} `json:"booking"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Booking.ID)
		assert.Equal(t, "Sneha Patil", resp.Booking.Name)
		assert.Equal(t, "Course One", resp.Booking.CourseTitle)
		assert.Equal(t, "pending", resp.Booking.Status)

		records, err := h.Bookings.List()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, resp.Booking.ID, records[0].ID)
		assert.Equal(t, "sneha@example.com", records[0].Email)
	})

	t.Run("MissingCourseTitle", func(t *testing.T) {
		body := `{"name": "Sneha Patil", "email": "sneha@example.com", "phone": "9012345678"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/book-course", strings.NewReader(body))

		require.NoError(t, h.BookCourseHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookHandlerEmailFailure(t *testing.T) {
	h := setupHandlers(t)
	h.Cfg.EmailTestMode = false // no SMTP host configured, so sending fails

	body := `{"fullName": "Priya Sharma", "phone": "9876543210"}`
	_, c, _ := setupEcho(http.MethodPost, "/api/book", strings.NewReader(body))

	err := h.BookHandler(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
}
