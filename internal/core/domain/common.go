package domain

import "time"

// DateLayout is the layout used for every stored date (tanggal, tanggalPelunasan).
const DateLayout = "2006-01-02"

// FormatDate renders t as a stored date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsValidDate reports whether s parses with DateLayout.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Severity classifies a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Notification is a message surfaced to the user after an operation.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
