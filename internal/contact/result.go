package contact

// User-facing messages for the fixed outcomes. Every failure path resolves
// to one of these or to a configuration-dependent variant that names the
// fallback contact address.
const (
	// MsgMissingFields is returned when name, email, or message is empty.
	MsgMissingFields = "Please fill in all required fields."

	// MsgInvalidEmail is returned when the email fails the syntax check.
	MsgInvalidEmail = "Please enter a valid email address."

	// MsgSuccess confirms a dispatched submission.
	MsgSuccess = "Thank you for contacting us! We will get back to you within 24 hours."
)

// Result is the outcome of one submission: either a confirmation or a
// user-safe error message, never both.
type Result struct {
	Success bool
	Message string
}

func succeed(msg string) Result {
	return Result{Success: true, Message: msg}
}

func fail(msg string) Result {
	return Result{Success: false, Message: msg}
}
