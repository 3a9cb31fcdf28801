package domain

// Fallback values for absent user fields. The API omits the modifying
// user on some revisions (e.g. anonymous edits) and the email address on
// most comment authors.
const (
	// UnknownUserName buckets records whose user is absent.
	UnknownUserName = "Unknown User"

	// EmailUnavailable marks users for whom the API returned no address.
	EmailUnavailable = "Email not available"

	// SelfEmail is the synthetic placeholder used when the API flags a
	// user as the authenticated account ("me") without exposing a real
	// address. It is never resolved to an actual email.
	SelfEmail = "me"
)

// User identifies a participant as reported by the document API.
// EmailAddress is empty when the API withheld it; Me is true when the
// record refers to the authenticated account.
type User struct {
	DisplayName  string
	EmailAddress string
	Me           bool
}

// Name returns the display name, falling back to UnknownUserName.
func (u *User) Name() string {
	if u == nil || u.DisplayName == "" {
		return UnknownUserName
	}
	return u.DisplayName
}

// Email returns the address to report for this user: the literal "me"
// for the authenticated account, the API-provided address when present,
// and EmailUnavailable otherwise.
func (u *User) Email() string {
	if u == nil {
		return EmailUnavailable
	}
	if u.Me {
		return SelfEmail
	}
	if u.EmailAddress == "" {
		return EmailUnavailable
	}
	return u.EmailAddress
}
