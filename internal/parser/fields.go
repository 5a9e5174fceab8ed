package parser

// Fields is the partial event record produced from one flyer text. Every
// field except Category and Categories is best-effort and may be empty; the
// downstream form treats values as pre-fill for user review, not truth.
type Fields struct {
	Title     string `json:"title,omitempty"`
	Date      string `json:"date,omitempty"`       // YYYY-MM-DD
	StartTime string `json:"start_time,omitempty"` // HH:MM, 24-hour
	EndTime   string `json:"end_time,omitempty"`   // HH:MM, 24-hour
	Venue     string `json:"venue,omitempty"`
	Address   string `json:"address,omitempty"`

	Fee                  string `json:"fee,omitempty"` // "$<amount> per <unit>"
	RegistrationDeadline string `json:"registration_deadline,omitempty"`
	RegistrationLink     string `json:"registration_link,omitempty"`

	ContactName1  string `json:"contact_name1,omitempty"`
	ContactPhone1 string `json:"contact_phone1,omitempty"`
	// The second contact slot is never auto-filled; it exists for manual entry.
	ContactName2  string `json:"contact_name2,omitempty"`
	ContactTitle2 string `json:"contact_title2,omitempty"`

	Organization string `json:"organization,omitempty"`
	Notes        string `json:"notes,omitempty"`

	// Categories holds matched sub-category labels in discovery order,
	// deduplicated. Category is always one of the coarse labels.
	Categories []string `json:"categories"`
	Category   string   `json:"category"`
}

// FilledCount reports how many optional scalar fields carry a value. Used
// for logging and the needs-review heuristic.
func (f Fields) FilledCount() int {
	n := 0
	for _, v := range []string{
		f.Title, f.Date, f.StartTime, f.EndTime, f.Venue, f.Address,
		f.Fee, f.RegistrationDeadline, f.RegistrationLink,
		f.ContactName1, f.ContactPhone1, f.ContactName2, f.ContactTitle2,
		f.Organization, f.Notes,
	} {
		if v != "" {
			n++
		}
	}
	return n
}
