package email

const (
	subjectEstimate     = "Your solar system estimate"
	subjectLeadAlertFmt = "New lead: %s (%s system)"
	subjectFollowUp     = "Still thinking about going solar?"
)
