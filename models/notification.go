package models

// Notification is the rendered content of one guild notification,
// built from a MessageEvent by the orchestrator
type Notification struct {
	GuildName    string
	ChannelName  string
	AuthorName   string
	Content      string
	PermalinkURL string
}

// DeliveryReport summarizes one fan-out attempt for a guild
type DeliveryReport struct {
	Sent         int
	Failed       int
	FailedEmails []string
	// RateLimited is set when the cooldown claim was lost, meaning another
	// delivery for the same guild got there first within the window
	RateLimited bool
}

// Attempted returns the number of recipients a send was attempted for
func (r *DeliveryReport) Attempted() int {
	return r.Sent + r.Failed
}
