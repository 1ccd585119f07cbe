package dto

// Mail job types consumed by the mail worker.
const (
	MailTypeVerification  = "verification"
	MailTypePasswordReset = "password_reset"
	MailTypeCollabInvite  = "collab_invite"
)

// MailJob is the payload queued for asynchronous email delivery.
type MailJob struct {
	Type        string `json:"type"`
	To          string `json:"to"`
	Token       string `json:"token,omitempty"`
	InviterName string `json:"inviter_name,omitempty"`
	NoteTitle   string `json:"note_title,omitempty"`
}
