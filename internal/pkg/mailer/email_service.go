package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendVerificationToken(toEmail, token string) error
	SendResetToken(toEmail, token string) error
	SendCollaboratorInvite(toEmail, inviterName, noteTitle string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail, frontendURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", subject, toEmail, err)
	}
	return nil
}

func (s *emailService) SendVerificationToken(toEmail, token string) error {
	verifyLink := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to Fundoo Notes!</h2>
			<p>Click the button below to verify your email address:</p>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Verify Email</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 24 hours.</p>
			<p>If you didn't sign up, please ignore this email.</p>
		</div>
	`, verifyLink, verifyLink)

	return s.send(toEmail, "Verify Your Email", body)
}

func (s *emailService) SendResetToken(toEmail, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>You requested to reset your password. Click the button below to proceed:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink, resetLink)

	return s.send(toEmail, "Reset Your Password", body)
}

func (s *emailService) SendCollaboratorInvite(toEmail, inviterName, noteTitle string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>You've been added to a note</h2>
			<p><b>%s</b> added you as a collaborator on the note <b>%s</b>.</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Open Fundoo Notes</a></p>
		</div>
	`, inviterName, noteTitle, s.frontendURL)

	return s.send(toEmail, "New shared note", body)
}
