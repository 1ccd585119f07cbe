package service

import (
	"context"
	"encoding/json"

	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/pkg/logger"
	"fundoo-notes-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the mail queue and hands each job to the SMTP
// mailer. Email delivery never blocks a request path.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var job dto.MailJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		cs.log.Error("mail-worker", "failed to unmarshal mail job", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	var err error
	switch job.Type {
	case dto.MailTypeVerification:
		err = cs.emailService.SendVerificationToken(job.To, job.Token)
	case dto.MailTypePasswordReset:
		err = cs.emailService.SendResetToken(job.To, job.Token)
	case dto.MailTypeCollabInvite:
		err = cs.emailService.SendCollaboratorInvite(job.To, job.InviterName, job.NoteTitle)
	default:
		cs.log.Warn("mail-worker", "unknown mail job type", map[string]interface{}{
			"type": job.Type,
		})
		msg.Ack()
		return
	}

	if err != nil {
		cs.log.Error("mail-worker", "failed to send email", map[string]interface{}{
			"type":  job.Type,
			"to":    job.To,
			"error": err.Error(),
		})
		// SMTP hiccups are retriable
		msg.Nack()
		return
	}

	cs.log.Info("mail-worker", "email sent", map[string]interface{}{
		"type": job.Type,
		"to":   job.To,
	})
	msg.Ack()
}
