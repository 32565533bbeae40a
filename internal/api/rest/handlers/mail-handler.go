package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/dristi2006/expiry-date-tracker/internal/dto"
	"github.com/dristi2006/expiry-date-tracker/internal/services"
)

// MailHandler turns Kafka verification events into outbound code mails.
// Delivery is at-least-once; a stale redelivery is harmless because resend
// overwrites the stored code.
type MailHandler struct {
	MailService *services.MailService
}

func NewMailHandler(ms *services.MailService) *MailHandler {
	return &MailHandler{MailService: ms}
}

func (h *MailHandler) HandleMessage(message string) error {
	var event dto.VerificationCodeEvent
	if err := json.Unmarshal([]byte(message), &event); err != nil {
		log.Printf("invalid event payload: %s\n", message)
		return err
	}

	log.Printf("verification code event: user_id=%d email=%s resend=%v",
		event.UserID, event.Email, event.Resend)

	ttlMinutes := 10
	if expiresAt, err := time.Parse(time.RFC3339, event.ExpiresAt); err == nil {
		if mins := int(time.Until(expiresAt).Round(time.Minute).Minutes()); mins > 0 {
			ttlMinutes = mins
		}
	}

	return h.MailService.SendVerificationCode(event.Email, event.Code, ttlMinutes)
}
