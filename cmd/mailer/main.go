package main

import (
	"log"

	"github.com/dristi2006/expiry-date-tracker/config"
	"github.com/dristi2006/expiry-date-tracker/infra/queue"
	"github.com/dristi2006/expiry-date-tracker/internal/api/rest/handlers"
	"github.com/dristi2006/expiry-date-tracker/internal/services"
)

func main() {
	cfg := config.LoadMailConfig()

	log.Println("Mail Service starting...")
	log.Printf("KafkaBroker=%s Topic=%s GroupID=%s\n",
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
	)

	mailService := services.NewMailService(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.MailFrom,
		cfg.MailFromName,
		cfg.MailSubject,
	)

	handler := handlers.NewMailHandler(mailService)

	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		handler,
	)

	log.Println("Mail Service listening for events...")
	consumer.Listen()
}
