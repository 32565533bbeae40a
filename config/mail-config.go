package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type MailConfig struct {
	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	MailFrom      string
	MailFromName  string
	MailSubject   string
}

func LoadMailConfig() MailConfig {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return MailConfig{
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "useby.verification"),
		KafkaGroupID:  getEnv("KAFKA_GROUP_ID", "mail-svc"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		MailFrom:      os.Getenv("MAIL_FROM"),
		MailFromName:  getEnv("MAIL_FROM_NAME", "UseBy"),
		MailSubject:   getEnv("MAIL_SUBJECT", "Your UseBy Verification Code"),
	}
}
