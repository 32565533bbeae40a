package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	DatabaseDSN    string
	KafkaBroker    string
	KafkaTopic     string
	KafkaGroupID   string
	KafkaUsername  string
	KafkaPassword  string
	AccessSecret   string
	BaseURL        string
	CodeTTLSeconds int
	UploadDir      string
	PythonBin      string
	ScriptDir      string
}

// LoadConfig reads the environment (plus .env outside prod) and fails fast
// when the signing secret is missing. There is no insecure default secret.
func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	secret := os.Getenv("ACCESS_SECRET")
	if secret == "" {
		log.Fatal("ACCESS_SECRET is required")
	}

	return Config{
		ServerPort:     getEnv("SERVER_PORT", ":3001"),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "useby.verification"),
		KafkaGroupID:   getEnv("KAFKA_GROUP_ID", "mail-svc"),
		KafkaUsername:  os.Getenv("KAFKA_USERNAME"),
		KafkaPassword:  os.Getenv("KAFKA_PASSWORD"),
		AccessSecret:   secret,
		BaseURL:        getEnv("BASE_URL", "*"),
		CodeTTLSeconds: getEnvInt("CODE_TTL_SECONDS", 600),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		PythonBin:      getEnv("PYTHON_BIN", "python"),
		ScriptDir:      getEnv("SCRIPT_DIR", "scripts"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
