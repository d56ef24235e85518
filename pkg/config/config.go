package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func New() Config {
	// a .env file is optional, the environment itself wins
	_ = godotenv.Load()

	privateKey := requirePrivateKey("PRIVATE_KEY")

	return Config{
		BasePath:      requireEnv("BASE_PATH"),
		ServerPort:    requireEnvAsInt("SERVER_PORT"),
		PrettyLogging: os.Getenv("PRETTY_LOGGING") == "true",
		Postgresql: Postgresql{
			Host:         requireEnv("DATABASE_HOST"),
			Port:         requireEnvAsInt("DATABASE_PORT"),
			Username:     requireEnv("DATABASE_USERNAME"),
			Password:     requireEnv("DATABASE_PASSWORD"),
			DatabaseName: requireEnv("DATABASE_NAME"),
		},
		Redis: Redis{
			Host: requireEnv("REDIS_HOST"),
			Port: requireEnvAsInt("REDIS_PORT"),
		},
		Authentication: Authentication{
			PrivateKey:                    privateKey,
			AccessTokenExpirationSeconds:  requireEnvAsInt("ACCESS_TOKEN_EXPIRATION_SECONDS"),
			RefreshTokenSecretKey:         requireEnv("REFRESH_TOKEN_SECRET_KEY"),
			RefreshTokenExpirationSeconds: requireEnvAsInt("REFRESH_TOKEN_EXPIRATION_SECONDS"),
		},
	}
}

type Config struct {
	BasePath       string
	ServerPort     int
	PrettyLogging  bool
	Postgresql     Postgresql
	Redis          Redis
	Authentication Authentication
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type Redis struct {
	Host string
	Port int
}

type Authentication struct {
	PrivateKey                    *rsa.PrivateKey
	AccessTokenExpirationSeconds  int
	RefreshTokenSecretKey         string
	RefreshTokenExpirationSeconds int
}

func (a Authentication) PublicKey() *rsa.PublicKey {
	return &a.PrivateKey.PublicKey
}

func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("Can't find environment variable: %s\n", key)
	}
	return value
}

func requireEnvAsInt(key string) int {
	valueStr := requireEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}

func requirePrivateKey(key string) *rsa.PrivateKey {
	block, _ := pem.Decode([]byte(requireEnv(key)))
	if block == nil {
		log.Fatalf("Can't decode PEM block from environment variable: %s", key)
	}

	if privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return privateKey
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		log.Fatalf("Can't parse RSA private key: %s", err.Error())
	}

	privateKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		log.Fatalf("%s is not an RSA private key", key)
	}
	return privateKey
}
