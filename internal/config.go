package internal

import (
	"flag"
	"fmt"
	"os"
)

var c *config

const (
	RunAddress  = "RUN_ADDRESS"
	DatabaseURI = "DATABASE_URI"
	PaypalEmail = "PAYPAL_EMAIL"

	TelegramBotToken = "TELEGRAM_BOT_TOKEN"
	TelegramChatID   = "TELEGRAM_CHAT_ID"

	AdminLogin    = "ADMIN_LOGIN"
	AdminPassword = "ADMIN_PASSWORD"
	JWTSecret     = "JWT_SECRET"
)

const (
	defaultRunAddress = "localhost:8080"

	// Fallback payee address when no config is reachable.
	defaultPaypalEmail = "zebdalerat@protonmail.com"

	// Placeholder credentials, the admin login is a routing gate only.
	defaultAdminLogin    = "admin"
	defaultAdminPassword = "admin123"
	defaultJWTSecret     = "secret"
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
)

type config struct {
	RunAddress  string
	DatabaseURI string
	PaypalEmail string

	TelegramBotToken string
	TelegramChatID   string

	AdminLogin    string
	AdminPassword string
	JWTSecret     string
}

func NewConfig() *config {
	c = new(config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s sslmode=disable", // database=mchess
		host, port, user, password)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	flag.StringVar(&c.PaypalEmail, "p", setEnvOrDefault(PaypalEmail, defaultPaypalEmail), "paypal payee address")

	c.TelegramBotToken = setEnvOrDefault(TelegramBotToken, "")
	c.TelegramChatID = setEnvOrDefault(TelegramChatID, "")

	c.AdminLogin = setEnvOrDefault(AdminLogin, defaultAdminLogin)
	c.AdminPassword = setEnvOrDefault(AdminPassword, defaultAdminPassword)
	c.JWTSecret = setEnvOrDefault(JWTSecret, defaultJWTSecret)

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
