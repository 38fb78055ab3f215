package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jarvis787/scribe/internal/blogservice"
	"github.com/jarvis787/scribe/internal/common"
	"github.com/jarvis787/scribe/internal/mailservice"
	"github.com/jarvis787/scribe/internal/tokenservice"
	"github.com/jarvis787/scribe/internal/userservice"
)

type application struct {
	config       *Config
	logger       *slog.Logger
	userService  *userservice.UserService
	blogService  *blogservice.BlogService
	tokenService *tokenservice.TokenService
	mailService  *mailservice.MailService
	broker       *common.MessageBroker
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DatabaseURL, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQUser, cfg.RabbitMQPassword, cfg.RabbitMQHost, cfg.RabbitMQPort)
	broker, err := common.NewMessageBroker(URI)
	if err != nil {
		logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	if err := common.SetupUserExchange(broker); err != nil {
		logger.Error("failed to setup the user exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := &application{
		config:       cfg,
		logger:       logger,
		userService:  userservice.NewUserService(db, broker, logger),
		blogService:  blogservice.NewBlogService(db),
		tokenService: tokenservice.NewTokenService(cfg.JWTSecret),
		mailService:  mailservice.NewMailService(broker, cfg.MailHost, cfg.MailUser, cfg.MailPassword, cfg.MailSender, cfg.MailPort, logger),
		broker:       broker,
	}

	app.mailService.SendWelcomeEmail()
	defer app.mailService.Close()

	if err := app.serve(cfg.Port); err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
