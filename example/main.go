// Command example is a thin driver around the dispatch library: it loads a
// YAML config, verifies the transport, sends one email, and maps the
// dispatch status to the process exit code.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/dispatch"
	"github.com/dmitrymomot/dispatch/pkg/logger"
	"github.com/dmitrymomot/dispatch/pkg/mailer"
	"github.com/dmitrymomot/dispatch/pkg/mailer/mailtrap"
	"github.com/dmitrymomot/dispatch/pkg/mailer/resend"
	"github.com/dmitrymomot/dispatch/pkg/mailer/smtp"
)

type fileConfig struct {
	Provider string `yaml:"provider"`

	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		SSL      bool   `yaml:"ssl"`
	} `yaml:"smtp"`

	Sandbox struct {
		APIToken string `yaml:"api_token"`
		InboxID  string `yaml:"inbox_id"`
	} `yaml:"sandbox"`

	Resend struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"resend"`

	Message struct {
		FromEmail string `yaml:"from_email"`
		FromName  string `yaml:"from_name"`
		To        string `yaml:"to"`
		Subject   string `yaml:"subject"`
		Text      string `yaml:"text"`
		HTML      string `yaml:"html"`
		Category  string `yaml:"category"`
	} `yaml:"message"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c fileConfig) dispatchConfig() dispatch.Config {
	return dispatch.Config{
		Provider: dispatch.ProviderKind(c.Provider),
		SMTP: smtp.Config{
			Host:     c.SMTP.Host,
			Port:     c.SMTP.Port,
			Username: c.SMTP.Username,
			Password: c.SMTP.Password,
			SSL:      c.SMTP.SSL,
		},
		Sandbox: mailtrap.Config{
			APIToken: c.Sandbox.APIToken,
			InboxID:  c.Sandbox.InboxID,
		},
		Resend: resend.Config{
			APIKey: c.Resend.APIKey,
		},
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config")
	to := flag.String("to", "", "override the recipient from the config")
	flag.Parse()

	log := logger.New(slog.LevelInfo)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	d, err := dispatch.New(cfg.dispatchConfig(), mailer.WithLogger(log))
	if err != nil {
		log.Error("failed to build dispatcher", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := d.VerifyConnection(ctx); err != nil {
		log.Error("transport verification failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	recipient := cfg.Message.To
	if *to != "" {
		recipient = *to
	}

	msg, err := mailer.BuildMessage(mailer.Draft{
		From:     mailer.Address{Email: cfg.Message.FromEmail, Name: cfg.Message.FromName},
		To:       []string{recipient},
		Subject:  cfg.Message.Subject,
		Text:     cfg.Message.Text,
		HTML:     cfg.Message.HTML,
		Category: cfg.Message.Category,
	})
	if err != nil {
		log.Error("invalid message", slog.String("error", err.Error()))
		os.Exit(1)
	}

	result := d.Send(ctx, msg)
	if !result.Sent() {
		log.Error("dispatch failed",
			slog.String("error_kind", string(result.ErrorKind)),
			slog.String("error", result.Err.Error()),
		)
		os.Exit(1)
	}

	log.Info("dispatch succeeded",
		slog.String("provider", result.Provider),
		slog.String("provider_message_id", result.ProviderMessageID),
	)
}
