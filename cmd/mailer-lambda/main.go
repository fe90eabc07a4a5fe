// Command mailer-lambda renders and sends the storefront's transactional
// emails from AWS Lambda behind API Gateway.
package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/coolbreeze/storefront/pkg/mailer"
	"github.com/ilyakaznacheev/cleanenv"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		slog.Error("Failed to read environment", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sender, err := mailer.New(&cfg.Mail)
	if err != nil {
		slog.Error("Failed to configure mail provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lambda.Start(NewHandler(sender, &cfg).Handle)
}
