package mail

import (
	"campaign-server/internal/observability"
	"context"
	"fmt"

	"github.com/resendlabs/resend-go"
)

type ResendClient struct {
	client      *resend.Client
	defaultFrom string
	logger      *observability.Logger
}

func NewResendClient(apiKey, defaultFrom string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}
	if defaultFrom == "" {
		return nil, fmt.Errorf("default sender address is required")
	}

	return &ResendClient{
		client:      client,
		defaultFrom: defaultFrom,
		logger:      logger,
	}, nil
}

// sender resolves the From address, falling back to the configured default
func (c *ResendClient) sender(from string) string {
	if from == "" {
		return c.defaultFrom
	}
	return from
}

func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	if to == "" {
		return "", fmt.Errorf("recipient address is required")
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	params := &resend.SendEmailRequest{
		From:    c.sender(from),
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
