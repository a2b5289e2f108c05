package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"wathiq/internal/models"
)

// EmailService sends scan reports via Amazon SES
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewEmailService creates a new email service
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL string) (*EmailService, error) {
	// If fromEmail is empty, create a disabled service
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)
	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendScanReport emails a completed scan's findings to the user
func (s *EmailService) SendScanReport(ctx context.Context, toEmail, toName string, scan *models.ScanResult) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): scan report to %s", toEmail)
		return nil
	}

	subject := fmt.Sprintf("Wathiq Scan Report: %s", scan.FileName)

	var findingsHTML, findingsText strings.Builder
	for _, f := range scan.DetailedFindings {
		fmt.Fprintf(&findingsHTML, `<li><strong>%s</strong> (%s): %s</li>`, f.Category, f.Severity, f.Finding)
		fmt.Fprintf(&findingsText, "- %s (%s): %s\n", f.Category, f.Severity, f.Finding)
	}
	if len(scan.DetailedFindings) == 0 {
		findingsHTML.WriteString("<li>No detailed findings.</li>")
		findingsText.WriteString("- No detailed findings.\n")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #0d9488; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.score { font-size: 32px; font-weight: bold; text-align: center; margin: 10px 0; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>Media Scan Report</h1>
		</div>
		<div class="content">
			<p>Hi %s,</p>
			<p>Here is the analysis report for <strong>%s</strong>:</p>
			<p class="score">Trust Score: %d / 100</p>
			<p><strong>Verdict:</strong> %s</p>
			<p>%s</p>
			<p><strong>Detailed Findings:</strong></p>
			<ul>%s</ul>
		</div>
		<div class="footer">
			<p>This is an automated email from Wathiq. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`, toName, scan.FileName, scan.TrustScore, scan.Verdict, scan.Summary, findingsHTML.String())

	textBody := fmt.Sprintf(`Hi %s,

Here is the analysis report for %s:

Trust Score: %d / 100
Verdict: %s

%s

Detailed Findings:
%s
---
This is an automated email from Wathiq. Please do not reply.
`, toName, scan.FileName, scan.TrustScore, scan.Verdict, scan.Summary, findingsText.String())

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
