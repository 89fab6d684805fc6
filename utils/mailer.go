package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"

	"github.com/nikhilpktcr/dietPlanner/config"
)

var sesClient *ses.Client

// InitMailer sets up the SES client. Mail is best effort: if the AWS config
// cannot be loaded the client stays nil and sends become no-ops.
func InitMailer() {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		config.Logger().Warn("AWS config load failed, mail disabled", zap.Error(err))
		return
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		return nil
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered user.
func SendWelcomeEmail(to string, name string) error {
	subject := "Welcome to Diet Planner"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Set up your health profile to get your first BMI reading and start planning meals.", name)
	return sendEmail(to, subject, body)
}
