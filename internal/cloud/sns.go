package cloud

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/validation"
)

type snsAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSClient publishes notifications to one topic.
type SNSClient struct {
	svc      snsAPI
	topicArn string
	now      func() time.Time
}

func NewSNSClient(ctx context.Context, region, topicArn string) (*SNSClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &SNSClient{
		svc:      sns.NewFromConfig(cfg),
		topicArn: topicArn,
		now:      time.Now,
	}, nil
}

// SendAlert publishes a message to the topic.
func (c *SNSClient) SendAlert(ctx context.Context, subject, message string) error {
	result, err := c.svc.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(c.topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to SNS: %w", err)
	}
	log.Info().Str("message_id", aws.ToString(result.MessageId)).Msg("alert sent")
	return nil
}

// maxAlertErrors caps how many findings are listed per report.
const maxAlertErrors = 10

// SendValidationAlert summarises the failing reports. Nothing is sent when every
// report is valid.
func (c *SNSClient) SendValidationAlert(ctx context.Context, reports []*validation.Report) error {
	var failed []*validation.Report
	for _, r := range reports {
		if !r.Valid {
			failed = append(failed, r)
		}
	}
	if len(failed) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Validation failed at %s\n\n", c.now().UTC().Format(time.RFC3339))
	for _, r := range failed {
		fmt.Fprintf(&b, "%s: %s\n", r.Title, r.Summary)
		for i, e := range r.Errors {
			if i == maxAlertErrors {
				fmt.Fprintf(&b, "  ... %d more\n", len(r.Errors)-maxAlertErrors)
				break
			}
			fmt.Fprintf(&b, "  - %s", e.Message)
			if e.Path != "" {
				fmt.Fprintf(&b, " (%s = %v)", e.Path, e.ActualValue)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	subject := fmt.Sprintf("Energy Services: %d validation reports failed", len(failed))
	return c.SendAlert(ctx, subject, b.String())
}
