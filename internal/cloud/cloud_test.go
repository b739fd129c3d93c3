package cloud

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/validation"
)

var fixedNow = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

type putCall struct {
	key, contentType string
	body             []byte
	meta             map[string]string
}

type fakeS3 struct {
	puts  []putCall
	pages []*s3.ListObjectsV2Output
	fail  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	body, _ := io.ReadAll(in.Body)
	f.puts = append(f.puts, putCall{
		key:         aws.ToString(in.Key),
		contentType: aws.ToString(in.ContentType),
		body:        body,
		meta:        in.Metadata,
	})
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, _ *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	out := f.pages[0]
	f.pages = f.pages[1:]
	return out, nil
}

func TestUploadDir(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"full_system_costs.json": `{"a":1}`,
		"history.png":            "png",
		"energy_services.xlsx":   "xlsx",
		"notes.txt":              "skip me",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	fake := &fakeS3{}
	c := &S3Client{svc: fake, bucket: "b", now: fixedNow}

	keys, err := c.UploadDir(context.Background(), dir, "runs/42")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"runs/42/energy_services.xlsx",
		"runs/42/full_system_costs.json",
		"runs/42/history.png",
	}, keys)

	require.Len(t, fake.puts, 3)
	assert.Equal(t, "application/json", fake.puts[1].contentType)
	assert.Equal(t, `{"a":1}`, string(fake.puts[1].body))
	assert.Equal(t, "image/png", fake.puts[2].contentType)
	assert.Equal(t, "2025-03-01T12:00:00Z", fake.puts[0].meta["uploaded-at"])
}

func TestUploadDirErrors(t *testing.T) {
	c := &S3Client{svc: &fakeS3{}, bucket: "b", now: fixedNow}
	_, err := c.UploadDir(context.Background(), filepath.Join(t.TempDir(), "missing"), "p")
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0o644))
	c.svc = &fakeS3{fail: errors.New("denied")}
	_, err = c.UploadDir(context.Background(), dir, "p")
	assert.ErrorContains(t, err, "denied")
}

func TestListArtifactsPaginates(t *testing.T) {
	fake := &fakeS3{pages: []*s3.ListObjectsV2Output{
		{
			Contents:              []types.Object{{Key: aws.String("p/a.json")}},
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("next"),
		},
		{
			Contents: []types.Object{{Key: aws.String("p/b.png")}},
		},
	}}
	c := &S3Client{svc: fake, bucket: "b", now: fixedNow}

	keys, err := c.ListArtifacts(context.Background(), "p/")
	require.NoError(t, err)
	assert.Equal(t, []string{"p/a.json", "p/b.png"}, keys)
}

func TestPublishable(t *testing.T) {
	assert.True(t, Publishable("x.JSON"))
	assert.True(t, Publishable("chart.png"))
	assert.False(t, Publishable("cache.csv"))
}

type fakeSNS struct {
	inputs []*sns.PublishInput
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, in)
	return &sns.PublishOutput{MessageId: aws.String("m-1")}, nil
}

func TestSendValidationAlert(t *testing.T) {
	fake := &fakeSNS{}
	c := &SNSClient{svc: fake, topicArn: "arn:aws:sns:us-east-1:1:alerts", now: fixedNow}

	ok := validation.NewReport("Smoothness")
	require.NoError(t, c.SendValidationAlert(context.Background(), []*validation.Report{ok}))
	assert.Empty(t, fake.inputs)

	bad := validation.NewReport("System costs")
	bad.AddError(validation.Result{Message: "solar LCOE: outside range", Path: "STEPS.Global.2024.solar", ActualValue: 5.0})
	require.NoError(t, c.SendValidationAlert(context.Background(), []*validation.Report{ok, bad}))

	require.Len(t, fake.inputs, 1)
	in := fake.inputs[0]
	assert.Equal(t, "arn:aws:sns:us-east-1:1:alerts", aws.ToString(in.TopicArn))
	assert.Equal(t, "Energy Services: 1 validation reports failed", aws.ToString(in.Subject))
	msg := aws.ToString(in.Message)
	assert.Contains(t, msg, "2025-03-01T12:00:00Z")
	assert.Contains(t, msg, "System costs: 1 errors, 0 warnings, 0 info")
	assert.Contains(t, msg, "solar LCOE: outside range (STEPS.Global.2024.solar = 5)")
	assert.NotContains(t, msg, "Smoothness")
}

func TestSendValidationAlertTruncates(t *testing.T) {
	fake := &fakeSNS{}
	c := &SNSClient{svc: fake, topicArn: "t", now: fixedNow}

	r := validation.NewReport("Useful energy")
	for i := 0; i < maxAlertErrors+3; i++ {
		r.AddError(validation.Result{Message: "bad"})
	}
	require.NoError(t, c.SendValidationAlert(context.Background(), []*validation.Report{r}))
	assert.Contains(t, aws.ToString(fake.inputs[0].Message), "... 3 more")
}

func TestPresignArtifactRequiresPresigner(t *testing.T) {
	c := &S3Client{svc: &fakeS3{}, bucket: "b", now: fixedNow}
	_, err := c.PresignArtifact(context.Background(), "k")
	assert.Error(t, err)
}
