package source

import (
	"context"
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azfile/file"
	"github.com/sirupsen/logrus"
)

const uploadRetries = 2

// Uploader copies archives to the pre-signed upload location of an app
type Uploader struct {
	log       logrus.FieldLogger
	transport policy.Transporter
}

// UploaderOption is a function that can be used to set custom options for the uploader
type UploaderOption func(*Uploader)

// WithUploadTransport sets the http transport used for uploads
func WithUploadTransport(t policy.Transporter) UploaderOption {
	return func(u *Uploader) {
		u.transport = t
	}
}

func NewUploader(log logrus.FieldLogger, opts ...UploaderOption) *Uploader {
	u := &Uploader{log: log}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Upload creates the file at uploadURL with the size of the archive and uploads its content.
// uploadURL carries its own SAS token, no credential is needed.
func (u *Uploader) Upload(ctx context.Context, uploadURL, archive string) error {
	f, err := os.Open(archive)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("reading archive size: %w", err)
	}

	opts := &file.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: uploadRetries},
		},
	}
	if u.transport != nil {
		opts.Transport = u.transport
	}

	client, err := file.NewClientWithNoCredential(uploadURL, opts)
	if err != nil {
		return fmt.Errorf("creating file client: %w", err)
	}

	if _, err := client.Create(ctx, info.Size(), nil); err != nil {
		return fmt.Errorf("creating upload file: %w", err)
	}
	if err := client.UploadFile(ctx, f, nil); err != nil {
		return fmt.Errorf("uploading archive: %w", err)
	}

	u.log.WithField("bytes", info.Size()).Info("archive uploaded")
	return nil
}
