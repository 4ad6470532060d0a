package provider

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/paimon/gateway/internal/staging"
)

// fakeRemote stands in for the blocking MEGA client.
type fakeRemote struct {
	loginErr   error
	loginDelay time.Duration
	logins     atomic.Int64

	uploadErr error
	link      string
	uploads   atomic.Int64
}

func (f *fakeRemote) Login(email, password string) error {
	f.logins.Add(1)
	time.Sleep(f.loginDelay)
	return f.loginErr
}

func (f *fakeRemote) Upload(path, name string) (string, error) {
	f.uploads.Add(1)
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.link, nil
}

func newTestMega(client remote) *MegaProvider {
	return &MegaProvider{
		email:    "user@example.com",
		password: "hunter2",
		client:   client,
		workers:  semaphore.NewWeighted(4),
		log:      zap.NewNop().Sugar(),
	}
}

func TestEnsureSessionMissingCredentials(t *testing.T) {
	p := newTestMega(&fakeRemote{})
	p.email = ""

	err := p.EnsureSession(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestEnsureSessionLoginRejected(t *testing.T) {
	client := &fakeRemote{loginErr: errors.New("bad password")}
	p := newTestMega(client)

	err := p.EnsureSession(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad password")
	assert.False(t, p.authenticated)

	// A later call retries the login rather than caching the failure.
	require.Error(t, p.EnsureSession(context.Background()))
	assert.Equal(t, int64(2), client.logins.Load())
}

func TestEnsureSessionConcurrentLoginsOnce(t *testing.T) {
	client := &fakeRemote{loginDelay: 20 * time.Millisecond}
	p := newTestMega(client)

	const callers = 16
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = p.EnsureSession(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), client.logins.Load())
	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestUploadAndLinkSuccess(t *testing.T) {
	client := &fakeRemote{link: "https://mega.nz/file/abc123"}
	p := newTestMega(client)

	link, err := p.UploadAndLink(context.Background(), staging.File{
		Path: "/tmp/scratch/upload-1.txt",
		Name: "notes.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://mega.nz/file/abc123", link)
	assert.Equal(t, int64(1), client.logins.Load())

	// Session is reused on the next upload.
	_, err = p.UploadAndLink(context.Background(), staging.File{Path: "/tmp/x", Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), client.logins.Load())
	assert.Equal(t, int64(2), client.uploads.Load())
}

func TestUploadAndLinkPropagatesLoginFailure(t *testing.T) {
	client := &fakeRemote{loginErr: errors.New("remote rejected")}
	p := newTestMega(client)

	_, err := p.UploadAndLink(context.Background(), staging.File{Path: "/tmp/x", Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote rejected")
	assert.Equal(t, int64(0), client.uploads.Load())
}

func TestUploadAndLinkWrapsUploadFailure(t *testing.T) {
	client := &fakeRemote{uploadErr: errors.New("quota exceeded")}
	p := newTestMega(client)

	_, err := p.UploadAndLink(context.Background(), staging.File{Path: "/tmp/x", Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mega upload")
	assert.Contains(t, err.Error(), "quota exceeded")
}
