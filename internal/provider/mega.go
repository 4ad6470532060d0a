package provider

import (
	"context"
	"fmt"
	"sync"

	mega "github.com/t3rm1n4l/go-mega"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/paimon/gateway/internal/staging"
)

// remote is the narrow surface of the blocking MEGA client the adapter
// drives. Kept minimal so tests can substitute it.
type remote interface {
	Login(email, password string) error
	Upload(path, name string) (string, error)
}

// megaRemote adapts *mega.Mega to the remote interface. Upload performs the
// two sequential remote calls: push the file, then fetch its public link.
type megaRemote struct {
	m *mega.Mega
}

func (r *megaRemote) Login(email, password string) error {
	return r.m.Login(email, password)
}

func (r *megaRemote) Upload(path, name string) (string, error) {
	node, err := r.m.UploadFile(path, r.m.FS.GetRoot(), name, nil)
	if err != nil {
		return "", fmt.Errorf("upload %q: %w", name, err)
	}
	link, err := r.m.Link(node, true)
	if err != nil {
		return "", fmt.Errorf("fetch link for %q: %w", name, err)
	}
	return link, nil
}

// MegaProvider uploads staged files to a MEGA account. The underlying client
// is blocking and keeps mutable session state, so every call into it goes
// through a semaphore-bounded dispatch, and the check-then-login sequence is
// serialized by a per-instance mutex. Once authenticated the session is
// reused for the process lifetime and never reset.
type MegaProvider struct {
	email    string
	password string
	client   remote
	workers  *semaphore.Weighted
	log      *zap.SugaredLogger

	mu            sync.Mutex
	authenticated bool
}

// NewMegaProvider builds an adapter over a fresh MEGA client. No network
// traffic happens until the first EnsureSession.
func NewMegaProvider(email, password string, workers int, log *zap.SugaredLogger) *MegaProvider {
	if workers < 1 {
		workers = 1
	}
	return &MegaProvider{
		email:    email,
		password: password,
		client:   &megaRemote{m: mega.New()},
		workers:  semaphore.NewWeighted(int64(workers)),
		log:      log,
	}
}

// EnsureSession performs the login exchange once. Concurrent callers block on
// the mutex until the in-flight login resolves and then observe its outcome.
func (p *MegaProvider) EnsureSession(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.authenticated {
		return nil
	}
	if p.email == "" || p.password == "" {
		return ErrMissingCredentials
	}

	err := p.dispatch(ctx, func() error {
		return p.client.Login(p.email, p.password)
	})
	if err != nil {
		return fmt.Errorf("mega login: %w", err)
	}

	p.authenticated = true
	p.log.Infow("logged in to MEGA", "email", p.email)
	return nil
}

// UploadAndLink sends the staged file to MEGA and returns its public link.
func (p *MegaProvider) UploadAndLink(ctx context.Context, f staging.File) (string, error) {
	if err := p.EnsureSession(ctx); err != nil {
		return "", err
	}

	p.log.Infow("starting MEGA upload", "path", f.Path, "filename", f.Name)

	var link string
	err := p.dispatch(ctx, func() error {
		var err error
		link, err = p.client.Upload(f.Path, f.Name)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("mega upload: %w", err)
	}

	p.log.Infow("MEGA upload complete", "filename", f.Name, "link", link)
	return link, nil
}

// dispatch runs fn under the bounded worker pool shared by all blocking
// calls into the MEGA client. Acquisition honors ctx; once fn starts it runs
// to completion.
func (p *MegaProvider) dispatch(ctx context.Context, fn func() error) error {
	if err := p.workers.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.workers.Release(1)
	return fn()
}
