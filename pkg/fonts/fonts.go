// Package fonts provisions the Arabic-capable font bundle used by the
// renderer. Loading is attempted at most once per process; on any failure
// the process falls back to the engine's default Latin font for the rest
// of the session.
package fonts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Bundle is the binary glyph data for one font family.
type Bundle struct {
	Family  string
	Regular []byte
	Bold    []byte
}

// Provider yields the font bundle for a render call. A nil bundle means
// the caller must use the default font; providers never return errors.
type Provider interface {
	Load(ctx context.Context) *Bundle
}

// Defaults for the Amiri family, an open Arabic text face.
const (
	DefaultFamily  = "Amiri"
	DefaultBaseURL = "https://github.com/aliftype/amiri/raw/main/fonts/"
)

// HTTPProvider fetches the font files from a static asset path. The fetch
// runs at most once per process; concurrent callers join the in-flight
// load rather than re-fetching. The outcome, success or failure, is cached
// for the process lifetime.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger

	once   sync.Once
	bundle *Bundle
}

// NewHTTPProvider builds a provider against baseURL (DefaultBaseURL when
// empty). A nil logger disables logging.
func NewHTTPProvider(baseURL string, logger *zap.Logger) *HTTPProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPProvider{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// Load returns the cached bundle, fetching it on the first call. The
// context of the first caller bounds the fetch; later callers block until
// it completes and then share its outcome.
func (p *HTTPProvider) Load(ctx context.Context) *Bundle {
	p.once.Do(func() {
		regular, err := p.fetch(ctx, DefaultFamily+"-Regular.ttf")
		if err != nil {
			p.logger.Warn("font load failed, using default font for this session", zap.Error(err))
			return
		}
		bold, err := p.fetch(ctx, DefaultFamily+"-Bold.ttf")
		if err != nil {
			p.logger.Warn("font load failed, using default font for this session", zap.Error(err))
			return
		}
		p.bundle = &Bundle{Family: DefaultFamily, Regular: regular, Bold: bold}
		p.logger.Info("font bundle loaded",
			zap.String("family", DefaultFamily),
			zap.Int("regularBytes", len(regular)),
			zap.Int("boldBytes", len(bold)),
		)
	})
	return p.bundle
}

func (p *HTTPProvider) fetch(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+name, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", name, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	if len(data) < 12 {
		return nil, fmt.Errorf("fetch %s: truncated font data (%d bytes)", name, len(data))
	}
	return data, nil
}

// Static serves a fixed bundle, nil included. Used for tests and for
// running fully offline.
type Static struct {
	Bundle *Bundle
}

// Load returns the fixed bundle.
func (s Static) Load(context.Context) *Bundle { return s.Bundle }
