// Package prober checks gateway reachability of CIDs and whether they serve image content.
package prober

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/cid"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
	"go.uber.org/zap"
)

const (
	defaultFilename = "out-1.png"
	defaultTimeout  = 10 * time.Second
	sniffBytes      = 16
)

// Probe reasons recorded on non-admissible results.
const (
	ReasonInvalidCID  = "invalid_cid"
	ReasonUnreachable = "unreachable"
	ReasonNotImage    = "not_image"
)

type (
	// Metrics records probe outcomes per gateway.
	Metrics interface {
		ObserveProbe(gateway string, accessible, image bool, started time.Time)
	}
)

// Config lists gateways in preference order.
type Config struct {
	Gateways []string
	Filename string
	Timeout  time.Duration
}

// Prober probes CIDs against an ordered gateway list.
type Prober struct {
	gateways   []string
	filename   string
	timeout    time.Duration
	httpClient *http.Client
	metrics    Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// New validates cfg and constructs a Prober.
func New(cfg Config, metrics Metrics, logger *zap.Logger) (*Prober, error) {
	if metrics == nil {
		return nil, errors.New("prober metrics is required")
	}
	gateways := make([]string, 0, len(cfg.Gateways))
	for _, g := range cfg.Gateways {
		g = strings.TrimRight(strings.TrimSpace(g), "/")
		if g == "" {
			continue
		}
		u, err := url.Parse(g)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("invalid gateway %q", g)
		}
		gateways = append(gateways, g)
	}
	if len(gateways) == 0 {
		return nil, errors.New("at least one gateway is required")
	}
	if cfg.Filename == "" {
		cfg.Filename = defaultFilename
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Prober{
		gateways: gateways,
		filename: strings.TrimLeft(cfg.Filename, "/"),
		timeout:  cfg.Timeout,
		httpClient: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// URL renders the artifact location of c on gateway.
func (p *Prober) URL(gateway, c string) string {
	return gateway + "/" + c + "/" + p.filename
}

// Probe tries each gateway in order. The first success-class response decides the result;
// later gateways are only tried when earlier ones are unreachable.
func (p *Prober) Probe(ctx context.Context, c string) model.ProbeResult {
	res := model.ProbeResult{CID: c, CheckedAt: p.now().UTC()}
	if _, err := cid.Digest(c); err != nil {
		res.Reason = ReasonInvalidCID
		return res
	}

	for _, gw := range p.gateways {
		started := time.Now()
		target := p.URL(gw, c)
		contentType, err := p.head(ctx, target)
		if err != nil {
			p.metrics.ObserveProbe(gw, false, false, started)
			p.logger.Debug("gateway probe failed", zap.String("gateway", gw), zap.String("cid", c), zap.Error(err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		res.Accessible = true
		res.Gateway = gw
		res.URL = target
		res.ContentType = contentType
		res.IsImage = p.classify(ctx, target, contentType)
		if !res.IsImage {
			res.Reason = ReasonNotImage
		}
		p.metrics.ObserveProbe(gw, true, res.IsImage, started)
		return res
	}
	res.Reason = ReasonUnreachable
	return res
}

func (p *Prober) head(ctx context.Context, target string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return "", err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("status=%d", resp.StatusCode)
	}
	return resp.Header.Get("Content-Type"), nil
}

// classify trusts a specific Content-Type and sniffs leading bytes otherwise.
func (p *Prober) classify(ctx context.Context, target, contentType string) bool {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType != "application/octet-stream" {
		return strings.HasPrefix(mediaType, "image/")
	}
	head, err := p.sniff(ctx, target)
	if err != nil {
		p.logger.Debug("gateway sniff failed", zap.String("url", target), zap.Error(err))
		return false
	}
	return IsImageMagic(head)
}

func (p *Prober) sniff(ctx context.Context, target string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=0-%d", sniffBytes-1))
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status=%d", resp.StatusCode)
	}
	buf := make([]byte, sniffBytes)
	n, err := io.ReadFull(resp.Body, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegMagic = []byte{0xff, 0xd8, 0xff}
	gif87     = []byte("GIF87a")
	gif89     = []byte("GIF89a")
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
)

// IsImageMagic matches leading bytes against PNG, JPEG, GIF and WebP signatures.
func IsImageMagic(b []byte) bool {
	switch {
	case bytes.HasPrefix(b, pngMagic), bytes.HasPrefix(b, jpegMagic):
		return true
	case bytes.HasPrefix(b, gif87), bytes.HasPrefix(b, gif89):
		return true
	case len(b) >= 12 && bytes.Equal(b[:4], riffMagic) && bytes.Equal(b[8:12], webpMagic):
		return true
	default:
		return false
	}
}
