package services

import (
	"context"
	"errors"
	"net/url"
	"time"

	"wanderboard/cache"
	"wanderboard/logger"
	"wanderboard/preview"
)

// ErrInvalidURL is returned for URLs that cannot be previewed.
var ErrInvalidURL = errors.New("invalid url")

// PreviewService resolves URL previews with a Redis read-through cache.
type PreviewService struct {
	resolver *preview.Resolver
	cache    *cache.Cache
	ttl      time.Duration
}

func NewPreviewService(resolver *preview.Resolver, c *cache.Cache, ttl time.Duration) *PreviewService {
	return &PreviewService{resolver: resolver, cache: c, ttl: ttl}
}

func (s *PreviewService) Resolve(ctx context.Context, rawURL string) (*preview.Preview, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}

	key := "preview:" + rawURL
	var cached preview.Preview
	if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Log.Warnf("preview cache read: %v", err)
	}

	p, err := s.resolver.Resolve(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, p, s.ttl); err != nil {
		logger.Log.Warnf("preview cache write: %v", err)
	}
	return p, nil
}
