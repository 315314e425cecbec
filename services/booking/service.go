package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "halabooking/database/repository/booking"
	"halabooking/models"
	"halabooking/services/notification"
	"halabooking/services/payment"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// bookingCurrency is the single fixed currency for the whole system.
const bookingCurrency = "usd"

const (
	referenceCacheTTL = 10 * time.Minute
	referenceCacheKey = "booking:ref:%s"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Gateway  payment.Gateway
	Notifier notification.Service // optional
	Cache    *redis.Client        // optional, read-through cache by reference
	Logger   *zap.Logger
}

// --- Reference cache helpers (nil-safe when no cache is wired) ---

func (s *DefaultBookingService) cacheByReference(ctx context.Context, b *models.Booking) {
	if s.Cache == nil || b.ReferenceNumber == "" {
		return
	}
	data, err := json.Marshal(b)
	if err != nil {
		return
	}
	key := fmt.Sprintf(referenceCacheKey, b.ReferenceNumber)
	if err := s.Cache.Set(ctx, key, data, referenceCacheTTL).Err(); err != nil {
		s.Logger.Warn("failed to cache booking", zap.String("reference", b.ReferenceNumber), zap.Error(err))
	}
}

func (s *DefaultBookingService) lookupCachedReference(ctx context.Context, referenceNumber string) *models.Booking {
	if s.Cache == nil {
		return nil
	}
	key := fmt.Sprintf(referenceCacheKey, referenceNumber)
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var b models.Booking
	if err := json.Unmarshal([]byte(data), &b); err != nil {
		return nil
	}
	return &b
}

func (s *DefaultBookingService) invalidateReference(ctx context.Context, referenceNumber string) {
	if s.Cache == nil || referenceNumber == "" {
		return
	}
	key := fmt.Sprintf(referenceCacheKey, referenceNumber)
	if err := s.Cache.Del(ctx, key).Err(); err != nil {
		s.Logger.Warn("failed to invalidate booking cache", zap.String("reference", referenceNumber), zap.Error(err))
	}
}
