package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	userCacheKeyPrefix = "gateway:user:"
	petCacheKeyPrefix  = "gateway:pet:"
	lookupCacheTTL     = 5 * time.Minute
)

// CachedAuthService caches user lookups in Redis. List enrichment hits the
// same handful of users repeatedly; a short TTL keeps display names fresh
// enough. Cache failures fall through to the remote call.
type CachedAuthService struct {
	next  AuthService
	redis *redis.Client
	log   *logrus.Logger
}

func NewCachedAuthService(next AuthService, redisClient *redis.Client, log *logrus.Logger) *CachedAuthService {
	return &CachedAuthService{next: next, redis: redisClient, log: log}
}

func (c *CachedAuthService) GetUserByID(ctx context.Context, userID int, bearer string) (*User, error) {
	key := fmt.Sprintf("%s%d", userCacheKeyPrefix, userID)
	if data, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var user User
		if err := json.Unmarshal(data, &user); err == nil {
			return &user, nil
		}
	}

	user, err := c.next.GetUserByID(ctx, userID, bearer)
	if err != nil || user == nil {
		return user, err
	}

	if data, err := json.Marshal(user); err == nil {
		if err := c.redis.Set(ctx, key, data, lookupCacheTTL).Err(); err != nil {
			c.log.Warnf("Failed to cache user %d: %+v", userID, err)
		}
	}
	return user, nil
}

// VerifyVeterinarianRole always asks the Auth service. A warm cache entry
// would mask a revoked token or a changed role for the TTL, so only the
// display-name lookups above go through the cache.
func (c *CachedAuthService) VerifyVeterinarianRole(ctx context.Context, userID int, bearer string) (bool, error) {
	return c.next.VerifyVeterinarianRole(ctx, userID, bearer)
}

// CachedPatientsService caches pet lookups in Redis, same policy as
// CachedAuthService.
type CachedPatientsService struct {
	next  PatientsService
	redis *redis.Client
	log   *logrus.Logger
}

func NewCachedPatientsService(next PatientsService, redisClient *redis.Client, log *logrus.Logger) *CachedPatientsService {
	return &CachedPatientsService{next: next, redis: redisClient, log: log}
}

func (c *CachedPatientsService) GetPetByID(ctx context.Context, petID int, bearer string) (*Pet, error) {
	key := fmt.Sprintf("%s%d", petCacheKeyPrefix, petID)
	if data, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var pet Pet
		if err := json.Unmarshal(data, &pet); err == nil {
			return &pet, nil
		}
	}

	pet, err := c.next.GetPetByID(ctx, petID, bearer)
	if err != nil || pet == nil {
		return pet, err
	}

	if data, err := json.Marshal(pet); err == nil {
		if err := c.redis.Set(ctx, key, data, lookupCacheTTL).Err(); err != nil {
			c.log.Warnf("Failed to cache pet %d: %+v", petID, err)
		}
	}
	return pet, nil
}

// VerifyPetOwnership always asks the Patients service, same reasoning as
// CachedAuthService.VerifyVeterinarianRole.
func (c *CachedPatientsService) VerifyPetOwnership(ctx context.Context, petID int, ownerEmail, bearer string) (bool, error) {
	return c.next.VerifyPetOwnership(ctx, petID, ownerEmail, bearer)
}
