package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/NotKing22/BigData-Project/internal/errors"
	"github.com/NotKing22/BigData-Project/internal/models"
)

const redisKeyPrefix = "jobmarket:dataset:"

// RedisStore backs the dataset cache with Redis so multiple dashboard
// processes can share one set of derived datasets. Entries carry no TTL;
// invalidation happens explicitly when fresh postings arrive.
type RedisStore struct {
	client *redis.Client
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisStore(opts RedisOptions) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &RedisStore{client: client}
}

func (s *RedisStore) get(ctx context.Context, key Key, value interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+key.String()).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("reading dataset from redis", err)
	}
	if err := json.Unmarshal(raw, value); err != nil {
		return false, errors.Malformed("decoding cached dataset", err)
	}
	return true, nil
}

func (s *RedisStore) put(ctx context.Context, key Key, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Internal("encoding dataset for redis", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key.String(), raw, 0).Err(); err != nil {
		return errors.Internal("writing dataset to redis", err)
	}
	return nil
}

func (s *RedisStore) GetPostings(ctx context.Context, key Key) (*models.Dataset, bool, error) {
	var ds models.Dataset
	ok, err := s.get(ctx, key, &ds)
	if !ok || err != nil {
		return nil, false, err
	}
	return &ds, true, nil
}

func (s *RedisStore) PutPostings(ctx context.Context, key Key, ds *models.Dataset) error {
	return s.put(ctx, key, ds)
}

func (s *RedisStore) GetForecast(ctx context.Context, key Key) ([]models.ForecastRow, bool, error) {
	var rows []models.ForecastRow
	ok, err := s.get(ctx, key, &rows)
	if !ok || err != nil {
		return nil, false, err
	}
	return rows, true, nil
}

func (s *RedisStore) PutForecast(ctx context.Context, key Key, rows []models.ForecastRow) error {
	return s.put(ctx, key, rows)
}

func (s *RedisStore) Invalidate(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return errors.Internal("deleting cached dataset", err)
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Internal("scanning cached datasets", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
