package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects to the redis instance backing the role
// directory cache. Nothing else in the service uses redis; if the
// instance goes away at runtime the auth layer degrades to querying
// the database on every request.
func NewRedisClient(cfg Config) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{cfg.RedisAddr},
			ClientName:  "charity-connect",
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return redisClient
}
