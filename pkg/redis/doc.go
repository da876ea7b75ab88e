// Package redis connects to Redis with go-redis/v9.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// The client is pinged before Connect returns. Healthcheck adapts it to a
// readiness probe.
package redis
