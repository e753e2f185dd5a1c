// Package redis connects to Redis with retries, exposes a health check and a
// small prefixed key-value Storage used for form drafts.
//
//	var cfg redis.Config
//	if err := config.Parse(&cfg, "DRAFTS_"); err != nil {
//		return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	drafts := redis.NewStorage(client, "drafts:")
package redis
