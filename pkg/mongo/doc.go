// Package mongo connects to MongoDB with the official v2 driver.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
// New retries until the deployment answers a ping or RetryAttempts is used up.
package mongo
