// Package pg connects to PostgreSQL with pgx/v5 and applies goose
// migrations from an fs.FS.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrations.FS, ".", cfg, log); err != nil {
//		return err
//	}
//
// Connect retries with a growing pause until RetryAttempts is exhausted or
// ctx is cancelled. IsDuplicateKeyError and IsNotFoundError translate driver
// errors for store implementations.
package pg
