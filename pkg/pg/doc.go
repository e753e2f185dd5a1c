// Package pg opens pgx connection pools with retries, runs goose migrations
// from an fs.FS and classifies common Postgres errors.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, migrations.FS, ".", log); err != nil {
//		return err
//	}
package pg
