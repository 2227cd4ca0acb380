package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
)

const (
	seedNetworkTypeQuery = `INSERT INTO network_types (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	seedScriptClassQuery = `INSERT INTO script_classes (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`
)

// SeedLookupRows inserts the static lookup rows. Existing rows are left untouched.
func (r *Repository) SeedLookupRows(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("seed_lookup_rows", err, start)
	}()

	for i, networkType := range model.NetworkTypes {
		if _, err = r.conn.Exec(ctx, seedNetworkTypeQuery, int16(i), string(networkType)); err != nil {
			return fmt.Errorf("seed network type %s: %w", networkType, err)
		}
	}
	for _, class := range model.ScriptClasses {
		if _, err = r.conn.Exec(ctx, seedScriptClassQuery, int16(class), class.String()); err != nil {
			return fmt.Errorf("seed script class %s: %w", class, err)
		}
	}
	return nil
}
