package postgres

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/kaspad/script"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/pkg/safe"
)

const (
	utxosTable        = "utxos"
	utxosStagingTable = "utxos_staging"

	utxosExistQuery = `SELECT EXISTS (SELECT 1 FROM utxos)`
	countUTXOsQuery = `SELECT count(*) FROM utxos`
)

var utxoColumns = []string{
	"transaction_id",
	"output_index",
	"amount",
	"script_public_key",
	"script_public_key_version",
	"script_class",
	"block_daa_score",
	"is_coinbase",
}

// utxoRows converts a batch into COPY rows in utxoColumns order.
func utxoRows(batch model.ImportBatch) ([][]any, error) {
	rows := make([][]any, 0, len(batch))
	for _, entry := range batch {
		amount, err := safe.Int64(entry.Amount)
		if err != nil {
			return nil, fmt.Errorf("utxo %s: amount: %w", entry.Outpoint, err)
		}
		daaScore, err := safe.Int64(entry.BlockDAAScore)
		if err != nil {
			return nil, fmt.Errorf("utxo %s: block daa score: %w", entry.Outpoint, err)
		}

		txID := entry.Outpoint.TransactionID
		rows = append(rows, []any{
			txID[:],
			int64(entry.Outpoint.Index),
			amount,
			entry.ScriptPublicKey.Script,
			int32(entry.ScriptPublicKey.Version),
			int16(script.Classify(entry.ScriptPublicKey)),
			daaScore,
			entry.IsCoinbase,
		})
	}
	return rows, nil
}

func utxosExist(ctx context.Context, q queryRower) (bool, error) {
	var exists bool
	if err := q.QueryRow(ctx, utxosExistQuery).Scan(&exists); err != nil {
		return false, fmt.Errorf("check utxos: %w", err)
	}
	return exists, nil
}
