// Package metrics exposes application metrics collectors.
package metrics

const (
	namespace = "kaspa_utxo_seeder"
	unknown   = "unknown"
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
