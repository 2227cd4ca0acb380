package rpcclient

import (
	"context"
	"fmt"
	"time"

	"github.com/kaspanet/kaspad/app/appmessage"
	"github.com/kaspanet/kaspad/infrastructure/network/rpcclient"

	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/model"
	"github.com/goodnatureofminers/kaspa-utxo-seeder/internal/network"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	NodeClient interface {
		GetInfo() (*appmessage.GetInfoResponseMessage, error)
		GetBlockDAGInfo() (*appmessage.GetBlockDAGInfoResponseMessage, error)
	}
)

var _ NodeClient = (*rpcclient.RPCClient)(nil)

type ObservedClient struct {
	client     NodeClient
	rpcMetrics RPCMetrics
}

func NewObservedClient(client NodeClient, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetInfo() (res *appmessage.GetInfoResponseMessage, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_info", err, started)
	}()
	return r.client.GetInfo()
}

func (r *ObservedClient) GetBlockDAGInfo() (res *appmessage.GetBlockDAGInfoResponseMessage, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_dag_info", err, started)
	}()
	return r.client.GetBlockDAGInfo()
}

// GetServerInfo reports sync state, version and network of the node.
// The node's network name must be one the resolver accepts.
func (r *ObservedClient) GetServerInfo(ctx context.Context) (model.ServerInfo, error) {
	if err := ctx.Err(); err != nil {
		return model.ServerInfo{}, err
	}

	info, err := r.GetInfo()
	if err != nil {
		return model.ServerInfo{}, fmt.Errorf("get info: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return model.ServerInfo{}, err
	}

	dag, err := r.GetBlockDAGInfo()
	if err != nil {
		return model.ServerInfo{}, fmt.Errorf("get block dag info: %w", err)
	}

	id, err := network.Parse(dag.NetworkName)
	if err != nil {
		return model.ServerInfo{}, fmt.Errorf("%w: node reports network %q: %v", model.ErrNetworkMismatch, dag.NetworkName, err)
	}

	return model.ServerInfo{
		IsSynced:      info.IsSynced,
		Network:       id,
		ServerVersion: info.ServerVersion,
	}, nil
}
