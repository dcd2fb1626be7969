// Package deploy provides BRM Token contract deployment routine for Neo
// blockchain networks.
package deploy

import (
	"context"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services of a particular Neo blockchain network required
// for the contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose, send and await
	// transactions on the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns an error with 'Unknown
	// contract' substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups parameters of the contract deployment procedure.
type Prm struct {
	// Writes progress into the log. Optional.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	// Compiled contract executable and manifest.
	NEF      nef.File
	Manifest manifest.Manifest

	// Account becoming the contract owner.
	Owner util.Uint160

	// Refund delay of the lock queue in seconds. Negative value keeps the
	// contract default (ten days).
	RefundDelay int64
}

// Deploy deploys the token contract on the given Neo blockchain and returns
// its address. The procedure is idempotent: if the contract deployed by the
// local account already exists, its address is returned without any
// transaction being sent.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	if err := ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	l := prm.Logger
	if l == nil {
		l = zap.NewNop()
	}

	localActor, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	contractAddress := state.CreateContractHash(localActor.Sender(), prm.NEF.Checksum, prm.Manifest.Name)

	if st, err := prm.Blockchain.GetContractStateByHash(contractAddress); err == nil {
		l.Info("contract is already deployed, skip", zap.Stringer("address", st.Hash))
		return st.Hash, nil
	}

	deployArgs := []any{prm.Owner}
	if prm.RefundDelay >= 0 {
		deployArgs = append(deployArgs, prm.RefundDelay)
	}

	l.Info("deploying contract...",
		zap.Stringer("address", contractAddress),
		zap.Stringer("owner", prm.Owner))

	txHash, vub, err := management.New(localActor).Deploy(&prm.NEF, &prm.Manifest, deployArgs)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send contract deployment transaction: %w", err)
	}

	res, err := localActor.Wait(txHash, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("await contract deployment transaction: %w", err)
	}
	if res.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("contract deployment transaction faulted: %s", res.FaultException)
	}

	l.Info("contract has been deployed", zap.Stringer("address", contractAddress))

	return contractAddress, nil
}
