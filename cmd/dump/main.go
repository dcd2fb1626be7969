// Dump prints the state of a deployed BRM Token contract over Neo RPC:
// token stats, staking aggregates and, for a particular account, its
// balance, stake, locked balance and invoices.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/openbrmio/brmtoken/common"
	"github.com/openbrmio/brmtoken/rpc/token"
)

const maxInvoices = 100

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddress := flag.String("contract", "", "BRM Token contract address (LE hex)")
	accountAddress := flag.String("account", "", "Neo address of the account to inspect (optional)")
	symbol := flag.String("symbol", "BRM", "Symbol code of the token to inspect")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddress == "":
		log.Fatal("missing contract address")
	}

	contractHash, err := util.Uint160DecodeStringLE(*contractAddress)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract address: %w", err))
	}

	err = _dump(*neoRPCEndpoint, contractHash, *accountAddress, *symbol)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(endpoint string, contractHash util.Uint160, accountAddress, symbol string) error {
	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}

	defer c.Close()

	if err := c.Init(); err != nil {
		return fmt.Errorf("init RPC client connection: %w", err)
	}

	reader := token.NewReader(invoker.New(c, nil), contractHash)

	info, err := reader.TokenInfo(symbol)
	if err != nil {
		return fmt.Errorf("get '%s' token info: %w", symbol, err)
	}

	fmt.Printf("token %s: decimals %v, supply %v of %v, issuer %s\n",
		info.Symbol, info.Decimals, info.Supply, info.MaxSupply, info.Issuer.StringLE())

	stats, err := reader.StakingStats()
	if err != nil {
		return fmt.Errorf("get staking stats: %w", err)
	}

	fmt.Printf("staking: running %t, active accounts %v, total staked %v (weekly %v, monthly %v, quarterly %v)\n",
		stats.Running, stats.ActiveAccounts, stats.TotalStaked,
		stats.StakedWeekly, stats.StakedMonthly, stats.StakedQuarterly)

	if accountAddress == "" {
		return nil
	}

	account, err := decodeAccountAddress(accountAddress)
	if err != nil {
		return fmt.Errorf("decode account address: %w", err)
	}

	return dumpAccount(reader, account, symbol)
}

func dumpAccount(reader *token.ContractReader, account util.Uint160, symbol string) error {
	balance, err := reader.BalanceOf(account, symbol)
	if err != nil {
		return fmt.Errorf("get account balance: %w", err)
	}

	fmt.Printf("account %s: balance %v %s\n", account.StringLE(), balance, symbol)

	if stake, err := reader.StakeOf(account); err == nil {
		fmt.Printf("  staked %v %s, period %v, matures at %v\n",
			stake.Staked, stake.Symbol, stake.Period, stake.StakeDue)
	}

	if lock, err := reader.LockOf(account); err == nil {
		fmt.Printf("  locked %v %s, refundable at %v\n", lock.Amount, lock.Symbol, lock.RefundDue)
	}

	items, err := reader.InvoicesOfExpanded(account, maxInvoices)
	if err != nil {
		return fmt.Errorf("list sent invoices: %w", err)
	}

	for _, item := range items {
		var inv token.TokenUtilityInvoice
		if err := inv.FromStackItem(item); err != nil {
			return fmt.Errorf("decode invoice: %w", err)
		}
		fmt.Printf("  sent invoice %v: status %v, %v %s to %s, paid %v\n",
			inv.ID, inv.Status, inv.Total, inv.Symbol, inv.To.StringLE(), inv.Paid)
	}

	items, err = reader.InboxOfExpanded(account, maxInvoices)
	if err != nil {
		return fmt.Errorf("list received invoices: %w", err)
	}

	for _, item := range items {
		var inv token.TokenCustomerInvoice
		if err := inv.FromStackItem(item); err != nil {
			return fmt.Errorf("decode invoice mirror: %w", err)
		}
		fmt.Printf("  received invoice %v from %s, created at %v\n",
			inv.ID, inv.Sender.StringLE(), inv.CreatedDate)
	}

	return nil
}

// decodeAccountAddress converts base58-encoded Neo address into the account
// script hash.
func decodeAccountAddress(s string) (util.Uint160, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return util.Uint160{}, err
	}
	if len(raw) != 25 {
		return util.Uint160{}, fmt.Errorf("unexpected address length %d", len(raw))
	}
	return util.Uint160DecodeBytesLE(common.WalletToScriptHash(raw))
}
