package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/openbrmio/brmtoken/common"
	"github.com/openbrmio/brmtoken/token"
	"github.com/stretchr/testify/require"
)

const tokenPath = "../token"

const (
	testSymbol    = "BRM"
	testDecimals  = 3
	testMaxSupply = 1_000_000_000
)

func deployTokenContract(t *testing.T, e *neotest.Executor, data []interface{}) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	if data == nil {
		data = []interface{}{e.CommitteeHash}
	}
	e.DeployContract(t, c, data)
	return c.Hash
}

func newTokenInvoker(t *testing.T, data []interface{}) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployTokenContract(t, e, data)
	return e.CommitteeInvoker(h)
}

func createTestToken(t *testing.T, c *neotest.ContractInvoker) {
	c.Invoke(t, stackitem.Null{}, "create",
		c.CommitteeHash, testSymbol, testDecimals, testMaxSupply)
}

func TestToken_Version(t *testing.T) {
	c := newTokenInvoker(t, nil)
	c.Invoke(t, common.Version, "version")
}

func TestToken_Create(t *testing.T) {
	c := newTokenInvoker(t, nil)

	c.InvokeFail(t, token.ErrInvalidSymbol, "create",
		c.CommitteeHash, "brm", testDecimals, testMaxSupply)
	c.InvokeFail(t, token.ErrInvalidSymbol, "create",
		c.CommitteeHash, "TOOLONGSYM", testDecimals, testMaxSupply)
	c.InvokeFail(t, token.ErrNonPositiveMaxSupply, "create",
		c.CommitteeHash, testSymbol, testDecimals, 0)
	c.InvokeFail(t, token.ErrInvalidDecimals, "create",
		c.CommitteeHash, testSymbol, 19, testMaxSupply)

	createTestToken(t, c)
	c.Invoke(t, 0, "supplyOf", testSymbol)

	c.InvokeFail(t, token.ErrTokenExists, "create",
		c.CommitteeHash, testSymbol, testDecimals, testMaxSupply)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, common.ErrContractOwnerWitnessFailed, "create",
		acc.ScriptHash(), "OTHER", testDecimals, testMaxSupply)
}

func TestToken_IssueRetire(t *testing.T) {
	c := newTokenInvoker(t, nil)
	createTestToken(t, c)

	c.InvokeFail(t, token.ErrTokenNotExist, "issue",
		c.CommitteeHash, "NOSUCH", 100, "")
	c.InvokeFail(t, token.ErrNonPositiveAmount, "issue",
		c.CommitteeHash, testSymbol, 0, "")
	c.InvokeFail(t, token.ErrExceedsSupply, "issue",
		c.CommitteeHash, testSymbol, testMaxSupply+1, "")

	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, testSymbol, 500_000, "genesis")
	c.Invoke(t, 500_000, "supplyOf", testSymbol)
	c.Invoke(t, 500_000, "balanceOf", c.CommitteeHash, testSymbol)

	// Remaining headroom is the limit for subsequent issues.
	c.InvokeFail(t, token.ErrExceedsSupply, "issue",
		c.CommitteeHash, testSymbol, testMaxSupply-500_000+1, "")

	c.Invoke(t, stackitem.Null{}, "retire", testSymbol, 100_000, "cleanup")
	c.Invoke(t, 400_000, "supplyOf", testSymbol)
	c.Invoke(t, 400_000, "balanceOf", c.CommitteeHash, testSymbol)

	c.InvokeFail(t, token.ErrNegativeSupply, "retire", testSymbol, 400_001, "")

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, common.ErrIssuerWitnessFailed, "issue",
		acc.ScriptHash(), testSymbol, 100, "")
	cAcc.InvokeFail(t, common.ErrIssuerWitnessFailed, "retire", testSymbol, 100, "")
}

func TestToken_IssueToRecipient(t *testing.T) {
	c := newTokenInvoker(t, nil)
	createTestToken(t, c)

	acc := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "issue", acc.ScriptHash(), testSymbol, 1_000, "airdrop")

	c.Invoke(t, 1_000, "supplyOf", testSymbol)
	c.Invoke(t, 0, "balanceOf", c.CommitteeHash, testSymbol)
	c.Invoke(t, 1_000, "balanceOf", acc.ScriptHash(), testSymbol)
}

func TestToken_Transfer(t *testing.T) {
	c := newTokenInvoker(t, nil)
	createTestToken(t, c)
	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, testSymbol, 1_000_000, "")

	acc := c.NewAccount(t)

	c.InvokeFail(t, token.ErrSelfTransfer, "transfer",
		c.CommitteeHash, c.CommitteeHash, testSymbol, 100, "")
	c.InvokeFail(t, token.ErrNonPositiveAmount, "transfer",
		c.CommitteeHash, acc.ScriptHash(), testSymbol, 0, "")
	c.InvokeFail(t, token.ErrOverdrawn, "transfer",
		c.CommitteeHash, acc.ScriptHash(), testSymbol, 1_000_001, "")

	c.Invoke(t, stackitem.Null{}, "transfer",
		c.CommitteeHash, acc.ScriptHash(), testSymbol, 100_000, "payment")
	c.Invoke(t, 900_000, "balanceOf", c.CommitteeHash, testSymbol)
	c.Invoke(t, 100_000, "balanceOf", acc.ScriptHash(), testSymbol)

	// Total supply is unaffected by transfers.
	c.Invoke(t, 1_000_000, "supplyOf", testSymbol)

	// Spending other people's funds requires their witness.
	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "transfer",
		acc.ScriptHash(), c.CommitteeHash, testSymbol, 100, "")

	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, token.ErrTokenNotExist, "transfer",
		acc.ScriptHash(), c.CommitteeHash, "NOSUCH", 100, "")

	// A never funded account has no balance row at all.
	acc2 := c.NewAccount(t)
	cAcc2 := c.WithSigners(acc2)
	cAcc2.InvokeFail(t, token.ErrNoBalance, "transfer",
		acc2.ScriptHash(), c.CommitteeHash, testSymbol, 100, "")
}

func TestToken_OpenClose(t *testing.T) {
	c := newTokenInvoker(t, nil)
	createTestToken(t, c)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.InvokeFail(t, token.ErrBalanceRowMissing, "close", acc.ScriptHash(), testSymbol)

	cAcc.Invoke(t, stackitem.Null{}, "open", acc.ScriptHash(), testSymbol)
	cAcc.Invoke(t, 0, "balanceOf", acc.ScriptHash(), testSymbol)

	// Open is idempotent.
	cAcc.Invoke(t, stackitem.Null{}, "open", acc.ScriptHash(), testSymbol)

	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, testSymbol, 1_000, "")
	c.Invoke(t, stackitem.Null{}, "transfer",
		c.CommitteeHash, acc.ScriptHash(), testSymbol, 1_000, "")

	cAcc.InvokeFail(t, token.ErrBalanceNotZero, "close", acc.ScriptHash(), testSymbol)

	cAcc.Invoke(t, stackitem.Null{}, "transfer",
		acc.ScriptHash(), c.CommitteeHash, testSymbol, 1_000, "")
	cAcc.Invoke(t, stackitem.Null{}, "close", acc.ScriptHash(), testSymbol)
	cAcc.InvokeFail(t, token.ErrBalanceRowMissing, "close", acc.ScriptHash(), testSymbol)

	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "open", acc.ScriptHash(), testSymbol)
}

func TestToken_TokenInfo(t *testing.T) {
	c := newTokenInvoker(t, nil)
	createTestToken(t, c)

	s, err := c.TestInvoke(t, "tokenInfo", testSymbol)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 5)

	sym, err := arr[0].TryBytes()
	require.NoError(t, err)
	require.Equal(t, testSymbol, string(sym))

	dec, err := arr[1].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, testDecimals, dec.Int64())

	maxSupply, err := arr[3].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, testMaxSupply, maxSupply.Int64())

	issuer, err := arr[4].TryBytes()
	require.NoError(t, err)
	require.Equal(t, c.CommitteeHash.BytesBE(), issuer)

	_, err = c.TestInvoke(t, "tokenInfo", "NOSUCH")
	require.Error(t, err)
}
