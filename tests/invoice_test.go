package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/openbrmio/brmtoken/common"
	"github.com/openbrmio/brmtoken/token"
	"github.com/stretchr/testify/require"
)

const (
	invoiceStatusOpen     = 1
	invoiceStatusPaid     = 3
	invoiceStatusRejected = 4
)

const (
	invoiceIndexID          = 0
	invoiceIndexStatus      = 1
	invoiceIndexTotal       = 5
	invoiceIndexPaid        = 6
	invoiceIndexPaymentID   = 9
	invoiceIndexDescription = 10
)

// newInvoiceInvoker deploys the contract and funds two user accounts: the
// invoice sender and the payer.
func newInvoiceInvoker(t *testing.T) (*neotest.ContractInvoker, *neotest.ContractInvoker, neotest.Signer, neotest.Signer) {
	c := newTokenInvoker(t, nil)
	createTestToken(t, c)

	sender := c.NewAccount(t)
	payer := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "issue", payer.ScriptHash(), testSymbol, 100_000, "")

	return c.WithSigners(sender), c.WithSigners(payer), sender, payer
}

// invokeWithFeeSlack runs a state-changing method with a generous system fee.
// Methods deriving data from the carrier transaction hash store payloads of a
// size unknown at fee-estimation time (the estimation runs on the unsigned
// transaction whose hash differs from the final one), so the estimated fee
// may come up short.
func invokeWithFeeSlack(t *testing.T, c *neotest.ContractInvoker, method string, args ...interface{}) util.Uint256 {
	tx := c.PrepareInvokeNoSign(t, method, args...)
	c.SignTx(t, tx, 50_0000_0000, c.Signers...)
	c.AddNewBlock(t, tx)
	return tx.Hash()
}

// sendTestInvoice invokes sendInvoice and returns the id derived from the
// carrier transaction hash.
func sendTestInvoice(t *testing.T, c *neotest.ContractInvoker, from, to neotest.Signer, amount int64, descr string) int64 {
	h := invokeWithFeeSlack(t, c, "sendInvoice",
		from.ScriptHash(), to.ScriptHash(), testSymbol, amount, 0, descr)
	aer := c.CheckHalt(t, h)

	require.Len(t, aer.Stack, 1)
	id, err := aer.Stack[0].TryInteger()
	require.NoError(t, err)

	return id.Int64()
}

func invoiceField(t *testing.T, c *neotest.ContractInvoker, sender neotest.Signer, id int64, index int) stackitem.Item {
	s, err := c.TestInvoke(t, "invoiceOf", sender.ScriptHash(), id)
	require.NoError(t, err)

	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 11)

	return arr[index]
}

func invoiceIntField(t *testing.T, c *neotest.ContractInvoker, sender neotest.Signer, id int64, index int) int64 {
	v, err := invoiceField(t, c, sender, id, index).TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

func iterateInvoices(t *testing.T, c *neotest.ContractInvoker, method string, owner neotest.Signer) []stackitem.Item {
	s, err := c.TestInvoke(t, method, owner.ScriptHash())
	require.NoError(t, err)

	iter, ok := s.Pop().Value().(*storage.Iterator)
	require.True(t, ok)

	return iteratorToArray(iter)
}

func TestToken_SendInvoice(t *testing.T) {
	cSender, cPayer, sender, payer := newInvoiceInvoker(t)

	cSender.InvokeFail(t, token.ErrNonPositiveAmount, "sendInvoice",
		sender.ScriptHash(), payer.ScriptHash(), testSymbol, 0, 0, "")
	cSender.InvokeFail(t, token.ErrTokenNotExist, "sendInvoice",
		sender.ScriptHash(), payer.ScriptHash(), "NOSUCH", 100, 0, "")
	cSender.InvokeFail(t, token.ErrInvalidPaymentDue, "sendInvoice",
		sender.ScriptHash(), payer.ScriptHash(), testSymbol, 100, 1<<40, "")
	cPayer.InvokeFail(t, common.ErrOwnerWitnessFailed, "sendInvoice",
		sender.ScriptHash(), payer.ScriptHash(), testSymbol, 100, 0, "")

	id := sendTestInvoice(t, cSender, sender, payer, 25_000, "services")

	require.EqualValues(t, id, invoiceIntField(t, cSender, sender, id, invoiceIndexID))
	require.EqualValues(t, invoiceStatusOpen, invoiceIntField(t, cSender, sender, id, invoiceIndexStatus))
	require.EqualValues(t, 25_000, invoiceIntField(t, cSender, sender, id, invoiceIndexTotal))
	require.EqualValues(t, 0, invoiceIntField(t, cSender, sender, id, invoiceIndexPaid))

	// The mirror lands in the payer's inbox and points back at the sender.
	inbox := iterateInvoices(t, cPayer, "inboxOf", payer)
	require.Len(t, inbox, 1)

	mirror, ok := inbox[0].Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, mirror, 3)

	mirrorID, err := mirror[0].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, id, mirrorID.Int64())

	mirrorSender, err := mirror[2].TryBytes()
	require.NoError(t, err)
	require.Equal(t, sender.ScriptHash().BytesBE(), mirrorSender)

	sent := iterateInvoices(t, cSender, "invoicesOf", sender)
	require.Len(t, sent, 1)
}

func TestToken_PayInvoice(t *testing.T) {
	cSender, cPayer, sender, payer := newInvoiceInvoker(t)

	id := sendTestInvoice(t, cSender, sender, payer, 25_000, "services")

	cPayer.InvokeFail(t, token.ErrNoSuchInvoice, "payInvoice",
		payer.ScriptHash(), id+1, testSymbol, 25_000)
	cPayer.InvokeFail(t, token.ErrExactPaymentOnly, "payInvoice",
		payer.ScriptHash(), id, testSymbol, 10_000)
	cPayer.InvokeFail(t, token.ErrExactPaymentOnly, "payInvoice",
		payer.ScriptHash(), id, testSymbol, 30_000)
	cSender.InvokeFail(t, common.ErrOwnerWitnessFailed, "payInvoice",
		payer.ScriptHash(), id, testSymbol, 25_000)

	h := invokeWithFeeSlack(t, cPayer, "payInvoice",
		payer.ScriptHash(), id, testSymbol, 25_000)
	cPayer.CheckHalt(t, h, stackitem.Null{})

	cPayer.Invoke(t, 75_000, "balanceOf", payer.ScriptHash(), testSymbol)
	cPayer.Invoke(t, 25_000, "balanceOf", sender.ScriptHash(), testSymbol)

	require.EqualValues(t, invoiceStatusPaid, invoiceIntField(t, cSender, sender, id, invoiceIndexStatus))
	require.EqualValues(t, 25_000, invoiceIntField(t, cSender, sender, id, invoiceIndexPaid))

	paymentID, err := invoiceField(t, cSender, sender, id, invoiceIndexPaymentID).TryBytes()
	require.NoError(t, err)
	require.NotEmpty(t, paymentID)

	// The mirror is erased, so the invoice cannot be settled twice. The
	// sender keeps the paid record as history.
	require.Empty(t, iterateInvoices(t, cPayer, "inboxOf", payer))
	require.Len(t, iterateInvoices(t, cSender, "invoicesOf", sender), 1)

	cPayer.InvokeFail(t, token.ErrNoSuchInvoice, "payInvoice",
		payer.ScriptHash(), id, testSymbol, 25_000)
}

func TestToken_RejectInvoice(t *testing.T) {
	cSender, cPayer, sender, payer := newInvoiceInvoker(t)

	id := sendTestInvoice(t, cSender, sender, payer, 25_000, "services")

	cPayer.InvokeFail(t, token.ErrNoSuchInvoice, "rejectInvoice",
		payer.ScriptHash(), id+1, "unknown")
	cSender.InvokeFail(t, common.ErrOwnerWitnessFailed, "rejectInvoice",
		payer.ScriptHash(), id, "not mine")

	cPayer.Invoke(t, stackitem.Null{}, "rejectInvoice",
		payer.ScriptHash(), id, "disputed")

	require.EqualValues(t, invoiceStatusRejected, invoiceIntField(t, cSender, sender, id, invoiceIndexStatus))

	descr, err := invoiceField(t, cSender, sender, id, invoiceIndexDescription).TryBytes()
	require.NoError(t, err)
	require.Equal(t, "services|reject:disputed", string(descr))

	// No funds moved.
	cPayer.Invoke(t, 100_000, "balanceOf", payer.ScriptHash(), testSymbol)
	cPayer.Invoke(t, 0, "balanceOf", sender.ScriptHash(), testSymbol)

	// Terminal status, the mirror is gone.
	require.Empty(t, iterateInvoices(t, cPayer, "inboxOf", payer))
	cPayer.InvokeFail(t, token.ErrNoSuchInvoice, "payInvoice",
		payer.ScriptHash(), id, testSymbol, 25_000)
	cPayer.InvokeFail(t, token.ErrNoSuchInvoice, "rejectInvoice",
		payer.ScriptHash(), id, "again")
}

func TestToken_InvoiceSymbolMismatch(t *testing.T) {
	cSender, cPayer, sender, payer := newInvoiceInvoker(t)

	// Register a second token to pay with the wrong one.
	cSender.CommitteeInvoker(cSender.Hash).Invoke(t, stackitem.Null{}, "create",
		cSender.CommitteeHash, "ALT", testDecimals, testMaxSupply)

	id := sendTestInvoice(t, cSender, sender, payer, 25_000, "services")

	cPayer.InvokeFail(t, token.ErrSymbolMismatch, "payInvoice",
		payer.ScriptHash(), id, "ALT", 25_000)
}
