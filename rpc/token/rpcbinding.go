// Package token contains RPC wrappers for BRM Token contract.
package token

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// TokenTokenStats is a contract-specific token.TokenStats type used by its methods.
type TokenTokenStats struct {
	Symbol string
	Decimals *big.Int
	Supply *big.Int
	MaxSupply *big.Int
	Issuer util.Uint160
}

// TokenStake is a contract-specific token.Stake type used by its methods.
type TokenStake struct {
	Account util.Uint160
	Period *big.Int
	Symbol string
	Staked *big.Int
	Escrow *big.Int
	StakeDate *big.Int
	StakeDue *big.Int
}

// TokenStakingConfig is a contract-specific token.StakingConfig type used by its methods.
type TokenStakingConfig struct {
	Running bool
	ActiveAccounts *big.Int
	StakedWeekly *big.Int
	StakedMonthly *big.Int
	StakedQuarterly *big.Int
	TotalStaked *big.Int
	TotalEscrowedMonthly *big.Int
	TotalEscrowedQuarterly *big.Int
	TotalShares *big.Int
	BasePayout *big.Int
	Bonus *big.Int
	TotalPayout *big.Int
	InterestShare *big.Int
	UnclaimedTokens *big.Int
	SpareA1 *big.Int
	SpareA2 *big.Int
	SpareI1 *big.Int
	SpareI2 *big.Int
}

// TokenLockedBalance is a contract-specific token.LockedBalance type used by its methods.
type TokenLockedBalance struct {
	Account util.Uint160
	Symbol string
	Amount *big.Int
	RefundDue *big.Int
}

// TokenUtilityInvoice is a contract-specific token.UtilityInvoice type used by its methods.
type TokenUtilityInvoice struct {
	ID *big.Int
	Status *big.Int
	From util.Uint160
	To util.Uint160
	Symbol string
	Total *big.Int
	Paid *big.Int
	PaymentDue *big.Int
	PaymentDate *big.Int
	PaymentID string
	Description string
}

// TokenCustomerInvoice is a contract-specific token.CustomerInvoice type used by its methods.
type TokenCustomerInvoice struct {
	ID *big.Int
	CreatedDate *big.Int
	Sender util.Uint160
}

// TransferEvent represents "Transfer" event emitted by the contract.
type TransferEvent struct {
	From util.Uint160
	To util.Uint160
	Amount *big.Int
	Symbol string
}

// MintEvent represents "Mint" event emitted by the contract.
type MintEvent struct {
	To util.Uint160
	Amount *big.Int
	Symbol string
}

// BurnEvent represents "Burn" event emitted by the contract.
type BurnEvent struct {
	From util.Uint160
	Amount *big.Int
	Symbol string
}

// StakeEvent represents "Stake" event emitted by the contract.
type StakeEvent struct {
	Account util.Uint160
	Amount *big.Int
	Symbol string
}

// UnstakeEvent represents "Unstake" event emitted by the contract.
type UnstakeEvent struct {
	Account util.Uint160
	Amount *big.Int
	RefundDue *big.Int
}

// RefundEvent represents "Refund" event emitted by the contract.
type RefundEvent struct {
	Account util.Uint160
	Amount *big.Int
}

// SendInvoiceEvent represents "SendInvoice" event emitted by the contract.
type SendInvoiceEvent struct {
	Recipient util.Uint160
	InvoiceID *big.Int
	CreatedBy util.Uint160
	Amount *big.Int
	PaymentDue *big.Int
	Description string
	Message string
}

// PayInvoiceEvent represents "PayInvoice" event emitted by the contract.
type PayInvoiceEvent struct {
	Recipient util.Uint160
	InvoiceID *big.Int
	CreatedBy util.Uint160
	Amount *big.Int
	PaymentDue *big.Int
	Description string
	Message string
}

// RejectInvoiceEvent represents "RejectInvoice" event emitted by the contract.
type RejectInvoiceEvent struct {
	Recipient util.Uint160
	InvoiceID *big.Int
	CreatedBy util.Uint160
	Amount *big.Int
	PaymentDue *big.Int
	Description string
	Message string
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(owner util.Uint160, symbol string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", owner, symbol))
}

// InboxOf invokes `inboxOf` method of contract.
func (c *ContractReader) InboxOf(recipient util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "inboxOf", recipient))
}

// InboxOfExpanded is similar to InboxOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) InboxOfExpanded(recipient util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "inboxOf", _numOfIteratorItems, recipient))
}

// InvoiceOf invokes `invoiceOf` method of contract.
func (c *ContractReader) InvoiceOf(sender util.Uint160, invoiceID *big.Int) (*TokenUtilityInvoice, error) {
	return itemToTokenUtilityInvoice(unwrap.Item(c.invoker.Call(c.hash, "invoiceOf", sender, invoiceID)))
}

// InvoicesOf invokes `invoicesOf` method of contract.
func (c *ContractReader) InvoicesOf(sender util.Uint160) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "invoicesOf", sender))
}

// InvoicesOfExpanded is similar to InvoicesOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) InvoicesOfExpanded(sender util.Uint160, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "invoicesOf", _numOfIteratorItems, sender))
}

// LockOf invokes `lockOf` method of contract.
func (c *ContractReader) LockOf(account util.Uint160) (*TokenLockedBalance, error) {
	return itemToTokenLockedBalance(unwrap.Item(c.invoker.Call(c.hash, "lockOf", account)))
}

// LockedBalanceOf invokes `lockedBalanceOf` method of contract.
func (c *ContractReader) LockedBalanceOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "lockedBalanceOf", account))
}

// StakeOf invokes `stakeOf` method of contract.
func (c *ContractReader) StakeOf(account util.Uint160) (*TokenStake, error) {
	return itemToTokenStake(unwrap.Item(c.invoker.Call(c.hash, "stakeOf", account)))
}

// StakingStats invokes `stakingStats` method of contract.
func (c *ContractReader) StakingStats() (*TokenStakingConfig, error) {
	return itemToTokenStakingConfig(unwrap.Item(c.invoker.Call(c.hash, "stakingStats")))
}

// SupplyOf invokes `supplyOf` method of contract.
func (c *ContractReader) SupplyOf(symbol string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "supplyOf", symbol))
}

// TokenInfo invokes `tokenInfo` method of contract.
func (c *ContractReader) TokenInfo(symbol string) (*TokenTokenStats, error) {
	return itemToTokenTokenStats(unwrap.Item(c.invoker.Call(c.hash, "tokenInfo", symbol)))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Close creates a transaction invoking `close` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Close(owner util.Uint160, symbol string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "close", owner, symbol)
}

// CloseTransaction creates a transaction invoking `close` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CloseTransaction(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "close", owner, symbol)
}

// CloseUnsigned creates a transaction invoking `close` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CloseUnsigned(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "close", nil, owner, symbol)
}

// Create creates a transaction invoking `create` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Create(issuer util.Uint160, symbol string, decimals *big.Int, maxSupply *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "create", issuer, symbol, decimals, maxSupply)
}

// CreateTransaction creates a transaction invoking `create` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateTransaction(issuer util.Uint160, symbol string, decimals *big.Int, maxSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "create", issuer, symbol, decimals, maxSupply)
}

// CreateUnsigned creates a transaction invoking `create` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateUnsigned(issuer util.Uint160, symbol string, decimals *big.Int, maxSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "create", nil, issuer, symbol, decimals, maxSupply)
}

// Issue creates a transaction invoking `issue` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Issue(to util.Uint160, symbol string, amount *big.Int, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "issue", to, symbol, amount, memo)
}

// IssueTransaction creates a transaction invoking `issue` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) IssueTransaction(to util.Uint160, symbol string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "issue", to, symbol, amount, memo)
}

// IssueUnsigned creates a transaction invoking `issue` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) IssueUnsigned(to util.Uint160, symbol string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "issue", nil, to, symbol, amount, memo)
}

// Open creates a transaction invoking `open` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Open(owner util.Uint160, symbol string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "open", owner, symbol)
}

// OpenTransaction creates a transaction invoking `open` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OpenTransaction(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "open", owner, symbol)
}

// OpenUnsigned creates a transaction invoking `open` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OpenUnsigned(owner util.Uint160, symbol string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "open", nil, owner, symbol)
}

// PayInvoice creates a transaction invoking `payInvoice` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) PayInvoice(payer util.Uint160, invoiceID *big.Int, symbol string, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "payInvoice", payer, invoiceID, symbol, amount)
}

// PayInvoiceTransaction creates a transaction invoking `payInvoice` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PayInvoiceTransaction(payer util.Uint160, invoiceID *big.Int, symbol string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "payInvoice", payer, invoiceID, symbol, amount)
}

// PayInvoiceUnsigned creates a transaction invoking `payInvoice` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PayInvoiceUnsigned(payer util.Uint160, invoiceID *big.Int, symbol string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "payInvoice", nil, payer, invoiceID, symbol, amount)
}

// Refund creates a transaction invoking `refund` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Refund(owner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "refund", owner)
}

// RefundTransaction creates a transaction invoking `refund` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RefundTransaction(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "refund", owner)
}

// RefundUnsigned creates a transaction invoking `refund` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RefundUnsigned(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "refund", nil, owner)
}

// RejectInvoice creates a transaction invoking `rejectInvoice` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RejectInvoice(payer util.Uint160, invoiceID *big.Int, reason string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rejectInvoice", payer, invoiceID, reason)
}

// RejectInvoiceTransaction creates a transaction invoking `rejectInvoice` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RejectInvoiceTransaction(payer util.Uint160, invoiceID *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rejectInvoice", payer, invoiceID, reason)
}

// RejectInvoiceUnsigned creates a transaction invoking `rejectInvoice` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RejectInvoiceUnsigned(payer util.Uint160, invoiceID *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rejectInvoice", nil, payer, invoiceID, reason)
}

// Retire creates a transaction invoking `retire` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Retire(symbol string, amount *big.Int, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "retire", symbol, amount, memo)
}

// RetireTransaction creates a transaction invoking `retire` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RetireTransaction(symbol string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "retire", symbol, amount, memo)
}

// RetireUnsigned creates a transaction invoking `retire` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RetireUnsigned(symbol string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "retire", nil, symbol, amount, memo)
}

// SendInvoice creates a transaction invoking `sendInvoice` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SendInvoice(from util.Uint160, to util.Uint160, symbol string, amount *big.Int, paymentDue *big.Int, descr string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "sendInvoice", from, to, symbol, amount, paymentDue, descr)
}

// SendInvoiceTransaction creates a transaction invoking `sendInvoice` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SendInvoiceTransaction(from util.Uint160, to util.Uint160, symbol string, amount *big.Int, paymentDue *big.Int, descr string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "sendInvoice", from, to, symbol, amount, paymentDue, descr)
}

// SendInvoiceUnsigned creates a transaction invoking `sendInvoice` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SendInvoiceUnsigned(from util.Uint160, to util.Uint160, symbol string, amount *big.Int, paymentDue *big.Int, descr string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "sendInvoice", nil, from, to, symbol, amount, paymentDue, descr)
}

// Stake creates a transaction invoking `stake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Stake(account util.Uint160, symbol string, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "stake", account, symbol, amount)
}

// StakeTransaction creates a transaction invoking `stake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StakeTransaction(account util.Uint160, symbol string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "stake", account, symbol, amount)
}

// StakeUnsigned creates a transaction invoking `stake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StakeUnsigned(account util.Uint160, symbol string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "stake", nil, account, symbol, amount)
}

// Transfer creates a transaction invoking `transfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Transfer(from util.Uint160, to util.Uint160, symbol string, amount *big.Int, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transfer", from, to, symbol, amount, memo)
}

// TransferTransaction creates a transaction invoking `transfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferTransaction(from util.Uint160, to util.Uint160, symbol string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transfer", from, to, symbol, amount, memo)
}

// TransferUnsigned creates a transaction invoking `transfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferUnsigned(from util.Uint160, to util.Uint160, symbol string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transfer", nil, from, to, symbol, amount, memo)
}

// Unstake creates a transaction invoking `unstake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unstake(account util.Uint160, symbol string, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unstake", account, symbol, amount)
}

// UnstakeTransaction creates a transaction invoking `unstake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnstakeTransaction(account util.Uint160, symbol string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unstake", account, symbol, amount)
}

// UnstakeUnsigned creates a transaction invoking `unstake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnstakeUnsigned(account util.Uint160, symbol string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unstake", nil, account, symbol, amount)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToTokenTokenStats converts stack item into *TokenTokenStats.
func itemToTokenTokenStats(item stackitem.Item, err error) (*TokenTokenStats, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenTokenStats)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenTokenStats from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenTokenStats) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	res.Decimals, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Decimals: %w", err)
	}

	index++
	res.Supply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Supply: %w", err)
	}

	index++
	res.MaxSupply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxSupply: %w", err)
	}

	index++
	res.Issuer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Issuer: %w", err)
	}

	return nil
}

// itemToTokenStake converts stack item into *TokenStake.
func itemToTokenStake(item stackitem.Item, err error) (*TokenStake, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenStake)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenStake from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenStake) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	res.Period, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Period: %w", err)
	}

	index++
	res.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	res.Staked, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Staked: %w", err)
	}

	index++
	res.Escrow, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Escrow: %w", err)
	}

	index++
	res.StakeDate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StakeDate: %w", err)
	}

	index++
	res.StakeDue, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StakeDue: %w", err)
	}

	return nil
}

// itemToTokenStakingConfig converts stack item into *TokenStakingConfig.
func itemToTokenStakingConfig(item stackitem.Item, err error) (*TokenStakingConfig, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenStakingConfig)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenStakingConfig from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenStakingConfig) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 18 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Running, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Running: %w", err)
	}

	index++
	res.ActiveAccounts, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ActiveAccounts: %w", err)
	}

	index++
	res.StakedWeekly, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StakedWeekly: %w", err)
	}

	index++
	res.StakedMonthly, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StakedMonthly: %w", err)
	}

	index++
	res.StakedQuarterly, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StakedQuarterly: %w", err)
	}

	index++
	res.TotalStaked, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalStaked: %w", err)
	}

	index++
	res.TotalEscrowedMonthly, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalEscrowedMonthly: %w", err)
	}

	index++
	res.TotalEscrowedQuarterly, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalEscrowedQuarterly: %w", err)
	}

	index++
	res.TotalShares, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalShares: %w", err)
	}

	index++
	res.BasePayout, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BasePayout: %w", err)
	}

	index++
	res.Bonus, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bonus: %w", err)
	}

	index++
	res.TotalPayout, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalPayout: %w", err)
	}

	index++
	res.InterestShare, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field InterestShare: %w", err)
	}

	index++
	res.UnclaimedTokens, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UnclaimedTokens: %w", err)
	}

	index++
	res.SpareA1, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SpareA1: %w", err)
	}

	index++
	res.SpareA2, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SpareA2: %w", err)
	}

	index++
	res.SpareI1, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SpareI1: %w", err)
	}

	index++
	res.SpareI2, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SpareI2: %w", err)
	}

	return nil
}

// itemToTokenLockedBalance converts stack item into *TokenLockedBalance.
func itemToTokenLockedBalance(item stackitem.Item, err error) (*TokenLockedBalance, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenLockedBalance)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenLockedBalance from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenLockedBalance) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	res.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	res.RefundDue, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RefundDue: %w", err)
	}

	return nil
}

// itemToTokenUtilityInvoice converts stack item into *TokenUtilityInvoice.
func itemToTokenUtilityInvoice(item stackitem.Item, err error) (*TokenUtilityInvoice, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenUtilityInvoice)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenUtilityInvoice from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenUtilityInvoice) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 11 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	res.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	res.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	res.Total, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Total: %w", err)
	}

	index++
	res.Paid, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Paid: %w", err)
	}

	index++
	res.PaymentDue, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PaymentDue: %w", err)
	}

	index++
	res.PaymentDate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PaymentDate: %w", err)
	}

	index++
	res.PaymentID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PaymentID: %w", err)
	}

	index++
	res.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	return nil
}

// itemToTokenCustomerInvoice converts stack item into *TokenCustomerInvoice.
func itemToTokenCustomerInvoice(item stackitem.Item, err error) (*TokenCustomerInvoice, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenCustomerInvoice)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenCustomerInvoice from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenCustomerInvoice) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.CreatedDate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedDate: %w", err)
	}

	index++
	res.Sender, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Sender: %w", err)
	}

	return nil
}

// TransferEventsFromApplicationLog retrieves a set of all emitted events
// with "Transfer" name from the provided [result.ApplicationLog].
func TransferEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Transfer" {
				continue
			}
			event := new(TransferEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferEvent or
// returns an error if it's not possible to do to so.
func (e *TransferEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	return nil
}

// MintEventsFromApplicationLog retrieves a set of all emitted events
// with "Mint" name from the provided [result.ApplicationLog].
func MintEventsFromApplicationLog(log *result.ApplicationLog) ([]*MintEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MintEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Mint" {
				continue
			}
			event := new(MintEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MintEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MintEvent or
// returns an error if it's not possible to do to so.
func (e *MintEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	return nil
}

// BurnEventsFromApplicationLog retrieves a set of all emitted events
// with "Burn" name from the provided [result.ApplicationLog].
func BurnEventsFromApplicationLog(log *result.ApplicationLog) ([]*BurnEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BurnEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Burn" {
				continue
			}
			event := new(BurnEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BurnEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BurnEvent or
// returns an error if it's not possible to do to so.
func (e *BurnEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	return nil
}

// StakeEventsFromApplicationLog retrieves a set of all emitted events
// with "Stake" name from the provided [result.ApplicationLog].
func StakeEventsFromApplicationLog(log *result.ApplicationLog) ([]*StakeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StakeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Stake" {
				continue
			}
			event := new(StakeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StakeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StakeEvent or
// returns an error if it's not possible to do to so.
func (e *StakeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Symbol, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	return nil
}

// UnstakeEventsFromApplicationLog retrieves a set of all emitted events
// with "Unstake" name from the provided [result.ApplicationLog].
func UnstakeEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnstakeEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UnstakeEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Unstake" {
				continue
			}
			event := new(UnstakeEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UnstakeEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UnstakeEvent or
// returns an error if it's not possible to do to so.
func (e *UnstakeEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.RefundDue, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RefundDue: %w", err)
	}

	return nil
}

// RefundEventsFromApplicationLog retrieves a set of all emitted events
// with "Refund" name from the provided [result.ApplicationLog].
func RefundEventsFromApplicationLog(log *result.ApplicationLog) ([]*RefundEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RefundEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Refund" {
				continue
			}
			event := new(RefundEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RefundEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RefundEvent or
// returns an error if it's not possible to do to so.
func (e *RefundEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// SendInvoiceEventsFromApplicationLog retrieves a set of all emitted events
// with "SendInvoice" name from the provided [result.ApplicationLog].
func SendInvoiceEventsFromApplicationLog(log *result.ApplicationLog) ([]*SendInvoiceEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SendInvoiceEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SendInvoice" {
				continue
			}
			event := new(SendInvoiceEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SendInvoiceEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SendInvoiceEvent or
// returns an error if it's not possible to do to so.
func (e *SendInvoiceEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Recipient, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	index++
	e.InvoiceID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field InvoiceID: %w", err)
	}

	index++
	e.CreatedBy, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field CreatedBy: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.PaymentDue, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PaymentDue: %w", err)
	}

	index++
	e.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	e.Message, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Message: %w", err)
	}

	return nil
}

// PayInvoiceEventsFromApplicationLog retrieves a set of all emitted events
// with "PayInvoice" name from the provided [result.ApplicationLog].
func PayInvoiceEventsFromApplicationLog(log *result.ApplicationLog) ([]*PayInvoiceEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PayInvoiceEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PayInvoice" {
				continue
			}
			event := new(PayInvoiceEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PayInvoiceEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PayInvoiceEvent or
// returns an error if it's not possible to do to so.
func (e *PayInvoiceEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Recipient, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	index++
	e.InvoiceID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field InvoiceID: %w", err)
	}

	index++
	e.CreatedBy, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field CreatedBy: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.PaymentDue, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PaymentDue: %w", err)
	}

	index++
	e.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	e.Message, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Message: %w", err)
	}

	return nil
}

// RejectInvoiceEventsFromApplicationLog retrieves a set of all emitted events
// with "RejectInvoice" name from the provided [result.ApplicationLog].
func RejectInvoiceEventsFromApplicationLog(log *result.ApplicationLog) ([]*RejectInvoiceEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RejectInvoiceEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RejectInvoice" {
				continue
			}
			event := new(RejectInvoiceEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RejectInvoiceEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RejectInvoiceEvent or
// returns an error if it's not possible to do to so.
func (e *RejectInvoiceEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Recipient, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	index++
	e.InvoiceID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field InvoiceID: %w", err)
	}

	index++
	e.CreatedBy, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field CreatedBy: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.PaymentDue, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PaymentDue: %w", err)
	}

	index++
	e.Description, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	e.Message, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Message: %w", err)
	}

	return nil
}
