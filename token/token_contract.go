package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/openbrmio/brmtoken/common"
)

type (
	// TokenStats holds the supply record of a single token. One record
	// exists per symbol code, created by Create and never deleted.
	TokenStats struct {
		Symbol    string
		Decimals  int
		Supply    int
		MaxSupply int
		Issuer    interop.Hash160
	}

	// Account is a balance row of one holder in one token. A row may
	// exist with a zero balance until the holder closes it.
	Account struct {
		Balance int
	}

	// StakeRecord is the staking record of one account. At most one record
	// per account exists since only the weekly period is assigned.
	StakeRecord struct {
		Account   interop.Hash160
		Period    int
		Symbol    string
		Staked    int
		Escrow    int
		StakeDate int
		StakeDue  int
	}

	// StakingConfig is the singleton aggregate updated in lockstep with
	// every Stake record mutation. Payout-related fields are reserved
	// for future accounting and are not touched by the current actions.
	StakingConfig struct {
		Running                bool
		ActiveAccounts         int
		StakedWeekly           int
		StakedMonthly          int
		StakedQuarterly        int
		TotalStaked            int
		TotalEscrowedMonthly   int
		TotalEscrowedQuarterly int
		TotalShares            int
		BasePayout             int
		Bonus                  int
		TotalPayout            int
		InterestShare          int
		UnclaimedTokens        int
		SpareA1                int
		SpareA2                int
		SpareI1                int
		SpareI2                int
	}

	// LockedBalance holds funds routed out of staking, redeemable via
	// Refund once RefundDue has elapsed.
	LockedBalance struct {
		Account   interop.Hash160
		Symbol    string
		Amount    int
		RefundDue int
	}

	// UtilityInvoice is the full invoice record kept in the sender's
	// storage partition.
	UtilityInvoice struct {
		ID          int
		Status      int
		From        interop.Hash160
		To          interop.Hash160
		Symbol      string
		Total       int
		Paid        int
		PaymentDue  int
		PaymentDate int
		PaymentID   string
		Description string
	}

	// CustomerInvoice is the thin mirror kept in the recipient's
	// partition. It lets the payer discover which sender partition
	// holds the full record.
	CustomerInvoice struct {
		ID          int
		CreatedDate int
		Sender      interop.Hash160
	}
)

const (
	// ErrInvalidSymbol is thrown when a symbol code is not 1-7 uppercase letters.
	ErrInvalidSymbol = "invalid symbol name"
	// ErrInvalidDecimals is thrown when token precision is out of range.
	ErrInvalidDecimals = "invalid decimals"
	// ErrInvalidAccount is thrown when an account argument is not a valid script hash.
	ErrInvalidAccount = "invalid account"
	// ErrNonPositiveAmount is thrown when a quantity argument is zero or negative.
	ErrNonPositiveAmount = "amount must be positive"
	// ErrNonPositiveMaxSupply is thrown by Create on a zero or negative maximum supply.
	ErrNonPositiveMaxSupply = "max-supply must be positive"
	// ErrTokenExists is thrown by Create when the symbol is already registered.
	ErrTokenExists = "token with symbol already exists"
	// ErrTokenNotExist is thrown when no stats record exists for a symbol.
	ErrTokenNotExist = "token with symbol does not exist"
	// ErrMemoTooLong is thrown when a memo exceeds 256 bytes.
	ErrMemoTooLong = "memo has more than 256 bytes"
	// ErrSymbolMismatch is thrown when a symbol argument does not match the record it applies to.
	ErrSymbolMismatch = "symbol precision mismatch"
	// ErrExceedsSupply is thrown by Issue when the quantity does not fit under the maximum supply.
	ErrExceedsSupply = "quantity exceeds available supply"
	// ErrNegativeSupply is thrown by Retire when the quantity exceeds the current supply.
	ErrNegativeSupply = "negative supply after retire"
	// ErrSelfTransfer is thrown by Transfer when sender and recipient coincide.
	ErrSelfTransfer = "cannot transfer to self"
	// ErrNoBalance is thrown by the debit primitive when no balance row exists.
	ErrNoBalance = "no balance object found"
	// ErrOverdrawn is thrown by the debit primitive on insufficient balance.
	ErrOverdrawn = "overdrawn balance"
	// ErrBalanceRowMissing is thrown by Close when there is nothing to close.
	ErrBalanceRowMissing = "balance row already deleted or never existed"
	// ErrBalanceNotZero is thrown by Close on a non-zero balance.
	ErrBalanceNotZero = "cannot close because the balance is not zero"
	// ErrNoStake is thrown when an account has no staking record.
	ErrNoStake = "no stake for the account, stake first"
	// ErrUnstakeTooMuch is thrown by Unstake when the quantity exceeds the staked amount.
	ErrUnstakeTooMuch = "cannot unstake more than staked"
	// ErrNothingToRefund is thrown when an account has no locked balance.
	ErrNothingToRefund = "nothing to refund"
	// ErrLockNotMatured is thrown by Refund before the lock delay has elapsed.
	ErrLockNotMatured = "lock period is not over yet"
	// ErrInvalidPaymentDue is thrown by SendInvoice on a rejected due date.
	ErrInvalidPaymentDue = "invalid payment due"
	// ErrInvoiceIDCollision is thrown by SendInvoice when the derived id is already taken.
	ErrInvoiceIDCollision = "invoice id collision"
	// ErrNoSuchInvoice is thrown when the payer has no mirror record for the id.
	ErrNoSuchInvoice = "account has no such invoice"
	// ErrInvoiceNotFound is thrown when the sender partition has no invoice for the id.
	ErrInvoiceNotFound = "invoice not found"
	// ErrExactPaymentOnly is thrown by PayInvoice unless the amount equals the invoice total.
	ErrExactPaymentOnly = "partial or over payments are not allowed"
	// ErrInvoiceNotOpen is thrown when the invoice has already been settled.
	ErrInvoiceNotOpen = "invoice is already paid or rejected"
)

const (
	statusOpen     = 1
	statusPartPaid = 2
	statusPaid     = 3
	statusRejected = 4
	statusWriteOff = 5

	periodWeekly    = 1
	periodMonthly   = 2
	periodQuarterly = 3

	weekWait    = 60 * 60 * 24 * 7
	monthWait   = weekWait * 4
	quarterWait = monthWait * 3

	defaultRefundDelay = 60 * 60 * 24 * 10

	maxMemoLen   = 256
	maxSymbolLen = 7
	maxDecimals  = 18

	statsPrefix           = 't'
	balancePrefix         = 'b'
	stakePrefix           = 's'
	lockPrefix            = 'l'
	utilityInvoicePrefix  = 'u'
	customerInvoicePrefix = 'm'

	ownerKey       = "contractOwner"
	refundDelayKey = "refundDelay"
	configKey      = "stakingConfig"
)

// nolint:deadcode,unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]interface{})
	owner := args[0].(interop.Hash160)
	if len(owner) != interop.Hash160Len {
		panic("incorrect length of contract owner script hash")
	}

	delay := defaultRefundDelay
	if len(args) > 1 {
		d := args[1].(int)
		if d >= 0 {
			delay = d
		}
	}

	storage.Put(ctx, ownerKey, owner)
	storage.Put(ctx, refundDelayKey, delay)
	common.SetSerialized(ctx, configKey, StakingConfig{Running: true})

	runtime.Log("brm token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data interface{}) {
	ctx := storage.GetContext()
	common.CheckContractOwnerWitness(contractOwner(ctx))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("brm token contract updated")
}

// Create registers a new token with zero supply. It can be invoked only by
// the contract owner. The issuer account gains the right to issue and retire
// the token up to the given maximum supply.
func Create(issuer interop.Hash160, symbol string, decimals int, maxSupply int) {
	ctx := storage.GetContext()
	common.CheckContractOwnerWitness(contractOwner(ctx))

	if len(issuer) != interop.Hash160Len {
		panic(ErrInvalidAccount)
	}
	if !validSymbol(symbol) {
		panic(ErrInvalidSymbol)
	}
	if decimals < 0 || decimals > maxDecimals {
		panic(ErrInvalidDecimals)
	}
	if maxSupply <= 0 {
		panic(ErrNonPositiveMaxSupply)
	}

	key := statsKey(symbol)
	if storage.Get(ctx, key) != nil {
		panic(ErrTokenExists)
	}

	common.SetSerialized(ctx, key, TokenStats{
		Symbol:    symbol,
		Decimals:  decimals,
		Supply:    0,
		MaxSupply: maxSupply,
		Issuer:    issuer,
	})
	runtime.Log("token created")
}

// Issue mints the given quantity into the issuer's balance and, if the
// recipient differs from the issuer, follows up with a transfer to the
// recipient carrying the same memo. It can be invoked only by the issuer.
func Issue(to interop.Hash160, symbol string, amount int, memo string) {
	ctx := storage.GetContext()
	st := getTokenStats(ctx, symbol)
	common.CheckIssuerWitness(st.Issuer)

	if len(to) != interop.Hash160Len {
		panic(ErrInvalidAccount)
	}
	if len(memo) > maxMemoLen {
		panic(ErrMemoTooLong)
	}
	if amount <= 0 {
		panic(ErrNonPositiveAmount)
	}
	if amount > st.MaxSupply-st.Supply {
		panic(ErrExceedsSupply)
	}

	st.Supply += amount
	common.SetSerialized(ctx, statsKey(symbol), st)
	addBalance(ctx, st.Issuer, symbol, amount)
	runtime.Notify("Mint", st.Issuer, amount, symbol)

	if !st.Issuer.Equals(to) {
		transferTokens(ctx, st.Issuer, to, symbol, amount, memo)
	}
}

// Retire burns the given quantity from the issuer's balance and decreases
// the supply. It can be invoked only by the issuer.
func Retire(symbol string, amount int, memo string) {
	ctx := storage.GetContext()
	st := getTokenStats(ctx, symbol)
	common.CheckIssuerWitness(st.Issuer)

	if len(memo) > maxMemoLen {
		panic(ErrMemoTooLong)
	}
	if amount <= 0 {
		panic(ErrNonPositiveAmount)
	}
	if st.Supply < amount {
		panic(ErrNegativeSupply)
	}

	st.Supply -= amount
	common.SetSerialized(ctx, statsKey(symbol), st)
	subBalance(ctx, st.Issuer, symbol, amount)
	runtime.Notify("Burn", st.Issuer, amount, symbol)
}

// Transfer moves tokens between two accounts. It can be invoked only by the
// sending account. Produces a Transfer notification observable by both
// parties.
func Transfer(from, to interop.Hash160, symbol string, amount int, memo string) {
	ctx := storage.GetContext()
	transferTokens(ctx, from, to, symbol, amount, memo)
}

// Open creates a zero balance row for the owner if one does not exist yet.
// It can be invoked only by the owner and has no effect on an existing row.
func Open(owner interop.Hash160, symbol string) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(owner)

	getTokenStats(ctx, symbol)

	key := balanceKey(owner, symbol)
	if storage.Get(ctx, key) == nil {
		common.SetSerialized(ctx, key, Account{Balance: 0})
	}
}

// Close deletes the owner's balance row. It can be invoked only by the owner
// and only when the balance is exactly zero.
func Close(owner interop.Hash160, symbol string) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(owner)

	key := balanceKey(owner, symbol)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(ErrBalanceRowMissing)
	}

	acc := std.Deserialize(data.([]byte)).(Account)
	if acc.Balance != 0 {
		panic(ErrBalanceNotZero)
	}

	storage.Delete(ctx, key)
}

// Stake moves tokens from the account's balance into its staking record.
// The staking period is assigned by policy (weekly). Re-staking accumulates
// the staked amount and resets the maturity timestamps. It can be invoked
// only by the staking account.
func Stake(account interop.Hash160, symbol string, amount int) {
	ctx := storage.GetContext()

	if len(account) != interop.Hash160Len {
		panic(ErrInvalidAccount)
	}
	common.CheckOwnerWitness(account)

	getTokenStats(ctx, symbol)
	if amount <= 0 {
		panic(ErrNonPositiveAmount)
	}

	period := periodWeekly

	subBalance(ctx, account, symbol, amount)

	now := nowSeconds()
	key := stakeKey(account)
	data := storage.Get(ctx, key)

	var s StakeRecord
	if data == nil {
		s = StakeRecord{
			Account: account,
			Period:  period,
			Symbol:  symbol,
			Staked:  amount,
			Escrow:  0,
		}
	} else {
		s = std.Deserialize(data.([]byte)).(StakeRecord)
		if s.Symbol != symbol {
			panic(ErrSymbolMismatch)
		}
		s.Period = period
		s.Staked += amount
	}
	// Both timestamps hold the maturity point, the record does not keep
	// the time of staking itself.
	s.StakeDate = now + weekWait
	s.StakeDue = now + weekWait
	common.SetSerialized(ctx, key, s)

	cfg := getConfig(ctx)
	cfg.ActiveAccounts += 1
	cfg.TotalStaked += amount
	switch period {
	case periodWeekly:
		cfg.StakedWeekly += amount
	case periodMonthly:
		cfg.StakedMonthly += amount
	case periodQuarterly:
		cfg.StakedQuarterly += amount
	}
	common.SetSerialized(ctx, configKey, cfg)

	runtime.Notify("Stake", account, amount, symbol)
}

// Unstake withdraws the given quantity from the account's staking record
// into its locked balance. The funds become redeemable through Refund once
// the lock delay elapses; they are never credited to the ledger directly.
// A full withdrawal erases the staking record. It can be invoked only by
// the record's owner.
func Unstake(account interop.Hash160, symbol string, amount int) {
	ctx := storage.GetContext()

	key := stakeKey(account)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(ErrNoStake)
	}
	s := std.Deserialize(data.([]byte)).(StakeRecord)
	common.CheckOwnerWitness(s.Account)

	if s.Symbol != symbol {
		panic(ErrSymbolMismatch)
	}
	if amount <= 0 {
		panic(ErrNonPositiveAmount)
	}
	if amount > s.Staked {
		panic(ErrUnstakeTooMuch)
	}

	full := amount == s.Staked

	cfg := getConfig(ctx)
	if full {
		cfg.ActiveAccounts -= 1
	}
	cfg.TotalStaked -= amount
	switch s.Period {
	case periodWeekly:
		cfg.StakedWeekly -= amount
	case periodMonthly:
		cfg.StakedMonthly -= amount
		cfg.TotalEscrowedMonthly -= s.Escrow
	case periodQuarterly:
		cfg.StakedQuarterly -= amount
		cfg.TotalEscrowedQuarterly -= s.Escrow
	}
	common.SetSerialized(ctx, configKey, cfg)

	now := nowSeconds()
	lKey := lockKey(account)
	lData := storage.Get(ctx, lKey)

	var l LockedBalance
	if lData == nil {
		l = LockedBalance{
			Account: account,
			Symbol:  symbol,
			Amount:  amount,
		}
	} else {
		l = std.Deserialize(lData.([]byte)).(LockedBalance)
		l.Amount += amount
	}
	l.RefundDue = now + refundDelay(ctx)
	common.SetSerialized(ctx, lKey, l)

	if full {
		storage.Delete(ctx, key)
	} else {
		s.Staked -= amount
		common.SetSerialized(ctx, key, s)
	}

	runtime.Notify("Unstake", account, amount, l.RefundDue)
}

// Refund moves the whole locked balance of the owner back to its ledger
// balance and erases the lock row. It can be invoked only by the owner and
// only after the lock delay has elapsed.
func Refund(owner interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(owner)

	key := lockKey(owner)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(ErrNothingToRefund)
	}

	l := std.Deserialize(data.([]byte)).(LockedBalance)
	if nowSeconds() < l.RefundDue {
		panic(ErrLockNotMatured)
	}

	storage.Delete(ctx, key)
	addBalance(ctx, owner, l.Symbol, l.Amount)

	runtime.Notify("Refund", owner, l.Amount)
}

// SendInvoice creates an invoice from the sender to the recipient. The full
// record lands in the sender's partition, a thin mirror in the recipient's.
// The invoice id is derived from the hash of the carrier transaction.
// Returns the derived id. It can be invoked only by the sender.
func SendInvoice(from, to interop.Hash160, symbol string, amount int, paymentDue int, descr string) int {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(from)

	if len(to) != interop.Hash160Len {
		panic(ErrInvalidAccount)
	}
	getTokenStats(ctx, symbol)
	if amount <= 0 {
		panic(ErrNonPositiveAmount)
	}
	if paymentDue > nowSeconds() {
		panic(ErrInvalidPaymentDue)
	}

	id := txDerivedID(4)
	uKey := utilityInvoiceKey(from, id)
	if storage.Get(ctx, uKey) != nil {
		panic(ErrInvoiceIDCollision)
	}

	inv := UtilityInvoice{
		ID:          id,
		Status:      statusOpen,
		From:        from,
		To:          to,
		Symbol:      symbol,
		Total:       amount,
		Paid:        0,
		PaymentDue:  paymentDue,
		Description: descr,
	}
	common.SetSerialized(ctx, uKey, inv)
	common.SetSerialized(ctx, customerInvoiceKey(to, id), CustomerInvoice{
		ID:          id,
		CreatedDate: nowSeconds(),
		Sender:      from,
	})

	runtime.Notify("SendInvoice", to, id, from, amount, paymentDue, descr,
		"new invoice has been sent")

	return id
}

// PayInvoice settles an open invoice by transferring exactly its total from
// the payer to the sender. The payer's mirror record resolves the sender
// partition. The payment id is derived from the hash of the carrier
// transaction and recorded in decimal string form. It can be invoked only
// by the payer.
func PayInvoice(payer interop.Hash160, invoiceID int, symbol string, amount int) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(payer)

	mKey := customerInvoiceKey(payer, invoiceID)
	mData := storage.Get(ctx, mKey)
	if mData == nil {
		panic(ErrNoSuchInvoice)
	}
	cinv := std.Deserialize(mData.([]byte)).(CustomerInvoice)

	uKey := utilityInvoiceKey(cinv.Sender, invoiceID)
	uData := storage.Get(ctx, uKey)
	if uData == nil {
		panic(ErrInvoiceNotFound)
	}
	inv := std.Deserialize(uData.([]byte)).(UtilityInvoice)

	getTokenStats(ctx, symbol)
	if amount <= 0 {
		panic(ErrNonPositiveAmount)
	}
	if inv.Symbol != symbol {
		panic(ErrSymbolMismatch)
	}
	if inv.Total != amount {
		panic(ErrExactPaymentOnly)
	}
	if inv.Status != statusOpen {
		panic(ErrInvoiceNotOpen)
	}

	transferTokens(ctx, payer, inv.From, symbol, amount, "Paid")

	inv.Status = statusPaid
	inv.PaymentDate = nowSeconds()
	inv.Paid = amount
	inv.PaymentID = std.Itoa(txDerivedID(8), 10)
	common.SetSerialized(ctx, uKey, inv)

	storage.Delete(ctx, mKey)

	runtime.Notify("PayInvoice", inv.From, invoiceID, inv.From, inv.Total,
		inv.PaymentDue, inv.Description, "invoice has been paid")
}

// RejectInvoice marks an open invoice as rejected and records the reason in
// its description. It can be invoked only by the invoice recipient.
func RejectInvoice(payer interop.Hash160, invoiceID int, reason string) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(payer)

	mKey := customerInvoiceKey(payer, invoiceID)
	mData := storage.Get(ctx, mKey)
	if mData == nil {
		panic(ErrNoSuchInvoice)
	}
	cinv := std.Deserialize(mData.([]byte)).(CustomerInvoice)

	uKey := utilityInvoiceKey(cinv.Sender, invoiceID)
	uData := storage.Get(ctx, uKey)
	if uData == nil {
		panic(ErrInvoiceNotFound)
	}
	inv := std.Deserialize(uData.([]byte)).(UtilityInvoice)

	if inv.Status != statusOpen {
		panic(ErrInvoiceNotOpen)
	}

	inv.Status = statusRejected
	inv.Description = inv.Description + "|reject:" + reason
	common.SetSerialized(ctx, uKey, inv)

	storage.Delete(ctx, mKey)

	runtime.Notify("RejectInvoice", inv.From, invoiceID, inv.From, inv.Total,
		inv.PaymentDue, inv.Description, "invoice has been rejected")
}

// TokenInfo returns the stats record of the given symbol.
func TokenInfo(symbol string) TokenStats {
	ctx := storage.GetReadOnlyContext()
	return getTokenStats(ctx, symbol)
}

// SupplyOf returns the current supply of the given symbol.
func SupplyOf(symbol string) int {
	ctx := storage.GetReadOnlyContext()
	return getTokenStats(ctx, symbol).Supply
}

// BalanceOf returns the balance of the owner in the given symbol. Missing
// balance rows read as zero.
func BalanceOf(owner interop.Hash160, symbol string) int {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, balanceKey(owner, symbol))
	if data == nil {
		return 0
	}
	return std.Deserialize(data.([]byte)).(Account).Balance
}

// StakeOf returns the staking record of the account.
func StakeOf(account interop.Hash160) StakeRecord {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, stakeKey(account))
	if data == nil {
		panic(ErrNoStake)
	}
	return std.Deserialize(data.([]byte)).(StakeRecord)
}

// StakingStats returns the staking aggregate record.
func StakingStats() StakingConfig {
	ctx := storage.GetReadOnlyContext()
	return getConfig(ctx)
}

// LockedBalanceOf returns the locked amount of the account. Missing lock
// rows read as zero.
func LockedBalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, lockKey(account))
	if data == nil {
		return 0
	}
	return std.Deserialize(data.([]byte)).(LockedBalance).Amount
}

// LockOf returns the full locked balance record of the account.
func LockOf(account interop.Hash160) LockedBalance {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, lockKey(account))
	if data == nil {
		panic(ErrNothingToRefund)
	}
	return std.Deserialize(data.([]byte)).(LockedBalance)
}

// InvoiceOf returns the full invoice record from the sender's partition.
func InvoiceOf(sender interop.Hash160, invoiceID int) UtilityInvoice {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, utilityInvoiceKey(sender, invoiceID))
	if data == nil {
		panic(ErrInvoiceNotFound)
	}
	return std.Deserialize(data.([]byte)).(UtilityInvoice)
}

// InvoicesOf iterates over all invoice records in the sender's partition.
func InvoicesOf(sender interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	key := append([]byte{utilityInvoicePrefix}, sender...)
	return storage.Find(ctx, key, storage.ValuesOnly|storage.DeserializeValues)
}

// InboxOf iterates over all customer mirror records in the recipient's
// partition.
func InboxOf(recipient interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	key := append([]byte{customerInvoicePrefix}, recipient...)
	return storage.Find(ctx, key, storage.ValuesOnly|storage.DeserializeValues)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func transferTokens(ctx storage.Context, from, to interop.Hash160, symbol string, amount int, memo string) {
	if from.Equals(to) {
		panic(ErrSelfTransfer)
	}
	common.CheckOwnerWitness(from)
	if len(to) != interop.Hash160Len {
		panic(ErrInvalidAccount)
	}

	getTokenStats(ctx, symbol)
	if amount <= 0 {
		panic(ErrNonPositiveAmount)
	}
	if len(memo) > maxMemoLen {
		panic(ErrMemoTooLong)
	}

	subBalance(ctx, from, symbol, amount)
	addBalance(ctx, to, symbol, amount)

	runtime.Notify("Transfer", from, to, amount, symbol)
}

// subBalance is the debit primitive. The balance row is kept even when it
// reaches zero, it only disappears through Close.
func subBalance(ctx storage.Context, owner interop.Hash160, symbol string, amount int) {
	key := balanceKey(owner, symbol)
	data := storage.Get(ctx, key)
	if data == nil {
		panic(ErrNoBalance)
	}

	acc := std.Deserialize(data.([]byte)).(Account)
	if acc.Balance < amount {
		panic(ErrOverdrawn)
	}

	acc.Balance -= amount
	common.SetSerialized(ctx, key, acc)
}

// addBalance is the credit primitive, creating the balance row on first
// credit.
func addBalance(ctx storage.Context, owner interop.Hash160, symbol string, amount int) {
	key := balanceKey(owner, symbol)
	data := storage.Get(ctx, key)

	var acc Account
	if data != nil {
		acc = std.Deserialize(data.([]byte)).(Account)
	}
	acc.Balance += amount
	common.SetSerialized(ctx, key, acc)
}

func getTokenStats(ctx storage.Context, symbol string) TokenStats {
	data := storage.Get(ctx, statsKey(symbol))
	if data == nil {
		panic(ErrTokenNotExist)
	}
	return std.Deserialize(data.([]byte)).(TokenStats)
}

func getConfig(ctx storage.Context) StakingConfig {
	data := storage.Get(ctx, configKey)
	return std.Deserialize(data.([]byte)).(StakingConfig)
}

func contractOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func refundDelay(ctx storage.Context) int {
	return storage.Get(ctx, refundDelayKey).(int)
}

// txDerivedID takes the first n bytes of the carrier transaction hash as a
// big-endian integer. It is a pseudo-random identifier, not a security
// primitive.
func txDerivedID(n int) int {
	tx := runtime.GetScriptContainer()
	h := tx.Hash

	id := 0
	for i := 0; i < n; i++ {
		id = id*0x100 + int(h[i])
	}
	return id
}

func nowSeconds() int {
	return runtime.GetTime() / 1000
}

func validSymbol(symbol string) bool {
	if len(symbol) == 0 || len(symbol) > maxSymbolLen {
		return false
	}
	for i := 0; i < len(symbol); i++ {
		c := symbol[i]
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func statsKey(symbol string) []byte {
	return append([]byte{statsPrefix}, symbol...)
}

func balanceKey(owner interop.Hash160, symbol string) []byte {
	key := append([]byte{balancePrefix}, owner...)
	return append(key, symbol...)
}

func stakeKey(account interop.Hash160) []byte {
	return append([]byte{stakePrefix}, account...)
}

func lockKey(account interop.Hash160) []byte {
	return append([]byte{lockPrefix}, account...)
}

// invoiceKeySuffix renders the id in fixed-width decimal so that the key
// length, and with it the storage fee of the record, does not depend on the
// id value.
func invoiceKeySuffix(invoiceID int) string {
	s := std.Itoa(invoiceID, 10)
	for len(s) < 10 {
		s = "0" + s
	}
	return s
}

func utilityInvoiceKey(sender interop.Hash160, invoiceID int) []byte {
	key := append([]byte{utilityInvoicePrefix}, sender...)
	return append(key, invoiceKeySuffix(invoiceID)...)
}

func customerInvoiceKey(recipient interop.Hash160, invoiceID int) []byte {
	key := append([]byte{customerInvoicePrefix}, recipient...)
	return append(key, invoiceKeySuffix(invoiceID)...)
}
