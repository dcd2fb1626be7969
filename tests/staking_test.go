package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/openbrmio/brmtoken/common"
	"github.com/openbrmio/brmtoken/token"
	"github.com/stretchr/testify/require"
)

// newStakingInvoker deploys the contract with a zero refund delay so that
// locked balances mature immediately and a funded user account.
func newStakingInvoker(t *testing.T) (*neotest.ContractInvoker, *neotest.ContractInvoker, neotest.Signer) {
	e := newExecutor(t)
	h := deployTokenContract(t, e, []interface{}{e.CommitteeHash, 0})
	c := e.CommitteeInvoker(h)

	createTestToken(t, c)

	acc := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "issue", acc.ScriptHash(), testSymbol, 100_000, "")

	return c, c.WithSigners(acc), acc
}

func stakingStatsField(t *testing.T, c *neotest.ContractInvoker, index int) int64 {
	s, err := c.TestInvoke(t, "stakingStats")
	require.NoError(t, err)

	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 18)

	v, err := arr[index].TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

const (
	statsIndexActiveAccounts = 1
	statsIndexStakedWeekly   = 2
	statsIndexTotalStaked    = 5
)

func TestToken_Stake(t *testing.T) {
	c, cAcc, acc := newStakingInvoker(t)

	cAcc.InvokeFail(t, token.ErrNonPositiveAmount, "stake", acc.ScriptHash(), testSymbol, 0)
	cAcc.InvokeFail(t, token.ErrOverdrawn, "stake", acc.ScriptHash(), testSymbol, 100_001)
	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "stake", acc.ScriptHash(), testSymbol, 100)

	cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), testSymbol, 30_000)
	cAcc.Invoke(t, 70_000, "balanceOf", acc.ScriptHash(), testSymbol)

	s, err := cAcc.TestInvoke(t, "stakeOf", acc.ScriptHash())
	require.NoError(t, err)

	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 7)

	staked, err := arr[3].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 30_000, staked.Int64())

	stakeDate, err := arr[5].TryInteger()
	require.NoError(t, err)
	stakeDue, err := arr[6].TryInteger()
	require.NoError(t, err)
	require.Equal(t, stakeDate, stakeDue)

	require.EqualValues(t, 30_000, stakingStatsField(t, c, statsIndexTotalStaked))
	require.EqualValues(t, 30_000, stakingStatsField(t, c, statsIndexStakedWeekly))
	require.EqualValues(t, 1, stakingStatsField(t, c, statsIndexActiveAccounts))

	// Re-staking accumulates into the same record and bumps the account
	// counter again.
	cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), testSymbol, 10_000)
	require.EqualValues(t, 40_000, stakingStatsField(t, c, statsIndexTotalStaked))
	require.EqualValues(t, 2, stakingStatsField(t, c, statsIndexActiveAccounts))
}

func TestToken_Unstake(t *testing.T) {
	c, cAcc, acc := newStakingInvoker(t)

	cAcc.InvokeFail(t, token.ErrNoStake, "unstake", acc.ScriptHash(), testSymbol, 100)

	cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), testSymbol, 30_000)

	cAcc.InvokeFail(t, token.ErrUnstakeTooMuch, "unstake", acc.ScriptHash(), testSymbol, 30_001)
	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "unstake", acc.ScriptHash(), testSymbol, 100)

	cAcc.Invoke(t, stackitem.Null{}, "unstake", acc.ScriptHash(), testSymbol, 10_000)

	// Unstaked funds go to the lock queue, not back to the ledger.
	cAcc.Invoke(t, 70_000, "balanceOf", acc.ScriptHash(), testSymbol)
	cAcc.Invoke(t, 10_000, "lockedBalanceOf", acc.ScriptHash())

	require.EqualValues(t, 20_000, stakingStatsField(t, c, statsIndexTotalStaked))
	require.EqualValues(t, 20_000, stakingStatsField(t, c, statsIndexStakedWeekly))

	// Full withdrawal erases the stake record and drops the counter, which
	// went up exactly once here (a single stake call).
	cAcc.Invoke(t, stackitem.Null{}, "unstake", acc.ScriptHash(), testSymbol, 20_000)
	cAcc.Invoke(t, 30_000, "lockedBalanceOf", acc.ScriptHash())
	require.EqualValues(t, 0, stakingStatsField(t, c, statsIndexTotalStaked))
	require.EqualValues(t, 0, stakingStatsField(t, c, statsIndexActiveAccounts))

	_, err := cAcc.TestInvoke(t, "stakeOf", acc.ScriptHash())
	require.Error(t, err)
}

func TestToken_Refund(t *testing.T) {
	c, cAcc, acc := newStakingInvoker(t)

	cAcc.InvokeFail(t, token.ErrNothingToRefund, "refund", acc.ScriptHash())

	cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), testSymbol, 30_000)
	cAcc.Invoke(t, stackitem.Null{}, "unstake", acc.ScriptHash(), testSymbol, 30_000)

	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "refund", acc.ScriptHash())

	// Zero refund delay, the lock matures right away.
	cAcc.Invoke(t, stackitem.Null{}, "refund", acc.ScriptHash())
	cAcc.Invoke(t, 100_000, "balanceOf", acc.ScriptHash(), testSymbol)
	cAcc.Invoke(t, 0, "lockedBalanceOf", acc.ScriptHash())

	cAcc.InvokeFail(t, token.ErrNothingToRefund, "refund", acc.ScriptHash())
}

func TestToken_RefundDelay(t *testing.T) {
	// Default ten-day delay.
	e := newExecutor(t)
	h := deployTokenContract(t, e, nil)
	c := e.CommitteeInvoker(h)

	createTestToken(t, c)

	acc := c.NewAccount(t)
	c.Invoke(t, stackitem.Null{}, "issue", acc.ScriptHash(), testSymbol, 100_000, "")

	cAcc := c.WithSigners(acc)
	cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), testSymbol, 30_000)
	cAcc.Invoke(t, stackitem.Null{}, "unstake", acc.ScriptHash(), testSymbol, 10_000)

	cAcc.InvokeFail(t, token.ErrLockNotMatured, "refund", acc.ScriptHash())

	s, err := cAcc.TestInvoke(t, "lockOf", acc.ScriptHash())
	require.NoError(t, err)
	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 4)

	firstDue, err := arr[3].TryInteger()
	require.NoError(t, err)

	// A repeated unstake accumulates the lock and pushes the due date
	// forward.
	cAcc.Invoke(t, stackitem.Null{}, "unstake", acc.ScriptHash(), testSymbol, 10_000)

	s, err = cAcc.TestInvoke(t, "lockOf", acc.ScriptHash())
	require.NoError(t, err)
	arr, ok = s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)

	amount, err := arr[2].TryInteger()
	require.NoError(t, err)
	require.EqualValues(t, 20_000, amount.Int64())

	secondDue, err := arr[3].TryInteger()
	require.NoError(t, err)
	require.True(t, secondDue.Cmp(firstDue) >= 0)

	cAcc.InvokeFail(t, token.ErrLockNotMatured, "refund", acc.ScriptHash())
}
