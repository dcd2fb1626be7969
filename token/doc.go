/*
Token contract is a fungible token ledger with time-locked staking and
peer-to-peer invoicing.

Token contract stores per-symbol supply records, per-account balance rows,
staking records with maturity timestamps, a lock queue of unstaked funds
awaiting refund and invoice records partitioned by sender. The contract owner
registers tokens, the designated issuer of a token mints and burns it within
its maximum supply, and any account moves its own funds with its witness.

Unstaked funds never return to the ledger directly. They sit in a locked
balance until the refund delay (ten days by default) elapses and the owner
claims them with Refund.

Invoices are kept twice: the full record in the sender's storage partition
and a thin mirror in the recipient's. Settlement requires the exact invoice
total in a single payment and erases the mirror, while the sender's record
is retained as payment history.

# Contract notifications

Transfer notification. Produced on every ledger movement, including issue
follow-up transfers and invoice settlements.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String

Mint notification. Produced when the issuer increases the supply.

	Mint:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String

Burn notification. Produced when the issuer retires tokens.

	Burn:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String

Stake notification. Produced when an account moves funds into staking.

	Stake:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: symbol
	    type: String

Unstake notification. Produced when staked funds are routed into the lock
queue. Carries the timestamp after which Refund succeeds.

	Unstake:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: refundDue
	    type: Integer

Refund notification. Produced when a matured locked balance returns to the
ledger.

	Refund:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer

SendInvoice, PayInvoice and RejectInvoice notifications. Produced on invoice
creation and settlement, addressed to the counterparty.

	SendInvoice:
	  - name: recipient
	    type: Hash160
	  - name: invoiceID
	    type: Integer
	  - name: createdBy
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: paymentDue
	    type: Integer
	  - name: description
	    type: String
	  - name: message
	    type: String
*/
package token
