// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"fmt"

	"github.com/albatross-go/staking/codec"
	"github.com/albatross-go/staking/thor"
)

// SignerRecoverer recovers the address that authorized a signature proof.
// Signature verification internals are a collaborator concern (out of
// scope); the contract only needs the recovered address, so it depends on
// this narrow interface rather than any concrete crypto package.
type SignerRecoverer interface {
	ComputeSigner(proof []byte) (thor.Address, error)
}

// Transaction is the slice of the account model's transaction type the
// contract actually consumes (spec §6): sender, recipient, value, fee, an
// operation-specific data payload, and a signature proof read only for
// self-transactions.
type Transaction struct {
	Sender    thor.Address
	Recipient thor.Address
	Value     thor.Coin
	Fee       thor.Coin
	Data      []byte
	Proof     []byte
}

// TotalValue returns Value+Fee.
func (tx Transaction) TotalValue() (thor.Coin, error) {
	return tx.Value.Add(tx.Fee)
}

// IsSelf reports whether this is a self-transaction: sender == recipient.
// Self-transactions are internal operations (Retire, Unpark) whose real
// type is carried in Data rather than in sender/recipient.
func (tx Transaction) IsSelf() bool {
	return tx.Sender == tx.Recipient
}

// StakingTransactionType tags the operation encoded in a self-transaction's
// Data field.
type StakingTransactionType byte

const (
	// TypeRetire tags a Retire self-transaction.
	TypeRetire StakingTransactionType = 0x01
	// TypeUnpark tags an Unpark self-transaction.
	TypeUnpark StakingTransactionType = 0x02
)

// ParseSelfTransactionType reads the single-byte tag from a self-
// transaction's Data. Data must be exactly one byte long — any other
// length, or a byte that isn't a known tag, is InvalidForTarget.
func ParseSelfTransactionType(data []byte) (StakingTransactionType, error) {
	if len(data) != 1 {
		return 0, fmt.Errorf("%w: self-transaction data must be 1 byte, got %d", ErrInvalidForTarget, len(data))
	}
	switch ty := StakingTransactionType(data[0]); ty {
	case TypeRetire, TypeUnpark:
		return ty, nil
	default:
		return 0, fmt.Errorf("%w: unknown self-transaction tag 0x%02x", ErrInvalidForTarget, data[0])
	}
}

// StakingTransactionData is the payload of a non-self Stake transaction.
type StakingTransactionData struct {
	ValidatorKey  thor.ValidatorKey
	RewardAddress *thor.Address
}

// Encode serializes the payload per the canonical codec (spec §6).
func (d StakingTransactionData) Encode() []byte {
	w := codec.NewWriter()
	writeValidatorKey(w, d.ValidatorKey)
	writeOptionalAddress(w, d.RewardAddress)
	return w.Bytes()
}

// DecodeStakingTransactionData parses a Stake transaction's Data field.
func DecodeStakingTransactionData(b []byte) (StakingTransactionData, error) {
	r := codec.NewReader(b)
	key, err := readValidatorKey(r)
	if err != nil {
		return StakingTransactionData{}, fmt.Errorf("%w: %v", ErrInvalidForTarget, err)
	}
	reward, err := readOptionalAddress(r)
	if err != nil {
		return StakingTransactionData{}, fmt.Errorf("%w: %v", ErrInvalidForTarget, err)
	}
	return StakingTransactionData{ValidatorKey: key, RewardAddress: reward}, nil
}

// ApplyStake decodes tx's payload and commits a Stake transaction. The
// caller is responsible for having established sender != recipient before
// calling this (that classification belongs to the account model, out of
// scope here).
func (c *Contract) ApplyStake(tx Transaction) (*ActiveStakeReceipt, error) {
	payload, err := DecodeStakingTransactionData(tx.Data)
	if err != nil {
		return nil, err
	}
	return c.CommitStake(StakeInput{
		Staker:        tx.Sender,
		Value:         tx.Value,
		ValidatorKey:  payload.ValidatorKey,
		RewardAddress: payload.RewardAddress,
	})
}

// RevertStakeTx inverts ApplyStake.
func (c *Contract) RevertStakeTx(tx Transaction, receipt *ActiveStakeReceipt) error {
	return c.RevertStake(StakeInput{Staker: tx.Sender, Value: tx.Value}, receipt)
}

// ApplyUnstake commits an Unstake transaction at blockHeight.
func (c *Contract) ApplyUnstake(tx Transaction, blockHeight uint32) (*InactiveStakeReceipt, error) {
	total, err := tx.TotalValue()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForSender, err)
	}
	return c.CommitUnstake(UnstakeInput{Staker: tx.Sender, TotalValue: total, BlockHeight: blockHeight})
}

// RevertUnstakeTx inverts ApplyUnstake.
func (c *Contract) RevertUnstakeTx(tx Transaction, receipt *InactiveStakeReceipt) error {
	total, err := tx.TotalValue()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	return c.RevertUnstake(UnstakeInput{Staker: tx.Sender, TotalValue: total}, receipt)
}

// RetireReceipt bundles the two independent receipts a Retire self-
// transaction may produce, one per side.
type RetireReceipt struct {
	Sender    *ActiveStakeReceipt
	Recipient *InactiveStakeReceipt
}

// ApplyRetire executes both sides of a Retire self-transaction: the staker
// is recovered from tx.Proof (self-transactions are the one case where the
// contract reads a proof on the incoming side, per spec §6; ApplyUnpark and
// both reverts do the same), since for a self-transaction the sender field
// alone doesn't identify who authorized it.
func (c *Contract) ApplyRetire(tx Transaction, signer SignerRecoverer, blockHeight uint32) (*RetireReceipt, error) {
	staker, err := signer.ComputeSigner(tx.Proof)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForSender, err)
	}
	total, err := tx.TotalValue()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForSender, err)
	}

	senderReceipt, err := c.CommitRetireSender(RetireSenderInput{Staker: staker, TotalValue: total})
	if err != nil {
		return nil, err
	}
	recipientReceipt, err := c.CommitRetireRecipient(RetireRecipientInput{Staker: staker, Value: tx.Value, BlockHeight: blockHeight})
	if err != nil {
		// Roll back the sender side that already committed, so a failure
		// partway through this self-transaction leaves no partial state.
		if revertErr := c.RevertRetireSender(RetireSenderInput{Staker: staker, TotalValue: total}, senderReceipt); revertErr != nil {
			return nil, fmt.Errorf("retire recipient failed (%v) and rollback of sender side failed (%v)", err, revertErr)
		}
		return nil, err
	}
	metricRetireCommitted.Add(1)
	c.reportGauges()
	return &RetireReceipt{Sender: senderReceipt, Recipient: recipientReceipt}, nil
}

// RevertRetire inverts ApplyRetire, recipient side first then sender side —
// the reverse of commit order. The signer is recomputed from tx.Proof the
// same way ApplyRetire derived it, rather than asking the caller to have
// remembered the staker address separately.
func (c *Contract) RevertRetire(tx Transaction, signer SignerRecoverer, receipt *RetireReceipt) error {
	if receipt == nil {
		return fmt.Errorf("%w: missing retire receipt", ErrInvalidReceipt)
	}
	staker, err := signer.ComputeSigner(tx.Proof)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	total, err := tx.TotalValue()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	if err := c.RevertRetireRecipient(RetireRecipientInput{Staker: staker, Value: tx.Value}, receipt.Recipient); err != nil {
		return err
	}
	return c.RevertRetireSender(RetireSenderInput{Staker: staker, TotalValue: total}, receipt.Sender)
}

// ApplyUnpark executes both sides of an Unpark self-transaction.
func (c *Contract) ApplyUnpark(tx Transaction, signer SignerRecoverer) (*UnparkReceipt, error) {
	staker, err := signer.ComputeSigner(tx.Proof)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForSender, err)
	}
	total, err := tx.TotalValue()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForSender, err)
	}

	if err := c.CommitUnparkSender(UnparkSenderInput{Staker: staker, TotalValue: total, Fee: tx.Fee}); err != nil {
		return nil, err
	}
	receipt, err := c.CommitUnparkRecipient(UnparkRecipientInput{Staker: staker})
	if err != nil {
		if revertErr := c.RevertUnparkSender(UnparkSenderInput{Staker: staker, TotalValue: total, Fee: tx.Fee}); revertErr != nil {
			return nil, fmt.Errorf("unpark recipient failed (%v) and rollback of sender side failed (%v)", err, revertErr)
		}
		return nil, err
	}
	metricUnparkCommitted.Add(1)
	c.reportGauges()
	return receipt, nil
}

// RevertUnpark inverts ApplyUnpark.
func (c *Contract) RevertUnpark(tx Transaction, signer SignerRecoverer, receipt *UnparkReceipt) error {
	staker, err := signer.ComputeSigner(tx.Proof)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	total, err := tx.TotalValue()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	if err := c.RevertUnparkRecipient(UnparkRecipientInput{Staker: staker}, receipt); err != nil {
		return err
	}
	return c.RevertUnparkSender(UnparkSenderInput{Staker: staker, TotalValue: total, Fee: tx.Fee})
}

// InherentType tags an inherent's kind (spec §6).
type InherentType byte

const (
	InherentSlash         InherentType = iota
	InherentFinalizeEpoch
	InherentReward
)

// Inherent is the slice of the inherent interface the contract consumes.
type Inherent struct {
	Type  InherentType
	Value thor.Coin
	Data  []byte
}

// ApplyInherent dispatches an inherent to Slash or FinalizeEpoch, rejecting
// Reward (not a staking contract concern) and any malformed input.
func (c *Contract) ApplyInherent(in Inherent, blockHeight uint32) (interface{}, error) {
	switch in.Type {
	case InherentSlash:
		if !in.Value.IsZero() {
			return nil, fmt.Errorf("%w: slash inherent must carry zero value", ErrInvalidInherent)
		}
		if len(in.Data) != thor.AddressLength {
			return nil, fmt.Errorf("%w: slash inherent data must be an address", ErrInvalidInherent)
		}
		return c.CommitSlash(SlashInput{Address: thor.BytesToAddress(in.Data)})
	case InherentFinalizeEpoch:
		if !in.Value.IsZero() || len(in.Data) != 0 {
			return nil, fmt.Errorf("%w: finalize_epoch inherent must carry no value or data", ErrInvalidInherent)
		}
		return nil, c.CommitFinalizeEpoch(blockHeight)
	case InherentReward:
		return nil, fmt.Errorf("%w: reward inherent is not accepted by the staking contract", ErrInvalidForTarget)
	default:
		return nil, fmt.Errorf("%w: unknown inherent type", ErrInvalidInherent)
	}
}
