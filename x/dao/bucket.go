package dao

import (
	"encoding/binary"

	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
	"github.com/vortex-hue/multisig-dao-wallet/orm"
)

const (
	walletBucketName   = "wallet"
	proposalBucketName = "proposal"
)

// WalletBucket stores wallet configurations under sequence assigned
// ids.
type WalletBucket struct {
	orm.IDGenBucket
}

// NewWalletBucket initializes a WalletBucket with default name
func NewWalletBucket() WalletBucket {
	b := orm.NewBucket(walletBucketName, orm.NewSimpleObj(nil, new(WalletConfig)))
	return WalletBucket{
		IDGenBucket: orm.WithSeqIDGenerator(b, "id"),
	}
}

// GetWalletConfig loads the wallet with the given id. Missing wallets
// are an ErrNotFound error.
func (b WalletBucket) GetWalletConfig(db msig.ReadOnlyKVStore, id []byte) (*WalletConfig, error) {
	obj, err := b.Get(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "wallet %X", id)
	}
	wallet, ok := obj.Value().(*WalletConfig)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return wallet, nil
}

// SaveWalletConfig persists the wallet under its id.
func (b WalletBucket) SaveWalletConfig(db msig.KVStore, id []byte, wallet *WalletConfig) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(id, wallet))
}

// ProposalBucket stores proposals under a composite key of the wallet
// id and the per-wallet proposal counter.
type ProposalBucket struct {
	orm.Bucket
}

// NewProposalBucket initializes a ProposalBucket with default name
func NewProposalBucket() ProposalBucket {
	b := orm.NewBucket(proposalBucketName, orm.NewSimpleObj(nil, new(Proposal)))
	return ProposalBucket{
		Bucket: b,
	}
}

// ProposalKey builds the composite key for a proposal of a wallet.
func ProposalKey(walletID []byte, proposalID uint64) []byte {
	key := make([]byte, len(walletID)+8)
	copy(key, walletID)
	binary.BigEndian.PutUint64(key[len(walletID):], proposalID)
	return key
}

// GetProposal loads the proposal with the given id of the given
// wallet. Missing proposals are an ErrNotFound error.
func (b ProposalBucket) GetProposal(db msig.ReadOnlyKVStore, walletID []byte, proposalID uint64) (*Proposal, error) {
	obj, err := b.Get(db, ProposalKey(walletID, proposalID))
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "proposal %d of wallet %X", proposalID, walletID)
	}
	proposal, ok := obj.Value().(*Proposal)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return proposal, nil
}

// SaveProposal persists the proposal under its composite key.
func (b ProposalBucket) SaveProposal(db msig.KVStore, walletID []byte, proposalID uint64, proposal *Proposal) error {
	return b.Save(db, orm.NewSimpleObj(ProposalKey(walletID, proposalID), proposal))
}
