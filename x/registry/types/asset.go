package types

import (
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CollectionRef is the parent collection recorded in an asset's metadata.
type CollectionRef struct {
	Key      string
	Verified bool
}

// AssetInfo is what the membership oracle knows about a single asset.
type AssetInfo struct {
	ID              string
	Name            string
	UpdateAuthority sdk.AccAddress
	// Collection is nil for collection-level assets.
	Collection *CollectionRef
	// Ordinal is the zero-based position of the asset inside its collection. See OrdinalFromName.
	Ordinal uint64
}

// IsCollectionAsset reports whether the asset describes a collection rather than a member.
func (a AssetInfo) IsCollectionAsset() bool {
	return a.Collection == nil
}

// CheckMemberOf verifies that the asset is a verified member of the collection with verifiedKey.
func (a AssetInfo) CheckMemberOf(verifiedKey string) error {
	if a.Collection == nil {
		return ErrCollectionNotSet.Wrapf("asset %s", a.ID)
	}
	if !a.Collection.Verified {
		return ErrCollectionNotVerified.Wrapf("asset %s", a.ID)
	}
	if a.Collection.Key != verifiedKey {
		return ErrCollectionNotSame.Wrapf("asset %s belongs to %s, not %s", a.ID, a.Collection.Key, verifiedKey)
	}
	return nil
}

// OrdinalFromName extracts the member number that follows '#' in an asset name ("Breeez #12")
// and returns it zero-based. Numbering in names starts at 1.
//
// MembershipOracle implementations whose metadata only carries a display name use it to fill
// AssetInfo.Ordinal, which the voting engine indexes its voter bitmap with.
func OrdinalFromName(name string) (uint64, error) {
	name = strings.TrimRight(name, "\x00")
	i := strings.IndexByte(name, '#')
	if i < 0 {
		return 0, ErrInvalidOrdinal.Wrapf("name %q", name)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(name[i+1:]), 10, 64)
	if err != nil || n == 0 {
		return 0, ErrInvalidOrdinal.Wrapf("name %q", name)
	}
	return n - 1, nil
}
