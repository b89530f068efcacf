package keeper

// Mocks for simple Keepers, just store in memory as if in the KV Store
import (
	"context"
	"fmt"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"

	registrytypes "github.com/0xShuk/breeez/x/registry/types"
)

// InMemoryOracle is an in-memory implementation of the membership oracle.
type InMemoryOracle struct {
	assets map[string]registrytypes.AssetInfo
	mu     sync.RWMutex
}

// NewInMemoryOracle creates a new instance of InMemoryOracle.
func NewInMemoryOracle() *InMemoryOracle {
	return &InMemoryOracle{
		assets: make(map[string]registrytypes.AssetInfo),
	}
}

// SetAsset stores or updates the metadata of an asset.
func (o *InMemoryOracle) SetAsset(info registrytypes.AssetInfo) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.assets[info.ID] = info
}

func (o *InMemoryOracle) GetAsset(_ context.Context, assetID string) (registrytypes.AssetInfo, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	info, found := o.assets[assetID]
	return info, found
}

// AddCollectionAsset registers a collection-level asset controlled by authority.
func (o *InMemoryOracle) AddCollectionAsset(verifiedKey string, authority sdk.AccAddress) {
	o.SetAsset(registrytypes.AssetInfo{
		ID:              verifiedKey,
		Name:            verifiedKey,
		UpdateAuthority: authority,
	})
}

// AddMember registers a verified member named "<collection> #<number>", numbering from 1,
// and returns its asset id.
func (o *InMemoryOracle) AddMember(verifiedKey string, number uint64) string {
	id := fmt.Sprintf("%s-%d", verifiedKey, number)
	name := fmt.Sprintf("%s #%d", verifiedKey, number)
	ordinal, err := registrytypes.OrdinalFromName(name)
	if err != nil {
		panic(err)
	}
	o.SetAsset(registrytypes.AssetInfo{
		ID:         id,
		Name:       name,
		Collection: &registrytypes.CollectionRef{Key: verifiedKey, Verified: true},
		Ordinal:    ordinal,
	})
	return id
}
