// Package atomic runs a single module operation as one indivisible unit.
package atomic

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Run executes fn against a branch of the multistore. The branch, including every event it
// emitted, is written back only when fn returns nil; any error leaves ctx untouched.
func Run(ctx sdk.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}
