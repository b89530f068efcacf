package types

// Event types
const (
	EventTypeCreateCollection = "create_collection"
	EventTypeAddModule        = "add_module"
	EventTypeEditModule       = "edit_module"
	EventTypeAttachReward     = "attach_reward_asset"
)

// Event attribute keys
const (
	AttributeKeyCollection  = "collection"
	AttributeKeyVerifiedKey = "verified_key"
	AttributeKeyOwner       = "owner"
	AttributeKeyTreasury    = "treasury"
	AttributeKeyModule      = "module"
	AttributeKeyField       = "field"
	AttributeKeyValue       = "value"
	AttributeKeyDenom       = "denom"
)
