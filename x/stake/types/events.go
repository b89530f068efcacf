package types

// Event types
const (
	EventTypeStake           = "stake"
	EventTypeWithdrawRewards = "withdraw_rewards"
	EventTypeUnstake         = "unstake"
)

// Event attribute keys
const (
	AttributeKeyAsset      = "asset"
	AttributeKeyOwner      = "owner"
	AttributeKeyCollection = "collection"
	AttributeKeyReward     = "reward"
	AttributeKeyStakedAt   = "staked_at"
)
