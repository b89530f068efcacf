package types

// Event types
const (
	EventTypeCreateTrade  = "create_trade"
	EventTypeAcceptTrade  = "accept_trade"
	EventTypeExecuteTrade = "execute_trade"
	EventTypeCancelTrade  = "cancel_trade"
)

// Event attribute keys
const (
	AttributeKeyTrade      = "trade"
	AttributeKeyPartyOne   = "party_one"
	AttributeKeyPartyTwo   = "party_two"
	AttributeKeyCollection = "collection"
	AttributeKeyMode       = "mode"
	AttributeKeyValue      = "value"
	AttributeKeyAsset      = "asset"
	AttributeKeyFee        = "fee"
	AttributeKeyCanceller  = "canceller"
)
