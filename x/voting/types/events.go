package types

// Event types
const (
	EventTypeCreateProposal  = "create_proposal"
	EventTypeVote            = "vote"
	EventTypeExecuteProposal = "execute_proposal"
)

// Event attribute keys
const (
	AttributeKeyProposalID = "proposal_id"
	AttributeKeyCollection = "collection"
	AttributeKeyCreator    = "creator"
	AttributeKeyVoter      = "voter"
	AttributeKeyChoice     = "choice"
	AttributeKeyVotes      = "votes"
	AttributeKeyStatus     = "status"
	AttributeKeyTotal      = "total_votes"
)
