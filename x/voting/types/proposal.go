package types

import (
	"fmt"
	"strings"
	"unicode/utf8"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/0xShuk/breeez/internal/layout"
)

const (
	MaxTitleLength  = 300
	MaxOptionLength = 25
	MinOptions      = 2
	MaxOptions      = 5

	// OptionSize is one padded option label followed by its vote counter.
	OptionSize = MaxOptionLength + 4

	// ProposalHeaderSize covers id, collection, creator, creation time, status and the
	// lengths of the variable parts.
	ProposalHeaderSize = 8 + 2*layout.AddressSize + 8 + 1 + 2 + 1 + 4
)

// ProposalSize is the encoded width of a proposal with the given title length, option count
// and collection member count.
func ProposalSize(titleLen, options int, members uint64) uint64 {
	return ProposalHeaderSize + uint64(titleLen) + OptionSize*uint64(options) + BitmapLen(members)
}

type ProposalStatus uint8

const (
	// StatusActive means not yet executed; the vote window is a separate, time based check.
	StatusActive ProposalStatus = iota
	StatusPassed
	StatusFailed
)

func (s ProposalStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("ProposalStatus(%d)", uint8(s))
	}
}

type Proposal struct {
	ID         uint64         `json:"id"`
	Collection sdk.AccAddress `json:"collection"`
	Creator    sdk.AccAddress `json:"creator"`
	CreatedAt  int64          `json:"created_at"`
	Status     ProposalStatus `json:"status"`
	Title      string         `json:"title"`
	Options    []string       `json:"options"`
	Votes      []uint32       `json:"votes"`
	Voters     VoterBitmap    `json:"voters"`
}

// NewProposal validates title and options and returns an active proposal with zero votes and
// an empty bitmap sized for members.
func NewProposal(id uint64, collection, creator sdk.AccAddress, createdAt int64, title string, options []string, members uint64) (Proposal, error) {
	if err := ValidateProposalText(title, options); err != nil {
		return Proposal{}, err
	}
	return Proposal{
		ID:         id,
		Collection: collection,
		Creator:    creator,
		CreatedAt:  createdAt,
		Status:     StatusActive,
		Title:      title,
		Options:    append([]string(nil), options...),
		Votes:      make([]uint32, len(options)),
		Voters:     NewVoterBitmap(members),
	}, nil
}

// ValidateProposalText checks the title (1..300 bytes) and 2..5 options of 1..25 bytes each.
func ValidateProposalText(title string, options []string) error {
	if len(options) < MinOptions || len(options) > MaxOptions {
		return ErrIncorrectOptionCount.Wrapf("%d options, expected %d..%d", len(options), MinOptions, MaxOptions)
	}
	if err := validateText("title", title, MaxTitleLength); err != nil {
		return err
	}
	for i, o := range options {
		if err := validateText(fmt.Sprintf("option %d", i), o, MaxOptionLength); err != nil {
			return err
		}
		if strings.ContainsRune(o, 0) {
			return ErrBlankString.Wrapf("option %d contains a NUL byte", i)
		}
	}
	return nil
}

func validateText(field, s string, limit int) error {
	if strings.TrimSpace(s) == "" {
		return ErrBlankString.Wrap(field)
	}
	if len(s) > limit {
		return ErrStringLengthExceeds.Wrapf("%s is %d bytes, limit %d", field, len(s), limit)
	}
	if !utf8.ValidString(s) {
		return ErrBlankString.Wrapf("%s is not valid UTF-8", field)
	}
	return nil
}

func (p Proposal) Active() bool {
	return p.Status == StatusActive
}

// VotingOpen reports whether now is still inside the vote window, boundary included.
func (p Proposal) VotingOpen(now, duration int64) bool {
	return now <= p.CreatedAt || now-p.CreatedAt <= duration
}

func (p Proposal) TotalVotes() uint64 {
	var sum uint64
	for _, v := range p.Votes {
		sum += uint64(v)
	}
	return sum
}

// Decide closes the proposal: passed iff the total reaches quorum.
func (p *Proposal) Decide(quorum uint64) {
	if p.TotalVotes() >= quorum {
		p.Status = StatusPassed
	} else {
		p.Status = StatusFailed
	}
}

// Size is the encoded width of the proposal.
func (p Proposal) Size() uint64 {
	return ProposalHeaderSize + uint64(len(p.Title)) + OptionSize*uint64(len(p.Options)) + uint64(len(p.Voters))
}

func (p Proposal) Validate() error {
	if p.Collection.Empty() || p.Creator.Empty() {
		return fmt.Errorf("proposal %d is missing an address", p.ID)
	}
	if p.CreatedAt < 0 {
		return fmt.Errorf("proposal %d has negative creation time %d", p.ID, p.CreatedAt)
	}
	if err := ValidateProposalText(p.Title, p.Options); err != nil {
		return err
	}
	if len(p.Votes) != len(p.Options) {
		return fmt.Errorf("proposal %d has %d vote counters for %d options", p.ID, len(p.Votes), len(p.Options))
	}
	if p.Status > StatusFailed {
		return fmt.Errorf("proposal %d has unknown status %s", p.ID, p.Status)
	}
	if total, voted := p.TotalVotes(), p.Voters.Count(); total != voted {
		return fmt.Errorf("proposal %d counts %d votes but %d voters", p.ID, total, voted)
	}
	return nil
}

func (p Proposal) MarshalLayout(w *layout.Writer) {
	w.Uint64(p.ID)
	w.Address(p.Collection)
	w.Address(p.Creator)
	w.Int64(p.CreatedAt)
	w.Uint8(uint8(p.Status))
	w.Uint16(uint16(len(p.Title)))
	w.Uint8(uint8(len(p.Options)))
	w.Uint32(uint32(len(p.Voters)))
	w.Raw([]byte(p.Title))
	for i, o := range p.Options {
		w.Padded([]byte(o), MaxOptionLength)
		var votes uint32
		if i < len(p.Votes) {
			votes = p.Votes[i]
		}
		w.Uint32(votes)
	}
	w.Raw(p.Voters)
}

func (p *Proposal) UnmarshalLayout(r *layout.Reader) {
	p.ID = r.Uint64()
	p.Collection = r.Address()
	p.Creator = r.Address()
	p.CreatedAt = r.Int64()
	p.Status = ProposalStatus(r.Uint8())
	titleLen := int(r.Uint16())
	options := int(r.Uint8())
	votersLen := int(r.Uint32())
	if r.Err() != nil || options > MaxOptions || votersLen > r.Remaining() {
		// reading past the end records io.ErrUnexpectedEOF on r
		r.Raw(r.Remaining() + 1)
		return
	}
	p.Title = string(r.Raw(titleLen))
	p.Options = make([]string, options)
	p.Votes = make([]uint32, options)
	for i := range p.Options {
		p.Options[i] = string(r.Padded(MaxOptionLength))
		p.Votes[i] = r.Uint32()
	}
	p.Voters = VoterBitmap(r.Raw(votersLen))
}
