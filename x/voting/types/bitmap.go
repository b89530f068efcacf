package types

import (
	"math/bits"
)

// VoterBitmap records one bit per collection member ordinal. Ordinal i lives in byte i/8 at
// bit i%8 counted from the most significant bit.
type VoterBitmap []byte

// BitmapLen is the byte length of a bitmap covering members ordinals.
func BitmapLen(members uint64) uint64 {
	return (members + 7) / 8
}

func NewVoterBitmap(members uint64) VoterBitmap {
	return make(VoterBitmap, BitmapLen(members))
}

// Len is the number of ordinals the bitmap can hold.
func (b VoterBitmap) Len() uint64 {
	return uint64(len(b)) * 8
}

func (b VoterBitmap) locate(ordinal uint64) (uint64, byte, error) {
	if ordinal >= b.Len() {
		return 0, 0, ErrOrdinalOutOfRange.Wrapf("ordinal %d, capacity %d", ordinal, b.Len())
	}
	return ordinal / 8, byte(0x80) >> (ordinal % 8), nil
}

// Test reports whether ordinal has voted.
func (b VoterBitmap) Test(ordinal uint64) (bool, error) {
	i, mask, err := b.locate(ordinal)
	if err != nil {
		return false, err
	}
	return b[i]&mask != 0, nil
}

// Set marks ordinal as voted. A bit is set at most once: setting it again is ErrAlreadyVoted.
func (b VoterBitmap) Set(ordinal uint64) error {
	i, mask, err := b.locate(ordinal)
	if err != nil {
		return err
	}
	if b[i]&mask != 0 {
		return ErrAlreadyVoted.Wrapf("member #%d", ordinal+1)
	}
	b[i] |= mask
	return nil
}

// Count returns how many ordinals have voted.
func (b VoterBitmap) Count() uint64 {
	var n int
	for _, v := range b {
		n += bits.OnesCount8(v)
	}
	return uint64(n)
}
