package huffman

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

const bitsPerWord = 64

// Code represents a sequence of bits of arbitrary length.  It is used both
// for the codeword of a single symbol and for a whole encoded message.
//
// The zero value is the empty sequence.  Copies of a Code may share
// storage.  Appending writes in place only past the end of every copy, and
// otherwise moves onto storage of its own, so appending never changes the
// bits seen by another copy.
//
type Code struct {
	// size holds the number of valid bits.
	size int

	// words holds the actual values of the bits.  Bit i lives at
	// position i%64 of words[i/64], least significant bit first.  Bits
	// at or beyond size are not significant and may have been set by
	// another Code sharing the same array.
	words []uint64

	// tip is shared by every Code using words, and holds the number of
	// bits written to words so far.  Only a Code whose size equals *tip
	// may append in place.
	tip *int
}

// ParseCode constructs a Code from a string of '0' and '1' characters, first
// bit first.
func ParseCode(str string) (Code, error) {
	var hc Code
	for index := 0; index < len(str); index++ {
		switch str[index] {
		case '0':
			hc.Append(false)
		case '1':
			hc.Append(true)
		default:
			return Code{}, fmt.Errorf("invalid character %q at offset %d in bit string %q", str[index], index, str)
		}
	}
	return hc, nil
}

// MustParseCode is like ParseCode, but panics on error.
func MustParseCode(str string) Code {
	hc, err := ParseCode(str)
	if err != nil {
		panic(err)
	}
	return hc
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return hc.size
}

// Bit returns the bit at the given index, true for 1 and false for 0.
func (hc Code) Bit(index int) bool {
	assert.Assertf(index >= 0 && index < hc.size, "bit index %d out of range [0, %d)", index, hc.size)
	return (hc.words[index/bitsPerWord]>>uint(index%bitsPerWord))&1 != 0
}

// Append appends one bit to this Code.
func (hc *Code) Append(bit bool) {
	if hc.tip == nil || *hc.tip != hc.size {
		hc.words = copyWords(hc.words, len(hc.words)+1)
		hc.tip = new(int)
	}

	index, offset := hc.size/bitsPerWord, uint(hc.size%bitsPerWord)
	if offset == 0 {
		hc.words = append(hc.words, 0)
	}
	mask := uint64(1) << offset
	if bit {
		hc.words[index] |= mask
	} else {
		hc.words[index] &^= mask
	}
	hc.size++
	*hc.tip = hc.size
}

// AppendCode appends every bit of other to this Code in place.
func (hc *Code) AppendCode(other Code) {
	for index := 0; index < other.size; index++ {
		hc.Append(other.Bit(index))
	}
}

// Clone returns a copy of this Code that does not share storage with it.
func (hc Code) Clone() Code {
	if hc.size == 0 {
		return Code{}
	}
	return Code{size: hc.size, words: copyWords(hc.words, len(hc.words)+1)}
}

// With returns a new Code consisting of this Code followed by one more bit.
// This Code is not modified.
func (hc Code) With(bit bool) Code {
	out := Code{size: hc.size, words: copyWords(hc.words, len(hc.words)+1), tip: new(int)}
	*out.tip = out.size
	out.Append(bit)
	return out
}

// Equal returns true iff both Codes hold the same bits.
func (hc Code) Equal(other Code) bool {
	if hc.size != other.size {
		return false
	}
	full := hc.size / bitsPerWord
	for index := 0; index < full; index++ {
		if hc.words[index] != other.words[index] {
			return false
		}
	}
	if rest := uint(hc.size % bitsPerWord); rest != 0 {
		mask := uint64(1)<<rest - 1
		return hc.words[full]&mask == other.words[full]&mask
	}
	return true
}

// HasPrefix returns true iff prefix is a (not necessarily strict) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.size > hc.size {
		return false
	}
	for index := 0; index < prefix.size; index++ {
		if hc.Bit(index) != prefix.Bit(index) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.size == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.digits())
}

// MarshalText returns the bits of this Code as '0' and '1' characters.
func (hc Code) MarshalText() ([]byte, error) {
	return []byte(hc.digits()), nil
}

// UnmarshalText replaces this Code with the bits parsed from raw.
func (hc *Code) UnmarshalText(raw []byte) error {
	parsed, err := ParseCode(string(raw))
	if err != nil {
		return err
	}
	*hc = parsed
	return nil
}

// Pack writes the bits of this Code into bytes, first bit in the most
// significant position of the first byte.  The final byte is padded with
// zero bits, so the caller must keep Len to recover the exact Code.
func (hc Code) Pack() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((hc.size + 7) / 8)
	w := bitio.NewWriter(&buf)
	for index := 0; index < hc.size; index++ {
		if err := w.WriteBool(hc.Bit(index)); err != nil {
			return nil, err
		}
	}
	if _, err := w.Align(); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackCode is the inverse of Code.Pack.  It reads the first size bits of
// data.
func UnpackCode(data []byte, size int) (Code, error) {
	if size < 0 {
		return Code{}, fmt.Errorf("invalid packed size: got %d", size)
	}
	if need := (size + 7) / 8; need > len(data) {
		return Code{}, fmt.Errorf("packed code of %d bits needs %d bytes, got %d: %w", size, need, len(data), ErrTruncated)
	}

	var hc Code
	r := bitio.NewReader(bytes.NewReader(data))
	for index := 0; index < size; index++ {
		bit, err := r.ReadBool()
		if err != nil {
			return Code{}, err
		}
		hc.Append(bit)
	}
	return hc, nil
}

var (
	_ fmt.Stringer = Code{}
)

// copyWords returns a copy of words, with room for at least capacity words.
func copyWords(words []uint64, capacity int) []uint64 {
	if capacity < len(words) {
		capacity = len(words)
	}
	out := make([]uint64, len(words), capacity)
	copy(out, words)
	return out
}

func (hc Code) digits() string {
	out := make([]byte, hc.size)
	for index := 0; index < hc.size; index++ {
		out[index] = '0'
		if hc.Bit(index) {
			out[index] = '1'
		}
	}
	return string(out)
}

// less orders Codes by length, then lexicographically by bits.
func (hc Code) less(other Code) bool {
	if hc.size != other.size {
		return hc.size < other.size
	}
	for index := 0; index < hc.size; index++ {
		a, b := hc.Bit(index), other.Bit(index)
		if a != b {
			return b
		}
	}
	return false
}
