package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func TestCode_ParseAndString(t *testing.T) {
	type testRow struct {
		input  string
		size   int
		expect string
	}

	testData := [...]testRow{
		{input: "", size: 0, expect: "\"\""},
		{input: "0", size: 1, expect: "\"0\""},
		{input: "10110", size: 5, expect: "\"10110\""},
		{input: "0000101010111111110", size: 19, expect: "\"0000101010111111110\""},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			hc, err := ParseCode(row.input)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			if hc.Len() != row.size {
				t.Errorf("wrong size:\n\texpect: %d\n\tactual: %d", row.size, hc.Len())
			}
			if actual := hc.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}

	if _, err := ParseCode("0120"); err == nil {
		t.Errorf("ParseCode accepted an invalid character")
	}
}

func TestCode_LongerThanOneWord(t *testing.T) {
	var hc Code
	for index := 0; index < 150; index++ {
		hc.Append(index%3 == 0)
	}
	if hc.Len() != 150 {
		t.Fatalf("wrong size: expected 150, got %d", hc.Len())
	}
	for index := 0; index < 150; index++ {
		if expect, actual := index%3 == 0, hc.Bit(index); expect != actual {
			t.Errorf("bit %d: expected %v, got %v", index, expect, actual)
		}
	}

	roundTrip := MustParseCode(hc.digits())
	if !roundTrip.Equal(hc) {
		t.Errorf("round trip through digits changed the code:\n\texpect: %s\n\tactual: %s", hc, roundTrip)
	}
}

func TestCode_WithDoesNotAlias(t *testing.T) {
	base := MustParseCode("10")
	left := base.With(false)
	right := base.With(true)

	if expect, actual := "\"10\"", base.String(); expect != actual {
		t.Errorf("base modified:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "\"100\"", left.String(); expect != actual {
		t.Errorf("wrong left:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "\"101\"", right.String(); expect != actual {
		t.Errorf("wrong right:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestCode_AppendToCopy(t *testing.T) {
	const digits = "0000101010111111110"
	original := MustParseCode(digits)

	copied := original
	copied.Append(true)
	if !original.Equal(MustParseCode(digits)) {
		t.Errorf("appending to a copy changed the original:\n\texpect: %q\n\tactual: %s", digits, original)
	}
	if expect, actual := "\""+digits+"1\"", copied.String(); expect != actual {
		t.Errorf("wrong copy:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	// Both now end past the original; neither may overwrite the other.
	other := original
	other.Append(false)
	original.Append(false)
	copied.Append(false)
	if expect, actual := "\""+digits+"0\"", other.String(); expect != actual {
		t.Errorf("wrong other:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "\""+digits+"0\"", original.String(); expect != actual {
		t.Errorf("wrong original:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if expect, actual := "\""+digits+"10\"", copied.String(); expect != actual {
		t.Errorf("wrong copy:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	// Reassigning a shorter copy over a longer Code must not write into
	// bits that a longer copy still holds.
	short := original
	longer := original
	longer.Append(true)
	original = short
	original.Append(false)
	if expect, actual := "\""+digits+"01\"", longer.String(); expect != actual {
		t.Errorf("wrong longer:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if !original.Equal(other.With(false)) {
		t.Errorf("wrong original:\n\texpect: %s\n\tactual: %s", other.With(false), original)
	}
}

func TestCode_EqualIgnoresStorageBeyondSize(t *testing.T) {
	result, err := EncodeString("aaaabbbccd")
	if err != nil {
		t.Fatalf("EncodeString failed: %v", err)
	}

	extended := result.Bits
	extended.Append(true)
	if !result.Bits.Equal(MustParseCode(result.Bits.digits())) {
		t.Errorf("Equal compared bits beyond size:\n\texpect: %q\n\tactual: %s", result.Bits.digits(), result.Bits)
	}
	output, err := DecodeString(result)
	if err != nil {
		t.Fatalf("DecodeString failed: %v", err)
	}
	if expect := "aaaabbbccd"; expect != output {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, output)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MustParseCode("1101")
	if !hc.HasPrefix(Code{}) {
		t.Errorf("empty code should be a prefix of every code")
	}
	if !hc.HasPrefix(MustParseCode("110")) {
		t.Errorf("\"110\" should be a prefix of %s", hc)
	}
	if !hc.HasPrefix(hc) {
		t.Errorf("a code should be a prefix of itself")
	}
	if hc.HasPrefix(MustParseCode("111")) {
		t.Errorf("\"111\" should not be a prefix of %s", hc)
	}
	if hc.HasPrefix(MustParseCode("11010")) {
		t.Errorf("a longer code should not be a prefix")
	}
}

func TestCode_MarshalText(t *testing.T) {
	hc := MustParseCode("0110")
	raw, err := hc.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if expect, actual := "0110", string(raw); expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	var parsed Code
	if err := parsed.UnmarshalText(raw); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !parsed.Equal(hc) {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", hc, parsed)
	}
}

func TestCode_Pack(t *testing.T) {
	hc := MustParseCode("0000101010111111110")

	packed, err := hc.Pack()
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	expectPacked := []byte{0x0a, 0xbf, 0xc0}
	if !bytes.Equal(expectPacked, packed) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expectPacked, packed)
	}

	unpacked, err := UnpackCode(packed, hc.Len())
	if err != nil {
		t.Fatalf("UnpackCode failed: %v", err)
	}
	if !unpacked.Equal(hc) {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", hc, unpacked)
	}

	if _, err := UnpackCode(packed[:2], hc.Len()); !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated for short data, got %v", err)
	}

	if hc, err := UnpackCode(packed, -1); err == nil {
		t.Errorf("expected an error for a negative size, got %s", hc)
	}
}

func TestCode_PackEmpty(t *testing.T) {
	packed, err := Code{}.Pack()
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if len(packed) != 0 {
		t.Errorf("expected no bytes, got %#v", packed)
	}
}
