package autosplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignatureParsesHexAndWildcards(t *testing.T) {
	sig, err := ParseSignature("48 8B ?? 89")
	require.NoError(t, err)
	assert.Equal(t, 4, sig.Len())
}

func TestParseSignatureRejectsInvalidByte(t *testing.T) {
	_, err := ParseSignature("ZZ")
	assert.Error(t, err)
}

func TestParseSignatureRejectsEmptyPattern(t *testing.T) {
	_, err := ParseSignature("")
	assert.Error(t, err)
}

func TestScanFindsExactMatch(t *testing.T) {
	sig, err := ParseSignature("DE AD BE EF")
	require.NoError(t, err)
	data := []byte{0x00, 0x01, 0xDE, 0xAD, 0xBE, 0xEF, 0x02}
	assert.Equal(t, 2, sig.Scan(data, 0))
}

func TestScanHonorsWildcards(t *testing.T) {
	sig, err := ParseSignature("DE ?? BE EF")
	require.NoError(t, err)
	data := []byte{0x00, 0xDE, 0x99, 0xBE, 0xEF}
	assert.Equal(t, 1, sig.Scan(data, 0))
}

func TestScanReturnsMinusOneWhenNotFound(t *testing.T) {
	sig, err := ParseSignature("DE AD BE EF")
	require.NoError(t, err)
	data := []byte{0x01, 0x02, 0x03}
	assert.Equal(t, -1, sig.Scan(data, 0))
}

func TestScanAllFindsNonOverlappingMatches(t *testing.T) {
	sig, err := ParseSignature("AA BB")
	require.NoError(t, err)
	data := []byte{0xAA, 0xBB, 0x00, 0xAA, 0xBB, 0xAA, 0xBB}
	assert.Equal(t, []int{0, 3, 5}, sig.ScanAll(data))
}

func TestScanRespectsStartOffset(t *testing.T) {
	sig, err := ParseSignature("AA BB")
	require.NoError(t, err)
	data := []byte{0xAA, 0xBB, 0x00, 0xAA, 0xBB}
	assert.Equal(t, 3, sig.Scan(data, 1))
}
