package tokenize

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// segmentSeparator joins token segments on the wire. A configured prefix must
// not contain it, otherwise the segment count check rejects every token.
const segmentSeparator = "."

// segmentEncoding is part of the wire format: standard base64 alphabet,
// no padding. Changing it breaks interoperability with issued tokens.
var segmentEncoding = base64.RawStdEncoding

func encodeSegment(raw []byte) string {
	return segmentEncoding.EncodeToString(raw)
}

func decodeSegment(seg string) ([]byte, error) {
	return segmentEncoding.DecodeString(seg)
}

// buildUnsigned produces the pre-signature part of a token:
// "prefix.account.time" with a prefix configured, "account.time" without.
func buildUnsigned(prefix, accountID string, issueTime int64) string {
	accountPart := encodeSegment([]byte(accountID))
	timePart := encodeSegment([]byte(strconv.FormatInt(issueTime, 10)))

	if prefix == "" {
		return accountPart + segmentSeparator + timePart
	}
	return prefix + segmentSeparator + accountPart + segmentSeparator + timePart
}

// splitToken splits on the segment separator without interpreting the
// segment count; callers validate it.
func splitToken(token string) []string {
	return strings.Split(token, segmentSeparator)
}
