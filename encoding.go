package pathmatch

import (
	neturl "net/url"

	"github.com/dunglas/whatwg-url/url"
)

var componentEncoder = url.NewParser()

// EncodePathComponent percent-encodes value with the userinfo percent-encode
// set, which covers the delimiter characters and the pattern
// metacharacters. It has the shape WithEncode expects.
func EncodePathComponent(value string) string {
	return componentEncoder.PercentEncodeString(value, url.UserInfoPercentEncodeSet)
}

// DecodePathComponent reverses percent-encoding. Malformed escapes are left
// as they are. It has the shape WithDecode expects.
func DecodePathComponent(value string) string {
	decoded, err := neturl.PathUnescape(value)
	if err != nil {
		return value
	}

	return decoded
}
