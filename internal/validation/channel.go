package validation

import "regexp"

// URL shape per supported SNS channel type.
var channelPatterns = map[string]*regexp.Regexp{
	"instagram": regexp.MustCompile(`^https?://(www\.)?instagram\.com/[a-zA-Z0-9._]+/?$`),
	"youtube":   regexp.MustCompile(`^https?://(www\.)?(youtube\.com|youtu\.be)/.+$`),
	"blog":      regexp.MustCompile(`^https?://.+\.(blog\.me|tistory\.com|com/blog).*`),
	"tiktok":    regexp.MustCompile(`^https?://(www\.)?tiktok\.com/@[a-zA-Z0-9._]+/?$`),
}

// ChannelURLOK reports whether url matches the expected shape for
// channelType. Unknown channel types never match.
func ChannelURLOK(channelType, url string) bool {
	pattern, ok := channelPatterns[channelType]
	if !ok {
		return false
	}
	return pattern.MatchString(url)
}
