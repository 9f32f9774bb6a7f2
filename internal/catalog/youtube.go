package catalog

import "regexp"

var (
	youTubeIDPattern  = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`)
	youTubeURLPattern = regexp.MustCompile(`^https?://(www\.)?(youtube\.com|youtu\.be)`)
)

// YouTubeVideoID extracts the 11-character video ID from watch, short and
// embed URLs. It returns "" when url is not a YouTube video link.
func YouTubeVideoID(url string) string {
	m := youTubeIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// YouTubeEmbedURL converts a YouTube link into its embeddable form.
func YouTubeEmbedURL(url string) string {
	id := YouTubeVideoID(url)
	if id == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}

// IsYouTubeURL reports whether url points at youtube.com or youtu.be.
func IsYouTubeURL(url string) bool {
	return youTubeURLPattern.MatchString(url)
}
