package config

import (
	"regexp"
)

// Compiled-in channel defaults, kept as URLs the way the bot configuration
// distributes them.
const (
	defaultPublicChannelURL  = "https://discord.com/channels/1449421401609212088/1457611087561101332"
	defaultPrivateChannelURL = "https://discord.com/channels/1449421401609212088/1457611128225009666"
)

var channelURLRe = regexp.MustCompile(`https://discord\.com/channels/(\d+)/(\d+)`)

// ExtractChannelID pulls the channel id out of a Discord channel URL. A bare
// numeric id is returned unchanged; anything else returns "".
func ExtractChannelID(input string) string {
	if m := channelURLRe.FindStringSubmatch(input); m != nil {
		return m[2]
	}

	if input != "" && isDigits(input) {
		return input
	}

	return ""
}

// ResolvePublicChannel resolves the public channel: explicit id, then URL,
// then the compiled-in default, in that order.
func (d *Discord) ResolvePublicChannel() string {
	return resolveChannel(d.PublicChannelID, d.PublicChannelURL, defaultPublicChannelURL)
}

// ResolvePrivateChannel resolves the private channel with the same priority.
func (d *Discord) ResolvePrivateChannel() string {
	return resolveChannel(d.PrivateChannelID, d.PrivateChannelURL, defaultPrivateChannelURL)
}

func resolveChannel(explicitID, url, fallbackURL string) string {
	if explicitID != "" {
		return explicitID
	}

	if url != "" {
		if id := ExtractChannelID(url); id != "" {
			return id
		}
	}

	return ExtractChannelID(fallbackURL)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
