package domain

import "time"

type Channel string

const (
	ChannelDirect   Channel = "direct"
	ChannelSearch   Channel = "search"
	ChannelSocial   Channel = "social"
	ChannelEmail    Channel = "email"
	ChannelExternal Channel = "external"
	ChannelOther    Channel = "other"
)

var Channels = []Channel{
	ChannelDirect,
	ChannelSearch,
	ChannelSocial,
	ChannelEmail,
	ChannelExternal,
	ChannelOther,
}

var channelLabels = map[Channel]string{
	ChannelDirect:   "직접 방문",
	ChannelSearch:   "검색",
	ChannelSocial:   "소셜",
	ChannelEmail:    "이메일",
	ChannelExternal: "외부 링크",
	ChannelOther:    "기타",
}

// NormalizeChannel maps unknown channel values to ChannelOther.
func NormalizeChannel(raw string) Channel {
	c := Channel(raw)
	if _, ok := channelLabels[c]; ok {
		return c
	}
	return ChannelOther
}

func (c Channel) Label() string {
	if l, ok := channelLabels[c]; ok {
		return l
	}
	return channelLabels[ChannelOther]
}

// WebSession is one browser visit.
type WebSession struct {
	ID          string
	Channel     Channel
	LandingPage string
	DeviceType  string
	Converted   bool
	StartedAt   time.Time
}

type ChannelShareRow struct {
	Channel           Channel
	Label             string
	Sessions          int
	ConvertedSessions int
	Share             float64
}

type ChannelConversionRow struct {
	Channel        Channel
	Label          string
	Sessions       int
	Completions    int
	ConversionRate float64
}

type DeviceRow struct {
	DeviceType     string
	Sessions       int
	Completions    int
	ConversionRate float64
}
