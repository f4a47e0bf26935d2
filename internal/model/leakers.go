package model

import (
	"fmt"
	"strings"
	"time"
)

// Leaker is a known rumor-source profile shown alongside the news feed.
type Leaker struct {
	Name   string
	Handle string
	Avatar string
}

// Roster of well-known leakers. These are regenerated on every
// pipeline run and never deduplicated against history.
var Leakers = []Leaker{
	{Name: "OnLeaks", Handle: "@OnLeaks", Avatar: "https://pbs.twimg.com/profile_images/1590049827662032896/3Jdz7fGM_400x400.jpg"},
	{Name: "Evan Blass", Handle: "@evleaks", Avatar: "https://pbs.twimg.com/profile_images/1683602571156635648/NmFNPE3__400x400.jpg"},
	{Name: "Ice Universe", Handle: "@UniverseIce", Avatar: "https://pbs.twimg.com/profile_images/1590753781534375937/G63Fcoiq_400x400.jpg"},
	{Name: "Mishaal Rahman", Handle: "@MishaalRahman", Avatar: "https://pbs.twimg.com/profile_images/1772892077495795712/nnAPEaB2_400x400.jpg"},
	{Name: "Max Weinbach", Handle: "@MaxWineworthy", Avatar: "https://pbs.twimg.com/profile_images/1402848727407013888/6VrpdaKh_400x400.jpg"},
	{Name: "Mark Gurman", Handle: "@markgurman", Avatar: "https://pbs.twimg.com/profile_images/1729615199236122624/Zh9gf2Bn_400x400.jpg"},
	{Name: "Majin Bu", Handle: "@MajinBuOfficial", Avatar: "https://pbs.twimg.com/profile_images/1669381550269071360/KcbYfF2A_400x400.jpg"},
}

// LeakerItems builds the synthetic feed entries for the roster,
// stamped with the given run time.
func LeakerItems(now time.Time) []NewsItem {
	items := make([]NewsItem, 0, len(Leakers))
	for i, l := range Leakers {
		handle := strings.TrimPrefix(l.Handle, "@")
		items = append(items, NewsItem{
			ID:         fmt.Sprintf("leaker_%d", i),
			Title:      fmt.Sprintf("%s (%s)", l.Name, l.Handle),
			Summary:    fmt.Sprintf("Follow %s for the latest platform leaks. Twitter/X API limits prevent inline updates, check the account directly.", l.Handle),
			URL:        "https://twitter.com/" + handle,
			Source:     "Leaker",
			SourceIcon: "🔥",
			Date:       now.Format("2006-01-02"),
			Type:       TypeLeaker,
			Image:      l.Avatar,
		})
	}
	return items
}
