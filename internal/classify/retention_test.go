package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"betaradar/internal/model"
)

func TestRetentionKeepsVersionKeyword(t *testing.T) {
	require.True(t, AndroidRetention.Keep("Android 17 Beta 2 released"))
	require.True(t, IOSRetention.Keep("iOS 26 developer preview hands-on"))
}

func TestRetentionDropsHardwareOnly(t *testing.T) {
	// Device coverage without a version keyword is off-topic
	require.False(t, AndroidRetention.Keep("Pixel 10 camera review"))
	require.False(t, IOSRetention.Keep("iPhone 17 case roundup"))
}

func TestRetentionDropsNeither(t *testing.T) {
	require.False(t, AndroidRetention.Keep("weekend deals on chargers"))
}

func TestApplyOnlyTouchesOwnPlatformNews(t *testing.T) {
	items := []model.NewsItem{
		{ID: "a", Type: model.TypeNews, Platform: model.PlatformAndroid, Title: "Android 17 Beta 2 released"},
		{ID: "b", Type: model.TypeNews, Platform: model.PlatformAndroid, Title: "Pixel 10 camera review"},
		{ID: "c", Type: model.TypeNews, Platform: model.PlatformIOS, Title: "iPhone 17 case roundup"},
		{ID: "d", Type: model.TypeLeaker, Title: "OnLeaks (@OnLeaks)"},
	}

	kept := AndroidRetention.Apply(items)

	ids := make([]string, 0, len(kept))
	for _, item := range kept {
		ids = append(ids, item.ID)
	}
	// The android hardware-only item goes, the ios item and the leaker
	// pass through this platform's filter untouched.
	require.Equal(t, []string{"a", "c", "d"}, ids)
}
