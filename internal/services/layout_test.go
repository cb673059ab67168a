// filepath: internal/services/layout_test.go
package services

import (
	"testing"

	"navhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseLayoutSettingsDefaults(t *testing.T) {
	layout := ParseLayoutSettings(map[string]string{})

	assert.False(t, layout.HideDesc)
	assert.False(t, layout.HideLinks)
	assert.False(t, layout.HideCategory)
	assert.False(t, layout.HideTitle)
	assert.False(t, layout.HideSubtitle)
	assert.Equal(t, 4, layout.GridCols)
	assert.Equal(t, models.MenuLayoutVertical, layout.MenuLayout)
	assert.False(t, layout.RandomWallpaper)
	assert.False(t, layout.FrostedGlass)
	assert.False(t, layout.BgBlur)
	assert.Empty(t, layout.CustomWallpaper)
}

func TestParseLayoutSettingsValues(t *testing.T) {
	layout := ParseLayoutSettings(map[string]string{
		models.SettingHideDesc:              "true",
		models.SettingHideTitle:             "true",
		models.SettingGridCols:              "5",
		models.SettingMenuLayout:            "horizontal",
		models.SettingCustomWallpaper:       "https://img.example.com/bg.jpg",
		models.SettingRandomWallpaper:       "true",
		models.SettingBingCountry:           "jp",
		models.SettingEnableFrostedGlass:    "true",
		models.SettingFrostedGlassIntensity: "12",
	})

	assert.True(t, layout.HideDesc)
	assert.True(t, layout.HideTitle)
	assert.Equal(t, 5, layout.GridCols)
	assert.Equal(t, models.MenuLayoutHorizontal, layout.MenuLayout)
	assert.Equal(t, "https://img.example.com/bg.jpg", layout.CustomWallpaper)
	assert.True(t, layout.RandomWallpaper)
	assert.Equal(t, "jp", layout.BingCountry)
	assert.True(t, layout.FrostedGlass)
	assert.Equal(t, "12", layout.FrostedGlassIntensity)
}

func TestParseLayoutSettingsRejectsNonBooleanStrings(t *testing.T) {
	// Only the literal "true" counts; "1", "TRUE" and junk stay off.
	for _, v := range []string{"1", "TRUE", "yes", "false", ""} {
		layout := ParseLayoutSettings(map[string]string{models.SettingHideDesc: v})
		assert.False(t, layout.HideDesc, "value %q", v)
	}

	layout := ParseLayoutSettings(map[string]string{models.SettingGridCols: "6"})
	assert.Equal(t, 4, layout.GridCols)
}
