// filepath: internal/services/layout.go
package services

import "navhub/internal/models"

// ParseLayoutSettings decodes the settings rows into layout switches.
// Booleans are the literal string "true"; anything else, including a
// missing key, is off. The zero configuration is the vertical minimal theme.
func ParseLayoutSettings(settings map[string]string) models.LayoutSettings {
	boolOn := func(key string) bool { return settings[key] == "true" }

	layout := models.LayoutSettings{
		HideDesc:     boolOn(models.SettingHideDesc),
		HideLinks:    boolOn(models.SettingHideLinks),
		HideCategory: boolOn(models.SettingHideCategory),
		HideTitle:    boolOn(models.SettingHideTitle),
		HideSubtitle: boolOn(models.SettingHideSubtitle),

		GridCols:        4,
		CustomWallpaper: settings[models.SettingCustomWallpaper],
		MenuLayout:      models.MenuLayoutVertical,

		RandomWallpaper: boolOn(models.SettingRandomWallpaper),
		BingCountry:     settings[models.SettingBingCountry],

		FrostedGlass:          boolOn(models.SettingEnableFrostedGlass),
		FrostedGlassIntensity: settings[models.SettingFrostedGlassIntensity],
		BgBlur:                boolOn(models.SettingEnableBgBlur),
		BgBlurIntensity:       settings[models.SettingBgBlurIntensity],
	}

	if settings[models.SettingGridCols] == "5" {
		layout.GridCols = 5
	}
	if settings[models.SettingMenuLayout] == models.MenuLayoutHorizontal {
		layout.MenuLayout = models.MenuLayoutHorizontal
	}
	return layout
}
