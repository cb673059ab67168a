// filepath: internal/models/models.go
package models

import "time"

// DefaultSortOrder is the fallback position for sites and categories that
// carry no explicit order. Unordered rows sink to the bottom.
const DefaultSortOrder = 9999

// Site is a single bookmark record.
type Site struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Logo        *string   `json:"logo"`
	Desc        *string   `json:"desc"`
	CatelogID   int64     `json:"catelog_id"`
	CatelogName string    `json:"catelog_name"` // denormalized, synced at write time
	SortOrder   int       `json:"sort_order"`
	IsPrivate   bool      `json:"is_private"`
	CreateTime  time.Time `json:"create_time"`
}

// Category is a named grouping of sites. The historical column name
// "catelog" is kept as-is; existing databases spell it that way.
type Category struct {
	ID        int64  `json:"id"`
	Catelog   string `json:"catelog"`
	IsPrivate bool   `json:"is_private"`
	SortOrder int    `json:"sort_order"`
}

// Setting is one key/value row of the settings table. Booleans are stored
// as the literal strings "true" / "false".
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CatalogMeta is the derived, per-request ordering record for one category
// present on the homepage. Never persisted.
type CatalogMeta struct {
	Name     string `json:"name"`
	Order    int    `json:"order"`    // declared category sort_order, or Fallback
	Fallback int    `json:"fallback"` // minimum site sort_order observed
	ID       int64  `json:"id"`
}

// SiteListQuery carries the parsed filters of a GET /api/config request.
type SiteListQuery struct {
	Catalog        string // category name filter; ignored when CatalogID is set
	CatalogID      int64  // category id filter, takes precedence
	Page           int
	PageSize       int
	Keyword        string
	IncludePrivate bool
}

// SiteListResult is the paginated response envelope of GET /api/config.
type SiteListResult struct {
	Code     int    `json:"code"`
	Data     []Site `json:"data"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// SiteCreateRequest is the body of POST /api/config.
type SiteCreateRequest struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Logo      string `json:"logo"`
	Desc      string `json:"desc"`
	CatelogID int64  `json:"catelogId"`
	SortOrder *int   `json:"sort_order"`
	IsPrivate *bool  `json:"is_private"`
}

// SiteCreateResponse echoes the stored row back to the caller.
type SiteCreateResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Insert  *Site  `json:"insert"`
}

// MenuLayoutHorizontal and MenuLayoutVertical are the two recognized values
// of the layout_menu_layout setting. Vertical (sidebar) is the default.
const (
	MenuLayoutHorizontal = "horizontal"
	MenuLayoutVertical   = "vertical"
)

// LayoutSettings is the decoded view of the settings table rows that
// control the homepage. Missing keys leave the zero value, which is the
// vertical/minimal theme.
type LayoutSettings struct {
	HideDesc     bool
	HideLinks    bool
	HideCategory bool
	HideTitle    bool
	HideSubtitle bool

	GridCols        int    // 4 or 5
	CustomWallpaper string // absolute URL, raw from the store
	MenuLayout      string // MenuLayoutHorizontal or MenuLayoutVertical

	RandomWallpaper bool
	BingCountry     string // market code for the wallpaper feed endpoint

	FrostedGlass          bool
	FrostedGlassIntensity string
	BgBlur                bool
	BgBlurIntensity       string
}

// Recognized settings keys.
const (
	SettingHideDesc              = "layout_hide_desc"
	SettingHideLinks             = "layout_hide_links"
	SettingHideCategory          = "layout_hide_category"
	SettingHideTitle             = "layout_hide_title"
	SettingHideSubtitle          = "layout_hide_subtitle"
	SettingGridCols              = "layout_grid_cols"
	SettingCustomWallpaper       = "layout_custom_wallpaper"
	SettingMenuLayout            = "layout_menu_layout"
	SettingRandomWallpaper       = "layout_random_wallpaper"
	SettingBingCountry           = "bing_country"
	SettingEnableFrostedGlass    = "layout_enable_frosted_glass"
	SettingFrostedGlassIntensity = "layout_frosted_glass_intensity"
	SettingEnableBgBlur          = "layout_enable_bg_blur"
	SettingBgBlurIntensity       = "layout_bg_blur_intensity"
)
