// filepath: internal/initconfig/models.go
package initconfig

// InitConfig is the root struct for parsing the TOML initialization file.
type InitConfig struct {
	Categories []InitCategory `toml:"category"`
	Sites      []InitSite     `toml:"site"`
}

// InitCategory represents a category entry in the TOML seed file.
type InitCategory struct {
	Name      string `toml:"name"`
	IsPrivate bool   `toml:"is_private"`
	SortOrder int    `toml:"sort_order"`
}

// InitSite represents a bookmark entry in the TOML seed file. The category
// is referenced by name and resolved to its id during seeding.
type InitSite struct {
	Name      string `toml:"name"`
	URL       string `toml:"url"`
	Logo      string `toml:"logo"`
	Desc      string `toml:"desc"`
	Category  string `toml:"category"`
	SortOrder *int   `toml:"sort_order"`
	IsPrivate *bool  `toml:"is_private"`
}
