// filepath: internal/render/render.go
// Package render assembles the homepage HTML. The template is a static
// asset with {{NAME}} placeholders; every dynamic fragment built here is
// escaped before it goes in.
package render

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"
	"time"

	"navhub/internal/config"
	"navhub/internal/models"
	"navhub/internal/services"

	"github.com/microcosm-cc/bluemonday"
)

// defaultGridClass is the literal class baked into the template; the
// five-column layout swaps it.
const defaultGridClass = "grid-cols-4"

// textPolicy strips any markup out of store-sourced text and escapes what
// remains. Store values are supposed to be plain text; this keeps them that
// way even if something slipped in through the admin API.
var textPolicy = bluemonday.StrictPolicy()

// Renderer substitutes homepage data into the static template.
type Renderer struct {
	tmpl string
}

// New creates a renderer around the raw template HTML.
func New(tmpl string) *Renderer {
	return &Renderer{tmpl: tmpl}
}

// PageData is one homepage render's worth of input.
type PageData struct {
	Page      *services.HomePage
	Site      config.SiteConfig
	Wallpaper string // resolved wallpaper URL, empty for none
}

// Render produces the final HTML document.
func (r *Renderer) Render(data PageData) string {
	page := data.Page
	layout := page.Layout

	doc := r.tmpl

	// Conditional style blocks go in by direct insertion before the
	// placeholder pass.
	if block := styleBlock(data.Wallpaper, layout); block != "" {
		doc = strings.Replace(doc, "</head>", block+"\n</head>", 1)
	}
	if layout.GridCols == 5 {
		doc = strings.ReplaceAll(doc, defaultGridClass, "grid-cols-5")
	}

	heading := "All"
	if !page.ShowAll {
		heading = page.Selected
	}

	// Fragments are built once and spliced in; the replacer does not
	// rescan replacement values, so nothing here may carry placeholders.
	menu := categoryLinks(page)
	options := datalistOptions(page.Sites)

	replacer := strings.NewReplacer(
		"{{PAGE_TITLE}}", escapeText(data.Site.Name),
		"{{SITE_NAME}}", escapeText(data.Site.Name),
		"{{SITE_DESCRIPTION}}", escapeText(data.Site.Description),
		"{{FOOTER_TEXT}}", escapeText(data.Site.FooterText),
		"{{YEAR}}", strconv.Itoa(time.Now().Year()),

		"{{BODY_CLASS}}", bodyClass(layout),
		"{{MENU_CLASS}}", "menu-"+layout.MenuLayout,
		"{{TITLE_CLASS}}", hiddenClass(layout.HideTitle),
		"{{SUBTITLE_CLASS}}", hiddenClass(layout.HideSubtitle),
		"{{CATEGORY_CLASS}}", hiddenClass(layout.HideCategory),

		"{{HEADER_HORIZONTAL}}", headerHorizontal(data.Site, layout, menu, options),
		"{{HEADER_SIDEBAR}}", headerSidebar(data.Site, layout, menu, options),
		"{{CATEGORY_LINKS}}", menu,
		"{{SITE_CARDS}}", siteCards(page.VisibleSites(), layout),

		"{{SECTION_HEADING}}", escapeText(heading),
		"{{SELECTED_CATALOG}}", escapeAttr(page.Selected),
		"{{SITE_COUNT}}", strconv.Itoa(len(page.Sites)),
	)
	return replacer.Replace(doc)
}

// SanitizeURL accepts only well-formed absolute http/https URLs. Anything
// else, javascript: and data: schemes included, comes back empty, which the
// fragment builders treat as "no link" / "no image".
func SanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if u.Host == "" {
		return ""
	}
	return u.String()
}

// escapeText renders store-sourced text safe for element content.
func escapeText(s string) string {
	return textPolicy.Sanitize(s)
}

// escapeAttr renders store-sourced text safe for attribute values.
func escapeAttr(s string) string {
	return html.EscapeString(s)
}

func hiddenClass(hide bool) string {
	if hide {
		return "hidden"
	}
	return ""
}

func bodyClass(layout models.LayoutSettings) string {
	classes := []string{"menu-" + layout.MenuLayout}
	if layout.FrostedGlass {
		classes = append(classes, "frosted-glass")
	}
	if layout.BgBlur {
		classes = append(classes, "bg-blur")
	}
	return strings.Join(classes, " ")
}

// categoryLinks builds the menu: an entry per catalog in sorted order,
// preceded by the explicit full listing.
func categoryLinks(page *services.HomePage) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<a class="menu-item%s" href="/?catalog=all">All</a>`,
		activeSuffix(page.ShowAll)))
	for _, cat := range page.Catalogs {
		active := !page.ShowAll && cat.Name == page.Selected
		sb.WriteString(fmt.Sprintf(`<a class="menu-item%s" href="/?catalog=%s">%s</a>`,
			activeSuffix(active), url.QueryEscape(cat.Name), escapeText(cat.Name)))
	}
	return sb.String()
}

func activeSuffix(active bool) string {
	if active {
		return " active"
	}
	return ""
}

// siteCards builds the card grid for the visible sites. A card is an anchor
// only when links are enabled and the site URL survives sanitization;
// otherwise it degrades to a plain tile.
func siteCards(sites []models.Site, layout models.LayoutSettings) string {
	var sb strings.Builder
	for _, site := range sites {
		sb.WriteString(siteCard(site, layout))
	}
	return sb.String()
}

func siteCard(site models.Site, layout models.LayoutSettings) string {
	var sb strings.Builder

	link := ""
	if !layout.HideLinks {
		link = SanitizeURL(site.URL)
	}

	if link != "" {
		sb.WriteString(fmt.Sprintf(`<a class="site-card" href="%s" target="_blank" rel="noopener">`,
			escapeAttr(link)))
	} else {
		sb.WriteString(`<div class="site-card">`)
	}

	logo := ""
	if site.Logo != nil {
		logo = SanitizeURL(*site.Logo)
	}
	if logo != "" {
		sb.WriteString(fmt.Sprintf(`<img class="site-logo" src="%s" alt="%s" loading="lazy">`,
			escapeAttr(logo), escapeAttr(site.Name)))
	} else {
		sb.WriteString(fmt.Sprintf(`<span class="site-initial">%s</span>`, escapeText(initialOf(site.Name))))
	}

	sb.WriteString(fmt.Sprintf(`<div class="site-title">%s</div>`, escapeText(site.Name)))

	if !layout.HideDesc && site.Desc != nil && *site.Desc != "" {
		sb.WriteString(fmt.Sprintf(`<p class="site-desc">%s</p>`, escapeText(*site.Desc)))
	}

	if link != "" {
		sb.WriteString("</a>")
	} else {
		sb.WriteString("</div>")
	}
	return sb.String()
}

// initialOf picks the fallback glyph shown when a site has no usable logo.
func initialOf(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// datalistOptions feeds the search box suggestions from every loaded site.
func datalistOptions(sites []models.Site) string {
	var sb strings.Builder
	for _, site := range sites {
		sb.WriteString(fmt.Sprintf(`<option value="%s">`, escapeAttr(site.Name)))
	}
	return sb.String()
}

// headerHorizontal is the top-bar variant; empty unless that layout is on.
func headerHorizontal(site config.SiteConfig, layout models.LayoutSettings, menu, options string) string {
	if layout.MenuLayout != models.MenuLayoutHorizontal {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<header class="topbar">`)
	sb.WriteString(fmt.Sprintf(`<span class="brand %s">%s</span>`,
		hiddenClass(layout.HideTitle), escapeText(site.Name)))
	sb.WriteString(fmt.Sprintf(`<nav class="topbar-menu %s">%s</nav>`,
		hiddenClass(layout.HideCategory), menu))
	sb.WriteString(searchBox(options))
	sb.WriteString(`</header>`)
	return sb.String()
}

// headerSidebar is the default vertical variant.
func headerSidebar(site config.SiteConfig, layout models.LayoutSettings, menu, options string) string {
	if layout.MenuLayout != models.MenuLayoutVertical {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<aside class="sidebar">`)
	sb.WriteString(fmt.Sprintf(`<span class="brand %s">%s</span>`,
		hiddenClass(layout.HideTitle), escapeText(site.Name)))
	sb.WriteString(fmt.Sprintf(`<p class="brand-sub %s">%s</p>`,
		hiddenClass(layout.HideSubtitle), escapeText(site.Description)))
	sb.WriteString(searchBox(options))
	sb.WriteString(fmt.Sprintf(`<nav class="sidebar-menu %s">%s</nav>`,
		hiddenClass(layout.HideCategory), menu))
	sb.WriteString(`</aside>`)
	return sb.String()
}

func searchBox(options string) string {
	return `<input class="search" type="search" list="site-names" placeholder="Search">` +
		`<datalist id="site-names">` + options + `</datalist>`
}

// styleBlock builds the conditional wallpaper and glass-effect styles.
func styleBlock(wallpaper string, layout models.LayoutSettings) string {
	var sb strings.Builder

	if clean := SanitizeURL(wallpaper); clean != "" {
		sb.WriteString(fmt.Sprintf(
			"<style>body{background-image:url('%s');background-size:cover;background-attachment:fixed}</style>",
			escapeAttr(clean)))
	}
	if layout.FrostedGlass {
		sb.WriteString(fmt.Sprintf("<style>:root{--frosted-blur:%dpx}</style>",
			intensity(layout.FrostedGlassIntensity)))
	}
	if layout.BgBlur {
		sb.WriteString(fmt.Sprintf("<style>:root{--bg-blur:%dpx}</style>",
			intensity(layout.BgBlurIntensity)))
	}
	return sb.String()
}

// intensity parses a stored effect intensity, clamped to something CSS-sane.
func intensity(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 10
	}
	if v > 100 {
		return 100
	}
	return v
}
