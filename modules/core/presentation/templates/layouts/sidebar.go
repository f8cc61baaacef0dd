package layouts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/shell/composer"
	"github.com/fieldsuite/fieldsuite/pkg/shell/navigation"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

// Sidebar renders the navigation panel. In overlay mode the same markup is
// mounted hidden and toggled client-side; the controllers behind it do not
// change.
func Sidebar(props SidebarProps, mode composer.SidebarMode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		classes := "shell-sidebar"
		if mode == composer.SidebarOverlay {
			classes += " sidebar-overlay"
		}
		if props.Collapsed {
			classes += " sidebar-collapsed"
		}
		shellAttr := ""
		if props.Platform {
			shellAttr = ` data-shell="` + string(composer.HeaderPlatform) + `"`
		}
		if _, err := fmt.Fprintf(w, `<nav id="sidebar" class="%s"%s aria-label="Sections">`, classes, shellAttr); err != nil {
			return err
		}
		searchURL := "/shell/sidebar"
		if props.Platform {
			searchURL += "?shell=" + string(composer.HeaderPlatform)
		}
		if _, err := fmt.Fprintf(w,
			`<input class="sidebar-search" type="search" name="search" value="%s" placeholder="Search" hx-get="%s" hx-target="#sidebar" hx-swap="outerHTML" hx-trigger="input changed delay:200ms">`,
			templ.EscapeString(props.SearchTerm), searchURL,
		); err != nil {
			return err
		}
		for _, group := range props.Groups {
			if err := sidebarGroup(props, group).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</nav>`)
		return err
	})
}

func sidebarGroup(props SidebarProps, group types.Group) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := props.isOpen(group.ID)
		openAttr := ""
		if open {
			openAttr = " open"
		}
		if _, err := fmt.Fprintf(w, `<details class="sidebar-group"%s>`, openAttr); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<summary hx-post="/shell/sidebar/groups/%s" hx-swap="none">`,
			templ.EscapeString(string(group.ID)),
		); err != nil {
			return err
		}
		if group.Icon != nil {
			if err := group.Icon.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<span>%s</span>`, templ.EscapeString(group.Label)); err != nil {
			return err
		}
		if group.Badge != "" {
			if _, err := fmt.Fprintf(w, `<span class="badge">%s</span>`, templ.EscapeString(group.Badge)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</summary><ul>`); err != nil {
			return err
		}
		for _, id := range group.SectionIDs {
			section, ok := props.Sections[id]
			if !ok {
				continue
			}
			if err := sidebarItem(section, id == props.ActiveID).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></details>`)
		return err
	})
}

func sidebarItem(section types.Section, active bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "sidebar-item"
		if active {
			class += " active"
		}
		if _, err := fmt.Fprintf(w, `<li><a class="%s" href="%s">`,
			class, templ.EscapeString(navigation.PathFor(section.ID))); err != nil {
			return err
		}
		if section.Icon != nil {
			if err := section.Icon.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<span>%s</span></a></li>`, templ.EscapeString(section.Label))
		return err
	})
}
