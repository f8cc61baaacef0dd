// Package layouts composes the outer shell: header, navigation panel and
// content area. Components are plain templ implementations; the shell is
// fully server-rendered.
package layouts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fieldsuite/fieldsuite/pkg/shell/composer"
	"github.com/fieldsuite/fieldsuite/pkg/types"
)

type ShellProps struct {
	Title       string
	Header      composer.HeaderKind
	SidebarMode composer.SidebarMode
	Sidebar     SidebarProps
	Content     templ.Component
	UserName    string
}

// Base renders the full document around the active section's content.
func Base(props ShellProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/static/app.css"><script src="/static/shell.js" defer></script></head><body>`,
			templ.EscapeString(props.Title),
		); err != nil {
			return err
		}
		if err := header(props).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="shell-body">`); err != nil {
			return err
		}
		if err := Sidebar(props.Sidebar, props.SidebarMode).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main id="content" class="shell-content">`); err != nil {
			return err
		}
		if props.Content != nil {
			if err := props.Content.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</main></div>`); err != nil {
			return err
		}
		// The client script clones this into the content area while a
		// history-driven re-render is in flight.
		if _, err := io.WriteString(w, `<template id="content-skeleton">`); err != nil {
			return err
		}
		if err := Skeleton().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</template></body></html>`)
		return err
	})
}

func header(props ShellProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		kind := "header-business"
		brand := "FieldSuite"
		if props.Header == composer.HeaderPlatform {
			kind = "header-platform"
			brand = "FieldSuite Platform"
		}
		_, err := fmt.Fprintf(w,
			`<header class="shell-header %s"><button class="sidebar-toggle" hx-post="/shell/sidebar/collapse" hx-swap="none" aria-label="Toggle sidebar"></button><span class="brand">%s</span><span class="user">%s</span></header>`,
			kind, brand, templ.EscapeString(props.UserName),
		)
		return err
	})
}

// SidebarProps carries everything the navigation panel needs to render:
// filtered groups, resolved labels, and the panel's own UI state.
type SidebarProps struct {
	Groups     []types.Group
	Sections   map[string]types.Section
	ActiveID   string
	Collapsed  bool
	OpenGroups []types.GroupID
	SearchTerm string
	// Platform marks the panel as belonging to the platform shell, so
	// fragment refreshes ask for the platform section set.
	Platform bool
}

func (p SidebarProps) isOpen(id types.GroupID) bool {
	for _, g := range p.OpenGroups {
		if g == id {
			return true
		}
	}
	return false
}
