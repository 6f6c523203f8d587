// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/kegmil/catalog-cli/internal/cache"
	"github.com/kegmil/catalog-cli/internal/catalog"
	"github.com/kegmil/catalog-cli/internal/dataview"
	"github.com/kegmil/catalog-cli/internal/tui/messages"
	"github.com/kegmil/catalog-cli/internal/tui/views"
)

type App struct {
	catalog   *catalog.Catalog
	viewCache *cache.ViewCache
	viewStack []tea.Model // Navigation history
	current   tea.Model
	width     int // Current window width
	height    int // Current window height
	logger    zerolog.Logger
}

// NewApp opens the items screen for cat with the given initial state.
// Call Close (or Run, which closes) to stop the view cache.
func NewApp(cat *catalog.Catalog, state dataview.ViewState, logger zerolog.Logger) *App {
	viewCache := cache.NewViewCache(cache.DefaultCapacity, cache.DefaultTTL)
	logger = logger.With().Str("catalog", cat.Name).Logger()

	return &App{
		catalog:   cat,
		viewCache: viewCache,
		current:   views.NewItemsView(cat.Name, cat.Items, state, viewCache, logger),
		logger:    logger,
	}
}

// Init implements tea.Model interface
func (a *App) Init() tea.Cmd {
	return a.current.Init()
}

// Update implements tea.Model interface - handles navigation and delegates to current view
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle navigation messages first
	if navMsg, ok := msg.(messages.NavigationMsg); ok {
		return a.handleNavigation(navMsg)
	}

	// Handle window size messages centrally
	if wsMsg, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsMsg.Width
		a.height = wsMsg.Height
	}

	var cmd tea.Cmd
	a.current, cmd = a.current.Update(msg)
	return a, cmd
}

// handleNavigation processes navigation messages and manages view transitions
func (a *App) handleNavigation(msg messages.NavigationMsg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.NavigateToDetailsMsg:
		a.logger.Debug().Str("item_id", msg.Item.ItemID).Msg("navigate to details")
		a.viewStack = append(a.viewStack, a.current)
		a.current = views.NewItemDetailView(msg.Item, a.logger)
		return a, tea.Batch(a.current.Init(), a.windowSizeCmd())

	case messages.NavigateBackMsg:
		if len(a.viewStack) == 0 {
			return a, nil
		}
		a.current = a.viewStack[len(a.viewStack)-1]
		a.viewStack = a.viewStack[:len(a.viewStack)-1]
		a.logger.Debug().Int("depth", len(a.viewStack)).Msg("navigate back")
		return a, a.windowSizeCmd()
	}

	return a, nil
}

// windowSizeCmd resends the stored dimensions so a new or restored view can lay out
func (a *App) windowSizeCmd() tea.Cmd {
	if a.width <= 0 || a.height <= 0 {
		return nil
	}
	width, height := a.width, a.height
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: width, Height: height}
	}
}

// View implements tea.Model interface
func (a *App) View() string {
	return a.current.View()
}

// Current is the view on top of the navigation stack
func (a *App) Current() tea.Model {
	return a.current
}

// Depth is the number of views below the current one
func (a *App) Depth() int {
	return len(a.viewStack)
}

// Close stops the view cache
func (a *App) Close() {
	stats := a.viewCache.Stats()
	a.logger.Debug().
		Uint64("hits", stats.Hits).
		Uint64("misses", stats.Misses).
		Uint64("evictions", stats.Evictions).
		Int("cached", a.viewCache.Len()).
		Msg("view cache closed")
	a.viewCache.Close()
}

// Run starts the full-screen program and blocks until the user quits
func (a *App) Run() error {
	defer a.Close()

	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
