// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-vpn-pilot/internal/parser"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

// refreshInterval is how often the status is re-read while idle.
const refreshInterval = 15 * time.Second

type page int

const (
	pageMain page = iota
	pageHistory
	pageBuildInfo
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayConfirmLogout
	overlayConfirmQuit
	overlayError
)

// model is the whole terminal UI. Every service call runs as a tea.Cmd;
// busy is set while one is in flight and blocks starting another, so the UI
// never issues two CLI commands at once.
type model struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	mode      string
	copyText  func(string) error

	state  models.SessionState
	loaded bool

	countries locationList
	cities    locationList
	// country is the country whose cities are listed; empty shows countries.
	country  string
	selected string
	history  locationList
	loginURL string

	page    page
	overlay overlayKind
	errMsg  string
	status  string

	busy    bool
	spinner spinner.Model

	width  int
	height int

	quitting bool
}

func newModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, mode string) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		mode:      mode,
		copyText:  clipboard.WriteAll,
		spinner:   s,
		// Init starts the first refresh
		busy: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRefresh(), cmdTick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		if m.busy || m.overlay != overlayNone {
			return m, cmdTick()
		}
		m.busy = true
		return m, tea.Batch(cmdTick(), m.cmdRefresh())

	case sessionLoadedMsg:
		return m.onSessionLoaded(msg)

	case countriesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.countries.set(msg.items)
		if c := connectedCountry(m.state); c != "" {
			m.countries.focus(c)
		}
		return m, nil

	case citiesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.country = msg.country
		m.cities.set(msg.items)
		if !m.cities.focus(m.selected) {
			m.cities.focus(connectedCity(m.state))
		}
		return m, nil

	case opDoneMsg:
		return m.onOpDone(msg)

	case historyLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.history.set(msg.items)
		m.page = pageHistory
		return m, nil

	case locationResolvedMsg:
		m.busy = false
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.page = pageMain
		m.selected = msg.location
		m.countries.focus(msg.country)
		if msg.country == msg.location {
			m.country = ""
			m.cities.set(nil)
			return m, nil
		}
		m.busy = true
		return m, m.cmdLoadCities(msg.country)

	case copiedMsg:
		if msg.err != nil {
			return m.showError(msg.err), nil
		}
		m.status = "Copied " + msg.what
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m model) onSessionLoaded(msg sessionLoadedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.loaded = true
	m.state = msg.state

	if !m.state.LoggedIn {
		m.countries.set(nil)
		m.cities.set(nil)
		m.country = ""
		m.selected = ""
		return m, nil
	}

	if len(m.countries.items) == 0 {
		m.busy = true
		return m, m.cmdLoadCountries()
	}
	return m, nil
}

func (m model) onOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil {
		m = m.showError(msg.err)
	} else {
		m.status = opStatus(msg.op)
		switch msg.op {
		case models.OperationLogin:
			if url, ok := parser.LoginURL(msg.output); ok {
				m.loginURL = url
				m.status += ". Continue in the browser, c copies the link"
			}
		case models.OperationLogout:
			m.loginURL = ""
		}
	}

	// the outcome is only known after re-reading the session
	m.busy = true
	return m, m.cmdRefresh()
}

func opStatus(op string) string {
	switch op {
	case models.OperationLogin:
		return "Login started"
	case models.OperationLogout:
		return "Logged out"
	case models.OperationConnect:
		return "Connected"
	case models.OperationDisconnect:
		return "Disconnected"
	default:
		return "Done"
	}
}

func (m model) showError(err error) model {
	m.errMsg = humanizeError(err)
	m.overlay = overlayError
	return m
}

// start runs cmd unless another call is still in flight.
func (m model) start(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.busy {
		m.status = "Busy, please wait"
		return m, nil
	}
	m.busy = true
	m.status = ""
	return m, cmd
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayError:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = overlayNone
			m.errMsg = ""
		}
		return m, nil

	case overlayConfirmQuit:
		switch {
		case key.Matches(msg, keys.yes):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.no):
			m.overlay = overlayNone
		}
		return m, nil

	case overlayConfirmLogout:
		switch {
		case key.Matches(msg, keys.yes):
			m.overlay = overlayNone
			return m.start(m.cmdLogout())
		case key.Matches(msg, keys.no):
			m.overlay = overlayNone
		}
		return m, nil
	}

	switch m.page {
	case pageBuildInfo:
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.page = pageMain
		}
		return m, nil
	case pageHistory:
		return m.updateHistoryKeys(msg)
	}

	return m.updateMainKeys(msg)
}

func (m model) updateHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc, keys.history, keys.left):
		m.page = pageMain
	case key.Matches(msg, keys.up):
		m.history.moveUp()
	case key.Matches(msg, keys.down):
		m.history.moveDown()
	case key.Matches(msg, keys.enter):
		if location, ok := m.history.current(); ok {
			return m.start(m.cmdResolve(location))
		}
	case key.Matches(msg, keys.quit):
		m.overlay = overlayConfirmQuit
	}
	return m, nil
}

func (m model) updateMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.overlay = overlayConfirmQuit

	case key.Matches(msg, keys.up):
		m.activeList().moveUp()

	case key.Matches(msg, keys.down):
		m.activeList().moveDown()

	case key.Matches(msg, keys.enter, keys.right):
		if !m.state.LoggedIn {
			return m, nil
		}
		if m.country != "" {
			if city, ok := m.cities.current(); ok {
				m.selected = city
			}
			return m, nil
		}
		if country, ok := m.countries.current(); ok {
			m.selected = country
			return m.start(m.cmdLoadCities(country))
		}

	case key.Matches(msg, keys.left, keys.esc):
		if m.country != "" {
			m.country = ""
			m.cities.set(nil)
		}

	case key.Matches(msg, keys.connect):
		switch {
		case !m.state.LoggedIn:
			m.status = "Log in first"
		case isConnected(m.state):
			m.status = "Already connected, disconnect first"
		case m.selected == "":
			m.status = "Select a country or city first"
		default:
			return m.start(m.cmdConnect(m.selected))
		}

	case key.Matches(msg, keys.disconnect):
		if !isConnected(m.state) {
			m.status = "Not connected"
			return m, nil
		}
		return m.start(m.cmdDisconnect())

	case key.Matches(msg, keys.login):
		if m.state.LoggedIn {
			m.status = "Already logged in"
			return m, nil
		}
		return m.start(m.cmdLogin())

	case key.Matches(msg, keys.logout):
		if !m.state.LoggedIn {
			m.status = "Not logged in"
			return m, nil
		}
		m.overlay = overlayConfirmLogout

	case key.Matches(msg, keys.refresh):
		return m.start(m.cmdRefresh())

	case key.Matches(msg, keys.history):
		return m.start(m.cmdLoadHistory())

	case key.Matches(msg, keys.buildInfo):
		m.page = pageBuildInfo

	case key.Matches(msg, keys.copy):
		switch {
		case isConnected(m.state) && m.state.Status.IP != nil:
			return m, m.cmdCopy(*m.state.Status.IP, "IP address")
		case m.loginURL != "":
			return m, m.cmdCopy(m.loginURL, "login link")
		default:
			m.status = "Nothing to copy"
		}
	}

	return m, nil
}

// activeList is the cities while a country is open, the countries otherwise.
func (m *model) activeList() *locationList {
	if m.country != "" {
		return &m.cities
	}
	return &m.countries
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	switch m.overlay {
	case overlayError:
		return m.place(errorOverlayModel{message: m.errMsg}.View())
	case overlayConfirmQuit:
		return m.place(confirmQuit.View())
	case overlayConfirmLogout:
		return m.place(confirmLogout.View())
	}

	switch m.page {
	case pageBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.mode))
	case pageHistory:
		return appStyle.Render(m.renderHistoryPage())
	default:
		return appStyle.Render(m.renderMain())
	}
}

func (m model) renderMain() string {
	title := titleStyle.Render("go-vpn-pilot")
	if m.busy {
		title += "  " + m.spinner.View()
	}

	out := title + "\n\n" + renderStatusHeader(m.state, m.selected) + "\n\n"

	switch {
	case !m.loaded:
		out += helpStyle.Render("Loading...")
	case !m.state.LoggedIn:
		out += helpStyle.Render("not logged in!")
	case m.country != "":
		out += titleStyle.Render("Cities in "+m.country) + "\n" + m.cities.view(m.listHeight(), connectedCity(m.state))
	default:
		out += titleStyle.Render("Countries") + "\n" + m.countries.view(m.listHeight(), connectedCountry(m.state))
	}

	if m.status != "" {
		out += "\n\n" + statusStyle.Render(m.status)
	}

	return out + "\n\n" + helpStyle.Render(mainHelp)
}

func (m model) listHeight() int {
	if m.height == 0 {
		return 15
	}
	return max(3, m.height-18)
}

func (m model) place(box string) string {
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
