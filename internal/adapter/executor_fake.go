// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

// Transcripts replayed by [FakeExecutor]. They carry the same spinner
// frames ("\r-\r\\\r|\r/") the real CLI writes before its message.
const (
	FakeAccountLoggedIn = "\r-\r  \r\r-\r\\\r|\r/\r  \r" +
		"Account Information:\n" +
		"Email Address: mock@mail.com\n" +
		"VPN Service: Active (Expires on Jul 15th, 2025)\n"
	FakeNotLoggedIn = "\r-\r  \r\r-\r  \r" +
		"You are not logged in.\n"
	FakeAlreadyLoggedIn = "\r-\r  \r\r-\r  \r" +
		"You are already logged in.\n"
	FakeLoginURL = "https://api.nordvpn.com/v1/users/oauth/login-redirect?attempt=mock-uuid"
	FakeLogin    = "\r-\r  \r\r-\r  \r\r-\r\\\r|\r  \r" +
		"Continue in the browser: " + FakeLoginURL + "\n" +
		"\r\r"
	FakeLogout = "\r-\r  \r\r-\r\\\r|\r/\r-\r\\\r|\r/\r  \r" +
		"You are logged out.\n"
	FakeStatusDisconnected = "\r-\r  \r\r-\r  \r" +
		"Status: Disconnected\n"
	FakeCountries = "\r-\r  \r\r-\r  \r" +
		"Mock_Country_1\t\t" +
		"Mock_Country_2\t\t" +
		"Mock_Country_3\t\t\t" +
		"Mock_Country_4\n"
	FakeCities = "\r-\r  \r\r-\r  \r" +
		"Mock_City_1\t\tMock_City_2\n"
	FakeDisconnect = "\r-\r  \r\r-\r\\\r|\r/\r  \r" +
		"You are disconnected from NordVPN.\n" +
		"How would you rate your connection quality on a scale from 1 (poor) to 5 " +
		"(excellent)? Type 'nordvpn rate [1-5]'.\n" +
		"\r\r"
	FakeNotConnected = "\r-\r  \r\r-\r  \r" +
		"You are not connected to NordVPN.\n\r\r"

	// FakeDefaultCountry and FakeDefaultCity are reported while connected
	// through a quick-connect (empty location).
	FakeDefaultCountry = "Mock_Country"
	FakeDefaultCity    = "Mock_City"
)

// FakeCall is one invocation recorded by [FakeExecutor].
type FakeCall struct {
	Command string
	Args    []string
}

// FakeExecutor is a deterministic in-memory [CommandExecutor]. It starts in
// the given login and connection state, and successful login, logout,
// connect and disconnect commands move it to the state the real CLI would
// be in afterwards. Logging in completes immediately, as if the browser
// step had already been done.
//
// It is safe for concurrent use.
type FakeExecutor struct {
	mu sync.Mutex

	loggedIn  bool
	connected bool
	location  string

	calls []FakeCall
}

// NewFakeExecutor creates a FakeExecutor. connected without loggedIn is
// normalized to disconnected, since the real CLI cannot be in that state.
func NewFakeExecutor(loggedIn, connected bool) *FakeExecutor {
	return &FakeExecutor{loggedIn: loggedIn, connected: connected && loggedIn}
}

// SetLoggedIn changes the login state. Logging out also disconnects.
func (f *FakeExecutor) SetLoggedIn(loggedIn bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loggedIn = loggedIn
	if !loggedIn {
		f.connected = false
	}
}

// SetConnected changes the connection state. It is ignored while logged out.
func (f *FakeExecutor) SetConnected(connected bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = connected && f.loggedIn
}

// LoggedIn reports the current login state.
func (f *FakeExecutor) LoggedIn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loggedIn
}

// Connected reports the current connection state.
func (f *FakeExecutor) Connected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

// Calls returns a copy of every invocation so far, in order.
func (f *FakeExecutor) Calls() []FakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// CommandNames returns only the subcommand names of [FakeExecutor.Calls].
func (f *FakeExecutor) CommandNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		names = append(names, c.Command)
	}
	return names
}

// Reset forgets the recorded invocations.
func (f *FakeExecutor) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// Execute implements [CommandExecutor].
func (f *FakeExecutor) Execute(_ context.Context, name string, args ...string) (models.CommandResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, FakeCall{Command: name, Args: slices.Clone(args)})

	output, exitCode := f.respond(name, args)

	return models.CommandResult{
		Command:  name,
		Args:     args,
		Output:   []byte(output),
		ExitCode: exitCode,
		Duration: time.Millisecond,
	}, nil
}

func (f *FakeExecutor) respond(name string, args []string) (string, int) {
	switch name {
	case "account":
		if !f.loggedIn {
			return FakeNotLoggedIn, 1
		}
		return FakeAccountLoggedIn, 0

	case "login":
		if f.loggedIn {
			return FakeAlreadyLoggedIn, 1
		}
		f.loggedIn = true
		return FakeLogin, 0

	case "logout":
		if !f.loggedIn {
			return FakeNotLoggedIn, 1
		}
		f.loggedIn = false
		f.connected = false
		f.location = ""
		return FakeLogout, 0

	case "status":
		if !f.connected {
			return FakeStatusDisconnected, 0
		}
		return f.statusConnected(), 0

	case "countries":
		return FakeCountries, 0

	case "cities":
		if len(args) != 1 {
			return "Usage: nordvpn cities <country>\n", 1
		}
		return FakeCities, 0

	case "connect":
		if !f.loggedIn {
			return FakeNotLoggedIn, 1
		}
		f.connected = true
		f.location = ""
		if len(args) > 0 {
			f.location = args[0]
		}
		return f.connectOutput(), 0

	case "disconnect":
		if !f.loggedIn {
			return FakeNotLoggedIn, 1
		}
		if !f.connected {
			return FakeNotConnected, 0
		}
		f.connected = false
		f.location = ""
		return FakeDisconnect, 0

	default:
		return "Command '" + name + "' doesn't exist.\n", 1
	}
}

func (f *FakeExecutor) country() string {
	if f.location == "" {
		return FakeDefaultCountry
	}
	return f.location
}

func (f *FakeExecutor) connectOutput() string {
	server := f.country() + " #123 (mc123.nordvpn.com)"
	return "\r-\r  \r\r-\r\\\r  \r" +
		"Connecting to " + server + "\n" +
		"\r-\r\\\r|\r/\r-\r\\\r  \rYou are connected to " + server + "!\n" +
		"\r-\r  \r"
}

func (f *FakeExecutor) statusConnected() string {
	return "\r-\r  \r\r-\r  \r" +
		"Status: Connected\n" +
		"Hostname: mc123.nordvpn.com\n" +
		"IP: 123.123.123.1\n" +
		"Country: " + f.country() + "\n" +
		"City: " + FakeDefaultCity + "\n" +
		"Current technology: NORDLYNX\n" +
		"Current protocol: UDP\n" +
		"Transfer: 39.91 KiB received, 48.27 KiB sent\n" +
		"Uptime: 18 seconds\n"
}
