package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"go.uber.org/zap"

	"github.com/muurk/radioctl/internal/logging"
	"github.com/muurk/radioctl/internal/radio"
)

// Title is the notification title for every message the tool sends.
const Title = "Router Radio Controller"

// notifyFunc delivers one notification; swappable for tests.
var notifyFunc = beeep.Notify

// Notifier sends desktop notifications about run outcomes. Delivery is
// best effort: a machine without a notification daemon degrades to a
// debug log line, never to a failed run.
type Notifier struct {
	// Enabled gates all delivery. The zero value sends nothing.
	Enabled bool
}

// New creates a Notifier.
func New(enabled bool) Notifier {
	return Notifier{Enabled: enabled}
}

// ToggleResult announces the outcome of a toggle invocation.
func (n Notifier) ToggleResult(desired radio.Desired, result radio.Result) {
	switch result {
	case radio.ResultSuccess:
		n.send(fmt.Sprintf("2.4GHz radio turned %s", desired))
	case radio.ResultAlreadyOn:
		n.send("2.4GHz radio was already on")
	case radio.ResultAlreadyOff:
		n.send("2.4GHz radio was already off")
	case radio.ResultNotConnected:
		n.send("Not connected to the router network")
	case radio.ResultVPNConnected:
		n.send("Disconnect the VPN before changing the radio")
	default:
		n.send(fmt.Sprintf("Turning the 2.4GHz radio %s failed", desired))
	}
}

// Status announces the outcome of a status invocation.
func (n Notifier) Status(status radio.Status) {
	switch status {
	case radio.StatusRadioOn:
		n.send("2.4GHz radio is on")
	case radio.StatusRadioOff:
		n.send("2.4GHz radio is off")
	case radio.StatusNotConnected:
		n.send("Not connected to the router network")
	case radio.StatusVPNConnected:
		n.send("Disconnect the VPN before checking the radio")
	default:
		n.send("Radio status check failed")
	}
}

func (n Notifier) send(message string) {
	if !n.Enabled {
		return
	}
	if err := notifyFunc(Title, message, ""); err != nil {
		logging.Debug("Desktop notification not delivered",
			zap.String("message", message), zap.Error(err))
	}
}
