//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	appName = "picsearch"

	busName   = "org.freedesktop.Notifications"
	busPath   = "/org/freedesktop/Notifications"
	notifyFn  = busName + ".Notify"
	dismissFn = busName + ".CloseNotification"
)

// caller is the part of dbus.BusObject the notifier uses.
type caller interface {
	Call(method string, flags dbus.Flags, args ...any) *dbus.Call
}

type dbusNotifier struct {
	obj caller
}

// New connects to the session bus. Without one it returns a notifier that
// drops everything, so callers need no special case.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Disabled(), nil //nolint:nilerr // no session bus means no desktop
	}
	return &dbusNotifier{obj: conn.Object(busName, busPath)}, nil
}

// Notify shows n and returns the server's id for it.
func (d *dbusNotifier) Notify(n Notification) (uint32, error) {
	call := d.obj.Call(notifyFn, 0,
		appName,
		n.ReplacesID,
		n.Icon,
		n.Title,
		n.Body,
		[]string{}, // no actions
		hints(n),
		n.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Close withdraws a notification still on screen.
func (d *dbusNotifier) Close(id uint32) error {
	return d.obj.Call(dismissFn, 0, id).Err
}

func hints(n Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(appName),
	}
	if n.Category != "" {
		h["category"] = dbus.MakeVariant(n.Category)
	}
	return h
}
