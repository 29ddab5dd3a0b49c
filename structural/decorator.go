package structural

// Notifier is the capability every decorator preserves.
type Notifier interface {
	Notify(msg string) []string
}

// EmailNotifier is the undecorated base component.
type EmailNotifier struct {
	Address string
}

// Notify delivers by email only.
func (e EmailNotifier) Notify(msg string) []string {
	return []string{"email to " + e.Address + ": " + msg}
}

// SMSDecorator adds SMS delivery on top of any Notifier.
type SMSDecorator struct {
	Wrapped Notifier
	Number  string
}

// Notify delegates to the wrapped notifier, then appends its own channel.
func (d SMSDecorator) Notify(msg string) []string {
	return append(d.Wrapped.Notify(msg), "sms to "+d.Number+": "+msg)
}

// SlackDecorator adds Slack delivery on top of any Notifier.
type SlackDecorator struct {
	Wrapped Notifier
	Channel string
}

// Notify delegates to the wrapped notifier, then appends its own channel.
func (d SlackDecorator) Notify(msg string) []string {
	return append(d.Wrapped.Notify(msg), "slack to "+d.Channel+": "+msg)
}
