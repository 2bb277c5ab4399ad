package term

// BellProvider handles BEL (0x07) events. BEL has no grid effect, only a
// host-visible one, so it is surfaced as a hook rather than touching grid
// state at all.
type BellProvider interface {
	Ring()
}

// NoopBell ignores bell events; the default when no host UI is attached.
type NoopBell struct{}

func (NoopBell) Ring() {}

// TitleProvider is notified when the window title changes via OSC 0/2,
// and when a title is restored from the stack (CSI 23 t). The stack itself
// is kept by Terminal, not by the provider.
type TitleProvider interface {
	SetTitle(title string)
}

// NoopTitle ignores title changes.
type NoopTitle struct{}

func (NoopTitle) SetTitle(title string) {}

// ClipboardProvider abstracts the host clipboard (spec.md: "Clipboard {
// get, set }"). Reads and writes happen only from the coordinator.
type ClipboardProvider interface {
	Get() string
	Set(data string)
}

// NoopClipboard makes copy/paste a no-op, per spec.md's error-handling
// note that clipboard failure is swallowed.
type NoopClipboard struct{}

func (NoopClipboard) Get() string     { return "" }
func (NoopClipboard) Set(data string) {}

var _ BellProvider = NoopBell{}
var _ TitleProvider = NoopTitle{}
var _ ClipboardProvider = NoopClipboard{}
