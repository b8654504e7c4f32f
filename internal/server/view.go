package server

import (
	"sync"

	"github.com/nguyentranbao-ct/catalog-console/internal/usecase"
)

// ConsoleView keeps what the console asked the UI to show until the next
// page render picks it up. Notifications are shown once.
type ConsoleView struct {
	mu            sync.Mutex
	modal         usecase.ModalKind
	notifications []usecase.Notification
	loading       bool
}

func NewConsoleView() *ConsoleView {
	return &ConsoleView{}
}

func (v *ConsoleView) ShowModal(kind usecase.ModalKind) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modal = kind
}

func (v *ConsoleView) HideModal() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modal = usecase.ModalNone
}

func (v *ConsoleView) Notify(n usecase.Notification) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notifications = append(v.notifications, n)
}

func (v *ConsoleView) SetLoading(loading bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = loading
}

func (v *ConsoleView) Modal() usecase.ModalKind {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.modal
}

func (v *ConsoleView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// TakeNotifications returns the pending notifications and forgets them.
func (v *ConsoleView) TakeNotifications() []usecase.Notification {
	v.mu.Lock()
	defer v.mu.Unlock()
	taken := v.notifications
	v.notifications = nil
	return taken
}
