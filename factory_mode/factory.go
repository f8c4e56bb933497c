package factory_mode

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/professor875/design-pattern/global"
	"go.uber.org/zap"
)

type Kind string

// 支持的通知类型
const (
	KindEmail Kind = "email"
	KindSMS   Kind = "sms"
)

// NewNotificationFunc builds a notification that writes to out.
type NewNotificationFunc func(out io.Writer) Notification

var newNotificationFuncMap map[Kind]NewNotificationFunc

func init() {
	newNotificationFuncMap = map[Kind]NewNotificationFunc{
		KindEmail: NewEmailNotification,
		KindSMS:   NewSMSNotification,
	}
}

var ErrUnsupportedKind = errors.New("notification type not supported")

type KindError struct {
	Kind string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupportedKind, e.Kind)
}

func (e *KindError) Unwrap() error {
	return ErrUnsupportedKind
}

func IsUnsupportedKind(err error) bool {
	return errors.Is(err, ErrUnsupportedKind)
}

// Kinds lists the supported notification kinds in sorted order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(newNotificationFuncMap))
	for k := range newNotificationFuncMap {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// NotificationFactory holds no per-call state; every notification it creates
// writes to the same output.
type NotificationFactory struct {
	out io.Writer
}

func NewNotificationFactory(out io.Writer) *NotificationFactory {
	return &NotificationFactory{out: out}
}

// CreateNotification returns a fresh notification for kind. Keys are matched
// exactly; anything outside Kinds() yields a *KindError.
func (f *NotificationFactory) CreateNotification(kind string) (Notification, error) {
	newFunc, ok := newNotificationFuncMap[Kind(kind)]
	if !ok {
		global.GLog.Warn("unsupported notification kind", zap.String("kind", kind))
		return nil, &KindError{Kind: kind}
	}
	return newFunc(f.out), nil
}
