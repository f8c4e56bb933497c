package factory_mode

import (
	"fmt"
	"io"

	"github.com/professor875/design-pattern/global"
	"go.uber.org/zap"
)

// 通知是一个接口，不同的渠道各自实现 Send

type Notification interface {
	Send(message string) error
}

type EmailNotification struct {
	out io.Writer
}

func NewEmailNotification(out io.Writer) Notification {
	return &EmailNotification{out: out}
}

func (n *EmailNotification) Send(message string) error {
	return send(n.out, KindEmail, "Sending Email: ", message)
}

type SMSNotification struct {
	out io.Writer
}

func NewSMSNotification(out io.Writer) Notification {
	return &SMSNotification{out: out}
}

func (n *SMSNotification) Send(message string) error {
	return send(n.out, KindSMS, "Sending SMS: ", message)
}

func send(out io.Writer, kind Kind, prefix, message string) error {
	if _, err := fmt.Fprintf(out, "%s%s\n", prefix, message); err != nil {
		global.GLog.Error("notification send failed", zap.String("kind", string(kind)), zap.Error(err))
		return fmt.Errorf("send %s notification: %w", kind, err)
	}
	global.GLog.Debug("notification sent", zap.String("kind", string(kind)), zap.Int("length", len(message)))
	return nil
}
