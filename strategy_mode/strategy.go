package strategy_mode

import (
	"errors"
	"fmt"
	"io"

	"github.com/professor875/design-pattern/global"
	"github.com/professor875/design-pattern/util"
	"go.uber.org/zap"
)

type PaymentStrategy interface {
	Pay(amount float64) error
}

// Method is the configuration name of a payment strategy.
type Method string

const (
	MethodPayPal       Method = "paypal"
	MethodCreditCard   Method = "credit-card"
	MethodBankTransfer Method = "bank-transfer"
)

var ErrUnknownMethod = errors.New("unknown payment method")

// NewStrategy maps a configured method name to its strategy.
func NewStrategy(method Method, out io.Writer) (PaymentStrategy, error) {
	switch method {
	case MethodPayPal:
		return NewPayPalPayment(out), nil
	case MethodCreditCard:
		return NewCreditCardPayment(out), nil
	case MethodBankTransfer:
		return NewBankTransferPayment(out), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}

type PayPalPayment struct {
	out io.Writer
}

func NewPayPalPayment(out io.Writer) *PayPalPayment {
	return &PayPalPayment{out: out}
}

func (p *PayPalPayment) Method() string { return "PayPal" }

func (p *PayPalPayment) Pay(amount float64) error {
	return pay(p.out, p.Method(), amount)
}

type CreditCardPayment struct {
	out io.Writer
}

func NewCreditCardPayment(out io.Writer) *CreditCardPayment {
	return &CreditCardPayment{out: out}
}

func (p *CreditCardPayment) Method() string { return "Credit Card" }

func (p *CreditCardPayment) Pay(amount float64) error {
	return pay(p.out, p.Method(), amount)
}

type BankTransferPayment struct {
	out io.Writer
}

func NewBankTransferPayment(out io.Writer) *BankTransferPayment {
	return &BankTransferPayment{out: out}
}

func (p *BankTransferPayment) Method() string { return "Bank Transfer" }

func (p *BankTransferPayment) Pay(amount float64) error {
	return pay(p.out, p.Method(), amount)
}

// pay writes "Paid <amount> using <method>."
func pay(out io.Writer, method string, amount float64) error {
	if _, err := fmt.Fprintf(out, "Paid %s using %s.\n", util.FormatNumber(amount), method); err != nil {
		return fmt.Errorf("pay with %s: %w", method, err)
	}
	global.GLog.Info("payment done", zap.String("method", method), zap.Float64("amount", amount))
	return nil
}
