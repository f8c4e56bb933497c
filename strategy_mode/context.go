package strategy_mode

import "errors"

var ErrNilStrategy = errors.New("payment strategy is nil")

// PaymentContext decouples callers from the concrete payment method. It adds
// nothing on top of the held strategy.
type PaymentContext struct {
	strategy PaymentStrategy
}

func NewPaymentContext(strategy PaymentStrategy) (*PaymentContext, error) {
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	return &PaymentContext{strategy: strategy}, nil
}

func (c *PaymentContext) SetStrategy(strategy PaymentStrategy) error {
	if strategy == nil {
		return ErrNilStrategy
	}
	c.strategy = strategy
	return nil
}

func (c *PaymentContext) Strategy() PaymentStrategy {
	return c.strategy
}

func (c *PaymentContext) ExecutePayment(amount float64) error {
	return c.strategy.Pay(amount)
}
