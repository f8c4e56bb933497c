package decorator_mode

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/professor875/design-pattern/global"
	"go.uber.org/zap"
)

var ErrUnknownCondiment = errors.New("condiment not on the menu")

// Menu builds decorator chains from configured prices.
type Menu struct {
	basePrice  float64
	condiments map[string]float64
}

func NewMenu(cfg global.Coffee) *Menu {
	m := &Menu{
		basePrice:  cfg.BasePrice,
		condiments: make(map[string]float64, len(cfg.Condiments)),
	}
	for name, surcharge := range cfg.Condiments {
		m.condiments[strings.ToLower(name)] = surcharge
	}
	return m
}

// Surcharge reports the configured price of a condiment.
func (m *Menu) Surcharge(name string) (float64, bool) {
	s, ok := m.condiments[strings.ToLower(name)]
	return s, ok
}

// Order wraps a fresh SimpleCoffee with the named condiments, innermost first.
func (m *Menu) Order(condiments ...string) (Coffee, error) {
	decorators := make([]Decorator, 0, len(condiments))
	for _, name := range condiments {
		d, err := m.decorator(name)
		if err != nil {
			global.GLog.Warn("reject coffee order", zap.Strings("condiments", condiments), zap.Error(err))
			return nil, err
		}
		decorators = append(decorators, d)
	}
	return Chain(NewSimpleCoffeeWithPrice(m.basePrice), decorators...), nil
}

func (m *Menu) decorator(name string) (Decorator, error) {
	key := strings.ToLower(name)
	surcharge, ok := m.condiments[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCondiment, name)
	}
	switch {
	case key == "milk" && surcharge == MilkSurcharge:
		return WithMilk, nil
	case key == "sugar" && surcharge == SugarSurcharge:
		return WithSugar, nil
	}
	return WithCondiment(displayName(key), surcharge), nil
}

func displayName(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
