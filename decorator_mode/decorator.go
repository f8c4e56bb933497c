package decorator_mode

import (
	"fmt"
	"io"

	"github.com/professor875/design-pattern/global"
	"github.com/professor875/design-pattern/util"
	"go.uber.org/zap"
)

const (
	SimpleCoffeePrice = 5
	MilkSurcharge     = 2
	SugarSurcharge    = 1
)

type Coffee interface {
	Cost() float64
	Description() string
}

// 基础咖啡

type SimpleCoffee struct {
	price float64
}

func NewSimpleCoffee() *SimpleCoffee {
	return &SimpleCoffee{price: SimpleCoffeePrice}
}

// NewSimpleCoffeeWithPrice is used by Menu when the base price is configured.
func NewSimpleCoffeeWithPrice(price float64) *SimpleCoffee {
	return &SimpleCoffee{price: price}
}

func (c *SimpleCoffee) Cost() float64 {
	return c.price
}

func (c *SimpleCoffee) Description() string {
	return "Simple Coffee"
}

// 装饰器基类：默认直接委托给被包装的咖啡

type CoffeeDecorator struct {
	coffee Coffee
}

func NewCoffeeDecorator(coffee Coffee) *CoffeeDecorator {
	return &CoffeeDecorator{coffee: coffee}
}

func (deco *CoffeeDecorator) Cost() float64 {
	return deco.coffee.Cost()
}

func (deco *CoffeeDecorator) Description() string {
	return deco.coffee.Description()
}

// Inner returns the wrapped coffee.
func (deco *CoffeeDecorator) Inner() Coffee {
	return deco.coffee
}

type MilkDecorator struct {
	CoffeeDecorator
}

func NewMilkDecorator(coffee Coffee) *MilkDecorator {
	return &MilkDecorator{CoffeeDecorator{coffee: coffee}}
}

func (deco *MilkDecorator) Cost() float64 {
	return deco.coffee.Cost() + MilkSurcharge
}

func (deco *MilkDecorator) Description() string {
	return deco.coffee.Description() + ", with Milk"
}

type SugarDecorator struct {
	CoffeeDecorator
}

func NewSugarDecorator(coffee Coffee) *SugarDecorator {
	return &SugarDecorator{CoffeeDecorator{coffee: coffee}}
}

func (deco *SugarDecorator) Cost() float64 {
	return deco.coffee.Cost() + SugarSurcharge
}

func (deco *SugarDecorator) Description() string {
	return deco.coffee.Description() + ", with Sugar"
}

// CondimentDecorator adds an arbitrary named condiment, e.g. one that only
// exists in the configured menu.
type CondimentDecorator struct {
	CoffeeDecorator
	Name      string
	Surcharge float64
}

func NewCondimentDecorator(coffee Coffee, name string, surcharge float64) *CondimentDecorator {
	return &CondimentDecorator{
		CoffeeDecorator: CoffeeDecorator{coffee: coffee},
		Name:            name,
		Surcharge:       surcharge,
	}
}

func (deco *CondimentDecorator) Cost() float64 {
	return deco.coffee.Cost() + deco.Surcharge
}

func (deco *CondimentDecorator) Description() string {
	return deco.coffee.Description() + ", with " + deco.Name
}

// Receipt renders "<description> costs $<cost>".
func Receipt(c Coffee) string {
	return c.Description() + " costs $" + util.FormatNumber(c.Cost())
}

// Serve writes the receipt line for c to w.
func Serve(w io.Writer, c Coffee) error {
	global.GLog.Debug("serve coffee",
		zap.String("description", c.Description()),
		zap.Float64("cost", c.Cost()),
	)
	if _, err := fmt.Fprintln(w, Receipt(c)); err != nil {
		return fmt.Errorf("serve coffee: %w", err)
	}
	return nil
}
