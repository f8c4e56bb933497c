package decorator_mode

// Decorator wraps a coffee, adding one layer.
type Decorator func(Coffee) Coffee

func WithMilk(c Coffee) Coffee {
	return NewMilkDecorator(c)
}

func WithSugar(c Coffee) Coffee {
	return NewSugarDecorator(c)
}

func WithCondiment(name string, surcharge float64) Decorator {
	return func(c Coffee) Coffee {
		return NewCondimentDecorator(c, name, surcharge)
	}
}

// Chain applies decorators in order: the first one wraps base directly and the
// last one ends up outermost.
func Chain(base Coffee, decorators ...Decorator) Coffee {
	c := base
	for _, d := range decorators {
		c = d(c)
	}
	return c
}
