package observer_mode

import (
	"fmt"
	"io"

	"github.com/professor875/design-pattern/util"
)

type Observer interface {
	Update() error
}

// 观察者实例：只持有气象站的只读引用，通知到来时自己拉取需要的数据

type PhoneDisplay struct {
	station WeatherData
	out     io.Writer
}

func NewPhoneDisplay(station WeatherData, out io.Writer) *PhoneDisplay {
	return &PhoneDisplay{station: station, out: out}
}

func (d *PhoneDisplay) Register(sub Observable) error {
	return sub.AddObserver(d)
}

func (d *PhoneDisplay) Update() error {
	_, err := fmt.Fprintf(d.out, "Phone Display: Temperature = %s°C\n", util.FormatNumber(d.station.Temperature()))
	return err
}

type TVDisplay struct {
	station WeatherData
	out     io.Writer
}

func NewTVDisplay(station WeatherData, out io.Writer) *TVDisplay {
	return &TVDisplay{station: station, out: out}
}

func (d *TVDisplay) Register(sub Observable) error {
	return sub.AddObserver(d)
}

func (d *TVDisplay) Update() error {
	_, err := fmt.Fprintf(d.out, "TV Display: Wind Speed = %s km/h\n", util.FormatNumber(d.station.WindSpeed()))
	return err
}
