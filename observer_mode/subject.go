package observer_mode

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/professor875/design-pattern/global"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Pull mode: observers are told that something changed and read what they
// need from the subject themselves.

type Observable interface {
	AddObserver(obs Observer) error
	RemoveObserver(obs Observer)
	NotifyObservers() error
}

// WeatherData is the read-only side of a station handed to displays.
type WeatherData interface {
	Temperature() float64
	WindSpeed() float64
}

var (
	ErrNilObserver          = errors.New("observer is nil")
	ErrDuplicateObserver    = errors.New("observer already subscribed")
	ErrIncomparableObserver = errors.New("observer type is not comparable")
)

// WeatherStation may be used from several goroutines. Observers are notified
// synchronously, in subscription order, outside the station lock. Concurrent
// SetWeatherData calls run one at a time, so observers never see readings
// from a different call than the one that notified them. Observers must not
// call SetWeatherData from Update.
type WeatherStation struct {
	setMu       sync.Mutex
	mu          sync.RWMutex
	observers   []Observer
	temperature float64
	windSpeed   float64
}

func NewWeatherStation() *WeatherStation {
	return &WeatherStation{}
}

// AddObserver subscribes obs. Each observer identity may be subscribed once.
func (s *WeatherStation) AddObserver(obs Observer) error {
	if obs == nil {
		return ErrNilObserver
	}
	if !identityComparable(obs) {
		return fmt.Errorf("%w: %T", ErrIncomparableObserver, obs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.observers {
		if same(o, obs) {
			global.GLog.Warn("duplicate observer rejected", zap.String("observer", fmt.Sprintf("%T", obs)))
			return ErrDuplicateObserver
		}
	}
	s.observers = append(s.observers, obs)
	global.GLog.Debug("observer added", zap.String("observer", fmt.Sprintf("%T", obs)), zap.Int("count", len(s.observers)))
	return nil
}

// RemoveObserver drops every subscription of obs. Unknown observers are ignored.
func (s *WeatherStation) RemoveObserver(obs Observer) {
	if obs == nil || !identityComparable(obs) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		if !same(o, obs) {
			kept = append(kept, o)
		}
	}
	if len(kept) != len(s.observers) {
		global.GLog.Debug("observer removed", zap.String("observer", fmt.Sprintf("%T", obs)), zap.Int("count", len(kept)))
	}
	s.observers = kept
}

// identityComparable reports whether obs can be compared by identity. The static type
// is not enough: a struct may carry a func or slice in an interface field.
func identityComparable(obs Observer) (ok bool) {
	if !reflect.TypeOf(obs).Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return obs == obs
}

// same treats a pair that cannot be compared as different observers.
func same(a, b Observer) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// Observers returns a snapshot of the subscription list.
func (s *WeatherStation) Observers() []Observer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	return observers
}

// NotifyObservers calls Update on every subscribed observer. A failing or
// panicking observer does not stop the pass; all failures are returned together.
func (s *WeatherStation) NotifyObservers() error {
	var errs error
	for i, obs := range s.Observers() {
		if err := update(obs); err != nil {
			global.GLog.Warn("observer update failed",
				zap.Int("index", i),
				zap.String("observer", fmt.Sprintf("%T", obs)),
				zap.Error(err),
			)
			errs = multierr.Append(errs, fmt.Errorf("observer %d (%T): %w", i, obs, err))
		}
	}
	return errs
}

func update(obs Observer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in update: %v", r)
		}
	}()
	return obs.Update()
}

// SetWeatherData stores both readings at once and then notifies every observer.
func (s *WeatherStation) SetWeatherData(temperature, windSpeed float64) error {
	s.setMu.Lock()
	defer s.setMu.Unlock()

	s.mu.Lock()
	s.temperature = temperature
	s.windSpeed = windSpeed
	s.mu.Unlock()

	global.GLog.Info("weather data updated", zap.Float64("temperature", temperature), zap.Float64("wind_speed", windSpeed))
	return s.NotifyObservers()
}

func (s *WeatherStation) Temperature() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.temperature
}

func (s *WeatherStation) WindSpeed() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windSpeed
}

// Readings returns temperature and wind speed from the same update.
func (s *WeatherStation) Readings() (temperature, windSpeed float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.temperature, s.windSpeed
}
