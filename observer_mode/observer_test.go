package observer_mode

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/professor875/design-pattern/global"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recorder struct {
	name  string
	calls *[]string
	err   error
}

func (r *recorder) Update() error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

type panicker struct{}

func (*panicker) Update() error { panic("display unplugged") }

type funcObserver func() error

func (f funcObserver) Update() error { return f() }

func TestNotifyOrderAndRemoval(t *testing.T) {
	var calls []string
	station := NewWeatherStation()
	a := &recorder{name: "A", calls: &calls}
	b := &recorder{name: "B", calls: &calls}
	if err := station.AddObserver(a); err != nil {
		t.Fatal(err)
	}
	if err := station.AddObserver(b); err != nil {
		t.Fatal(err)
	}

	if err := station.NotifyObservers(); err != nil {
		t.Fatalf("NotifyObservers() error = %v", err)
	}
	if strings.Join(calls, ",") != "A,B" {
		t.Errorf("first pass = %v, want [A B]", calls)
	}

	calls = nil
	station.RemoveObserver(b)
	_ = station.NotifyObservers()
	if strings.Join(calls, ",") != "A" {
		t.Errorf("after removal = %v, want [A]", calls)
	}
}

func TestAddObserverRejects(t *testing.T) {
	var calls []string
	station := NewWeatherStation()
	a := &recorder{name: "A", calls: &calls}

	tests := []struct {
		name string
		obs  Observer
		want error
	}{
		{"first subscription", a, nil},
		{"duplicate", a, ErrDuplicateObserver},
		{"nil", nil, ErrNilObserver},
		{"func observer", funcObserver(func() error { return nil }), ErrIncomparableObserver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := station.AddObserver(tt.obs); !errors.Is(err, tt.want) {
				t.Errorf("AddObserver() error = %v, want %v", err, tt.want)
			}
		})
	}

	_ = station.NotifyObservers()
	if len(calls) != 1 {
		t.Errorf("duplicate subscription delivered %d notifications, want 1", len(calls))
	}
}

func TestRemoveUnknownObserver(t *testing.T) {
	var calls []string
	station := NewWeatherStation()
	a := &recorder{name: "A", calls: &calls}
	_ = station.AddObserver(a)

	station.RemoveObserver(&recorder{name: "stranger", calls: &calls})
	station.RemoveObserver(nil)
	station.RemoveObserver(funcObserver(func() error { return nil }))

	if got := station.Observers(); len(got) != 1 || got[0] != Observer(a) {
		t.Errorf("Observers() = %v, want [A]", got)
	}
}

func TestNotifyIsolatesFailures(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := global.GLog
	global.GLog = zap.New(core)
	defer func() { global.GLog = prev }()

	var calls []string
	station := NewWeatherStation()
	errBroken := errors.New("broken screen")
	_ = station.AddObserver(&recorder{name: "A", calls: &calls, err: errBroken})
	_ = station.AddObserver(&panicker{})
	_ = station.AddObserver(&recorder{name: "C", calls: &calls})

	err := station.SetWeatherData(10, 5)
	if strings.Join(calls, ",") != "A,C" {
		t.Errorf("calls = %v, want [A C]", calls)
	}
	if !errors.Is(err, errBroken) {
		t.Errorf("error %v should wrap errBroken", err)
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("got %d aggregated errors, want 2: %v", n, err)
	}
	if !strings.Contains(err.Error(), "display unplugged") {
		t.Errorf("error %q should mention the panic", err)
	}
	if logs.FilterMessage("observer update failed").Len() != 2 {
		t.Errorf("got %d warn entries, want 2", logs.Len())
	}
}

type boxed struct {
	hook interface{}
}

func (boxed) Update() error { return nil }

func TestUncomparableDynamicValues(t *testing.T) {
	var calls []string
	station := NewWeatherStation()
	a := &recorder{name: "A", calls: &calls}
	_ = station.AddObserver(a)

	tests := []struct {
		name string
		obs  Observer
	}{
		{"func in field", boxed{hook: func() {}}},
		{"slice in field", boxed{hook: []int{1}}},
		{"map in field", boxed{hook: map[string]int{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 2; i++ {
				if err := station.AddObserver(tt.obs); !errors.Is(err, ErrIncomparableObserver) {
					t.Errorf("AddObserver() #%d error = %v, want ErrIncomparableObserver", i, err)
				}
			}
			station.RemoveObserver(tt.obs)
		})
	}

	if err := station.AddObserver(boxed{hook: 42}); err != nil {
		t.Fatalf("AddObserver(comparable boxed) error = %v", err)
	}
	station.RemoveObserver(boxed{hook: []int{1}})
	station.RemoveObserver(boxed{hook: 42})

	if got := station.Observers(); len(got) != 1 || got[0] != Observer(a) {
		t.Errorf("Observers() = %v, want [A]", got)
	}
}

type pairWatcher struct {
	station *WeatherStation
	mu      sync.Mutex
	seen    map[float64]int
	torn    int
}

func (p *pairWatcher) Update() error {
	t, w := p.station.Readings()
	p.mu.Lock()
	defer p.mu.Unlock()
	if w != t+100 {
		p.torn++
	}
	p.seen[t]++
	return nil
}

func TestConcurrentSetWeatherData(t *testing.T) {
	station := NewWeatherStation()
	watcher := &pairWatcher{station: station, seen: map[float64]int{}}
	_ = station.AddObserver(watcher)

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			_ = station.SetWeatherData(v, v+100)
		}(float64(i))
	}
	wg.Wait()

	if watcher.torn != 0 {
		t.Errorf("%d updates saw mismatched readings", watcher.torn)
	}
	if len(watcher.seen) != n {
		t.Errorf("observer saw %d distinct readings, want %d", len(watcher.seen), n)
	}
	for v, count := range watcher.seen {
		if count != 1 {
			t.Errorf("reading %v seen %d times, want 1", v, count)
		}
	}
}

type selfRemover struct {
	station *WeatherStation
	calls   int
}

func (r *selfRemover) Update() error {
	r.calls++
	r.station.RemoveObserver(r)
	return nil
}

func TestRemovalDuringNotification(t *testing.T) {
	var calls []string
	station := NewWeatherStation()
	remover := &selfRemover{station: station}
	_ = station.AddObserver(remover)
	_ = station.AddObserver(&recorder{name: "B", calls: &calls})

	_ = station.NotifyObservers()
	_ = station.NotifyObservers()

	if remover.calls != 1 {
		t.Errorf("self-removing observer called %d times, want 1", remover.calls)
	}
	if len(calls) != 2 {
		t.Errorf("B called %d times, want 2", len(calls))
	}
}

type readingsRecorder struct {
	station *WeatherStation
	seen    [][2]float64
}

func (p *readingsRecorder) Update() error {
	t, w := p.station.Readings()
	p.seen = append(p.seen, [2]float64{t, w})
	return nil
}

func TestSetWeatherDataVisibleToObservers(t *testing.T) {
	station := NewWeatherStation()
	watcher := &readingsRecorder{station: station}
	_ = station.AddObserver(watcher)

	_ = station.SetWeatherData(25, 15)
	_ = station.SetWeatherData(30, 20)

	want := [][2]float64{{25, 15}, {30, 20}}
	if len(watcher.seen) != len(want) {
		t.Fatalf("seen %v, want %v", watcher.seen, want)
	}
	for i := range want {
		if watcher.seen[i] != want[i] {
			t.Errorf("update %d saw %v, want %v", i, watcher.seen[i], want[i])
		}
	}
	if station.Temperature() != 30 || station.WindSpeed() != 20 {
		t.Errorf("station readings = %v/%v, want 30/20", station.Temperature(), station.WindSpeed())
	}
}

func TestWeatherStationScenario(t *testing.T) {
	var buf bytes.Buffer
	station := NewWeatherStation()
	phone := NewPhoneDisplay(station, &buf)
	tv := NewTVDisplay(station, &buf)
	if err := phone.Register(station); err != nil {
		t.Fatal(err)
	}
	if err := tv.Register(station); err != nil {
		t.Fatal(err)
	}

	if err := station.SetWeatherData(25, 15); err != nil {
		t.Fatal(err)
	}
	station.RemoveObserver(tv)
	if err := station.SetWeatherData(30, 20); err != nil {
		t.Fatal(err)
	}

	want := "Phone Display: Temperature = 25°C\n" +
		"TV Display: Wind Speed = 15 km/h\n" +
		"Phone Display: Temperature = 30°C\n"
	if buf.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestDisplayWriterError(t *testing.T) {
	station := NewWeatherStation()
	_ = station.AddObserver(NewPhoneDisplay(station, failingWriter{}))
	var buf bytes.Buffer
	_ = station.AddObserver(NewTVDisplay(station, &buf))

	err := station.SetWeatherData(1, 2)
	if !errors.Is(err, os.ErrClosed) {
		t.Errorf("SetWeatherData() error = %v, want os.ErrClosed", err)
	}
	if buf.String() != "TV Display: Wind Speed = 2 km/h\n" {
		t.Errorf("TV display wrote %q", buf.String())
	}
}

type counter struct {
	mu sync.Mutex
	n  int
}

func (c *counter) Update() error {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
	return nil
}

func TestConcurrentSubscriptions(t *testing.T) {
	station := NewWeatherStation()
	observers := make([]*counter, 50)
	var wg sync.WaitGroup
	for i := range observers {
		observers[i] = &counter{}
		wg.Add(1)
		go func(c *counter) {
			defer wg.Done()
			_ = station.AddObserver(c)
			_ = station.NotifyObservers()
		}(observers[i])
	}
	wg.Wait()

	if got := len(station.Observers()); got != len(observers) {
		t.Fatalf("subscribed %d observers, want %d", got, len(observers))
	}
	for _, c := range observers[:25] {
		station.RemoveObserver(c)
	}
	if got := len(station.Observers()); got != 25 {
		t.Errorf("after removal %d observers, want 25", got)
	}
}

func ExampleWeatherStation_SetWeatherData() {
	station := NewWeatherStation()
	phone := NewPhoneDisplay(station, os.Stdout)
	tv := NewTVDisplay(station, os.Stdout)
	_ = station.AddObserver(phone)
	_ = station.AddObserver(tv)

	_ = station.SetWeatherData(25, 15)

	station.RemoveObserver(tv)
	_ = station.SetWeatherData(30, 20)
	// Output:
	// Phone Display: Temperature = 25°C
	// TV Display: Wind Speed = 15 km/h
	// Phone Display: Temperature = 30°C
}
