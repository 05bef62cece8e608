package factory

import (
	"strings"
	"testing"
)

// stubSink stands in for a configured metrics backend.
type stubSink struct{ URL string }

type stubSinkConf struct {
	URL string `json:"url"`
}

func TestRegistry_CreateDecodesConf(t *testing.T) {
	reg := NewRegistry[*stubSink]()
	if err := reg.Register("influx", func(conf map[string]any) (*stubSink, error) {
		var c stubSinkConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &stubSink{URL: c.URL}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	sink, err := reg.Create(Config{Type: "influx", Conf: map[string]any{"url": "http://localhost:8086"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sink.URL != "http://localhost:8086" {
		t.Fatalf("decoded url = %q", sink.URL)
	}
}

func TestRegistry_UnknownTypeListsRegistered(t *testing.T) {
	reg := NewRegistry[*stubSink]()
	for _, name := range []string{"prometheus", "influx", "nop"} {
		if err := reg.Register(name, func(map[string]any) (*stubSink, error) { return &stubSink{}, nil }); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	_, err := reg.Create(Config{Type: "graphite"})
	if err == nil {
		t.Fatal("expected unknown type error")
	}
	if !strings.Contains(err.Error(), "influx, nop, prometheus") {
		t.Fatalf("error does not list registered types: %v", err)
	}
}

func TestRegistry_RegisterErrors(t *testing.T) {
	reg := NewRegistry[*stubSink]()
	if err := reg.Register("prometheus", func(map[string]any) (*stubSink, error) { return &stubSink{}, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("prometheus", func(map[string]any) (*stubSink, error) { return &stubSink{}, nil }); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := reg.Register("nil", nil); err == nil {
		t.Fatal("expected nil builder error")
	}
}

func TestRegistry_TypesSorted(t *testing.T) {
	reg := NewRegistry[*stubSink]()
	for _, name := range []string{"prometheus", "influx", "nop"} {
		if err := reg.Register(name, func(map[string]any) (*stubSink, error) { return &stubSink{}, nil }); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	got := reg.Types()
	want := []string{"influx", "nop", "prometheus"}
	if len(got) != len(want) {
		t.Fatalf("types = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("types = %v, want %v", got, want)
		}
	}
}

func TestDecode_WrongFieldType(t *testing.T) {
	var c stubSinkConf
	if err := Decode(map[string]any{"url": []int{1}}, &c); err == nil {
		t.Fatal("expected decode error")
	}
}
