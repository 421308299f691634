package rpcchannel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	platformgrpc "github.com/louisbranch/boardbots/internal/platform/grpc"
	gogrpc "google.golang.org/grpc"
)

func countingConnector(count *atomic.Int32) platformgrpc.Connector {
	return platformgrpc.ConnectorFunc(func(target string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
		count.Add(1)
		return gogrpc.NewClient(target, opts...)
	})
}

func TestGetReturnsSameHandle(t *testing.T) {
	t.Parallel()

	var built atomic.Int32
	ch := New(Config{Addr: "backend:50051", Mode: ModeDevelopment, Connector: countingConnector(&built)})
	defer ch.Close()

	first, err := ch.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	second, err := ch.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if first != second {
		t.Fatal("Get() returned different handles")
	}
	if built.Load() != 1 {
		t.Fatalf("constructions = %d, want 1", built.Load())
	}
}

func TestGetConcurrentFirstCallsBuildOnce(t *testing.T) {
	t.Parallel()

	var built atomic.Int32
	ch := New(Config{Addr: "backend:50051", Mode: ModeDevelopment, Connector: countingConnector(&built)})
	defer ch.Close()

	const callers = 32
	handles := make([]*gogrpc.ClientConn, callers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			conn, err := ch.Get()
			if err != nil {
				t.Errorf("Get() error = %v", err)
				return
			}
			handles[i] = conn
		}()
	}
	close(start)
	wg.Wait()

	if built.Load() != 1 {
		t.Fatalf("constructions = %d, want 1", built.Load())
	}
	for i := 1; i < callers; i++ {
		if handles[i] != handles[0] {
			t.Fatalf("handle %d differs from handle 0", i)
		}
	}
}

func TestGetCachesConstructionError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	connector := platformgrpc.ConnectorFunc(func(string, ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
		calls.Add(1)
		return nil, errors.New("bad target")
	})
	ch := New(Config{Addr: "backend:50051", Connector: connector})

	if _, err := ch.Get(); err == nil {
		t.Fatal("expected construction error")
	}
	if _, err := ch.Get(); err == nil {
		t.Fatal("expected cached construction error")
	}
	if calls.Load() != 1 {
		t.Fatalf("constructions = %d, want 1", calls.Load())
	}
}

func TestGetRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}).Get(); err == nil {
		t.Fatal("expected missing address error")
	}
}

func TestTransportModeSelection(t *testing.T) {
	t.Parallel()

	cases := []struct {
		cfg  Config
		want platformgrpc.TransportMode
	}{
		{Config{Mode: ModeDevelopment}, platformgrpc.TransportInsecure},
		{Config{Mode: ModeDevelopment, TLS: true}, platformgrpc.TransportInsecure},
		{Config{Mode: ModeProduction}, platformgrpc.TransportInsecure},
		{Config{Mode: ModeProduction, TLS: true}, platformgrpc.TransportTLS},
	}
	for _, tc := range cases {
		if got := tc.cfg.TransportMode(); got != tc.want {
			t.Fatalf("TransportMode(%+v) = %q, want %q", tc.cfg, got, tc.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	if ParseMode(" Development ") != ModeDevelopment {
		t.Fatal("expected development mode")
	}
	if ParseMode("dev") != ModeDevelopment {
		t.Fatal("expected dev alias")
	}
	if ParseMode("staging") != ModeProduction {
		t.Fatal("expected non-development modes to be production")
	}
}

func TestCloseBeforeGet(t *testing.T) {
	t.Parallel()

	ch := New(Config{Addr: "backend:50051"})
	if err := ch.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := ch.Get(); err == nil {
		t.Fatal("expected closed channel to refuse Get")
	}
}

func TestInvokeDefersConstruction(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	connector := platformgrpc.ConnectorFunc(func(string, ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
		calls.Add(1)
		return nil, errors.New("bad target")
	})
	ch := New(Config{Addr: "backend:50051", Connector: connector})
	if calls.Load() != 0 {
		t.Fatalf("constructions before first call = %d, want 0", calls.Load())
	}

	err := ch.Invoke(context.Background(), "/BoardbotsService/GetGames", nil, nil)
	if err == nil {
		t.Fatal("expected construction error from Invoke")
	}
	if _, err := ch.NewStream(context.Background(), &gogrpc.StreamDesc{}, "/BoardbotsService/GetGames"); err == nil {
		t.Fatal("expected construction error from NewStream")
	}
	if calls.Load() != 1 {
		t.Fatalf("constructions = %d, want 1", calls.Load())
	}
}
