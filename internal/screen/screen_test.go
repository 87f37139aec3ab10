package screen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"sync"
	"testing"
	"time"

	"birchwood/internal/content"
	"birchwood/internal/contenttest"
	"birchwood/internal/domain"
	"birchwood/internal/fallback"
	"birchwood/internal/screen"
)

// stubClient answers from canned bodies or fails with a fixed kind.
type stubClient struct {
	bodies map[domain.Resource]string
	fail   map[domain.Resource]domain.ErrorKind
}

func (s stubClient) Get(_ context.Context, req domain.ContentRequest, out any) error {
	if k, ok := s.fail[req.Resource()]; ok {
		return &content.FetchError{Kind: k, Resource: req.Resource()}
	}
	return json.Unmarshal([]byte(s.bodies[req.Resource()]), out)
}

var allKinds = []domain.ErrorKind{
	domain.ErrNetworkUnavailable,
	domain.ErrTimeout,
	domain.ErrServerError,
	domain.ErrMalformedResponse,
}

func resolver(t *testing.T) *fallback.Resolver {
	t.Helper()
	r, err := fallback.New(fallback.Builtin())
	if err != nil {
		t.Fatalf("fallback.New: %v", err)
	}
	return r
}

func failing(res domain.Resource, k domain.ErrorKind) stubClient {
	return stubClient{fail: map[domain.Resource]domain.ErrorKind{res: k}}
}

func TestResourceSource_FallbackEqualsDefaults(t *testing.T) {
	fr := resolver(t)
	wantContact := *fallback.Builtin().Contact
	wantRules := fallback.Builtin().Rules

	for _, k := range allKinds {
		c := screen.New("contact", screen.ResourceSource[domain.ContactInfo](failing(domain.ResourceContact, k), fr, domain.ResourceContact, nil))
		st := c.Mount(context.Background())
		if !reflect.DeepEqual(st.Data, wantContact) {
			t.Fatalf("%s: contact = %+v, want fallback", k, st.Data)
		}
		if st.LastError != k || !st.FromFallback {
			t.Fatalf("%s: LastError=%s FromFallback=%v", k, st.LastError, st.FromFallback)
		}

		r := screen.New("rules", screen.ResourceSource[domain.Rules](failing(domain.ResourceRules, k), fr, domain.ResourceRules, nil))
		if got := r.Mount(context.Background()).Data; !reflect.DeepEqual(got, wantRules) {
			t.Fatalf("%s: rules = %+v, want fallback", k, got)
		}
	}
}

func TestResourceSource_NoFallbackDegrades(t *testing.T) {
	fr := resolver(t)
	for _, k := range allKinds {
		camping := screen.New("camping", screen.ResourceSource[domain.CampingInfo](failing(domain.ResourceCamping, k), fr, domain.ResourceCamping, nil))
		st := camping.Mount(context.Background())
		if !st.Data.Empty() || st.Data.Heading() != "Camping" || st.FromFallback || st.LastError != k {
			t.Fatalf("%s: camping state %+v", k, st)
		}

		fishing := screen.New("fishing", screen.ResourceSource[domain.FishingInfo](failing(domain.ResourceFishing, k), fr, domain.ResourceFishing, nil))
		if fs := fishing.Mount(context.Background()); !fs.Data.Empty() || fs.Data.Heading() != "Fishing" {
			t.Fatalf("%s: fishing state %+v", k, fs)
		}

		gallery := screen.New("gallery", screen.ResourceSource[domain.Images](failing(domain.ResourceGallery, k), fr, domain.ResourceGallery, nil))
		if gs := gallery.Mount(context.Background()); len(gs.Data) != 0 || gs.Phase != screen.PhaseReady {
			t.Fatalf("%s: gallery state %+v", k, gs)
		}
	}
}

func TestResourceSource_SuccessUsesServerData(t *testing.T) {
	client := stubClient{bodies: map[domain.Resource]string{
		domain.ResourceCamping: `{"title":"Live","pitchTypes":["Tent"]}`,
	}}
	c := screen.New("camping", screen.ResourceSource[domain.CampingInfo](client, resolver(t), domain.ResourceCamping, nil))
	st := c.Mount(context.Background())
	if st.Data.Title != "Live" || st.LastError != domain.ErrNone || st.FromFallback {
		t.Fatalf("state = %+v", st)
	}
}

type contactPage struct {
	Contact domain.ContactInfo
	Rules   domain.Rules
}

func joinContact(a screen.Outcome[domain.ContactInfo], b screen.Outcome[domain.Rules]) contactPage {
	return contactPage{Contact: a.Data, Rules: b.Data}
}

func TestJoin_PartialSuccess(t *testing.T) {
	srv := contenttest.New(t)
	srv.Fail(domain.ResourceContact, http.StatusInternalServerError)
	client, err := content.NewHTTP(srv.URL)
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}
	fr := resolver(t)

	src := screen.Join(
		screen.ResourceSource[domain.ContactInfo](client, fr, domain.ResourceContact, nil),
		screen.ResourceSource[domain.Rules](client, fr, domain.ResourceRules, nil),
		joinContact,
	)
	st := screen.New("contact", src).Mount(context.Background())

	if !reflect.DeepEqual(st.Data.Contact, *fallback.Builtin().Contact) {
		t.Fatalf("contact = %+v, want fallback", st.Data.Contact)
	}
	if len(st.Data.Rules) != 3 || st.Data.Rules[0].ID != "r1" {
		t.Fatalf("rules = %+v, want server rules", st.Data.Rules)
	}
	if st.LastError != domain.ErrServerError || !st.FromFallback {
		t.Fatalf("LastError=%s FromFallback=%v", st.LastError, st.FromFallback)
	}
	if srv.Hits(domain.ResourceContact) != 1 || srv.Hits(domain.ResourceRules) != 1 {
		t.Fatal("each endpoint should be fetched exactly once")
	}
}

func TestJoin_BothSucceed(t *testing.T) {
	client := stubClient{bodies: map[domain.Resource]string{
		domain.ResourceContact: `{"phone":"1"}`,
		domain.ResourceRules:   `[]`,
	}}
	fr := resolver(t)
	src := screen.Join(
		screen.ResourceSource[domain.ContactInfo](client, fr, domain.ResourceContact, nil),
		screen.ResourceSource[domain.Rules](client, fr, domain.ResourceRules, nil),
		joinContact,
	)
	out := src(context.Background())
	if out.Err != domain.ErrNone || out.Fallback || out.Data.Contact.Phone != "1" || len(out.Data.Rules) != 0 {
		t.Fatalf("outcome = %+v", out)
	}
}

func TestController_Lifecycle(t *testing.T) {
	client := stubClient{bodies: map[domain.Resource]string{domain.ResourceFishing: `{"title":"F"}`}}
	c := screen.New("fishing", screen.ResourceSource[domain.FishingInfo](client, nil, domain.ResourceFishing, nil))

	first := c.State()
	if first.Phase != screen.PhaseIdle || !first.IsLoading || first.IsRefreshing {
		t.Fatalf("initial state = %+v", first)
	}

	var phases []screen.Phase
	c.Subscribe(func(s screen.State[domain.FishingInfo]) { phases = append(phases, s.Phase) })

	st := c.Mount(context.Background())
	if st.IsLoading || st.Phase != screen.PhaseReady || st.Data.Title != "F" || st.Generation != 1 {
		t.Fatalf("after mount = %+v", st)
	}
	st = c.Refresh(context.Background())
	if st.IsRefreshing || st.Phase != screen.PhaseReady || st.Generation != 2 {
		t.Fatalf("after refresh = %+v", st)
	}

	want := []screen.Phase{screen.PhaseLoading, screen.PhaseReady, screen.PhaseRefreshing, screen.PhaseReady}
	if !reflect.DeepEqual(phases, want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
}

func TestController_MountOnce(t *testing.T) {
	calls := 0
	src := func(context.Context) screen.Outcome[int] { calls++; return screen.Outcome[int]{Data: calls} }
	c := screen.New[int]("n", src)
	c.Mount(context.Background())
	if st := c.Mount(context.Background()); st.Data != 1 || calls != 1 {
		t.Fatalf("second mount fetched again: data=%d calls=%d", st.Data, calls)
	}
}

func TestController_RefreshBeforeMount(t *testing.T) {
	src := func(context.Context) screen.Outcome[string] { return screen.Outcome[string]{Data: "x"} }
	c := screen.New[string]("s", src)
	st := c.Refresh(context.Background())
	if st.Phase != screen.PhaseReady || st.Data != "x" || st.Generation != 1 {
		t.Fatalf("state = %+v", st)
	}
}

// gate hands each fetch a channel the test uses to release it.
type gate chan chan string

func (g gate) source(ctx context.Context) screen.Outcome[string] {
	release := make(chan string)
	g <- release
	return screen.Outcome[string]{Data: <-release}
}

func TestController_OverlappingRefresh_LastSettledWins(t *testing.T) {
	g := make(gate)
	c := screen.New[string]("s", g.source)

	mounted := make(chan screen.State[string])
	go func() { mounted <- c.Mount(context.Background()) }()
	(<-g) <- "initial"
	<-mounted

	doneA := make(chan screen.State[string])
	doneB := make(chan screen.State[string])
	go func() { doneA <- c.Refresh(context.Background()) }()
	relA := <-g
	go func() { doneB <- c.Refresh(context.Background()) }()
	relB := <-g

	if st := c.State(); !st.IsRefreshing || st.Phase != screen.PhaseRefreshing {
		t.Fatalf("while refreshing = %+v", st)
	}

	relB <- "B"
	<-doneB
	if st := c.State(); st.Data != "B" || !st.IsRefreshing {
		t.Fatalf("after B settled = %+v; A still in flight", st)
	}

	relA <- "A"
	<-doneA
	st := c.State()
	if st.Data != "A" || st.IsRefreshing || st.Phase != screen.PhaseReady || st.Generation != 3 {
		t.Fatalf("final = %+v, want A (settled last)", st)
	}
}

func TestController_RapidRefreshSettles(t *testing.T) {
	srv := contenttest.New(t)
	client, err := content.NewHTTP(srv.URL)
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}
	c := screen.New("rules", screen.ResourceSource[domain.Rules](client, resolver(t), domain.ResourceRules, nil))
	c.Mount(context.Background())

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%5 == 0 {
				srv.Fail(domain.ResourceRules, http.StatusServiceUnavailable)
			}
			c.Refresh(context.Background())
		}(i)
	}
	wg.Wait()

	st := c.State()
	if st.IsRefreshing || st.IsLoading || st.Phase != screen.PhaseReady {
		t.Fatalf("did not settle: %+v", st)
	}
	if st.Generation != n+1 {
		t.Fatalf("generation = %d, want %d", st.Generation, n+1)
	}
	if len(st.Data) == 0 {
		t.Fatal("rules must never be empty: server data or fallback")
	}
	if st.FromFallback != (st.LastError != domain.ErrNone) {
		t.Fatalf("fallback flag inconsistent with error: %+v", st)
	}
}

func TestController_SubscriberReadsStateDuringRefresh(t *testing.T) {
	var calls int
	var callsMu sync.Mutex
	src := func(context.Context) screen.Outcome[int] {
		callsMu.Lock()
		defer callsMu.Unlock()
		calls++
		return screen.Outcome[int]{Data: calls}
	}
	c := screen.New[int]("n", src)

	var (
		seenMu sync.Mutex
		gens   []uint64
	)
	c.Subscribe(func(st screen.State[int]) {
		time.Sleep(20 * time.Millisecond)
		_ = c.State()
		seenMu.Lock()
		gens = append(gens, st.Generation)
		seenMu.Unlock()
	})
	c.Mount(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Refresh(context.Background())
			}()
		}
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("refreshes did not finish while a subscriber read state")
	}

	// Deliveries may trail the last Refresh; wait for the final one.
	deadline := time.Now().Add(5 * time.Second)
	for {
		seenMu.Lock()
		n := len(gens)
		last := uint64(0)
		if n > 0 {
			last = gens[n-1]
		}
		seenMu.Unlock()
		if last == 6 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("last delivered generation = %d, want 6", last)
		}
		time.Sleep(10 * time.Millisecond)
	}

	seenMu.Lock()
	defer seenMu.Unlock()
	for i := 1; i < len(gens); i++ {
		if gens[i] < gens[i-1] {
			t.Fatalf("deliveries out of order: %v", gens)
		}
	}
	if st := c.State(); st.Generation != 6 || st.IsRefreshing {
		t.Fatalf("final state = %+v", st)
	}
}

func TestController_RefreshDuringMountKeepsLoading(t *testing.T) {
	g := make(gate)
	c := screen.New[string]("s", g.source)

	mounted := make(chan screen.State[string])
	go func() { mounted <- c.Mount(context.Background()) }()
	relMount := <-g

	refreshed := make(chan screen.State[string])
	go func() { refreshed <- c.Refresh(context.Background()) }()
	relRefresh := <-g

	relRefresh <- "refresh"
	if st := <-refreshed; !st.IsLoading || st.Phase != screen.PhaseLoading || st.Data != "refresh" {
		t.Fatalf("after refresh settled = %+v; mount still in flight", st)
	}

	relMount <- "mount"
	st := <-mounted
	if st.IsLoading || st.IsRefreshing || st.Phase != screen.PhaseReady || st.Data != "mount" {
		t.Fatalf("after mount settled = %+v", st)
	}
}

func TestResourceSource_NullRulesFallBack(t *testing.T) {
	srv := contenttest.New(t)
	srv.SetRaw(domain.ResourceRules, "null")
	client, err := content.NewHTTP(srv.URL)
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}
	c := screen.New("rules", screen.ResourceSource[domain.Rules](client, resolver(t), domain.ResourceRules, nil))
	st := c.Mount(context.Background())
	if !reflect.DeepEqual(st.Data, fallback.Builtin().Rules) {
		t.Fatalf("rules = %+v, want fallback", st.Data)
	}
	if st.LastError != domain.ErrMalformedResponse || !st.FromFallback {
		t.Fatalf("LastError=%s FromFallback=%v", st.LastError, st.FromFallback)
	}
}
