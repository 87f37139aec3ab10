package gallery

import (
	"context"
	"sync"

	"birchwood/internal/domain"
	"birchwood/internal/screen"
)

// View is what the gallery screen renders.
type View struct {
	IsLoading    bool
	IsRefreshing bool
	Catalog      ViewState
	Visible      domain.Images
	Empty        EmptyReason
}

// Screen couples the gallery's data controller with its catalog. Every
// settled fetch is loaded into the catalog; failures empty it.
type Screen struct {
	ctrl    *screen.Controller[domain.Images]
	catalog *Catalog

	mu      sync.Mutex
	applied uint64 // newest generation loaded into the catalog
}

// NewScreen builds the gallery screen over src.
func NewScreen(src screen.Source[domain.Images], opts ...screen.Option) *Screen {
	s := &Screen{catalog: NewCatalog()}
	s.ctrl = screen.New("gallery", src, opts...)
	s.ctrl.Subscribe(s.apply)
	return s
}

// apply loads a settled state into the catalog. It runs both as a
// subscriber and on the caller's goroutine; older generations are ignored.
func (s *Screen) apply(st screen.State[domain.Images]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.Generation <= s.applied {
		return
	}
	s.applied = st.Generation
	if st.LastError != domain.ErrNone {
		s.catalog.LoadFailed(st.LastError)
		return
	}
	s.catalog.Load(st.Data)
}

// Mount performs the initial load.
func (s *Screen) Mount(ctx context.Context) View {
	s.apply(s.ctrl.Mount(ctx))
	return s.View()
}

// Refresh re-fetches the catalog.
func (s *Screen) Refresh(ctx context.Context) View {
	s.apply(s.ctrl.Refresh(ctx))
	return s.View()
}

// SetCategory changes the filter.
func (s *Screen) SetCategory(cat domain.GalleryCategory) error { return s.catalog.SetCategory(cat) }

// OpenImage opens the viewer on id if it is in the catalog.
func (s *Screen) OpenImage(id string) bool { return s.catalog.Open(id) }

// CloseImage closes the viewer.
func (s *Screen) CloseImage() { s.catalog.Close() }

// Catalog exposes the catalog for image decoding.
func (s *Screen) Catalog() *Catalog { return s.catalog }

// View returns the current render state.
func (s *Screen) View() View {
	st := s.ctrl.State()
	return View{
		IsLoading:    st.IsLoading,
		IsRefreshing: st.IsRefreshing,
		Catalog:      s.catalog.ViewState(),
		Visible:      s.catalog.Visible(),
		Empty:        s.catalog.Empty(),
	}
}
