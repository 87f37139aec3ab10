package app

import (
	"log/slog"

	"birchwood/internal/domain"
	"birchwood/internal/gallery"
	"birchwood/internal/screen"
)

// ContactPage is the contact screen: contact details plus site rules, each
// fetched and falling back on its own.
type ContactPage struct {
	Contact    domain.ContactInfo
	Rules      domain.Rules
	ContactErr domain.ErrorKind
	RulesErr   domain.ErrorKind
}

// App holds one controller per screen. Screens are created unmounted; a
// remount means building a new App.
type App struct {
	Home    *screen.Controller[domain.ContactInfo]
	Camping *screen.Controller[domain.CampingInfo]
	Fishing *screen.Controller[domain.FishingInfo]
	Contact *screen.Controller[ContactPage]
	Gallery *gallery.Screen
}

// New builds every screen over the same client and fallback policy.
func New(client domain.ContentClient, fr domain.FallbackResolver, log *slog.Logger) *App {
	opt := screen.WithLogger(log)
	contact := screen.ResourceSource[domain.ContactInfo](client, fr, domain.ResourceContact, log)
	rules := screen.ResourceSource[domain.Rules](client, fr, domain.ResourceRules, log)

	return &App{
		Home:    screen.New("home", contact, opt),
		Camping: screen.New("camping", screen.ResourceSource[domain.CampingInfo](client, fr, domain.ResourceCamping, log), opt),
		Fishing: screen.New("fishing", screen.ResourceSource[domain.FishingInfo](client, fr, domain.ResourceFishing, log), opt),
		Contact: screen.New("contact", screen.Join(contact, rules, joinContactPage), opt),
		Gallery: gallery.NewScreen(screen.ResourceSource[domain.Images](client, fr, domain.ResourceGallery, log), opt),
	}
}

func joinContactPage(c screen.Outcome[domain.ContactInfo], r screen.Outcome[domain.Rules]) ContactPage {
	return ContactPage{
		Contact:    c.Data,
		Rules:      r.Data,
		ContactErr: c.Err,
		RulesErr:   r.Err,
	}
}
