package icons

import (
	"github.com/louisbranch/iconkit/internal/icons/name"
	"github.com/louisbranch/iconkit/internal/icons/node"
	"github.com/louisbranch/iconkit/internal/icons/provider"
)

const (
	lucideSymbolPrefix = "lucide-"
	defaultLucideName  = "sparkle"
)

var lucideIconNames = map[IconID]string{
	IconGeneric:            "sparkle",
	IconHome:               "house",
	IconDocument:           "book-open",
	IconSchedule:           "calendar",
	IconTeam:               "users",
	IconContact:            "square-user",
	IconOwner:              "crown",
	IconChat:               "message-circle",
	IconHelp:               "message-circle-question-mark",
	IconNote:               "scroll",
	IconShuffle:            "dices",
	IconFavorite:           "heart",
	IconStarred:            "star",
	IconTrending:           "flame",
	IconSecurity:           "shield",
	IconWarning:            "badge-alert",
	IconDanger:             "skull",
	IconReminder:           "alarm-clock",
	IconHighlight:          "sparkles",
	IconBroken:             "heart-crack",
	IconArchived:           "ghost",
	IconCollection:         "library",
	IconPayment:            "wallet-cards",
	IconBookmark:           "book-marked",
	IconNewDocument:        "book-plus",
	IconDirectory:          "book-user",
	IconInventory:          "backpack",
	IconBilling:            "coins",
	IconPrivate:            "venetian-mask",
	IconLocation:           "map",
	IconSearch:             "search",
	IconProfile:            "circle-user",
	IconInvites:            "mail",
	IconNotification:       "bell",
	IconNotificationUnread: "bell-dot",
	IconAI:                 "bot",
	IconKey:                "key",
	IconLogOut:             "log-out",
	IconSettings:           "settings",
}

// aliasTargets maps the canonical form of each icon id to the canonical
// Lucide name drawing it.
var aliasTargets = func() map[string]string {
	out := make(map[string]string, len(lucideIconNames))
	for id, lucide := range lucideIconNames {
		out[name.Canonical(string(id))] = name.Canonical(lucide)
	}
	return out
}()

// LucideName returns the Lucide icon name for a core icon identifier.
func LucideName(id IconID) (string, bool) {
	lucideName, ok := lucideIconNames[id]
	return lucideName, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the icon ID is unknown.
func LucideNameOrDefault(id IconID) string {
	if lucideName, ok := lucideIconNames[id]; ok {
		return lucideName
	}
	return defaultLucideName
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(lucideName string) string {
	return lucideSymbolPrefix + lucideName
}

// AliasProvider serves core icon ids as icon names, drawing each with the
// Lucide icon it maps to in the backing provider.
type AliasProvider struct {
	backing provider.Provider
}

// NewAliasProvider wraps backing, which must hold the Lucide icons.
func NewAliasProvider(backing provider.Provider) *AliasProvider {
	return &AliasProvider{backing: backing}
}

// HasIcon reports whether canonical names a core icon id whose Lucide icon
// the backing provider has.
func (p *AliasProvider) HasIcon(canonical string) bool {
	target, ok := aliasTargets[canonical]
	return ok && p.backing != nil && p.backing.HasIcon(target)
}

// Icon returns the Lucide nodes for a core icon id.
func (p *AliasProvider) Icon(canonical string) ([]node.Node, bool) {
	target, ok := aliasTargets[canonical]
	if !ok || p.backing == nil {
		return nil, false
	}
	return p.backing.Icon(target)
}

// Names returns the canonical names of every servable core icon id.
func (p *AliasProvider) Names() []string {
	var names []string
	for _, def := range definitions {
		canonical := name.Canonical(string(def.ID))
		if p.HasIcon(canonical) {
			names = append(names, canonical)
		}
	}
	return names
}
