package icons

import (
	"strings"
)

// IconID is a stable semantic icon identifier. Templates request an id by
// meaning and the catalog decides which glyph draws it.
type IconID string

// Core icon identifiers.
const (
	IconGeneric            IconID = "generic"
	IconHome               IconID = "home"
	IconDocument           IconID = "document"
	IconSchedule           IconID = "schedule"
	IconTeam               IconID = "team"
	IconContact            IconID = "contact"
	IconOwner              IconID = "owner"
	IconChat               IconID = "chat"
	IconHelp               IconID = "help"
	IconNote               IconID = "note"
	IconShuffle            IconID = "shuffle"
	IconFavorite           IconID = "favorite"
	IconStarred            IconID = "starred"
	IconTrending           IconID = "trending"
	IconSecurity           IconID = "security"
	IconWarning            IconID = "warning"
	IconDanger             IconID = "danger"
	IconReminder           IconID = "reminder"
	IconHighlight          IconID = "highlight"
	IconBroken             IconID = "broken"
	IconArchived           IconID = "archived"
	IconCollection         IconID = "collection"
	IconPayment            IconID = "payment"
	IconBookmark           IconID = "bookmark"
	IconNewDocument        IconID = "new-document"
	IconDirectory          IconID = "directory"
	IconInventory          IconID = "inventory"
	IconBilling            IconID = "billing"
	IconPrivate            IconID = "private"
	IconLocation           IconID = "location"
	IconSearch             IconID = "search"
	IconProfile            IconID = "profile"
	IconInvites            IconID = "invites"
	IconNotification       IconID = "notification"
	IconNotificationUnread IconID = "notification-unread"
	IconAI                 IconID = "ai"
	IconKey                IconID = "key"
	IconLogOut             IconID = "log-out"
	IconSettings           IconID = "settings"
)

// Definition describes a core icon entry.
type Definition struct {
	ID          IconID
	Name        string
	Description string
}

var definitions = []Definition{
	{ID: IconGeneric, Name: "Generic", Description: "Fallback icon for ids without a dedicated glyph."},
	{ID: IconHome, Name: "Home", Description: "Home pages and dashboards."},
	{ID: IconDocument, Name: "Document", Description: "Documents, guides and reading views."},
	{ID: IconSchedule, Name: "Schedule", Description: "Dates, schedules and upcoming events."},
	{ID: IconTeam, Name: "Team", Description: "Groups, members and shared access."},
	{ID: IconContact, Name: "Contact", Description: "Contact cards and member details."},
	{ID: IconOwner, Name: "Owner", Description: "Owners and elevated roles."},
	{ID: IconChat, Name: "Chat", Description: "Conversations and messages."},
	{ID: IconHelp, Name: "Help", Description: "Help, questions and guided prompts."},
	{ID: IconNote, Name: "Note", Description: "Notes and long-form text."},
	{ID: IconShuffle, Name: "Shuffle", Description: "Random picks and shuffled ordering."},
	{ID: IconFavorite, Name: "Favorite", Description: "Favorites and likes."},
	{ID: IconStarred, Name: "Starred", Description: "Ratings and starred items."},
	{ID: IconTrending, Name: "Trending", Description: "Popular and trending items."},
	{ID: IconSecurity, Name: "Security", Description: "Security and protection settings."},
	{ID: IconWarning, Name: "Warning", Description: "Warnings that need attention."},
	{ID: IconDanger, Name: "Danger", Description: "Destructive or irreversible actions."},
	{ID: IconReminder, Name: "Reminder", Description: "Timers, reminders and deadlines."},
	{ID: IconHighlight, Name: "Highlight", Description: "New or highlighted content."},
	{ID: IconBroken, Name: "Broken", Description: "Broken links and failed states."},
	{ID: IconArchived, Name: "Archived", Description: "Hidden or archived items."},
	{ID: IconCollection, Name: "Collection", Description: "Collections and libraries."},
	{ID: IconPayment, Name: "Payment", Description: "Payment methods and saved cards."},
	{ID: IconBookmark, Name: "Bookmark", Description: "Bookmarks and saved pages."},
	{ID: IconNewDocument, Name: "New Document", Description: "Create a document."},
	{ID: IconDirectory, Name: "Directory", Description: "People directories and address books."},
	{ID: IconInventory, Name: "Inventory", Description: "Inventories and stored goods."},
	{ID: IconBilling, Name: "Billing", Description: "Billing, credits and pricing."},
	{ID: IconPrivate, Name: "Private", Description: "Private or anonymous mode."},
	{ID: IconLocation, Name: "Location", Description: "Maps and locations."},
	{ID: IconSearch, Name: "Search", Description: "Search fields and results."},
	{ID: IconProfile, Name: "Profile", Description: "User profiles and accounts."},
	{ID: IconInvites, Name: "Invites", Description: "Invitations and email."},
	{ID: IconNotification, Name: "Notification", Description: "Notification inbox."},
	{ID: IconNotificationUnread, Name: "Notification Unread", Description: "Notification inbox with unread entries."},
	{ID: IconAI, Name: "AI", Description: "Assistants and automation."},
	{ID: IconKey, Name: "Key", Description: "API keys and secrets."},
	{ID: IconLogOut, Name: "Log Out", Description: "Sign-out actions."},
	{ID: IconSettings, Name: "Settings", Description: "Application settings and configuration."},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(definitions))
	copy(result, definitions)
	return result
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Icon ID | Name | Lucide | Description |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, def := range definitions {
		builder.WriteString("| ")
		builder.WriteString(string(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(LucideNameOrDefault(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
