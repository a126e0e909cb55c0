// Package models defines the client-side data types: the authenticated user,
// credential DTOs, and the catalog records (venues, people, tables,
// decoration items) the screens render.
package models

// User is the authenticated account as returned by the API (or synthesized
// by the local fallback). It is persisted as JSON under the auth_user key.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Avatar  string `json:"avatar,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Role    string `json:"role,omitempty"`
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupData carries the registration fields collected by the signup wizard.
// The avatar image payload is deliberately excluded from drafts persisted to
// the local store.
type SignupData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// RegistryEntry is one record of the locally persisted registered-user
// registry, the mock substitute for a server-side user table. The list is
// append-only; uniqueness is enforced only by a pre-insert email scan.
type RegistryEntry struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Venue is a restaurant/café card shown on the home and nearby screens.
type Venue struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Distance    string  `json:"distance"`
	Rating      float64 `json:"rating"`
	PriceLevel  string  `json:"priceLevel"`
	CrowdStatus string  `json:"crowdStatus"`
	Cuisine     string  `json:"cuisine"`
	PeopleNow   int     `json:"peopleNow"`
}

// Person is a social-discovery card. ConnectionType is either "dating" or
// "friendship"; dating cards are hidden in teen mode.
type Person struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Distance       string   `json:"distance"`
	Interests      []string `json:"interests"`
	ConnectionType string   `json:"connectionType"`
}

// Table is one seat-selection slot on a venue's floor layout. X and Y are
// percentage coordinates on the layout canvas.
type Table struct {
	ID        string `json:"id"`
	Number    int    `json:"number"`
	Seats     int    `json:"seats"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Available bool   `json:"isAvailable"`
	Type      string `json:"type"`
}

// MenuItem is a dish on a venue's menu. Price is in whole rupees.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Veg         bool   `json:"isVeg"`
}

// DecorationItem is a celebration add-on purchasable for a booking.
type DecorationItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
}

// ChatConversation is a row on the chat list screen.
type ChatConversation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LastMessage string `json:"lastMessage"`
	Time        string `json:"time"`
	Unread      int    `json:"unread"`
	IsVenue     bool   `json:"isVenue,omitempty"`
}

// SearchQuery holds the venue-search parameters sent to the search endpoint
// as q, category, price, rating and location.
type SearchQuery struct {
	Query    string
	Category string
	Price    string
	Rating   float64
	Location string
}
