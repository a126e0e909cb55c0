// Package catalog holds the static datasets backing the screens: venues,
// nearby people, menus, decoration items, the table layout and the chat
// list. The data is held in memory for the session and is never mutated,
// only filtered and selected.
package catalog

import "github.com/lookdine/lookdine/internal/client/models"

// FeaturedVenues are the venues shown on the home screen; the first three
// double as the selectable cafés on the booking wizard's venue step.
var FeaturedVenues = []models.Venue{
	{ID: "1", Name: "La Trattoria", Distance: "0.3 km", Rating: 4.8, PriceLevel: "₹₹₹", CrowdStatus: "chill", Cuisine: "Italian", PeopleNow: 12},
	{ID: "2", Name: "Sakura Sushi", Distance: "0.8 km", Rating: 4.9, PriceLevel: "₹₹₹₹", CrowdStatus: "busy", Cuisine: "Japanese", PeopleNow: 28},
	{ID: "3", Name: "Sky Lounge", Distance: "1.2 km", Rating: 4.7, PriceLevel: "₹₹₹", CrowdStatus: "chill", Cuisine: "Continental", PeopleNow: 18},
	{ID: "4", Name: "Casa Mexicana", Distance: "0.5 km", Rating: 4.6, PriceLevel: "₹₹", CrowdStatus: "quiet", Cuisine: "Mexican", PeopleNow: 6},
}

// NearbyVenues extends the featured list with neighborhood spots.
var NearbyVenues = append(FeaturedVenues[:len(FeaturedVenues):len(FeaturedVenues)],
	models.Venue{ID: "5", Name: "The Brew House", Distance: "0.2 km", Rating: 4.5, PriceLevel: "₹₹", CrowdStatus: "busy", Cuisine: "Café & Brewery", PeopleNow: 15},
)

var NearbyPeople = []models.Person{
	{ID: "1", Name: "Priya", Age: 24, Distance: "0.5 km", Interests: []string{"Coffee", "Art", "Music", "Travel"}, ConnectionType: "dating"},
	{ID: "2", Name: "Rahul", Age: 27, Distance: "0.8 km", Interests: []string{"Food", "Photography", "Hiking"}, ConnectionType: "friendship"},
	{ID: "3", Name: "Ananya", Age: 23, Distance: "1.2 km", Interests: []string{"Books", "Movies", "Yoga", "Cooking"}, ConnectionType: "dating"},
	{ID: "4", Name: "Arjun", Age: 26, Distance: "0.3 km", Interests: []string{"Gaming", "Tech", "Startups"}, ConnectionType: "friendship"},
}

var MenuItems = []models.MenuItem{
	{ID: "1", Name: "Margherita Pizza", Description: "Fresh tomatoes, mozzarella, basil", Price: 450, Category: "Mains", Veg: true},
	{ID: "2", Name: "Pasta Carbonara", Description: "Creamy sauce, pancetta, parmesan", Price: 520, Category: "Mains"},
	{ID: "3", Name: "Bruschetta", Description: "Grilled bread, tomatoes, garlic, olive oil", Price: 280, Category: "Starters", Veg: true},
	{ID: "4", Name: "Tiramisu", Description: "Coffee-soaked ladyfingers, mascarpone", Price: 350, Category: "Desserts", Veg: true},
	{ID: "5", Name: "Caesar Salad", Description: "Romaine, parmesan, croutons, caesar dressing", Price: 320, Category: "Starters", Veg: true},
}

var DecorationItems = []models.DecorationItem{
	{ID: "1", Name: "Birthday Cake", Description: "Chocolate truffle cake (1 kg)", Price: 1200, Category: "Cakes"},
	{ID: "2", Name: "Rose Bouquet", Description: "12 premium red roses", Price: 800, Category: "Flowers"},
	{ID: "3", Name: "Balloon Bundle", Description: "20 helium balloons with ribbons", Price: 500, Category: "Balloons"},
	{ID: "4", Name: "Anniversary Special", Description: "Candles, petals, champagne setup", Price: 2500, Category: "Packages"},
}

var SampleTables = []models.Table{
	{ID: "t1", Number: 1, Seats: 2, X: 20, Y: 25, Available: true, Type: "round"},
	{ID: "t2", Number: 2, Seats: 2, X: 40, Y: 25, Available: true, Type: "round"},
	{ID: "t3", Number: 3, Seats: 4, X: 65, Y: 25, Available: false, Type: "square"},
	{ID: "t4", Number: 4, Seats: 4, X: 85, Y: 25, Available: true, Type: "square"},
	{ID: "t5", Number: 5, Seats: 2, X: 20, Y: 55, Available: true, Type: "round"},
	{ID: "t6", Number: 6, Seats: 6, X: 50, Y: 55, Available: true, Type: "rectangular"},
	{ID: "t7", Number: 7, Seats: 4, X: 80, Y: 55, Available: true, Type: "square"},
	{ID: "t8", Number: 8, Seats: 2, X: 20, Y: 80, Available: false, Type: "round"},
	{ID: "t9", Number: 9, Seats: 4, X: 50, Y: 80, Available: true, Type: "square"},
	{ID: "t10", Number: 10, Seats: 8, X: 80, Y: 80, Available: true, Type: "rectangular"},
}

var ChatConversations = []models.ChatConversation{
	{ID: "1", Name: "Priya", LastMessage: "Hey! Are you free for coffee tomorrow? ☕", Time: "2m ago", Unread: 2},
	{ID: "2", Name: "Rahul", LastMessage: "That place was amazing! Thanks for the recommendation.", Time: "1h ago"},
	{ID: "3", Name: "La Trattoria", LastMessage: "Your table is confirmed for 7 PM tonight!", Time: "3h ago", Unread: 1, IsVenue: true},
}

// VenueByID returns the venue with the given id, or nil.
func VenueByID(id string) *models.Venue {
	for i := range NearbyVenues {
		if NearbyVenues[i].ID == id {
			return &NearbyVenues[i]
		}
	}
	return nil
}

// TableByID returns the table with the given id, or nil.
func TableByID(id string) *models.Table {
	for i := range SampleTables {
		if SampleTables[i].ID == id {
			return &SampleTables[i]
		}
	}
	return nil
}

// DecorationByID returns the decoration item with the given id, or nil.
func DecorationByID(id string) *models.DecorationItem {
	for i := range DecorationItems {
		if DecorationItems[i].ID == id {
			return &DecorationItems[i]
		}
	}
	return nil
}

// DecorationCategories lists the distinct decoration categories in first-seen
// order.
func DecorationCategories() []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, item := range DecorationItems {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		cats = append(cats, item.Category)
	}
	return cats
}

// DecorationsInCategory returns the decoration items of one category.
func DecorationsInCategory(category string) []models.DecorationItem {
	var items []models.DecorationItem
	for _, item := range DecorationItems {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

// PeopleForMode filters the discovery feed by app mode: teen mode hides
// dating cards.
func PeopleForMode(teenMode bool) []models.Person {
	if !teenMode {
		return NearbyPeople
	}
	var people []models.Person
	for _, p := range NearbyPeople {
		if p.ConnectionType != "dating" {
			people = append(people, p)
		}
	}
	return people
}
