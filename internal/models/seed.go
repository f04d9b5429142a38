package models

// SeedAccount is a bootstrap account fixture. The PIN is plain text here and
// bcrypt-hashed when the store is seeded.
type SeedAccount struct {
	Name       string
	EmployeeID string
	PIN        string
	Role       string
	Balance    int
	Nest       string
}

// SeedAccounts returns the pilot roster.
func SeedAccounts() []SeedAccount {
	return []SeedAccount{
		{Name: "Ramesh Kumar", EmployeeID: "NIA001", PIN: "1234", Role: RoleResident, Balance: 185, Nest: "Kush-12"},
		{Name: "Priya Sharma", EmployeeID: "NIA002", PIN: "1234", Role: RoleResident, Balance: 340, Nest: "Kush-12"},
		{Name: "Arjun Patel", EmployeeID: "NIA003", PIN: "1234", Role: RoleResident, Balance: 72, Nest: "Kush-12"},
		{Name: "Sunita Devi", EmployeeID: "NIA004", PIN: "1234", Role: RoleResident, Balance: 0, Nest: "Kush-12"},
		{Name: "Rajan", EmployeeID: "EAE001", PIN: "0000", Role: RoleStaff, Balance: 0},
	}
}

// SeedCatalog returns the Nia Store offerings.
func SeedCatalog() []CatalogItem {
	return []CatalogItem{
		{ID: 5, Name: "Co-Living Housing", Category: "studio", Emoji: "🏠", Price: 3999, Period: "/mo"},
		{ID: 6, Name: "Daily Meals Plan", Category: "studio", Emoji: "🍛", Price: 1499, Period: "/mo"},
		{ID: 1, Name: "Job Matching Service", Category: "flow", Emoji: "💼", Price: 199, Period: "/mo"},
		{ID: 10, Name: "Digital Literacy Course", Category: "tribe", Emoji: "📱", Price: 249, Period: ""},
	}
}

// SeedRewards returns the redeemable perks.
func SeedRewards() []Reward {
	return []Reward{
		{ID: 1, Name: "Chai Voucher", Emoji: "☕", Cost: 30},
		{ID: 2, Name: "Umoja Meal Voucher", Emoji: "🍛", Cost: 120},
		{ID: 3, Name: "Movie Night Pass", Emoji: "🎬", Cost: 250},
		{ID: 4, Name: "Nia Store Discount", Emoji: "🏷️", Cost: 400},
	}
}
