package services

import "trailpack/internal/domain"

// DefaultListName is the name given to the lazily created first list.
const DefaultListName = "My first list"

type starterItem struct {
	Name        string
	Description string
	Category    string
	Type        domain.ItemType
	WeightGrams int
	Quantity    int
}

// starterGear seeds every new account's default list, and the catalog with it.
// The same fixed set for everyone.
var starterGear = []starterItem{
	{"Backpack", "40-50 L pack", "Packing", domain.ItemTypeBase, 1100, 1},
	{"Tent", "2-person trekking tent", "Shelter", domain.ItemTypeBase, 1400, 1},
	{"Sleeping bag", "3-season down bag", "Sleep", domain.ItemTypeBase, 850, 1},
	{"Sleeping pad", "Inflatable pad", "Sleep", domain.ItemTypeBase, 450, 1},
	{"Headlamp", "With fresh batteries", "Electronics", domain.ItemTypeBase, 95, 1},
	{"Stove", "Canister stove", "Kitchen", domain.ItemTypeBase, 90, 1},
	{"Water bottle", "1 L bottle", "Water", domain.ItemTypeBase, 40, 2},
	{"Rain jacket", "Worn in bad weather", "Clothing", domain.ItemTypeWorn, 280, 1},
	{"Trail mix", "Per hiking day", "Food", domain.ItemTypeConsumable, 150, 2},
}
