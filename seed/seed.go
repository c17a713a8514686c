// Package seed holds the static fallback datasets served when the remote
// store is unreachable or a table has not been provisioned yet. The POS must
// always be able to trade, so these are full working records, not samples.
package seed

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/cosmodumplings/cosmo-pos/models"
)

// Products returns the built-in catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Prawn & Chive Dumplings",
			Price:       85,
			Category:    "Dumplings",
			Description: "Steamed prawn dumplings with fresh chives.",
			Stock:       45,
			Image:       "https://images.unsplash.com/photo-1541696490865-9810f788fb3c?auto=format&fit=crop&q=80&w=200&h=200",
			Options:     []string{"Steamed", "Fried", "Chilli Oil (+R5)"},
		},
		{
			ID:          "2",
			Name:        "Spicy Beef Dumplings",
			Price:       75,
			Category:    "Dumplings",
			Description: "Juicy beef with szechuan pepper kick.",
			Stock:       8,
			Image:       "https://images.unsplash.com/photo-1496116218417-7a17478ee173?auto=format&fit=crop&q=80&w=200&h=200",
			Options:     []string{"Steamed", "Fried"},
		},
		{
			ID:          "3",
			Name:        "Chicken & Corn Potstickers",
			Price:       70,
			Category:    "Dumplings",
			Description: "Pan-fried dumplings with golden crust.",
			Stock:       120,
			Image:       "https://images.unsplash.com/photo-1625220194771-7ebdea0b70b9?auto=format&fit=crop&q=80&w=200&h=200",
			Options:     []string{"Standard", "Extra Crispy"},
		},
		{
			ID:          "4",
			Name:        "Vegetable Bun",
			Price:       45,
			Category:    "Sides",
			Description: "Fluffy steamed bun with mixed veg filling.",
			Stock:       30,
			Image:       "https://images.unsplash.com/photo-1563245372-f21724e3856d?auto=format&fit=crop&q=80&w=200&h=200",
			Options:     []string{"1 Piece", "2 Pieces"},
		},
		{
			ID:          "5",
			Name:        "Cosmo Special Noodles",
			Price:       95,
			Category:    "Sides",
			Description: "Hand-pulled noodles with secret sauce.",
			Stock:       50,
			Image:       "https://images.unsplash.com/photo-1552611052-33e04de081de?auto=format&fit=crop&q=80&w=200&h=200",
			Options:     []string{"Chicken", "Beef", "Vegetable", "Prawn (+R15)"},
		},
		{
			ID:          "6",
			Name:        "Jasmine Tea",
			Price:       25,
			Category:    "Drinks",
			Description: "Fragrant hot tea.",
			Stock:       200,
			Image:       "https://images.unsplash.com/photo-1576092768241-dec231879fc3?auto=format&fit=crop&q=80&w=200&h=200",
			Options:     []string{"Hot", "Iced", "No Sugar"},
		},
		{
			ID:          "7",
			Name:        "Tsingtao Beer",
			Price:       40,
			Category:    "Drinks",
			Description: "Imported Chinese lager.",
			Stock:       4,
			Image:       "https://images.unsplash.com/photo-1598155523122-38423bb4d6c1?auto=format&fit=crop&q=80&w=200&h=200",
		},
		{
			ID:          "8",
			Name:        "Mango Mochi",
			Price:       55,
			Category:    "Dessert",
			Description: "Soft rice cake with fresh mango filling.",
			Stock:       25,
			Image:       "https://images.unsplash.com/photo-1623592534882-62b8a7f45758?auto=format&fit=crop&q=80&w=200&h=200",
			Options:     []string{"Strawberry", "Mango", "Matcha"},
		},
	}
}

// Customers returns the built-in customer directory.
func Customers() []models.Customer {
	return []models.Customer{
		{
			ID:            "c1",
			Name:          "John Doe",
			Phone:         "082 555 1234",
			Address:       "12 Cosmo Street, Cape Town",
			TotalOrders:   15,
			LastOrderDate: "2023-10-25",
		},
		{
			ID:            "c2",
			Name:          "Jane Smith",
			Phone:         "071 999 8888",
			Address:       "45 Dumpling Lane, Johannesburg",
			TotalOrders:   3,
			LastOrderDate: "2023-10-20",
		},
	}
}

// Users returns the built-in accounts. PINs (1234 for the admin, 0000 for
// staff) are stored hashed even in fallback mode.
func Users() []models.User {
	return []models.User{
		{ID: "u1", Name: "Manager Mike", Role: models.RoleAdmin, PinHash: HashPIN("1234")},
		{ID: "u2", Name: "Server Sarah", Role: models.RoleStaff, PinHash: HashPIN("0000")},
	}
}

// HashPIN derives the stored form of a login PIN.
func HashPIN(pin string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return ""
	}
	return string(hashed)
}

// Orders returns demo history shown only when the terminal is offline, so an
// empty remote history is never masked by stale data.
func Orders() []models.Order {
	products := Products()
	tableFive := 5
	tableTwo := 2

	return []models.Order{
		{
			ID: "ORD-001",
			Items: []models.CartItem{
				{Product: products[0], Quantity: 2, SelectedOption: "Steamed"},
				{Product: products[5], Quantity: 1, SelectedOption: "Hot"},
			},
			Total:         195,
			PaymentMethod: models.PaymentCard,
			Type:          models.OrderTypeDineIn,
			TableNumber:   &tableFive,
			Date:          "2023-10-26 14:30",
			Status:        "Completed",
			OrderBy:       "Server Sarah",
		},
		{
			ID: "ORD-002",
			Items: []models.CartItem{
				{Product: products[1], Quantity: 1, SelectedOption: "Fried"},
			},
			Total:         75,
			PaymentMethod: models.PaymentCash,
			Type:          models.OrderTypeTakeaway,
			Date:          "2023-10-26 15:15",
			Status:        "Preparing",
			OrderBy:       "Manager Mike",
		},
		{
			ID: "ORD-003",
			Items: []models.CartItem{
				{Product: products[2], Quantity: 1, SelectedOption: "Standard"},
				{Product: products[6], Quantity: 2},
			},
			Total:         150,
			PaymentMethod: models.PaymentCard,
			Type:          models.OrderTypeDineIn,
			TableNumber:   &tableTwo,
			Date:          "2023-10-26 16:00",
			Status:        "Pending",
			OrderBy:       "Server Sarah",
		},
	}
}

// KitchenScreens returns the built-in screen registration used offline.
func KitchenScreens() []models.KitchenScreen {
	return []models.KitchenScreen{
		{ID: 1, Name: "Main Kitchen", IP: "192.168.1.50"},
	}
}

// OrderStatuses returns the default status configuration, also served when
// the order_statuses table is missing.
func OrderStatuses() []models.OrderStatus {
	return []models.OrderStatus{
		{ID: 1, Label: "Pending", Color: "bg-blue-100 text-blue-700", IsKitchen: true, IsFinal: false},
		{ID: 2, Label: "Preparing", Color: "bg-yellow-100 text-yellow-700", IsKitchen: true, IsFinal: false},
		{ID: 3, Label: "Ready", Color: "bg-green-100 text-green-700", IsKitchen: false, IsFinal: false},
		{ID: 4, Label: "Completed", Color: "bg-gray-100 text-gray-700", IsKitchen: false, IsFinal: true},
		{ID: 5, Label: "Cancelled", Color: "bg-red-100 text-red-700", IsKitchen: false, IsFinal: true},
	}
}

// Categories returns the default category set, also served when the
// categories table is missing.
func Categories() []models.CategoryItem {
	return []models.CategoryItem{
		{ID: 1, Name: "Dumplings"},
		{ID: 2, Name: "Sides"},
		{ID: 3, Name: "Drinks"},
		{ID: 4, Name: "Dessert"},
	}
}
