package store

import "github.com/familycar/datastore/app/models"

// The privileged seed account. Its fields, password included, are forced
// back onto the stored record on every Init — an interactive password
// change on this account does not survive a restart.
const (
	AdminEmail    = "admin@familycar.com"
	adminPassword = "1234"
)

func adminUser(joinedDate string) models.User {
	return models.User{
		ID:         "admin_001",
		Name:       "Admin Master",
		Email:      AdminEmail,
		Password:   adminPassword,
		Role:       models.RoleAdmin,
		Phone:      "081-234-5678",
		JoinedDate: joinedDate,
	}
}

func defaultCategories() []models.Category {
	return []models.Category{
		{ID: "Ferrari", Name: "Ferrari"},
		{ID: "Nissan", Name: "Nissan"},
		{ID: "Toyota", Name: "Toyota"},
	}
}

func defaultProducts() map[string]models.Product {
	return map[string]models.Product{
		"ferrari_001": {
			ID:          "ferrari_001",
			Name:        "Ferrari 12 Cilindri",
			Price:       35000000,
			Category:    "Ferrari",
			Image:       "https://images.unsplash.com/photo-1592198084033-aade902d1aae?w=500",
			Description: "The Ferrari 12Cilindri is the natural evolution of the company's uncompromising powertrain philosophy.",
			Status:      models.StatusAvailable,
		},
		"ferrari_002": {
			ID:          "ferrari_002",
			Name:        "Ferrari 812 GTS",
			Price:       40000000,
			Category:    "Ferrari",
			Image:       "https://hips.hearstapps.com/hmg-prod/images/2021-ferrari-812-gts-101-1603134336.jpg",
			Description: "The 812 GTS sees the return of the V12 spider to the Ferrari range.",
			Status:      models.StatusAvailable,
		},
		"nissan_001": {
			ID:          "nissan_001",
			Name:        "Nissan GT-R R35",
			Price:       12500000,
			Category:    "Nissan",
			Image:       "https://www.topgear.com/sites/default/files/2022/06/1-Nissan-GT-R-2022-review.jpg",
			Description: "The legendary Godzilla, the ultimate everyday supercar.",
			Status:      models.StatusAvailable,
		},
		"nissan_002": {
			ID:          "nissan_002",
			Name:        "Nissan Silvia S15",
			Price:       2500000,
			Category:    "Nissan",
			Image:       "https://upload.wikimedia.org/wikipedia/commons/4/4e/Nissan_Silvia_S15.jpg",
			Description: "The drift icon, deeply loved by enthusiasts.",
			Status:      models.StatusAvailable,
		},
		"toyota_001": {
			ID:          "toyota_001",
			Name:        "Toyota Supra MK4",
			Price:       3500000,
			Category:    "Toyota",
			Image:       "https://image.made-in-china.com/202f0j100-1111/1-18-Scale-Toyota-Supra-Model-Car.jpg",
			Description: "The legendary 2JZ engine machine.",
			Status:      models.StatusAvailable,
		},
	}
}
