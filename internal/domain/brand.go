package domain

import "strings"

// brandCatalog is checked in order; earlier entries win when names overlap,
// so more specific names must precede generic ones.
var brandCatalog = []string{
	"Toyota", "Honda", "Ford", "Chevrolet", "Nissan", "Hyundai", "Kia", "Mazda",
	"Volkswagen", "BMW", "Mercedes", "Audi", "Lexus", "Jeep", "Subaru", "Volvo",
	"Mitsubishi", "Suzuki", "Peugeot", "Renault", "Fiat", "Citroen", "Opel",
	"Skoda", "Seat", "Land Rover", "Range Rover", "Jaguar", "Porsche", "Ferrari",
	"Lamborghini", "Maserati", "Bentley", "Rolls Royce", "Mini", "Infiniti",
	"Acura", "Cadillac", "Lincoln", "Buick", "GMC", "Dodge", "Chrysler",
	"Ram", "Tesla", "BYD", "Chery", "Geely", "MG", "Proton", "Daihatsu", "Isuzu",
}

// ClassifyBrand maps a listing title to a known manufacturer. The first
// catalog entry appearing in the title (case-insensitive) wins; with no
// match the first word of the title stands in as the brand.
func ClassifyBrand(title Field) string {
	if !title.Known {
		return Unknown
	}

	lowered := strings.ToLower(title.Value)
	for _, brand := range brandCatalog {
		if strings.Contains(lowered, strings.ToLower(brand)) {
			return brand
		}
	}

	if tokens := strings.Fields(title.Value); len(tokens) > 0 {
		return tokens[0]
	}
	return Unknown
}
