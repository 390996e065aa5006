package fixture

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fixed pools for generated fields. Values are arbitrary but human-readable,
// so a failed run's report is easy to eyeball.
var (
	productNames = []string{
		"Sunny Honey", "Forest Berry", "Golden Nut", "Vanilla Cream",
		"Sea Salt", "Caramel Sphere", "Ripe Apple", "Chocolate Delight",
		"Fresh Lemonade", "Maple Essence",
	}

	productCategories = []string{"FRUITS", "VEGETABLES"}

	streetNames = []string{
		"Cedar Lane", "Maple Street", "Birch Avenue", "Willow Road",
		"Elm Court", "Aspen Way",
	}

	cityNames = []string{
		"Springfield", "Riverton", "Lakeview", "Fairfield", "Oakdale",
	}

	words = []string{
		"amber", "breeze", "cobalt", "drift", "ember", "frost", "glade",
		"harbor", "ivory", "juniper", "meadow", "quartz",
	}
)

// ProductName picks a random display name for a product.
func ProductName() string {
	return productNames[rand.Intn(len(productNames))]
}

// Category picks a random product category.
func Category() string {
	return productCategories[rand.Intn(len(productCategories))]
}

// Article generates a unique product article.
func Article() string {
	return uuid.NewString()
}

// Dictionary generates the free-form additional-information text.
func Dictionary() string {
	return fmt.Sprintf("%s %s %s", words[rand.Intn(len(words))], words[rand.Intn(len(words))], words[rand.Intn(len(words))])
}

// Price generates a random price between 0.01 and 1000.00, always at two
// fractional digits.
func Price() string {
	cents := rand.Intn(100_000) + 1
	return decimal.New(int64(cents), -2).StringFixed(2)
}

// Qty generates a random product quantity for product creation.
func Qty() int {
	return rand.Intn(50) + 1
}

// OrderQty generates a line quantity for an order, capped by the product's
// available stock and a sane per-line maximum.
func OrderQty(maxQty int) int {
	capped := maxQty
	if capped > 10 {
		capped = 10
	}
	if capped < 1 {
		capped = 1
	}
	return rand.Intn(capped) + 1
}

// DeliveryAddress generates a simple street address.
func DeliveryAddress() string {
	return fmt.Sprintf("%d %s %s %05d",
		rand.Intn(9_000)+100,
		streetNames[rand.Intn(len(streetNames))],
		cityNames[rand.Intn(len(cityNames))],
		rand.Intn(100_000))
}

// CustomerLogin generates a unique customer login.
func CustomerLogin() string {
	return fmt.Sprintf("%s-%s", words[rand.Intn(len(words))], uuid.NewString()[:8])
}

// CustomerEmail generates a unique customer email address.
func CustomerEmail() string {
	return fmt.Sprintf("%s%s@example.test", words[rand.Intn(len(words))], uuid.NewString()[:8])
}
