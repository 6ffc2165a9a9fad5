package usecase

import "strings"

// electronicsKeywords is the fixed vocabulary used to decide platform
// eligibility. Meesho and Myntra do not sell electronics, so queries matching
// any of these terms are restricted to Amazon and Flipkart.
var electronicsKeywords = []string{
	// Phones
	"phone", "mobile", "smartphone", "iphone", "samsung", "oneplus", "realme",
	"oppo", "vivo", "xiaomi", "redmi",
	// Computers
	"laptop", "computer", "pc", "macbook", "dell", "hp", "lenovo", "asus",
	"tablet", "ipad",
	// Audio
	"headphone", "earphone", "earbuds", "airpods", "speaker", "audio",
	// Cameras
	"camera", "dslr", "gopro",
	// Displays
	"tv", "television", "monitor", "display",
	// Wearables
	"smartwatch", "watch", "fitband", "fitness band",
	// Gaming
	"console", "playstation", "xbox", "gaming",
	// Power
	"charger", "powerbank", "power bank",
	// Networking
	"router", "modem", "wifi",
	// Peripherals
	"keyboard", "mouse", "webcam",
	// Storage and components
	"ssd", "harddisk", "hard disk", "pendrive", "ram",
	"processor", "graphic card", "gpu",
	// Smart home
	"alexa", "echo", "smart home",
	// Appliances
	"refrigerator", "fridge", "washing machine", "ac", "air conditioner",
	"microwave",
}

// IsElectronicsQuery reports whether the product query is for an electronics
// item. Pure and side-effect-free: the same query always classifies the same
// way. Unknown vocabulary defaults to general (false).
func IsElectronicsQuery(query string) bool {
	lower := strings.ToLower(query)
	for _, keyword := range electronicsKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
