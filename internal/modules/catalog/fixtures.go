package catalog

// PlaceholderImage is served from the embedded static assets.
const PlaceholderImage = "/static/placeholder.svg"

const (
	PriceFloor = 0
	PriceCeil  = 5000
	PriceStep  = 100
	// FeaturedCount is how many listings the home page shows.
	FeaturedCount = 4
)

var (
	categoryOptions  = []string{"Road", "Mountain", "Hybrid", "Electric", "BMX", "Cruiser"}
	brandOptions     = []string{"Trek", "Specialized", "Giant", "Cannondale", "Santa Cruz", "Rad Power"}
	conditionOptions = []Condition{ConditionNew, ConditionUsedExcellent, ConditionUsedGood, ConditionUsedFair}
)

// DefaultOptions returns the filter option lists shown on the listing page.
func DefaultOptions() Options {
	return Options{
		Categories: append([]string(nil), categoryOptions...),
		Brands:     append([]string(nil), brandOptions...),
		Conditions: append([]Condition(nil), conditionOptions...),
		MinPrice:   PriceFloor,
		MaxPrice:   PriceCeil,
		PriceStep:  PriceStep,
	}
}

// homeCategories are the advertised marketplace-wide counts, not counts of
// the fixtures.
func homeCategories() []Category {
	return []Category{
		{Name: "Road", Count: 1247, Image: PlaceholderImage},
		{Name: "Mountain", Count: 892, Image: PlaceholderImage},
		{Name: "Hybrid", Count: 634, Image: PlaceholderImage},
		{Name: "Electric", Count: 456, Image: PlaceholderImage},
		{Name: "BMX", Count: 234, Image: PlaceholderImage},
		{Name: "Cruiser", Count: 189, Image: PlaceholderImage},
	}
}

func gallery() []string {
	return []string{PlaceholderImage, PlaceholderImage, PlaceholderImage, PlaceholderImage}
}

// Fixtures returns the marketplace listings in insertion order. Each call
// builds fresh values.
func Fixtures() []*Listing {
	return []*Listing{
		{
			ID:            1,
			Name:          "Trek Domane SL 7",
			Price:         3499,
			OriginalPrice: 3799,
			Category:      "Road",
			Brand:         "Trek",
			Model:         "Domane SL 7",
			Year:          2024,
			Size:          "56cm",
			Color:         "Matte Black",
			Condition:     ConditionNew,
			Location:      "San Francisco, CA",
			Images:        gallery(),
			Seller: Seller{
				Name:        "Pro Bike Shop",
				Avatar:      PlaceholderImage,
				Rating:      4.8,
				Reviews:     124,
				Location:    "San Francisco, CA",
				Verified:    true,
				MemberSince: "2019",
			},
			Description: "The Trek Domane SL 7 is the ultimate endurance road bike, featuring Trek's IsoSpeed technology for superior comfort on long rides. This bike combines lightweight carbon construction with innovative engineering to deliver exceptional performance on any terrain.",
			Specifications: []Spec{
				{Key: "Frame", Value: "OCLV 500 Carbon"},
				{Key: "Fork", Value: "Domane SL carbon fork"},
				{Key: "Drivetrain", Value: "Shimano Ultegra Di2"},
				{Key: "Wheels", Value: "Bontrager Aeolus Elite 35"},
				{Key: "Tires", Value: "Bontrager R2 Hard-Case Lite, 700x28c"},
				{Key: "Weight", Value: "8.2 kg (18.1 lbs)"},
			},
			Features: []string{
				"IsoSpeed decoupler for comfort",
				"Electronic shifting",
				"Carbon fiber construction",
				"Endurance geometry",
				"Tubeless ready wheels",
			},
		},
		{
			ID:        2,
			Name:      "Specialized Stumpjumper",
			Price:     2899,
			Category:  "Mountain",
			Brand:     "Specialized",
			Model:     "Stumpjumper Comp",
			Year:      2023,
			Size:      "S4",
			Color:     "Gloss Forest Green",
			Condition: ConditionNew,
			Location:  "Denver, CO",
			Images:    gallery(),
			Seller: Seller{
				Name:        "Mountain Gear Co",
				Avatar:      PlaceholderImage,
				Rating:      4.9,
				Reviews:     89,
				Location:    "Denver, CO",
				Verified:    true,
				MemberSince: "2020",
			},
			Description: "A do-it-all trail bike with 140mm of rear travel and a progressive geometry that climbs efficiently and descends with confidence.",
			Specifications: []Spec{
				{Key: "Frame", Value: "M5 Alloy, 140mm travel"},
				{Key: "Fork", Value: "Fox 34 Rhythm, 150mm"},
				{Key: "Drivetrain", Value: "SRAM NX Eagle 12-speed"},
				{Key: "Wheels", Value: "29in Roval alloy"},
				{Key: "Brakes", Value: "SRAM G2 R 4-piston"},
			},
			Features: []string{
				"SWAT downtube storage",
				"Adjustable geometry flip chip",
				"Dropper post included",
			},
		},
		{
			ID:        3,
			Name:      "Cannondale Quick CX 3",
			Price:     899,
			Category:  "Hybrid",
			Brand:     "Cannondale",
			Model:     "Quick CX 3",
			Year:      2022,
			Size:      "M",
			Color:     "Slate Gray",
			Condition: ConditionUsedExcellent,
			Location:  "Portland, OR",
			Images:    gallery(),
			Seller: Seller{
				Name:        "City Cycles",
				Avatar:      PlaceholderImage,
				Rating:      4.7,
				Reviews:     156,
				Location:    "Portland, OR",
				Verified:    false,
				MemberSince: "2021",
			},
			Description: "A light, upright commuter with a suspension fork to smooth out rough city streets and gravel paths.",
			Specifications: []Spec{
				{Key: "Frame", Value: "SmartForm C3 Alloy"},
				{Key: "Fork", Value: "SR Suntour NEX, 63mm"},
				{Key: "Drivetrain", Value: "Shimano 3x8"},
				{Key: "Tires", Value: "WTB Nano, 700x40c"},
			},
			Features: []string{
				"Suspension fork",
				"Rack and fender mounts",
			},
		},
		{
			ID:        4,
			Name:      "Giant TCR Advanced Pro",
			Price:     4299,
			Category:  "Road",
			Brand:     "Giant",
			Model:     "TCR Advanced Pro 1",
			Year:      2024,
			Size:      "M/L",
			Color:     "Cold Iron",
			Condition: ConditionNew,
			Location:  "Austin, TX",
			Images:    gallery(),
			Seller: Seller{
				Name:        "Elite Cycling",
				Avatar:      PlaceholderImage,
				Rating:      4.9,
				Reviews:     67,
				Location:    "Austin, TX",
				Verified:    true,
				MemberSince: "2018",
			},
			Description: "A race-ready carbon frame that balances stiffness, weight and aerodynamics for fast group rides and criteriums.",
			Specifications: []Spec{
				{Key: "Frame", Value: "Advanced-Grade Composite"},
				{Key: "Drivetrain", Value: "Shimano Ultegra Di2"},
				{Key: "Wheels", Value: "Giant SLR 1 42 Carbon"},
				{Key: "Weight", Value: "7.4 kg (16.3 lbs)"},
			},
			Features: []string{
				"Integrated seatpost",
				"Power meter ready",
				"Tubeless ready wheels",
			},
		},
		{
			ID:        5,
			Name:      "Santa Cruz Hightower",
			Price:     3899,
			Category:  "Mountain",
			Brand:     "Santa Cruz",
			Model:     "Hightower C",
			Year:      2021,
			Size:      "L",
			Color:     "Gloss Avocado",
			Condition: ConditionUsedGood,
			Location:  "Boulder, CO",
			Images:    gallery(),
			Seller: Seller{
				Name:        "Trail Riders",
				Avatar:      PlaceholderImage,
				Rating:      4.8,
				Reviews:     92,
				Location:    "Boulder, CO",
				Verified:    true,
				MemberSince: "2017",
			},
			Description: "A long-travel 29er built around the VPP suspension platform. Ridden two seasons, serviced recently, minor frame scuffs.",
			Specifications: []Spec{
				{Key: "Frame", Value: "Carbon C, 145mm VPP"},
				{Key: "Fork", Value: "RockShox Pike, 150mm"},
				{Key: "Drivetrain", Value: "SRAM GX Eagle"},
				{Key: "Wheels", Value: "Race Face AR Offset 30"},
			},
			Features: []string{
				"Lifetime frame warranty",
				"Recent suspension service",
			},
		},
		{
			ID:        6,
			Name:      "Rad Power RadCity 5",
			Price:     1699,
			Category:  "Electric",
			Brand:     "Rad Power",
			Model:     "RadCity 5 Plus",
			Year:      2023,
			Size:      "One size",
			Color:     "Charcoal",
			Condition: ConditionNew,
			Location:  "Seattle, WA",
			Images:    gallery(),
			Seller: Seller{
				Name:        "E-Bike Central",
				Avatar:      PlaceholderImage,
				Rating:      4.6,
				Reviews:     203,
				Location:    "Seattle, WA",
				Verified:    true,
				MemberSince: "2020",
			},
			Description: "A commuter e-bike with a 750W geared hub motor, integrated lights and a rear rack for daily errands.",
			Specifications: []Spec{
				{Key: "Motor", Value: "750W geared hub"},
				{Key: "Battery", Value: "48V 14Ah"},
				{Key: "Range", Value: "Up to 50 miles"},
				{Key: "Weight", Value: "29.5 kg (65 lbs)"},
			},
			Features: []string{
				"Integrated lights",
				"Rear rack",
				"Hydraulic disc brakes",
			},
		},
	}
}
