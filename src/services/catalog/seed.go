package catalog

import "github.com/shopspring/decimal"

// DefaultProducts returns the demo storefront catalog loaded at startup.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "prod_001",
			Name:        "Premium Wireless Headphones",
			Description: "Experience crystal-clear sound with our premium wireless headphones. Featuring active noise cancellation, 30-hour battery life, and ultra-comfortable ear cushions for all-day wear.",
			Variants: []ProductVariant{
				{
					ID:        "var_001",
					Name:      "Black - Standard",
					Price:     decimal.RequireFromString("199.99"),
					Color:     "Black",
					Size:      "Standard",
					Inventory: 15,
					Image:     "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
				{
					ID:        "var_002",
					Name:      "White - Standard",
					Price:     decimal.RequireFromString("199.99"),
					Color:     "White",
					Size:      "Standard",
					Inventory: 10,
					Image:     "https://images.pexels.com/photos/3394651/pexels-photo-3394651.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
				{
					ID:        "var_003",
					Name:      "Navy Blue - Standard",
					Price:     decimal.RequireFromString("219.99"),
					Color:     "Navy Blue",
					Size:      "Standard",
					Inventory: 8,
					Image:     "https://images.pexels.com/photos/3394665/pexels-photo-3394665.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
			},
		},
		{
			ID:          "prod_002",
			Name:        "Smart Fitness Watch",
			Description: "Track your health and fitness goals with our advanced smartwatch. Features include heart rate monitoring, sleep tracking, GPS, and a vibrant AMOLED display with 5-day battery life.",
			Variants: []ProductVariant{
				{
					ID:        "var_004",
					Name:      "Black - Small",
					Price:     decimal.RequireFromString("249.99"),
					Color:     "Black",
					Size:      "Small",
					Inventory: 20,
					Image:     "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
				{
					ID:        "var_005",
					Name:      "Black - Large",
					Price:     decimal.RequireFromString("249.99"),
					Color:     "Black",
					Size:      "Large",
					Inventory: 15,
					Image:     "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
				{
					ID:        "var_006",
					Name:      "Rose Gold - Small",
					Price:     decimal.RequireFromString("269.99"),
					Color:     "Rose Gold",
					Size:      "Small",
					Inventory: 12,
					Image:     "https://images.pexels.com/photos/437038/pexels-photo-437038.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
			},
		},
		{
			ID:          "prod_003",
			Name:        "Professional Camera Drone",
			Description: "Capture stunning aerial footage with our professional-grade camera drone. Features 4K video, 3-axis gimbal stabilization, 30-minute flight time, and intelligent flight modes.",
			Variants: []ProductVariant{
				{
					ID:        "var_007",
					Name:      "Standard Package",
					Price:     decimal.RequireFromString("799.99"),
					Color:     "Gray",
					Size:      "Standard",
					Inventory: 5,
					Image:     "https://images.pexels.com/photos/1087180/pexels-photo-1087180.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
				{
					ID:        "var_008",
					Name:      "Pro Package",
					Price:     decimal.RequireFromString("999.99"),
					Color:     "Gray",
					Size:      "Standard",
					Inventory: 3,
					Image:     "https://images.pexels.com/photos/1087180/pexels-photo-1087180.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
			},
		},
		{
			ID:          "prod_004",
			Name:        "Ergonomic Office Chair",
			Description: "Work in comfort with our premium ergonomic office chair. Features adjustable lumbar support, breathable mesh back, 4D armrests, and smooth-rolling casters.",
			Variants: []ProductVariant{
				{
					ID:        "var_009",
					Name:      "Black - Standard",
					Price:     decimal.RequireFromString("349.99"),
					Color:     "Black",
					Size:      "Standard",
					Inventory: 25,
					Image:     "https://images.pexels.com/photos/1957478/pexels-photo-1957478.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
				{
					ID:        "var_010",
					Name:      "Gray - Standard",
					Price:     decimal.RequireFromString("349.99"),
					Color:     "Gray",
					Size:      "Standard",
					Inventory: 20,
					Image:     "https://images.pexels.com/photos/1957477/pexels-photo-1957477.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
			},
		},
		{
			ID:          "prod_005",
			Name:        "Smart Home Security Camera",
			Description: "Keep your home safe with our advanced security camera. Features 2K HDR video, night vision, two-way audio, and AI-powered person detection.",
			Variants: []ProductVariant{
				{
					ID:        "var_011",
					Name:      "Indoor Camera",
					Price:     decimal.RequireFromString("129.99"),
					Color:     "White",
					Size:      "Standard",
					Inventory: 30,
					Image:     "https://images.pexels.com/photos/3153198/pexels-photo-3153198.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
				{
					ID:        "var_012",
					Name:      "Outdoor Camera",
					Price:     decimal.RequireFromString("169.99"),
					Color:     "Black",
					Size:      "Standard",
					Inventory: 25,
					Image:     "https://images.pexels.com/photos/3153199/pexels-photo-3153199.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				},
			},
		},
	}
}
