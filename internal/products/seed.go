package products

func intPtr(v int) *int { return &v }

var seedProducts = []Product{
	{ID: 1, Name: "Custom Cup", Price: 18, Category: "Ceramics", Stock: intPtr(24),
		Images:      []string{"https://picsum.photos/seed/cup01/600/400"},
		Description: "Blush-toned ceramic cup with your name."},
	{ID: 2, Name: "Notebook", Price: 22, Category: "Stationery", Stock: intPtr(40),
		Images:      []string{"https://picsum.photos/seed/notebook01/600/400"},
		Description: "Lavender hardcover with custom initials."},
	{ID: 3, Name: "Sticker Pack", Price: 8, Category: "Stationery", Stock: intPtr(120),
		Images:      []string{"https://picsum.photos/seed/stickers01/600/400"},
		Description: "Cute pastel sticker sheets."},
	{ID: 4, Name: "Scented Candle", Price: 12.5, Category: "Home", Stock: intPtr(36),
		Images:      []string{"https://picsum.photos/seed/candle01/600/400"},
		Description: "Vanilla and fig, 30h burn time."},
	{ID: 5, Name: "Tote Bag", Price: 35, Category: "Accessories", Stock: intPtr(18),
		Images:      []string{"https://picsum.photos/seed/tote01/600/400", "https://picsum.photos/seed/tote02/600/400"},
		Description: "Heavy canvas tote with embroidered monogram."},
	{ID: 6, Name: "Gift Wrap Set", Price: 14, Category: "Home", Stock: intPtr(50),
		Images:      []string{"https://picsum.photos/seed/wrap01/600/400"},
		Description: "Three sheets plus ribbon and tags."},
}
