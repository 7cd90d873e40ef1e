package store

import "github.com/willowmart/storefront/internal/model"

// Seed loads the fixture catalog: six categories and twenty products,
// inserted in a fixed order. Category itemCount values are denormalized
// fixture data and are not derived from the product list.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range seedCategories {
		s.insertCategory(c)
	}
	for _, p := range seedProducts {
		s.insertProduct(p)
	}
}

var seedCategories = []model.Category{
	{Name: "Electronics", Description: "Latest tech gadgets", Image: "https://images.unsplash.com/photo-1560472354-b33ff0c44a43", ItemCount: 6},
	{Name: "Fashion", Description: "Trendy clothing and accessories", Image: "https://images.unsplash.com/photo-1445205170230-053b83016050", ItemCount: 4},
	{Name: "Home & Garden", Description: "Everything for your home", Image: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7", ItemCount: 3},
	{Name: "Sports", Description: "Athletic gear and equipment", Image: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b", ItemCount: 2},
	{Name: "Books", Description: "Knowledge and entertainment", Image: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570", ItemCount: 1},
	{Name: "Health & Beauty", Description: "Personal care products", Image: "https://images.unsplash.com/photo-1596462502278-27bfdc403348", ItemCount: 2},
}

var seedProducts = []model.Product{
	{Name: "Premium Headphones", Description: "High-quality audio experience", Price: "199.99", Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e", Category: "Electronics", InStock: true},
	{Name: "Smart Watch Pro", Description: "Advanced fitness tracking", Price: "299.99", Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30", Category: "Electronics", InStock: true},
	{Name: "Vintage Camera", Description: "Classic photography", Price: "449.99", Image: "https://images.unsplash.com/photo-1606983340126-99ab4feaa64a", Category: "Electronics", InStock: true},
	{Name: "Gaming Laptop", Description: "High-performance gaming", Price: "1299.99", Image: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853", Category: "Electronics", InStock: true},
	{Name: "Running Shoes", Description: "Premium athletic footwear", Price: "89.99", Image: "https://images.unsplash.com/photo-1549298916-b41d501d3772", Category: "Fashion", InStock: true},
	{Name: "Wireless Earbuds", Description: "True wireless audio", Price: "129.99", Image: "https://images.unsplash.com/photo-1590658268037-6bf12165a8df", Category: "Electronics", InStock: true},
	{Name: "Travel Backpack", Description: "Durable & lightweight", Price: "59.99", Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62", Category: "Fashion", InStock: true},
	{Name: "Mechanical Keyboard", Description: "RGB gaming keyboard", Price: "149.99", Image: "https://images.unsplash.com/photo-1541140532154-b024d705b90a", Category: "Electronics", InStock: true},
	{Name: "Coffee Mug Set", Description: "Ceramic coffee mugs", Price: "24.99", Image: "https://images.unsplash.com/photo-1509042239860-f550ce710b93", Category: "Home & Garden", InStock: true},
	{Name: "LED Desk Lamp", Description: "Adjustable brightness", Price: "39.99", Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d", Category: "Home & Garden", InStock: true},
	{Name: "Latest Smartphone", Description: "Premium flagship model", Price: "799.99", Image: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9", Category: "Electronics", InStock: true},
	{Name: "Pro Tablet", Description: "Perfect for creativity", Price: "599.99", Image: "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0", Category: "Electronics", InStock: true},
	{Name: "Yoga Mat", Description: "Non-slip exercise mat", Price: "29.99", Image: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b", Category: "Sports", InStock: true},
	{Name: "Water Bottle", Description: "Stainless steel bottle", Price: "19.99", Image: "https://images.unsplash.com/photo-1602143407151-7111542de6e8", Category: "Sports", InStock: true},
	{Name: "Skincare Set", Description: "Complete skincare routine", Price: "79.99", Image: "https://images.unsplash.com/photo-1556228720-195a672e8a03", Category: "Health & Beauty", InStock: true},
	{Name: "Face Mask Set", Description: "Hydrating face masks", Price: "34.99", Image: "https://images.unsplash.com/photo-1571781926291-c477ebfd024b", Category: "Health & Beauty", InStock: true},
	{Name: "Programming Book", Description: "Learn modern development", Price: "49.99", Image: "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c", Category: "Books", InStock: true},
	{Name: "Indoor Plant", Description: "Green monstera plant", Price: "34.99", Image: "https://images.unsplash.com/photo-1416879595882-3373a0480b5b", Category: "Home & Garden", InStock: true},
	{Name: "Casual T-Shirt", Description: "Comfortable cotton tee", Price: "19.99", Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab", Category: "Fashion", InStock: true},
	{Name: "Denim Jeans", Description: "Classic blue jeans", Price: "69.99", Image: "https://images.unsplash.com/photo-1542272604-787c3835535d", Category: "Fashion", InStock: true},
}
