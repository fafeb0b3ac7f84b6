package main

import (
	"storefront/internal/domain/model"
	"storefront/internal/infra/db"
	"storefront/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func f(v float64) *float64 { return &v }

// カタログ初期データ。既存のproductsは全部入れ替える。
var products = []model.Product{
	{
		Name:          "Pro Wireless Headphones",
		Description:   "Noise-cancelling over-ear headphones with hi-res audio, adaptive ANC and a 40-hour battery.",
		Price:         299.99,
		OriginalPrice: f(399.99),
		Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
		Category:      "Electronics",
		Brand:         "AudioPro",
		Rating:        4.8,
		ReviewsCount:  2341,
		Stock:         50,
		Featured:      true,
	},
	{
		Name:          "Ultra Slim Laptop 15\"",
		Description:   "Ultra-portable laptop with 16GB RAM, 512GB SSD and an all-day battery for creators on the go.",
		Price:         1299.99,
		OriginalPrice: f(1499.99),
		Image:         "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=500",
		Category:      "Electronics",
		Brand:         "TechEdge",
		Rating:        4.9,
		ReviewsCount:  1892,
		Stock:         30,
		Featured:      true,
	},
	{
		Name:          "Smart Watch Series X",
		Description:   "Fitness and health tracking with ECG, GPS and an always-on AMOLED display. Water resistant to 50m.",
		Price:         449.99,
		OriginalPrice: f(499.99),
		Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
		Category:      "Electronics",
		Brand:         "WearTech",
		Rating:        4.7,
		ReviewsCount:  3456,
		Stock:         75,
		Featured:      true,
	},
	{
		Name:         "4K Action Camera",
		Description:  "Rugged waterproof action camera with 4K60 recording, stabilization and live streaming.",
		Price:        349.99,
		Image:        "https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?w=500",
		Category:     "Electronics",
		Brand:        "AdventureCam",
		Rating:       4.6,
		ReviewsCount: 987,
		Stock:        40,
	},
	{
		Name:          "Classic Denim Jacket",
		Description:   "Timeless denim jacket in washed indigo. Durable stitching, relaxed fit, ages beautifully.",
		Price:         89.99,
		OriginalPrice: f(119.99),
		Image:         "https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=500",
		Category:      "Clothing",
		Brand:         "UrbanThread",
		Rating:        4.5,
		ReviewsCount:  756,
		Stock:         120,
		Featured:      true,
	},
	{
		Name:         "Premium Cotton T-Shirt",
		Description:  "Heavyweight organic cotton tee with a clean boxy cut. Pre-shrunk and built to last.",
		Price:        29.99,
		Image:        "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
		Category:     "Clothing",
		Brand:        "UrbanThread",
		Rating:       4.4,
		ReviewsCount: 1203,
		Stock:        200,
	},
	{
		Name:          "Performance Running Shoes",
		Description:   "Lightweight trainers with responsive foam cushioning for daily miles and race day.",
		Price:         139.99,
		OriginalPrice: f(179.99),
		Image:         "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
		Category:      "Sports",
		Brand:         "StridePro",
		Rating:        4.7,
		ReviewsCount:  2810,
		Stock:         85,
		Featured:      true,
	},
	{
		Name:         "Yoga Mat Pro",
		Description:  "Extra-thick non-slip mat with alignment guides and a carry strap.",
		Price:        49.99,
		Image:        "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500",
		Category:     "Sports",
		Brand:        "ZenFit",
		Rating:       4.6,
		ReviewsCount: 1544,
		Stock:        150,
	},
	{
		Name:          "Ceramic Pour-Over Set",
		Description:   "Hand-glazed ceramic dripper and carafe for a slow, clean cup.",
		Price:         64.99,
		OriginalPrice: f(79.99),
		Image:         "https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=500",
		Category:      "Home",
		Brand:         "BrewCraft",
		Rating:        4.8,
		ReviewsCount:  432,
		Stock:         60,
	},
	{
		Name:         "Linen Throw Blanket",
		Description:  "Stonewashed linen throw in muted tones. Breathable in summer, warm in winter.",
		Price:        79.99,
		Image:        "https://images.unsplash.com/photo-1580301762395-83604735f2b4?w=500",
		Category:     "Home",
		Brand:        "HearthHome",
		Rating:       4.5,
		ReviewsCount: 289,
		Stock:        90,
	},
	{
		Name:          "Bestselling Novel Collection",
		Description:   "Box set of three award-winning contemporary novels in hardcover.",
		Price:         54.99,
		OriginalPrice: f(74.99),
		Image:         "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=500",
		Category:      "Books",
		Brand:         "Paperbound",
		Rating:        4.9,
		ReviewsCount:  678,
		Stock:         110,
	},
	{
		Name:         "Illustrated Cookbook",
		Description:  "120 seasonal recipes with step-by-step photography and pantry guides.",
		Price:        39.99,
		Image:        "https://images.unsplash.com/photo-1589998059171-988d887df646?w=500",
		Category:     "Books",
		Brand:        "Paperbound",
		Rating:       4.7,
		ReviewsCount: 356,
		Stock:        95,
	},
}

func main() {
	_ = godotenv.Load()

	if err := logger.Init("development"); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.Get()

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	//入れ替え
	if err := gormDB.Where("1 = 1").Delete(&model.Product{}).Error; err != nil {
		log.Fatal("clear products failed", zap.Error(err))
	}

	if err := gormDB.Create(&products).Error; err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	log.Info("seeded products", zap.Int("count", len(products)))
}
