package classify

import "github.com/tastesaigon/curator/internal/model"

// DefaultCategories returns the static category taxonomy: 20 Vietnamese
// food and drink categories covering the published listings.
func DefaultCategories() []model.Category {
	return []model.Category{
		{Name: "Phở", Slug: "pho"},
		{Name: "Bún", Slug: "bun"},
		{Name: "Cơm", Slug: "com"},
		{Name: "Bánh mì", Slug: "banh-mi"},
		{Name: "Cà phê", Slug: "cafe"},
		{Name: "Ốc & Hải sản", Slug: "oc-hai-san"},
		{Name: "Lẩu & Nướng", Slug: "lau-nuong"},
		{Name: "Chè & Tráng miệng", Slug: "che-trang-mieng"},
		{Name: "Hủ tiếu & Mì", Slug: "hu-tieu-mi"},
		{Name: "Chay", Slug: "chay"},
		{Name: "Nhậu & Bia", Slug: "nhau-bia"},
		{Name: "Bánh canh", Slug: "banh-canh"},
		{Name: "Cháo", Slug: "chao"},
		{Name: "Bánh cuốn", Slug: "banh-cuon"},
		{Name: "Xôi", Slug: "xoi"},
		{Name: "Gỏi cuốn & Nem", Slug: "goi-cuon-nem"},
		{Name: "Nhà hàng", Slug: "nha-hang"},
		{Name: "Kem & Gelato", Slug: "kem-gelato"},
		{Name: "Nước uống & Sinh tố", Slug: "nuoc-uong"},
		{Name: "Món quốc tế", Slug: "mon-quoc-te"},
	}
}

// DefaultRules returns the primary keyword table mapping location names
// to category slugs. Declaration order is the matching priority: a name
// hitting keywords from two rules goes to the earlier rule.
//
// Keywords carry their diacritics; normalization folds both keyword and
// name, so "phở" also covers "pho". Short tokens whose folded form
// collides with unrelated words are boundary-anchored with explicit
// spaces (" phở " would otherwise hit "phong" once folded).
func DefaultRules() []Rule {
	return []Rule{
		{Category: "pho", Keywords: []string{" phở ", "pho "}},
		{Category: "bun", Keywords: []string{"bún "}},
		{Category: "banh-canh", Keywords: []string{"bánh canh"}},
		{Category: "banh-cuon", Keywords: []string{"bánh cuốn", "bánh ướt"}},
		{Category: "banh-mi", Keywords: []string{"bánh mì", "banh mi", "bánh mỳ", "sandwich", "hamburger", "burger"}},
		{Category: "chao", Keywords: []string{" cháo "}},
		{Category: "xoi", Keywords: []string{" xôi "}},
		{Category: "goi-cuon-nem", Keywords: []string{"gỏi cuốn", "nem nướng", "nem cuốn", "bì cuốn", "cuốn diếp"}},
		{Category: "hu-tieu-mi", Keywords: []string{
			"hủ tiếu", "hủ tíu", "hu tieu", " mì ", "mì quảng",
			"mì vịt", "mì gia", "mì xào", "sủi cảo", "hoành thánh",
			"ramen", "sushi", "udon", "soba", "mì ý", "spaghetti",
		}},
		{Category: "com", Keywords: []string{
			"cơm tấm", " cơm ", "com tam", "com binh dan", "cơm hủ",
			"cơm gà", "cơm niêu", "cơm sườn",
		}},
		{Category: "chay", Keywords: []string{"chay", "vegetarian", "vegan", "zen house"}},
		{Category: "oc-hai-san", Keywords: []string{
			" ốc ", " ghẹ ", "hải sản", "seafood", " cua ", " hàu ",
			" tôm ", "càng ghẹ", " sò ", "nghêu",
		}},
		{Category: "lau-nuong", Keywords: []string{
			" lẩu ", "nướng", "hotpot", "bbq", "buffet nướng",
			"thịt nướng", "steak", "bò nướng", "gà nướng",
		}},
		{Category: "nhau-bia", Keywords: []string{
			"nhậu", " bia ", "beer", "quán nhậu", "rooftop", "lounge",
			"bar ", "cocktail", "bistro", "wine", "pub",
		}},
		{Category: "cafe", Keywords: []string{
			"cà phê", "cafe", "coffee", "ca phe", "caffe", "kafe",
			"cappuccino", "matcha", " trà ", "tea ", "acoustic",
		}},
		{Category: "kem-gelato", Keywords: []string{" kem ", "gelato", "ice cream", "yogurt", "sữa chua"}},
		{Category: "che-trang-mieng", Keywords: []string{
			" chè ", "bánh ", "dessert", "bánh tráng", "bánh flan",
			"chuối nướng", "chuối nếp", "tàu hũ", "đậu hũ", "bánh bao",
			"bánh bột", "bánh khọt", "bánh xèo", "takoyaki", "bánh bạch tuộc",
			"bánh gạo", "tokbokki", "bánh tráng trộn", "bánh cống",
			"bánh đúc", "bánh plan",
		}},
		{Category: "nuoc-uong", Keywords: []string{
			"sinh tố", "nước ép", "nước mía", "juice", "smoothie",
			"trà sữa", "nước uống", "fruit", "boba", "trà trái cây",
		}},
		{Category: "nha-hang", Keywords: []string{
			"nhà hàng", "restaurant", "dining", "quán ăn", "ẩm thực",
		}},
		{Category: "mon-quoc-te", Keywords: []string{
			"pizza", "pasta", "taco", "indian", "korean", "hàn quốc",
			"japanese", "nhật", " thái ", "thai food", "mexican", "french",
			"italian", "dimsum", "dim sum",
		}},
	}
}

// DefaultTags returns the static tag taxonomy. Tags are assigned by
// editors, not by this tool, but the collection scorer consumes them
// and the taxonomy seeder creates them.
func DefaultTags() []model.Tag {
	return []model.Tag{
		// Meal occasions
		{Name: "Ăn sáng", Slug: "an-sang"},
		{Name: "Ăn trưa", Slug: "an-trua"},
		{Name: "Ăn tối", Slug: "an-toi"},
		{Name: "Ăn khuya", Slug: "an-khuya"},
		{Name: "Ăn vặt", Slug: "an-vat"},
		{Name: "Bình dân", Slug: "binh-dan"},
		{Name: "Sang trọng", Slug: "sang-trong"},
		{Name: "Quán vỉa hè", Slug: "quan-via-he"},
		// Features
		{Name: "Có wifi", Slug: "co-wifi"},
		{Name: "Có máy lạnh", Slug: "co-may-lanh"},
		{Name: "Có phòng riêng", Slug: "co-phong-rieng"},
		{Name: "Phù hợp gia đình", Slug: "phu-hop-gia-dinh"},
		{Name: "Phù hợp hẹn hò", Slug: "phu-hop-hen-ho"},
		{Name: "Phù hợp nhóm bạn", Slug: "phu-hop-nhom-ban"},
		{Name: "Có giao hàng", Slug: "co-giao-hang"},
		{Name: "Có chỗ đậu xe", Slug: "co-cho-dau-xe"},
		// Dietary
		{Name: "Thuần chay", Slug: "thuan-chay"},
		{Name: "Có món chay", Slug: "co-mon-chay"},
		{Name: "Không gluten", Slug: "khong-gluten"},
		// Cuisine origin
		{Name: "Món Huế", Slug: "mon-hue"},
		{Name: "Món Hà Nội", Slug: "mon-ha-noi"},
		{Name: "Món miền Tây", Slug: "mon-mien-tay"},
		{Name: "Món Hoa", Slug: "mon-hoa"},
		{Name: "Món Nhật", Slug: "mon-nhat"},
		{Name: "Món Hàn", Slug: "mon-han"},
		{Name: "Món Thái", Slug: "mon-thai"},
		{Name: "Món Ấn Độ", Slug: "mon-an-do"},
		{Name: "Món Ý", Slug: "mon-y"},
		// Special
		{Name: "Michelin", Slug: "michelin"},
		{Name: "Quán cũ lâu năm", Slug: "quan-cu-lau-nam"},
		{Name: "View đẹp", Slug: "view-dep"},
		{Name: "Sống ảo", Slug: "song-ao"},
		{Name: "Pet-friendly", Slug: "pet-friendly"},
	}
}
