package score

import "github.com/tastesaigon/curator/internal/model"

// DefaultRules returns the matching policy for every curated
// collection. The first block mirrors the original sixteen themed
// collections; the second block restates the later batch of ten
// (budget, date night, heritage, viral and friends) as scorer rules.
func DefaultRules() []Rule {
	return []Rule{
		// Late-night food
		{
			Collection: "saigon-khong-ngu",
			Tags:       []string{"an-khuya"},
			Keywords:   []string{"đêm", "khuya", "24h", "24 giờ", "midnight"},
			Limit:      20,
		},
		// Breakfast spots
		{
			Collection: "bua-sang-nap-nang-luong",
			Tags:       []string{"an-sang"},
			Categories: []string{"pho", "bun", "banh-mi", "xoi", "banh-cuon", "chao", "hu-tieu-mi"},
			Keywords:   []string{"sáng", "breakfast", "phở", "bún", "bánh mì", "xôi", "bánh cuốn", "cháo", "hủ tiếu"},
			Limit:      20,
		},
		// Office lunch
		{
			Collection: "com-trua-van-phong-chat-lu",
			Tags:       []string{"an-trua"},
			Categories: []string{"com"},
			Keywords:   []string{"cơm", "trưa", "lunch", "cơm tấm", "cơm văn phòng", "cơm gà"},
			Limit:      20,
		},
		// Dinner chill
		{
			Collection:  "bua-toi-chill-chill",
			Tags:        []string{"an-toi"},
			Keywords:    []string{"tối", "dinner", "nướng", "lẩu", "BBQ"},
			PriceRanges: []string{"$$", "$$$"},
			Limit:       20,
		},
		// Premium street food
		{
			Collection:  "via-he-tinh-hoa",
			Tags:        []string{"quan-via-he", "binh-dan"},
			Keywords:    []string{"vỉa hè", "hẻm", "lề đường"},
			PriceRanges: []string{"$", "$$"},
			MinRating:   4.0,
			Limit:       20,
		},
		// Rooftops and views
		{
			Collection:  "rooftop-long-gio-view-bac-ty",
			Tags:        []string{"view-dep", "sang-trong"},
			Keywords:    []string{"rooftop", "sky", "terrace", "tầng thượng", "view"},
			PriceRanges: []string{"$$$", "$$$$"},
			Limit:       15,
		},
		// Garden cafes
		{
			Collection: "xanh-muot-mat-cafe-san-vuon",
			Categories: []string{"cafe"},
			Keywords:   []string{"sân vườn", "garden", "xanh", "cây", "vườn", "green", "terrace"},
			Limit:      15,
		},
		// Instagrammable
		{
			Collection: "check-in-song-ao-trieu-like",
			Tags:       []string{"song-ao", "view-dep"},
			Keywords:   []string{"sống ảo", "check-in", "Instagram", "decor", "art", "concept"},
			Limit:      20,
		},
		// Date night corners
		{
			Collection:  "goc-rieng-cho-hai-nguoi",
			Tags:        []string{"phu-hop-hen-ho", "co-phong-rieng"},
			Keywords:    []string{"hẹn hò", "date", "romantic", "couple", "riêng tư"},
			PriceRanges: []string{"$$", "$$$", "$$$$"},
			Limit:       15,
		},
		// Group gatherings
		{
			Collection: "hop-nhom-cang-dong-cang-vui",
			Tags:       []string{"phu-hop-nhom-ban"},
			Categories: []string{"lau-nuong", "nhau-bia"},
			Keywords:   []string{"lẩu", "nướng", "BBQ", "buffet", "nhậu", "bia"},
			Limit:      20,
		},
		// Work cafes
		{
			Collection: "workstation-ly-tuong",
			Tags:       []string{"co-wifi", "co-may-lanh"},
			Categories: []string{"cafe"},
			Keywords:   []string{"workspace", "coworking", "work", "cafe", "cà phê", "coffee"},
			Limit:      15,
		},
		// Solo dining
		{
			Collection:  "mot-minh-van-chill",
			Categories:  []string{"cafe", "pho", "bun", "com", "banh-mi", "hu-tieu-mi"},
			PriceRanges: []string{"$", "$$"},
			Keywords:    []string{"quán nhỏ", "một mình"},
			MinRating:   4.0,
			Limit:       15,
		},
		// Fine dining
		{
			Collection:  "finedining",
			Tags:        []string{"sang-trong"},
			Categories:  []string{"nha-hang", "mon-quoc-te"},
			Keywords:    []string{"fine dining", "restaurant", "nhà hàng", "steak", "wine", "lounge"},
			PriceRanges: []string{"$$$", "$$$$"},
			Limit:       15,
		},
		// Live music venues
		{
			Collection: "thuong-thuc-am-nhac-live",
			Keywords:   []string{"live", "music", "acoustic", "jazz", "bar", "pub", "lounge", "nhạc sống"},
			Categories: []string{"nhau-bia"},
			Limit:      15,
		},
		// Family weekends
		{
			Collection: "cuoi-tuan-cung-gia-dinh",
			Tags:       []string{"phu-hop-gia-dinh", "co-cho-dau-xe"},
			Keywords:   []string{"gia đình", "family", "buffet", "nhà hàng"},
			Limit:      20,
		},
		// Pet friendly
		{
			Collection: "boss-di-cung-sen-vui-ve-pet-friendly",
			Tags:       []string{"pet-friendly"},
			Keywords:   []string{"pet", "dog", "cat", "thú cưng"},
			Limit:      15,
		},

		// Budget-friendly
		{
			Collection:  "an-no-khong-lo-gia",
			Tags:        []string{"binh-dan"},
			Keywords:    []string{"bình dân", "giá rẻ", "no bụng"},
			PriceRanges: []string{"$"},
			Limit:       30,
		},
		// Romantic dining
		{
			Collection:  "date-night-hoan-hao",
			Keywords:    []string{"rooftop", "lounge", "wine", "steak", "fine dining", "italian", "french", "bistro", "romantic", "lãng mạn", "hẹn hò", "candle", "view đẹp", "sang trọng"},
			PriceRanges: []string{"$$$", "$$$$"},
			Limit:       25,
		},
		// Secret alley eateries
		{
			Collection:  "quan-an-trong-hem-bi-mat",
			Keywords:    []string{"hẻm", "hẽm", "lề đường"},
			PriceRanges: []string{"$"},
			Limit:       30,
		},
		// Healthy eating
		{
			Collection: "sai-gon-healthy",
			Categories: []string{"chay"},
			Keywords:   []string{"healthy", "salad", "chay", "vegan", "vegetarian", "organic", "clean", "granola", "acai", "smoothie", "detox", "zen", "yoga", "quinoa", "tofu", "lành mạnh", "thuần chay"},
			Limit:      25,
		},
		// Rainy-day comfort food
		{
			Collection: "an-gi-khi-troi-mua",
			Categories: []string{"pho", "bun", "chao", "lau-nuong", "hu-tieu-mi", "banh-canh"},
			Keywords:   []string{"phở", "bún", "cháo", "lẩu", "hotpot", "súp", "soup", "hủ tiếu", "bánh canh", "bò kho", "ramen", "udon", "nóng hổi"},
			Limit:      30,
		},
		// Heritage spots
		{
			Collection: "sai-gon-xua-quan-co-tram-nam",
			Tags:       []string{"quan-cu-lau-nam"},
			Keywords:   []string{"xưa", "cổ", "truyền thống", "heritage", "hoài niệm", "lâu đời", "lâu năm", "cà phê vợt", "old school"},
			Limit:      25,
		},
		// Buffet
		{
			Collection: "buffet-thoa-thich",
			Categories: []string{"lau-nuong"},
			Keywords:   []string{"buffet", "all you can eat", "thả ga", "bbq", "korean bbq", "yakiniku", "shabu"},
			Limit:      20,
		},
		// Trending on social media
		{
			Collection: "quan-moi-tren-mxh-dang-viral",
			Tags:       []string{"song-ao"},
			Keywords:   []string{"viral", "trend", "check-in", "tiktok"},
			MinReviews: 100,
			MinRating:  4.0,
			Limit:      20,
		},
		// Coffee culture
		{
			Collection: "ca-phe-sai-gon",
			Categories: []string{"cafe"},
			Keywords:   []string{"cà phê", "cafe", "coffee", "cappuccino", "espresso", "latte", "brew", "roast", "drip"},
			Limit:      30,
		},
		// Noodle soups
		{
			Collection: "bun-pho-dinh-cao",
			Categories: []string{"pho", "bun"},
			Keywords:   []string{"phở", "bún"},
			Limit:      30,
		},
	}
}

// DefaultCollections returns the static collection metadata matching
// DefaultRules, used by the taxonomy seeder. Collections that already
// existed when the original site launched carry only title and slug.
func DefaultCollections() []model.Collection {
	return []model.Collection{
		{Title: "Sài Gòn Không Ngủ", Slug: "saigon-khong-ngu", Emoji: "🌙"},
		{Title: "Bữa Sáng Nạp Năng Lượng", Slug: "bua-sang-nap-nang-luong", Emoji: "🍳"},
		{Title: "Cơm Trưa Văn Phòng Chất Lừ", Slug: "com-trua-van-phong-chat-lu", Emoji: "🍱"},
		{Title: "Bữa Tối Chill Chill", Slug: "bua-toi-chill-chill", Emoji: "🌆"},
		{Title: "Vỉa Hè Tinh Hoa", Slug: "via-he-tinh-hoa", Emoji: "🪑"},
		{Title: "Rooftop Lộng Gió, View Bạc Tỷ", Slug: "rooftop-long-gio-view-bac-ty", Emoji: "🏙️"},
		{Title: "Xanh Mướt Mắt - Cafe Sân Vườn", Slug: "xanh-muot-mat-cafe-san-vuon", Emoji: "🌿"},
		{Title: "Check-in Sống Ảo Triệu Like", Slug: "check-in-song-ao-trieu-like", Emoji: "📸"},
		{Title: "Góc Riêng Cho Hai Người", Slug: "goc-rieng-cho-hai-nguoi", Emoji: "💑"},
		{Title: "Họp Nhóm Càng Đông Càng Vui", Slug: "hop-nhom-cang-dong-cang-vui", Emoji: "🎉"},
		{Title: "Workstation Lý Tưởng", Slug: "workstation-ly-tuong", Emoji: "💻"},
		{Title: "Một Mình Vẫn Chill", Slug: "mot-minh-van-chill", Emoji: "🧘"},
		{Title: "Fine Dining Sài Gòn", Slug: "finedining", Emoji: "🍷"},
		{Title: "Thưởng Thức Âm Nhạc Live", Slug: "thuong-thuc-am-nhac-live", Emoji: "🎷"},
		{Title: "Cuối Tuần Cùng Gia Đình", Slug: "cuoi-tuan-cung-gia-dinh", Emoji: "👨‍👩‍👧‍👦"},
		{Title: "\"Boss\" Đi Cùng, \"Sen\" Vui Vẻ", Slug: "boss-di-cung-sen-vui-ve-pet-friendly", Emoji: "🐾"},
		{
			Title:       "Ăn No Không Lo Giá",
			Slug:        "an-no-khong-lo-gia",
			Description: "Những quán ăn ngon bổ rẻ, ăn no căng bụng mà ví vẫn dày. Thiên đường ẩm thực bình dân Sài Gòn!",
			Mood:        "Bình dân, no bụng",
			Emoji:       "💰",
		},
		{
			Title:       "Date Night Hoàn Hảo",
			Slug:        "date-night-hoan-hao",
			Description: "Không gian lãng mạn, ánh nến lung linh, và những bữa tối đáng nhớ cho hai người. Hẹn hò Sài Gòn chưa bao giờ dễ đến thế.",
			Mood:        "Lãng mạn, sang trọng",
			Emoji:       "🕯️",
		},
		{
			Title:       "Quán Ăn Trong Hẻm Bí Mật",
			Slug:        "quan-an-trong-hem-bi-mat",
			Description: "Lạc vào những con hẻm nhỏ, khám phá quán ăn bí mật mà chỉ dân địa phương mới biết. Đồ ăn ngon, giá rẻ, vibe chill.",
			Mood:        "Bình dân, phiêu lưu",
			Emoji:       "🏘️",
		},
		{
			Title:       "Sài Gòn Healthy",
			Slug:        "sai-gon-healthy",
			Description: "Eat clean, sống xanh! Những địa điểm ăn uống lành mạnh, thuần chay, salad, smoothie bowl và healthy food ở Sài Gòn.",
			Mood:        "Healthy, xanh",
			Emoji:       "🥗",
		},
		{
			Title:       "Ăn Gì Khi Trời Mưa?",
			Slug:        "an-gi-khi-troi-mua",
			Description: "Mưa Sài Gòn rả rích, không gì bằng một tô phở nóng, bát bún bò huế hay ly trà nóng. Comfort food cho ngày mưa!",
			Mood:        "Ấm cúng, comfort",
			Emoji:       "🌧️",
		},
		{
			Title:       "Sài Gòn Xưa — Quán Cổ Trăm Năm",
			Slug:        "sai-gon-xua-quan-co-tram-nam",
			Description: "Những quán ăn mang đậm hồn Sài Gòn xưa, từ xe hủ tiếu đầu hẻm đến quán cà phê vợt. Hoài niệm một thời.",
			Mood:        "Hoài niệm, cổ điển",
			Emoji:       "🏛️",
		},
		{
			Title:       "Buffet Thoả Thích",
			Slug:        "buffet-thoa-thich",
			Description: "Ăn thả ga không lo giá! Tổng hợp buffet ngon nhất Sài Gòn — từ lẩu nướng bình dân đến buffet hải sản cao cấp.",
			Mood:        "Ăn thả ga",
			Emoji:       "🍖",
		},
		{
			Title:       "Quán Mới Trên MXH Đang Viral",
			Slug:        "quan-moi-tren-mxh-dang-viral",
			Description: "Trending trên TikTok, Instagram và Facebook! Những quán ăn mới nhất đang được giới trẻ Sài Gòn check-in rần rần.",
			Mood:        "Trendy, viral",
			Emoji:       "📱",
		},
		{
			Title:       "Cà Phê Sài Gòn",
			Slug:        "ca-phe-sai-gon",
			Description: "Từ cà phê vợt đầu hẻm đến specialty coffee, Sài Gòn là thiên đường cà phê. Nơi mỗi ly cà phê kể một câu chuyện.",
			Mood:        "Chill, thư giãn",
			Emoji:       "☕",
		},
		{
			Title:       "Bún & Phở Đỉnh Cao",
			Slug:        "bun-pho-dinh-cao",
			Description: "Tinh hoa ẩm thực Việt Nam — từ phở Bắc đậm đà đến bún bò Huế cay nồng. Những tô bún phở ngon nhất Sài Gòn.",
			Mood:        "Đậm đà, truyền thống",
			Emoji:       "🍜",
		},
	}
}
