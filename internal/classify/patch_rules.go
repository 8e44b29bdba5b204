package classify

// PatchRules returns the expanded keyword table used by the second
// classification pass. It runs only against locations the primary pass
// left without a category, with the same first-match-wins algorithm.
// The residual set it cannot place is reported for manual review, which
// is expected, not an error.
func PatchRules() []Rule {
	return []Rule{
		// Beef and goat grills
		{Category: "lau-nuong", Keywords: []string{
			"bò bít tết", "bò né", "bò tơ", "bò lá lốt", "bê thui",
			"bò tùng xẻo", " dê ", "dê tươi", "dê phố", "dê vàng",
			"heo quay", "vịt quay", "roast duck", "thui",
		}},
		// Street snacks and sweets
		{Category: "che-trang-mieng", Keywords: []string{
			"bột chiên", "há cảo", "donut", "cake", "sweet", "brunch",
			"cream", "chuối", "paoli", "dừng chân", "sầu riêng",
		}},
		// Crab soups and fish noodle bowls
		{Category: "bun", Keywords: []string{
			"riêu", "bún cá", "bun bo", "bun ca", "bún riêu", "bún bò",
		}},
		// Noodle shops without diacritics, plus Japanese
		{Category: "hu-tieu-mi", Keywords: []string{
			"mi ga", "mi quang", "mi gia",
			"izakaya", "sushi ", "sashimi",
		}},
		// Porridge variants
		{Category: "chao", Keywords: []string{
			"chao suon", "porridge", "congee", "frog porridge",
		}},
		// Shellfish spots with house names
		{Category: "oc-hai-san", Keywords: []string{
			"link ốc", "bé ốc", "ốc khánh", "cá lóc", "cá kèo",
			"vua chả cá",
		}},
		// International chicken, Korean, halal
		{Category: "mon-quoc-te", Keywords: []string{
			"chicken", "gà rán", "jeju", "dookki", "topokki", "tokbokki",
			"gaucho", "burger", "taco ", "tandoor", "halal",
			"izakaya ", "kamura",
		}},
		{Category: "xoi", Keywords: []string{"xoi ga", "sticky rice"}},
		{Category: "goi-cuon-nem", Keywords: []string{
			"nem chua", "cuốn sài gòn", "cuốn cao thắng", "hang cuon",
			"bếp cuốn",
		}},
		{Category: "cafe", Keywords: []string{
			"café", "garden", "running bean", "sofé",
			"pet me", "pet coffee", "mèo",
		}},
		// General dining, named houses that fit nowhere else
		{Category: "nha-hang", Keywords: []string{
			"quán ăn", "food street", "street food", "market", "buffet",
			"cuisine", "recipe", "bếp ", "tiệm ăn", "quán mộc",
			"quán nhà", "hẻm quán", "deck saigon", "square one",
			"quince", "opera", "strand", "sole saigon", "oryz",
			"dim tu tac", "food connexion", "quán ba tròn",
			"hoa viên", "hàng dương", "quán hợp lực",
			"quán ông tiên", "quán cô béo", "quán a cường",
			"wagon wheel", "điểm tâm", "on the upper",
			"latest recipe", "dalat corner", "cloud nine",
			"ghiền quán", "mủn quán", "tam anh quán",
			"madame lam", "bếp hà nội", "bếp huế", "góc huế",
			"huế thương", "naked flavors", "cửu long quán",
			"tiệm vịt", "trần quang ký", "vịt quay",
			"sesan", "quán sở", "broken rice",
			"ben nghe", "ben thanh",
		}},
		{Category: "nuoc-uong", Keywords: []string{
			"tiger sugar", "tigersugar", "gong cha", " trà ",
			"mê trà", "me tra", "royaltea",
		}},
		{Category: "kem-gelato", Keywords: []string{
			" kem ", "glacier", "roseice", "i love cream", "i love kem",
		}},
		{Category: "com", Keywords: []string{"broken rice", "huyen broken"}},
	}
}
