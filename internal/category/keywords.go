package category

// keywordEntry holds the keyword list for one category. Entries are scored in
// declaration order and ties keep the earlier category, so this is a slice,
// not a map.
type keywordEntry struct {
	label    Label
	keywords []string
}

// keywordTable maps categories to merchant names, dish names, and context
// words seen on Indian receipts. Loaded once, never mutated.
var keywordTable = []keywordEntry{
	{Food, []string{
		"zomato", "swiggy", "dominos", "pizza", "burger", "mcdonald", "kfc",
		"subway", "starbucks", "bakery", "snacks", "ice cream",
		"food delivery", "groceries", "supermarket", "bigbasket", "blinkit",
		"zepto", "instamart", "dmart", "more supermarket", "reliance fresh",
	}},
	{Restaurants, []string{
		"restaurant", "diner", "bistro", "eatery", "dhaba", "kitchen", "grill",
		"buffet", "bar & grill", "fine dining", "casual dining", "table service",
		"veg treat", "foodlink", "food link", "family restaurant", "food plaza",
		"food court", "cafe", "coffee", "tandoor", "biryani", "chinese", "italian",
		"mexican", "thai", "indian", "mughlai", "punjabi", "south indian",
		"north indian", "continental", "multi cuisine", "pure veg", "non veg",
		"canteen", "mess", "tiffin", "lunch", "dinner", "breakfast", "brunch",
		"starter", "main course", "dessert", "appetizer", "combo meal", "thali",
		"paratha", "dosa", "idli", "vada", "sambar", "chutney", "naan", "roti",
		"curry", "gravy", "rice", "dal", "paneer", "chicken", "mutton", "fish",
		"prawns", "kebab", "tikka", "manchurian", "noodles", "fried rice",
		"momos", "chowmein", "spring roll", "soup", "salad", "raita",
	}},
	{Drinks, []string{
		"bar", "pub", "brewery", "wine", "beer", "whiskey", "vodka", "rum",
		"cocktail", "mocktail", "juice", "smoothie", "shake", "soda", "cola",
		"pepsi", "coca cola", "sprite", "fanta", "thums up", "limca",
	}},
	{Transport, []string{
		"uber", "ola", "rapido", "lyft", "taxi", "cab", "auto", "rickshaw",
		"metro", "railway", "irctc", "train", "bus", "redbus", "abhibus",
		"airport", "airlines", "flight", "indigo", "spicejet", "air india",
		"vistara", "goair", "parking", "toll", "fastag",
	}},
	{Fuel, []string{
		"petrol", "diesel", "cng", "lpg", "gas station", "fuel", "petroleum",
		"indian oil", "bharat petroleum", "hp", "hindustan petroleum", "reliance",
		"shell", "essar", "nayara", "ev charging", "electric vehicle",
	}},
	{Clothes, []string{
		"zara", "h&m", "uniqlo", "levis", "nike", "adidas", "puma", "reebok",
		"pantaloons", "westside", "lifestyle", "shoppers stop", "max", "fbb",
		"reliance trends", "myntra", "ajio", "fashion", "garments", "textile",
		"cloth", "shirt", "pant", "jeans", "dress", "saree", "kurti", "footwear",
		"shoes", "sandals", "boots", "sneakers",
	}},
	{Education, []string{
		"school", "college", "university", "tuition", "coaching", "classes",
		"institute", "academy", "course", "certification", "exam", "fee",
		"books", "stationery", "notebook", "pen", "pencil", "udemy", "coursera",
		"unacademy", "byjus", "vedantu", "physics wallah", "library",
	}},
	{Health, []string{
		"hospital", "clinic", "doctor", "medicine", "pharmacy", "medical",
		"apollo", "fortis", "max healthcare", "aiims", "medplus", "netmeds",
		"pharmeasy", "1mg", "healthkart", "lab", "diagnostic", "test", "scan",
		"xray", "mri", "ct scan", "dental", "eye care", "optician", "gym",
		"fitness", "yoga", "wellness", "spa", "therapy",
	}},
	{Hotel, []string{
		"hotel", "resort", "oyo", "treebo", "fab hotels", "taj", "oberoi",
		"marriott", "hilton", "hyatt", "ihg", "radisson", "novotel", "ibis",
		"airbnb", "booking.com", "makemytrip", "goibibo", "trivago", "yatra",
		"hostel", "guest house", "lodge", "accommodation", "stay", "room rent",
	}},
	{Fun, []string{
		"movie", "cinema", "pvr", "inox", "cinepolis", "bookmyshow", "netflix",
		"amazon prime", "hotstar", "disney", "spotify", "youtube", "gaming",
		"playstation", "xbox", "steam", "amusement", "theme park", "concert",
		"event", "ticket", "entertainment", "club", "disco", "party",
	}},
	{Personal, []string{
		"salon", "parlour", "haircut", "beauty", "cosmetics", "makeup", "skincare",
		"perfume", "grooming", "nykaa", "sephora", "lakme", "loreal", "dove",
		"nivea", "garnier", "personal care", "hygiene", "soap", "shampoo",
	}},
	{Pets, []string{
		"pet", "dog", "cat", "bird", "fish", "pet shop", "pet store", "vet",
		"veterinary", "animal", "pet food", "pedigree", "whiskas", "grooming",
	}},
	{Others, []string{
		"amazon", "flipkart", "meesho", "snapdeal", "ebay", "alibaba", "shopping",
		"mall", "store", "supermarket", "bigbasket", "grofers", "blinkit",
		"zepto", "instamart", "dmart", "reliance fresh", "more", "spar",
		"electronics", "mobile", "laptop", "computer", "appliance", "furniture",
		"home decor", "ikea", "pepperfry", "urban ladder", "gift", "recharge",
		"bill payment", "electricity", "water", "rent", "insurance", "emi",
	}},
}

// restaurantIndicators are strong dine-in context phrases. Generic keyword
// scoring under-detects restaurants because receipts list dish names rather
// than business-type words, so each hit here carries double weight.
var restaurantIndicators = []string{
	"table no", "table #", "waiter", "cover", "kot", "kitchen order",
	"dine in", "dine-in", "fssai", "starter", "main course", "dessert",
	"veg", "non-veg", "non veg", "paneer", "biryani", "roti", "naan",
	"dal", "curry", "rice", "thali", "paratha", "dosa", "idli", "sambar",
	"veg treat", "foodlink", "food link", "kitchen", "restaurant",
	"cafe", "dhaba", "family restaurant", "pure veg", "multi cuisine",
}
