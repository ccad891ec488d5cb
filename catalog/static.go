package catalog

// StaticCatalog serves the built-in Egyptian marketplace configuration. It
// implements Provider and doubles as the fixture the tests run against.
type StaticCatalog struct {
	categories   map[string]Category
	governorates []string
}

var _ Provider = (*StaticCatalog)(nil)

// NewStaticCatalog returns a catalog with the built-in categories and
// governorate list.
func NewStaticCatalog() *StaticCatalog {
	byID := make(map[string]Category, len(staticCategories))
	for _, c := range staticCategories {
		byID[c.ID] = c
	}
	return &StaticCatalog{
		categories:   byID,
		governorates: staticGovernorates,
	}
}

// CategoryByID implements CategoryProvider.
func (s *StaticCatalog) CategoryByID(id string) (Category, bool) {
	c, ok := s.categories[id]
	return c, ok
}

// Governorates implements GovernorateProvider. Ordered most common first.
func (s *StaticCatalog) Governorates() []string {
	return s.governorates
}

var staticGovernorates = []string{
	"القاهرة",
	"الجيزة",
	"الاسكندرية",
	"الدقهلية",
	"الشرقية",
	"الغربية",
	"القليوبية",
	"المنوفية",
	"البحيرة",
	"كفر الشيخ",
	"دمياط",
	"بورسعيد",
	"الاسماعيلية",
	"السويس",
	"الفيوم",
	"بني سويف",
	"المنيا",
	"اسيوط",
	"سوهاج",
	"قنا",
	"الاقصر",
	"اسوان",
	"مطروح",
	"البحر الاحمر",
	"الوادي الجديد",
	"شمال سيناء",
	"جنوب سيناء",
}

var staticCategories = []Category{
	{
		ID:   "phones",
		Icon: "📱",
		Name: "موبايلات",
		Fields: []Field{
			{ID: "brand", Options: []Option{
				{Value: "apple", Label: "آيفون"},
				{Value: "samsung", Label: "سامسونج"},
				{Value: "xiaomi", Label: "شاومي"},
				{Value: "oppo", Label: "اوبو"},
				{Value: "huawei", Label: "هواوي"},
				{Value: "realme", Label: "ريلمي"},
				{Value: "vivo", Label: "فيفو"},
				{Value: "nokia", Label: "نوكيا"},
				{Value: "other", Label: "ماركة تانية"},
			}},
			{ID: "storage"},
			{ID: "condition", Options: []Option{
				{Value: "new", Label: "جديد"},
				{Value: "used", Label: "مستعمل"},
			}},
		},
	},
	{
		ID:   "cars",
		Icon: "🚗",
		Name: "عربيات",
		Fields: []Field{
			{ID: "brand", Options: []Option{
				{Value: "toyota", Label: "تويوتا"},
				{Value: "hyundai", Label: "هيونداي"},
				{Value: "nissan", Label: "نيسان"},
				{Value: "kia", Label: "كيا"},
				{Value: "chevrolet", Label: "شيفروليه"},
				{Value: "mercedes", Label: "مرسيدس"},
				{Value: "bmw", Label: "بي ام دبليو"},
				{Value: "fiat", Label: "فيات"},
				{Value: "mitsubishi", Label: "ميتسوبيشي"},
				{Value: "renault", Label: "رينو"},
				{Value: "skoda", Label: "سكودا"},
				{Value: "other", Label: "ماركة تانية"},
			}},
			{ID: "year"},
			{ID: "transmission", Options: []Option{
				{Value: "automatic", Label: "اوتوماتيك"},
				{Value: "manual", Label: "مانيوال"},
			}},
		},
	},
	{
		ID:   "real_estate",
		Icon: "🏠",
		Name: "عقارات",
		Fields: []Field{
			{ID: "type", Options: []Option{
				{Value: "apartments", Label: "شقق"},
				{Value: "villas", Label: "فلل"},
				{Value: "land", Label: "اراضي"},
				{Value: "commercial", Label: "محلات"},
			}},
			{ID: "rooms"},
			{ID: "area"},
		},
	},
	{
		ID:   "electronics",
		Icon: "💻",
		Name: "الكترونيات",
		Fields: []Field{
			{ID: "brand", Options: []Option{
				{Value: "lg", Label: "ال جي"},
				{Value: "toshiba", Label: "توشيبا"},
				{Value: "sony", Label: "سوني"},
				{Value: "dell", Label: "ديل"},
				{Value: "lenovo", Label: "لينوفو"},
				{Value: "hp", Label: "اتش بي"},
				{Value: "other", Label: "ماركة تانية"},
			}},
		},
	},
	{
		ID:   "appliances",
		Icon: "🔌",
		Name: "اجهزة منزلية",
		Fields: []Field{
			{ID: "brand", Options: []Option{
				{Value: "zanussi", Label: "زانوسي"},
				{Value: "kiriazi", Label: "كريازي"},
				{Value: "universal", Label: "يونيفرسال"},
				{Value: "fresh", Label: "فريش"},
				{Value: "other", Label: "ماركة تانية"},
			}},
		},
	},
	{
		ID:   "furniture",
		Icon: "🛋",
		Name: "اثاث",
		Fields: []Field{
			{ID: "type", Options: []Option{
				{Value: "sofas", Label: "كنب"},
				{Value: "beds", Label: "سراير"},
				{Value: "dining", Label: "سفرة"},
			}},
		},
	},
	{
		ID:   "fashion",
		Icon: "👗",
		Name: "ملابس وموضة",
		Fields: []Field{
			{ID: "type", Options: []Option{
				{Value: "bags", Label: "شنط"},
				{Value: "shoes", Label: "احذية"},
				{Value: "dresses", Label: "فساتين"},
			}},
		},
	},
	{
		ID:   "gold",
		Icon: "💍",
		Name: "دهب ومجوهرات",
		Fields: []Field{
			{ID: "karat", Options: []Option{
				{Value: "24", Label: "عيار 24"},
				{Value: "21", Label: "عيار 21"},
				{Value: "18", Label: "عيار 18"},
				{Value: "14", Label: "عيار 14"},
				{Value: "925", Label: "فضة 925"},
				{Value: "900", Label: "فضة 900"},
			}},
			{ID: "type", Options: []Option{
				{Value: "rings", Label: "خواتم"},
				{Value: "chains", Label: "سلاسل"},
				{Value: "bracelets", Label: "غوايش"},
			}},
		},
	},
	{
		ID:   "luxury",
		Icon: "⌚",
		Name: "ساعات ومقتنيات",
		Fields: []Field{
			{ID: "type", Options: []Option{
				{Value: "watches", Label: "ساعات"},
				{Value: "perfumes", Label: "عطور"},
			}},
		},
	},
}
