package lexicon

import (
	"regexp"

	"github.com/mataa-market/mataa/core"
)

// Ordered pattern lists. Declaration order is matching order: the first
// pattern that matches wins. like_new is declared before new because
// "زي الجديد" contains "جديد".

var intentPatterns = []IntentPattern{
	{core.IntentExchange, regexp.MustCompile(`استبدال|مقايضة|بدل|ابدل|أبدل`)},
	{core.IntentGift, regexp.MustCompile(`هدية|هديه|هدايا`)},
	{core.IntentUrgent, regexp.MustCompile(`مستعجل|ضروري|حالا|حالًا`)},
	{core.IntentBargain, regexp.MustCompile(`ارخص|أرخص|اوفر|أوفر|سعر حلو`)},
	{core.IntentCompare, regexp.MustCompile(`مقارنة|قارن|ايه الفرق|إيه الفرق`)},
	{core.IntentBuy, regexp.MustCompile(`عايز اشتري|عاوز اشتري|عايزة اشتري|اشتري|شراء|عايز|عايزة|عاوز|محتاج|نفسي في`)},
}

var tierPatterns = []TierPattern{
	{core.PriceBudget, regexp.MustCompile(`رخيصة|رخيص|اقتصادي|اقتصادية|على قدي|مش غالي`)},
	{core.PricePremium, regexp.MustCompile(`فاخرة|فاخر|فخمة|فخم|هاي كلاس|غالية|غالي|اصلي|أصلي`)},
	{core.PriceMid, regexp.MustCompile(`متوسطة|متوسط|معقولة|معقول`)},
}

// Exact-price phrases. The range pattern is declared first because its
// "من" prefix overlaps the over/under phrasings.
var exactPricePatterns = []ExactPricePattern{
	{regexp.MustCompile(`من\s*(\d+)\s*(?:الى|إلى|الي|إلي|لحد|حتى|لـ|ل)\s*(\d+)\s*(?:جنيه|جنية|ج)?`), MultiplierRange},
	{regexp.MustCompile(`(?:تحت|اقل من|أقل من|مش اكتر من|مش أكتر من)\s*(\d+)\s*(?:جنيه|جنية|ج)?`), MultiplierUnder},
	{regexp.MustCompile(`(?:فوق|اكتر من|أكتر من|يزيد عن)\s*(\d+)\s*(?:جنيه|جنية|ج)?`), MultiplierOver},
	{regexp.MustCompile(`(?:حوالي|تقريبا|تقريبًا|في حدود)\s*(\d+)\s*(?:جنيه|جنية|ج)?`), MultiplierAround},
	{regexp.MustCompile(`بـ\s*(\d+)\s*(?:جنيه|جنية|ج)`), MultiplierAround},
}

var conditionPatterns = []ConditionPattern{
	{core.ConditionLikeNew, regexp.MustCompile(`زي الجديد|زى الجديد|زي الجديدة|استعمال خفيف|كسر زيرو`)},
	{core.ConditionNew, regexp.MustCompile(`جديدة|جديد|متبرشمة|متبرشم|زيرو`)},
	{core.ConditionGood, regexp.MustCompile(`مستعملة|مستعمل|حالة جيدة|حالتها كويسة|نضيفة|نضيف`)},
}

// Gift recipients and the categories gifts for them are searched in. The
// first category is the primary one.
var giftTargetTable = []GiftTarget{
	{"مراتي", []string{"gold", "luxury", "fashion", "phones"}},
	{"خطيبتي", []string{"gold", "fashion", "luxury"}},
	{"امي", []string{"gold", "fashion", "appliances"}},
	{"أمي", []string{"gold", "fashion", "appliances"}},
	{"ماما", []string{"gold", "fashion", "appliances"}},
	{"ابويا", []string{"phones", "luxury", "electronics"}},
	{"أبويا", []string{"phones", "luxury", "electronics"}},
	{"بابا", []string{"phones", "luxury", "electronics"}},
	{"اختي", []string{"fashion", "phones", "luxury"}},
	{"أختي", []string{"fashion", "phones", "luxury"}},
	{"اخويا", []string{"phones", "electronics", "fashion"}},
	{"أخويا", []string{"phones", "electronics", "fashion"}},
	{"بنتي", []string{"fashion", "phones", "gold"}},
	{"ابني", []string{"phones", "electronics"}},
	{"جوزي", []string{"phones", "luxury", "fashion"}},
	{"صاحبي", []string{"phones", "electronics"}},
	{"صاحبتي", []string{"fashion", "luxury"}},
}

// Brand keywords. Model-name keywords resolve to their brand with Model
// set. Latin keywords are stored lowercase; matching is case-insensitive.
var brandTable = []Brand{
	// phones
	{"آيفون", "apple", "", "phones"},
	{"ايفون", "apple", "", "phones"},
	{"iphone", "apple", "", "phones"},
	{"ابل", "apple", "", "phones"},
	{"سامسونج", "samsung", "", "phones"},
	{"samsung", "samsung", "", "phones"},
	{"شاومي", "xiaomi", "", "phones"},
	{"xiaomi", "xiaomi", "", "phones"},
	{"ريدمي", "xiaomi", "redmi", "phones"},
	{"redmi", "xiaomi", "redmi", "phones"},
	{"اوبو", "oppo", "", "phones"},
	{"oppo", "oppo", "", "phones"},
	{"هواوي", "huawei", "", "phones"},
	{"huawei", "huawei", "", "phones"},
	{"ريلمي", "realme", "", "phones"},
	{"realme", "realme", "", "phones"},
	{"فيفو", "vivo", "", "phones"},
	{"vivo", "vivo", "", "phones"},
	{"نوكيا", "nokia", "", "phones"},
	{"nokia", "nokia", "", "phones"},
	// cars
	{"تويوتا", "toyota", "", "cars"},
	{"toyota", "toyota", "", "cars"},
	{"كورولا", "toyota", "corolla", "cars"},
	{"corolla", "toyota", "corolla", "cars"},
	{"ياريس", "toyota", "yaris", "cars"},
	{"هيونداي", "hyundai", "", "cars"},
	{"hyundai", "hyundai", "", "cars"},
	{"النترا", "hyundai", "elantra", "cars"},
	{"elantra", "hyundai", "elantra", "cars"},
	{"فيرنا", "hyundai", "verna", "cars"},
	{"توسان", "hyundai", "tucson", "cars"},
	{"نيسان", "nissan", "", "cars"},
	{"nissan", "nissan", "", "cars"},
	{"صني", "nissan", "sunny", "cars"},
	{"كيا", "kia", "", "cars"},
	{"kia", "kia", "", "cars"},
	{"سيراتو", "kia", "cerato", "cars"},
	{"سبورتاج", "kia", "sportage", "cars"},
	{"مرسيدس", "mercedes", "", "cars"},
	{"mercedes", "mercedes", "", "cars"},
	{"بي ام دبليو", "bmw", "", "cars"},
	{"bmw", "bmw", "", "cars"},
	{"شيفروليه", "chevrolet", "", "cars"},
	{"شفروليه", "chevrolet", "", "cars"},
	{"لانوس", "chevrolet", "lanos", "cars"},
	{"افيو", "chevrolet", "aveo", "cars"},
	{"فيات", "fiat", "", "cars"},
	{"fiat", "fiat", "", "cars"},
	{"ميتسوبيشي", "mitsubishi", "", "cars"},
	{"لانسر", "mitsubishi", "lancer", "cars"},
	{"رينو", "renault", "", "cars"},
	{"لوجان", "renault", "logan", "cars"},
	{"سكودا", "skoda", "", "cars"},
	{"اوكتافيا", "skoda", "octavia", "cars"},
	// electronics
	{"ال جي", "lg", "", "electronics"},
	{"توشيبا", "toshiba", "", "electronics"},
	{"toshiba", "toshiba", "", "electronics"},
	{"سوني", "sony", "", "electronics"},
	{"sony", "sony", "", "electronics"},
	{"ديل", "dell", "", "electronics"},
	{"dell", "dell", "", "electronics"},
	{"لينوفو", "lenovo", "", "electronics"},
	{"lenovo", "lenovo", "", "electronics"},
	{"اتش بي", "hp", "", "electronics"},
	// appliances
	{"زانوسي", "zanussi", "", "appliances"},
	{"كريازي", "kiriazi", "", "appliances"},
	{"يونيفرسال", "universal", "", "appliances"},
	{"فريش", "fresh", "", "appliances"},
}

// Entity keywords: item words that pin down a category, usually a
// subcategory, and sometimes pre-filled field values.
var entityTable = []Entity{
	{"شقة", "real_estate", "apartments", nil},
	{"شقه", "real_estate", "apartments", nil},
	{"فيلا", "real_estate", "villas", nil},
	{"قطعة ارض", "real_estate", "land", nil},
	{"ارض", "real_estate", "land", nil},
	{"أرض", "real_estate", "land", nil},
	{"محل", "real_estate", "commercial", nil},
	{"عربية", "cars", "", nil},
	{"عربيه", "cars", "", nil},
	{"سيارة", "cars", "", nil},
	{"سياره", "cars", "", nil},
	{"موبايل", "phones", "", nil},
	{"موبيل", "phones", "", nil},
	{"تليفون", "phones", "", nil},
	{"لاب توب", "electronics", "laptops", nil},
	{"لابتوب", "electronics", "laptops", nil},
	{"شاشة", "electronics", "tvs", nil},
	{"تلفزيون", "electronics", "tvs", nil},
	{"بلايستيشن", "electronics", "gaming", map[string]string{"type": "console"}},
	{"تلاجة", "appliances", "fridges", nil},
	{"ثلاجة", "appliances", "fridges", nil},
	{"غسالة", "appliances", "washers", nil},
	{"بوتجاز", "appliances", "stoves", nil},
	{"تكييف", "appliances", "ac", nil},
	{"شنطة", "fashion", "bags", map[string]string{"type": "bag"}},
	{"شنطه", "fashion", "bags", map[string]string{"type": "bag"}},
	{"جزمة", "fashion", "shoes", nil},
	{"كوتشي", "fashion", "shoes", nil},
	{"فستان", "fashion", "dresses", nil},
	{"خاتم", "gold", "rings", nil},
	{"سلسلة", "gold", "chains", nil},
	{"سلسله", "gold", "chains", nil},
	{"غويشة", "gold", "bracelets", nil},
	{"غوايش", "gold", "bracelets", nil},
	{"ساعة", "luxury", "watches", nil},
	{"ساعه", "luxury", "watches", nil},
	{"كنبة", "furniture", "sofas", nil},
	{"كنب", "furniture", "sofas", nil},
	{"سرير", "furniture", "beds", nil},
	{"سفرة", "furniture", "dining", nil},
}

// Fallback keyword lists, one per category, scanned in declaration order.
var categoryKeywordTable = []CategoryKeywords{
	{"real_estate", []string{"عقارات", "عقار", "ايجار", "إيجار", "تمليك", "دوبلكس", "روف", "استوديو"}},
	{"cars", []string{"عربيات", "سيارات", "اوتوماتيك", "أوتوماتيك", "مانيوال"}},
	{"phones", []string{"موبايلات", "تليفونات", "جوال", "سمارت فون"}},
	{"electronics", []string{"الكترونيات", "إلكترونيات", "كمبيوتر", "كومبيوتر"}},
	{"appliances", []string{"اجهزة منزلية", "أجهزة منزلية", "اجهزة", "أجهزة"}},
	{"furniture", []string{"اثاث", "أثاث", "موبيليا"}},
	{"fashion", []string{"ملابس", "هدوم", "لبس"}},
	{"gold", []string{"مجوهرات", "دهب", "ذهب", "فضة"}},
	{"luxury", []string{"ساعات", "عطور", "برفانات"}},
}

// City to governorate. Longest-first matching makes "شبرا الخيمة" win
/// over "شبرا". Dahab (دهب) is deliberately absent: the token is
// indistinguishable from the colloquial word for gold and location
// matching runs before category matching.
var cityTable = []City{
	{"مدينة نصر", "القاهرة"},
	{"مصر الجديدة", "القاهرة"},
	{"المعادي", "القاهرة"},
	{"حلوان", "القاهرة"},
	{"شبرا", "القاهرة"},
	{"الزمالك", "القاهرة"},
	{"وسط البلد", "القاهرة"},
	{"عين شمس", "القاهرة"},
	{"التجمع الخامس", "القاهرة"},
	{"التجمع", "القاهرة"},
	{"مدينتي", "القاهرة"},
	{"الرحاب", "القاهرة"},
	{"حدائق القبة", "القاهرة"},
	{"6 اكتوبر", "الجيزة"},
	{"٦ اكتوبر", "الجيزة"},
	{"اكتوبر", "الجيزة"},
	{"الشيخ زايد", "الجيزة"},
	{"الهرم", "الجيزة"},
	{"فيصل", "الجيزة"},
	{"الدقي", "الجيزة"},
	{"المهندسين", "الجيزة"},
	{"العجوزة", "الجيزة"},
	{"امبابة", "الجيزة"},
	{"حدائق الاهرام", "الجيزة"},
	{"سموحة", "الاسكندرية"},
	{"ميامي", "الاسكندرية"},
	{"سيدي جابر", "الاسكندرية"},
	{"سيدي بشر", "الاسكندرية"},
	{"العصافرة", "الاسكندرية"},
	{"المنتزه", "الاسكندرية"},
	{"محرم بك", "الاسكندرية"},
	{"المنصورة", "الدقهلية"},
	{"طلخا", "الدقهلية"},
	{"ميت غمر", "الدقهلية"},
	{"طنطا", "الغربية"},
	{"المحلة الكبرى", "الغربية"},
	{"المحلة", "الغربية"},
	{"الزقازيق", "الشرقية"},
	{"العاشر من رمضان", "الشرقية"},
	{"بنها", "القليوبية"},
	{"شبرا الخيمة", "القليوبية"},
	{"قليوب", "القليوبية"},
	{"شبين الكوم", "المنوفية"},
	{"منوف", "المنوفية"},
	{"دمنهور", "البحيرة"},
	{"كفر الدوار", "البحيرة"},
	{"راس البر", "دمياط"},
	{"مرسى مطروح", "مطروح"},
	{"الغردقة", "البحر الاحمر"},
	{"شرم الشيخ", "جنوب سيناء"},
}

// Governorate names for direct matching when no city matched.
var governorateNames = []string{
	"القاهرة",
	"الجيزة",
	"الاسكندرية",
	"الإسكندرية",
	"الدقهلية",
	"الغربية",
	"الشرقية",
	"القليوبية",
	"المنوفية",
	"البحيرة",
	"كفر الشيخ",
	"دمياط",
	"بورسعيد",
	"الاسماعيلية",
	"الإسماعيلية",
	"السويس",
	"الفيوم",
	"بني سويف",
	"المنيا",
	"اسيوط",
	"أسيوط",
	"سوهاج",
	"قنا",
	"الاقصر",
	"الأقصر",
	"اسوان",
	"أسوان",
	"مطروح",
	"البحر الاحمر",
	"الوادي الجديد",
	"شمال سيناء",
	"جنوب سيناء",
}

// Per-category price bands in EGP for the qualitative tiers.
var priceBandTable = map[string]map[core.PriceIntent]PriceBand{
	"phones": {
		core.PriceBudget:  {0, 5000},
		core.PriceMid:     {5000, 15000},
		core.PricePremium: {15000, 100000},
	},
	"cars": {
		core.PriceBudget:  {0, 300000},
		core.PriceMid:     {300000, 800000},
		core.PricePremium: {800000, 5000000},
	},
	"real_estate": {
		core.PriceBudget:  {0, 1000000},
		core.PriceMid:     {1000000, 3000000},
		core.PricePremium: {3000000, 20000000},
	},
	"electronics": {
		core.PriceBudget:  {0, 5000},
		core.PriceMid:     {5000, 20000},
		core.PricePremium: {20000, 150000},
	},
	"appliances": {
		core.PriceBudget:  {0, 5000},
		core.PriceMid:     {5000, 15000},
		core.PricePremium: {15000, 80000},
	},
	"furniture": {
		core.PriceBudget:  {0, 10000},
		core.PriceMid:     {10000, 30000},
		core.PricePremium: {30000, 200000},
	},
	"fashion": {
		core.PriceBudget:  {0, 500},
		core.PriceMid:     {500, 2000},
		core.PricePremium: {2000, 20000},
	},
	"gold": {
		core.PriceBudget:  {0, 20000},
		core.PriceMid:     {20000, 100000},
		core.PricePremium: {100000, 1000000},
	},
	"luxury": {
		core.PriceBudget:  {0, 10000},
		core.PriceMid:     {10000, 50000},
		core.PricePremium: {50000, 500000},
	},
}
