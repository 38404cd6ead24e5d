package database

import (
	"encoding/json"

	"github.com/shaiiram/website1000-2000/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedExperiences fills an empty experiences table with the twelve curated
// themes the site launched with. The slugs are load-bearing: the results
// page maps them to destinations.
func SeedExperiences(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Experience{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	experiences := []models.Experience{
		{
			Slug: "deals-sales", Name: "דילים ומבצעים", NameEn: "Deals & Sales",
			Description: "חופשות אירופאיות במחירים שלא תמצאו בשום מקום אחר",
			PriceRange:  "1000-2000 ₪", Duration: "3-5 ימים", Location: "אירופה",
			Category:        "budget",
			TransitionQuote: "החופשה המושלמת לא חייבת לעלות הון",
			Highlights:      highlights("טיסות ישירות", "מלונות במרכז העיר", "ביטול חינם"),
		},
		{
			Slug: "adventures-safari", Name: "הרפתקאות וספארי", NameEn: "Adventures & Safari",
			Description: "מסעות פראיים אל הטבע, מטנזניה ועד קוסטה ריקה",
			PriceRange:  "1000-2000 ₪", Duration: "7-10 ימים", Location: "אפריקה ומרכז אמריקה",
			Category:        "adventure",
			TransitionQuote: "הלב פועם חזק יותר מחוץ לאזור הנוחות",
			Highlights:      highlights("ספארי מודרך", "לינה בלודג'ים", "מדריכים מקומיים"),
		},
		{
			Slug: "beaches-diving", Name: "חופים וצלילה", NameEn: "Beaches & Diving",
			Description: "מים צלולים ושוניות אלמוגים בתאילנד והמלדיביים",
			PriceRange:  "1000-2000 ₪", Duration: "5-8 ימים", Location: "דרום מזרח אסיה",
			Category:        "beach",
			TransitionQuote: "הים קורא, וצריך לענות",
			Highlights:      highlights("חופים לבנים", "שיעורי צלילה", "בקתות על המים"),
		},
		{
			Slug: "accessible-trips", Name: "טיולים נגישים", NameEn: "Accessible Trips",
			Description: "חופשות מותאמות במלואן בערים הנגישות באירופה",
			PriceRange:  "1000-2000 ₪", Duration: "4-6 ימים", Location: "ברצלונה, לונדון",
			Category:        "accessible",
			TransitionQuote: "העולם פתוח לכולם",
			Highlights:      highlights("מלונות נגישים", "הסעות מותאמות", "מסלולים ללא מדרגות"),
		},
		{
			Slug: "heritage-trips", Name: "טיולי מורשת", NameEn: "Heritage Trips",
			Description: "בעקבות ההיסטוריה ברומא ובאתונה",
			PriceRange:  "1000-2000 ₪", Duration: "4-6 ימים", Location: "רומא, אתונה",
			Category:        "culture",
			TransitionQuote: "כל אבן מספרת סיפור בן אלפי שנים",
			Highlights:      highlights("סיורים מודרכים", "כניסה לאתרים", "מדריך דובר עברית"),
		},
		{
			Slug: "spa-wellness", Name: "ספא ובריאות", NameEn: "Spa & Wellness",
			Description: "ריטריטים מפנקים בטוסקנה ובבאלי",
			PriceRange:  "1000-2000 ₪", Duration: "4-7 ימים", Location: "טוסקנה, באלי",
			Category:        "wellness",
			TransitionQuote: "לנשום עמוק. להרפות. להתחדש",
			Highlights:      highlights("טיפולי ספא", "יוגה בזריחה", "תפריט בריאות"),
		},
		{
			Slug: "shopping-culinary", Name: "שופינג וקולינריה", NameEn: "Shopping & Culinary",
			Description: "הטעמים והבוטיקים של פריז ומילאנו",
			PriceRange:  "1000-2000 ₪", Duration: "3-5 ימים", Location: "פריז, מילאנו",
			Category:        "city",
			TransitionQuote: "החיים קצרים מדי בשביל לוותר על קינוח",
			Highlights:      highlights("סיורי אוכל", "אאוטלטים", "מסעדות שף"),
		},
		{
			Slug: "cruises", Name: "קרוזים", NameEn: "Cruises",
			Description: "הפלגות חלומיות בקריביים ובים התיכון",
			PriceRange:  "1000-2000 ₪", Duration: "7-10 ימים", Location: "הקריביים, הים התיכון",
			Category:        "cruise",
			TransitionQuote: "בית מלון שמפליג איתך אל השקיעה",
			Highlights:      highlights("הכל כלול", "עגינה בנמלים", "בידור על הסיפון"),
		},
		{
			Slug: "casino-gaming", Name: "קזינו ובידור", NameEn: "Casino & Gaming",
			Description: "הזוהר של לאס וגאס ומקאו",
			PriceRange:  "1000-2000 ₪", Duration: "3-5 ימים", Location: "לאס וגאס, מקאו",
			Category:        "entertainment",
			TransitionQuote: "הלילה עוד צעיר",
			Highlights:      highlights("מלונות יוקרה", "מופעים", "חיי לילה"),
		},
		{
			Slug: "winter-sports", Name: "ספורט חורף", NameEn: "Winter Sports",
			Description: "מדרונות האלפים השווייצריים ואספן",
			PriceRange:  "1000-2000 ₪", Duration: "5-7 ימים", Location: "האלפים, קולורדו",
			Category:        "winter",
			TransitionQuote: "שלג טרי, שמיים כחולים ומדרון שמחכה רק לך",
			Highlights:      highlights("סקיפס", "השכרת ציוד", "מדריכי סקי"),
		},
		{
			Slug: "romance", Name: "רומנטיקה", NameEn: "Romance",
			Description: "שקיעות של סנטוריני ותעלות ונציה",
			PriceRange:  "1000-2000 ₪", Duration: "4-6 ימים", Location: "סנטוריני, ונציה",
			Category:        "romance",
			TransitionQuote: "יש מקומות שנבראו בשביל שניים",
			Highlights:      highlights("סוויטות זוגיות", "ארוחות רומנטיות", "שייט פרטי"),
		},
		{
			Slug: "business-travel", Name: "נסיעות עסקים", NameEn: "Business Travel",
			Description: "חופשה יעילה במרכזי העסקים של ניו יורק ולונדון",
			PriceRange:  "1000-2000 ₪", Duration: "2-4 ימים", Location: "ניו יורק, לונדון",
			Category:        "business",
			TransitionQuote: "גם פגישות יכולות להרגיש כמו חופשה",
			Highlights:      highlights("קרבה למרכזי כנסים", "אינטרנט מהיר", "צ'ק-אין מהיר"),
		},
	}
	return db.Create(&experiences).Error
}

func highlights(items ...string) datatypes.JSON {
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}
