package application

import "github.com/pouyakarimi/zendegi/internal/domain/model"

// dailyPrayers is the fixed rotation of short dhikr. One is served per
// calendar day, picked by day of year, so the selection is stable within a
// day and across restarts.
var dailyPrayers = []model.DailyPrayer{
	{Arabic: "سُبْحَانَ اللهِ", Persian: "پاک و منزه است خداوند", Title: "تسبیح"},
	{Arabic: "اَلْحَمْدُ لِلّٰهِ", Persian: "ستایش برای خداست", Title: "حمد"},
	{Arabic: "لَا إِلَٰهَ إِلَّا ٱللَّٰهُ", Persian: "نیست معبودی جز الله", Title: "تهلیل"},
	{Arabic: "اللَّهُ أَكْبَرُ", Persian: "خدا بزرگتر است", Title: "تکبیر"},
	{Arabic: "لَا حَوْلَ وَلَا قُوَّةَ إِلَّا بِٱللَّٰهِ", Persian: "هیچ نیرو و توانی نیست مگر از جانب خداوند", Title: "حوقله"},
	{Arabic: "أَسْتَغْفِرُ ٱللَّٰهَ", Persian: "از خداوند آمرزش می‌طلبم", Title: "استغفار"},
	{Arabic: "اللَّهُمَّ صَلِّ عَلَىٰ مُحَمَّدٍ وَآلِ مُحَمَّدٍ", Persian: "خدایا بر محمد و خاندان محمد درود فرست", Title: "صلوات"},
}

// dailyQuotes is the fixed rotation of religious quotes, picked the same way.
var dailyQuotes = []model.Quote{
	{
		Text:   "هر کس در راه خدا تقوا پیشه کند، خداوند برای او راه نجاتی قرار می‌دهد",
		Source: "قرآن کریم، سوره طلاق، آیه ۲",
	},
	{
		Text:   "به راستی که انسان در زیان است، مگر کسانی که ایمان آورده و کارهای شایسته انجام داده‌اند و یکدیگر را به حق و صبر سفارش کرده‌اند",
		Source: "قرآن کریم، سوره عصر، آیات ۲-۳",
	},
	{
		Text:   "با دانش‌ترین مردم کسی است که دانش دیگران را به دانش خود بیفزاید",
		Source: "امام علی (ع)",
	},
	{
		Text:   "برترین عبادت‌ها اندیشیدن مداوم درباره خدا و قدرت اوست",
		Source: "امام صادق (ع)",
	},
	{
		Text:   "بهترین دوست تو آن کسی است که تو را به کار نیک وادارد و بر انجام آن یاریت کند",
		Source: "امام علی (ع)",
	},
}

// fixedHolidays are the fixed national occasions on the Jalali calendar.
// Lunar-based occasions shift year to year and are out of scope here.
var fixedHolidays = []model.Holiday{
	{Month: 1, Day: 1, Title: "عید نوروز", Kind: model.HolidayNational},
	{Month: 1, Day: 2, Title: "عید نوروز", Kind: model.HolidayNational},
	{Month: 1, Day: 3, Title: "عید نوروز", Kind: model.HolidayNational},
	{Month: 1, Day: 4, Title: "عید نوروز", Kind: model.HolidayNational},
	{Month: 1, Day: 12, Title: "روز جمهوری اسلامی", Kind: model.HolidayNational},
	{Month: 1, Day: 13, Title: "روز طبیعت", Kind: model.HolidayNational},
	{Month: 3, Day: 14, Title: "رحلت امام خمینی", Kind: model.HolidayReligious},
	{Month: 3, Day: 15, Title: "قیام ۱۵ خرداد", Kind: model.HolidayNational},
	{Month: 11, Day: 22, Title: "پیروزی انقلاب اسلامی", Kind: model.HolidayNational},
	{Month: 12, Day: 29, Title: "ملی شدن صنعت نفت", Kind: model.HolidayNational},
}

// culturalEvents are the fixed cultural occasions surfaced in month views.
var culturalEvents = []model.Holiday{
	{Month: 1, Day: 1, Title: "عید نوروز", Kind: model.HolidayCultural},
	{Month: 1, Day: 13, Title: "سیزده بدر", Kind: model.HolidayCultural},
	{Month: 9, Day: 30, Title: "شب یلدا", Kind: model.HolidayCultural},
}

// fallbackTimetable is the static timetable served when the live lookup
// fails. Approximate Tehran times.
func fallbackTimetable(date string) *model.PrayerTimes {
	return &model.PrayerTimes{
		Date:       date,
		Fajr:       "05:00",
		Sunrise:    "06:30",
		Dhuhr:      "12:00",
		Asr:        "15:30",
		Maghrib:    "18:00",
		Isha:       "19:30",
		Midnight:   "00:00",
		IsFallback: true,
	}
}

// pickByDay selects index dayOfYear mod n. Stable for a given day, no
// persisted or random state.
func pickByDay(dayOfYear, n int) int {
	if n <= 0 {
		return 0
	}
	return dayOfYear % n
}
