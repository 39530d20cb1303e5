package efifs

// Time is the firmware's calendar time record.
type Time struct {
	Year       uint16 // full year, e.g. 1970
	Month      uint8  // 1..12
	Day        uint8  // 1..31
	Hour       uint8  // 0..23
	Minute     uint8  // 0..59
	Second     uint8  // 0..59
	Nanosecond uint32
	TimeZone   int16
	Daylight   uint8
}

const (
	secsPerHour int64 = 60 * 60
	secsPerDay  int64 = secsPerHour * 24
)

// Days before the start of each month, normal and leap years.
var monYday = [2][13]int64{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366},
}

// isLeap implements the Gregorian rule: every 4 years, except every 100th
// isn't, and every 400th is.
func isLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// div is floor division, so negative offsets land on the earlier boundary
// instead of truncating toward zero.
func div(a, b int64) int64 {
	return a/b - b2i[int64](a%b < 0)
}

func leapsThruEndOf(y int64) int64 {
	return div(y, 4) - div(y, 100) + div(y, 400)
}

// TimeFromUnix decomposes a count of seconds since 1970-01-01 00:00:00 into
// calendar fields. Negative offsets roll the date backward. This follows the
// civil-time decomposition of the drivers' C host library, so a driver's
// modification timestamps come out identical here.
func TimeFromUnix(sec int64) (tp Time) {
	days := sec / secsPerDay
	rem := sec % secsPerDay
	for rem < 0 {
		rem += secsPerDay
		days--
	}
	tp.Hour = uint8(rem / secsPerHour)
	rem %= secsPerHour
	tp.Minute = uint8(rem / 60)
	tp.Second = uint8(rem % 60)

	y := int64(1970)
	for days < 0 || days >= 365+b2i[int64](isLeap(y)) {
		// Guess a corrected year, assuming 365 days per year.
		yg := y + days/365 - b2i[int64](days%365 < 0)
		days -= (yg-y)*365 + leapsThruEndOf(yg-1) - leapsThruEndOf(y-1)
		y = yg
	}
	tp.Year = uint16(y)
	ip := &monYday[b2i[int](isLeap(y))]
	m := 11
	for days < ip[m] {
		m--
	}
	days -= ip[m]
	tp.Month = uint8(m + 1)
	tp.Day = uint8(days + 1)
	return tp
}

type _integer interface {
	~uint8 | ~uint16 | ~uint32 | ~int | ~int64 | ~uint
}

func b2i[T _integer](b bool) T {
	if b {
		return 1
	}
	return 0
}
