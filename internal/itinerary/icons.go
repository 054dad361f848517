package itinerary

// DefaultDayIcon is used for day numbers outside the icon table.
const DefaultDayIcon = "calendar-day"

// dayIcons maps day numbers 1..4 to their decorative icon.
var dayIcons = [4]string{
	"plane",           // departure
	"hiking",          // hiking day
	"swimmer",         // beach day
	"plane-departure", // return flight
}

// DayIcon returns the icon name for a day number.
func DayIcon(number int) string {
	if number < 1 || number > len(dayIcons) {
		return DefaultDayIcon
	}
	return dayIcons[number-1]
}
