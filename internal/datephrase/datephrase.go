// Package datephrase turns a calendar date into the word names of the
// spoken phrase "<weekday> <ordinal day> <month>".
package datephrase

import "time"

var ordinals = [31]string{
	"first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth", "eleventh", "twelfth", "thirteenth",
	"fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth",
	"nineteenth", "twentieth", "twentyfirst", "twentysecond", "twentythird",
	"twentyfourth", "twentyfifth", "twentysixth", "twentyseventh",
	"twentyeighth", "twentyninth", "thirtieth", "thirtyfirst",
}

var weekdays = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var months = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Words returns the weekday, ordinal day and month of t in t's location.
func Words(t time.Time) []string {
	return []string{Weekday(t.Weekday()), Ordinal(t.Day()), Month(t.Month())}
}

// Weekday returns the lowercase word name of d.
func Weekday(d time.Weekday) string {
	return weekdays[d%7]
}

// Month returns the lowercase word name of m.
func Month(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return months[m-1]
}

// Ordinal returns the ordinal word for a day of the month, or "" outside 1..31.
func Ordinal(day int) string {
	if day < 1 || day > len(ordinals) {
		return ""
	}
	return ordinals[day-1]
}
