package usecase

import (
	"strings"

	"zenith-planner/internal/model"
)

var birthdayKeywords = []string{"birthday", "bday", "b-day", "born"}

var yearlyKeywords = []string{"anniversary", "wedding", "graduation day"}

var eventKeywords = []string{
	"birthday", "bday", "b-day", "exam", "test", "meeting", "appointment", "funeral",
	"wedding", "anniversary", "interview", "presentation", "conference", "seminar",
	"graduation", "party", "celebration", "ceremony", "event", "show", "concert",
	"game", "match", "vacation", "trip", "holiday", "festival", "outing", "gathering", "reunion",
}

var eventCategories = []string{
	"event", "meeting", "appointment", "celebration", "entertainment",
	"travel", "social", "ceremony", "exam", "interview",
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// IsYearlyRecurring determines if a task is a yearly recurring event
// like a birthday or anniversary, based on its title and category.
func IsYearlyRecurring(t model.Task) bool {
	title := strings.ToLower(t.Title)
	category := strings.ToLower(t.Category)

	if containsAny(title, birthdayKeywords) || containsAny(title, yearlyKeywords) {
		return true
	}
	return strings.Contains(category, "personal") && containsAny(title, birthdayKeywords)
}

// IsEvent determines if a task is an event for countdown purposes.
func IsEvent(t model.Task) bool {
	title := strings.ToLower(t.Title)
	category := strings.ToLower(t.Category)

	return containsAny(title, eventKeywords) || containsAny(category, eventCategories)
}
