package usecase_test

import (
	"testing"

	"zenith-planner/internal/model"
	"zenith-planner/internal/task/usecase"
)

func TestIsYearlyRecurring(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		category string
		want     bool
	}{
		{"Birthday in title", "Dad's Birthday", "Personal", true},
		{"Bday shorthand", "Mom's bday", "Others", true},
		{"Hyphenated", "B-day party planning", "Others", true},
		{"Anniversary", "Wedding anniversary", "Personal", true},
		{"Graduation day", "Graduation day", "Others", true},
		{"Plain work task", "Submit report", "Work", false},
		{"Meeting is not yearly", "Team meeting", "Work", false},
		{"Groceries", "Buy groceries", "Others", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.IsYearlyRecurring(model.Task{Title: tt.title, Category: tt.category})
			if got != tt.want {
				t.Errorf("IsYearlyRecurring(%q, %q) = %v, want %v", tt.title, tt.category, got, tt.want)
			}
		})
	}
}

func TestIsEvent(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		category string
		want     bool
	}{
		{"Meeting title", "Team meeting", "Work", true},
		{"Birthday", "Dad's Birthday", "Personal", true},
		{"Concert", "Coldplay concert", "Others", true},
		{"Event category", "Quarterly review", "Meeting", true},
		{"Travel category", "Pack bags", "Travel", true},
		{"Plain task", "Submit report", "Work", false},
		{"Groceries", "Buy groceries", "Others", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.IsEvent(model.Task{Title: tt.title, Category: tt.category})
			if got != tt.want {
				t.Errorf("IsEvent(%q, %q) = %v, want %v", tt.title, tt.category, got, tt.want)
			}
		})
	}
}
