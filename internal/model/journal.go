package model

// Activity is a user-defined tag that can be attached to journal entries.
type Activity struct {
	ID     string `json:"id"`
	UserID string `json:"-"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

// Entry is a single day's mood record.
type Entry struct {
	ID      string `json:"id"`
	UserID  string `json:"-"`
	Date    string `json:"date"`
	DateKey string `json:"dateKey"`
	Mood    string `json:"mood"`
}

// EntryActivity is one row of the entry/activity join table.
type EntryActivity struct {
	EntryID    string
	ActivityID string
	UserID     string
}

// EntryView is an entry joined with the ids of its activities.
type EntryView struct {
	Entry
	Activities []string `json:"activities"`
}

// JournalSnapshot is the denormalized read response.
type JournalSnapshot struct {
	JournalEntries []EntryView `json:"journalEntries"`
	Activities     []Activity  `json:"activities"`
}

// EntryInput is the payload of a save.
type EntryInput struct {
	Date            string
	DateKey         string
	Mood            string
	ActivityIDs     []string
	ExistingEntryID string
}

// ActivityInput is the payload of an activity create or update.
type ActivityInput struct {
	Name  string
	Icon  string
	Color string
}
