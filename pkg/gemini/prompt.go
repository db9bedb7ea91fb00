package gemini

import (
	"fmt"
	"time"
)

const isoLayout = "2006-01-02T15:04:05"

// taskParsingTemplate is the instruction block sent to Gemini for task
// extraction. The %s slots are: current time, user input, current time,
// one hour later, tomorrow 9 AM, end of month.
const taskParsingTemplate = `You are an expert task parsing system for ZenithPlanner. Your job is to analyze user text and convert it into structured JSON format.

**CRITICAL TIMEZONE CONTEXT:**
- Current IST time: %s
- User is in India (IST timezone)
- ALL times should be interpreted in IST context
- When user says relative times like "in 1 hour", "tomorrow", calculate from current IST time

**User's Task Description:** "%s"

**CRITICAL TIME PARSING RULES:**
- "9 PM" or "9pm" = 21:00 (NOT 09:00 or 01:00)
- "9 AM" or "9am" = 09:00 (NOT 21:00)
- "dinner" context + time = evening time (6 PM - 11 PM range)
- "lunch" context + time = afternoon time (12 PM - 3 PM range)
- "breakfast" context + time = morning time (6 AM - 11 AM range)
- If no AM/PM specified but context suggests evening (dinner, night, etc.) = PM time
- "in 1 hour" from now (%s) = %s
- "tomorrow morning" = %s (9 AM next day)
- "end of month" = %s

**CRITICAL RECURRING EVENT DETECTION:**
These are ALWAYS recurring events (set is_recurring=true, repeat_pattern="yearly"):
- Birthdays, B-days, Birth anniversaries
- Wedding anniversaries, Marriage anniversaries
- Death anniversaries, Memorial days
- Graduation days, Graduation anniversaries
- Work anniversaries, Job anniversaries
- Any event with "anniversary" in the name
- National holidays, Religious festivals that repeat yearly

These are ALWAYS recurring events (set is_recurring=true with appropriate pattern):
- Daily: "every day", "daily", "each day"
- Weekly: "every week", "weekly", "each week", "every Monday/Tuesday/etc"
- Monthly: "every month", "monthly", "each month", "1st of every month"
- Yearly: "every year", "annually", "each year"

**Your Task:**
Analyze the user's description and extract details. Respond ONLY with a single, minified JSON object.

**JSON Schema:**
- title (string): A concise title for the task.
- due_time (string | null): The deadline in strict ISO 8601 format (YYYY-MM-DDTHH:MM:SS). If no specific time or date is found, this MUST be null. Pay attention to meal/activity context - dinner=evening, lunch=afternoon, breakfast=morning.
- category (string): Generate a concise category that best fits the task (e.g., "Work", "Health", "Personal", "Finance", "Meeting").
- is_recurring (boolean): true if the task repeats (birthdays, anniversaries, daily/weekly/monthly tasks), otherwise false.
- repeat_pattern (string | null): Pattern like "daily", "weekly", "monthly", "yearly". MUST be "yearly" for birthdays/anniversaries. null if not recurring.
- user_notes (string | null): Any extra details from the user. null if none.

**Examples:**
1. Input: "Dad's birthday Nov 11"
   Output: {"title":"Dad's Birthday","due_time":"2025-11-11T18:30:00","category":"Personal","is_recurring":true,"repeat_pattern":"yearly","user_notes":null}
2. Input: "dinner at 9pm"
   Output: {"title":"Dinner","due_time":"2025-06-11T21:00:00","category":"Personal","is_recurring":false,"repeat_pattern":null,"user_notes":null}
3. Input: "take medicine daily at 8am"
   Output: {"title":"Take Medicine","due_time":"2025-06-12T08:00:00","category":"Health","is_recurring":true,"repeat_pattern":"daily","user_notes":null}
4. Input: "submit report by Friday"
   Output: {"title":"Submit Report","due_time":"2025-06-13T17:00:00","category":"Work","is_recurring":false,"repeat_pattern":null,"user_notes":null}

REMEMBER: Birthdays and anniversaries are ALWAYS yearly recurring events.

Now, process the user's task description.`

// BuildTaskParsingPrompt builds the full extraction prompt for one
// free-form task description, anchored at the given reference time
// (already in the target timezone).
func BuildTaskParsingPrompt(userInput string, now time.Time) string {
	nowStr := now.Format("2006-01-02 Monday, 03:04 PM") + " IST"
	oneHourLater := now.Add(time.Hour).Format(isoLayout)
	tomorrow9AM := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location()).
		AddDate(0, 0, 1).Format(isoLayout)
	endOfMonth := endOfMonth(now).Format(isoLayout)

	return fmt.Sprintf(taskParsingTemplate,
		nowStr, userInput, nowStr, oneHourLater, tomorrow9AM, endOfMonth)
}

// endOfMonth returns 23:59:59 on the last day of now's month.
func endOfMonth(now time.Time) time.Time {
	firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	lastDay := firstOfNext.AddDate(0, 0, -1)
	return time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), 23, 59, 59, 0, now.Location())
}
