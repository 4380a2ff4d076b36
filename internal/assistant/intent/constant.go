package intent

import "community-support-platform/internal/assistant"

// rule is one (category, keyword set) pair.
type rule struct {
	category assistant.Category
	keywords []string
}

// rules is the fixed classification table. Order is behavior: categories
// are not mutually exclusive ("urgent donation hours" hits both the hours
// and emergency rules) and the first match wins, so changing the order
// changes answers.
var rules = []rule{
	{assistant.CategoryHours, []string{"hours", "time"}},
	{assistant.CategoryVolunteer, []string{"volunteer"}},
	{assistant.CategoryDonate, []string{"donate"}},
	{assistant.CategoryPrograms, []string{"programs", "services"}},
	{assistant.CategoryContact, []string{"contact", "phone", "email"}},
	{assistant.CategoryEmergency, []string{"emergency", "crisis", "urgent"}},
}
