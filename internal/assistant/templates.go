package assistant

// Response templates per category. Plain text with light markup (bold
// markers, emoji); rendering is the caller's concern. Contact details are
// part of the canned answers.
const (
	TemplateHours = "🕒 **Our Hours:** Monday-Friday 9 AM to 6 PM, Saturday 10 AM to 4 PM. " +
		"We're closed on Sundays and major holidays. For emergency assistance, please call " +
		"our 24/7 helpline at (555) 999-HELP."

	TemplateVolunteer = "🤝 **Volunteer Opportunities:** We'd love your help! Current openings " +
		"include tutoring, food service, event planning, and administrative support. Please " +
		"visit our website to complete the volunteer application and background check."

	TemplateDonate = "💝 **Donations:** Thank you for your generosity! You can donate online " +
		"at our secure portal, by phone (555) 123-4567, or mail checks to 123 Community St. " +
		"All donations are tax-deductible!"

	TemplatePrograms = "📋 **Our Programs:** Youth Mentoring (ages 12-18), Job Training, " +
		"Food Assistance, Housing Support, Educational Workshops, and Senior Services. " +
		"Which program would you like to learn more about?"

	TemplateContact = "📞 **Contact Information:** Phone: (555) 123-4567 | " +
		"Email: info@nonprofitcommunity.org | Address: 123 Community St, City, State 12345 | " +
		"Emergency Helpline: (555) 999-HELP (24/7)"

	TemplateEmergency = "🆘 **Emergency Resources:** Crisis Hotline: (555) 999-HELP (24/7) | " +
		"Emergency Food: Available during office hours | Mental Health: Free counseling " +
		"referrals | If this is life-threatening, please call 911."

	// DefaultReply is the fixed fallback when nothing matches and no
	// generative backend answers.
	DefaultReply = "Thanks for your question! I can help you with information about our " +
		"**hours, volunteer opportunities, donations, programs, contact information,** and " +
		"**emergency resources**. What would you like to know more about?"
)

var templates = map[Category]string{
	CategoryHours:     TemplateHours,
	CategoryVolunteer: TemplateVolunteer,
	CategoryDonate:    TemplateDonate,
	CategoryPrograms:  TemplatePrograms,
	CategoryContact:   TemplateContact,
	CategoryEmergency: TemplateEmergency,
}

// Template returns the canned response for a category. The second return
// is false for CategoryUnmatched and unknown categories.
func Template(cat Category) (string, bool) {
	text, ok := templates[cat]
	return text, ok
}
