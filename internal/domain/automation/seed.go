package automation

// SeedRule is a default rule installed for a new tenant.
type SeedRule struct {
	Name    string
	Trigger string
	Action  Action
	Config  map[string]any
}

// DefaultRules is the starter rule set seeded into a fresh tenant. Tenants
// edit or disable these freely; consistency across tenants is never assumed.
func DefaultRules() []SeedRule {
	return []SeedRule{
		{
			Name:    "Welcome New Lead",
			Trigger: TriggerNewLead,
			Action:  ActionSendEmail,
			Config: map[string]any{
				ConfigSubject: "Thanks for reaching out!",
				ConfigBody:    "Hi {{contact_name}}, thanks for getting in touch. We'll get back to you within 24 hours.",
			},
		},
		{
			Name:    "Booking Confirmation",
			Trigger: TriggerBookingConfirmed,
			Action:  ActionSendEmail,
			Config: map[string]any{
				ConfigSubject: "Your appointment is confirmed",
				ConfigBody:    "Hi {{contact_name}}, your appointment on {{booking_date}} at {{booking_time}} has been confirmed. We look forward to seeing you!",
			},
		},
		{
			Name:    "Post-Booking Intake Form",
			Trigger: TriggerBookingConfirmed,
			Action:  ActionDistributeForm,
			Config: map[string]any{
				ConfigTemplate: "intake_form",
				ConfigMessage:  "Please complete this form before your appointment.",
			},
		},
		{
			Name:    "Booking Reminder",
			Trigger: TriggerBookingReminder,
			Action:  ActionSendEmail,
			Config: map[string]any{
				ConfigSubject: "Appointment Reminder",
				ConfigBody:    "Hi {{contact_name}}, this is a reminder about your appointment tomorrow at {{booking_time}}.",
			},
		},
		{
			Name:    "Pending Form Reminder",
			Trigger: TriggerFormSubmitted,
			Action:  ActionSendEmail,
			Config: map[string]any{
				ConfigSubject:    "Reminder: Please complete your form",
				ConfigBody:       "Hi {{contact_name}}, you haven't completed your intake form yet. Please complete it before your visit: {{form_url}}",
				ConfigIsReminder: true,
			},
		},
		{
			Name:    "Low Stock Alert",
			Trigger: TriggerInventoryLow,
			Action:  ActionNotifyOwner,
			Config: map[string]any{
				ConfigMessage: "Item '{{item_name}}' is running low ({{quantity}} {{unit}} remaining).",
			},
		},
		{
			Name:    "Staff Reply Pause",
			Trigger: TriggerMessageReceived,
			Action:  ActionNotifyOwner,
			Config: map[string]any{
				ConfigMessage:    "Staff replied to {{contact_name}} — automation paused for this conversation.",
				"is_system_rule": true,
			},
		},
	}
}
