package automation

// Action is the effect a rule performs when its trigger fires. Unlike trigger
// names, which stay an open string vocabulary, actions are a closed set with
// an explicit unknown variant so dispatch stays exhaustive: an unrecognized
// action name resolves to a Skipped outcome, never a hard failure.
type Action string

const (
	ActionSendEmail        Action = "send_email"
	ActionSendWhatsApp     Action = "send_whatsapp"
	ActionSendNotification Action = "send_notification"
	ActionNotifyOwner      Action = "notify_owner"
	ActionDistributeForm   Action = "distribute_form"
	ActionPauseAutomation  Action = "pause_automation"
	ActionUnknown          Action = ""
)

// ParseAction maps a stored action name to its variant, accepting the legacy
// "send_form" alias for form distribution.
func ParseAction(name string) Action {
	switch name {
	case "send_email":
		return ActionSendEmail
	case "send_whatsapp":
		return ActionSendWhatsApp
	case "send_notification":
		return ActionSendNotification
	case "notify_owner":
		return ActionNotifyOwner
	case "distribute_form", "send_form":
		return ActionDistributeForm
	case "pause_automation":
		return ActionPauseAutomation
	default:
		return ActionUnknown
	}
}

func (a Action) String() string {
	return string(a)
}
