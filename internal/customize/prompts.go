package customize

// Prompts shown to the user at each step of the event-building flow.
const (
	PromptSport = "Let's build your own sports calendar!\n\n" +
		"What sport is the event? (tennis, football, basketball, hockey, baseball, golf, volleyball, rugby)"

	PromptTeams = "Who is playing? Name up to two teams or players, e.g. \"Djokovic vs Alcaraz\" or \"Barcelona\"."

	PromptDate = "When is it? You can say \"today\", \"tomorrow\", \"next week\", or give a date like 2025-09-15 or 15/09/2025."

	PromptTime = "What time does it start? For example \"7pm\", \"19:30\" or \"7:30 pm\"."

	PromptLocation = "Where is it taking place? (Leave it to me and I'll mark it TBD.)"

	// PromptMore takes the running event count.
	PromptMore = "Event saved! You have %d event(s) so far.\n\nWant to add another one? (yes/no)"
)
