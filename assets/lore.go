package assets

// CampfireLore is shown at random when the player rests or respawns.
var CampfireLore = []string{
	"The campfire crackles. Somewhere far off, a wolf answers.",
	"Warm embers. Cold stew. It will do.",
	"Someone carved tally marks into a log here. There are a lot of them.",
	"The smoke drifts east, toward the mountains nobody returns from.",
}

// EnemyLore holds a one-liner shown the first time each enemy is defeated.
// Keyed by enemy name.
var EnemyLore = map[string]string{
	"Goblin":      "Goblins hoard shiny things and bad ideas in equal measure.",
	"Giant Rat":   "It was ordinary-sized once. Something in the water.",
	"Wolf":        "Wolves rarely hunt alone. This one was the exception, or the scout.",
	"Bandit":      "The bandit's purse is lighter than their reputation.",
	"Troll":       "Trolls regrow almost anything. Pride is not one of those things.",
	"Dark Wizard": "They studied the same books you did. They just read the footnotes.",
	"Dragon":      "The ground still smoulders. Songs will be written, mostly wrong.",
}
